// Package fonts exposes the font catalog over HTTP.
//
// The feature wraps an in-memory catalog.Collection and serves family
// listings, variant matching and property queries as JSON.
//
// # Components
//
//   - Service: Translates catalog results into response models.
//   - Handler: Exposes HTTP endpoints for browsing and matching fonts.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /fonts/families : List every family in the catalog.
//   - GET /fonts/families/:name : Get a family and all of its variants.
//   - GET /fonts/families/:name/best : Resolve the best matching variant
//     for weight/style/width/italic criteria.
//   - GET /fonts/variants : Find variants whose properties match every
//     query parameter (e.g. ?full_name=Arial+Bold).
package fonts
