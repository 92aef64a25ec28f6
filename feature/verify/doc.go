// Package verify reconciles the font registry against a live source scan.
//
// It enumerates the configured font source (directories or bucket), compares
// the result against the database-backed registry and reports faces that are
// unregistered, missing from the source, or registered with stale axes. A
// sync operation replaces the registry contents with a fresh scan.
//
// # Components
//
//   - Service: Runs the scan, the comparison and the sync.
//   - Handler: Exposes HTTP endpoints for checks and syncing.
//   - Loader: Registers the feature when a registry database is configured.
//
// # HTTP Endpoints
//
//   - GET /verify : Compare the source scan against the registry.
//   - POST /verify/sync : Overwrite the registry with a fresh scan.
package verify
