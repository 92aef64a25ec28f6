// Package fontfile reads catalog metadata out of TrueType and OpenType
// binaries.
//
// Parse maps the OpenType name table onto the catalog's property
// enumeration and infers the weight, style and stretch axes from the
// subfamily wording ("Semi Bold Condensed Italic" and friends). It is the
// shared parsing layer behind the directory-scan and bucket enumeration
// providers.
package fontfile
