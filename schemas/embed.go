// Package schemas exports the JSON Schema documents bundled with the binary.
package schemas

import "embed"

// FS holds the schema files used to validate persisted JSON documents.
//
//go:embed *.schema.json
var FS embed.FS
