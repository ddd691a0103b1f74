// Package docs embeds the OpenAPI description served at /openapi.json and the
// ReDoc page served at /redoc.
package docs

import _ "embed"

//go:embed openapi.json
var OpenAPI []byte

//go:embed redoc.html
var Redoc []byte
