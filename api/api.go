// Package api embute o documento OpenAPI servido pelo Swagger UI.
package api

import _ "embed"

//go:embed swagger.yaml
var SwaggerYAML []byte
