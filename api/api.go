// Package api holds the OpenAPI description of the HRMS REST service.
package api

import _ "embed"

//go:embed openapi.yml
var OpenAPI []byte
