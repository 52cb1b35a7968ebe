package docs

import _ "embed"

// OpenAPI describes the swagger-ui-server endpoints. It is the document the
// server shows when no other spec file is configured.
//
//go:embed openapi.yaml
var OpenAPI []byte
