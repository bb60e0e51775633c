package fwrest

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.0 -config config.yaml openapi.yaml

// Spec is the OpenAPI document the types and handlers in this package are
// generated from.
//
//go:embed openapi.yaml
var Spec []byte
