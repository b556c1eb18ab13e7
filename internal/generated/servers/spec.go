package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// GetSwagger returns the OpenAPI document the server is generated from.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}

	return swagger, nil
}

// SwaggerDoc serves the OpenAPI document to swaggo as JSON.
type SwaggerDoc struct {
	doc []byte
}

// NewSwaggerDoc renders the embedded document once.
func NewSwaggerDoc() (*SwaggerDoc, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	doc, err := swagger.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("error encoding openapi document: %w", err)
	}

	return &SwaggerDoc{doc: doc}, nil
}

// ReadDoc implements swag.Swagger.
func (d *SwaggerDoc) ReadDoc() string {
	return string(d.doc)
}
