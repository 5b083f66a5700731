package servers

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"
	"github.com/swaggo/swag"
)

//go:embed openapi.yml
var openapiSpec []byte

// GetSwagger returns the OpenAPI document the routes are registered from.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return swagger, nil
}

// swaggerDoc serves the document to swag readers such as the Swagger UI.
type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterSwaggerDoc validates the embedded document and registers it with swag
// under swag.Name. Later calls return the result of the first one.
func RegisterSwaggerDoc() error {
	registerOnce.Do(func() {
		swagger, err := GetSwagger()
		if err != nil {
			registerErr = err
			return
		}
		if err = swagger.Validate(context.Background()); err != nil {
			registerErr = fmt.Errorf("invalid OpenAPI document: %w", err)
			return
		}

		doc, err := json.Marshal(swagger)
		if err != nil {
			registerErr = err
			return
		}
		swag.Register(swag.Name, swaggerDoc{doc: string(doc)})
	})
	return registerErr
}
