package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/austinwofford/swagger-ui-redist/docs"
	"github.com/austinwofford/swagger-ui-redist/swaggerui"
)

type Config struct {
	HTTPAddress  string `env:"HTTP_ADDRESS" envDefault:":8080"`
	CORSEnabled  bool   `env:"CORS_ENABLED" envDefault:"true"`
	DebugEnabled bool   `env:"DEBUG_ENABLED"`

	MountPath string `env:"SWAGGER_UI_MOUNT_PATH" envDefault:"/swagger-ui"`
	Title     string `env:"SWAGGER_UI_TITLE" envDefault:"Swagger UI"`
	// SpecFile is served instead of the embedded docs.OpenAPI when set.
	SpecFile     string   `env:"SWAGGER_UI_SPEC_FILE"`
	ExtraURLs    []string `env:"SWAGGER_UI_EXTRA_URLS"`
	TryItOut     bool     `env:"SWAGGER_UI_TRY_IT_OUT"`
	DeepLinking  bool     `env:"SWAGGER_UI_DEEP_LINKING" envDefault:"true"`
	Filter       bool     `env:"SWAGGER_UI_FILTER"`
	DocExpansion string   `env:"SWAGGER_UI_DOC_EXPANSION" envDefault:"list"`
}

func Load() (*Config, error) {
	var cfg Config

	if _, ok := os.LookupEnv("USE_DOTENV"); ok {
		err := godotenv.Load()
		if err != nil {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return &cfg, nil
}

// SwaggerUIConfig builds the swagger ui configuration: the spec file (or the
// embedded server description) first, then any external urls.
func (c *Config) SwaggerUIConfig() (swaggerui.Config, error) {
	body := docs.OpenAPI
	docURL := "openapi.yaml"

	if c.SpecFile != "" {
		b, err := os.ReadFile(c.SpecFile)
		if err != nil {
			return swaggerui.Config{}, fmt.Errorf("error reading spec file: %w", err)
		}

		ext := filepath.Ext(c.SpecFile)
		if ext == "" {
			ext = ".json"
		}

		body = b
		docURL = "openapi" + ext
	}

	sources := []swaggerui.DocSource{{URL: docURL, Body: body}}
	for _, u := range c.ExtraURLs {
		sources = append(sources, swaggerui.DocSource{URL: u})
	}

	return swaggerui.Config{
		MountPath: c.MountPath,
		Title:     c.Title,
		Sources:   sources,
		UI: swaggerui.UIConfig{
			DeepLinking:     swaggerui.Ptr(c.DeepLinking),
			TryItOutEnabled: swaggerui.Ptr(c.TryItOut),
			Filter:          swaggerui.Ptr(c.Filter),
			DocExpansion:    c.DocExpansion,
		},
	}, nil
}
