package swaggerui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bundleTail = `
  presets: [
    SwaggerUIBundle.presets.apis,
    SwaggerUIStandalonePreset
  ],
  plugins: [
    SwaggerUIBundle.plugins.DownloadUrl
  ],
});`

func TestFormatBundleConfig(t *testing.T) {
	tests := []struct {
		name     string
		ui       UIConfig
		urls     []bundleURL
		expected string
	}{
		{
			name: "single url",
			urls: []bundleURL{{URL: "/api-docs/openapi1.json"}},
			expected: `
window.ui = SwaggerUIBundle({
    "dom_id": "#swagger-ui",
  "url": "/api-docs/openapi1.json",
  "deepLinking": true,
  "layout": "StandaloneLayout",` + bundleTail,
		},
		{
			name: "single url with name",
			urls: []bundleURL{{Name: "api-doc1", URL: "/api-docs/openapi1.json"}},
			expected: `
window.ui = SwaggerUIBundle({
    "dom_id": "#swagger-ui",
  "urls": [
    {
      "name": "api-doc1",
      "url": "/api-docs/openapi1.json"
    }
  ],
  "deepLinking": true,
  "layout": "StandaloneLayout",` + bundleTail,
		},
		{
			name: "single url primary",
			urls: []bundleURL{{Name: "api-doc1", URL: "/api-docs/openapi1.json", primary: true}},
			expected: `
window.ui = SwaggerUIBundle({
    "dom_id": "#swagger-ui",
  "urls.primaryName": "api-doc1",
  "urls": [
    {
      "name": "api-doc1",
      "url": "/api-docs/openapi1.json"
    }
  ],
  "deepLinking": true,
  "layout": "StandaloneLayout",` + bundleTail,
		},
		{
			name: "multiple urls with primary",
			urls: []bundleURL{
				{Name: "api-doc1", URL: "/api-docs/openapi1.json", primary: true},
				{Name: "api-doc2", URL: "/api-docs/openapi2.json"},
			},
			expected: `
window.ui = SwaggerUIBundle({
    "dom_id": "#swagger-ui",
  "urls.primaryName": "api-doc1",
  "urls": [
    {
      "name": "api-doc1",
      "url": "/api-docs/openapi1.json"
    },
    {
      "name": "api-doc2",
      "url": "/api-docs/openapi2.json"
    }
  ],
  "deepLinking": true,
  "layout": "StandaloneLayout",` + bundleTail,
		},
		{
			name: "multiple urls without names",
			urls: []bundleURL{
				{URL: "/api-docs/openapi1.json"},
				{URL: "/api-docs/openapi2.json"},
			},
			expected: `
window.ui = SwaggerUIBundle({
    "dom_id": "#swagger-ui",
  "urls": [
    {
      "name": "/api-docs/openapi1.json",
      "url": "/api-docs/openapi1.json"
    },
    {
      "name": "/api-docs/openapi2.json",
      "url": "/api-docs/openapi2.json"
    }
  ],
  "deepLinking": true,
  "layout": "StandaloneLayout",` + bundleTail,
		},
		{
			name: "multiple fields",
			ui: UIConfig{
				DomID:                    "#another-el",
				QueryConfigEnabled:       Ptr(true),
				DeepLinking:              Ptr(false),
				DisplayOperationID:       Ptr(true),
				DefaultModelsExpandDepth: Ptr(1),
				DefaultModelExpandDepth:  Ptr(-1),
				DefaultModelRendering:    `["example"*]`,
				DisplayRequestDuration:   Ptr(true),
				DocExpansion:             `["list"*]`,
				Filter:                   Ptr(true),
				MaxDisplayedTags:         Ptr(1),
				ShowExtensions:           Ptr(true),
				ShowCommonExtensions:     Ptr(true),
				TryItOutEnabled:          Ptr(true),
				RequestSnippetsEnabled:   Ptr(true),
				OAuth2RedirectURL:        "http://auth",
				ShowMutatedRequest:       Ptr(true),
				SupportedSubmitMethods:   []string{"get"},
				ValidatorURL:             "none",
				WithCredentials:          Ptr(true),
				PersistAuthorization:     Ptr(true),
				Layout:                   LayoutBase,
			},
			urls: []bundleURL{{URL: "/api-docs/openapi1.json"}},
			expected: `
window.ui = SwaggerUIBundle({
    "dom_id": "#another-el",
  "url": "/api-docs/openapi1.json",
  "queryConfigEnabled": true,
  "deepLinking": false,
  "displayOperationId": true,
  "defaultModelsExpandDepth": 1,
  "defaultModelExpandDepth": -1,
  "defaultModelRendering": "[\"example\"*]",
  "displayRequestDuration": true,
  "docExpansion": "[\"list\"*]",
  "filter": true,
  "maxDisplayedTags": 1,
  "showExtensions": true,
  "showCommonExtensions": true,
  "tryItOutEnabled": true,
  "requestSnippetsEnabled": true,
  "oauth2RedirectUrl": "http://auth",
  "showMutatedRequest": true,
  "supportedSubmitMethods": [
    "get"
  ],
  "validatorUrl": "none",
  "withCredentials": true,
  "persistAuthorization": true,
  "layout": "BaseLayout",` + bundleTail,
		},
		{
			name: "syntax highlight on",
			ui:   UIConfig{SyntaxHighlight: &SyntaxHighlight{Activated: true}},
			urls: []bundleURL{{URL: "/api-docs/openapi1.json"}},
			expected: `
window.ui = SwaggerUIBundle({
    "dom_id": "#swagger-ui",
  "url": "/api-docs/openapi1.json",
  "deepLinking": true,
  "syntaxHighlight": {
    "activated": true
  },
  "layout": "StandaloneLayout",` + bundleTail,
		},
		{
			name: "syntax highlight off",
			ui:   UIConfig{SyntaxHighlight: &SyntaxHighlight{Activated: false}},
			urls: []bundleURL{{URL: "/api-docs/openapi1.json"}},
			expected: `
window.ui = SwaggerUIBundle({
    "dom_id": "#swagger-ui",
  "url": "/api-docs/openapi1.json",
  "deepLinking": true,
  "syntaxHighlight": {
    "activated": false
  },
  "layout": "StandaloneLayout",` + bundleTail,
		},
		{
			name: "syntax highlight with theme",
			ui:   UIConfig{SyntaxHighlight: &SyntaxHighlight{Activated: true, Theme: "monokai"}},
			urls: []bundleURL{{URL: "/api-docs/openapi1.json"}},
			expected: `
window.ui = SwaggerUIBundle({
    "dom_id": "#swagger-ui",
  "url": "/api-docs/openapi1.json",
  "deepLinking": true,
  "syntaxHighlight": {
    "activated": true,
    "theme": "monokai"
  },
  "layout": "StandaloneLayout",` + bundleTail,
		},
		{
			name: "basic auth",
			ui:   UIConfig{BasicAuth: &BasicAuth{Username: "admin", Password: "secret"}},
			urls: []bundleURL{{URL: "/api-docs/openapi1.json"}},
			expected: `
window.ui = SwaggerUIBundle({
    "dom_id": "#swagger-ui",
  "url": "/api-docs/openapi1.json",
  "deepLinking": true,
  "layout": "StandaloneLayout",
  "basicAuth": {
    "username": "admin",
    "password": "secret"
  },` + bundleTail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatBundleConfig(newBundleConfig(tt.ui, tt.urls), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatBundleConfigOAuth(t *testing.T) {
	oauth := &OAuthConfig{
		ClientID:                          "my-client",
		AppName:                           "My App",
		Scopes:                            []string{"read", "write"},
		UsePKCEWithAuthorizationCodeGrant: Ptr(true),
	}

	got, err := formatBundleConfig(newBundleConfig(UIConfig{}, []bundleURL{{URL: "/openapi.json"}}), oauth)
	require.NoError(t, err)

	assert.Contains(t, got, bundleTail)
	assert.Contains(t, got, `window.ui.initOAuth({"clientId":"my-client","appName":"My App","scopes":["read","write"],"usePkceWithAuthorizationCodeGrant":true});`)
}

func TestFormatBundleConfigEscapesScriptContent(t *testing.T) {
	got, err := formatBundleConfig(newBundleConfig(UIConfig{}, []bundleURL{{Name: "</script><script>alert(1)", URL: "/openapi.json"}}), nil)
	require.NoError(t, err)

	assert.NotContains(t, got, "</script>")
	assert.Contains(t, got, `\u003c/script\u003e`)
}

func TestNoURLs(t *testing.T) {
	cfg := newBundleConfig(UIConfig{}, nil)

	assert.Empty(t, cfg.URL)
	assert.Empty(t, cfg.URLs)
	assert.Empty(t, cfg.URLsPrimaryName)
}
