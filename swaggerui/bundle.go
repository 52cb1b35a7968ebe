package swaggerui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

// bundleConfig is the object passed to SwaggerUIBundle. Field order is the
// order the keys appear in the index page.
type bundleConfig struct {
	ConfigURL                string           `json:"configUrl,omitempty"`
	DomID                    string           `json:"dom_id,omitempty"`
	URL                      string           `json:"url,omitempty"`
	URLsPrimaryName          string           `json:"urls.primaryName,omitempty"`
	URLs                     []bundleURL      `json:"urls,omitempty"`
	QueryConfigEnabled       *bool            `json:"queryConfigEnabled,omitempty"`
	DeepLinking              *bool            `json:"deepLinking,omitempty"`
	DisplayOperationID       *bool            `json:"displayOperationId,omitempty"`
	DefaultModelsExpandDepth *int             `json:"defaultModelsExpandDepth,omitempty"`
	DefaultModelExpandDepth  *int             `json:"defaultModelExpandDepth,omitempty"`
	DefaultModelRendering    string           `json:"defaultModelRendering,omitempty"`
	DisplayRequestDuration   *bool            `json:"displayRequestDuration,omitempty"`
	DocExpansion             string           `json:"docExpansion,omitempty"`
	Filter                   *bool            `json:"filter,omitempty"`
	MaxDisplayedTags         *int             `json:"maxDisplayedTags,omitempty"`
	ShowExtensions           *bool            `json:"showExtensions,omitempty"`
	ShowCommonExtensions     *bool            `json:"showCommonExtensions,omitempty"`
	TryItOutEnabled          *bool            `json:"tryItOutEnabled,omitempty"`
	RequestSnippetsEnabled   *bool            `json:"requestSnippetsEnabled,omitempty"`
	OAuth2RedirectURL        string           `json:"oauth2RedirectUrl,omitempty"`
	ShowMutatedRequest       *bool            `json:"showMutatedRequest,omitempty"`
	SupportedSubmitMethods   []string         `json:"supportedSubmitMethods,omitempty"`
	ValidatorURL             string           `json:"validatorUrl,omitempty"`
	WithCredentials          *bool            `json:"withCredentials,omitempty"`
	PersistAuthorization     *bool            `json:"persistAuthorization,omitempty"`
	SyntaxHighlight          *SyntaxHighlight `json:"syntaxHighlight,omitempty"`
	Layout                   string           `json:"layout"`
	BasicAuth                *BasicAuth       `json:"basicAuth,omitempty"`
}

type bundleURL struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	primary bool
}

func newBundleConfig(ui UIConfig, urls []bundleURL) bundleConfig {
	cfg := bundleConfig{
		ConfigURL:                ui.ConfigURL,
		DomID:                    ui.DomID,
		QueryConfigEnabled:       ui.QueryConfigEnabled,
		DeepLinking:              ui.DeepLinking,
		DisplayOperationID:       ui.DisplayOperationID,
		DefaultModelsExpandDepth: ui.DefaultModelsExpandDepth,
		DefaultModelExpandDepth:  ui.DefaultModelExpandDepth,
		DefaultModelRendering:    ui.DefaultModelRendering,
		DisplayRequestDuration:   ui.DisplayRequestDuration,
		DocExpansion:             ui.DocExpansion,
		Filter:                   ui.Filter,
		MaxDisplayedTags:         ui.MaxDisplayedTags,
		ShowExtensions:           ui.ShowExtensions,
		ShowCommonExtensions:     ui.ShowCommonExtensions,
		TryItOutEnabled:          ui.TryItOutEnabled,
		RequestSnippetsEnabled:   ui.RequestSnippetsEnabled,
		OAuth2RedirectURL:        ui.OAuth2RedirectURL,
		ShowMutatedRequest:       ui.ShowMutatedRequest,
		SupportedSubmitMethods:   append([]string(nil), ui.SupportedSubmitMethods...),
		ValidatorURL:             ui.ValidatorURL,
		WithCredentials:          ui.WithCredentials,
		PersistAuthorization:     ui.PersistAuthorization,
		SyntaxHighlight:          ui.SyntaxHighlight,
		Layout:                   ui.Layout,
		BasicAuth:                ui.BasicAuth,
	}

	if cfg.DomID == "" {
		cfg.DomID = defaultDomID
	}
	if cfg.DeepLinking == nil {
		cfg.DeepLinking = Ptr(true)
	}
	if cfg.Layout == "" {
		cfg.Layout = LayoutStandalone
	}

	cfg.setURLs(urls)

	return cfg
}

// setURLs mirrors how Swagger UI reads url/urls: a lone unnamed document goes
// in "url", anything else is listed in "urls" with missing names filled in.
func (c *bundleConfig) setURLs(urls []bundleURL) {
	if len(urls) == 0 {
		return
	}

	if len(urls) == 1 && urls[0].Name == "" {
		c.URL = urls[0].URL
		return
	}

	c.URLs = make([]bundleURL, len(urls))
	for i, u := range urls {
		if u.Name == "" {
			u.Name = u.URL
		}
		c.URLs[i] = u
	}

	for _, u := range c.URLs {
		if u.primary {
			c.URLsPrimaryName = u.Name
			break
		}
	}
}

const bundleInit = `
window.ui = SwaggerUIBundle({
  {{config}},
  presets: [
    SwaggerUIBundle.presets.apis,
    SwaggerUIStandalonePreset
  ],
  plugins: [
    SwaggerUIBundle.plugins.DownloadUrl
  ],
});`

// formatBundleConfig renders the SwaggerUIBundle call, splicing the config
// keys in ahead of presets and plugins.
func formatBundleConfig(cfg bundleConfig, oauth *OAuthConfig) (string, error) {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding swagger ui config: %w", err)
	}

	// drop the enclosing "{\n" and "\n}"
	fields := string(b[2 : len(b)-2])
	out := strings.Replace(bundleInit, "{{config}}", fields, 1)

	if oauth != nil {
		o, err := json.Marshal(oauth)
		if err != nil {
			return "", fmt.Errorf("error encoding oauth config: %w", err)
		}
		out += "\nwindow.ui.initOAuth(" + string(o) + ");"
	}

	return out, nil
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{html .Title}}</title>
    <link rel="stylesheet" type="text/css" href="{{html .CSS}}" />
    <link rel="stylesheet" type="text/css" href="{{html .IndexCSS}}" />
    <link rel="icon" type="image/png" href="{{html .Favicon32}}" sizes="32x32" />
    <link rel="icon" type="image/png" href="{{html .Favicon16}}" sizes="16x16" />
</head>
<body>
<div id="{{html .ElementID}}"></div>
<script src="{{html .BundleJS}}" charset="UTF-8"></script>
<script src="{{html .StandalonePresetJS}}" charset="UTF-8"></script>
<script>
    window.onload = () => {
        {{.Init}}
    };
</script>
</body>
</html>
`))

type indexData struct {
	Title              string
	ElementID          string
	CSS                string
	IndexCSS           string
	BundleJS           string
	StandalonePresetJS string
	Favicon16          string
	Favicon32          string
	Init               string
}

func renderIndex(title string, cfg bundleConfig, oauth *OAuthConfig, filePaths map[StaticFile]string) ([]byte, error) {
	script, err := formatBundleConfig(cfg, oauth)
	if err != nil {
		return nil, err
	}

	data := indexData{
		Title:              title,
		ElementID:          strings.TrimPrefix(cfg.DomID, "#"),
		CSS:                filePaths[CSS],
		IndexCSS:           filePaths[IndexCSS],
		BundleJS:           filePaths[BundleJS],
		StandalonePresetJS: filePaths[StandalonePresetJS],
		Favicon16:          filePaths[Favicon16],
		Favicon32:          filePaths[Favicon32],
		Init:               script,
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("error rendering index page: %w", err)
	}

	return buf.Bytes(), nil
}
