package swaggerui

import (
	"net/http"
	"path"
	"strings"
)

const (
	LayoutStandalone = "StandaloneLayout"
	LayoutBase       = "BaseLayout"

	defaultTitle = "Swagger UI"
	defaultDomID = "#swagger-ui"
)

// Config is supplied by the host once. New copies everything it needs from
// it, so changing a Config after New has no effect on the built SwaggerUI.
type Config struct {
	// MountPath is the URL prefix the UI is served under, e.g. "/swagger-ui".
	// Empty or "/" mounts the UI at the root.
	MountPath string

	// Title is shown in the browser tab. Defaults to "Swagger UI".
	Title string

	// Sources are the API documents listed in the UI, in display order.
	Sources []DocSource

	UI    UIConfig
	OAuth *OAuthConfig

	// FilePaths overrides the URL the index page uses to reference a bundled
	// file, for hosts serving the assets from somewhere else (a CDN, another
	// route). Overrides do not change where Resolve serves the files.
	FilePaths map[StaticFile]string

	// NotFound handles requests ServeHTTP can't resolve. Defaults to http.NotFound.
	NotFound http.Handler
}

// Format is the serialization of an API document.
type Format int

const (
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	default:
		return "application/json"
	}
}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// formatFromPath guesses the format from a file extension, FormatAuto when unknown.
func formatFromPath(p string) Format {
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// DocSource is an API description document shown by the UI.
//
// When Body or Document is set the document is served by the SwaggerUI itself
// and URL is taken relative to the mount path: "/openapi.json", "openapi.json"
// and "./openapi.json" are all served at <mount>/openapi.json. When neither is
// set the source is an external reference and URL is passed to the browser
// untouched.
type DocSource struct {
	// Name is shown in the definition selector. Optional for a single source.
	Name string
	URL  string

	// Primary selects the document displayed first when there are several.
	Primary bool

	// Format of a served document. FormatAuto picks it from the URL extension,
	// then by checking whether Body is JSON.
	Format Format

	// Body is served unchanged.
	Body []byte

	// Document is marshalled once, as JSON or YAML depending on Format.
	Document any
}

func (s DocSource) served() bool {
	return s.Body != nil || s.Document != nil
}

// UIConfig holds the Swagger UI settings rendered into the index page. Unset
// fields are left out so Swagger UI's own defaults apply.
//
// See https://github.com/swagger-api/swagger-ui/blob/master/docs/usage/configuration.md
type UIConfig struct {
	ConfigURL string

	// DomID defaults to "#swagger-ui".
	DomID string

	QueryConfigEnabled *bool

	// DeepLinking defaults to true.
	DeepLinking *bool

	DisplayOperationID *bool

	// DefaultModelsExpandDepth of -1 hides the models section.
	DefaultModelsExpandDepth *int
	DefaultModelExpandDepth  *int
	DefaultModelRendering    string
	DisplayRequestDuration   *bool

	// DocExpansion is one of "list", "full" or "none".
	DocExpansion string

	Filter                 *bool
	MaxDisplayedTags       *int
	ShowExtensions         *bool
	ShowCommonExtensions   *bool
	TryItOutEnabled        *bool
	RequestSnippetsEnabled *bool
	OAuth2RedirectURL      string
	ShowMutatedRequest     *bool
	SupportedSubmitMethods []string

	// ValidatorURL "none" disables validation against swagger.io.
	ValidatorURL string

	WithCredentials      *bool
	PersistAuthorization *bool
	SyntaxHighlight      *SyntaxHighlight

	// Layout defaults to LayoutStandalone.
	Layout string

	BasicAuth *BasicAuth
}

type SyntaxHighlight struct {
	Activated bool   `json:"activated"`
	Theme     string `json:"theme,omitempty"`
}

// BasicAuth prefills the basic authorization dialog.
type BasicAuth struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// OAuthConfig is passed to Swagger UI's initOAuth.
type OAuthConfig struct {
	ClientID                                  string            `json:"clientId,omitempty"`
	ClientSecret                              string            `json:"clientSecret,omitempty"`
	Realm                                     string            `json:"realm,omitempty"`
	AppName                                   string            `json:"appName,omitempty"`
	ScopeSeparator                            string            `json:"scopeSeparator,omitempty"`
	Scopes                                    []string          `json:"scopes,omitempty"`
	AdditionalQueryStringParams               map[string]string `json:"additionalQueryStringParams,omitempty"`
	UseBasicAuthenticationWithAccessCodeGrant *bool             `json:"useBasicAuthenticationWithAccessCodeGrant,omitempty"`
	UsePKCEWithAuthorizationCodeGrant         *bool             `json:"usePkceWithAuthorizationCodeGrant,omitempty"`
}

// Ptr returns a pointer to v, for the optional UIConfig fields.
func Ptr[T any](v T) *T {
	return &v
}
