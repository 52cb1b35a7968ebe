package swaggerui

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound      = errors.New("swagger ui: not found")
	ErrInvalidConfig = errors.New("swagger ui: invalid config")
)

const indexPath = "index.html"

// Response is what a request path resolves to. Body is shared between
// callers and must not be modified.
type Response struct {
	ContentType string
	Body        []byte
	ETag        string
}

func newResponse(contentType string, body []byte) Response {
	sum := sha256.Sum256(body)
	return Response{
		ContentType: contentType,
		Body:        body,
		ETag:        `"` + hex.EncodeToString(sum[:16]) + `"`,
	}
}

// assets is keyed by path relative to the mount path.
var assets = func() map[string]Response {
	m := make(map[string]Response, len(staticAssets))
	for _, a := range staticAssets {
		m[a.Path] = newResponse(a.ContentType, a.Data)
	}
	return m
}()

// SwaggerUI resolves request paths under a mount path to the index page, a
// bundled asset or a served API document. It is immutable once built and
// safe for concurrent use.
type SwaggerUI struct {
	mountPath string
	index     Response
	docs      map[string]Response
	notFound  http.Handler
}

// New validates cfg and builds a SwaggerUI from it.
func New(cfg Config) (*SwaggerUI, error) {
	mountPath, err := normalizeMountPath(cfg.MountPath)
	if err != nil {
		return nil, err
	}

	s := &SwaggerUI{
		mountPath: mountPath,
		docs:      make(map[string]Response),
		notFound:  cfg.NotFound,
	}
	if s.notFound == nil {
		s.notFound = http.HandlerFunc(http.NotFound)
	}

	urls := make([]bundleURL, 0, len(cfg.Sources))
	for i, src := range cfg.Sources {
		docURL, err := s.addSource(src)
		if err != nil {
			return nil, fmt.Errorf("source %d (%q): %w", i, src.URL, err)
		}
		urls = append(urls, bundleURL{Name: src.Name, URL: docURL, primary: src.Primary})
	}

	filePaths := make(map[StaticFile]string, len(fileNames))
	for _, f := range AllStaticFiles() {
		filePaths[f] = s.joinMount(f.FileName())
	}
	for f, p := range cfg.FilePaths {
		if _, ok := fileNames[f]; !ok {
			return nil, fmt.Errorf("%w: unknown static file %d", ErrInvalidConfig, int(f))
		}
		filePaths[f] = p
	}

	title := cfg.Title
	if title == "" {
		title = defaultTitle
	}

	html, err := renderIndex(title, newBundleConfig(cfg.UI, urls), cfg.OAuth, filePaths)
	if err != nil {
		return nil, err
	}
	s.index = newResponse("text/html; charset=utf-8", html)

	return s, nil
}

// addSource registers a served document and returns the URL the browser
// should fetch it from.
func (s *SwaggerUI) addSource(src DocSource) (string, error) {
	if src.URL == "" {
		return "", fmt.Errorf("%w: document url is required", ErrInvalidConfig)
	}

	if !src.served() {
		return src.URL, nil
	}

	if src.Body != nil && src.Document != nil {
		return "", fmt.Errorf("%w: body and document are mutually exclusive", ErrInvalidConfig)
	}

	p, err := documentPath(src.URL)
	if err != nil {
		return "", err
	}
	if _, ok := assets[p]; ok || p == indexPath {
		return "", fmt.Errorf("%w: document path %q is reserved", ErrInvalidConfig, p)
	}
	if _, ok := s.docs[p]; ok {
		return "", fmt.Errorf("%w: duplicate document path %q", ErrInvalidConfig, p)
	}

	format := src.Format
	if format == FormatAuto {
		format = formatFromPath(p)
	}

	var body []byte
	if src.Document != nil {
		body, err = encodeDocument(src.Document, format)
	} else {
		body, format, err = checkDocument(bytes.Clone(src.Body), format)
	}
	if err != nil {
		return "", err
	}

	s.docs[p] = newResponse(format.ContentType(), body)

	return s.joinMount(p), nil
}

func encodeDocument(doc any, format Format) ([]byte, error) {
	if format == FormatYAML {
		b, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: error encoding yaml document: %v", ErrInvalidConfig, err)
		}
		return b, nil
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: error encoding json document: %v", ErrInvalidConfig, err)
	}
	return b, nil
}

// checkDocument makes sure body is well formed in its format, sniffing the
// format when it is not known yet. The body itself is never rewritten.
func checkDocument(body []byte, format Format) ([]byte, Format, error) {
	if len(body) == 0 {
		return nil, format, fmt.Errorf("%w: document body is empty", ErrInvalidConfig)
	}

	if format == FormatAuto {
		if json.Valid(body) {
			return body, FormatJSON, nil
		}
		format = FormatYAML
	}

	switch format {
	case FormatJSON:
		if !json.Valid(body) {
			return nil, format, fmt.Errorf("%w: document body is not valid json", ErrInvalidConfig)
		}
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(body, &node); err != nil {
			return nil, format, fmt.Errorf("%w: document body is not valid yaml: %v", ErrInvalidConfig, err)
		}
	}

	return body, format, nil
}

// documentPath turns a served document's url into its path relative to the
// mount path.
func documentPath(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid document url: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "" || u.Host != "" || u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w: served document url must be a plain path", ErrInvalidConfig)
	}

	p := path.Clean("/" + u.Path)
	if p == "/" || strings.HasSuffix(u.Path, "/") {
		return "", fmt.Errorf("%w: served document url must name a file", ErrInvalidConfig)
	}

	return strings.TrimPrefix(p, "/"), nil
}

func normalizeMountPath(p string) (string, error) {
	if p == "" || p == "/" {
		return "", nil
	}
	if !strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("%w: mount path %q must start with /", ErrInvalidConfig, p)
	}
	if strings.ContainsAny(p, "?#") {
		return "", fmt.Errorf("%w: mount path %q must be a plain path", ErrInvalidConfig, p)
	}

	return strings.TrimRight(path.Clean(p), "/"), nil
}

func (s *SwaggerUI) joinMount(p string) string {
	return s.mountPath + "/" + p
}

// MountPath returns the normalized mount path; empty when mounted at the root.
func (s *SwaggerUI) MountPath() string {
	return s.mountPath
}

// IndexHTML returns the generated index page.
func (s *SwaggerUI) IndexHTML() []byte {
	return s.index.Body
}

// Resolve maps a request path to its response. Paths outside the mount path,
// and paths inside it that name nothing, return ErrNotFound.
func (s *SwaggerUI) Resolve(requestPath string) (Response, error) {
	rest, ok := s.stripMount(requestPath)
	if !ok {
		return Response{}, ErrNotFound
	}

	rest = strings.TrimPrefix(rest, "/")
	if rest == "" || rest == indexPath {
		return s.index, nil
	}

	if r, ok := assets[rest]; ok {
		return r, nil
	}
	if r, ok := s.docs[rest]; ok {
		return r, nil
	}

	return Response{}, ErrNotFound
}

func (s *SwaggerUI) stripMount(requestPath string) (string, bool) {
	if s.mountPath == "" {
		return requestPath, strings.HasPrefix(requestPath, "/") || requestPath == ""
	}
	if requestPath == s.mountPath {
		return "", true
	}

	rest, ok := strings.CutPrefix(requestPath, s.mountPath)
	if !ok || !strings.HasPrefix(rest, "/") {
		return "", false
	}

	return rest, true
}
