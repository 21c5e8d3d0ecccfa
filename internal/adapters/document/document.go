// Package document adapts kin-openapi documents into the explorer's endpoint index and records.
package document

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

// Document is a read-only view over a parsed OpenAPI document.
type Document struct {
	spec     *openapi3.T
	order    *keyOrder
	location string
}

// Options configures document loading.
type Options struct {
	// AllowExternalRefs lets $ref point at other files or URLs.
	AllowExternalRefs bool
}

// Load reads and parses the document at path.
func Load(path string, opts Options) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, &domain.FileNotFoundError{Path: path, Cause: err}
	}

	return Parse(data, absPath, opts)
}

// Parse parses raw document bytes. location is used to resolve relative
// references and is reported as the host document of security schemes.
func Parse(data []byte, location string, opts Options) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &domain.InvalidDocumentError{Path: location, Reason: "document is empty"}
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = opts.AllowExternalRefs

	spec, err := loader.LoadFromDataWithPath(data, &url.URL{Path: filepath.ToSlash(location)})
	if err != nil {
		return nil, &domain.InvalidDocumentError{Path: location, Reason: "failed to parse OpenAPI file", Cause: err}
	}

	doc := newDocument(spec, newKeyOrder(data), location)
	if err := doc.check(); err != nil {
		return nil, err
	}

	return doc, nil
}

// newDocument wraps an already-parsed specification. A nil order falls back to lexical key order.
func newDocument(spec *openapi3.T, order *keyOrder, location string) *Document {
	if order == nil {
		order = &keyOrder{}
	}

	return &Document{
		spec:     spec,
		order:    order,
		location: location,
	}
}

// LoadAndIndex loads the document at path and builds its endpoint index.
func LoadAndIndex(path string, opts Options) (*Document, []domain.EndpointSummary, error) {
	doc, err := Load(path, opts)
	if err != nil {
		return nil, nil, err
	}

	index, err := BuildIndex(doc)
	if err != nil {
		return nil, nil, err
	}

	return doc, index, nil
}

func (d *Document) check() error {
	if d == nil || d.spec == nil {
		return &domain.InvalidDocumentError{Reason: "document has no root"}
	}

	if d.spec.Paths == nil {
		return &domain.InvalidDocumentError{Path: d.location, Reason: "document has no paths"}
	}

	return nil
}

// Location returns the file the document was loaded from.
func (d *Document) Location() string {
	return d.location
}

// Info returns the info block, or nil when the document has none.
func (d *Document) Info() *openapi3.Info {
	return d.spec.Info
}

// Servers returns the server URLs in document order.
func (d *Document) Servers() []string {
	urls := make([]string, 0, len(d.spec.Servers))
	for _, server := range d.spec.Servers {
		if server == nil || strings.TrimSpace(server.URL) == "" {
			continue
		}
		urls = append(urls, server.URL)
	}

	return urls
}

// SecuritySchemeNames returns the names of the component security schemes in document order.
func (d *Document) SecuritySchemeNames() []string {
	schemes := d.securitySchemes()
	if len(schemes) == 0 {
		return nil
	}

	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}

	return inDocumentOrder(names, d.order.keys("components", "securitySchemes"))
}

// SecurityScheme returns the named component security scheme, or nil.
func (d *Document) SecurityScheme(name string) *openapi3.SecuritySchemeRef {
	return d.securitySchemes()[name]
}

func (d *Document) securitySchemes() openapi3.SecuritySchemes {
	if d.spec.Components == nil {
		return nil
	}

	return d.spec.Components.SecuritySchemes
}

// Security returns the document-level security requirements.
func (d *Document) Security() openapi3.SecurityRequirements {
	return d.spec.Security
}

// PathKeys returns the path templates in document order.
func (d *Document) PathKeys() []string {
	if d.spec.Paths == nil {
		return nil
	}

	items := d.spec.Paths.Map()
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}

	return inDocumentOrder(keys, d.order.keys("paths"))
}

// PathItem returns the path item for the literal path template, or nil.
func (d *Document) PathItem(path string) *openapi3.PathItem {
	if d.spec.Paths == nil {
		return nil
	}

	return d.spec.Paths.Value(path)
}

// ResponseKeys returns the status keys of an operation's responses in document order.
func (d *Document) ResponseKeys(op domain.OperationType, path string, responses *openapi3.Responses) []string {
	if responses == nil {
		return nil
	}

	items := responses.Map()
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}

	return inDocumentOrder(keys, d.order.keys("paths", path, strings.ToLower(string(op)), "responses"))
}
