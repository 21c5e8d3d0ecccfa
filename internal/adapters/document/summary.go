package document

import (
	"strings"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

const securitySchemesPointer = "#/components/securitySchemes/"

// Summarize derives the document summary from the document root.
func Summarize(doc *Document) domain.DocumentSummary {
	summary := domain.DocumentSummary{
		Servers: doc.Servers(),
	}

	if info := doc.Info(); info != nil {
		summary.Info = convertInfo(info)
	}

	for _, name := range doc.SecuritySchemeNames() {
		ref := doc.SecurityScheme(name)
		if ref == nil || ref.Value == nil {
			continue
		}

		summary.SecuritySchemes = append(summary.SecuritySchemes, doc.convertSecurityScheme(name, ref))
	}

	return summary
}

func convertInfo(info *openapi3.Info) *domain.Info {
	result := &domain.Info{
		Title:          info.Title,
		Version:        info.Version,
		Description:    info.Description,
		TermsOfService: info.TermsOfService,
	}

	if info.Contact != nil {
		result.Contact = &domain.Contact{
			Name:  info.Contact.Name,
			Email: info.Contact.Email,
			URL:   info.Contact.URL,
		}
	}

	if info.License != nil {
		result.License = &domain.License{
			Name: info.License.Name,
			URL:  info.License.URL,
		}
	}

	return result
}

func (d *Document) convertSecurityScheme(name string, ref *openapi3.SecuritySchemeRef) domain.SecurityScheme {
	scheme := ref.Value

	return domain.SecurityScheme{
		Key:              name,
		Type:             scheme.Type,
		Name:             scheme.Name,
		In:               scheme.In,
		Scheme:           scheme.Scheme,
		BearerFormat:     scheme.BearerFormat,
		Description:      scheme.Description,
		OpenIDConnectURL: scheme.OpenIdConnectUrl,
		Reference:        d.schemeReference(name, ref.Ref),
		Flows:            d.convertFlows(name, scheme.Flows),
	}
}

// schemeReference describes where the scheme was declared. Inline schemes
// under components get their implicit local reference.
func (d *Document) schemeReference(name, ref string) *domain.Reference {
	if ref == "" {
		ref = securitySchemesPointer + name
	}

	resource, fragment, hasFragment := strings.Cut(ref, "#")

	id := name
	if hasFragment {
		if i := strings.LastIndex(fragment, "/"); i >= 0 && i < len(fragment)-1 {
			id = fragment[i+1:]
		}
	}

	return &domain.Reference{
		ID:               id,
		ExternalResource: resource,
		HostDocument:     d.location,
		IsExternal:       resource != "",
		IsFragment:       hasFragment,
		IsLocal:          resource == "",
		ReferenceV2:      resource + "#/securityDefinitions/" + id,
		ReferenceV3:      resource + securitySchemesPointer + id,
		Type:             "securityScheme",
	}
}

func (d *Document) convertFlows(name string, flows *openapi3.OAuthFlows) *domain.OAuthFlows {
	if flows == nil {
		return nil
	}

	return &domain.OAuthFlows{
		AuthorizationCode: d.convertFlow(name, "authorizationCode", flows.AuthorizationCode),
		ClientCredentials: d.convertFlow(name, "clientCredentials", flows.ClientCredentials),
		Implicit:          d.convertFlow(name, "implicit", flows.Implicit),
		Password:          d.convertFlow(name, "password", flows.Password),
	}
}

func (d *Document) convertFlow(name, kind string, flow *openapi3.OAuthFlow) *domain.OAuthFlow {
	if flow == nil {
		return nil
	}

	result := &domain.OAuthFlow{
		AuthorizationURL: flow.AuthorizationURL,
		TokenURL:         flow.TokenURL,
		RefreshURL:       flow.RefreshURL,
	}

	scopes := make([]string, 0, len(flow.Scopes))
	for scope := range flow.Scopes {
		scopes = append(scopes, scope)
	}

	order := d.order.keys("components", "securitySchemes", name, "flows", kind, "scopes")
	for _, scope := range inDocumentOrder(scopes, order) {
		result.Scopes = append(result.Scopes, domain.Scope{Name: scope, Description: flow.Scopes[scope]})
	}

	return result
}
