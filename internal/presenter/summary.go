package presenter

import (
	"strings"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
)

var summaryRules = []rule[domain.DocumentSummary]{
	{
		name: "title",
		when: func(s domain.DocumentSummary) bool { return present(s.Info.Title) },
		render: func(sb *strings.Builder, s domain.DocumentSummary) {
			sb.WriteString(s.Info.Title)
			if present(s.Info.Version) {
				sb.WriteString(" Version: ")
				sb.WriteString(s.Info.Version)
			}
			sb.WriteByte('\n')
		},
	},
	{
		name: "contact",
		when: func(s domain.DocumentSummary) bool {
			return s.Info.Contact != nil && present(s.Info.Contact.Name)
		},
		render: func(sb *strings.Builder, s domain.DocumentSummary) {
			line := "Contact: " + s.Info.Contact.Name
			if present(s.Info.Contact.Email) {
				line += " " + s.Info.Contact.Email
			}
			writeLine(sb, 0, "%s", line)
		},
	},
	{
		name: "license",
		when: func(s domain.DocumentSummary) bool { return s.Info.License != nil },
		render: func(sb *strings.Builder, s domain.DocumentSummary) {
			writeLine(sb, 0, "%s", joinPresent("License:", s.Info.License.Name, s.Info.License.URL))
		},
	},
	{
		name: "terms",
		when: func(s domain.DocumentSummary) bool { return present(s.Info.TermsOfService) },
		render: func(sb *strings.Builder, s domain.DocumentSummary) {
			writeLine(sb, 0, "Terms: %s", s.Info.TermsOfService)
		},
	},
	{
		name: "description",
		when: func(s domain.DocumentSummary) bool { return present(s.Info.Description) },
		render: func(sb *strings.Builder, s domain.DocumentSummary) {
			sb.WriteByte('\n')
			writeLine(sb, 0, "%s", strings.TrimRight(s.Info.Description, "\n"))
		},
	},
	{
		name: "security schemes",
		when: func(s domain.DocumentSummary) bool { return len(s.SecuritySchemes) > 0 },
		render: func(sb *strings.Builder, s domain.DocumentSummary) {
			sb.WriteByte('\n')
			writeLine(sb, 0, "Security schemes:")
			for _, scheme := range s.SecuritySchemes {
				sb.WriteString(apply(schemeRules, scheme))
			}
		},
	},
	{
		name: "servers",
		when: func(s domain.DocumentSummary) bool { return len(s.Servers) > 0 },
		render: func(sb *strings.Builder, s domain.DocumentSummary) {
			sb.WriteByte('\n')
			writeLine(sb, 0, "Servers: %s", strings.Join(s.Servers, " "))
		},
	},
}

var schemeRules = []rule[domain.SecurityScheme]{
	{
		name: "type",
		when: always[domain.SecurityScheme],
		render: func(sb *strings.Builder, s domain.SecurityScheme) {
			writeLine(sb, 2, "%s", s.Type)
		},
	},
	{
		name: "fields",
		when: always[domain.SecurityScheme],
		render: func(sb *strings.Builder, s domain.SecurityScheme) {
			writeOptional(sb, 4, "Name", s.Name)
			writeOptional(sb, 4, "In", s.In)
			writeOptional(sb, 4, "Scheme", s.Scheme)
			writeOptional(sb, 4, "Bearer Format", s.BearerFormat)
			writeOptional(sb, 4, "Description", s.Description)
			writeOptional(sb, 4, "OIDC URL", s.OpenIDConnectURL)
		},
	},
	{
		name: "reference",
		when: func(s domain.SecurityScheme) bool { return s.Reference != nil },
		render: func(sb *strings.Builder, s domain.SecurityScheme) {
			ref := s.Reference
			writeOptional(sb, 4, "Id", ref.ID)
			writeOptional(sb, 4, "ExternalResource", ref.ExternalResource)
			writeOptional(sb, 4, "HostDocument", ref.HostDocument)
			writeLine(sb, 4, "IsExternal: %t", ref.IsExternal)
			writeLine(sb, 4, "IsFragment: %t", ref.IsFragment)
			writeLine(sb, 4, "IsLocal: %t", ref.IsLocal)
			writeOptional(sb, 4, "ReferenceV2", ref.ReferenceV2)
			writeOptional(sb, 4, "ReferenceV3", ref.ReferenceV3)
			writeOptional(sb, 4, "Type", ref.Type)
		},
	},
	{
		name: "flows",
		when: func(s domain.SecurityScheme) bool { return s.Flows != nil },
		render: func(sb *strings.Builder, s domain.SecurityScheme) {
			writeLine(sb, 4, "Flows:")
			writeFlow(sb, "AuthorizationCode", s.Flows.AuthorizationCode)
			writeFlow(sb, "ClientCredentials", s.Flows.ClientCredentials)
			writeFlow(sb, "Implicit", s.Flows.Implicit)
			writeFlow(sb, "Password", s.Flows.Password)
		},
	},
}

func writeFlow(sb *strings.Builder, name string, flow *domain.OAuthFlow) {
	if flow == nil {
		return
	}

	writeLine(sb, 6, "%s:", name)
	writeOptional(sb, 8, "Authorization URL", flow.AuthorizationURL)
	writeOptional(sb, 8, "RefreshUrl", flow.RefreshURL)
	if len(flow.Scopes) > 0 {
		writeLine(sb, 8, "Scopes:")
		for _, scope := range flow.Scopes {
			writeLine(sb, 10, "%s: %s", scope.Name, scope.Description)
		}
	}
	writeOptional(sb, 8, "TokenUrl", flow.TokenURL)
}

func joinPresent(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if present(p) {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, " ")
}

// FormatDocumentSummary renders the document summary. A summary without
// an info section renders as the empty string.
func FormatDocumentSummary(summary domain.DocumentSummary) string {
	if summary.Info == nil {
		return ""
	}

	return apply(summaryRules, summary)
}
