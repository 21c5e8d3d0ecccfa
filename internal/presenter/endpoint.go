package presenter

import (
	"strings"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
)

var endpointRules = []rule[domain.EndpointDetail]{
	{
		name: "heading",
		when: always[domain.EndpointDetail],
		render: func(sb *strings.Builder, d domain.EndpointDetail) {
			sb.WriteByte('\n')
			sb.WriteString(d.OperationType.String())
			sb.WriteString(" ")
			sb.WriteString(d.Path)
			if present(d.Summary) {
				sb.WriteString(" - ")
				sb.WriteString(d.Summary)
			}
			if d.Deprecated {
				sb.WriteString(" *DEPRECATED*")
			}
			sb.WriteByte('\n')
		},
	},
	{
		name: "security",
		when: func(d domain.EndpointDetail) bool { return len(d.Security) > 0 },
		render: func(sb *strings.Builder, d domain.EndpointDetail) {
			writeLine(sb, 2, "Security:")
			for i, set := range d.Security {
				if i > 0 {
					writeLine(sb, 4, "or")
				}
				for _, req := range set {
					writeLine(sb, 4, "%s", schemeLabel(req))
					if len(req.Scopes) > 0 {
						writeLine(sb, 6, "Scopes")
						for _, scope := range req.Scopes {
							writeLine(sb, 8, "%s", scope)
						}
					}
				}
			}
		},
	},
	{
		name: "no security",
		when: func(d domain.EndpointDetail) bool { return len(d.Security) == 0 },
		render: func(sb *strings.Builder, _ domain.EndpointDetail) {
			writeLine(sb, 2, "Security: None")
		},
	},
	{
		name: "parameters",
		when: func(d domain.EndpointDetail) bool { return len(d.Parameters) > 0 },
		render: func(sb *strings.Builder, d domain.EndpointDetail) {
			writeLine(sb, 2, "Parameters:")
			for _, p := range d.Parameters {
				writeLine(sb, 4, "%s", parameterLine(p))
			}
		},
	},
	{
		name: "no parameters",
		when: func(d domain.EndpointDetail) bool { return len(d.Parameters) == 0 },
		render: func(sb *strings.Builder, _ domain.EndpointDetail) {
			writeLine(sb, 2, "Parameters: None")
		},
	},
	{
		name: "responses",
		when: func(d domain.EndpointDetail) bool { return len(d.Responses) > 0 },
		render: func(sb *strings.Builder, d domain.EndpointDetail) {
			writeLine(sb, 2, "Responses:")
			for _, r := range d.Responses {
				if present(r.Description) {
					writeLine(sb, 4, "%s - %s", r.StatusKey, r.Description)
					continue
				}
				writeLine(sb, 4, "%s", r.StatusKey)
			}
		},
	},
	{
		name: "no responses",
		when: func(d domain.EndpointDetail) bool { return len(d.Responses) == 0 },
		render: func(sb *strings.Builder, _ domain.EndpointDetail) {
			writeLine(sb, 2, "Responses: None")
		},
	},
}

// schemeLabel names a scheme by its type, keeping the reference name when it adds information.
func schemeLabel(req domain.SchemeRequirement) string {
	switch {
	case !present(req.SchemeType):
		return req.SchemeName
	case req.SchemeName == "" || req.SchemeName == req.SchemeType:
		return req.SchemeType
	default:
		return req.SchemeType + " (" + req.SchemeName + ")"
	}
}

func parameterLine(p domain.Parameter) string {
	var sb strings.Builder

	sb.WriteString(p.Name)
	sb.WriteString(":")
	if present(p.SchemaType) {
		sb.WriteString(" ")
		sb.WriteString(p.SchemaType)
	}
	if present(p.SchemaFormat) {
		sb.WriteString(" (")
		sb.WriteString(p.SchemaFormat)
		sb.WriteString(")")
	}
	if present(p.Description) {
		sb.WriteString(" - ")
		sb.WriteString(strings.TrimRight(p.Description, " \t\r\n"))
	}
	if p.Required {
		sb.WriteString(" (required)")
	}
	if p.In.Known() {
		sb.WriteString(" [From: ")
		sb.WriteString(string(p.In))
		sb.WriteString("]")
	}

	return sb.String()
}

// FormatEndpointDetail renders a resolved endpoint.
func FormatEndpointDetail(detail domain.EndpointDetail) string {
	return apply(endpointRules, detail)
}
