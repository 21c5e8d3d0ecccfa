package document

import (
	"strconv"
	"strings"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

// Resolve implements domain.Resolver.
func (d *Document) Resolve(op domain.OperationType, path string) (domain.EndpointDetail, error) {
	return Resolve(d, op, path)
}

// Resolve re-reads the full detail of an endpoint from the document.
func Resolve(doc *Document, op domain.OperationType, path string) (domain.EndpointDetail, error) {
	if err := doc.check(); err != nil {
		return domain.EndpointDetail{}, err
	}

	item := doc.PathItem(path)
	if item == nil {
		return domain.EndpointDetail{}, &domain.EndpointNotFoundError{
			OperationType: op,
			Path:          path,
			Reason:        "path is not defined",
		}
	}

	operation := item.GetOperation(string(op))
	if operation == nil {
		return domain.EndpointDetail{}, &domain.EndpointNotFoundError{
			OperationType: op,
			Path:          path,
			Reason:        "operation is not defined for path",
		}
	}

	return domain.EndpointDetail{
		EndpointSummary: domain.EndpointSummary{OperationType: op, Path: path},
		Summary:         operation.Summary,
		Deprecated:      operation.Deprecated,
		Security:        doc.convertSecurity(op, path, operation),
		Parameters:      convertParameters(operation.Parameters, item.Parameters),
		Responses:       doc.convertResponses(op, path, operation.Responses),
	}, nil
}

// convertSecurity applies the operation's requirements, or the document's when
// the operation declares none. An explicit empty list means no security.
func (d *Document) convertSecurity(op domain.OperationType, path string, operation *openapi3.Operation) []domain.SecurityRequirementSet {
	requirements := d.Security()
	origin := []string{"security"}
	if operation.Security != nil {
		requirements = *operation.Security
		origin = []string{"paths", path, strings.ToLower(string(op)), "security"}
	}

	if len(requirements) == 0 {
		return nil
	}

	sets := make([]domain.SecurityRequirementSet, 0, len(requirements))
	for i, requirement := range requirements {
		names := make([]string, 0, len(requirement))
		for name := range requirement {
			names = append(names, name)
		}
		names = inDocumentOrder(names, d.order.keys(append(origin, strconv.Itoa(i))...))

		set := make(domain.SecurityRequirementSet, 0, len(names))
		for _, name := range names {
			req := domain.SchemeRequirement{
				SchemeName: name,
				Scopes:     append([]string(nil), requirement[name]...),
			}

			if ref := d.SecurityScheme(name); ref != nil && ref.Value != nil {
				req.SchemeType = ref.Value.Type
			}

			set = append(set, req)
		}

		sets = append(sets, set)
	}

	return sets
}

// convertParameters lists operation parameters, then the path-level ones the
// operation does not redeclare.
func convertParameters(own, inherited openapi3.Parameters) []domain.Parameter {
	var params []domain.Parameter
	declared := make(map[string]struct{})

	for _, ref := range own {
		if ref == nil || ref.Value == nil {
			continue
		}

		declared[parameterKey(ref.Value)] = struct{}{}
		params = append(params, convertParameter(ref.Value))
	}

	for _, ref := range inherited {
		if ref == nil || ref.Value == nil {
			continue
		}

		if _, ok := declared[parameterKey(ref.Value)]; ok {
			continue
		}

		params = append(params, convertParameter(ref.Value))
	}

	return params
}

func parameterKey(param *openapi3.Parameter) string {
	return param.In + "\x00" + param.Name
}

func convertParameter(param *openapi3.Parameter) domain.Parameter {
	result := domain.Parameter{
		Name:        param.Name,
		In:          domain.ParameterLocation(strings.ToLower(param.In)),
		Required:    param.Required,
		Description: param.Description,
	}

	if param.Schema != nil && param.Schema.Value != nil {
		types := param.Schema.Value.Type.Slice()
		if len(types) > 0 {
			result.SchemaType = types[0]
		}
		result.SchemaFormat = param.Schema.Value.Format
	}

	return result
}

func (d *Document) convertResponses(op domain.OperationType, path string, responses *openapi3.Responses) []domain.Response {
	keys := d.ResponseKeys(op, path, responses)
	if len(keys) == 0 {
		return nil
	}

	result := make([]domain.Response, 0, len(keys))
	for _, key := range keys {
		resp := domain.Response{StatusKey: key}

		if ref := responses.Value(key); ref != nil && ref.Value != nil && ref.Value.Description != nil {
			resp.Description = *ref.Value.Description
		}

		result = append(result, resp)
	}

	return result
}
