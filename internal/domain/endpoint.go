// Package domain provides core business models and interfaces for the OpenAPI explorer.
package domain

import (
	"fmt"
	"strings"
)

// OperationType is the HTTP method an operation is defined for.
type OperationType string

// Supported operation types.
const (
	OperationGet     OperationType = "GET"
	OperationPut     OperationType = "PUT"
	OperationPost    OperationType = "POST"
	OperationDelete  OperationType = "DELETE"
	OperationOptions OperationType = "OPTIONS"
	OperationHead    OperationType = "HEAD"
	OperationPatch   OperationType = "PATCH"
	OperationTrace   OperationType = "TRACE"
)

// OperationTypes lists every operation type in the order endpoints are indexed.
var OperationTypes = []OperationType{
	OperationGet,
	OperationPut,
	OperationPost,
	OperationDelete,
	OperationOptions,
	OperationHead,
	OperationPatch,
	OperationTrace,
}

// ParseOperationType converts a method name (any case) into an OperationType.
func ParseOperationType(method string) (OperationType, bool) {
	candidate := OperationType(strings.ToUpper(strings.TrimSpace(method)))
	for _, op := range OperationTypes {
		if op == candidate {
			return op, true
		}
	}

	return "", false
}

func (o OperationType) String() string {
	return string(o)
}

// EndpointSummary identifies a single endpoint in the index.
type EndpointSummary struct {
	OperationType OperationType
	Path          string
}

// String returns the label shown in the selection prompt.
func (e EndpointSummary) String() string {
	return fmt.Sprintf("%s %s", e.OperationType, e.Path)
}

// ParameterLocation is where a parameter is read from.
type ParameterLocation string

// Known parameter locations.
const (
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
	LocationPath   ParameterLocation = "path"
	LocationCookie ParameterLocation = "cookie"
)

// Known reports whether the location is one of the four defined locations.
func (l ParameterLocation) Known() bool {
	switch l {
	case LocationQuery, LocationHeader, LocationPath, LocationCookie:
		return true
	default:
		return false
	}
}

// Parameter is a request parameter of an endpoint.
type Parameter struct {
	Name         string
	In           ParameterLocation
	Required     bool
	SchemaType   string
	SchemaFormat string
	Description  string
}

// Response is one documented response, keyed by status ("200", "4XX", "default").
type Response struct {
	StatusKey   string
	Description string
}

// SchemeRequirement is one scheme reference inside a requirement set.
type SchemeRequirement struct {
	SchemeName string
	// SchemeType is empty when the reference does not resolve to a defined scheme.
	SchemeType string
	Scopes     []string
}

// SecurityRequirementSet is one acceptable way to authenticate.
type SecurityRequirementSet []SchemeRequirement

// EndpointDetail is the fully resolved view of an endpoint.
type EndpointDetail struct {
	EndpointSummary

	Summary    string
	Deprecated bool
	Security   []SecurityRequirementSet
	Parameters []Parameter
	Responses  []Response
}
