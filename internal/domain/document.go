package domain

// DocumentSummary is the document-level information shown before exploring.
type DocumentSummary struct {
	// Info is nil when the document has no info section; nothing is rendered then.
	Info            *Info
	SecuritySchemes []SecurityScheme
	Servers         []string
}

// Info holds the document's info block.
type Info struct {
	Title          string
	Version        string
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
}

// Contact holds the API contact information.
type Contact struct {
	Name  string
	Email string
	URL   string
}

// License holds the API license information.
type License struct {
	Name string
	URL  string
}

// SecurityScheme represents a security scheme.
type SecurityScheme struct {
	Key              string
	Type             string
	Name             string
	In               string
	Scheme           string
	BearerFormat     string
	Description      string
	OpenIDConnectURL string
	Reference        *Reference
	Flows            *OAuthFlows
}

// Reference describes where a component was declared.
type Reference struct {
	ID               string
	ExternalResource string
	HostDocument     string
	IsExternal       bool
	IsFragment       bool
	IsLocal          bool
	ReferenceV2      string
	ReferenceV3      string
	Type             string
}

// OAuthFlows holds the flows of an OAuth2 scheme. Absent flows are nil.
type OAuthFlows struct {
	AuthorizationCode *OAuthFlow
	ClientCredentials *OAuthFlow
	Implicit          *OAuthFlow
	Password          *OAuthFlow
}

// OAuthFlow is a single OAuth2 flow definition.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           []Scope
}

// Scope is an OAuth2 scope and its description.
type Scope struct {
	Name        string
	Description string
}
