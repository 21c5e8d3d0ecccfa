package document

import (
	"testing"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	doc := loadFixture(t, petStoreYAML)

	summary := Summarize(doc)

	require.NotNil(t, summary.Info)
	assert.Equal(t, &domain.Info{
		Title:          "Pet Store",
		Version:        "1.2.0",
		Description:    "Sample pets API",
		TermsOfService: "https://example.com/terms",
		Contact:        &domain.Contact{Name: "API Team", Email: "api@example.com"},
		License:        &domain.License{Name: "MIT", URL: "https://opensource.org/licenses/MIT"},
	}, summary.Info)

	assert.Equal(t, []string{"https://api.example.com/v1", "https://staging.example.com/v1"}, summary.Servers)

	require.Len(t, summary.SecuritySchemes, 2)

	oauth := summary.SecuritySchemes[0]
	assert.Equal(t, "petstore_auth", oauth.Key)
	assert.Equal(t, "oauth2", oauth.Type)
	assert.Equal(t, "OAuth2 implicit grant", oauth.Description)
	require.NotNil(t, oauth.Flows)
	assert.Nil(t, oauth.Flows.AuthorizationCode)
	assert.Nil(t, oauth.Flows.ClientCredentials)
	require.NotNil(t, oauth.Flows.Implicit)
	assert.Equal(t, "https://example.com/oauth/authorize", oauth.Flows.Implicit.AuthorizationURL)
	assert.Equal(t, []domain.Scope{
		{Name: "write:pets", Description: "modify pets"},
		{Name: "read:pets", Description: "read pets"},
	}, oauth.Flows.Implicit.Scopes)

	apiKey := summary.SecuritySchemes[1]
	assert.Equal(t, "apiKey", apiKey.Type)
	assert.Equal(t, "X-API-Key", apiKey.Name)
	assert.Equal(t, "header", apiKey.In)
	assert.Nil(t, apiKey.Flows)

	require.NotNil(t, apiKey.Reference)
	assert.Equal(t, &domain.Reference{
		ID:           "api_key",
		HostDocument: doc.Location(),
		IsFragment:   true,
		IsLocal:      true,
		ReferenceV2:  "#/securityDefinitions/api_key",
		ReferenceV3:  "#/components/securitySchemes/api_key",
		Type:         "securityScheme",
	}, apiKey.Reference)
}

func TestSummarizeWithoutInfo(t *testing.T) {
	doc := loadFixture(t, "openapi: 3.0.3\npaths: {}\n")

	summary := Summarize(doc)
	assert.Nil(t, summary.Info)
	assert.Empty(t, summary.SecuritySchemes)
	assert.Empty(t, summary.Servers)
}

func TestSchemeReferenceExternal(t *testing.T) {
	doc := loadFixture(t, pingYAML)

	ref := doc.schemeReference("shared", "common.yaml#/components/securitySchemes/oauth")
	assert.Equal(t, "oauth", ref.ID)
	assert.Equal(t, "common.yaml", ref.ExternalResource)
	assert.True(t, ref.IsExternal)
	assert.False(t, ref.IsLocal)
	assert.True(t, ref.IsFragment)
	assert.Equal(t, "common.yaml#/components/securitySchemes/oauth", ref.ReferenceV3)
}
