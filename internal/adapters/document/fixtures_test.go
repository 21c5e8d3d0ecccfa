package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const petStoreYAML = `openapi: 3.0.3
info:
  title: Pet Store
  version: 1.2.0
  description: Sample pets API
  termsOfService: https://example.com/terms
  contact:
    name: API Team
    email: api@example.com
  license:
    name: MIT
    url: https://opensource.org/licenses/MIT
servers:
  - url: https://api.example.com/v1
  - url: https://staging.example.com/v1
security:
  - api_key: []
paths:
  /pets:
    post:
      summary: Create a pet
      security:
        - petstore_auth: [write:pets, read:pets]
      responses:
        "201": {description: Created}
        "400": {description: Bad request}
    get:
      summary: List pets
      parameters:
        - name: limit
          in: query
          description: "How many items to return  "
          schema: {type: integer, format: int32}
      responses:
        default: {description: Unexpected error}
        "200": {description: A list of pets}
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema: {type: string}
      - name: X-Trace
        in: header
        schema: {type: string}
    get:
      summary: Info for a pet
      deprecated: true
      security: []
      responses:
        "404": {description: Not found}
        "200": {description: Pet}
    delete:
      parameters:
        - name: petId
          in: path
          required: true
          description: The id to delete
          schema: {type: string, format: uuid}
      responses: {}
  /health:
    trace:
      responses: {}
components:
  securitySchemes:
    petstore_auth:
      type: oauth2
      description: OAuth2 implicit grant
      flows:
        implicit:
          authorizationUrl: https://example.com/oauth/authorize
          scopes:
            write:pets: modify pets
            read:pets: read pets
    api_key:
      type: apiKey
      name: X-API-Key
      in: header
`

const pingYAML = `openapi: 3.0.3
info:
  title: Ping
  version: "1"
paths:
  /ping:
    get:
      summary: health check
`

// writeFixture writes content to a file in a fresh temp dir and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func loadFixture(t *testing.T, content string) *Document {
	t.Helper()

	doc, err := Load(writeFixture(t, "openapi.yaml", content), Options{})
	require.NoError(t, err)

	return doc
}
