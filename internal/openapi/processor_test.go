package openapi_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenpath-gen/openapi-sqlgen/internal/openapi"
)

const userServiceDoc = `{
  "openapi": "3.0.2",
  "info": {"title": "UserService", "version": "1.0.0"},
  "components": {
    "schemas": {
      "UserResponse": {
        "type": "object",
        "properties": {
          "id": {"type": "string", "format": "uuid", "isPrimaryKey": true},
          "email": {"type": "string"},
          "createdAt": {"type": "string", "format": "date-time"}
        },
        "required": ["email"]
      },
      "UserRequest": {
        "type": "object",
        "properties": {"email": {"type": "string"}}
      },
      "OrderStatus": {
        "type": "object",
        "properties": {"id": {"type": "string"}, "state": {"type": "string"}}
      }
    }
  }
}`

const userServiceDocYAML = `openapi: "3.0.2"
info:
  title: UserService
  version: "1.0.0"
components:
  schemas:
    UserResponse:
      type: object
      properties:
        id:
          type: string
          format: uuid
          isPrimaryKey: true
        email:
          type: string
        createdAt:
          type: string
          format: date-time
      required:
        - email
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFindOpenAPIFiles(t *testing.T) {
	buildDir := t.TempDir()
	writeFile(t, filepath.Join(buildDir, "user", "openapi", "UserService.openapi.json"), userServiceDoc)
	writeFile(t, filepath.Join(buildDir, "order", "openapi.yaml"), userServiceDocYAML)
	writeFile(t, filepath.Join(buildDir, "order", "notes.txt"), "not a spec")
	writeFile(t, filepath.Join(buildDir, "order", "manifest.json"), "{}")

	p := openapi.NewProcessor(buildDir)
	files, err := p.FindOpenAPIFiles()
	require.NoError(t, err)
	require.Len(t, files, 2)

	// WalkDir is lexical, so order/ comes before user/.
	assert.Equal(t, "order", files[0].ServiceName)
	assert.Equal(t, "UserService", files[1].ServiceName)
}

func TestFindOpenAPIFilesMissingTree(t *testing.T) {
	p := openapi.NewProcessor(filepath.Join(t.TempDir(), "does-not-exist"))
	files, err := p.FindOpenAPIFiles()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoadSpecJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "UserService.openapi.json")
	writeFile(t, path, userServiceDoc)

	doc, err := openapi.NewProcessor("").LoadSpec(path)
	require.NoError(t, err)

	assert.Equal(t, "3.0.2", doc.OpenAPI)
	assert.Equal(t, "UserService", doc.Info.Title)
	require.Equal(t, 3, doc.Components.Schemas.Len())

	// Schema and property order follow the document.
	assert.Equal(t, []string{"UserResponse", "UserRequest", "OrderStatus"}, doc.Components.Schemas.Names())

	user, ok := doc.Components.Schemas.Get("UserResponse")
	require.True(t, ok)
	assert.Equal(t, []string{"id", "email", "createdAt"}, user.Properties.Names())
	assert.Equal(t, []string{"email"}, user.Required)

	id, ok := user.Properties.Get("id")
	require.True(t, ok)
	assert.Equal(t, "string", id.Type)
	assert.Equal(t, "uuid", id.Format)
	assert.True(t, id.IsPrimaryKey)
}

func TestLoadSpecYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	writeFile(t, path, userServiceDocYAML)

	doc, err := openapi.NewProcessor("").LoadSpec(path)
	require.NoError(t, err)

	user, ok := doc.Components.Schemas.Get("UserResponse")
	require.True(t, ok)
	assert.Equal(t, []string{"id", "email", "createdAt"}, user.Properties.Names())

	id, _ := user.Properties.Get("id")
	assert.True(t, id.IsPrimaryKey)
}

func TestLoadSpecMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.openapi.json")
	writeFile(t, path, `{"openapi": "3.0.2", "info":`)

	_, err := openapi.NewProcessor("").LoadSpec(path)
	require.Error(t, err)
}

func TestLoadSpecRejectsNonOpenAPIDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")
	writeFile(t, path, `{"swagger": "2.0", "info": {"title": "Old", "version": "1"}}`)

	_, err := openapi.NewProcessor("").LoadSpec(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid OpenAPI document")
}

func TestExtractResponseSchemas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "UserService.openapi.json")
	writeFile(t, path, userServiceDoc)

	doc, err := openapi.NewProcessor("").LoadSpec(path)
	require.NoError(t, err)

	schemas := openapi.ExtractResponseSchemas(doc)
	require.Len(t, schemas, 2)
	assert.Equal(t, "UserResponse", schemas[0].Name)
	assert.Equal(t, "OrderStatus", schemas[1].Name)
}

func TestExtractResponseSchemasNoneMatching(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")
	writeFile(t, path, `{
		"openapi": "3.0.2",
		"info": {"title": "Internal", "version": "1.0.0"},
		"components": {"schemas": {"UserRequest": {"type": "object"}, "Pagination": {"type": "object"}}}
	}`)

	doc, err := openapi.NewProcessor("").LoadSpec(path)
	require.NoError(t, err)

	// No matches is an expected outcome, not an error.
	assert.Empty(t, openapi.ExtractResponseSchemas(doc))
}

func TestIsPersistableSchema(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"UserResponse", true},
		{"OrderStatus", true},
		{"Response", true},
		{"UserRequest", false},
		{"ResponseWrapper", false},
		{"StatusCode", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, openapi.IsPersistableSchema(tc.name))
		})
	}
}
