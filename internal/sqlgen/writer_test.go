package sqlgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenpath-gen/openapi-sqlgen/internal/dialect"
	"github.com/goldenpath-gen/openapi-sqlgen/internal/sqlgen"
)

func TestFileWriterHeaderAndLayout(t *testing.T) {
	outputDir := t.TempDir()
	w := sqlgen.NewFileWriter(outputDir, dialect.PostgreSQL)

	path, err := w.Write("user-service", []string{
		"CREATE TABLE user_response (\n    id UUID DEFAULT gen_random_uuid() PRIMARY KEY\n);",
		"CREATE INDEX idx_user_response_email ON user_response (email);",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "postgresql", "user-service.sql"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "-- SQL DDL for user-service\n" +
		"-- Database: POSTGRESQL\n" +
		"-- Generated automatically from OpenAPI specification\n" +
		"-- Do not edit manually\n" +
		"\n" +
		"CREATE TABLE user_response (\n    id UUID DEFAULT gen_random_uuid() PRIMARY KEY\n);\n" +
		"\n" +
		"CREATE INDEX idx_user_response_email ON user_response (email);\n"
	assert.Equal(t, want, string(content))
}

func TestFileWriterOverwrites(t *testing.T) {
	outputDir := t.TempDir()
	w := sqlgen.NewFileWriter(outputDir, dialect.Oracle)

	first, err := w.Write("svc", []string{"CREATE TABLE a (\n    x NUMBER(10)\n);"})
	require.NoError(t, err)

	second, err := w.Write("svc", []string{"CREATE TABLE b (\n    y NUMBER(10)\n);"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	content, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(content), "CREATE TABLE b")
	assert.NotContains(t, string(content), "CREATE TABLE a")
	assert.Contains(t, string(content), "-- Database: ORACLE")
}
