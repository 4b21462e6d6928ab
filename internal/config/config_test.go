package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenpath-gen/openapi-sqlgen/internal/config"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := config.NewConfig()
	assert.Equal(t, "build/smithy", cfg.BuildDir)
	assert.Equal(t, "sql", cfg.OutputDir)
	assert.Empty(t, cfg.ParamsPath)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("SQLGEN_BUILD_DIR", "out/openapi")
	t.Setenv("SQLGEN_OUTPUT_DIR", "generated/sql")
	t.Setenv("SQLGEN_PARAMS", "libs/config/params.json")

	cfg := config.NewConfig()
	assert.Equal(t, "out/openapi", cfg.BuildDir)
	assert.Equal(t, "generated/sql", cfg.OutputDir)
	assert.Equal(t, "libs/config/params.json", cfg.ParamsPath)
}

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"project_name": "user-service", "database": {"sgbd": "oracle"}},
		{"project_name": "order-service", "database": {"sgbd": "mysql"}}
	]`), 0o600))

	projects, err := config.LoadParams(path)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "user-service", projects[0].Name)

	// The first project selects the dialect.
	assert.Equal(t, "oracle", config.DialectFrom(projects))
}

func TestLoadParamsMissingFile(t *testing.T) {
	_, err := config.LoadParams(filepath.Join(t.TempDir(), "params.json"))
	require.Error(t, err)
}

func TestLoadParamsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o600))

	_, err := config.LoadParams(path)
	require.Error(t, err)
}

func TestDialectFromDefaults(t *testing.T) {
	assert.Equal(t, "postgresql", config.DialectFrom(nil))
	assert.Equal(t, "postgresql", config.DialectFrom([]config.Project{{Name: "svc"}}))
}
