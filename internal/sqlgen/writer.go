package sqlgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goldenpath-gen/openapi-sqlgen/internal/dialect"
)

// FileWriter persists generated DDL under <output>/<dialect>/<service>.sql.
type FileWriter struct {
	dir     string
	dialect dialect.Dialect
}

// NewFileWriter returns a writer targeting the dialect's subdirectory of
// outputDir. The directory is created on first write.
func NewFileWriter(outputDir string, d dialect.Dialect) *FileWriter {
	return &FileWriter{
		dir:     filepath.Join(outputDir, d.String()),
		dialect: d,
	}
}

// Write stores the service's DDL statements, a fixed header first, the
// statements joined by blank lines after. An existing file is overwritten
// unconditionally so regeneration stays idempotent. The header lines are a
// compatibility contract for tooling that parses generated files.
func (w *FileWriter) Write(serviceName string, statements []string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", w.dir, err)
	}

	header := fmt.Sprintf(`-- SQL DDL for %s
-- Database: %s
-- Generated automatically from OpenAPI specification
-- Do not edit manually

`, serviceName, strings.ToUpper(w.dialect.String()))

	content := header + strings.Join(statements, "\n\n") + "\n"

	path := filepath.Join(w.dir, serviceName+".sql")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
