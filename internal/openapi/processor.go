package openapi

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileInfo identifies one discovered OpenAPI document and the service it
// belongs to.
type FileInfo struct {
	ServiceName string
	Path        string
}

// NamedSchema pairs a schema with the name it was registered under.
type NamedSchema struct {
	Name   string
	Schema *Schema
}

// Processor locates and parses OpenAPI documents under a build output tree.
type Processor struct {
	buildDir string
}

// NewProcessor returns a processor scanning the given build directory.
func NewProcessor(buildDir string) *Processor {
	return &Processor{buildDir: buildDir}
}

// FindOpenAPIFiles walks the build tree and returns every OpenAPI document
// with its derived service name, in lexical path order. A missing or empty
// tree yields an empty slice, not an error.
func (p *Processor) FindOpenAPIFiles() ([]FileInfo, error) {
	if _, err := os.Stat(p.buildDir); os.IsNotExist(err) {
		return nil, nil
	}

	var files []FileInfo
	err := filepath.WalkDir(p.buildDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isOpenAPIFile(d.Name()) {
			return nil
		}
		files = append(files, FileInfo{
			ServiceName: serviceNameFor(path),
			Path:        path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", p.buildDir, err)
	}
	return files, nil
}

// LoadSpec parses one OpenAPI document (JSON or YAML) and validates its
// structure. Malformed input surfaces as an error for the caller to handle.
func (p *Processor) LoadSpec(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc Document
	if isYAMLFile(path) {
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		// Route the YAML value through encoding/json so the validator sees
		// json-typed values.
		jsonData, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		var jsonRaw any
		if err := json.Unmarshal(jsonData, &jsonRaw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := validateDocument(jsonRaw); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return &doc, nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}

// ExtractResponseSchemas filters a document's schemas down to the ones that
// represent persistable entities, in document order. An empty result is a
// normal outcome for services without Response/Status schemas.
func ExtractResponseSchemas(doc *Document) []NamedSchema {
	var out []NamedSchema
	for _, name := range doc.Components.Schemas.Names() {
		if !IsPersistableSchema(name) {
			continue
		}
		schema, ok := doc.Components.Schemas.Get(name)
		if !ok || schema == nil {
			continue
		}
		out = append(out, NamedSchema{Name: name, Schema: schema})
	}
	return out
}

// IsPersistableSchema is the naming-convention rule selecting which schemas
// become tables: names ending in Response or Status. It is a business rule,
// kept as a named predicate so the convention can be swapped.
func IsPersistableSchema(name string) bool {
	return strings.HasSuffix(name, "Response") || strings.HasSuffix(name, "Status")
}

// isOpenAPIFile recognizes Smithy-style projection output
// (Service.openapi.json) plus plain json/yaml documents named openapi.*.
func isOpenAPIFile(name string) bool {
	if strings.HasSuffix(name, ".openapi.json") || strings.HasSuffix(name, ".openapi.yaml") {
		return true
	}
	base := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(name, ".json"), ".yaml"), ".yml")
	return base == "openapi"
}

// serviceNameFor derives the service name from the file location: the file
// stem for Service.openapi.json files, the parent directory for bare
// openapi.json documents.
func serviceNameFor(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.TrimSuffix(name, ".openapi")
	if name == "openapi" {
		return filepath.Base(filepath.Dir(path))
	}
	return name
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
