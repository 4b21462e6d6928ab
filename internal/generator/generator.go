// Package generator drives one generation run: discover OpenAPI documents,
// extract persistable schemas, render DDL and write one file per service.
package generator

import (
	"errors"
	"fmt"
	"log"

	"github.com/goldenpath-gen/openapi-sqlgen/internal/dialect"
	"github.com/goldenpath-gen/openapi-sqlgen/internal/openapi"
	"github.com/goldenpath-gen/openapi-sqlgen/internal/sqlgen"
)

// Per-service outcomes that are skips rather than failures.
var (
	// ErrNoSchemas means a document contains no Response/Status schemas.
	ErrNoSchemas = errors.New("no Response/Status schemas found")

	// ErrNoStatements means the eligible schemas produced no DDL, for
	// example because every schema has an empty properties map.
	ErrNoStatements = errors.New("no valid schemas")
)

// Generator orchestrates the batch. Services are processed sequentially
// and independently; one service failing never aborts the run.
type Generator struct {
	dialect   dialect.Dialect
	processor *openapi.Processor
	sql       *sqlgen.Generator
	writer    *sqlgen.FileWriter
	buildDir  string
}

// New validates the dialect and wires the pipeline. An unsupported dialect
// fails here, before any file is touched.
func New(buildDir, outputDir, dialectValue string) (*Generator, error) {
	d, err := dialect.Parse(dialectValue)
	if err != nil {
		return nil, err
	}
	return &Generator{
		dialect:   d,
		processor: openapi.NewProcessor(buildDir),
		sql:       sqlgen.New(d),
		writer:    sqlgen.NewFileWriter(outputDir, d),
		buildDir:  buildDir,
	}, nil
}

// Dialect returns the dialect the generator was constructed with.
func (g *Generator) Dialect() dialect.Dialect {
	return g.dialect
}

// GenerateAll runs the batch over every discovered service. Per-service
// errors are logged with the service name and skipped; the returned error
// covers fatal conditions only (an unreadable build tree).
func (g *Generator) GenerateAll() error {
	files, err := g.processor.FindOpenAPIFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Printf("No OpenAPI files found in %s", g.buildDir)
		return nil
	}

	log.Printf("Found %d OpenAPI files", len(files))

	written := 0
	for _, file := range files {
		log.Printf("Processing %s...", file.ServiceName)

		path, err := g.generateService(file)
		switch {
		case errors.Is(err, ErrNoSchemas):
			log.Printf("  No Response/Status schemas found in %s", file.ServiceName)
		case errors.Is(err, ErrNoStatements):
			log.Printf("  No valid schemas found for %s", file.ServiceName)
		case err != nil:
			log.Printf("  Error processing %s: %v", file.ServiceName, err)
		default:
			log.Printf("  Generated: %s", path)
			written++
		}
	}

	log.Printf("SQL generation completed: %d file(s) written", written)
	return nil
}

// generateService assembles all DDL for one service before anything is
// written, so a failure never leaves a partial file behind.
func (g *Generator) generateService(file openapi.FileInfo) (string, error) {
	doc, err := g.processor.LoadSpec(file.Path)
	if err != nil {
		return "", err
	}

	schemas := openapi.ExtractResponseSchemas(doc)
	if len(schemas) == 0 {
		return "", ErrNoSchemas
	}

	names := make([]string, 0, len(schemas))
	for _, s := range schemas {
		names = append(names, s.Name)
	}
	log.Printf("  Found %d schemas: %v", len(schemas), names)

	var statements []string
	for _, s := range schemas {
		tableName := sqlgen.TableName(s.Name)
		if createTable, ok := g.sql.CreateTable(tableName, s.Schema); ok {
			statements = append(statements, createTable)
			statements = append(statements, g.sql.Indexes(tableName, s.Schema)...)
		}
	}
	if len(statements) == 0 {
		return "", ErrNoStatements
	}

	path, err := g.writer.Write(file.ServiceName, statements)
	if err != nil {
		return "", fmt.Errorf("writing output for %s: %w", file.ServiceName, err)
	}
	return path, nil
}
