// Package sqlgen renders CREATE TABLE and CREATE INDEX statements for the
// schemas the openapi package extracts, and writes them per service.
package sqlgen

import (
	"fmt"
	"strings"

	"github.com/goldenpath-gen/openapi-sqlgen/internal/dialect"
	"github.com/goldenpath-gen/openapi-sqlgen/internal/openapi"
)

// Generator renders DDL for one dialect. It holds no per-run state; the
// same generator can serve any number of schemas.
type Generator struct {
	dialect dialect.Dialect
}

// New returns a DDL generator for the given dialect.
func New(d dialect.Dialect) *Generator {
	return &Generator{dialect: d}
}

// CreateTable renders the CREATE TABLE statement for a schema, one column
// per property in document order. It returns false for schemas with no
// usable properties; the caller skips those.
func (g *Generator) CreateTable(tableName string, schema *openapi.Schema) (string, bool) {
	if schema == nil || schema.Properties.Len() == 0 {
		return "", false
	}

	keyProp := primaryKeyProperty(schema)

	columns := make([]string, 0, schema.Properties.Len())
	for _, name := range schema.Properties.Names() {
		prop, _ := schema.Properties.Get(name)
		columns = append(columns, fmt.Sprintf("    %s %s", SnakeCase(name), g.columnType(name, prop, keyProp)))
	}

	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", tableName, strings.Join(columns, ",\n")), true
}

// Indexes renders a secondary index for every required property that is not
// the primary key. The required list is a naming-convention heuristic; the
// documents carry no foreign-key declarations to derive indexes from.
func (g *Generator) Indexes(tableName string, schema *openapi.Schema) []string {
	if schema == nil {
		return nil
	}

	keyColumn := SnakeCase(primaryKeyProperty(schema))

	var statements []string
	for _, required := range schema.Required {
		if _, ok := schema.Properties.Get(required); !ok {
			continue
		}
		column := SnakeCase(required)
		if column == keyColumn && keyColumn != "" {
			continue
		}
		statements = append(statements,
			fmt.Sprintf("CREATE INDEX idx_%s_%s ON %s (%s);", tableName, column, tableName, column))
	}
	return statements
}

// columnType resolves one property to its column type, routing the entity
// identifier through the dialect's primary key handling.
func (g *Generator) columnType(name string, prop openapi.Property, keyProp string) string {
	if name != keyProp {
		return g.dialect.Resolve(prop.Type, prop.Format)
	}
	if prop.IsPrimaryKey || prop.Format == "uuid" {
		return g.dialect.UUIDPrimaryKey()
	}
	return g.dialect.Resolve(prop.Type, prop.Format) + " PRIMARY KEY"
}

// primaryKeyProperty applies the identifier convention: an explicitly
// flagged property wins, then a property named "id". An empty result means
// the table is emitted without a key constraint.
func primaryKeyProperty(schema *openapi.Schema) string {
	for _, name := range schema.Properties.Names() {
		if prop, _ := schema.Properties.Get(name); prop.IsPrimaryKey {
			return name
		}
	}
	if _, ok := schema.Properties.Get("id"); ok {
		return "id"
	}
	return ""
}
