// Package dialect holds the supported SQL dialects and the reference
// tables that map OpenAPI property types to vendor column types.
package dialect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedDialect is returned when a dialect value is not one of the
// four supported vendors
var ErrUnsupportedDialect = errors.New("unsupported dialect")

// Dialect identifies a SQL vendor syntax variant
type Dialect string

const (
	PostgreSQL Dialect = "postgresql"
	MySQL      Dialect = "mysql"
	SQLServer  Dialect = "sqlserver"
	Oracle     Dialect = "oracle"
)

// Supported lists the dialects a generator can be constructed with, in
// documentation order.
func Supported() []Dialect {
	return []Dialect{PostgreSQL, MySQL, SQLServer, Oracle}
}

// Parse normalizes and validates a dialect value. The error names the
// rejected value and every supported dialect.
func Parse(value string) (Dialect, error) {
	d := Dialect(strings.ToLower(strings.TrimSpace(value)))
	for _, s := range Supported() {
		if d == s {
			return d, nil
		}
	}
	names := make([]string, 0, len(Supported()))
	for _, s := range Supported() {
		names = append(names, string(s))
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedDialect, value, strings.Join(names, ", "))
}

// String returns the lowercase dialect name used in paths and config values.
func (d Dialect) String() string {
	return string(d)
}
