package sqlgen

import (
	"strings"
	"unicode"
)

// TableName derives the SQL table name for a schema: UserResponse becomes
// user_response.
func TableName(schemaName string) string {
	return SnakeCase(schemaName)
}

// SnakeCase converts camelCase and PascalCase identifiers to snake_case,
// keeping acronym runs together (HTTPStatus -> http_status).
func SnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			boundary := i > 0 &&
				(unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
					(unicode.IsUpper(runes[i-1]) && i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if boundary {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '-' || r == ' ' {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
