package dialect

// The tables below are reference data shared by every generation run. The
// output strings are a compatibility surface for downstream DDL consumers,
// so each entry is reproduced verbatim.
//
// Lookup keys are "{type}_{format}" when the property carries a format,
// plain "{type}" otherwise.
var typeTables = map[Dialect]map[string]string{
	PostgreSQL: {
		"integer":          "INTEGER",
		"integer_int64":    "BIGINT",
		"string":           "VARCHAR(255)",
		"string_date-time": "TIMESTAMPTZ",
		"string_date":      "DATE",
		"string_uuid":      "VARCHAR(36)",
		"boolean":          "BOOLEAN",
		"number":           "DECIMAL(10,2)",
		"number_float":     "REAL",
		"number_double":    "DOUBLE PRECISION",
	},
	MySQL: {
		"integer":          "INT",
		"integer_int64":    "BIGINT",
		"string":           "VARCHAR(255)",
		"string_date-time": "DATETIME",
		"string_date":      "DATE",
		"string_uuid":      "VARCHAR(36)",
		"boolean":          "BOOLEAN",
		"number":           "DECIMAL(10,2)",
		"number_float":     "FLOAT",
		"number_double":    "DOUBLE",
	},
	SQLServer: {
		"integer":          "INT",
		"integer_int64":    "BIGINT",
		"string":           "NVARCHAR(255)",
		"string_date-time": "DATETIME2",
		"string_date":      "DATE",
		"string_uuid":      "UNIQUEIDENTIFIER",
		"boolean":          "BIT",
		"number":           "DECIMAL(10,2)",
		"number_float":     "REAL",
		"number_double":    "FLOAT",
	},
	Oracle: {
		"integer":          "NUMBER(10)",
		"integer_int64":    "NUMBER(19)",
		"string":           "VARCHAR2(255)",
		"string_date-time": "TIMESTAMP",
		"string_date":      "DATE",
		"string_uuid":      "VARCHAR2(36)",
		"boolean":          "NUMBER(1)",
		"number":           "NUMBER(10,2)",
		"number_float":     "BINARY_FLOAT",
		"number_double":    "BINARY_DOUBLE",
	},
}

// uuidPrimaryKeys holds the generated-default primary key fragment per
// vendor, used for synthetic UUID identifiers.
var uuidPrimaryKeys = map[Dialect]string{
	PostgreSQL: "UUID DEFAULT gen_random_uuid() PRIMARY KEY",
	MySQL:      "CHAR(36) DEFAULT (UUID()) PRIMARY KEY",
	SQLServer:  "UNIQUEIDENTIFIER DEFAULT NEWID() PRIMARY KEY",
	Oracle:     "RAW(16) DEFAULT SYS_GUID() PRIMARY KEY",
}

// Resolve maps an OpenAPI (type, format) pair to the dialect's column type.
// Resolution tries "{type}_{format}", then "{type}", then falls back to the
// dialect's default string type. Resolve is total: every input yields a type.
func (d Dialect) Resolve(typ, format string) string {
	table := typeTables[d]
	if format != "" {
		if t, ok := table[typ+"_"+format]; ok {
			return t
		}
	}
	if t, ok := table[typ]; ok {
		return t
	}
	return d.DefaultType()
}

// UUIDPrimaryKey returns the dialect's generated primary key DDL fragment.
func (d Dialect) UUIDPrimaryKey() string {
	return uuidPrimaryKeys[d]
}

// DefaultType returns the dialect's default string column type, used when
// no mapping entry matches a property.
func (d Dialect) DefaultType() string {
	return typeTables[d]["string"]
}
