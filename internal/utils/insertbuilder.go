package querybuilder

import (
	"fmt"
	"strings"
)

// InsertBuilder builds multi-row INSERT statements with positional
// placeholders. Column and table names come from table descriptors, never
// from request input.
type InsertBuilder struct {
	schema            string
	table             string
	cols              []string
	rows              [][]interface{}
	conflictCols      []string
	conflictDoNothing bool
}

// NewInsertBuilder creates a builder scoped to a schema
func NewInsertBuilder(schema string) *InsertBuilder {
	return &InsertBuilder{schema: schema}
}

func (b *InsertBuilder) Into(table string) *InsertBuilder {
	b.table = table
	return b
}

func (b *InsertBuilder) Insert(cols ...string) *InsertBuilder {
	b.cols = cols
	return b
}

// Values appends one row; must be called once per row with len(cols) values.
func (b *InsertBuilder) Values(values ...interface{}) *InsertBuilder {
	b.rows = append(b.rows, values)
	return b
}

func (b *InsertBuilder) OnConflictDoNothing(cols ...string) *InsertBuilder {
	b.conflictCols = cols
	b.conflictDoNothing = true
	return b
}

// Build renders the statement and flattened argument list.
func (b *InsertBuilder) Build() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	if b.schema != "" {
		sb.WriteString(b.schema)
		sb.WriteString(".")
	}
	sb.WriteString(b.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(b.cols, ", "))
	sb.WriteString(") VALUES ")

	args := make([]interface{}, 0, len(b.rows)*len(b.cols))
	placeholders := make([]string, 0, len(b.rows))
	n := 1
	for _, row := range b.rows {
		ph := make([]string, len(row))
		for i, v := range row {
			ph[i] = fmt.Sprintf("$%d", n)
			args = append(args, v)
			n++
		}
		placeholders = append(placeholders, "("+strings.Join(ph, ", ")+")")
	}
	sb.WriteString(strings.Join(placeholders, ", "))

	if b.conflictDoNothing {
		sb.WriteString(" ON CONFLICT")
		if len(b.conflictCols) > 0 {
			sb.WriteString(" (")
			sb.WriteString(strings.Join(b.conflictCols, ", "))
			sb.WriteString(")")
		}
		sb.WriteString(" DO NOTHING")
	}

	return sb.String(), args
}
