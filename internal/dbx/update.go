package dbx

import (
	"fmt"
	"strings"
)

// Assignment is one "column = value" pair of a partial UPDATE.
// Column names always come from repository code, never from user input.
type Assignment struct {
	Column string
	Value  any
}

// Set appends an assignment for column when v is supplied (non-nil).
func Set[T any](list []Assignment, column string, v *T) []Assignment {
	if v == nil {
		return list
	}
	return append(list, Assignment{Column: column, Value: *v})
}

// BuildUpdate renders a positional-parameter UPDATE statement:
//
//	UPDATE printers SET model = $1, status = $2 WHERE printer_id = $3
//
// The id is always the last argument. Callers must not pass an empty set.
func BuildUpdate(table, idColumn string, id any, set []Assignment) (string, []any) {
	parts := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+1)
	for i, a := range set {
		parts = append(parts, fmt.Sprintf("%s = $%d", a.Column, i+1))
		args = append(args, a.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(parts, ", "), idColumn, len(set)+1)
	return query, args
}
