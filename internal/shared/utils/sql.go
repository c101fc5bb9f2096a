package utils

import (
	"fmt"
	"strings"
)

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of strings with OR operator
func JoinWithOr(clauses []string) string {
	return strings.Join(clauses, " OR ")
}

// WhereBuilder collects filter clauses with positional ($n) arguments
type WhereBuilder struct {
	clauses []string
	args    []any
}

// Arg registers a value and returns its placeholder
func (w *WhereBuilder) Arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *WhereBuilder) Add(clause string) {
	w.clauses = append(w.clauses, clause)
}

// SQL returns " WHERE ..." or an empty string when no clause was added
func (w *WhereBuilder) SQL() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + JoinWithAnd(w.clauses)
}

func (w *WhereBuilder) Args() []any {
	return w.args
}
