// Package presenter renders resolved records as operator-facing text.
//
// Each renderer is an ordered table of rules. A rule writes its fragment only
// when its predicate holds, so every presence check is visible in one place
// and the output order is the table order.
package presenter

import (
	"fmt"
	"strings"
)

type rule[T any] struct {
	name   string
	when   func(T) bool
	render func(*strings.Builder, T)
}

func apply[T any](rules []rule[T], value T) string {
	var sb strings.Builder

	for _, r := range rules {
		if r.when == nil || r.when(value) {
			r.render(&sb, value)
		}
	}

	return sb.String()
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

func always[T any](T) bool {
	return true
}

// writeLine writes an indented line.
func writeLine(sb *strings.Builder, indent int, format string, args ...any) {
	sb.WriteString(strings.Repeat(" ", indent))
	fmt.Fprintf(sb, format, args...)
	sb.WriteByte('\n')
}

// writeOptional writes "label: value" only when value is non-blank.
func writeOptional(sb *strings.Builder, indent int, label, value string) {
	if present(value) {
		writeLine(sb, indent, "%s: %s", label, value)
	}
}
