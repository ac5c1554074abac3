package common

import "github.com/honeybbq/autosview/pkg/document"

// Paragraphs copies a paragraph list so sections never alias document storage.
// Absent and empty lists both yield an empty, non-nil slice.
func Paragraphs(src []string) []string {
	return append(make([]string, 0, len(src)), src...)
}

// FlattenByTipo concatenates, in document order, the paragraphs of every issue whose tipo
// equals one of tipos. Issues without a tipo never match.
func FlattenByTipo(issues []document.Issue, tipos ...string) []string {
	var total int
	for _, q := range issues {
		if q.HasTipo(tipos...) {
			total += len(q.Paragrafos)
		}
	}
	out := make([]string, 0, total)
	for _, q := range issues {
		if q.HasTipo(tipos...) {
			out = append(out, q.Paragrafos...)
		}
	}
	return out
}

// Unclassified returns the issues whose tipo matches none of tipos, including issues
// with no tipo at all.
func Unclassified(issues []document.Issue, tipos ...string) []document.Issue {
	var out []document.Issue
	for _, q := range issues {
		if !q.HasTipo(tipos...) {
			out = append(out, q)
		}
	}
	return out
}
