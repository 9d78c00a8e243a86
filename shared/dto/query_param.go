package dto

import "fmt"

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries the ordering of a list read. SortBy must be a column
// expression chosen by the caller from a fixed set, never raw user input.
type QueryParams struct {
	SortBy  string `json:"sort_by"`
	SortDir string `json:"sort_dir"`
}

// OrderClause renders the ORDER BY clause, breaking ties on tieBreaker in
// the same direction. It returns an empty string when no ordering is set.
func (q QueryParams) OrderClause(tieBreaker string) string {
	if q.SortBy == "" {
		return ""
	}

	dir := q.SortDir
	if dir != SortDirDesc {
		dir = SortDirAsc
	}

	if tieBreaker == "" || tieBreaker == q.SortBy {
		return fmt.Sprintf("ORDER BY %s %s", q.SortBy, dir)
	}

	return fmt.Sprintf("ORDER BY %s %s, %s %s", q.SortBy, dir, tieBreaker, dir)
}
