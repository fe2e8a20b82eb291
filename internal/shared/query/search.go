package query

import (
	"strings"

	"gorm.io/gorm"
)

// ApplySearch narrows tx with a case-insensitive multi-term substring search.
// The phrase is split on whitespace; every term must match at least one of the
// given columns (terms AND-ed, columns OR-ed per term). An empty phrase leaves
// tx untouched, as do existing conditions and ordering on it.
func ApplySearch(tx *gorm.DB, phrase string, columns ...string) *gorm.DB {
	terms := strings.Fields(phrase)
	if len(terms) == 0 || len(columns) == 0 {
		return tx
	}

	for _, term := range terms {
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

		group := tx.Session(&gorm.Session{NewDB: true})
		for i, column := range columns {
			// The explicit ESCAPE character works identically on MySQL
			// and SQLite; a backslash would not.
			cond := "LOWER(" + column + ") LIKE ? ESCAPE '|'"
			if i == 0 {
				group = group.Where(cond, pattern)
			} else {
				group = group.Or(cond, pattern)
			}
		}
		tx = tx.Where(group)
	}

	return tx
}

// escapeLike neutralizes LIKE metacharacters so search terms match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "|", "||")
	s = strings.ReplaceAll(s, "%", "|%")
	s = strings.ReplaceAll(s, "_", "|_")
	return s
}
