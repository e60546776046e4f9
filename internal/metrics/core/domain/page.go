package domain

import "strconv"

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

type Page struct {
	Limit  int
	Offset int
}

// ParsePage reads limit/offset query values. Absent, non-numeric or
// negative values fall back to the defaults instead of failing.
func ParsePage(limit, offset string) Page {
	return Page{
		Limit:  parseOr(limit, DefaultLimit),
		Offset: parseOr(offset, DefaultOffset),
	}
}

func parseOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
