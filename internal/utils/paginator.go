package utils

import (
	"math"
	"strconv"
	"strings"
)

// Page describes one bounded window of an ordered listing.
type Page struct {
	Number     int
	PerPage    int
	TotalPages int
	Total      int64
	Offset     int
	HasNext    bool
	HasPrev    bool
}

// Paginate clamps the raw page input into [1, TotalPages]. Non-numeric or
// missing input falls back to the first page, overshoot to the last; it never
// fails. TotalPages is at least 1 even for an empty collection.
func Paginate(total int64, perPage int, raw string) Page {
	if perPage < 1 {
		perPage = 1
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	number := 1
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		number = n
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
		Offset:     (number - 1) * perPage,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}
