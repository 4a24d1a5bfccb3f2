package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginateClampsToBounds(t *testing.T) {
	// 35 items, 10 per page -> 4 pages.
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"missing", "", 1},
		{"non numeric", "abc", 1},
		{"zero", "0", 1},
		{"negative", "-3", 1},
		{"first", "1", 1},
		{"middle", "2", 2},
		{"last", "4", 4},
		{"overshoot", "99", 4},
		{"whitespace", " 3 ", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := Paginate(35, 10, tc.raw)
			require.Equal(t, tc.want, page.Number)
			require.Equal(t, 4, page.TotalPages)
			require.Equal(t, (tc.want-1)*10, page.Offset)
			require.Equal(t, tc.want > 1, page.HasPrev)
			require.Equal(t, tc.want < 4, page.HasNext)
		})
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate(0, 10, "7")
	require.Equal(t, 1, page.Number)
	require.Equal(t, 1, page.TotalPages)
	require.Zero(t, page.Offset)
	require.False(t, page.HasNext)
	require.False(t, page.HasPrev)
}

func TestPaginateExactMultiple(t *testing.T) {
	page := Paginate(30, 10, "3")
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 3, page.Number)
	require.False(t, page.HasNext)
}

func TestPaginateBadPerPage(t *testing.T) {
	page := Paginate(5, 0, "2")
	require.Equal(t, 1, page.PerPage)
	require.Equal(t, 5, page.TotalPages)
}
