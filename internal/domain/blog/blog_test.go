package blog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageCount(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 1, 100},
		{101, 100, 2},
		{5, 0, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, PageCount(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestListFilterOffset(t *testing.T) {
	cases := []struct {
		page, limit int
		want        int
		ok          bool
	}{
		{1, 10, 0, true},
		{3, 10, 20, true},
		{0, 10, 0, true},
		{math.MaxInt, 10, 0, false},
		{math.MaxInt/10 + 2, 10, 0, false},
		{math.MaxInt/10 + 1, 10, math.MaxInt / 10 * 10, true},
		{math.MaxInt, 1, math.MaxInt - 1, true},
	}
	for _, tc := range cases {
		got, ok := ListFilter{Page: tc.page, Limit: tc.limit}.Offset()
		require.Equal(t, tc.ok, ok, "page=%d limit=%d", tc.page, tc.limit)
		require.Equal(t, tc.want, got, "page=%d limit=%d", tc.page, tc.limit)
	}
}
