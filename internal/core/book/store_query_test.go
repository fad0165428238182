// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookmanager/pkg/pointer"
)

/*
TestListQuery_Predicates numbers the arguments in criteria order and ends with LIMIT and OFFSET.
*/
func TestListQuery_Predicates(t *testing.T) {
	from := NewDate(1985, time.January, 1)
	to := NewDate(1995, time.January, 1)

	tests := []struct {
		name     string
		filter   Filter
		offset   int
		contains []string
		args     []any
	}{
		{
			name:     "empty",
			filter:   Filter{},
			contains: []string{"FROM catalog.book WHERE TRUE ORDER BY title ASC, id ASC LIMIT $1 OFFSET $2"},
			args:     []any{40, 0},
		},
		{
			name:   "all_criteria",
			filter: Filter{Title: "dune", Author: "herbert", Language: "en", PublishedFrom: &from, PublishedTo: &to},
			offset: 80,
			contains: []string{
				"title ILIKE $1",
				"author ILIKE $2",
				"language = $3",
				"publisheddate >= $4",
				"publisheddate <= $5",
				"LIMIT $6 OFFSET $7",
			},
			args: []any{"%dune%", "%herbert%", "en", from.Time, to.Time, 40, 80},
		},
		{
			name:     "newest_first",
			filter:   Filter{Sort: SortNewest, PublishedTo: pointer.To(to)},
			offset:   80,
			contains: []string{"publisheddate <= $1", "ORDER BY publisheddate DESC, title ASC, id ASC", "LIMIT $2 OFFSET $3"},
			args:     []any{to.Time, 40, 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := listQuery(tt.filter, 40, tt.offset)
			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			assert.Contains(t, query, "COUNT(*) OVER() AS total_count")
			assert.Equal(t, tt.args, args)
		})
	}
}

/*
TestListQuery_EscapesWildcards makes %, _ and \ in user input match literally.
*/
func TestListQuery_EscapesWildcards(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100%", `%100\%%`},
		{"snake_case", `%snake\_case%`},
		{`back\slash`, `%back\\slash%`},
		{"plain", "%plain%"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, args := listQuery(Filter{Author: tt.input}, 10, 0)
			assert.Equal(t, tt.want, args[0])
		})
	}
}
