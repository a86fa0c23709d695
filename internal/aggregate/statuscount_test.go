// internal/aggregate/statuscount_test.go
package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talenthub-dashboard/internal/models"
)

func TestSummarizeMonthly(t *testing.T) {
	tests := []struct {
		name     string
		items    []DatedCount
		expected MonthlySummary
	}{
		{
			name: "two months increasing",
			items: []DatedCount{
				{Date: "2026-07-03", Count: 2},
				{Date: "2026-07-21", Count: 1},
				{Date: "2026-08-10", Count: 5},
			},
			expected: MonthlySummary{
				TotalPosts:     8,
				MonthlyChange:  2,
				IsIncrease:     true,
				LastMonthCount: 5,
				PrevMonthCount: 3,
			},
		},
		{
			name: "two months decreasing",
			items: []DatedCount{
				{Date: "2026-07-03", Count: 6},
				{Date: "2026-08-10", Count: 2},
			},
			expected: MonthlySummary{
				TotalPosts:     8,
				MonthlyChange:  -4,
				IsIncrease:     false,
				LastMonthCount: 2,
				PrevMonthCount: 6,
			},
		},
		{
			name: "single month has zero previous",
			items: []DatedCount{
				{Date: "2026-08-10", Count: 3},
			},
			expected: MonthlySummary{
				TotalPosts:     3,
				MonthlyChange:  3,
				IsIncrease:     true,
				LastMonthCount: 3,
				PrevMonthCount: 0,
			},
		},
		{
			name:     "empty input is all zeros",
			items:    nil,
			expected: MonthlySummary{},
		},
		{
			name: "flat months count as increase",
			items: []DatedCount{
				{Date: "2026-07-01", Count: 4},
				{Date: "2026-08-01", Count: 4},
			},
			expected: MonthlySummary{
				TotalPosts:     8,
				MonthlyChange:  0,
				IsIncrease:     true,
				LastMonthCount: 4,
				PrevMonthCount: 4,
			},
		},
		{
			name: "months compare by key not by arrival order",
			items: []DatedCount{
				{Date: "2026-08-01", Count: 1},
				{Date: "2026-06-15", Count: 9},
				{Date: "2026-07-20", Count: 2},
			},
			expected: MonthlySummary{
				TotalPosts:     12,
				MonthlyChange:  -1,
				IsIncrease:     false,
				LastMonthCount: 1,
				PrevMonthCount: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SummarizeMonthly(tt.items))
		})
	}
}

func TestSummarizeMonthly_MalformedDatesIgnoredForGrouping(t *testing.T) {
	got := SummarizeMonthly([]DatedCount{
		{Date: "bad", Count: 2},
		{Date: "2026-08-01", Count: 3},
	})
	assert.Equal(t, 5, got.TotalPosts)
	assert.Equal(t, 3, got.LastMonthCount)
}

func TestPostingVolumes(t *testing.T) {
	postings := []models.Posting{
		{ID: "j1", PostedAt: "2026-08-01", DocumentCount: 7},
		{ID: "j2", PostedAt: "2026-08-09", DocumentCount: 0},
	}
	assert.Equal(t, []DatedCount{
		{Date: "2026-08-01", Count: 7},
		{Date: "2026-08-09", Count: 0},
	}, PostingVolumes(postings))
}

func TestPostingCounts(t *testing.T) {
	postings := []models.Posting{
		{ID: "j1", PostedAt: "2026-08-01", DocumentCount: 7},
		{ID: "j2", PostedAt: "2026-08-09"},
	}
	assert.Equal(t, []DatedCount{
		{Date: "2026-08-01", Count: 1},
		{Date: "2026-08-09", Count: 1},
	}, PostingCounts(postings))
}
