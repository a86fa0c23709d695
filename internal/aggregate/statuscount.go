// internal/aggregate/statuscount.go
package aggregate

import (
	"sort"

	"talenthub-dashboard/internal/models"
)

// MonthlySummary is the KPI card payload for one posting type: a grand
// total plus the month-over-month delta.
type MonthlySummary struct {
	TotalPosts     int  `json:"totalPosts"`
	MonthlyChange  int  `json:"monthlyChange"`
	IsIncrease     bool `json:"isIncrease"`
	LastMonthCount int  `json:"lastMonthCount"`
	PrevMonthCount int  `json:"prevMonthCount"`
}

// DatedCount is one record's contribution to the monthly rollup.
type DatedCount struct {
	Date  string
	Count int
}

// SummarizeMonthly groups counts by calendar month (the YYYY-MM prefix of
// each date), sums per group, and compares the two most recent months
// present in the data. Fewer than two months leaves the previous count at
// zero; empty input yields all zeros with isIncrease false.
func SummarizeMonthly(items []DatedCount) MonthlySummary {
	if len(items) == 0 {
		return MonthlySummary{}
	}

	byMonth := make(map[string]int)
	total := 0
	for _, item := range items {
		total += item.Count
		if len(item.Date) < 7 {
			continue
		}
		byMonth[item.Date[:7]] += item.Count
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	summary := MonthlySummary{TotalPosts: total}
	if len(months) > 0 {
		summary.LastMonthCount = byMonth[months[len(months)-1]]
	}
	if len(months) > 1 {
		summary.PrevMonthCount = byMonth[months[len(months)-2]]
	}
	summary.MonthlyChange = summary.LastMonthCount - summary.PrevMonthCount
	summary.IsIncrease = summary.MonthlyChange >= 0
	return summary
}

// PostingVolumes maps postings to their child-document volumes for the
// rollup, keyed by posting date.
func PostingVolumes(postings []models.Posting) []DatedCount {
	items := make([]DatedCount, 0, len(postings))
	for _, p := range postings {
		items = append(items, DatedCount{Date: p.PostedAt, Count: p.DocumentCount})
	}
	return items
}

// PostingCounts maps postings to a count of one each, for rollups that
// track how many postings went up rather than how many documents they drew.
func PostingCounts(postings []models.Posting) []DatedCount {
	items := make([]DatedCount, 0, len(postings))
	for _, p := range postings {
		items = append(items, DatedCount{Date: p.PostedAt, Count: 1})
	}
	return items
}
