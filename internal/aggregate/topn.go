// internal/aggregate/topn.go
package aggregate

import (
	"math"
	"sort"

	"talenthub-dashboard/internal/models"
)

// StatusPercentages holds the rounded share of each bucket against the
// full application total.
type StatusPercentages struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
}

// RankedPosting is one row of a volume leaderboard.
type RankedPosting struct {
	ID          string              `json:"_id"`
	Title       string              `json:"title"`
	Type        models.PostingType  `json:"type,omitempty"`
	Total       int                 `json:"total"`
	Counts      models.StatusCounts `json:"counts"`
	Percentages StatusPercentages   `json:"percentages"`
}

// TopByVolume ranks grouped postings by application volume and returns the
// first n with their status breakdown. The sort is stable, so ties keep
// input order. Unrecognized statuses count toward the total but land in no
// bucket, so the percentages may sum below 100. They never sum above it.
func TopByVolume(groups []PostingWithApplications, n int) []RankedPosting {
	ranked := make([]PostingWithApplications, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].Applications) > len(ranked[j].Applications)
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	rows := make([]RankedPosting, 0, len(ranked))
	for _, group := range ranked {
		counts, total := BucketStatuses(group.Applications)
		rows = append(rows, RankedPosting{
			ID:     group.ID,
			Title:  group.Title,
			Type:   group.Type,
			Total:       total,
			Counts:      counts,
			Percentages: bucketPercentages(counts, total),
		})
	}
	return rows
}

// BucketStatuses tallies applications into the normalized status buckets
// and returns the overall total alongside.
func BucketStatuses(apps []models.Application) (models.StatusCounts, int) {
	var counts models.StatusCounts
	for _, app := range apps {
		switch models.ParseStatus(app.Status) {
		case models.StatusAccepted:
			counts.Accepted++
		case models.StatusRejected:
			counts.Rejected++
		case models.StatusPending:
			counts.Pending++
		}
	}
	return counts, len(apps)
}

// bucketPercentages converts the bucket counts to whole percentages by
// largest-remainder apportionment. Rounding each bucket independently can
// overshoot (3/3/2 of 8 rounds to 38+38+25), so instead each bucket takes
// its floor and the leftover points go to the largest fractional parts,
// first bucket winning ties. Every value stays within one point of the
// exact share and the sum never exceeds 100.
func bucketPercentages(counts models.StatusCounts, total int) StatusPercentages {
	if total == 0 {
		return StatusPercentages{}
	}

	parts := [3]int{counts.Accepted, counts.Rejected, counts.Pending}
	var whole [3]int
	var fracs [3]float64
	exactSum := 0.0
	for i, part := range parts {
		exact := float64(part) / float64(total) * 100
		whole[i] = int(exact)
		fracs[i] = exact - float64(whole[i])
		exactSum += exact
	}

	extra := int(math.Round(exactSum)) - (whole[0] + whole[1] + whole[2])
	for ; extra > 0; extra-- {
		best := 0
		for i := 1; i < len(fracs); i++ {
			if fracs[i] > fracs[best] {
				best = i
			}
		}
		whole[best]++
		fracs[best] = -1
	}

	return StatusPercentages{Accepted: whole[0], Rejected: whole[1], Pending: whole[2]}
}
