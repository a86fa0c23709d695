// internal/aggregate/window.go
package aggregate

import (
	"time"

	"talenthub-dashboard/internal/models"
)

const (
	dayKeyLayout   = "2006-01-02"
	dayLabelLayout = "Jan 2"
)

// WindowCounts densifies sparse per-day series into exactly `days` points
// ending on `now`'s day, chronological ascending. Each named series is
// looked up by day key and zero-filled where the raw data has no row, so a
// quiet week still renders seven points.
func WindowCounts(seriesByName map[string][]models.DailyCount, days int, now time.Time) []models.ChartPoint {
	lookups := make(map[string]map[string]int, len(seriesByName))
	for name, series := range seriesByName {
		lookup := make(map[string]int, len(series))
		for _, point := range series {
			lookup[dayKey(point.Date)] += point.Count
		}
		lookups[name] = lookup
	}

	points := make([]models.ChartPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format(dayKeyLayout)

		values := make(map[string]int, len(seriesByName))
		for name := range seriesByName {
			values[name] = lookups[name][key]
		}
		points = append(points, models.ChartPoint{
			Key:    key,
			Date:   day.Format(dayLabelLayout),
			Series: values,
		})
	}
	return points
}

// WindowStatus densifies a sparse status-breakdown series the same way,
// producing the three fixed accepted/rejected/pending series.
func WindowStatus(points []models.DailyStatusPoint, days int, now time.Time) []models.ChartPoint {
	accepted := make([]models.DailyCount, 0, len(points))
	rejected := make([]models.DailyCount, 0, len(points))
	pending := make([]models.DailyCount, 0, len(points))
	for _, p := range points {
		accepted = append(accepted, models.DailyCount{Date: p.Date, Count: p.Detailed.Accepted})
		rejected = append(rejected, models.DailyCount{Date: p.Date, Count: p.Detailed.Rejected})
		pending = append(pending, models.DailyCount{Date: p.Date, Count: p.Detailed.Pending})
	}
	return WindowCounts(map[string][]models.DailyCount{
		"accepted": accepted,
		"rejected": rejected,
		"pending":  pending,
	}, days, now)
}

// dayKey reduces any ISO date or datetime string to its YYYY-MM-DD prefix.
func dayKey(date string) string {
	if len(date) > len(dayKeyLayout) {
		return date[:len(dayKeyLayout)]
	}
	return date
}
