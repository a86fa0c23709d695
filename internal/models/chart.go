// internal/models/chart.go
package models

import (
	"encoding/json"
	"sort"
)

// DailyCount is one row of an upstream DailyStatus response. The metric
// field is named per collection ("bids" for gig bids, "applications" for the
// rest), so decoding accepts any of the known spellings.
type DailyCount struct {
	Date  string `json:"Date"`
	Count int    `json:"count"`
}

func (d *DailyCount) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range []string{"Date", "date"} {
		if v, ok := raw[key]; ok {
			if err := json.Unmarshal(v, &d.Date); err != nil {
				return err
			}
			break
		}
	}
	for _, key := range []string{"count", "bids", "applications"} {
		if v, ok := raw[key]; ok {
			if err := json.Unmarshal(v, &d.Count); err != nil {
				return err
			}
			break
		}
	}
	return nil
}

// StatusCounts is the per-day accepted/rejected/pending breakdown.
type StatusCounts struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
}

// DailyStatusPoint is one sparse point of a status time series; missing
// days imply zero.
type DailyStatusPoint struct {
	Date     string       `json:"date"`
	Detailed StatusCounts `json:"detailed"`
}

// ChartPoint is one dense point of a windowed chart: a machine-readable day
// key, a display label, and one value per named series. It marshals flat,
// the way chart components consume it: {"key":"2026-08-30","date":"Aug 30",
// "Gig Bids":3,...}.
type ChartPoint struct {
	Key    string
	Date   string
	Series map[string]int
}

func (p ChartPoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(p.Series)+2)
	flat["key"] = p.Key
	flat["date"] = p.Date
	for name, value := range p.Series {
		flat[name] = value
	}
	return json.Marshal(flat)
}

// SeriesNames returns the series keys in stable lexical order, mainly for
// tests and debug output.
func (p ChartPoint) SeriesNames() []string {
	names := make([]string, 0, len(p.Series))
	for name := range p.Series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
