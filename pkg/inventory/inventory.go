// Package inventory totals block production, sales and waste.
package inventory

import (
	"sort"

	"github.com/abiramimariappan7/mepco/pkg/dataset"
)

// Summary holds the plant-wide totals.
type Summary struct {
	Made      float64 `json:"made"`
	Sold      float64 `json:"sold"`
	Remaining float64 `json:"remaining"`
	WasteKg   float64 `json:"waste_kg"`
	Days      int     `json:"days"`
}

// DailyTotals holds the totals of one date.
type DailyTotals struct {
	Date    string  `json:"date"`
	Made    float64 `json:"made"`
	Sold    float64 `json:"sold"`
	WasteKg float64 `json:"waste_kg"`
}

// SellThrough returns sold/made, or 0 when nothing was made.
func (s Summary) SellThrough() float64 {
	if s.Made == 0 {
		return 0
	}
	return s.Sold / s.Made
}

// Summarize sums every record.
func Summarize(records []dataset.InventoryRecord) Summary {
	var s Summary
	days := map[string]struct{}{}
	for _, r := range records {
		s.Made += r.Made
		s.Sold += r.Sold
		s.Remaining += r.Remaining
		s.WasteKg += r.WasteKg
		days[r.Date] = struct{}{}
	}
	s.Days = len(days)
	return s
}

// ByDate groups records by date, ascending. Dates compare as strings, which
// orders ISO dates chronologically.
func ByDate(records []dataset.InventoryRecord) []DailyTotals {
	index := map[string]int{}
	var out []DailyTotals
	for _, r := range records {
		i, ok := index[r.Date]
		if !ok {
			i = len(out)
			index[r.Date] = i
			out = append(out, DailyTotals{Date: r.Date})
		}
		out[i].Made += r.Made
		out[i].Sold += r.Sold
		out[i].WasteKg += r.WasteKg
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date < out[b].Date })
	return out
}
