package inventory

import (
	"math"
	"testing"

	"github.com/abiramimariappan7/mepco/pkg/dataset"
)

func records() []dataset.InventoryRecord {
	return []dataset.InventoryRecord{
		{Date: "2024-01-02", Made: 1200, Sold: 1100, Remaining: 100, WasteKg: 7},
		{Date: "2024-01-01", Made: 1000, Sold: 800, Remaining: 200, WasteKg: 12.5},
		{Date: "2024-01-01", Made: 300, Sold: 100, Remaining: 200, WasteKg: 2.5},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(records())
	if s.Made != 2500 || s.Sold != 2000 || s.Remaining != 500 {
		t.Errorf("summary = %+v", s)
	}
	if math.Abs(s.WasteKg-22) > 1e-9 {
		t.Errorf("waste = %v, want 22", s.WasteKg)
	}
	if s.Days != 2 {
		t.Errorf("days = %d, want 2", s.Days)
	}
	if math.Abs(s.SellThrough()-0.8) > 1e-9 {
		t.Errorf("sell-through = %v, want 0.8", s.SellThrough())
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Errorf("empty summary = %+v", s)
	}
	if s.SellThrough() != 0 {
		t.Errorf("sell-through of nothing = %v, want 0", s.SellThrough())
	}
}

func TestByDate(t *testing.T) {
	days := ByDate(records())
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2024-01-01" || days[0].Made != 1300 || days[0].Sold != 900 {
		t.Errorf("day 0 = %+v", days[0])
	}
	if math.Abs(days[0].WasteKg-15) > 1e-9 {
		t.Errorf("day 0 waste = %v, want 15", days[0].WasteKg)
	}
	if days[1].Date != "2024-01-02" || days[1].Made != 1200 {
		t.Errorf("day 1 = %+v", days[1])
	}
}
