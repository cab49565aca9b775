// Package dataset turns the rows of the plant's spreadsheet into typed
// records. Decoding the workbook itself is left to excelize; the decoders in
// this package only see [][]string rows whose first row is the header.
package dataset

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names used by the plant workbook.
const (
	DefaultEmployeeSheet  = "Employee Salary Data"
	DefaultBlockSheet     = "Block Estimation"
	DefaultInventorySheet = "Inventory Data"
)

// ErrSheetNotFound is returned when a requested sheet is absent.
var ErrSheetNotFound = errors.New("sheet not found")

// Workbook holds every sheet of a spreadsheet as raw rows.
type Workbook struct {
	Sheets map[string][][]string
	order  []string
}

// ReadWorkbook reads an xlsx document.
func ReadWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return readSheets(f)
}

// OpenWorkbook reads an xlsx file from disk.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return readSheets(f)
}

func readSheets(f *excelize.File) (*Workbook, error) {
	w := &Workbook{Sheets: make(map[string][][]string)}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		w.Sheets[name] = rows
		w.order = append(w.order, name)
	}
	return w, nil
}

// SheetNames returns sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return append([]string(nil), w.order...)
}

// Rows returns the rows of sheet.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	rows, ok := w.Sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return rows, nil
}

// Employees decodes the employee sheet. An empty name selects the default.
func (w *Workbook) Employees(sheet string) ([]Employee, error) {
	rows, err := w.Rows(orDefault(sheet, DefaultEmployeeSheet))
	if err != nil {
		return nil, err
	}
	return Employees(rows)
}

// BlockMeasurements decodes the block sheet. An empty name selects the default.
func (w *Workbook) BlockMeasurements(sheet string) ([]BlockMeasurement, error) {
	rows, err := w.Rows(orDefault(sheet, DefaultBlockSheet))
	if err != nil {
		return nil, err
	}
	return BlockMeasurements(rows)
}

// InventoryRecords decodes the inventory sheet. An empty name selects the default.
func (w *Workbook) InventoryRecords(sheet string) ([]InventoryRecord, error) {
	rows, err := w.Rows(orDefault(sheet, DefaultInventorySheet))
	if err != nil {
		return nil, err
	}
	return InventoryRecords(rows)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
