package dataset

import (
	"github.com/abiramimariappan7/mepco/pkg/estimator"
	"github.com/abiramimariappan7/mepco/pkg/units"
)

// Employee is one row of the salary sheet.
type Employee struct {
	JobTitle       string  `json:"job_title"`
	Department     string  `json:"department"`
	EducationLevel string  `json:"education_level"`
	Experience     float64 `json:"experience"`
	Hours          float64 `json:"hours"`
	Salary         float64 `json:"salary"`
}

// BlockMeasurement is one measured block. Dimensions are in millimetres.
type BlockMeasurement struct {
	Name      string  `json:"name"`
	Length    float64 `json:"length"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
	Volume    float64 `json:"volume"`
}

// InventoryRecord is one production day.
type InventoryRecord struct {
	Date      string  `json:"date"`
	Made      float64 `json:"made"`
	Sold      float64 `json:"sold"`
	Remaining float64 `json:"remaining"`
	WasteKg   float64 `json:"waste_kg"`
}

// MeasurementUnit is the unit of BlockMeasurement dimensions.
const MeasurementUnit = units.Millimeter

// Employees decodes salary rows. Rows without a salary are skipped, the way
// a mean over the column ignores missing cells.
func Employees(rows [][]string) ([]Employee, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	cm := buildColumnMap(rows[0])

	jobCol, err := cm.require("Job Title", "Job")
	if err != nil {
		return nil, err
	}
	deptCol, err := cm.require("Department", "Dept")
	if err != nil {
		return nil, err
	}
	eduCol, err := cm.require("Education Level", "Education")
	if err != nil {
		return nil, err
	}
	salaryCol, err := cm.require("Current Salary", "Salary")
	if err != nil {
		return nil, err
	}
	expCol, hasExp := cm.find("Years of Experience", "Experience")
	hoursCol, hasHours := cm.find("Working Hours per Week", "Working Hours", "Hours")

	var out []Employee
	for n, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		salary, ok, err := numberAt(row, n, salaryCol, "Current Salary")
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		e := Employee{
			JobTitle:       cell(row, jobCol),
			Department:     cell(row, deptCol),
			EducationLevel: cell(row, eduCol),
			Salary:         salary,
		}
		if hasExp {
			if e.Experience, _, err = numberAt(row, n, expCol, "Years of Experience"); err != nil {
				return nil, err
			}
		}
		if hasHours {
			if e.Hours, _, err = numberAt(row, n, hoursCol, "Working Hours per Week"); err != nil {
				return nil, err
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// BlockMeasurements decodes block rows. A volume column is used when present,
// otherwise the volume is the product of the three dimensions.
func BlockMeasurements(rows [][]string) ([]BlockMeasurement, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	cm := buildColumnMap(rows[0])

	nameCol, hasName := cm.find("Block Type", "Block Size", "Block", "Name")
	lengthCol, hasLength := cm.find("Length (mm)", "Length")
	heightCol, hasHeight := cm.find("Height (mm)", "Height")
	thickCol, hasThick := cm.find("Thickness (mm)", "Thickness", "Width (mm)", "Width")
	volCol, hasVol := cm.find("Volume (mm3)", "Volume (mm³)", "Volume")

	if !hasVol && !(hasLength && hasHeight && hasThick) {
		_, err := cm.require("Volume (mm3)")
		return nil, err
	}

	var out []BlockMeasurement
	for n, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		var m BlockMeasurement
		var err error
		if hasName {
			m.Name = cell(row, nameCol)
		}
		if hasLength {
			if m.Length, _, err = numberAt(row, n, lengthCol, "Length (mm)"); err != nil {
				return nil, err
			}
		}
		if hasHeight {
			if m.Height, _, err = numberAt(row, n, heightCol, "Height (mm)"); err != nil {
				return nil, err
			}
		}
		if hasThick {
			if m.Thickness, _, err = numberAt(row, n, thickCol, "Thickness (mm)"); err != nil {
				return nil, err
			}
		}
		var hasRowVol bool
		if hasVol {
			if m.Volume, hasRowVol, err = numberAt(row, n, volCol, "Volume (mm3)"); err != nil {
				return nil, err
			}
		}
		if !hasRowVol {
			m.Volume = m.Length * m.Height * m.Thickness
		}
		out = append(out, m)
	}
	return out, nil
}

// MeanBlock derives a block spec from the mean volume, face and thickness of
// the measured blocks. An empty sample yields an estimator.InvalidSpecError.
func MeanBlock(name string, measurements []BlockMeasurement) (estimator.BlockSpec, error) {
	volumes := make([]float64, 0, len(measurements))
	var area, thickness float64
	for _, m := range measurements {
		volumes = append(volumes, m.Volume)
		area += m.Length * m.Height
		thickness += m.Thickness
	}
	spec, err := estimator.MeanBlockSpec(name, volumes, MeasurementUnit)
	if err != nil {
		return estimator.BlockSpec{}, err
	}
	n := float64(len(measurements))
	spec.UnitArea = area / n
	spec.Thickness = thickness / n
	return spec, nil
}

// InventoryRecords decodes inventory rows. Empty numeric cells count as zero.
func InventoryRecords(rows [][]string) ([]InventoryRecord, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	cm := buildColumnMap(rows[0])

	dateCol, err := cm.require("Date")
	if err != nil {
		return nil, err
	}
	cols := []struct {
		aliases []string
		dst     func(*InventoryRecord) *float64
	}{
		{[]string{"Total Blocks Made", "Blocks Made"}, func(r *InventoryRecord) *float64 { return &r.Made }},
		{[]string{"Blocks Sold", "Sold"}, func(r *InventoryRecord) *float64 { return &r.Sold }},
		{[]string{"Remaining Blocks", "Remaining"}, func(r *InventoryRecord) *float64 { return &r.Remaining }},
		{[]string{"Waste (kg)", "Waste"}, func(r *InventoryRecord) *float64 { return &r.WasteKg }},
	}
	idx := make([]int, len(cols))
	for i, c := range cols {
		if idx[i], err = cm.require(c.aliases...); err != nil {
			return nil, err
		}
	}

	var out []InventoryRecord
	for n, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := InventoryRecord{Date: cell(row, dateCol)}
		for i, c := range cols {
			v, _, err := numberAt(row, n, idx[i], c.aliases[0])
			if err != nil {
				return nil, err
			}
			*c.dst(&rec) = v
		}
		out = append(out, rec)
	}
	return out, nil
}
