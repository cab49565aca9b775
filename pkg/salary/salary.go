// Package salary estimates a monthly salary from the plant's employee records:
// the mean salary of employees sharing a job title, department and education
// level, plus a bonus that grows with experience and overtime.
package salary

import (
	"errors"
	"math"
	"sort"

	"github.com/abiramimariappan7/mepco/pkg/dataset"
)

// Bonus constants, in rupees.
const (
	DefaultPerYearBonus      = 500.0
	DefaultPerOvertimeHour   = 100.0
	DefaultStandardWeekHours = 40.0
)

// ErrNotEnoughData is returned when no record matches the query.
var ErrNotEnoughData = errors.New("not enough data to predict salary")

// Query selects the peer group and the employee's own figures.
type Query struct {
	JobTitle       string  `json:"job_title"`
	Department     string  `json:"department"`
	EducationLevel string  `json:"education_level"`
	Experience     float64 `json:"experience"`
	Hours          float64 `json:"hours"`
}

// Options overrides the bonus formula. Zero fields take the defaults.
type Options struct {
	PerYearBonus      float64
	PerOvertimeHour   float64
	StandardWeekHours float64
}

func (o Options) withDefaults() Options {
	if o.PerYearBonus == 0 {
		o.PerYearBonus = DefaultPerYearBonus
	}
	if o.PerOvertimeHour == 0 {
		o.PerOvertimeHour = DefaultPerOvertimeHour
	}
	if o.StandardWeekHours == 0 {
		o.StandardWeekHours = DefaultStandardWeekHours
	}
	return o
}

// Prediction is the result of Predict.
type Prediction struct {
	BaseSalary float64 `json:"base_salary"`
	Bonus      float64 `json:"bonus"`
	Predicted  int     `json:"predicted"`
	Matched    int     `json:"matched"`
}

// Predict computes the salary for q using the default bonus formula.
func Predict(records []dataset.Employee, q Query) (Prediction, error) {
	return PredictWith(records, q, Options{})
}

// PredictWith computes the salary for q with a custom bonus formula.
func PredictWith(records []dataset.Employee, q Query, opts Options) (Prediction, error) {
	opts = opts.withDefaults()

	var sum float64
	var matched int
	for _, r := range records {
		if r.JobTitle == q.JobTitle && r.Department == q.Department && r.EducationLevel == q.EducationLevel {
			sum += r.Salary
			matched++
		}
	}
	if matched == 0 {
		return Prediction{}, ErrNotEnoughData
	}

	base := sum / float64(matched)
	bonus := Bonus(q.Experience, q.Hours, opts)
	return Prediction{
		BaseSalary: base,
		Bonus:      bonus,
		Predicted:  int(math.Trunc(base + bonus)),
		Matched:    matched,
	}, nil
}

// Bonus is experience*PerYearBonus plus PerOvertimeHour for each weekly hour
// beyond StandardWeekHours.
func Bonus(experience, hours float64, opts Options) float64 {
	opts = opts.withDefaults()
	bonus := experience * opts.PerYearBonus
	if hours > opts.StandardWeekHours {
		bonus += (hours - opts.StandardWeekHours) * opts.PerOvertimeHour
	}
	return bonus
}

// Categories lists the distinct values offered for each query field.
type Categories struct {
	JobTitles       []string `json:"job_titles"`
	Departments     []string `json:"departments"`
	EducationLevels []string `json:"education_levels"`
}

// CategoriesOf collects sorted distinct categories from records.
func CategoriesOf(records []dataset.Employee) Categories {
	jobs := map[string]struct{}{}
	depts := map[string]struct{}{}
	edus := map[string]struct{}{}
	for _, r := range records {
		jobs[r.JobTitle] = struct{}{}
		depts[r.Department] = struct{}{}
		edus[r.EducationLevel] = struct{}{}
	}
	return Categories{
		JobTitles:       sortedKeys(jobs),
		Departments:     sortedKeys(depts),
		EducationLevels: sortedKeys(edus),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
