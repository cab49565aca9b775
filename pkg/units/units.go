// Package units converts room and block dimensions into metres.
package units

import (
	"fmt"
	"strings"
)

// Unit is a linear length unit tag.
type Unit string

const (
	Meter      Unit = "m"
	Centimeter Unit = "cm"
	Millimeter Unit = "mm"
	Foot       Unit = "ft"
	Inch       Unit = "in"
)

// metersPer is the fixed conversion table to the canonical unit.
var metersPer = map[Unit]float64{
	Meter:      1,
	Centimeter: 0.01,
	Millimeter: 0.001,
	Foot:       0.3048,
	Inch:       0.0254,
}

var aliases = map[string]Unit{
	"":            Meter,
	"m":           Meter,
	"meter":       Meter,
	"meters":      Meter,
	"metre":       Meter,
	"metres":      Meter,
	"cm":          Centimeter,
	"centimeter":  Centimeter,
	"centimeters": Centimeter,
	"mm":          Millimeter,
	"millimeter":  Millimeter,
	"millimeters": Millimeter,
	"ft":          Foot,
	"foot":        Foot,
	"feet":        Foot,
	"in":          Inch,
	"inch":        Inch,
	"inches":      Inch,
}

// ParseUnit resolves a unit tag. An empty tag means metres.
func ParseUnit(s string) (Unit, error) {
	u, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown length unit %q", s)
	}
	return u, nil
}

// Valid reports whether u is in the conversion table. The zero value is
// treated as metres.
func (u Unit) Valid() bool {
	_, ok := metersPer[u.canonical()]
	return ok
}

// Factor returns the number of metres in one u.
func (u Unit) Factor() float64 {
	f, ok := metersPer[u.canonical()]
	if !ok {
		return 0
	}
	return f
}

// ToMeters converts a length.
func (u Unit) ToMeters(v float64) float64 {
	return v * u.Factor()
}

// AreaToSquareMeters converts an area given in u².
func (u Unit) AreaToSquareMeters(v float64) float64 {
	f := u.Factor()
	return v * f * f
}

// VolumeToCubicMeters converts a volume given in u³.
func (u Unit) VolumeToCubicMeters(v float64) float64 {
	f := u.Factor()
	return v * f * f * f
}

func (u Unit) String() string {
	return string(u.canonical())
}

func (u Unit) canonical() Unit {
	if u == "" {
		return Meter
	}
	return u
}
