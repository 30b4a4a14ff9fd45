package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// AreaUnit is appended to every computed surface area.
const AreaUnit = "km²"

var (
	errNegative     = errors.New("must not be negative")
	errNotFinite    = errors.New("must be a finite number")
	errOutOfRange   = errors.New("must be between 0 and 100")
	errAreaTooLarge = errors.New("area exceeds representable range")
)

// FormatNumber groups the decimal digits of n in threes from the right,
// separated by a single space: 1000000 → "1 000 000".
func FormatNumber(n uint64) string {
	digits := strconv.FormatUint(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/3)

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(' ')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPopulation renders a SWAPI population value. "unknown" becomes "?";
// anything that is not a non-negative decimal integer is a *FormatError.
func FormatPopulation(population string) (string, error) {
	if population == Unknown {
		return Placeholder, nil
	}
	n, err := strconv.ParseUint(population, 10, 64)
	if err != nil {
		return "", &FormatError{Field: "population", Value: population, Err: err}
	}
	return FormatNumber(n), nil
}

// WaterSurfaceArea computes the water-covered area of a spherical planet in
// square kilometers. ok is false when the surface water is "unknown", in which
// case the diameter is not inspected.
func WaterSurfaceArea(diameter, surfaceWater string) (area uint64, ok bool, err error) {
	if surfaceWater == Unknown {
		return 0, false, nil
	}

	water, err := parsePercentage(surfaceWater)
	if err != nil {
		return 0, false, &FormatError{Field: "surface_water", Value: surfaceWater, Err: err}
	}
	d, err := parseNonNegative(diameter)
	if err != nil {
		return 0, false, &FormatError{Field: "diameter", Value: diameter, Err: err}
	}

	radius := d / 2
	a := math.Round(4 * math.Pi * radius * radius * (water / 100))
	if a >= math.MaxUint64 {
		return 0, false, &FormatError{Field: "diameter", Value: diameter, Err: errAreaTooLarge}
	}
	return uint64(a), true, nil
}

// SurfaceAreaLabel renders the water surface area, e.g. "226 194 671km²", or
// "?" when the surface water is unknown.
func SurfaceAreaLabel(diameter, surfaceWater string) (string, error) {
	area, ok, err := WaterSurfaceArea(diameter, surfaceWater)
	if err != nil {
		return "", err
	}
	if !ok {
		return Placeholder, nil
	}
	return FormatNumber(area) + AreaUnit, nil
}

func parseNonNegative(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	if v < 0 {
		return 0, errNegative
	}
	return v, nil
}

func parsePercentage(s string) (float64, error) {
	v, err := parseNonNegative(s)
	if err != nil {
		return 0, err
	}
	if v > 100 {
		return 0, errOutOfRange
	}
	return v, nil
}
