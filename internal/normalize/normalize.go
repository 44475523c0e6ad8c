// Package normalize turns loosely-formatted camera spec strings into
// numbers in fixed units (grams, seconds, EV, dots, inches,
// centimeters, millimeters per dimension) or booleans. Every extractor
// is pure and total: malformed or absent input yields a missing cell,
// never an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/camclean/camclean/internal/table"
)

var (
	decimalRun  = regexp.MustCompile(`[\d.]+`)
	integerRun  = regexp.MustCompile(`\d+`)
	numberToken = regexp.MustCompile(`\d+\.\d+|\d+`)
	exposureEV  = regexp.MustCompile(`[±+-]\s*([\d.]+)\s*EV`)
	meterSuffix = regexp.MustCompile(`([\d.]+)m`)
	fourKToken  = regexp.MustCompile(`(?i)3840|4096|4K`)
)

// Extractor pulls one number out of a raw field string.
type Extractor func(string) (float64, bool)

// Apply runs ex over the cell's text and absorbs any failure as a
// missing cell. This is the single parse-or-missing point shared by
// all field normalizers.
func Apply(v table.Value, ex Extractor) table.Value {
	s, ok := v.Text()
	if !ok {
		return table.Missing()
	}
	f, ok := ex(s)
	if !ok {
		return table.Missing()
	}
	return table.Number(f)
}

// Grams extracts a weight. The first number wins; the value is assumed
// to be grams already.
func Grams(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(s), ",", ""))
	return firstNumber(s)
}

// MaxISO extracts the upper end of an ISO range: the last integer run
// in the string.
func MaxISO(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	runs := integerRun.FindAllString(s, -1)
	if len(runs) == 0 {
		return 0, false
	}
	return parseFloat(runs[len(runs)-1])
}

// MinApertureF extracts the widest aperture from strings like
// "24-70mm F2.8-4": the minimum of all numbers present.
func MinApertureF(s string) (float64, bool) {
	min, found := 0.0, false
	for _, tok := range decimalRun.FindAllString(s, -1) {
		f, ok := parseFloat(tok)
		if !ok {
			continue
		}
		if !found || f < min {
			min, found = f, true
		}
	}
	return min, found
}

// ShutterSeconds converts a shutter speed to seconds. Fractions like
// "1/4000 sec" become the reciprocal of the denominator's first
// integer run; anything else is read as whole seconds.
func ShutterSeconds(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.Contains(s, "/") && strings.Contains(s, "sec") {
		parts := strings.Split(s, "/")
		run := integerRun.FindString(parts[len(parts)-1])
		denom, ok := parseFloat(run)
		if !ok || denom == 0 {
			return 0, false
		}
		return 1.0 / denom, true
	}
	return firstNumber(s)
}

// ExposureCompEV extracts the magnitude of a "±X EV" compensation
// range. The EV suffix is matched case-sensitively.
func ExposureCompEV(s string) (float64, bool) {
	m := exposureEV.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	return parseFloat(m[1])
}

// ScreenDots extracts a screen resolution dot count, ignoring
// thousands separators.
func ScreenDots(s string) (float64, bool) {
	s = strings.ToLower(strings.ReplaceAll(s, ",", ""))
	return parseFloat(integerRun.FindString(s))
}

// ScreenInches strips a trailing inch mark and coerces the rest to a
// number.
func ScreenInches(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FocusCentimeters converts a focus distance to centimeters. A number
// immediately followed by "m" is meters (×100); otherwise the first
// number is already centimeters.
func FocusCentimeters(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(s), "cm", ""))
	if m := meterSuffix.FindStringSubmatch(s); m != nil {
		f, ok := parseFloat(m[1])
		if !ok {
			return 0, false
		}
		return f * 100, true
	}
	return firstNumber(s)
}

// Dimensions splits an "L x W x H" string into its three measures in
// the field's native unit. Fewer than three numeric tokens yields
// all-missing.
func Dimensions(v table.Value) (l, w, h table.Value) {
	s, ok := v.Text()
	if !ok {
		return table.Missing(), table.Missing(), table.Missing()
	}
	var nums []float64
	for _, tok := range numberToken.FindAllString(s, -1) {
		f, ok := parseFloat(tok)
		if !ok {
			continue
		}
		nums = append(nums, f)
	}
	if len(nums) < 3 {
		return table.Missing(), table.Missing(), table.Missing()
	}
	return table.Number(nums[0]), table.Number(nums[1]), table.Number(nums[2])
}

// FourK reports whether a video resolution string names a 4K mode.
// Missing input counts as false.
func FourK(v table.Value) bool {
	s, ok := v.Text()
	if !ok {
		return false
	}
	return fourKToken.MatchString(s)
}

// Numeric coerces a generic cell to a number: number cells pass
// through, booleans become 0/1, numeric strings parse, everything else
// is missing.
func Numeric(v table.Value) table.Value {
	switch v.Kind {
	case table.KindNumber:
		return v
	case table.KindBool:
		if v.Bool {
			return table.Number(1)
		}
		return table.Number(0)
	case table.KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return table.Missing()
		}
		return table.Number(f)
	default:
		return table.Missing()
	}
}

// firstNumber returns the first run of digits and dots that parses as
// a number. Runs like a bare "." (from "approx.") are skipped rather
// than treated as a failed field.
func firstNumber(s string) (float64, bool) {
	for _, tok := range decimalRun.FindAllString(s, -1) {
		if f, ok := parseFloat(tok); ok {
			return f, true
		}
	}
	return 0, false
}

func parseFloat(tok string) (float64, bool) {
	if tok == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
