// Package clean applies the full cleaning pass to a loaded camera
// batch: normalize the string columns to numbers in place, rename them
// with unit suffixes, split dimensions, flag 4K support, derive the
// three composite scores and tidy the column order.
package clean

import (
	"log/slog"

	"github.com/camclean/camclean/internal/dataset"
	"github.com/camclean/camclean/internal/normalize"
	"github.com/camclean/camclean/internal/score"
	"github.com/camclean/camclean/internal/table"
)

// numericColumn pairs a raw column with the extractor that cleans it
// in place.
var numericColumns = []struct {
	col string
	ex  normalize.Extractor
}{
	{dataset.ColWeight, normalize.Grams},
	{dataset.ColISO, normalize.MaxISO},
	{dataset.ColMinShutter, normalize.ShutterSeconds},
	{dataset.ColMaxShutter, normalize.ShutterSeconds},
	{dataset.ColExposure, normalize.ExposureCompEV},
	{dataset.ColScreenRes, normalize.ScreenDots},
	{dataset.ColScreenSize, normalize.ScreenInches},
	{dataset.ColNormalFocus, normalize.FocusCentimeters},
	{dataset.ColMacroFocus, normalize.FocusCentimeters},
}

// renames maps each cleaned column to its unit-suffixed output name.
// Order matches the cleaning order above.
var renames = [][2]string{
	{dataset.ColWeight, dataset.ColWeightG},
	{dataset.ColISO, dataset.ColMaxISO},
	{dataset.ColMinShutter, dataset.ColMinShutterSec},
	{dataset.ColMaxShutter, dataset.ColMaxShutterSec},
	{dataset.ColExposure, dataset.ColMaxExposure},
	{dataset.ColScreenRes, dataset.ColScreenDots},
	{dataset.ColScreenSize, dataset.ColScreenInches},
	{dataset.ColNormalFocus, dataset.ColNormalFocusCm},
	{dataset.ColMacroFocus, dataset.ColMacroFocusCm},
}

// coerced are generic numeric columns that keep their names.
var coerced = []string{
	dataset.ColTotalMP,
	dataset.ColEffectiveMP,
	dataset.ColMegapixels,
	dataset.ColCropFactor,
}

// Apply runs the whole cleaning and derivation pass over t in place.
func Apply(t *table.Table) {
	slog.Info("Cleaning records", "records", t.Len())

	for _, nc := range numericColumns {
		overwrite(t, nc.col, nc.ex)
	}

	// Max aperture keeps its raw text; the extracted F-number becomes
	// a new column, relocated next to its source at the end.
	t.SetColumn(dataset.ColMinApertureF, applyColumn(t.Column(dataset.ColMaxAperture), normalize.MinApertureF))

	for _, r := range renames {
		t.Rename(r[0], r[1])
	}

	splitDimensions(t)
	flagFourK(t)

	for _, col := range coerced {
		vals := t.Column(col)
		for i, v := range vals {
			vals[i] = normalize.Numeric(v)
		}
		t.SetColumn(col, vals)
	}

	slog.Info("Deriving composite scores")
	deriveScores(t)

	t.MoveAfter(dataset.ColMinApertureF, dataset.ColMaxAperture)
}

func overwrite(t *table.Table, col string, ex normalize.Extractor) {
	t.SetColumn(col, applyColumn(t.Column(col), ex))
}

func applyColumn(vals []table.Value, ex normalize.Extractor) []table.Value {
	out := make([]table.Value, len(vals))
	for i, v := range vals {
		out[i] = normalize.Apply(v, ex)
	}
	return out
}

func splitDimensions(t *table.Table) {
	n := t.Len()
	ls := make([]table.Value, n)
	ws := make([]table.Value, n)
	hs := make([]table.Value, n)
	for i, v := range t.Column(dataset.ColDimensions) {
		ls[i], ws[i], hs[i] = normalize.Dimensions(v)
	}
	t.SetColumn(dataset.ColDimL, ls)
	t.SetColumn(dataset.ColDimW, ws)
	t.SetColumn(dataset.ColDimH, hs)
}

func flagFourK(t *table.Table) {
	vals := make([]table.Value, t.Len())
	for i, v := range t.Column(dataset.ColVideoRes) {
		vals[i] = table.Boolean(normalize.FourK(v))
	}
	t.SetColumn(dataset.ColSupports4K, vals)
}

func deriveScores(t *table.Table) {
	n := t.Len()

	invVolume := make([]table.Value, n)
	for i := 0; i < n; i++ {
		l, lok := t.Cell(i, dataset.ColDimL).Float()
		w, wok := t.Cell(i, dataset.ColDimW).Float()
		h, hok := t.Cell(i, dataset.ColDimH).Float()
		if !lok || !wok || !hok {
			invVolume[i] = table.Missing()
			continue
		}
		invVolume[i] = table.Number(1.0 / (l * w * h))
	}
	t.SetColumn(dataset.ColPortability, numberColumn(score.Portability(t.Column(dataset.ColWeightG), invVolume)))

	apertureValue := make([]table.Value, n)
	for i, v := range t.Column(dataset.ColMinApertureF) {
		f, ok := v.Float()
		if !ok {
			apertureValue[i] = table.Missing()
			continue
		}
		apertureValue[i] = table.Number(1.0 / f)
	}
	t.SetColumn(dataset.ColApertureValue, apertureValue)
	t.SetColumn(dataset.ColLowLight, numberColumn(score.LowLight(
		t.Column(dataset.ColMaxISO),
		apertureValue,
		t.Column(dataset.ColCropFactor),
	)))

	fourK := make([]bool, n)
	for i, v := range t.Column(dataset.ColSupports4K) {
		fourK[i] = v.Kind == table.KindBool && v.Bool
	}
	t.SetColumn(dataset.ColVideo, numberColumn(score.Video(
		fourK,
		t.Column(dataset.ColScreenInches),
		t.Column(dataset.ColMaxShutterSec),
	)))
}

func numberColumn(vals []float64) []table.Value {
	out := make([]table.Value, len(vals))
	for i, f := range vals {
		out[i] = table.Number(f)
	}
	return out
}
