// Package score derives the three composite camera scores from
// normalized fields. All three are batch-relative: each input is
// reduced to its percentile rank within the loaded batch before
// weighting, so the same camera can score differently when cleaned
// alongside a different set of records. Row order never matters.
package score

import (
	"math"
	"sort"

	"github.com/camclean/camclean/internal/table"
)

// Fixed linear weights of the three composites.
const (
	portabilityWeightShare = 0.6
	portabilityVolumeShare = 0.4

	lowLightISOShare      = 0.5
	lowLightApertureShare = 0.3
	lowLightCropShare     = 0.2

	videoFourKShare   = 0.4
	videoScreenShare  = 0.3
	videoShutterShare = 0.3
)

// Every score is clamped to this band, so even a batch outlier is
// never reported near zero.
const (
	Floor = 20.0
	Ceil  = 100.0
)

// Direction orders values before ranking.
type Direction int

const (
	Ascending  Direction = iota // larger value, higher percentile
	Descending                  // smaller value, higher percentile
)

// MissingRank pins the missing-value tie group to one end of the
// ranking.
type MissingRank int

const (
	MissingBottom MissingRank = iota // missing ranks worst
	MissingTop                       // missing ranks best
)

// Percentiles computes average-rank percentiles in (0, 1] over one
// column. Ties share the mean of their rank positions; missing values
// form a single tie group at the end chosen by miss.
func Percentiles(vals []table.Value, dir Direction, miss MissingRank) []float64 {
	n := len(vals)
	keys := make([]float64, n)
	for i, v := range vals {
		f, ok := v.Float()
		switch {
		case !ok:
			if miss == MissingTop {
				keys[i] = math.Inf(1)
			} else {
				keys[i] = math.Inf(-1)
			}
		case dir == Descending:
			keys[i] = -f
		default:
			keys[i] = f
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return keys[order[a]] < keys[order[b]] })

	out := make([]float64, n)
	for start := 0; start < n; {
		end := start
		for end+1 < n && keys[order[end+1]] == keys[order[start]] {
			end++
		}
		// 1-based rank positions start+1 .. end+1 share their mean.
		avg := float64(start+end+2) / 2.0
		pct := avg / float64(n)
		for i := start; i <= end; i++ {
			out[order[i]] = pct
		}
		start = end + 1
	}
	return out
}

// Portability weighs weight against body volume. Heavier and bulkier
// cameras rank lower; records with missing weight or dimensions rank
// at the bottom of both inputs.
func Portability(weight, invVolume []table.Value) []float64 {
	wp := Percentiles(weight, Descending, MissingBottom)
	vp := Percentiles(invVolume, Ascending, MissingBottom)
	out := make([]float64, len(weight))
	for i := range out {
		out[i] = clamp((wp[i]*portabilityWeightShare + vp[i]*portabilityVolumeShare) * 100)
	}
	return out
}

// LowLight weighs max ISO, aperture value (reciprocal F-number) and
// crop factor, smaller crop factor ranking higher. Missing specs rank
// at the top so an unlisted spec is never penalized.
func LowLight(maxISO, apertureValue, cropFactor []table.Value) []float64 {
	ip := Percentiles(maxISO, Ascending, MissingTop)
	ap := Percentiles(apertureValue, Ascending, MissingTop)
	cp := Percentiles(cropFactor, Descending, MissingTop)
	out := make([]float64, len(maxISO))
	for i := range out {
		out[i] = clamp((ip[i]*lowLightISOShare + ap[i]*lowLightApertureShare + cp[i]*lowLightCropShare) * 100)
	}
	return out
}

// Video weighs 4K support, screen size and fastest shutter value.
// Missing screen or shutter specs rank at the top.
func Video(fourK []bool, screenSize, maxShutter []table.Value) []float64 {
	sp := Percentiles(screenSize, Ascending, MissingTop)
	tp := Percentiles(maxShutter, Ascending, MissingTop)
	out := make([]float64, len(fourK))
	for i := range out {
		k := 0.0
		if fourK[i] {
			k = 1.0
		}
		out[i] = clamp((k*videoFourKShare + sp[i]*videoScreenShare + tp[i]*videoShutterShare) * 100)
	}
	return out
}

func clamp(x float64) float64 {
	if x < Floor {
		return Floor
	}
	if x > Ceil {
		return Ceil
	}
	return x
}
