package score

import (
	"math/rand"
	"testing"

	"github.com/camclean/camclean/internal/table"
)

func numbers(fs ...float64) []table.Value {
	out := make([]table.Value, len(fs))
	for i, f := range fs {
		out[i] = table.Number(f)
	}
	return out
}

func TestPercentilesAscending(t *testing.T) {
	got := Percentiles(numbers(10, 20, 20, 30), Ascending, MissingBottom)
	want := []float64{0.25, 0.625, 0.625, 1.0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pct[%d] = %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestPercentilesDescending(t *testing.T) {
	got := Percentiles(numbers(10, 30), Descending, MissingBottom)
	if got[0] != 1.0 || got[1] != 0.5 {
		t.Fatalf("smaller value should rank higher, got %v", got)
	}
}

func TestPercentilesMissingPlacement(t *testing.T) {
	vals := []table.Value{table.Missing(), table.Number(5)}

	top := Percentiles(vals, Ascending, MissingTop)
	if top[0] != 1.0 || top[1] != 0.5 {
		t.Fatalf("MissingTop should rank missing best, got %v", top)
	}

	bottom := Percentiles(vals, Ascending, MissingBottom)
	if bottom[0] != 0.5 || bottom[1] != 1.0 {
		t.Fatalf("MissingBottom should rank missing worst, got %v", bottom)
	}
}

func TestPercentilesMissingShareRank(t *testing.T) {
	vals := []table.Value{table.Missing(), table.Missing(), table.Number(1), table.Number(2)}
	got := Percentiles(vals, Ascending, MissingBottom)
	// The two missing cells share rank positions 3 and 4: (3+4)/2/4.
	if got[0] != 0.875 || got[1] != 0.875 {
		t.Fatalf("missing tie group should share the average rank, got %v", got)
	}
}

func TestScoresStayInBand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 50
	weight := make([]table.Value, n)
	invVol := make([]table.Value, n)
	iso := make([]table.Value, n)
	aperture := make([]table.Value, n)
	crop := make([]table.Value, n)
	fourK := make([]bool, n)
	screen := make([]table.Value, n)
	shutter := make([]table.Value, n)
	for i := 0; i < n; i++ {
		// A quarter of every input is missing.
		if rng.Intn(4) == 0 {
			weight[i], invVol[i], iso[i], aperture[i], crop[i], screen[i], shutter[i] =
				table.Missing(), table.Missing(), table.Missing(), table.Missing(),
				table.Missing(), table.Missing(), table.Missing()
			continue
		}
		weight[i] = table.Number(100 + rng.Float64()*900)
		invVol[i] = table.Number(1 / (1e4 + rng.Float64()*1e6))
		iso[i] = table.Number(float64(100 * (1 + rng.Intn(256))))
		aperture[i] = table.Number(1 / (1.4 + rng.Float64()*10))
		crop[i] = table.Number(1 + rng.Float64()*5)
		fourK[i] = rng.Intn(2) == 0
		screen[i] = table.Number(2 + rng.Float64()*2)
		shutter[i] = table.Number(rng.Float64() / 100)
	}

	for name, scores := range map[string][]float64{
		"portability": Portability(weight, invVol),
		"lowlight":    LowLight(iso, aperture, crop),
		"video":       Video(fourK, screen, shutter),
	} {
		for i, s := range scores {
			if s < Floor || s > Ceil {
				t.Fatalf("%s[%d] = %v, outside [%v, %v]", name, i, s, Floor, Ceil)
			}
		}
	}
}

func TestScoresDeterministic(t *testing.T) {
	weight := numbers(300, 500, 700)
	invVol := numbers(1e-5, 2e-5, 3e-5)

	a := Portability(weight, invVol)
	b := Portability(weight, invVol)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("rerun changed score %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// Reordering the batch must not change any record's score, only its
// position.
func TestScoresOrderInvariant(t *testing.T) {
	weight := numbers(300, 500, 700, 900)
	invVol := numbers(4e-6, 3e-6, 2e-6, 1e-6)
	forward := Portability(weight, invVol)

	revWeight := numbers(900, 700, 500, 300)
	revInvVol := numbers(1e-6, 2e-6, 3e-6, 4e-6)
	reversed := Portability(revWeight, revInvVol)

	for i := range forward {
		if forward[i] != reversed[len(reversed)-1-i] {
			t.Fatalf("score %d changed with row order: %v vs %v", i, forward[i], reversed[len(reversed)-1-i])
		}
	}
}

// Scores are percentile-ranked within the loaded batch, so the same
// record scores differently in a different batch.
func TestScoresAreBatchRelative(t *testing.T) {
	small := Portability(numbers(300, 900), numbers(4e-6, 1e-6))
	large := Portability(numbers(300, 900, 500, 400), numbers(4e-6, 1e-6, 2e-6, 3e-6))
	if small[1] == large[1] {
		t.Fatalf("expected batch composition to move the heaviest camera's score, got %v in both", small[1])
	}
}

func TestPortabilityWeights(t *testing.T) {
	// Lightest and smallest camera ranks top on both inputs: 100 flat.
	scores := Portability(numbers(300, 500), numbers(4e-6, 2e-6))
	if scores[0] != 100 {
		t.Fatalf("best camera should score 100, got %v", scores[0])
	}
	// Worst camera holds pct 0.5 on both inputs: 50.
	if scores[1] != 50 {
		t.Fatalf("worst of two should score 50, got %v", scores[1])
	}
}

func TestVideoFourKShare(t *testing.T) {
	// Identical except for 4K support: exactly the 40-point share apart
	// before clamping.
	screen := numbers(3, 3)
	shutter := numbers(0.001, 0.001)
	scores := Video([]bool{true, false}, screen, shutter)
	if scores[0]-scores[1] != 40 {
		t.Fatalf("4K share should be worth 40 points, got %v and %v", scores[0], scores[1])
	}
}

func TestClampFloor(t *testing.T) {
	// In a batch of ten, the heaviest and bulkiest record's raw value
	// is 10; the floor reports it as 20 instead of near zero.
	n := 10
	weight := make([]table.Value, n)
	invVol := make([]table.Value, n)
	for i := 0; i < n; i++ {
		weight[i] = table.Number(float64(100 * (i + 1)))
		invVol[i] = table.Number(1 / float64(100*(i+1)))
	}
	scores := Portability(weight, invVol)
	if scores[n-1] != Floor {
		t.Fatalf("outlier should clamp to %v, got %v", Floor, scores[n-1])
	}
}
