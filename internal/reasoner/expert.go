package reasoner

import (
	"math"

	mb "github.com/saeidalz13/battleship-ai/models/battleship"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

// ExpertHitWeightBase is raised to the number of live hits a placement
// covers. It has to dwarf the weight of pure search placements.
const ExpertHitWeightBase = 20.0

// ProbabilityMap accumulates placement weights per cell, row-major.
type ProbabilityMap struct {
	width  int
	height int
	weight []float64
}

func (p ProbabilityMap) Width() int  { return p.width }
func (p ProbabilityMap) Height() int { return p.height }

func (p ProbabilityMap) At(x, y int) float64 {
	return p.weight[y*p.width+x]
}

// BuildProbabilityMap enumerates every horizontal and vertical window of
// every remaining ship size. A window is legal when none of its cells is a
// miss, a sunk hit, or inside the buffer zone of a sunk ship. Legal windows
// add 1 to their cells, or ExpertHitWeightBase^k when they cover k live hits.
func BuildProbabilityMap(view mb.GridView, remaining []int) ProbabilityMap {
	w, h := view.Width(), view.Height()
	pm := ProbabilityMap{width: w, height: h, weight: make([]float64, w*h)}

	// open marks cells a remaining ship may still cover; hit marks live hits.
	open := make([]bool, w*h)
	hit := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			switch {
			case view.IsNotFired(x, y):
				open[i] = view.IsAreaClearOfSunkenShips(x, y)
			case view.IsLiveHit(x, y):
				open[i] = view.IsAreaClearOfSunkenShips(x, y)
				hit[i] = open[i]
			}
		}
	}

	for _, size := range remaining {
		if size <= 0 {
			continue
		}
		for y := 0; y < h; y++ {
			for x := 0; x+size <= w; x++ {
				pm.addWindow(open, hit, y*w+x, 1, size)
			}
		}
		for x := 0; x < w; x++ {
			for y := 0; y+size <= h; y++ {
				pm.addWindow(open, hit, y*w+x, w, size)
			}
		}
	}
	return pm
}

func (p ProbabilityMap) addWindow(open, hit []bool, start, stride, size int) {
	hits := 0
	for k := 0; k < size; k++ {
		i := start + k*stride
		if !open[i] {
			return
		}
		if hit[i] {
			hits++
		}
	}

	weight := 1.0
	if hits > 0 {
		weight = math.Pow(ExpertHitWeightBase, float64(hits))
	}
	for k := 0; k < size; k++ {
		p.weight[start+k*stride] += weight
	}
}

// ExpertReasoner fires at the potential target with the highest accumulated
// placement weight.
type ExpertReasoner struct {
	rnd Random
}

func NewExpertReasoner(rnd Random) *ExpertReasoner {
	return &ExpertReasoner{rnd: rnd}
}

func (r *ExpertReasoner) Difficulty() mb.Difficulty { return mb.DifficultyExpert }

func (r *ExpertReasoner) Reset() {}

func (r *ExpertReasoner) ChooseMove(view mb.GridView, remaining []int) (mb.Coordinates, error) {
	pm := BuildProbabilityMap(view, remaining)

	best := 0.0
	var candidates []mb.Coordinates
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			if !view.IsPotentialTarget(x, y) {
				continue
			}
			switch weight := pm.At(x, y); {
			case weight > best:
				best = weight
				candidates = append(candidates[:0], mb.NewCoordinates(x, y))
			case weight == best && weight > 0:
				candidates = append(candidates, mb.NewCoordinates(x, y))
			}
		}
	}

	if len(candidates) > 0 {
		return pick(r.rnd, candidates), nil
	}

	// degenerate case: nothing scored, any unfired cell will do
	remainingCells := view.NotFiredCells()
	if len(remainingCells) == 0 {
		return mb.Coordinates{}, cerr.ErrNoMoveAvailable(r.Difficulty().String())
	}
	return pick(r.rnd, remainingCells), nil
}
