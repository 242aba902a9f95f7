package reasoner

import (
	mb "github.com/saeidalz13/battleship-ai/models/battleship"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

// Heat weights of the hard reasoner. They are tuning knobs, not rules.
const (
	HeatBase              = 1
	HeatAdjacentHit       = 10
	HeatLineBonus         = 25
	HeatFallbackThreshold = 1
)

// HeatMap is the integer attractiveness of every cell, row-major.
type HeatMap struct {
	width  int
	height int
	heat   []int
}

func (h HeatMap) Width() int  { return h.width }
func (h HeatMap) Height() int { return h.height }

func (h HeatMap) At(x, y int) int {
	return h.heat[y*h.width+x]
}

// BuildHeatMap scores the view: base heat on unfired cells, a bonus around
// live hits (larger when the neighbor extends a line of hits), and zero in
// the buffer zone of every sunk ship.
func BuildHeatMap(view mb.GridView) HeatMap {
	w, h := view.Width(), view.Height()
	hm := HeatMap{width: w, height: h, heat: make([]int, w*h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if view.IsNotFired(x, y) {
				hm.heat[y*w+x] = HeatBase
			}
		}
	}

	for _, hit := range view.LiveHits() {
		for _, step := range mb.OrthogonalSteps {
			n := hit.Add(step)
			if !view.IsNotFired(n.X, n.Y) {
				continue
			}
			hm.heat[n.Y*w+n.X] += HeatAdjacentHit

			back := hit.Add(opposite(step))
			if view.IsLiveHit(back.X, back.Y) {
				hm.heat[n.Y*w+n.X] += HeatLineBonus
			}
		}
	}

	for _, s := range view.SunkHits() {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := s.X+dx, s.Y+dy
				if view.InBounds(x, y) {
					hm.heat[y*w+x] = 0
				}
			}
		}
	}

	return hm
}

// HardReasoner fires at the hottest cell of a freshly built heat map and
// falls back to a checkerboard search when nothing is hot.
type HardReasoner struct {
	rnd Random
}

func NewHardReasoner(rnd Random) *HardReasoner {
	return &HardReasoner{rnd: rnd}
}

func (r *HardReasoner) Difficulty() mb.Difficulty { return mb.DifficultyHard }

func (r *HardReasoner) Reset() {}

func (r *HardReasoner) ChooseMove(view mb.GridView, _ []int) (mb.Coordinates, error) {
	hm := BuildHeatMap(view)

	best := -1
	var hottest []mb.Coordinates
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			if !view.IsNotFired(x, y) {
				continue
			}
			switch heat := hm.At(x, y); {
			case heat > best:
				best = heat
				hottest = append(hottest[:0], mb.NewCoordinates(x, y))
			case heat == best:
				hottest = append(hottest, mb.NewCoordinates(x, y))
			}
		}
	}

	if best < 0 {
		return mb.Coordinates{}, cerr.ErrNoMoveAvailable(r.Difficulty().String())
	}
	if best > HeatFallbackThreshold {
		return pick(r.rnd, hottest), nil
	}
	return r.paritySearch(view, hm), nil
}

// paritySearch restricts the search to cells with (x+y) even, which is
// enough to find any ship of size two or more.
func (r *HardReasoner) paritySearch(view mb.GridView, hm HeatMap) mb.Coordinates {
	var even, warm, cold []mb.Coordinates
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			if !view.IsNotFired(x, y) {
				continue
			}
			c := mb.NewCoordinates(x, y)
			if hm.At(x, y) == 0 {
				cold = append(cold, c)
				continue
			}
			warm = append(warm, c)
			if (x+y)%2 == 0 {
				even = append(even, c)
			}
		}
	}

	switch {
	case len(even) > 0:
		return pick(r.rnd, even)
	case len(warm) > 0:
		return pick(r.rnd, warm)
	default:
		return pick(r.rnd, cold)
	}
}
