package reasoner

import (
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
)

// MediumReasoner hunts around live hits and, once two adjacent hits reveal
// a ship's axis, fires along that axis until it is blocked, then tries the
// opposite end before giving the axis up.
//
// The anchor and locked direction persist across calls. Targets are always
// re-derived from the grid so the memory cannot drift from the real state.
type MediumReasoner struct {
	rnd Random

	lastShot    mb.Coordinates
	hasLastShot bool
	lastHit     mb.Coordinates
	hasLastHit  bool

	anchor    mb.Coordinates
	direction mb.Coordinates
	locked    bool
	reversed  bool
}

func NewMediumReasoner(rnd Random) *MediumReasoner {
	return &MediumReasoner{rnd: rnd}
}

func (r *MediumReasoner) Difficulty() mb.Difficulty { return mb.DifficultyMedium }

func (r *MediumReasoner) Reset() {
	*r = MediumReasoner{rnd: r.rnd}
}

// LockedAxis exposes the current target-mode state.
func (r *MediumReasoner) LockedAxis() (anchor, direction mb.Coordinates, locked bool) {
	return r.anchor, r.direction, r.locked
}

func (r *MediumReasoner) ChooseMove(view mb.GridView, _ []int) (mb.Coordinates, error) {
	r.observe(view)

	if !r.locked {
		r.lockAxis(view)
	}
	if r.locked {
		if target, ok := r.followAxis(view); ok {
			return r.fire(target), nil
		}
	}

	if candidates := r.huntCandidates(view); len(candidates) > 0 {
		return r.fire(pick(r.rnd, candidates)), nil
	}

	move, err := randomFallback(r.rnd, view, r.Difficulty())
	if err != nil {
		return mb.Coordinates{}, err
	}
	return r.fire(move), nil
}

func (r *MediumReasoner) fire(c mb.Coordinates) mb.Coordinates {
	r.lastShot = c
	r.hasLastShot = true
	return c
}

// observe folds the outcome of the previous shot into the memory.
func (r *MediumReasoner) observe(view mb.GridView) {
	if r.hasLastShot {
		switch {
		case view.IsLiveHit(r.lastShot.X, r.lastShot.Y):
			r.lastHit = r.lastShot
			r.hasLastHit = true
		case view.IsSunkHit(r.lastShot.X, r.lastShot.Y):
			r.dropTarget()
		}
	}

	if r.locked && !view.IsLiveHit(r.anchor.X, r.anchor.Y) {
		r.dropTarget()
	}
	if r.hasLastHit && !view.IsLiveHit(r.lastHit.X, r.lastHit.Y) {
		r.hasLastHit = false
	}
}

func (r *MediumReasoner) dropTarget() {
	r.locked = false
	r.reversed = false
	r.hasLastHit = false
}

// lockAxis looks for two orthogonally adjacent live hits, preferring a pair
// that includes the most recent hit.
func (r *MediumReasoner) lockAxis(view mb.GridView) {
	if r.hasLastHit {
		for _, step := range mb.OrthogonalSteps {
			n := r.lastHit.Add(step)
			if view.IsLiveHit(n.X, n.Y) {
				r.lock(n, opposite(step))
				return
			}
		}
	}

	for _, h := range view.LiveHits() {
		for _, step := range []mb.Coordinates{mb.StepRight, mb.StepDown} {
			n := h.Add(step)
			if view.IsLiveHit(n.X, n.Y) {
				r.lock(h, step)
				return
			}
		}
	}
}

func (r *MediumReasoner) lock(anchor, direction mb.Coordinates) {
	r.anchor = anchor
	r.direction = direction
	r.locked = true
	r.reversed = false
}

// followAxis returns the first unfired cell past the run of hits in the
// locked direction, reversing once when that end is blocked.
func (r *MediumReasoner) followAxis(view mb.GridView) (mb.Coordinates, bool) {
	if target := walkPastHits(view, r.anchor, r.direction); view.IsPotentialTarget(target.X, target.Y) {
		return target, true
	}

	if !r.reversed {
		r.reversed = true
		r.direction = opposite(r.direction)
		if target := walkPastHits(view, r.anchor, r.direction); view.IsPotentialTarget(target.X, target.Y) {
			return target, true
		}
	}

	r.locked = false
	r.reversed = false
	return mb.Coordinates{}, false
}

// huntCandidates lists potential targets orthogonally adjacent to live hits.
// When several exist, those aligned with the latest hit are preferred.
func (r *MediumReasoner) huntCandidates(view mb.GridView) []mb.Coordinates {
	seen := make(map[mb.Coordinates]struct{})
	candidates := make([]mb.Coordinates, 0, 8)
	for _, h := range view.LiveHits() {
		for _, step := range mb.OrthogonalSteps {
			n := h.Add(step)
			if _, dup := seen[n]; dup || !view.IsPotentialTarget(n.X, n.Y) {
				continue
			}
			seen[n] = struct{}{}
			candidates = append(candidates, n)
		}
	}

	if !r.hasLastHit || len(candidates) < 2 {
		return candidates
	}

	aligned := make([]mb.Coordinates, 0, len(candidates))
	for _, c := range candidates {
		if c.X == r.lastHit.X || c.Y == r.lastHit.Y {
			aligned = append(aligned, c)
		}
	}
	if len(aligned) > 0 {
		return aligned
	}
	return candidates
}

func walkPastHits(view mb.GridView, start, step mb.Coordinates) mb.Coordinates {
	p := start
	for {
		next := p.Add(step)
		if !view.IsLiveHit(next.X, next.Y) {
			return next
		}
		p = next
	}
}

func opposite(step mb.Coordinates) mb.Coordinates {
	return mb.Coordinates{X: -step.X, Y: -step.Y}
}
