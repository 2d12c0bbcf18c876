package scene

import (
	gomath "math"
	"slices"
	"time"

	"github.com/Faultbox/egghunt/internal/engine/camera"
)

// Result summarizes what a tick changed.
type Result struct {
	Collected int  // eggs picked up this tick
	Remaining int  // eggs left afterwards
	Won       bool // true only on the tick the last egg was taken
}

// Update advances the scene by one tick. now is the scene clock and only
// drives the egg bobbing phase. The step order is fixed: move, turn, collect,
// win check, orbit, bob, then clamp the player to the boundary.
func (s *State) Update(in Input, now time.Duration) Result {
	var res Result

	if in[KeyForward] {
		angle := float64(s.Player.Rotation)
		dx := float32(MoveSpeed * gomath.Sin(angle))
		dz := float32(MoveSpeed * gomath.Cos(angle))

		s.Player.Center[0] += dx
		s.Player.Center[2] += dz
		s.FollowOffset[0] += dx
		s.FollowOffset[2] += dz
	}
	if in[KeyTurnLeft] {
		s.Player.Rotation += TurnSpeed
	}
	if in[KeyTurnRight] {
		s.Player.Rotation -= TurnSpeed
	}

	res.Collected = s.collect()

	if len(s.Eggs) == 0 && !s.won {
		s.Player.Recolor(CompletionColor)
		s.won = true
		res.Won = true
	}

	var dLat, dLon float32
	if in[KeyOrbitLeft] {
		dLon += camera.OrbitSpeed
	}
	if in[KeyOrbitRight] {
		dLon -= camera.OrbitSpeed
	}
	if in[KeyOrbitUp] {
		dLat -= camera.OrbitSpeed
	}
	if in[KeyOrbitDown] {
		dLat += camera.OrbitSpeed
	}
	s.Orbit.Rotate(dLat, dLon)

	bob := EggHeight + BobAmplitude*float32(gomath.Sin(milliseconds(now)*BobRate))
	for _, e := range s.Eggs {
		e.Center[1] = bob
	}

	s.Player.Center[0] = clamp(s.Player.Center[0], -BoundaryHalfExtent, BoundaryHalfExtent)
	s.Player.Center[2] = clamp(s.Player.Center[2], -BoundaryHalfExtent, BoundaryHalfExtent)

	res.Remaining = len(s.Eggs)
	return res
}

// collect removes every egg within PickupRadius of the player together with
// its shadow. Walking backwards keeps the remaining indices valid.
func (s *State) collect() int {
	n := 0
	for i := len(s.Eggs) - 1; i >= 0; i-- {
		if s.Eggs[i].Center.Sub(s.Player.Center).Len() < PickupRadius {
			s.Eggs = slices.Delete(s.Eggs, i, i+1)
			s.Shadows = slices.Delete(s.Shadows, i, i+1)
			n++
		}
	}
	return n
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
