package game

import "golang.org/x/exp/rand"

// DefaultDieSides is the face count of every die in the standard setup.
const DefaultDieSides = 6

// Die is a single die. Active means it has not been spent this turn.
type Die struct {
	Value  int
	Sides  int
	Active bool
}

// NewDie returns an inactive die showing value.
func NewDie(sides, value int) Die {
	if sides <= 0 {
		sides = DefaultDieSides
	}
	return Die{Value: value, Sides: sides}
}

// Roll sets the die to a uniform value in [1, Sides] and makes it active.
func (d *Die) Roll(rng *rand.Rand) {
	d.Value = rng.Intn(d.Sides) + 1
	d.Active = true
}
