package creature

import (
	"fmt"
	"slices"
)

// GainExperience adds amount and applies every level-up it pays for.
// Wild creatures never gain experience.
func (c *Creature) GainExperience(amount int) (leveled bool, levels int) {
	if c.wild || amount <= 0 {
		return false, 0
	}
	c.exp += amount
	for c.exp >= c.expToNext {
		c.levelUp()
		levels++
	}
	return levels > 0, levels
}

func (c *Creature) levelUp() {
	oldMax := c.stats.MaxHP
	c.level++
	c.stats = ComputeStats(c.species.Base, c.level)
	c.hp = min(c.stats.MaxHP, c.hp+c.stats.MaxHP-oldMax)

	c.exp -= c.expToNext
	// x1.2, floored, and always growing
	next := c.expToNext * 6 / 5
	if next <= c.expToNext {
		next = c.expToNext + 1
	}
	c.expToNext = next

	c.learnMoves(c.level-1, c.level)
}

// CanEvolve reports whether the species has an evolution and the creature
// has reached its level.
func (c *Creature) CanEvolve() bool {
	level, _, ok := c.species.EvolvesAt()
	return ok && c.level >= level
}

// Evolve returns a new creature of the evolved species. The receiver is not
// modified; the caller swaps the returned creature in. Experience, the
// experience threshold, the HP ratio, the wild flag and the known moves
// carry over.
func (c *Creature) Evolve() (*Creature, error) {
	if !c.CanEvolve() {
		return nil, fmt.Errorf("%w: %s at level %d", ErrCannotEvolve, c.Name(), c.level)
	}
	_, into, _ := c.species.EvolvesAt()
	evolved, err := New(c.cat, into, c.level, c.wild)
	if err != nil {
		return nil, fmt.Errorf("evolve %s: %w", c.Name(), err)
	}
	evolved.exp = c.exp
	evolved.expToNext = c.expToNext

	ratio := float64(c.hp) / float64(c.stats.MaxHP)
	evolved.hp = int(float64(evolved.stats.MaxHP) * ratio)
	if c.hp > 0 && evolved.hp == 0 {
		evolved.hp = 1
	}

	evolved.moves = slices.Clone(c.moves)
	return evolved, nil
}
