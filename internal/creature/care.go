package creature

import "github.com/tatianab/monster-game/internal/catalog"

const baseCatchRate = 45

// Heal restores up to amount HP and refills every move's PP. Status is only
// cleared when clearStatus is set. It returns the HP restored.
func (c *Creature) Heal(amount int, clearStatus bool) int {
	before := c.hp
	if amount > 0 {
		c.hp = min(c.stats.MaxHP, c.hp+amount)
	}
	c.restore(clearStatus)
	return c.hp - before
}

// HealFull restores HP to max, clears status and refills PP.
func (c *Creature) HealFull() int {
	before := c.hp
	c.hp = c.stats.MaxHP
	c.restore(true)
	return c.hp - before
}

func (c *Creature) restore(clearStatus bool) {
	if clearStatus {
		c.status = catalog.StatusNone
	}
	for i := range c.moves {
		c.moves[i].PP = c.moves[i].Move.PP
	}
}

// CatchRate is the probability in [0, 1] that a capture with the given ball
// bonus succeeds. Lower HP and a status condition make capture easier.
func (c *Creature) CatchRate(ballBonus float64) float64 {
	hpFactor := 1 - float64(c.hp)/float64(c.stats.MaxHP)*0.9

	statusBonus := 1.0
	switch c.status {
	case catalog.StatusSleep:
		statusBonus = 2.5
	case catalog.StatusParalysis, catalog.StatusPoison, catalog.StatusBurn:
		statusBonus = 1.5
	}

	rate := baseCatchRate * hpFactor * statusBonus * ballBonus / 255
	return min(1, max(0, rate))
}
