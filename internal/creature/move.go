package creature

import (
	"fmt"
	"math"
	"strings"

	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/random"
)

const (
	wakeChance      = 0.3
	fullParalysis   = 0.25
	stabMultiplier  = 1.5
	minRandomFactor = 0.85
)

// UseMove uses the move at index against target and describes what
// happened. Invalid indexes, empty PP and blocking statuses leave PP and HP
// untouched; a miss still spends PP.
func (c *Creature) UseMove(index int, target *Creature, rng random.Source) string {
	if index < 0 || index >= len(c.moves) {
		return fmt.Sprintf("%s is confused!", c.Name())
	}
	if c.Fainted() {
		return fmt.Sprintf("%s can't battle!", c.Name())
	}
	if target == nil {
		return "But there was no target..."
	}
	slot := &c.moves[index]
	mv := slot.Move
	if slot.PP <= 0 {
		return fmt.Sprintf("No PP left for %s!", mv.Name)
	}

	var b strings.Builder
	switch c.status {
	case catalog.StatusSleep:
		if rng.Float64() >= wakeChance {
			return fmt.Sprintf("%s is sleeping!", c.Name())
		}
		c.status = catalog.StatusNone
		fmt.Fprintf(&b, "%s woke up! ", c.Name())
	case catalog.StatusParalysis:
		if rng.Float64() < fullParalysis {
			return fmt.Sprintf("%s is paralyzed and can't move!", c.Name())
		}
	}

	if rng.IntN(100)+1 > mv.Accuracy {
		slot.PP--
		fmt.Fprintf(&b, "%s's %s missed!", c.Name(), mv.Name)
		return b.String()
	}
	slot.PP--

	eff := c.cat.Effectiveness(mv.Type, target.species.Types)
	dealt := target.TakeDamage(c.damage(mv, target, eff, rng))

	fmt.Fprintf(&b, "%s used %s!", c.Name(), mv.Name)
	if dealt > 0 {
		fmt.Fprintf(&b, " %s took %d damage!", target.Name(), dealt)
	}
	switch {
	case eff == 0:
		b.WriteString(" It has no effect...")
	case eff > 1:
		b.WriteString(" It's super effective!")
	case eff < 1:
		b.WriteString(" It's not very effective...")
	}
	if note := c.applyEffect(mv.Effect, target, eff, rng); note != "" {
		b.WriteString(" " + note)
	}
	return b.String()
}

// damage computes the final damage of mv against target. An immune target
// takes nothing; any other hit does at least 1.
func (c *Creature) damage(mv catalog.Move, target *Creature, eff float64, rng random.Source) int {
	if eff == 0 {
		return 0
	}
	if mv.Damage == catalog.DamageLevel {
		return c.level
	}
	if mv.Power == 0 {
		return 0
	}
	base := ((2*float64(c.level)/5+2)*float64(mv.Power)*float64(c.stats.Attack)/float64(target.stats.Defense))/50 + 2
	stab := 1.0
	if c.species.HasType(mv.Type) {
		stab = stabMultiplier
	}
	factor := minRandomFactor + (1-minRandomFactor)*rng.Float64()
	return max(1, int(math.Floor(base*stab*eff*factor)))
}

func (c *Creature) applyEffect(e catalog.Effect, target *Creature, eff float64, rng random.Source) string {
	if e.Kind != catalog.EffectInflictStatus {
		return ""
	}
	recipient := target
	if e.Target == catalog.TargetSelf {
		recipient = c
	} else if eff == 0 {
		return ""
	}
	if recipient.Fainted() || recipient.status != catalog.StatusNone {
		return ""
	}
	if rng.Float64() >= e.Chance {
		return ""
	}
	recipient.status = e.Status
	return statusNote(recipient.Name(), e.Status)
}

func statusNote(name string, s catalog.Status) string {
	switch s {
	case catalog.StatusSleep:
		return name + " fell asleep!"
	case catalog.StatusParalysis:
		return name + " is paralyzed!"
	case catalog.StatusPoison:
		return name + " was poisoned!"
	case catalog.StatusBurn:
		return name + " was burned!"
	}
	return ""
}
