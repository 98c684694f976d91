// Package roster holds a trainer's team of creatures, the active slot, the
// item bag and the set of species ever owned.
package roster

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/tatianab/monster-game/internal/creature"
)

// MaxSize is the number of creatures a roster can hold.
const MaxSize = 6

var (
	ErrRosterFull  = errors.New("roster is full")
	ErrInvalidSlot = errors.New("no creature in that slot")
	ErrFainted     = errors.New("creature has fainted")
	ErrOutOfStock  = errors.New("item out of stock")
	ErrUnknownItem = errors.New("unknown item")
	ErrNoTarget    = errors.New("item needs a target")
	ErrNotUsable   = errors.New("item can't be used here")
)

// Roster is an ordered team plus inventory. It is not safe for concurrent
// use; a battle owns it for the battle's duration.
type Roster struct {
	creatures  []*creature.Creature
	active     int
	items      map[Item]int
	discovered map[int]struct{}
}

// New returns an empty roster holding a copy of items.
func New(items map[Item]int) *Roster {
	r := &Roster{
		items:      make(map[Item]int, len(items)),
		discovered: make(map[int]struct{}),
	}
	for it, n := range items {
		r.items[it] = max(0, n)
	}
	return r
}

// Add appends c as an owned creature and records its species. A full
// roster is left unchanged.
func (r *Roster) Add(c *creature.Creature) error {
	if len(r.creatures) >= MaxSize {
		return fmt.Errorf("add %s: %w", c.Name(), ErrRosterFull)
	}
	c.SetWild(false)
	r.creatures = append(r.creatures, c)
	r.Discover(c.SpeciesID())
	return nil
}

// Full reports whether another creature would be refused.
func (r *Roster) Full() bool { return len(r.creatures) >= MaxSize }

// Len is the number of creatures held.
func (r *Roster) Len() int { return len(r.creatures) }

// Creatures returns the team in slot order. The slice is a copy; the
// creatures are shared.
func (r *Roster) Creatures() []*creature.Creature {
	return slices.Clone(r.creatures)
}

// At returns the creature in slot i, or nil.
func (r *Roster) At(i int) *creature.Creature {
	if i < 0 || i >= len(r.creatures) {
		return nil
	}
	return r.creatures[i]
}

// Active returns the creature in the active slot, or nil if there is none.
func (r *Roster) Active() *creature.Creature {
	return r.At(r.active)
}

// ActiveIndex is the active slot.
func (r *Roster) ActiveIndex() int { return r.active }

// Switch makes slot i active. Empty slots and fainted creatures are refused.
func (r *Roster) Switch(i int) error {
	c := r.At(i)
	if c == nil {
		return fmt.Errorf("switch to slot %d: %w", i, ErrInvalidSlot)
	}
	if c.Fainted() {
		return fmt.Errorf("switch to %s: %w", c.Name(), ErrFainted)
	}
	r.active = i
	return nil
}

// Replace swaps the creature in slot i, used when a creature evolves.
func (r *Roster) Replace(i int, c *creature.Creature) error {
	if r.At(i) == nil {
		return fmt.Errorf("replace slot %d: %w", i, ErrInvalidSlot)
	}
	c.SetWild(false)
	r.creatures[i] = c
	r.Discover(c.SpeciesID())
	return nil
}

// FirstHealthy returns the first slot other than except holding a
// conscious creature, or -1.
func (r *Roster) FirstHealthy(except int) int {
	for i, c := range r.creatures {
		if i != except && !c.Fainted() {
			return i
		}
	}
	return -1
}

// HealAll fully restores every creature.
func (r *Roster) HealAll() {
	for _, c := range r.creatures {
		c.HealFull()
	}
}

// Discover records a species in the completion log.
func (r *Roster) Discover(speciesID int) {
	r.discovered[speciesID] = struct{}{}
}

// Discovered lists every recorded species id in ascending order.
func (r *Roster) Discovered() []int {
	return slices.Sorted(maps.Keys(r.discovered))
}

// Restore rebuilds a roster from saved parts. An out-of-range or fainted
// active slot falls back to the first conscious creature.
func Restore(creatures []*creature.Creature, active int, items map[Item]int, discovered []int) (*Roster, error) {
	if len(creatures) > MaxSize {
		return nil, fmt.Errorf("restore roster: %d creatures: %w", len(creatures), ErrRosterFull)
	}
	r := New(items)
	r.creatures = slices.Clone(creatures)
	for _, c := range r.creatures {
		c.SetWild(false)
	}
	for _, id := range discovered {
		r.Discover(id)
	}
	r.active = active
	if c := r.At(active); c == nil || c.Fainted() {
		if i := r.FirstHealthy(-1); i >= 0 || c == nil {
			r.active = max(0, i)
		}
	}
	return r, nil
}
