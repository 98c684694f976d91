// Package creature models a single creature instance: stats, known moves
// with PP, status, experience, evolution and capture odds.
package creature

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tatianab/monster-game/internal/catalog"
)

// MaxMoves is how many moves a creature can know at once.
const MaxMoves = 4

var (
	ErrInvalidLevel = errors.New("level must be at least 1")
	ErrCannotEvolve = errors.New("creature cannot evolve")
)

// Stats are the level-scaled numbers derived from a species' base stats.
type Stats struct {
	MaxHP   int
	Attack  int
	Defense int
	Speed   int
}

// ComputeStats applies the stat formulas for level. It is a pure function
// of the base stats and the level.
func ComputeStats(base catalog.BaseStats, level int) Stats {
	return Stats{
		MaxHP:   base.HP*2*level/100 + level + 10,
		Attack:  base.Attack*2*level/100 + 5,
		Defense: base.Defense*2*level/100 + 5,
		Speed:   base.Speed*2*level/100 + 5,
	}
}

// MoveSlot is a known move with its remaining PP.
type MoveSlot struct {
	Move catalog.Move
	PP   int
}

// Creature is a mutable creature instance. Its move list is owned
// exclusively; accessors hand out copies.
type Creature struct {
	cat       *catalog.Catalog
	species   catalog.Species
	level     int
	exp       int
	expToNext int
	stats     Stats
	hp        int
	moves     []MoveSlot
	status    catalog.Status
	wild      bool
}

// New creates a creature of speciesID at level with full HP and the moves
// its learnset grants up to that level.
func New(cat *catalog.Catalog, speciesID, level int, wild bool) (*Creature, error) {
	if level < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	sp, err := cat.Species(speciesID)
	if err != nil {
		return nil, fmt.Errorf("new creature: %w", err)
	}
	c := &Creature{
		cat:       cat,
		species:   sp,
		level:     level,
		expToNext: 20 * level,
		stats:     ComputeStats(sp.Base, level),
		wild:      wild,
	}
	c.hp = c.stats.MaxHP
	c.learnMoves(0, level)
	return c, nil
}

// learnMoves replays learnset steps with from < level <= to in level order,
// skipping known moves, then keeps the most recent MaxMoves.
func (c *Creature) learnMoves(from, to int) {
	for _, step := range c.cat.Learnset(c.species.ID) {
		if step.Level <= from || step.Level > to {
			continue
		}
		for _, id := range step.Moves {
			if c.knows(id) {
				continue
			}
			// learnsets are validated when the catalog is built
			mv, err := c.cat.Move(id)
			if err != nil {
				continue
			}
			c.moves = append(c.moves, MoveSlot{Move: mv, PP: mv.PP})
		}
	}
	if len(c.moves) > MaxMoves {
		c.moves = slices.Clone(c.moves[len(c.moves)-MaxMoves:])
	}
}

func (c *Creature) knows(moveID int) bool {
	for _, m := range c.moves {
		if m.Move.ID == moveID {
			return true
		}
	}
	return false
}

func (c *Creature) Species() catalog.Species { return c.species }
func (c *Creature) SpeciesID() int           { return c.species.ID }
func (c *Creature) Name() string             { return c.species.Name }
func (c *Creature) Level() int               { return c.level }
func (c *Creature) Exp() int                 { return c.exp }
func (c *Creature) ExpToNext() int           { return c.expToNext }
func (c *Creature) Stats() Stats             { return c.stats }
func (c *Creature) HP() int                  { return c.hp }
func (c *Creature) MaxHP() int               { return c.stats.MaxHP }
func (c *Creature) Status() catalog.Status   { return c.status }
func (c *Creature) Wild() bool               { return c.wild }
func (c *Creature) Fainted() bool            { return c.hp <= 0 }

// Moves returns a copy of the known moves.
func (c *Creature) Moves() []MoveSlot {
	return slices.Clone(c.moves)
}

// SetWild marks the creature as wild or owned.
func (c *Creature) SetWild(wild bool) {
	c.wild = wild
}

// ApplyStatus inflicts s if the creature is conscious and has no status.
// It reports whether the status was applied.
func (c *Creature) ApplyStatus(s catalog.Status) bool {
	if s == catalog.StatusNone || !s.Valid() || c.Fainted() || c.status != catalog.StatusNone {
		return false
	}
	c.status = s
	return true
}

// TakeDamage lowers HP by amount, never below zero, and returns the HP lost.
func (c *Creature) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.hp
	c.hp = max(0, c.hp-amount)
	return before - c.hp
}

func (c *Creature) String() string {
	return fmt.Sprintf("%s Lv.%d (%d/%d)", c.Name(), c.level, c.hp, c.stats.MaxHP)
}
