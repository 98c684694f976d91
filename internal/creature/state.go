package creature

import (
	"fmt"

	"github.com/tatianab/monster-game/internal/catalog"
)

// MoveState is a known move reduced to its id and remaining PP.
type MoveState struct {
	ID int
	PP int
}

// State is every field needed to rebuild a creature.
type State struct {
	SpeciesID int
	Level     int
	Exp       int
	ExpToNext int
	HP        int
	Moves     []MoveState
	Status    catalog.Status
	Wild      bool
}

// Snapshot captures the creature's state.
func (c *Creature) Snapshot() State {
	moves := make([]MoveState, len(c.moves))
	for i, m := range c.moves {
		moves[i] = MoveState{ID: m.Move.ID, PP: m.PP}
	}
	return State{
		SpeciesID: c.species.ID,
		Level:     c.level,
		Exp:       c.exp,
		ExpToNext: c.expToNext,
		HP:        c.hp,
		Moves:     moves,
		Status:    c.status,
		Wild:      c.wild,
	}
}

// Restore rebuilds a creature from st. HP and PP are clamped to their
// maximums; unknown species or move ids are errors.
func Restore(cat *catalog.Catalog, st State) (*Creature, error) {
	c, err := New(cat, st.SpeciesID, st.Level, st.Wild)
	if err != nil {
		return nil, fmt.Errorf("restore creature: %w", err)
	}
	if !st.Status.Valid() {
		return nil, fmt.Errorf("restore %s: unknown status %q", c.Name(), st.Status)
	}
	if len(st.Moves) > MaxMoves {
		return nil, fmt.Errorf("restore %s: %d moves, at most %d", c.Name(), len(st.Moves), MaxMoves)
	}

	c.exp = max(0, st.Exp)
	if st.ExpToNext > 0 {
		c.expToNext = st.ExpToNext
	}
	c.hp = min(c.stats.MaxHP, max(0, st.HP))
	c.status = st.Status

	if len(st.Moves) > 0 {
		moves := make([]MoveSlot, 0, len(st.Moves))
		for _, ms := range st.Moves {
			mv, err := cat.Move(ms.ID)
			if err != nil {
				return nil, fmt.Errorf("restore %s: %w", c.Name(), err)
			}
			moves = append(moves, MoveSlot{Move: mv, PP: min(mv.PP, max(0, ms.PP))})
		}
		c.moves = moves
	}
	return c, nil
}
