// Package trainer holds the player record.
package trainer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/creature"
	"github.com/tatianab/monster-game/internal/roster"
)

var ErrNotStarter = errors.New("not a starter species")

const StartingMoney = 1000

// Position is a tile coordinate on the map.
type Position struct {
	X, Y int
}

// Trainer is the player: identity, progress and the roster they own.
type Trainer struct {
	Name     string
	Position Position
	Money    int
	Badges   []string
	Roster   *roster.Roster
}

// New returns a trainer with the starting money and bag and an empty team.
func New(name string) *Trainer {
	return &Trainer{
		Name:   name,
		Money:  StartingMoney,
		Badges: []string{},
		Roster: roster.New(roster.DefaultItems()),
	}
}

// Starters are the species a new trainer may pick from.
var Starters = []int{1, 4, 7}

// StarterLevel is the level a starter joins at.
const StarterLevel = 5

// TakeStarter adds a starter of species id to the team.
func (t *Trainer) TakeStarter(cat *catalog.Catalog, id int) error {
	if !slices.Contains(Starters, id) {
		return fmt.Errorf("species %d: %w", id, ErrNotStarter)
	}
	c, err := creature.New(cat, id, StarterLevel, false)
	if err != nil {
		return fmt.Errorf("take starter: %w", err)
	}
	return t.Roster.Add(c)
}
