package roster

import (
	"fmt"
	"maps"
	"slices"

	"github.com/tatianab/monster-game/internal/creature"
)

// Item identifies a consumable in the bag.
type Item string

const (
	MonsterBall Item = "monster_ball"
	Potion      Item = "potion"
	FullRestore Item = "full_restore"
)

// PotionHP is how much a Potion restores.
const PotionHP = 20

// DefaultItems is the starting bag of a new trainer.
func DefaultItems() map[Item]int {
	return map[Item]int{
		MonsterBall: 5,
		Potion:      3,
		FullRestore: 1,
	}
}

// Count returns how many of it the bag holds.
func (r *Roster) Count(it Item) int { return r.items[it] }

// Items returns a copy of the bag.
func (r *Roster) Items() map[Item]int { return maps.Clone(r.items) }

// ItemNames lists the bag's item ids in sorted order.
func (r *Roster) ItemNames() []Item {
	return slices.Sorted(maps.Keys(r.items))
}

// AddItem puts n more of it in the bag.
func (r *Roster) AddItem(it Item, n int) {
	if n <= 0 {
		return
	}
	r.items[it] += n
}

// Consume spends one it.
func (r *Roster) Consume(it Item) error {
	if r.items[it] <= 0 {
		return fmt.Errorf("use %s: %w", it, ErrOutOfStock)
	}
	r.items[it]--
	return nil
}

// UseItem applies a healing item to target and spends one of it. On any
// error nothing changes.
func (r *Roster) UseItem(it Item, target *creature.Creature) (string, error) {
	switch it {
	case Potion, FullRestore:
	case MonsterBall:
		return "", fmt.Errorf("use %s: %w", it, ErrNotUsable)
	default:
		return "", fmt.Errorf("use %q: %w", it, ErrUnknownItem)
	}
	if r.items[it] <= 0 {
		return "", fmt.Errorf("use %s: %w", it, ErrOutOfStock)
	}
	if target == nil {
		return "", fmt.Errorf("use %s: %w", it, ErrNoTarget)
	}
	if target.Fainted() {
		return "", fmt.Errorf("use %s on %s: %w", it, target.Name(), ErrFainted)
	}

	var msg string
	switch it {
	case Potion:
		healed := target.Heal(PotionHP, false)
		msg = fmt.Sprintf("%s recovered %d HP!", target.Name(), healed)
	case FullRestore:
		healed := target.HealFull()
		msg = fmt.Sprintf("%s recovered %d HP! Status conditions were cured!", target.Name(), healed)
	}
	r.items[it]--
	return msg, nil
}
