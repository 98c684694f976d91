// Package save persists a trainer and their roster. The wire format is a
// single JSON document per save slot; stores decide where documents live.
package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/creature"
	"github.com/tatianab/monster-game/internal/roster"
	"github.com/tatianab/monster-game/internal/trainer"
)

var (
	ErrNotFound    = errors.New("save not found")
	ErrInvalidSlot = errors.New("invalid save slot")
)

// Store reads and writes save slots.
type Store interface {
	Save(ctx context.Context, slot string, t *trainer.Trainer) error
	Load(ctx context.Context, slot string) (*trainer.Trainer, error)
	List(ctx context.Context) ([]string, error)
	Close() error
}

type position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type moveRecord struct {
	ID        int `json:"id"`
	CurrentPP int `json:"current_pp"`
}

type monsterRecord struct {
	SpeciesID       int            `json:"species_id"`
	Level           int            `json:"level"`
	Exp             int            `json:"exp"`
	ExpToNextLevel  int            `json:"exp_to_next_level"`
	CurrentHP       int            `json:"current_hp"`
	Moves           []moveRecord   `json:"moves"`
	StatusCondition catalog.Status `json:"status_condition"`
	IsWild          bool           `json:"is_wild"`
}

type document struct {
	PlayerName         string          `json:"player_name"`
	Position           position        `json:"position"`
	Money              int             `json:"money"`
	Items              map[string]int  `json:"items"`
	Badges             []string        `json:"badges"`
	DiscoveredMonsters []int           `json:"discovered_monsters"`
	Monsters           []monsterRecord `json:"monsters"`
	ActiveMonster      int             `json:"active_monster"`
}

// Encode serializes t.
func Encode(t *trainer.Trainer) ([]byte, error) {
	r := t.Roster
	doc := document{
		PlayerName:         t.Name,
		Position:           position{X: t.Position.X, Y: t.Position.Y},
		Money:              t.Money,
		Items:              make(map[string]int),
		Badges:             t.Badges,
		DiscoveredMonsters: r.Discovered(),
		Monsters:           make([]monsterRecord, 0, r.Len()),
		ActiveMonster:      r.ActiveIndex(),
	}
	if doc.Badges == nil {
		doc.Badges = []string{}
	}
	for it, n := range r.Items() {
		doc.Items[string(it)] = n
	}
	for _, c := range r.Creatures() {
		st := c.Snapshot()
		rec := monsterRecord{
			SpeciesID:       st.SpeciesID,
			Level:           st.Level,
			Exp:             st.Exp,
			ExpToNextLevel:  st.ExpToNext,
			CurrentHP:       st.HP,
			Moves:           make([]moveRecord, len(st.Moves)),
			StatusCondition: st.Status,
			IsWild:          st.Wild,
		}
		for i, m := range st.Moves {
			rec.Moves[i] = moveRecord{ID: m.ID, CurrentPP: m.PP}
		}
		doc.Monsters = append(doc.Monsters, rec)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}

// Decode rebuilds a trainer from data. Every creature is checked against
// cat; any bad record fails the whole load.
func Decode(cat *catalog.Catalog, data []byte) (*trainer.Trainer, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}

	creatures := make([]*creature.Creature, 0, len(doc.Monsters))
	for i, rec := range doc.Monsters {
		st := creature.State{
			SpeciesID: rec.SpeciesID,
			Level:     rec.Level,
			Exp:       rec.Exp,
			ExpToNext: rec.ExpToNextLevel,
			HP:        rec.CurrentHP,
			Moves:     make([]creature.MoveState, len(rec.Moves)),
			Status:    rec.StatusCondition,
			Wild:      rec.IsWild,
		}
		for j, m := range rec.Moves {
			st.Moves[j] = creature.MoveState{ID: m.ID, PP: m.CurrentPP}
		}
		c, err := creature.Restore(cat, st)
		if err != nil {
			return nil, fmt.Errorf("decode monster %d: %w", i, err)
		}
		creatures = append(creatures, c)
	}

	items := make(map[roster.Item]int, len(doc.Items))
	for it, n := range doc.Items {
		if n < 0 {
			return nil, fmt.Errorf("decode save: negative count for %s", it)
		}
		items[roster.Item(it)] = n
	}
	r, err := roster.Restore(creatures, doc.ActiveMonster, items, doc.DiscoveredMonsters)
	if err != nil {
		return nil, fmt.Errorf("decode save: %w", err)
	}

	badges := doc.Badges
	if badges == nil {
		badges = []string{}
	}
	return &trainer.Trainer{
		Name:     doc.PlayerName,
		Position: trainer.Position{X: doc.Position.X, Y: doc.Position.Y},
		Money:    doc.Money,
		Badges:   badges,
		Roster:   r,
	}, nil
}

// checkSlot rejects names that can't be used as a file name.
func checkSlot(slot string) error {
	if strings.TrimSpace(slot) == "" || strings.ContainsAny(slot, `/\:`) || strings.HasPrefix(slot, ".") {
		return fmt.Errorf("%q: %w", slot, ErrInvalidSlot)
	}
	return nil
}
