package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// document is the on-disk YAML layout.
type document struct {
	Species   []Species                 `yaml:"species"`
	Moves     []Move                    `yaml:"moves"`
	TypeChart map[Type]map[Type]float64 `yaml:"type_chart"`
	Learnsets map[int][]LearnStep       `yaml:"learnsets"`
}

// Default builds the catalog shipped with the game.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile builds a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // operator-supplied data path
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a YAML catalog document.
func Parse(b []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return build(doc)
}

func build(doc document) (*Catalog, error) {
	c := &Catalog{
		species:   make(map[int]Species, len(doc.Species)),
		moves:     make(map[int]Move, len(doc.Moves)),
		chart:     make(map[Type]map[Type]float64, len(doc.TypeChart)),
		learnsets: make(map[int][]LearnStep, len(doc.Learnsets)),
	}

	for _, mv := range doc.Moves {
		if _, dup := c.moves[mv.ID]; dup {
			return nil, fmt.Errorf("move %d defined twice", mv.ID)
		}
		if mv.Accuracy < 1 || mv.Accuracy > 100 {
			return nil, fmt.Errorf("move %d: accuracy %d out of range 1-100", mv.ID, mv.Accuracy)
		}
		if mv.PP < 1 {
			return nil, fmt.Errorf("move %d: pp must be positive", mv.ID)
		}
		if mv.Power < 0 {
			return nil, fmt.Errorf("move %d: negative power", mv.ID)
		}
		switch mv.Damage {
		case DamageStandard, DamageLevel:
		default:
			return nil, fmt.Errorf("move %d: unknown damage kind %q", mv.ID, mv.Damage)
		}
		if err := validateEffect(mv.Effect); err != nil {
			return nil, fmt.Errorf("move %d: %w", mv.ID, err)
		}
		c.moves[mv.ID] = mv
	}

	for _, sp := range doc.Species {
		if _, dup := c.species[sp.ID]; dup {
			return nil, fmt.Errorf("species %d defined twice", sp.ID)
		}
		if len(sp.Types) == 0 || len(sp.Types) > 2 {
			return nil, fmt.Errorf("species %d: needs one or two types", sp.ID)
		}
		c.species[sp.ID] = sp
	}
	for _, sp := range c.species {
		if _, into, ok := sp.EvolvesAt(); ok {
			if _, known := c.species[into]; !known {
				return nil, fmt.Errorf("species %d evolves into %w: %d", sp.ID, ErrUnknownSpecies, into)
			}
		}
	}

	for atk, row := range doc.TypeChart {
		r := make(map[Type]float64, len(row))
		for def, m := range row {
			switch m {
			case 0, 0.5, 1, 2:
			default:
				return nil, fmt.Errorf("type chart %s->%s: multiplier %v not in {0, 0.5, 1, 2}", atk, def, m)
			}
			r[def] = m
		}
		c.chart[atk] = r
	}

	for id, steps := range doc.Learnsets {
		if _, ok := c.species[id]; !ok {
			return nil, fmt.Errorf("learnset for %w: %d", ErrUnknownSpecies, id)
		}
		for _, st := range steps {
			for _, mid := range st.Moves {
				if _, ok := c.moves[mid]; !ok {
					return nil, fmt.Errorf("learnset for species %d: %w: %d", id, ErrUnknownMove, mid)
				}
			}
		}
		sorted := append([]LearnStep(nil), steps...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })
		c.learnsets[id] = sorted
	}

	return c, nil
}

func validateEffect(e Effect) error {
	switch e.Kind {
	case EffectNone:
		return nil
	case EffectInflictStatus:
		if e.Status == StatusNone || !e.Status.Valid() {
			return fmt.Errorf("effect status %q is not a condition", e.Status)
		}
		if e.Chance <= 0 || e.Chance > 1 {
			return fmt.Errorf("effect chance %v out of range (0, 1]", e.Chance)
		}
		switch e.Target {
		case TargetOpponent, TargetSelf:
		default:
			return fmt.Errorf("effect target %q unknown", e.Target)
		}
		return nil
	default:
		return fmt.Errorf("effect kind %q unknown", e.Kind)
	}
}
