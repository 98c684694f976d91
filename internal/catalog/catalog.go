// Package catalog holds the static species, move, type-chart and learnset
// data. A Catalog is built once and never mutated; creatures keep a pointer
// to the catalog they were created from.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	ErrUnknownSpecies = errors.New("unknown species id")
	ErrUnknownMove    = errors.New("unknown move id")
)

// Catalog is read-only reference data.
type Catalog struct {
	species   map[int]Species
	moves     map[int]Move
	chart     map[Type]map[Type]float64
	learnsets map[int][]LearnStep
}

// Species returns the species with the given id.
func (c *Catalog) Species(id int) (Species, error) {
	sp, ok := c.species[id]
	if !ok {
		return Species{}, fmt.Errorf("%w: %d", ErrUnknownSpecies, id)
	}
	sp.Types = slices.Clone(sp.Types)
	if sp.Evolution != nil {
		evo := *sp.Evolution
		sp.Evolution = &evo
	}
	return sp, nil
}

// Move returns the move with the given id.
func (c *Catalog) Move(id int) (Move, error) {
	mv, ok := c.moves[id]
	if !ok {
		return Move{}, fmt.Errorf("%w: %d", ErrUnknownMove, id)
	}
	return mv, nil
}

// Effectiveness multiplies the chart entries of attack against every
// defending type. Missing pairs count as 1.
func (c *Catalog) Effectiveness(attack Type, defending []Type) float64 {
	mult := 1.0
	row := c.chart[attack]
	for _, d := range defending {
		if m, ok := row[d]; ok {
			mult *= m
		}
	}
	return mult
}

// Learnset returns the species' learn steps in ascending level order.
func (c *Catalog) Learnset(speciesID int) []LearnStep {
	steps := c.learnsets[speciesID]
	out := make([]LearnStep, len(steps))
	for i, st := range steps {
		out[i] = LearnStep{Level: st.Level, Moves: slices.Clone(st.Moves)}
	}
	return out
}

// SpeciesIDs lists every species id in ascending order.
func (c *Catalog) SpeciesIDs() []int {
	ids := make([]int, 0, len(c.species))
	for id := range c.species {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
