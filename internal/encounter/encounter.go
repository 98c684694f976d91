// Package encounter generates wild creatures for an area of the map.
package encounter

import (
	"fmt"
	"slices"

	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/creature"
	"github.com/tatianab/monster-game/internal/random"
)

// Area is a terrain tag supplied by the map.
type Area string

const (
	Grass    Area = "grass"
	Water    Area = "water"
	Cave     Area = "cave"
	Mountain Area = "mountain"
)

const (
	MinLevel = 3
	MaxLevel = 10
)

var pools = map[Area][]int{
	Grass:    {1, 7, 13},
	Water:    {4},
	Cave:     {10, 15},
	Mountain: {1, 10},
}

// fallback serves any area without a pool of its own.
var fallback = []int{1, 4, 7, 10, 13, 15}

// Areas lists the areas with their own pool.
func Areas() []Area {
	return []Area{Grass, Water, Cave, Mountain}
}

// Pool returns the species ids that can appear in area.
func Pool(area Area) []int {
	if p, ok := pools[area]; ok {
		return slices.Clone(p)
	}
	return slices.Clone(fallback)
}

// Wild picks a species from area's pool and a level in [MinLevel, MaxLevel].
func Wild(cat *catalog.Catalog, area Area, rng random.Source) (*creature.Creature, error) {
	pool := Pool(area)
	id := pool[rng.IntN(len(pool))]
	level := MinLevel + rng.IntN(MaxLevel-MinLevel+1)
	c, err := creature.New(cat, id, level, true)
	if err != nil {
		return nil, fmt.Errorf("encounter in %s: %w", area, err)
	}
	return c, nil
}
