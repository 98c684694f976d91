package main

import (
	"context"
	"fmt"
	"log"

	"github.com/tatianab/monster-game/internal/battle"
	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/config"
	"github.com/tatianab/monster-game/internal/encounter"
	"github.com/tatianab/monster-game/internal/narrator"
	"github.com/tatianab/monster-game/internal/random"
	"github.com/tatianab/monster-game/internal/roster"
	"github.com/tatianab/monster-game/internal/save"
	"github.com/tatianab/monster-game/internal/trainer"
)

const (
	maxEncounters = 12
	maxSteps      = 200
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	rng := random.New(seed)
	fmt.Printf("--- Seed %d ---\n\n", seed)

	var describer narrator.Describer = narrator.Static{Catalog: cat}
	if cfg.NarratorEnabled() {
		eng, err := narrator.NewEngine(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cat)
		if err != nil {
			log.Fatalf("Failed to create narrator: %v", err)
		}
		defer eng.Close()
		describer = narrator.NewCached(eng, cat)
	}

	player := trainer.New(cfg.PlayerName)
	if err := player.TakeStarter(cat, trainer.Starters[rng.IntN(len(trainer.Starters))]); err != nil {
		log.Fatalf("Failed to pick a starter: %v", err)
	}
	fmt.Printf("%s starts with %s\n\n", player.Name, player.Roster.Active())

	areas := encounter.Areas()
	for i := 1; i <= maxEncounters; i++ {
		area := areas[rng.IntN(len(areas))]
		enemy, err := encounter.Wild(cat, area, rng)
		if err != nil {
			log.Fatalf("Failed to generate encounter: %v", err)
		}
		fmt.Printf("--- Encounter %d (%s) ---\n", i, area)

		b, err := battle.New(player.Roster, enemy, battle.WithRandom(rng))
		if err != nil {
			log.Fatalf("Failed to start battle: %v", err)
		}
		fmt.Println(b.Message())
		play(b)
		fmt.Printf("Result: %s\n", b.Result())

		switch b.Result() {
		case battle.ResultLose:
			player.Roster.HealAll()
			fmt.Println("The team was healed.")
		case battle.ResultCatch:
			sp := enemy.Species()
			if e, err := describer.Describe(ctx, sp); err == nil {
				fmt.Printf("Dex: %s\n", e)
			}
		}
		fmt.Println()
	}

	fmt.Println("--- Team ---")
	for _, c := range player.Roster.Creatures() {
		fmt.Printf("%s  EXP %d/%d\n", c, c.Exp(), c.ExpToNext())
	}
	fmt.Printf("Discovered: %v\n", player.Roster.Discovered())

	store := save.NewFileStore(cfg.SaveDir, cat)
	if err := store.Save(ctx, "simulation", player); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	fmt.Printf("Saved to %s/simulation.json\n", cfg.SaveDir)
}

// play drives b to the end with a fixed policy: heal when low, throw a ball
// at a weakened wild creature, otherwise use the first move with PP left.
func play(b *battle.Battle) {
	last := b.Message()
	for step := 0; step < maxSteps && !b.Done(); step++ {
		switch b.State() {
		case battle.StatePlayerTurn:
			b.Choose(pickMenu(b))
		case battle.StateMoveSelect:
			b.Choose(pickMove(b))
		case battle.StateItemSelect:
			if b.Choose(pickItem(b)) == battle.StateItemSelect {
				b.Advance(battle.ActionCancel, 0)
			}
		case battle.StateMonsterSelect:
			// The cursor already sits on the first conscious creature.
			b.Advance(battle.ActionConfirm, 0)
		case battle.StateEvolution:
			b.Advance(battle.ActionConfirm, 0)
		default:
			b.Advance(battle.ActionAdvance, 0)
		}
		if msg := b.Message(); msg != last && msg != battle.Prompt {
			fmt.Println(msg)
			last = msg
		}
	}
}

func pickMenu(b *battle.Battle) int {
	player, enemy := b.Player(), b.Enemy()
	r := b.Roster()
	if player.HP()*10 < player.MaxHP()*3 && r.Count(roster.Potion) > 0 {
		return battle.MenuItem
	}
	if b.Wild() && !r.Full() && r.Count(roster.MonsterBall) > 0 && enemy.HP()*2 < enemy.MaxHP() {
		return battle.MenuItem
	}
	return battle.MenuFight
}

func pickItem(b *battle.Battle) int {
	player := b.Player()
	if player.HP()*10 < player.MaxHP()*3 && b.Roster().Count(roster.Potion) > 0 {
		return 1
	}
	return 0
}

func pickMove(b *battle.Battle) int {
	for i, slot := range b.Player().Moves() {
		if slot.PP > 0 {
			return i
		}
	}
	return 0
}
