package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/config"
	"github.com/tatianab/monster-game/internal/narrator"
	"github.com/tatianab/monster-game/internal/random"
	"github.com/tatianab/monster-game/internal/save"
	"github.com/tatianab/monster-game/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := tea.LogToFile(cfg.LogFile, "monster-game")
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			fmt.Printf("Error seeding: %v\n", err)
			os.Exit(1)
		}
	}
	log.Printf("starting with seed %d", seed)

	store, err := openStore(cfg, cat)
	if err != nil {
		fmt.Printf("Error opening saves: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var describer narrator.Describer = narrator.Static{Catalog: cat}
	if cfg.NarratorEnabled() {
		eng, err := narrator.NewEngine(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cat)
		if err != nil {
			fmt.Printf("Error creating narrator: %v\n", err)
			os.Exit(1)
		}
		defer eng.Close()
		describer = narrator.NewCached(eng, cat)
	}

	err = tui.Run(tui.Options{
		Catalog:    cat,
		Store:      store,
		Narrator:   describer,
		Random:     random.New(seed),
		Logger:     log.Default(),
		PlayerName: cfg.PlayerName,
		ReportDir:  cfg.SaveDir,
	})
	if err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func openStore(cfg *config.Config, cat *catalog.Catalog) (save.Store, error) {
	if cfg.SaveBackend == config.BackendSQLite {
		return save.OpenSQLite(cfg.SaveDB, cat)
	}
	return save.NewFileStore(cfg.SaveDir, cat), nil
}
