package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/monster-game/internal/battle"
	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/creature"
	"github.com/tatianab/monster-game/internal/random"
	"github.com/tatianab/monster-game/internal/save"
	"github.com/tatianab/monster-game/internal/trainer"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func newTestModel(t *testing.T, rng random.Source) (model, *save.FileStore) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	dir := t.TempDir()
	store := save.NewFileStore(filepath.Join(dir, "saves"), cat)
	m := NewModel(Options{
		Catalog:    cat,
		Store:      store,
		Random:     rng,
		PlayerName: "Trainer",
		ReportDir:  filepath.Join(dir, "reports"),
	})
	return press(t, m, saveListMsg{}), store
}

func TestNewGameFlow(t *testing.T) {
	rng := &random.Scripted{Ints: []int{1, 0}, Floats: []float64{0.1}}
	m, store := newTestModel(t, rng)

	if got := m.titleOptions(); len(got) != 2 {
		t.Errorf("Expected no Continue without a save, got %v", got)
	}
	m = press(t, m, keyEnter)
	if m.state != stateName {
		t.Fatalf("Expected name entry, got %d", m.state)
	}
	m = press(t, m, runes("Ash"), keyEnter)
	if m.state != stateStarter || m.trainer.Name != "Ash" {
		t.Fatalf("Expected starter pick for Ash, got state %d", m.state)
	}
	m = press(t, m, keyDown, keyEnter)
	if m.state != stateField {
		t.Fatalf("Expected field, got %d", m.state)
	}
	if a := m.trainer.Roster.Active(); a == nil || a.Name() != "Aquatle" {
		t.Fatalf("Expected Aquatle as starter, got %v", a)
	}

	m = press(t, m, runes("s"))
	if m.status != "Game saved." || !m.hasSave {
		t.Errorf("Unexpected status %q", m.status)
	}
	slots, err := store.List(context.Background())
	if err != nil || len(slots) != 1 || slots[0] != "current" {
		t.Errorf("Expected one save slot, got %v (%v)", slots, err)
	}

	m = press(t, m, runes("p"))
	pdf, err := os.ReadFile(filepath.Join(m.opts.ReportDir, "dex-ash.pdf"))
	if err != nil {
		t.Fatalf("Expected an exported dex: %v (status %q)", err, m.status)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Error("Expected a PDF file")
	}

	m = press(t, m, keyEnter)
	if m.state != stateBattle {
		t.Fatalf("Expected a battle, got %d", m.state)
	}
	if m.battle.Enemy().Name() != "Leafkit" || m.battle.Enemy().Level() != 3 {
		t.Errorf("Expected a level 3 Leafkit, got %s", m.battle.Enemy())
	}
	m = press(t, m, keyEnter, keyDown, keyDown, keyDown)
	if m.battle.Cursor() != battle.MenuRun {
		t.Fatalf("Expected cursor on Run, got %d", m.battle.Cursor())
	}
	m = press(t, m, keyEnter)
	if !m.battle.Done() || m.battle.Result() != battle.ResultRun {
		t.Fatalf("Expected to run away, got %s", m.battle.State())
	}
	if last := m.battleLog[len(m.battleLog)-1]; last != "Got away safely!" {
		t.Errorf("Expected the log to end with the escape, got %q", last)
	}
	m = press(t, m, keyEnter)
	if m.state != stateField || m.battle != nil || m.status != "You got away." {
		t.Errorf("Expected to be back in the field, got state %d status %q", m.state, m.status)
	}
}

func TestLoseHealsTeam(t *testing.T) {
	rng := &random.Scripted{Ints: []int{0, 7, 0, 0}, Floats: []float64{0.9}}
	m, _ := newTestModel(t, rng)

	cat := m.opts.Catalog
	m.trainer = trainer.New("Ash")
	weak, err := creature.New(cat, 1, 2, false)
	if err != nil {
		t.Fatalf("creature.New: %v", err)
	}
	weak.TakeDamage(weak.MaxHP() - 1)
	if err := m.trainer.Roster.Add(weak); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m.enterField("")

	m = press(t, m, keyEnter)
	if m.state != stateBattle {
		t.Fatalf("Expected a battle, got %d (%q)", m.state, m.status)
	}
	m = press(t, m, keyEnter, keyDown, keyDown, keyDown, keyEnter, keyEnter)
	if m.battle.Result() != battle.ResultLose {
		t.Fatalf("Expected a loss, got %s (%q)", m.battle.Result(), m.battle.Message())
	}
	m = press(t, m, keyEnter)
	if weak.HP() != weak.MaxHP() {
		t.Errorf("Expected the team healed, got %d/%d", weak.HP(), weak.MaxHP())
	}
	if m.state != stateField {
		t.Errorf("Expected field, got %d", m.state)
	}
}

func TestContinue(t *testing.T) {
	m, store := newTestModel(t, &random.Scripted{})
	saved := trainer.New("Misty")
	if err := saved.TakeStarter(m.opts.Catalog, 4); err != nil {
		t.Fatalf("TakeStarter: %v", err)
	}
	if err := store.Save(context.Background(), "current", saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m = press(t, m, saveListMsg{slots: []string{"current"}})
	if got := m.titleOptions(); got[1] != "Continue" {
		t.Fatalf("Expected Continue, got %v", got)
	}
	m = press(t, m, keyDown, keyEnter)
	if m.state != stateField || m.trainer.Name != "Misty" {
		t.Errorf("Expected Misty in the field, got state %d", m.state)
	}
}

func TestContinueFailure(t *testing.T) {
	m, _ := newTestModel(t, &random.Scripted{})
	m = press(t, m, saveListMsg{slots: []string{"current"}}, keyDown, keyEnter)
	if m.state != stateTitle || m.trainer != nil {
		t.Errorf("Expected a failed load to stay on the title, got state %d", m.state)
	}
	if !strings.HasPrefix(m.status, "Could not load") {
		t.Errorf("Unexpected status %q", m.status)
	}
}

func TestTeamAndDex(t *testing.T) {
	m, _ := newTestModel(t, &random.Scripted{})
	m.trainer = trainer.New("Ash")
	for _, id := range []int{1, 7} {
		c, err := creature.New(m.opts.Catalog, id, 10, false)
		if err != nil {
			t.Fatalf("creature.New: %v", err)
		}
		if err := m.trainer.Roster.Add(c); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	m.enterField("")

	// Team is listed right after the areas.
	m = press(t, m, keyDown, keyDown, keyDown, keyDown, keyEnter)
	if m.state != stateTeam {
		t.Fatalf("Expected team screen, got %d", m.state)
	}
	m.trainer.Roster.At(1).TakeDamage(10)
	m = press(t, m, keyDown, keyEnter)
	if m.trainer.Roster.ActiveIndex() != 1 {
		t.Errorf("Expected Leafkit to lead, status %q", m.status)
	}
	m = press(t, m, runes("h"))
	if c := m.trainer.Roster.At(1); c.HP() != c.MaxHP() {
		t.Errorf("Expected the potion to heal Leafkit, status %q", m.status)
	}

	m = press(t, m, keyEsc, keyDown, keyDown, keyDown, keyDown, keyDown)
	next, cmd := m.Update(keyEnter)
	m = next.(model)
	if m.state != stateDex {
		t.Fatalf("Expected dex screen, got %d", m.state)
	}
	if cmd == nil {
		t.Fatal("Expected a describe command for a discovered species")
	}
	m = press(t, m, cmd(), tea.WindowSizeMsg{Width: 200, Height: 50})
	if !strings.HasPrefix(m.entries[1], "Embery is a Fire-type monster") {
		t.Errorf("Unexpected entry %q", m.entries[1])
	}
	if !strings.Contains(m.View(), "Embery is a Fire-type monster") {
		t.Error("Expected the entry on screen")
	}
}
