package save

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/creature"
	"github.com/tatianab/monster-game/internal/roster"
	"github.com/tatianab/monster-game/internal/trainer"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	return cat
}

func sampleTrainer(t *testing.T, cat *catalog.Catalog) *trainer.Trainer {
	t.Helper()
	states := []creature.State{
		{SpeciesID: 1, Level: 12, Exp: 40, ExpToNext: 288, HP: 20,
			Moves:  []creature.MoveState{{ID: 1, PP: 30}, {ID: 10, PP: 2}, {ID: 2, PP: 35}, {ID: 3, PP: 0}},
			Status: catalog.StatusBurn},
		{SpeciesID: 13, Level: 7, Exp: 3, ExpToNext: 140, HP: 0,
			Moves:  []creature.MoveState{{ID: 1, PP: 35}, {ID: 50, PP: 12}},
			Status: catalog.StatusParalysis},
		{SpeciesID: 16, Level: 30, Exp: 0, ExpToNext: 700, HP: 55,
			Moves: []creature.MoveState{{ID: 60, PP: 15}, {ID: 61, PP: 9}}},
	}
	tr := trainer.New("Red")
	tr.Position = trainer.Position{X: 12, Y: -3}
	tr.Money = 4321
	tr.Badges = []string{"boulder", "cascade"}
	for _, st := range states {
		c, err := creature.Restore(cat, st)
		if err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if err := tr.Roster.Add(c); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	tr.Roster.Discover(4)
	if err := tr.Roster.Switch(2); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if err := tr.Roster.Consume(roster.Potion); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	return tr
}

func assertSameTrainer(t *testing.T, want, got *trainer.Trainer) {
	t.Helper()
	if got.Name != want.Name || got.Position != want.Position || got.Money != want.Money {
		t.Errorf("Expected %s at %v with %d, got %s at %v with %d",
			want.Name, want.Position, want.Money, got.Name, got.Position, got.Money)
	}
	if !slices.Equal(got.Badges, want.Badges) {
		t.Errorf("Expected badges %v, got %v", want.Badges, got.Badges)
	}
	if !reflect.DeepEqual(got.Roster.Items(), want.Roster.Items()) {
		t.Errorf("Expected items %v, got %v", want.Roster.Items(), got.Roster.Items())
	}
	if !slices.Equal(got.Roster.Discovered(), want.Roster.Discovered()) {
		t.Errorf("Expected discovered %v, got %v", want.Roster.Discovered(), got.Roster.Discovered())
	}
	if got.Roster.ActiveIndex() != want.Roster.ActiveIndex() {
		t.Errorf("Expected active %d, got %d", want.Roster.ActiveIndex(), got.Roster.ActiveIndex())
	}
	if got.Roster.Len() != want.Roster.Len() {
		t.Fatalf("Expected %d creatures, got %d", want.Roster.Len(), got.Roster.Len())
	}
	for i, c := range want.Roster.Creatures() {
		if w, g := c.Snapshot(), got.Roster.At(i).Snapshot(); !reflect.DeepEqual(w, g) {
			t.Errorf("Creature %d: expected %+v, got %+v", i, w, g)
		}
		if w, g := c.Stats(), got.Roster.At(i).Stats(); w != g {
			t.Errorf("Creature %d: expected stats %+v, got %+v", i, w, g)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	cat := testCatalog(t)
	tr := sampleTrainer(t, cat)

	data, err := Encode(tr)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, key := range []string{`"player_name"`, `"discovered_monsters"`, `"current_pp"`, `"status_condition": "burn"`, `"active_monster": 2`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Expected %s in the document", key)
		}
	}

	got, err := Decode(cat, data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertSameTrainer(t, tr, got)
}

func TestDecodeErrors(t *testing.T) {
	cat := testCatalog(t)
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"player_name":`},
		{"unknown species", `{"monsters":[{"species_id":99,"level":5}]}`},
		{"unknown move", `{"monsters":[{"species_id":1,"level":5,"moves":[{"id":999,"current_pp":1}]}]}`},
		{"bad level", `{"monsters":[{"species_id":1,"level":0}]}`},
		{"bad status", `{"monsters":[{"species_id":1,"level":5,"status_condition":"frozen"}]}`},
		{"negative items", `{"items":{"potion":-1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(cat, []byte(tt.data)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestStores(t *testing.T) {
	cat := testCatalog(t)
	stores := map[string]func(t *testing.T) Store{
		"file": func(t *testing.T) Store {
			return NewFileStore(filepath.Join(t.TempDir(), "saves"), cat)
		},
		"sqlite": func(t *testing.T) Store {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "monster.db"), cat)
			if err != nil {
				t.Fatalf("OpenSQLite: %v", err)
			}
			return s
		},
	}
	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			defer s.Close()

			slots, err := s.List(ctx)
			if err != nil || len(slots) != 0 {
				t.Fatalf("Expected no saves, got %v (%v)", slots, err)
			}
			if _, err := s.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
			if err := s.Save(ctx, "../escape", trainer.New("x")); !errors.Is(err, ErrInvalidSlot) {
				t.Errorf("Expected ErrInvalidSlot, got %v", err)
			}

			tr := sampleTrainer(t, cat)
			if err := s.Save(ctx, "red", tr); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Save(ctx, "blue", trainer.New("Blue")); err != nil {
				t.Fatalf("Save: %v", err)
			}
			tr.Money = 99
			if err := s.Save(ctx, "red", tr); err != nil {
				t.Fatalf("Save over: %v", err)
			}

			slots, err = s.List(ctx)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if !slices.Equal(slots, []string{"blue", "red"}) {
				t.Errorf("Expected [blue red], got %v", slots)
			}

			got, err := s.Load(ctx, "red")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			assertSameTrainer(t, tr, got)
		})
	}
}

func TestFileStoreCorruptSave(t *testing.T) {
	cat := testCatalog(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(dir, cat)
	if _, err := s.Load(context.Background(), "broken"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Expected a decode error, got %v", err)
	}
}

func TestCancelledContext(t *testing.T) {
	cat := testCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewFileStore(t.TempDir(), cat)
	if err := s.Save(ctx, "red", trainer.New("Red")); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
