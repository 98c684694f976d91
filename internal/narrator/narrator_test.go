package narrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tatianab/monster-game/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	return cat
}

func TestRenderPrompt(t *testing.T) {
	cat := testCatalog(t)
	sp, _ := cat.Species(1)
	prompt, err := renderPrompt(cat, sp)
	if err != nil {
		t.Fatalf("renderPrompt: %v", err)
	}
	for _, want := range []string{"Creature: Embery (#1)", "Types: Fire", "HP 20, Attack 12", "Evolves into Flameon at level 16."} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected %q in prompt:\n%s", want, prompt)
		}
	}

	final, _ := cat.Species(3)
	prompt, err = renderPrompt(cat, final)
	if err != nil {
		t.Fatalf("renderPrompt: %v", err)
	}
	if !strings.Contains(prompt, "Types: Fire, Dragon") || strings.Contains(prompt, "Evolves into") {
		t.Errorf("Unexpected prompt for a final form:\n%s", prompt)
	}
}

func TestParseEntry(t *testing.T) {
	e, err := parseEntry("```yaml\nentry: A small flame lizard. It is shy.\nhabitat: volcanic caves\n```")
	if err != nil {
		t.Fatalf("parseEntry: %v", err)
	}
	if e.Text != "A small flame lizard. It is shy." || e.Habitat != "volcanic caves" {
		t.Errorf("Unexpected entry %+v", e)
	}
	if e.String() != "A small flame lizard. It is shy. Habitat: volcanic caves." {
		t.Errorf("Unexpected rendering %q", e.String())
	}

	if _, err := parseEntry("habitat: nowhere"); err == nil {
		t.Error("Expected an error for a missing entry")
	}
	if _, err := parseEntry("entry: [unclosed"); err == nil {
		t.Error("Expected an error for invalid YAML")
	}
}

func TestStatic(t *testing.T) {
	cat := testCatalog(t)
	tests := []struct {
		id   int
		want string
	}{
		{1, "Embery is a Fire-type monster known for its fierce attacks. It evolves into Flameon at level 16."},
		{12, "MountainGolem is a Rock/Ground-type monster known for its sturdy build."},
		{14, "Thunderbolt is a Electric-type monster known for its speed."},
	}
	for _, tt := range tests {
		sp, _ := cat.Species(tt.id)
		e, err := Static{Catalog: cat}.Describe(context.Background(), sp)
		if err != nil {
			t.Fatalf("Describe: %v", err)
		}
		if e.String() != tt.want {
			t.Errorf("Species %d: expected %q, got %q", tt.id, tt.want, e.String())
		}
	}
}

type countingDescriber struct {
	calls int
	err   error
}

func (c *countingDescriber) Describe(_ context.Context, sp catalog.Species) (Entry, error) {
	c.calls++
	if c.err != nil {
		return Entry{}, c.err
	}
	return Entry{Text: "Generated " + sp.Name}, nil
}

func TestCached(t *testing.T) {
	cat := testCatalog(t)
	sp, _ := cat.Species(7)
	ctx := context.Background()

	next := &countingDescriber{}
	c := NewCached(next, cat)
	for i := 0; i < 3; i++ {
		e, err := c.Describe(ctx, sp)
		if err != nil || e.Text != "Generated Leafkit" {
			t.Fatalf("Unexpected entry %+v (%v)", e, err)
		}
	}
	if next.calls != 1 {
		t.Errorf("Expected 1 call, got %d", next.calls)
	}

	failing := &countingDescriber{err: errors.New("quota")}
	c = NewCached(failing, cat)
	e, err := c.Describe(ctx, sp)
	if err != nil {
		t.Fatalf("Expected the static fallback, got %v", err)
	}
	if !strings.HasPrefix(e.Text, "Leafkit is a Grass-type monster") {
		t.Errorf("Unexpected fallback %q", e.Text)
	}
	c.Describe(ctx, sp)
	if failing.calls != 2 {
		t.Errorf("Expected failures not to be cached, got %d calls", failing.calls)
	}
}
