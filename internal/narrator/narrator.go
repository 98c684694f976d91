// Package narrator writes encyclopedia entries for species. The Gemini
// engine generates them; Static composes one from catalog data offline.
package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"sync"
	"text/template"

	"github.com/tatianab/monster-game/internal/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/dex_entry.txt
var dexEntryPrompt string

var dexEntryTmpl = template.Must(template.New("dex_entry").Funcs(template.FuncMap{
	"join": func(ts []catalog.Type, sep string) string {
		parts := make([]string, len(ts))
		for i, t := range ts {
			parts[i] = string(t)
		}
		return strings.Join(parts, sep)
	},
}).Parse(dexEntryPrompt))

// Entry is one encyclopedia page.
type Entry struct {
	Text    string `yaml:"entry"`
	Habitat string `yaml:"habitat"`
}

func (e Entry) String() string {
	if e.Habitat == "" {
		return e.Text
	}
	return fmt.Sprintf("%s Habitat: %s.", e.Text, strings.TrimSuffix(e.Habitat, "."))
}

// Describer writes an entry for a species.
type Describer interface {
	Describe(ctx context.Context, sp catalog.Species) (Entry, error)
}

type promptData struct {
	catalog.Species
	EvolvesInto string
}

func renderPrompt(cat *catalog.Catalog, sp catalog.Species) (string, error) {
	data := promptData{Species: sp}
	if sp.Evolution != nil {
		data.EvolvesInto = fmt.Sprintf("species #%d", sp.Evolution.Into)
		if next, err := cat.Species(sp.Evolution.Into); err == nil {
			data.EvolvesInto = next.Name
		}
	}
	var buf bytes.Buffer
	if err := dexEntryTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt for %s: %w", sp.Name, err)
	}
	return buf.String(), nil
}

// parseEntry reads the model's YAML reply, tolerating a code fence.
func parseEntry(text string) (Entry, error) {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```yaml")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	var e Entry
	if err := yaml.Unmarshal([]byte(clean), &e); err != nil {
		return Entry{}, fmt.Errorf("parse entry: %w", err)
	}
	e.Text = strings.TrimSpace(e.Text)
	e.Habitat = strings.TrimSpace(e.Habitat)
	if e.Text == "" {
		return Entry{}, fmt.Errorf("parse entry: empty entry in %q", clean)
	}
	return e, nil
}

// Static describes species from their catalog data alone.
type Static struct {
	Catalog *catalog.Catalog
}

func (s Static) Describe(_ context.Context, sp catalog.Species) (Entry, error) {
	types := make([]string, len(sp.Types))
	for i, t := range sp.Types {
		types[i] = string(t)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %s-type monster", sp.Name, strings.Join(types, "/"))
	switch {
	case sp.Base.Speed >= sp.Base.Attack && sp.Base.Speed >= sp.Base.Defense:
		b.WriteString(" known for its speed.")
	case sp.Base.Defense >= sp.Base.Attack:
		b.WriteString(" known for its sturdy build.")
	default:
		b.WriteString(" known for its fierce attacks.")
	}
	if level, into, ok := sp.EvolvesAt(); ok {
		name := fmt.Sprintf("#%d", into)
		if s.Catalog != nil {
			if next, err := s.Catalog.Species(into); err == nil {
				name = next.Name
			}
		}
		fmt.Fprintf(&b, " It evolves into %s at level %d.", name, level)
	}
	return Entry{Text: b.String()}, nil
}

// Cached remembers entries so each species is described once. If the
// wrapped describer fails, Cached falls back to Static.
type Cached struct {
	next     Describer
	fallback Static

	mu      sync.Mutex
	entries map[int]Entry
}

func NewCached(next Describer, cat *catalog.Catalog) *Cached {
	return &Cached{
		next:     next,
		fallback: Static{Catalog: cat},
		entries:  make(map[int]Entry),
	}
}

func (c *Cached) Describe(ctx context.Context, sp catalog.Species) (Entry, error) {
	c.mu.Lock()
	e, ok := c.entries[sp.ID]
	c.mu.Unlock()
	if ok {
		return e, nil
	}

	e, err := c.next.Describe(ctx, sp)
	if err != nil {
		log.Printf("Warning: failed to describe %s: %v", sp.Name, err)
		return c.fallback.Describe(ctx, sp)
	}
	c.mu.Lock()
	c.entries[sp.ID] = e
	c.mu.Unlock()
	return e, nil
}
