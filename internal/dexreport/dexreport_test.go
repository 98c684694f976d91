package dexreport

import (
	"bytes"
	"slices"
	"testing"

	"github.com/tatianab/monster-game/internal/catalog"
)

func TestGenerate(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	pdf, err := Generate(cat, []int{1, 7, 13}, "red")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("Expected PDF header, got %q", pdf[:min(8, len(pdf))])
	}

	empty, err := Generate(cat, nil, "")
	if err != nil {
		t.Fatalf("Generate with nothing discovered: %v", err)
	}
	if len(empty) == 0 {
		t.Error("Expected a PDF even with nothing discovered")
	}

	if _, err := Generate(nil, nil, "red"); err == nil {
		t.Error("Expected an error without a catalog")
	}
}

func TestRow(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	tests := []struct {
		id    int
		known bool
		want  []string
	}{
		{1, true, []string{"001", "Embery", "Fire", "20", "12", "8", "10", "Lv 16"}},
		{12, true, []string{"012", "MountainGolem", "Rock/Ground", "80", "35", "50", "15", "-"}},
		{4, false, []string{"004", "???", "", "", "", "", "", ""}},
	}
	for _, tt := range tests {
		if got := row(cat, tt.id, tt.known); !slices.Equal(got, tt.want) {
			t.Errorf("row(%d): expected %v, got %v", tt.id, tt.want, got)
		}
	}
}
