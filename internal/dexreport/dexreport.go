// Package dexreport renders the completion log as a printable PDF.
package dexreport

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/tatianab/monster-game/internal/catalog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	pageW     = 595
	margin    = 40
	rowH      = 18
	titleSize = 18
	fontSize  = 10
)

var columns = []struct {
	title string
	width float64
}{
	{"#", 30},
	{"Name", 130},
	{"Types", 110},
	{"HP", 45},
	{"Atk", 45},
	{"Def", 45},
	{"Spd", 45},
	{"Evolves", 65},
}

// Generate returns PDF bytes listing every catalog species. Species not in
// discovered are shown as unknown.
func Generate(cat *catalog.Catalog, discovered []int, trainerName string) ([]byte, error) {
	if cat == nil {
		return nil, fmt.Errorf("dex report: no catalog")
	}
	ids := cat.SpeciesIDs()
	seen := 0
	for _, id := range ids {
		if slices.Contains(discovered, id) {
			seen++
		}
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	title := "Monster Dex"
	if name := strings.TrimSpace(trainerName); name != "" {
		title = cases.Title(language.English).String(name) + "'s Monster Dex"
	}
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(pageW-2*margin, 24, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.CellFormat(pageW-2*margin, 16, fmt.Sprintf("Discovered %d of %d", seen, len(ids)), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetFillColor(220, 220, 220)
	for _, c := range columns {
		pdf.CellFormat(c.width, rowH, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", fontSize)
	for _, id := range ids {
		for i, cell := range row(cat, id, slices.Contains(discovered, id)) {
			align := "L"
			if i != 1 && i != 2 {
				align = "C"
			}
			pdf.CellFormat(columns[i].width, rowH, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("dex report: %w", err)
	}
	return buf.Bytes(), nil
}

func row(cat *catalog.Catalog, id int, known bool) []string {
	num := fmt.Sprintf("%03d", id)
	sp, err := cat.Species(id)
	if err != nil || !known {
		return []string{num, "???", "", "", "", "", "", ""}
	}
	types := make([]string, len(sp.Types))
	for i, t := range sp.Types {
		types[i] = string(t)
	}
	evolves := "-"
	if level, _, ok := sp.EvolvesAt(); ok {
		evolves = fmt.Sprintf("Lv %d", level)
	}
	return []string{
		num,
		sp.Name,
		strings.Join(types, "/"),
		fmt.Sprint(sp.Base.HP),
		fmt.Sprint(sp.Base.Attack),
		fmt.Sprint(sp.Base.Defense),
		fmt.Sprint(sp.Base.Speed),
		evolves,
	}
}
