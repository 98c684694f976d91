package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/monster-game/internal/battle"
	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/creature"
	"github.com/tatianab/monster-game/internal/encounter"
	"github.com/tatianab/monster-game/internal/roster"
	"github.com/tatianab/monster-game/internal/trainer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	hpHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F"))
	hpMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F"))
	hpLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
)

var titleCase = cases.Title(language.English)

func areaName(a encounter.Area) string {
	return titleCase.String(string(a))
}

func hpBar(hp, maxHP, width int) string {
	if maxHP <= 0 {
		return ""
	}
	filled := hp * width / maxHP
	if hp > 0 && filled == 0 {
		filled = 1
	}
	style := hpHigh
	switch {
	case hp*4 <= maxHP:
		style = hpLow
	case hp*2 <= maxHP:
		style = hpMid
	}
	return style.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}

var statusTags = map[catalog.Status]string{
	catalog.StatusSleep:     "SLP",
	catalog.StatusParalysis: "PAR",
	catalog.StatusPoison:    "PSN",
	catalog.StatusBurn:      "BRN",
}

func statusTag(c *creature.Creature) string {
	tag, ok := statusTags[c.Status()]
	if !ok {
		return ""
	}
	return " [" + tag + "]"
}

func creatureCard(c *creature.Creature) string {
	return fmt.Sprintf("%s Lv%d%s\n%s %d/%d",
		c.Name(), c.Level(), statusTag(c),
		hpBar(c.HP(), c.MaxHP(), 20), c.HP(), c.MaxHP())
}

func menu(options []string, cursor int) string {
	var b strings.Builder
	for i, opt := range options {
		if i == cursor {
			b.WriteString(selectedStyle.Render("> " + opt))
		} else {
			b.WriteString("  " + opt)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateTitle:
		s = titleStyle.Render("MONSTER GAME") + "\n\n" + menu(m.titleOptions(), m.cursor)

	case stateName:
		s = fmt.Sprintf("What is your name?\n\n%s\n\n%s",
			m.nameInput.View(),
			statusStyle.Render("Press Enter to continue, Esc to go back."))

	case stateStarter:
		var names []string
		for _, id := range trainer.Starters {
			sp, err := m.opts.Catalog.Species(id)
			if err != nil {
				continue
			}
			names = append(names, fmt.Sprintf("%s (%s)", sp.Name, sp.Types[0]))
		}
		s = "Choose your first monster:\n\n" + menu(names, m.cursor)

	case stateField:
		s = m.fieldView()

	case stateBattle:
		s = m.battleView()

	case stateTeam:
		s = m.teamView()

	case stateDex:
		s = m.dexView()

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	if m.status != "" {
		s += "\n" + statusStyle.Render(m.status)
	}
	if m.state != stateName && m.state != stateError {
		s += "\n\n" + m.help.View(m.screenHelp())
	}
	return "\n" + s + "\n"
}

func (m model) fieldView() string {
	t := m.trainer
	header := titleStyle.Render(strings.ToUpper(t.Name)) +
		fmt.Sprintf("\nMoney: %d  Badges: %d  Dex: %d/%d\n",
			t.Money, len(t.Badges), len(t.Roster.Discovered()), len(m.opts.Catalog.SpeciesIDs()))

	var lead string
	if a := t.Roster.Active(); a != nil {
		lead = panelStyle.Render(creatureCard(a))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lead,
		"\nWhere do you want to explore?\n",
		menu(fieldOptions(), m.cursor),
	)
}

func (m model) battleOptions() []string {
	b := m.battle
	switch b.State() {
	case battle.StatePlayerTurn:
		return battle.Menu
	case battle.StateMoveSelect:
		var opts []string
		for _, slot := range b.Player().Moves() {
			opts = append(opts, fmt.Sprintf("%-14s %s  %d/%d", slot.Move.Name, slot.Move.Type, slot.PP, slot.Move.PP))
		}
		return opts
	case battle.StateMonsterSelect:
		var opts []string
		for _, c := range b.Roster().Creatures() {
			opts = append(opts, fmt.Sprintf("%s Lv%d  %d/%d%s", c.Name(), c.Level(), c.HP(), c.MaxHP(), statusTag(c)))
		}
		return opts
	case battle.StateItemSelect:
		var opts []string
		for _, it := range battle.ItemChoices {
			opts = append(opts, fmt.Sprintf("%s x%d", battle.ItemName(it), b.Roster().Count(it)))
		}
		return opts
	case battle.StateEvolution:
		return []string{"Enter: evolve", "Esc: stop evolution"}
	}
	return nil
}

func (m model) battleView() string {
	b := m.battle
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(creatureCard(b.Player())),
		"  ",
		panelStyle.Render(creatureCard(b.Enemy())),
	)

	var prompt string
	if b.Done() {
		prompt = fmt.Sprintf("Battle over: %s. Press Enter to continue.", titleCase.String(b.Result().String()))
	} else if opts := m.battleOptions(); len(opts) > 0 {
		prompt = menu(opts, b.Cursor())
	} else {
		prompt = dimStyle.Render("Press Enter to continue.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		panelStyle.Render(m.viewport.View()),
		prompt,
	)
}

func (m model) teamView() string {
	r := m.trainer.Roster
	var b strings.Builder
	b.WriteString(titleStyle.Render("TEAM") + "\n\n")
	for i, c := range r.Creatures() {
		line := fmt.Sprintf("%s Lv%d%s  %s %d/%d  EXP %d/%d",
			c.Name(), c.Level(), statusTag(c),
			hpBar(c.HP(), c.MaxHP(), 12), c.HP(), c.MaxHP(), c.Exp(), c.ExpToNext())
		if i == r.ActiveIndex() {
			line += " ★"
		}
		if i == m.cursor {
			line = selectedStyle.Render(">") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(&b, "\nPotions: %d  Full Restores: %d  Monster Balls: %d",
		r.Count(roster.Potion), r.Count(roster.FullRestore), r.Count(roster.MonsterBall))
	return b.String()
}

func (m model) dexView() string {
	ids := m.opts.Catalog.SpeciesIDs()
	discovered := m.trainer.Roster.Discovered()

	var list strings.Builder
	for i, id := range ids {
		name := "???"
		if slices.Contains(discovered, id) {
			if sp, err := m.opts.Catalog.Species(id); err == nil {
				name = sp.Name
			}
		}
		line := fmt.Sprintf("%03d %s", id, name)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		list.WriteString(line + "\n")
	}

	detail := dimStyle.Render("Not discovered yet.")
	if m.cursor < len(ids) && slices.Contains(discovered, ids[m.cursor]) {
		detail = "Loading entry..."
		if e, ok := m.entries[ids[m.cursor]]; ok {
			detail = e
		}
	}
	width := max(30, m.width-30)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		list.String(),
		"  ",
		panelStyle.Width(width).Render(detail),
	)
}
