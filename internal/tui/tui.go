package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/monster-game/internal/battle"
	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/dexreport"
	"github.com/tatianab/monster-game/internal/encounter"
	"github.com/tatianab/monster-game/internal/narrator"
	"github.com/tatianab/monster-game/internal/random"
	"github.com/tatianab/monster-game/internal/roster"
	"github.com/tatianab/monster-game/internal/save"
	"github.com/tatianab/monster-game/internal/trainer"
)

type sessionState int

const (
	stateTitle sessionState = iota
	stateName
	stateStarter
	stateField
	stateBattle
	stateTeam
	stateDex
	stateError
)

// Options wires the driver to the rest of the game.
type Options struct {
	Catalog    *catalog.Catalog
	Store      save.Store
	Narrator   narrator.Describer
	Random     random.Source
	Logger     *log.Logger
	Slot       string
	PlayerName string
	// ReportDir is where exported dex PDFs are written.
	ReportDir string
}

type model struct {
	opts    Options
	state   sessionState
	trainer *trainer.Trainer
	battle  *battle.Battle

	cursor    int
	status    string
	hasSave   bool
	battleLog []string
	entries   map[int]string

	nameInput textinput.Model
	viewport  viewport.Model
	help      help.Model
	keys      keyMap

	err    error
	width  int
	height int
}

func NewModel(opts Options) model {
	if opts.Random == nil {
		opts.Random = random.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Narrator == nil {
		opts.Narrator = narrator.Static{Catalog: opts.Catalog}
	}
	if opts.Slot == "" {
		opts.Slot = "current"
	}

	ti := textinput.New()
	ti.Placeholder = opts.PlayerName
	ti.CharLimit = 24
	ti.Width = 30

	return model{
		opts:      opts,
		state:     stateTitle,
		entries:   make(map[int]string),
		nameInput: ti,
		viewport:  viewport.New(60, 10),
		help:      help.New(),
		keys:      defaultKeys(),
	}
}

type saveListMsg struct {
	slots []string
	err   error
}

type entryMsg struct {
	id    int
	entry string
}

func (m model) Init() tea.Cmd {
	return m.listSaves()
}

func (m model) listSaves() tea.Cmd {
	store := m.opts.Store
	return func() tea.Msg {
		if store == nil {
			return saveListMsg{}
		}
		slots, err := store.List(context.Background())
		return saveListMsg{slots: slots, err: err}
	}
}

func (m model) describe(sp catalog.Species) tea.Cmd {
	d := m.opts.Narrator
	return func() tea.Msg {
		e, err := d.Describe(context.Background(), sp)
		if err != nil {
			return entryMsg{id: sp.ID, entry: "No entry available."}
		}
		return entryMsg{id: sp.ID, entry: e.String()}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(20, msg.Width*3/5)
		m.viewport.Height = max(4, msg.Height-14)
		m.help.Width = msg.Width

	case saveListMsg:
		if msg.err != nil {
			log.Printf("Warning: failed to list saves: %v", msg.err)
		}
		m.hasSave = slices.Contains(msg.slots, m.opts.Slot)

	case entryMsg:
		m.entries[msg.id] = msg.entry
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateTitle:
		return m.updateTitle(msg)
	case stateName:
		return m.updateName(msg)
	case stateStarter:
		return m.updateStarter(msg)
	case stateField:
		return m.updateField(msg)
	case stateBattle:
		return m.updateBattle(msg)
	case stateTeam:
		return m.updateTeam(msg)
	case stateDex:
		return m.updateDex(msg)
	case stateError:
		if key.Matches(msg, m.keys.Back, m.keys.Quit, m.keys.Confirm) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// move shifts the list cursor by delta, wrapping around n entries.
func (m *model) move(msg tea.KeyMsg, n int) bool {
	if n <= 0 {
		return false
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + n) % n
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % n
	default:
		return false
	}
	return true
}

func (m model) titleOptions() []string {
	opts := []string{"New Game"}
	if m.hasSave {
		opts = append(opts, "Continue")
	}
	return append(opts, "Quit")
}

func (m model) updateTitle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.titleOptions()
	if m.move(msg, len(options)) {
		return m, nil
	}
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if !key.Matches(msg, m.keys.Confirm) {
		return m, nil
	}
	switch options[m.cursor] {
	case "New Game":
		m.state = stateName
		m.nameInput.Reset()
		m.nameInput.Focus()
		return m, textinput.Blink
	case "Continue":
		return m.load()
	default:
		return m, tea.Quit
	}
}

func (m model) load() (tea.Model, tea.Cmd) {
	t, err := m.opts.Store.Load(context.Background(), m.opts.Slot)
	if err != nil {
		// The current game, if any, stays as it was.
		m.status = fmt.Sprintf("Could not load: %v", err)
		return m, nil
	}
	m.trainer = t
	m.enterField(fmt.Sprintf("Welcome back, %s!", t.Name))
	return m, nil
}

func (m model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateTitle
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			name = m.opts.PlayerName
		}
		if name == "" {
			name = "Trainer"
		}
		m.nameInput.Blur()
		m.trainer = trainer.New(name)
		m.state = stateStarter
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m model) updateStarter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.move(msg, len(trainer.Starters)) || !key.Matches(msg, m.keys.Confirm) {
		return m, nil
	}
	if err := m.trainer.TakeStarter(m.opts.Catalog, trainer.Starters[m.cursor]); err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}
	m.enterField(fmt.Sprintf("%s chose %s!", m.trainer.Name, m.trainer.Roster.Active().Name()))
	return m, nil
}

func (m *model) enterField(status string) {
	m.state = stateField
	m.cursor = 0
	m.status = status
}

// fieldOptions are the areas followed by the menus.
func fieldOptions() []string {
	var opts []string
	for _, a := range encounter.Areas() {
		opts = append(opts, areaName(a))
	}
	return append(opts, "Team", "Dex")
}

func (m model) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := fieldOptions()
	if m.move(msg, len(options)) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		m.saveGame()
		return m, nil
	case key.Matches(msg, m.keys.Export):
		m.exportDex()
		return m, nil
	case !key.Matches(msg, m.keys.Confirm):
		return m, nil
	}

	areas := encounter.Areas()
	switch {
	case m.cursor < len(areas):
		m.startEncounter(areas[m.cursor])
		return m, nil
	case options[m.cursor] == "Team":
		m.state = stateTeam
		m.cursor = m.trainer.Roster.ActiveIndex()
		m.status = ""
		return m, nil
	default:
		m.state = stateDex
		m.cursor = 0
		m.status = ""
		return m, m.describeAt(0)
	}
}

func (m *model) saveGame() {
	if m.opts.Store == nil {
		m.status = "Saving is not configured."
		return
	}
	if err := m.opts.Store.Save(context.Background(), m.opts.Slot, m.trainer); err != nil {
		log.Printf("Warning: failed to save: %v", err)
		m.status = fmt.Sprintf("Could not save: %v", err)
		return
	}
	m.hasSave = true
	m.status = "Game saved."
}

func (m *model) exportDex() {
	pdf, err := dexreport.Generate(m.opts.Catalog, m.trainer.Roster.Discovered(), m.trainer.Name)
	if err == nil {
		err = os.MkdirAll(m.opts.ReportDir, 0755)
	}
	path := filepath.Join(m.opts.ReportDir, "dex-"+fileName(m.trainer.Name)+".pdf")
	if err == nil {
		err = os.WriteFile(path, pdf, 0644)
	}
	if err != nil {
		log.Printf("Warning: failed to export dex: %v", err)
		m.status = fmt.Sprintf("Could not export the dex: %v", err)
		return
	}
	m.status = "Dex exported to " + path
}

func fileName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return '-'
	}, name)
}

func (m *model) startEncounter(area encounter.Area) {
	enemy, err := encounter.Wild(m.opts.Catalog, area, m.opts.Random)
	if err != nil {
		m.err = err
		m.state = stateError
		return
	}
	b, err := battle.New(m.trainer.Roster, enemy,
		battle.WithRandom(m.opts.Random),
		battle.WithLogger(m.opts.Logger))
	if errors.Is(err, battle.ErrNoActive) {
		m.status = "Your team needs rest before exploring."
		return
	}
	if err != nil {
		m.err = err
		m.state = stateError
		return
	}
	m.battle = b
	m.state = stateBattle
	m.status = ""
	m.battleLog = []string{b.Message()}
	m.refreshLog()
}

func (m *model) refreshLog() {
	m.viewport.SetContent(strings.Join(m.battleLog, "\n"))
	m.viewport.GotoBottom()
}

func (m model) updateBattle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.battle
	if b.Done() {
		if key.Matches(msg, m.keys.Confirm, m.keys.Back) {
			m.finishBattle()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		b.Advance(battle.ActionSelect, b.Cursor()-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		b.Advance(battle.ActionSelect, b.Cursor()+1)
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		switch b.State() {
		case battle.StateStart, battle.StateEnemyTurn:
			b.Advance(battle.ActionAdvance, 0)
		default:
			b.Advance(battle.ActionConfirm, 0)
		}
	case key.Matches(msg, m.keys.Back):
		b.Advance(battle.ActionCancel, 0)
	default:
		return m, nil
	}

	if last := m.battleLog[len(m.battleLog)-1]; b.Message() != last {
		m.battleLog = append(m.battleLog, b.Message())
		m.refreshLog()
	}
	return m, nil
}

func (m *model) finishBattle() {
	result := m.battle.Result()
	status := ""
	switch result {
	case battle.ResultLose:
		m.trainer.Roster.HealAll()
		status = "You rushed back and your team was healed."
	case battle.ResultCatch:
		status = fmt.Sprintf("%s joined your team!", m.battle.Enemy().Name())
	case battle.ResultRun:
		status = "You got away."
	case battle.ResultWin:
		status = "You won the battle!"
	}
	log.Printf("battle finished: %s", result)
	m.battle = nil
	m.enterField(status)
}

func (m model) updateTeam(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.trainer.Roster
	if m.move(msg, r.Len()) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.enterField("")
	case key.Matches(msg, m.keys.Confirm):
		if err := r.Switch(m.cursor); err != nil {
			m.status = fmt.Sprintf("Can't lead with that monster: %v", err)
			return m, nil
		}
		m.status = fmt.Sprintf("%s now leads the team.", r.Active().Name())
	case key.Matches(msg, m.keys.Potion):
		m.useItem(roster.Potion)
	case key.Matches(msg, m.keys.Restore):
		m.useItem(roster.FullRestore)
	}
	return m, nil
}

func (m *model) useItem(it roster.Item) {
	msg, err := m.trainer.Roster.UseItem(it, m.trainer.Roster.At(m.cursor))
	if err != nil {
		m.status = fmt.Sprintf("Can't use %s: %v", battle.ItemName(it), err)
		return
	}
	m.status = msg
}

func (m model) describeAt(i int) tea.Cmd {
	ids := m.opts.Catalog.SpeciesIDs()
	if i < 0 || i >= len(ids) {
		return nil
	}
	id := ids[i]
	if _, ok := m.entries[id]; ok || !slices.Contains(m.trainer.Roster.Discovered(), id) {
		return nil
	}
	sp, err := m.opts.Catalog.Species(id)
	if err != nil {
		return nil
	}
	return m.describe(sp)
}

func (m model) updateDex(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.move(msg, len(m.opts.Catalog.SpeciesIDs())) {
		return m, m.describeAt(m.cursor)
	}
	if key.Matches(msg, m.keys.Back) {
		m.enterField("")
	}
	return m, nil
}

// Run starts the terminal driver and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
