// Package battle runs a single encounter between the player's roster and
// one opposing creature as an explicit state machine. The engine moves one
// step per Advance call and never blocks.
package battle

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/tatianab/monster-game/internal/creature"
	"github.com/tatianab/monster-game/internal/random"
	"github.com/tatianab/monster-game/internal/roster"
)

var (
	ErrNoActive = errors.New("no creature able to battle")
	ErrNoEnemy  = errors.New("no opposing creature")
)

// State is a node of the battle state machine.
type State int

const (
	StateStart State = iota
	StatePlayerTurn
	StateMoveSelect
	StateMonsterSelect
	StateItemSelect
	StateEnemyTurn
	// StateCatch is resolved within the step that throws the ball, so
	// Advance never returns it.
	StateCatch
	StateEvolution
	StateEnd
	numStates
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlayerTurn:
		return "player_turn"
	case StateMoveSelect:
		return "move_select"
	case StateMonsterSelect:
		return "monster_select"
	case StateItemSelect:
		return "item_select"
	case StateEnemyTurn:
		return "enemy_turn"
	case StateCatch:
		return "catch"
	case StateEvolution:
		return "evolution"
	case StateEnd:
		return "end"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result is how a finished battle ended.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLose
	ResultRun
	ResultCatch
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	case ResultRun:
		return "run"
	case ResultCatch:
		return "catch"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Action is an input from the driver.
type Action int

const (
	// ActionAdvance moves past Start, EnemyTurn and Evolution.
	ActionAdvance Action = iota
	// ActionSelect moves the current menu's cursor to the given index,
	// wrapping around the menu size.
	ActionSelect
	// ActionConfirm acts on the cursor.
	ActionConfirm
	// ActionCancel backs out of a sub-menu.
	ActionCancel
)

// Top-level menu entries, in cursor order.
const (
	MenuFight = iota
	MenuMonster
	MenuItem
	MenuRun
)

// Menu labels the top-level menu entries.
var Menu = []string{"Fight", "Monster", "Item", "Run"}

// ItemChoices is the in-battle item menu, in cursor order.
var ItemChoices = []roster.Item{roster.MonsterBall, roster.Potion, roster.FullRestore}

const (
	Prompt          = "What will you do?"
	EscapeChance    = 0.7
	ExpPerLevel     = 3
	StandardBall    = 1.0
	TrainerExpBonus = 1.0
)

// Battle is one encounter. It is single-threaded: the roster and both
// creatures belong to it until it ends.
type Battle struct {
	roster   *roster.Roster
	enemy    *creature.Creature
	trainer  bool
	expBonus float64
	rng      random.Source
	logger   *log.Logger

	state   State
	result  Result
	message string
	cursors [numStates]int
	// forced is set while the player must replace a fainted creature.
	forced bool
}

// Option configures a Battle.
type Option func(*Battle)

// WithRandom sets the source every probabilistic rule draws from.
func WithRandom(src random.Source) Option {
	return func(b *Battle) { b.rng = src }
}

// WithLogger logs state transitions to l.
func WithLogger(l *log.Logger) Option {
	return func(b *Battle) { b.logger = l }
}

// AgainstTrainer marks the enemy as a trainer's creature: it can't be
// caught, the player can't run, and experience gets the trainer bonus.
func AgainstTrainer() Option {
	return func(b *Battle) {
		b.trainer = true
		b.expBonus = TrainerExpBonus
	}
}

// New starts a battle between the roster's active creature and enemy. If
// the active creature has fainted the first conscious one takes its place.
func New(r *roster.Roster, enemy *creature.Creature, opts ...Option) (*Battle, error) {
	if enemy == nil {
		return nil, ErrNoEnemy
	}
	if a := r.Active(); a == nil || a.Fainted() {
		i := r.FirstHealthy(-1)
		if i < 0 {
			return nil, ErrNoActive
		}
		if err := r.Switch(i); err != nil {
			return nil, fmt.Errorf("new battle: %w", err)
		}
	}

	b := &Battle{
		roster:   r,
		enemy:    enemy,
		expBonus: 1.0,
		rng:      random.Default(),
		logger:   log.New(io.Discard, "", 0),
		state:    StateStart,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.Wild() {
		b.message = fmt.Sprintf("A wild %s appeared!", enemy.Name())
	} else {
		b.message = fmt.Sprintf("Trainer sent out %s!", enemy.Name())
	}
	b.logger.Printf("battle: %s vs %s", r.Active(), enemy)
	return b, nil
}

func (b *Battle) State() State                { return b.state }
func (b *Battle) Result() Result              { return b.result }
func (b *Battle) Message() string             { return b.message }
func (b *Battle) Enemy() *creature.Creature   { return b.enemy }
func (b *Battle) Player() *creature.Creature  { return b.roster.Active() }
func (b *Battle) Roster() *roster.Roster      { return b.roster }
func (b *Battle) Done() bool                  { return b.state == StateEnd }
func (b *Battle) Forced() bool                { return b.forced }
func (b *Battle) Cursor() int                 { return b.cursors[b.state] }
func (b *Battle) CursorFor(s State) int       { return b.cursors[s] }
func (b *Battle) Wild() bool                  { return !b.trainer && b.enemy.Wild() }

// ExpReward is the experience the player's creature earns for a knockout.
func (b *Battle) ExpReward() int {
	return int(float64(b.enemy.Level()*ExpPerLevel) * b.expBonus)
}

// Advance feeds one action to the state machine and returns the new state.
// sel is only read by ActionSelect.
func (b *Battle) Advance(a Action, sel int) State {
	from := b.state
	b.state = b.step(a, sel)
	if b.state != from {
		b.logger.Printf("battle: %s -> %s: %s", from, b.state, b.message)
	}
	return b.state
}

func (b *Battle) step(a Action, sel int) State {
	switch b.state {
	case StateStart:
		b.message = Prompt
		return StatePlayerTurn
	case StatePlayerTurn:
		return b.playerTurn(a, sel)
	case StateMoveSelect:
		return b.moveSelect(a, sel)
	case StateMonsterSelect:
		return b.monsterSelect(a, sel)
	case StateItemSelect:
		return b.itemSelect(a, sel)
	case StateEnemyTurn:
		return b.enemyTurn()
	case StateEvolution:
		return b.evolution(a)
	case StateEnd:
		return StateEnd
	}
	return b.state
}

// Choose selects sel in the current menu and confirms it in one step.
func (b *Battle) Choose(sel int) State {
	b.Advance(ActionSelect, sel)
	return b.Advance(ActionConfirm, 0)
}

// pick moves the cursor of s to sel wrapped into [0, n).
func (b *Battle) pick(s State, sel, n int) {
	if n <= 0 {
		b.cursors[s] = 0
		return
	}
	b.cursors[s] = ((sel % n) + n) % n
}
