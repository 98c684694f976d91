package battle

import (
	"errors"
	"fmt"

	"github.com/tatianab/monster-game/internal/roster"
)

func (b *Battle) playerTurn(a Action, sel int) State {
	switch a {
	case ActionSelect:
		b.pick(StatePlayerTurn, sel, len(Menu))
	case ActionConfirm:
		switch b.cursors[StatePlayerTurn] {
		case MenuFight:
			if b.cursors[StateMoveSelect] >= len(b.roster.Active().Moves()) {
				b.cursors[StateMoveSelect] = 0
			}
			b.message = "Choose a move"
			return StateMoveSelect
		case MenuMonster:
			b.message = "Choose a monster"
			b.cursors[StateMonsterSelect] = b.roster.ActiveIndex()
			return StateMonsterSelect
		case MenuItem:
			b.message = "Choose an item"
			return StateItemSelect
		case MenuRun:
			return b.run()
		}
	}
	return StatePlayerTurn
}

func (b *Battle) run() State {
	if b.trainer {
		b.message = "There's no running from a trainer battle!"
		return StatePlayerTurn
	}
	if b.rng.Float64() < EscapeChance {
		b.message = "Got away safely!"
		b.result = ResultRun
		return StateEnd
	}
	b.message = "Can't escape!"
	return StateEnemyTurn
}

func (b *Battle) moveSelect(a Action, sel int) State {
	player := b.roster.Active()
	switch a {
	case ActionSelect:
		b.pick(StateMoveSelect, sel, len(player.Moves()))
	case ActionConfirm:
		i := b.cursors[StateMoveSelect]
		if i < 0 || i >= len(player.Moves()) {
			b.message = "Choose a move"
			return StateMoveSelect
		}
		b.message = player.UseMove(i, b.enemy, b.rng)
		if b.enemy.Fainted() {
			return b.enemyFainted()
		}
		return StateEnemyTurn
	case ActionCancel:
		b.message = Prompt
		return StatePlayerTurn
	}
	return StateMoveSelect
}

func (b *Battle) enemyTurn() State {
	if b.enemy.Fainted() {
		b.message = Prompt
		return StatePlayerTurn
	}
	moves := b.enemy.Moves()
	if len(moves) == 0 {
		b.message = fmt.Sprintf("%s has no moves to use!", b.enemy.Name())
		return StatePlayerTurn
	}
	player := b.roster.Active()
	b.message = b.enemy.UseMove(b.rng.IntN(len(moves)), player, b.rng)
	if player.Fainted() {
		return b.playerFainted()
	}
	return StatePlayerTurn
}

func (b *Battle) enemyFainted() State {
	player := b.roster.Active()
	reward := b.ExpReward()
	b.message += fmt.Sprintf(" %s fainted! %s gained %d EXP.", b.enemy.Name(), player.Name(), reward)

	leveled, _ := player.GainExperience(reward)
	if leveled {
		b.message += fmt.Sprintf(" %s grew to level %d!", player.Name(), player.Level())
		if player.CanEvolve() {
			b.message += fmt.Sprintf(" What? %s is evolving!", player.Name())
			return StateEvolution
		}
	}
	b.result = ResultWin
	return StateEnd
}

func (b *Battle) playerFainted() State {
	player := b.roster.Active()
	b.message += fmt.Sprintf(" %s fainted!", player.Name())

	next := b.roster.FirstHealthy(b.roster.ActiveIndex())
	if next < 0 {
		b.message += " All your monsters have fainted!"
		b.result = ResultLose
		return StateEnd
	}
	b.forced = true
	b.cursors[StateMonsterSelect] = next
	b.message += " Choose your next monster."
	return StateMonsterSelect
}

func (b *Battle) monsterSelect(a Action, sel int) State {
	switch a {
	case ActionSelect:
		b.pick(StateMonsterSelect, sel, b.roster.Len())
	case ActionConfirm:
		i := b.cursors[StateMonsterSelect]
		c := b.roster.At(i)
		switch {
		case c == nil:
			b.message = "Choose a monster"
		case c.Fainted():
			b.message = fmt.Sprintf("%s has no energy left to battle!", c.Name())
		case i == b.roster.ActiveIndex():
			b.message = fmt.Sprintf("%s is already in battle!", c.Name())
		default:
			if err := b.roster.Switch(i); err != nil {
				b.message = err.Error()
				return StateMonsterSelect
			}
			b.message = fmt.Sprintf("Go! %s!", c.Name())
			if b.forced {
				b.forced = false
				return StatePlayerTurn
			}
			return StateEnemyTurn
		}
	case ActionCancel:
		if b.forced {
			b.message = "You must choose a monster!"
			return StateMonsterSelect
		}
		b.message = Prompt
		return StatePlayerTurn
	}
	return StateMonsterSelect
}

func (b *Battle) itemSelect(a Action, sel int) State {
	switch a {
	case ActionSelect:
		b.pick(StateItemSelect, sel, len(ItemChoices))
	case ActionConfirm:
		item := ItemChoices[b.cursors[StateItemSelect]]
		if item == roster.MonsterBall {
			b.logger.Printf("battle: %s -> %s", StateItemSelect, StateCatch)
			return b.resolveCatch()
		}
		msg, err := b.roster.UseItem(item, b.roster.Active())
		if err != nil {
			b.message = itemError(item, err)
			return StateItemSelect
		}
		b.message = msg
		return StateEnemyTurn
	case ActionCancel:
		b.message = Prompt
		return StatePlayerTurn
	}
	return StateItemSelect
}

func (b *Battle) resolveCatch() State {
	if !b.Wild() {
		b.message = "Can't catch this monster!"
		return StatePlayerTurn
	}
	if b.roster.Full() {
		b.message = "Your team is full!"
		return StateItemSelect
	}
	if err := b.roster.Consume(roster.MonsterBall); err != nil {
		b.message = itemError(roster.MonsterBall, err)
		return StateItemSelect
	}

	if b.rng.Float64() < b.enemy.CatchRate(StandardBall) {
		if err := b.roster.Add(b.enemy); err != nil {
			b.message = err.Error()
			return StateItemSelect
		}
		b.message = fmt.Sprintf("Caught %s!", b.enemy.Name())
		b.result = ResultCatch
		return StateEnd
	}
	b.message = fmt.Sprintf("%s broke free!", b.enemy.Name())
	return StateEnemyTurn
}

func (b *Battle) evolution(a Action) State {
	player := b.roster.Active()
	switch a {
	case ActionAdvance, ActionConfirm:
		evolved, err := player.Evolve()
		if err != nil {
			b.message = err.Error()
			break
		}
		if err := b.roster.Replace(b.roster.ActiveIndex(), evolved); err != nil {
			b.message = err.Error()
			break
		}
		b.message = fmt.Sprintf("Congratulations! %s evolved into %s!", player.Name(), evolved.Name())
	case ActionCancel:
		b.message = fmt.Sprintf("%s stopped evolving.", player.Name())
	default:
		return StateEvolution
	}
	b.result = ResultWin
	return StateEnd
}

func itemError(item roster.Item, err error) string {
	switch {
	case errors.Is(err, roster.ErrOutOfStock):
		return fmt.Sprintf("You don't have any %s!", ItemName(item))
	case errors.Is(err, roster.ErrFainted):
		return "It won't have any effect."
	default:
		return fmt.Sprintf("Can't use %s now!", ItemName(item))
	}
}

// ItemName is the display name of an item id.
func ItemName(item roster.Item) string {
	switch item {
	case roster.MonsterBall:
		return "Monster Ball"
	case roster.Potion:
		return "Potion"
	case roster.FullRestore:
		return "Full Restore"
	}
	return string(item)
}
