package catalog

// Type is an elemental type such as "Fire" or "Water".
type Type string

// Status is a persistent status condition. The zero value means no status.
type Status string

const (
	StatusNone      Status = ""
	StatusSleep     Status = "sleep"
	StatusParalysis Status = "paralysis"
	StatusPoison    Status = "poison"
	StatusBurn      Status = "burn"
)

// Valid reports whether s is one of the known conditions (or none).
func (s Status) Valid() bool {
	switch s {
	case StatusNone, StatusSleep, StatusParalysis, StatusPoison, StatusBurn:
		return true
	}
	return false
}

// BaseStats are the per-species numbers the stat formulas scale by level.
type BaseStats struct {
	HP      int `yaml:"hp"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
	Speed   int `yaml:"speed"`
}

// Evolution names the species a creature turns into and the level it needs.
type Evolution struct {
	Level int `yaml:"level"`
	Into  int `yaml:"into"`
}

// Species is the immutable definition of a kind of creature.
type Species struct {
	ID        int        `yaml:"id"`
	Name      string     `yaml:"name"`
	Types     []Type     `yaml:"types"`
	Base      BaseStats  `yaml:"base"`
	Evolution *Evolution `yaml:"evolution"`
}

// EvolvesAt returns the evolution level and target, or ok=false for a final form.
func (s Species) EvolvesAt() (level, into int, ok bool) {
	if s.Evolution == nil || s.Evolution.Into == 0 {
		return 0, 0, false
	}
	return s.Evolution.Level, s.Evolution.Into, true
}

// HasType reports whether t is one of the species' types.
func (s Species) HasType(t Type) bool {
	for _, st := range s.Types {
		if st == t {
			return true
		}
	}
	return false
}

// DamageKind selects how a move's damage is computed.
type DamageKind string

const (
	// DamageStandard uses the power-based formula; power 0 deals nothing.
	DamageStandard DamageKind = ""
	// DamageLevel deals damage equal to the user's level.
	DamageLevel DamageKind = "level"
)

// EffectKind tags a move's secondary effect.
type EffectKind string

const (
	EffectNone          EffectKind = ""
	EffectInflictStatus EffectKind = "inflict_status"
)

// EffectTarget is who a secondary effect applies to.
type EffectTarget string

const (
	TargetOpponent EffectTarget = "target"
	TargetSelf     EffectTarget = "self"
)

// Effect is a secondary effect rolled after a move hits.
type Effect struct {
	Kind   EffectKind   `yaml:"kind"`
	Status Status       `yaml:"status"`
	Chance float64      `yaml:"chance"`
	Target EffectTarget `yaml:"target"`
}

// Move is the immutable definition of an attack.
type Move struct {
	ID       int        `yaml:"id"`
	Name     string     `yaml:"name"`
	Type     Type       `yaml:"type"`
	Power    int        `yaml:"power"`
	Accuracy int        `yaml:"accuracy"`
	PP       int        `yaml:"pp"`
	Damage   DamageKind `yaml:"damage"`
	Effect   Effect     `yaml:"effect"`
}

// LearnStep lists the moves a species learns on reaching Level.
type LearnStep struct {
	Level int   `yaml:"level"`
	Moves []int `yaml:"moves"`
}
