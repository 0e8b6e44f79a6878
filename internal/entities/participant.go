// Package entities defines the core domain model for encounters:
// participants, conditions, log entries, and the snapshot format
// exchanged with saves and the player view.
package entities

// ParticipantType classifies a combatant. All three share one
// representation; the type governs which optional fields are
// meaningful.
type ParticipantType string

// Participant types
const (
	TypePlayer   ParticipantType = "player"
	TypeDMPC     ParticipantType = "dmpc"
	TypeCreature ParticipantType = "creature"
)

// InventoryItem is a single loot entry carried by a participant.
type InventoryItem struct {
	Name        string `json:"name"`
	Amount      int    `json:"amount"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// Group marks participants that act together. Members share a
// synchronized initiative and are kept visually adjacent by the UI.
type Group struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Participant is a combatant in the encounter. Field names follow the
// save file format, so pointer fields distinguish "not tracked" from
// zero.
type Participant struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       ParticipantType `json:"type"`
	Initiative int             `json:"initiative"`

	// DexterityModifier breaks initiative ties; nil sorts after any
	// defined modifier at the same initiative.
	DexterityModifier *int `json:"dexterityModifier,omitempty"`

	HP     *int `json:"hp,omitempty"`
	MaxHP  *int `json:"maxHp,omitempty"`
	TempHP int  `json:"tempHp,omitempty"`

	// IndividualMaxHP is the per-unit HP baseline for shared-health
	// mobs; > 0 marks the participant as a mob.
	IndividualMaxHP int `json:"individualMaxHp,omitempty"`

	AC int `json:"ac"`

	Conditions []Condition `json:"conditions"`

	Level *int     `json:"level,omitempty"`
	CR    *float64 `json:"cr,omitempty"`

	DamageVulnerabilities []string `json:"damageVulnerabilities,omitempty"`
	DamageResistances     []string `json:"damageResistances,omitempty"`
	DamageImmunities      []string `json:"damageImmunities,omitempty"`
	ConditionImmunities   []string `json:"conditionImmunities,omitempty"`

	LegendaryResistances     int `json:"legendaryResistances,omitempty"`
	LegendaryResistancesUsed int `json:"legendaryResistancesUsed,omitempty"`
	LegendaryActions         int `json:"legendaryActions,omitempty"`
	LegendaryActionsUsed     int `json:"legendaryActionsUsed,omitempty"`

	DeathSavesSuccess int  `json:"deathSavesSuccess,omitempty"`
	DeathSavesFailure int  `json:"deathSavesFailure,omitempty"`
	IsInstantDead     bool `json:"isInstantDead,omitempty"`

	Inventory []InventoryItem `json:"inventory,omitempty"`

	Group *Group `json:"group,omitempty"`

	// Provenance hints for the UI; never authoritative.
	StatblockURL      string `json:"statblockUrl,omitempty"`
	CharacterSheetURL string `json:"characterSheetUrl,omitempty"`
	Description       string `json:"description,omitempty"`
	DexAPIURL         string `json:"dexApiUrl,omitempty"`
}

// IsDefeated reports whether the participant has tracked HP and it has
// reached zero. Participants without HP tracking are never defeated.
func (p *Participant) IsDefeated() bool {
	return p.HP != nil && *p.HP <= 0
}

// IsMob reports whether the participant is a shared-health mob.
func (p *Participant) IsMob() bool {
	return p.IndividualMaxHP > 0
}

// HasLoot reports whether the participant carries any inventory.
func (p *Participant) HasLoot() bool {
	return len(p.Inventory) > 0
}

// Clone returns a deep copy of the participant.
func (p *Participant) Clone() *Participant {
	if p == nil {
		return nil
	}
	cp := *p

	cp.DexterityModifier = cloneIntPtr(p.DexterityModifier)
	cp.HP = cloneIntPtr(p.HP)
	cp.MaxHP = cloneIntPtr(p.MaxHP)
	cp.Level = cloneIntPtr(p.Level)
	if p.CR != nil {
		cr := *p.CR
		cp.CR = &cr
	}

	if p.Conditions != nil {
		cp.Conditions = make([]Condition, len(p.Conditions))
		copy(cp.Conditions, p.Conditions)
	}
	cp.DamageVulnerabilities = cloneStrings(p.DamageVulnerabilities)
	cp.DamageResistances = cloneStrings(p.DamageResistances)
	cp.DamageImmunities = cloneStrings(p.DamageImmunities)
	cp.ConditionImmunities = cloneStrings(p.ConditionImmunities)
	if p.Inventory != nil {
		cp.Inventory = make([]InventoryItem, len(p.Inventory))
		copy(cp.Inventory, p.Inventory)
	}
	if p.Group != nil {
		g := *p.Group
		cp.Group = &g
	}
	return &cp
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
