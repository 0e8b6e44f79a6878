package engine

import (
	"github.com/dmgrid/encounter-api/internal/entities"
)

// ParticipantUpdate is a partial update; nil fields are left alone.
// Field names on the wire match the participant save format.
type ParticipantUpdate struct {
	Name              *string `json:"name,omitempty"`
	Initiative        *int    `json:"initiative,omitempty"`
	DexterityModifier *int    `json:"dexterityModifier,omitempty"`

	HP     *int `json:"hp,omitempty"`
	MaxHP  *int `json:"maxHp,omitempty"`
	TempHP *int `json:"tempHp,omitempty"`
	AC     *int `json:"ac,omitempty"`

	Level *int     `json:"level,omitempty"`
	CR    *float64 `json:"cr,omitempty"`

	Conditions *[]entities.Condition `json:"conditions,omitempty"`

	DamageVulnerabilities *[]string `json:"damageVulnerabilities,omitempty"`
	DamageResistances     *[]string `json:"damageResistances,omitempty"`
	DamageImmunities      *[]string `json:"damageImmunities,omitempty"`
	ConditionImmunities   *[]string `json:"conditionImmunities,omitempty"`

	LegendaryResistances     *int `json:"legendaryResistances,omitempty"`
	LegendaryResistancesUsed *int `json:"legendaryResistancesUsed,omitempty"`
	LegendaryActions         *int `json:"legendaryActions,omitempty"`
	LegendaryActionsUsed     *int `json:"legendaryActionsUsed,omitempty"`

	DeathSavesSuccess *int  `json:"deathSavesSuccess,omitempty"`
	DeathSavesFailure *int  `json:"deathSavesFailure,omitempty"`
	IsInstantDead     *bool `json:"isInstantDead,omitempty"`

	Inventory *[]entities.InventoryItem `json:"inventory,omitempty"`

	StatblockURL      *string `json:"statblockUrl,omitempty"`
	CharacterSheetURL *string `json:"characterSheetUrl,omitempty"`
	Description       *string `json:"description,omitempty"`
}

// Update applies a partial update to a participant. HP movement is
// clamped and logged, initiative changes propagate through the
// participant's group, and counters stay inside their capacities.
// Unknown ids are a no-op.
func (e *Encounter) Update(id string, upd *ParticipantUpdate) bool {
	p := e.byID(id)
	if p == nil || upd == nil {
		return false
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.AC != nil {
		p.AC = *upd.AC
	}
	if upd.Level != nil {
		p.Level = upd.Level
	}
	if upd.CR != nil {
		p.CR = upd.CR
	}
	if upd.DexterityModifier != nil {
		p.DexterityModifier = upd.DexterityModifier
	}

	// Capacities apply before used-counters so both can move in one
	// update without a stale clamp.
	if upd.LegendaryActions != nil {
		p.LegendaryActions = *upd.LegendaryActions
	}
	if upd.LegendaryResistances != nil {
		p.LegendaryResistances = *upd.LegendaryResistances
	}
	if upd.LegendaryActionsUsed != nil {
		p.LegendaryActionsUsed = clamp(*upd.LegendaryActionsUsed, 0, p.LegendaryActions)
	}
	if upd.LegendaryResistancesUsed != nil {
		p.LegendaryResistancesUsed = clamp(*upd.LegendaryResistancesUsed, 0, p.LegendaryResistances)
	}

	if upd.DeathSavesSuccess != nil {
		p.DeathSavesSuccess = clamp(*upd.DeathSavesSuccess, 0, 3)
	}
	if upd.DeathSavesFailure != nil {
		p.DeathSavesFailure = clamp(*upd.DeathSavesFailure, 0, 3)
	}
	if upd.IsInstantDead != nil {
		p.IsInstantDead = *upd.IsInstantDead
	}

	if upd.MaxHP != nil {
		p.MaxHP = upd.MaxHP
		// Keep current HP inside the new maximum even when the
		// update carries no HP of its own.
		if upd.HP == nil && p.HP != nil {
			hp := clamp(*p.HP, 0, maxHPOf(p))
			p.HP = &hp
		}
	}
	if upd.HP != nil {
		e.setHP(p, *upd.HP)
	}
	if upd.TempHP != nil {
		e.setTempHP(p, *upd.TempHP)
	}

	if upd.Conditions != nil {
		conds := make([]entities.Condition, len(*upd.Conditions))
		copy(conds, *upd.Conditions)
		for i := range conds {
			if conds[i].ID == "" {
				conds[i].ID = e.idGen.Generate()
			}
		}
		p.Conditions = conds
	}
	if upd.DamageVulnerabilities != nil {
		p.DamageVulnerabilities = *upd.DamageVulnerabilities
	}
	if upd.DamageResistances != nil {
		p.DamageResistances = *upd.DamageResistances
	}
	if upd.DamageImmunities != nil {
		p.DamageImmunities = *upd.DamageImmunities
	}
	if upd.ConditionImmunities != nil {
		p.ConditionImmunities = *upd.ConditionImmunities
	}
	if upd.Inventory != nil {
		inv := make([]entities.InventoryItem, len(*upd.Inventory))
		copy(inv, *upd.Inventory)
		p.Inventory = inv
	}

	if upd.StatblockURL != nil {
		p.StatblockURL = *upd.StatblockURL
	}
	if upd.CharacterSheetURL != nil {
		p.CharacterSheetURL = *upd.CharacterSheetURL
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}

	if upd.Initiative != nil {
		e.setInitiative(p, *upd.Initiative)
	}
	return true
}

// ApplyDamage deals damage to a participant, absorbing through
// temporary hit points first. Non-positive amounts are a no-op; the
// return reports only whether the participant exists.
func (e *Encounter) ApplyDamage(id string, amount int) bool {
	p := e.byID(id)
	if p == nil {
		return false
	}
	if amount <= 0 {
		return true
	}

	absorb := amount
	if p.TempHP < absorb {
		absorb = p.TempHP
	}
	p.TempHP -= absorb

	remaining := amount - absorb
	if remaining > 0 && p.HP != nil {
		e.setHP(p, *p.HP-remaining)
	}
	return true
}

// ApplyHealing restores hit points up to the maximum. Non-positive
// amounts and participants without tracked HP are a no-op; the return
// reports only whether the participant exists.
func (e *Encounter) ApplyHealing(id string, amount int) bool {
	p := e.byID(id)
	if p == nil {
		return false
	}
	if amount <= 0 || p.HP == nil {
		return true
	}
	e.setHP(p, *p.HP+amount)
	return true
}

// SetTempHP sets a participant's temporary hit point buffer. The
// replace-only-if-higher rule is the caller's policy; this primitive
// just clamps to zero and logs gains.
func (e *Encounter) SetTempHP(id string, amount int) bool {
	p := e.byID(id)
	if p == nil {
		return false
	}
	e.setTempHP(p, amount)
	return true
}

// AddCondition appends a condition to a participant. Use
// entities.PermanentDuration for conditions that never expire.
func (e *Encounter) AddCondition(id, name string, duration int) bool {
	p := e.byID(id)
	if p == nil {
		return false
	}
	e.appendLog("", entities.LogConditionAdd, "%s is now %s.", p.Name, name)
	p.Conditions = append(p.Conditions, entities.Condition{
		ID:       e.idGen.Generate(),
		Name:     name,
		Duration: duration,
	})
	return true
}

// RemoveCondition removes a condition from a participant by id.
func (e *Encounter) RemoveCondition(id, conditionID string) bool {
	p := e.byID(id)
	if p == nil {
		return false
	}
	for i, c := range p.Conditions {
		if c.ID == conditionID {
			e.appendLog("", entities.LogConditionRemove, "%s is no longer %s.", p.Name, c.Name)
			p.Conditions = append(p.Conditions[:i], p.Conditions[i+1:]...)
			return true
		}
	}
	return false
}

// setHP moves a participant's HP to the clamped target, logging
// damage, healing, and the defeat transition, and refreshing the
// displayed mob unit count.
func (e *Encounter) setHP(p *entities.Participant, target int) {
	hp := clamp(target, 0, maxHPOf(p))

	if p.HP != nil {
		old := *p.HP
		if hp < old {
			e.appendLog("", entities.LogDamage, "%s takes %d damage.", p.Name, old-hp)
		} else if hp > old {
			e.appendLog("", entities.LogHealing, "%s heals for %d hit points.", p.Name, hp-old)
		}
		if hp == 0 && old > 0 {
			e.appendLog("", entities.LogDeath, "%s has been defeated!", p.Name)
		}
	}

	p.HP = &hp
	if p.IsMob() {
		e.refreshMobCount(p)
	}
}

func (e *Encounter) setTempHP(p *entities.Participant, target int) {
	if target < 0 {
		target = 0
	}
	if target > p.TempHP {
		e.appendLog("", entities.LogInfo, "%s gains %d temporary hit points.", p.Name, target-p.TempHP)
	}
	p.TempHP = target
}

// setInitiative changes a participant's initiative, keeping every
// member of its group in lock-step.
func (e *Encounter) setInitiative(p *entities.Participant, initiative int) {
	p.Initiative = initiative
	if p.Group == nil {
		return
	}
	for _, q := range e.participants {
		if q.Group != nil && q.Group.ID == p.Group.ID {
			q.Initiative = initiative
		}
	}
}
