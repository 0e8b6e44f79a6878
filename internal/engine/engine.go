// Package engine implements the encounter state machine: the
// authoritative participant collection, turn and round progression,
// condition decay, legendary resource resets, and combat log
// emission.
//
// The turn order is derived on every read. The engine tracks the
// active participant by identity, never by position, so operations
// that reorder the derived view cannot strand the turn pointer.
package engine

import (
	"fmt"
	"regexp"

	"golang.org/x/text/collate"

	"github.com/dmgrid/encounter-api/internal/entities"
	"github.com/dmgrid/encounter-api/internal/errors"
	"github.com/dmgrid/encounter-api/internal/pkg/idgen"
)

// Config holds the dependencies for an Encounter.
type Config struct {
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Encounter is the stateful combat controller. It is not safe for
// concurrent use; callers serialize access.
type Encounter struct {
	idGen idgen.Generator
	col   *collate.Collator

	participants []*entities.Participant
	activeID     string
	round        int
	log          []entities.LogEntry
}

// New creates an empty encounter in the NotStarted state.
func New(cfg *Config) (*Encounter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Encounter{
		idGen: cfg.IDGenerator,
		col:   newCollator(),
	}, nil
}

// Round returns the current round; 0 means combat has not started.
func (e *Encounter) Round() int {
	return e.round
}

// Started reports whether combat is active.
func (e *Encounter) Started() bool {
	return e.activeID != ""
}

// Len returns the number of participants.
func (e *Encounter) Len() int {
	return len(e.participants)
}

// ActiveID returns the id of the participant whose turn it is, or ""
// when combat has not started.
func (e *Encounter) ActiveID() string {
	return e.activeID
}

// Order returns the derived turn order as deep copies.
func (e *Encounter) Order() []*entities.Participant {
	order := sortOrder(e.participants, e.col)
	out := make([]*entities.Participant, len(order))
	for i, p := range order {
		out[i] = p.Clone()
	}
	return out
}

// CurrentIndex returns the active participant's position in the
// derived order, or -1 when combat has not started.
func (e *Encounter) CurrentIndex() int {
	if e.activeID == "" {
		return -1
	}
	return e.indexOf(sortOrder(e.participants, e.col), e.activeID)
}

// Snapshot returns a deep copy of the full encounter state in the
// save file shape. Participants appear in authoritative (insertion)
// order; currentIndex points into the derived order.
func (e *Encounter) Snapshot() *entities.Snapshot {
	snap := &entities.Snapshot{
		Participants: make([]*entities.Participant, len(e.participants)),
		CurrentIndex: e.CurrentIndex(),
		Round:        e.round,
		CombatLog:    make([]entities.LogEntry, len(e.log)),
	}
	for i, p := range e.participants {
		snap.Participants[i] = p.Clone()
	}
	copy(snap.CombatLog, e.log)
	return snap
}

// Restore replaces the whole encounter state with a loaded snapshot,
// re-deriving the active participant from the stored currentIndex.
func (e *Encounter) Restore(snap *entities.Snapshot) {
	e.participants = make([]*entities.Participant, 0, len(snap.Participants))
	for _, p := range snap.Participants {
		cp := p.Clone()
		e.sanitize(cp)
		e.participants = append(e.participants, cp)
	}
	e.round = snap.Round
	e.log = make([]entities.LogEntry, len(snap.CombatLog))
	copy(e.log, snap.CombatLog)

	e.activeID = ""
	order := sortOrder(e.participants, e.col)
	if snap.CurrentIndex >= 0 && snap.CurrentIndex < len(order) {
		e.activeID = order[snap.CurrentIndex].ID
	}
}

// AddParticipants appends deep copies of the given participants to
// the collection, assigning fresh ids. It returns the assigned ids in
// input order. Tie detection is the caller's concern.
func (e *Encounter) AddParticipants(list []*entities.Participant) []string {
	ids := make([]string, 0, len(list))
	for _, tmpl := range list {
		p := tmpl.Clone()
		p.ID = e.idGen.Generate()
		e.sanitize(p)
		e.participants = append(e.participants, p)
		ids = append(ids, p.ID)
	}
	return ids
}

// sanitize enforces the participant invariants on entry: clamped HP
// and counters, non-nil condition set, condition ids assigned.
func (e *Encounter) sanitize(p *entities.Participant) {
	if p.Conditions == nil {
		p.Conditions = []entities.Condition{}
	}
	for i := range p.Conditions {
		if p.Conditions[i].ID == "" {
			p.Conditions[i].ID = e.idGen.Generate()
		}
	}
	if p.TempHP < 0 {
		p.TempHP = 0
	}
	if p.HP != nil {
		hp := clamp(*p.HP, 0, maxHPOf(p))
		p.HP = &hp
	}
	p.LegendaryActionsUsed = clamp(p.LegendaryActionsUsed, 0, p.LegendaryActions)
	p.LegendaryResistancesUsed = clamp(p.LegendaryResistancesUsed, 0, p.LegendaryResistances)
	p.DeathSavesSuccess = clamp(p.DeathSavesSuccess, 0, 3)
	p.DeathSavesFailure = clamp(p.DeathSavesFailure, 0, 3)
}

// UnresolvedTies returns the tied initiative groups that still need a
// dexterity modifier supplied, as deep copies.
func (e *Encounter) UnresolvedTies() [][]*entities.Participant {
	groups := findTies(e.participants)
	out := make([][]*entities.Participant, len(groups))
	for i, group := range groups {
		out[i] = make([]*entities.Participant, len(group))
		for j, p := range group {
			out[i][j] = p.Clone()
		}
	}
	return out
}

// SetDexterityModifiers writes resolved tie-break modifiers back into
// the participant collection. Participants that already carry a
// modifier keep it.
func (e *Encounter) SetDexterityModifiers(mods map[string]int) {
	for id, mod := range mods {
		p := e.byID(id)
		if p == nil || p.DexterityModifier != nil {
			continue
		}
		m := mod
		p.DexterityModifier = &m
	}
}

// Start begins combat: round 1, first participant in the derived
// order active, log cleared. It is a no-op returning false when
// there are no participants. Callers must have resolved ties first.
func (e *Encounter) Start() bool {
	if len(e.participants) == 0 {
		return false
	}
	e.log = nil
	e.round = 1
	first := sortOrder(e.participants, e.col)[0]
	e.appendLog("System", entities.LogInfo, "Combat has started! Round 1 begins.")
	e.becomeActive(first)
	e.appendLog(first.Name, entities.LogTurnStart, "It is now %s's turn.", first.Name)
	return true
}

// NextTurn advances the active participant. Wrapping past the end of
// the order begins a new round and decays condition durations.
func (e *Encounter) NextTurn() bool {
	order := sortOrder(e.participants, e.col)
	if !e.Started() || len(order) == 0 {
		return false
	}
	cur := e.indexOf(order, e.activeID)
	next := (cur + 1) % len(order)
	if next == 0 {
		e.round++
		e.appendLog("", entities.LogInfo, "Round %d begins.", e.round)
		e.decayConditions()
	}
	p := order[next]
	e.becomeActive(p)
	e.appendLog(p.Name, entities.LogTurnStart, "It is now %s's turn.", p.Name)
	return true
}

// PreviousTurn steps the active participant backward. Crossing the
// round boundary decrements the round, never below 1. Condition
// decay is one-directional and is not undone.
func (e *Encounter) PreviousTurn() bool {
	order := sortOrder(e.participants, e.col)
	if !e.Started() || len(order) == 0 {
		return false
	}
	cur := e.indexOf(order, e.activeID)
	if cur == 0 && e.round > 1 {
		e.round--
	}
	prev := (cur - 1 + len(order)) % len(order)
	e.becomeActive(order[prev])
	return true
}

// EndCombat stops combat and filters the battlefield: players always
// stay, surviving creatures stay, and defeated creatures stay only
// when they carry loot.
func (e *Encounter) EndCombat() bool {
	if !e.Started() {
		return false
	}
	e.appendLog("", entities.LogInfo, "Combat has ended.")
	e.activeID = ""
	e.round = 0

	kept := e.participants[:0]
	for _, p := range e.participants {
		if p.Type == entities.TypePlayer || !p.IsDefeated() || p.HasLoot() {
			kept = append(kept, p)
		}
	}
	e.participants = kept
	return true
}

// LongRest restores every participant to full health, clears
// conditions and temporary hit points, resets legendary resources,
// and returns the encounter to the NotStarted state with a fresh log.
func (e *Encounter) LongRest() {
	for _, p := range e.participants {
		if p.MaxHP != nil {
			hp := *p.MaxHP
			p.HP = &hp
		} else {
			p.HP = nil
		}
		p.TempHP = 0
		p.Conditions = []entities.Condition{}
		p.LegendaryActionsUsed = 0
		p.LegendaryResistancesUsed = 0
	}
	e.activeID = ""
	e.round = 0
	e.log = nil
	e.appendLog("System", entities.LogInfo, "Combat has been reset.")
}

// Clear empties the battlefield entirely.
func (e *Encounter) Clear() {
	e.participants = nil
	e.activeID = ""
	e.round = 0
	e.log = nil
	e.appendLog("System", entities.LogInfo, "Battlefield has been cleared.")
}

// Remove deletes a participant by id. When the active participant is
// removed, the turn passes to the next in order; if it was last, the
// turn wraps to the top and a new round begins.
func (e *Encounter) Remove(id string) bool {
	p := e.byID(id)
	if p == nil {
		return false
	}
	e.appendLog("", entities.LogInfo, "%s was removed from combat.", p.Name)

	order := sortOrder(e.participants, e.col)
	removedIdx := e.indexOf(order, id)
	wasActive := id == e.activeID

	kept := e.participants[:0]
	for _, q := range e.participants {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	e.participants = kept

	if len(e.participants) == 0 {
		e.activeID = ""
		e.round = 0
		return true
	}

	if e.Started() && wasActive {
		newOrder := sortOrder(e.participants, e.col)
		if removedIdx >= len(newOrder) {
			e.round++
			e.becomeActive(newOrder[0])
		} else {
			e.becomeActive(newOrder[removedIdx])
		}
	}
	return true
}

// Group assigns the given participants a fresh shared group and
// forces their initiative to match the first selected member's.
func (e *Encounter) Group(ids []string, color string) bool {
	if len(ids) < 2 {
		return false
	}
	first := e.byID(ids[0])
	if first == nil {
		return false
	}
	group := entities.Group{
		ID:    e.idGen.Generate(),
		Name:  first.Name + " Group",
		Color: color,
	}
	initiative := first.Initiative
	for _, id := range ids {
		if p := e.byID(id); p != nil {
			p.Initiative = initiative
			g := group
			p.Group = &g
		}
	}
	return true
}

// Ungroup strips the group from each given participant, leaving
// initiative values as last synchronized.
func (e *Encounter) Ungroup(ids []string) {
	for _, id := range ids {
		if p := e.byID(id); p != nil {
			p.Group = nil
		}
	}
}

func (e *Encounter) byID(id string) *entities.Participant {
	if id == "" {
		return nil
	}
	for _, p := range e.participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (e *Encounter) indexOf(order []*entities.Participant, id string) int {
	for i, p := range order {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// becomeActive marks a participant as having the turn. Legendary
// resource used-counters reset the moment their owner becomes active.
func (e *Encounter) becomeActive(p *entities.Participant) {
	e.activeID = p.ID
	if p.LegendaryActionsUsed > 0 {
		p.LegendaryActionsUsed = 0
	}
	if p.LegendaryResistancesUsed > 0 {
		p.LegendaryResistancesUsed = 0
	}
}

func (e *Encounter) decayConditions() {
	for _, p := range e.participants {
		kept := make([]entities.Condition, 0, len(p.Conditions))
		for _, c := range p.Conditions {
			if c.IsPermanent() {
				kept = append(kept, c)
				continue
			}
			c.Duration--
			if c.Duration > 0 {
				kept = append(kept, c)
			}
		}
		p.Conditions = kept
	}
}

// appendLog records a combat log entry. An empty actor attributes the
// entry to the participant whose turn it is, or "System" outside
// combat.
func (e *Encounter) appendLog(actor string, typ entities.LogType, format string, args ...any) {
	if actor == "" {
		if p := e.byID(e.activeID); p != nil {
			actor = p.Name
		} else {
			actor = "System"
		}
	}
	round := e.round
	if round < 0 {
		round = 0
	}
	e.log = append(e.log, entities.LogEntry{
		ID:        e.idGen.Generate(),
		Round:     round,
		ActorName: actor,
		Message:   fmt.Sprintf(format, args...),
		Type:      typ,
	})
}

var mobCountRe = regexp.MustCompile(`\(x\d+\)`)

// refreshMobCount rewrites the (xN) marker in a shared-health mob's
// name to the surviving unit count.
func (e *Encounter) refreshMobCount(p *entities.Participant) {
	if p.HP == nil || p.IndividualMaxHP <= 0 {
		return
	}
	count := (*p.HP + p.IndividualMaxHP - 1) / p.IndividualMaxHP
	if mobCountRe.MatchString(p.Name) {
		p.Name = mobCountRe.ReplaceAllString(p.Name, fmt.Sprintf("(x%d)", count))
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxHPOf(p *entities.Participant) int {
	if p.MaxHP == nil {
		return 1<<31 - 1
	}
	return *p.MaxHP
}
