// Package encounter implements the encounter orchestrator: the single
// writer that owns the engine, runs the tie-breaker workflow, persists
// snapshots, and mirrors every mutation to connected observers.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/dmgrid/encounter-api/internal/orchestrators/encounter Service,Broadcaster

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"

	"github.com/dmgrid/encounter-api/internal/engine"
	"github.com/dmgrid/encounter-api/internal/entities"
	"github.com/dmgrid/encounter-api/internal/errors"
	"github.com/dmgrid/encounter-api/internal/pkg/idgen"
	"github.com/dmgrid/encounter-api/internal/repositories/encounters"
	"github.com/dmgrid/encounter-api/internal/rules"
)

// Service defines the interface for encounter operations
type Service interface {
	// GetState returns the full DM-side snapshot plus tie status
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// GetPlayerView returns the redacted observer view
	GetPlayerView(ctx context.Context, input *GetPlayerViewInput) (*GetPlayerViewOutput, error)

	// GetDifficulty scores the current roster against the DMG tables
	GetDifficulty(ctx context.Context, input *GetDifficultyInput) (*GetDifficultyOutput, error)

	// AddParticipants appends participants, optionally as a group
	AddParticipants(ctx context.Context, input *AddParticipantsInput) (*AddParticipantsOutput, error)

	// AddMob appends a single shared-health mob participant
	AddMob(ctx context.Context, input *AddMobInput) (*AddMobOutput, error)

	// UpdateParticipant applies a partial update
	UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error)

	// RemoveParticipant deletes a participant
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error)

	// ApplyDamage deals damage, absorbed by temporary hit points first
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)

	// ApplyHealing restores hit points up to the maximum
	ApplyHealing(ctx context.Context, input *ApplyHealingInput) (*ApplyHealingOutput, error)

	// SetTempHP replaces the temporary hit point buffer
	SetTempHP(ctx context.Context, input *SetTempHPInput) (*SetTempHPOutput, error)

	// AddCondition attaches a condition to a participant
	AddCondition(ctx context.Context, input *AddConditionInput) (*AddConditionOutput, error)

	// RemoveCondition detaches a condition from a participant
	RemoveCondition(ctx context.Context, input *RemoveConditionInput) (*RemoveConditionOutput, error)

	// StartCombat begins combat, or surfaces unresolved ties
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)

	// ResolveTies supplies tie-break modifiers and resumes a deferred start
	ResolveTies(ctx context.Context, input *ResolveTiesInput) (*ResolveTiesOutput, error)

	// CancelTieBreak abandons the pending start; added participants remain
	CancelTieBreak(ctx context.Context, input *CancelTieBreakInput) (*CancelTieBreakOutput, error)

	// NextTurn advances the active participant
	NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error)

	// PreviousTurn steps the active participant backward
	PreviousTurn(ctx context.Context, input *PreviousTurnInput) (*PreviousTurnOutput, error)

	// EndCombat stops combat and filters the battlefield
	EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error)

	// LongRest restores everyone and resets combat
	LongRest(ctx context.Context, input *LongRestInput) (*LongRestOutput, error)

	// ClearBattlefield empties the encounter
	ClearBattlefield(ctx context.Context, input *ClearBattlefieldInput) (*ClearBattlefieldOutput, error)

	// GroupParticipants binds participants into a shared group
	GroupParticipants(ctx context.Context, input *GroupParticipantsInput) (*GroupParticipantsOutput, error)

	// UngroupParticipants dissolves group membership
	UngroupParticipants(ctx context.Context, input *UngroupParticipantsInput) (*UngroupParticipantsOutput, error)

	// SaveEncounter writes the current snapshot to a named slot
	SaveEncounter(ctx context.Context, input *SaveEncounterInput) (*SaveEncounterOutput, error)

	// ListSaves lists the stored save slots
	ListSaves(ctx context.Context, input *ListSavesInput) (*ListSavesOutput, error)

	// DeleteSave removes a stored save slot
	DeleteSave(ctx context.Context, input *DeleteSaveInput) (*DeleteSaveOutput, error)

	// LoadEncounter replaces the live encounter with a stored or uploaded snapshot
	LoadEncounter(ctx context.Context, input *LoadEncounterInput) (*LoadEncounterOutput, error)

	// ImportCreatures merges creature entries from a save file into the live encounter
	ImportCreatures(ctx context.Context, input *ImportCreaturesInput) (*ImportCreaturesOutput, error)

	// RestoreLive rehydrates the engine from the persisted live snapshot
	RestoreLive(ctx context.Context, input *RestoreLiveInput) (*RestoreLiveOutput, error)
}

// groupColors is the palette the UI renders group borders with; the
// orchestrator picks one at random per new group.
var groupColors = []string{
	"border-red-500 bg-red-900/20",
	"border-orange-500 bg-orange-900/20",
	"border-amber-500 bg-amber-900/20",
	"border-yellow-500 bg-yellow-900/20",
	"border-lime-500 bg-lime-900/20",
	"border-green-500 bg-green-900/20",
	"border-emerald-500 bg-emerald-900/20",
	"border-teal-500 bg-teal-900/20",
	"border-cyan-500 bg-cyan-900/20",
	"border-sky-500 bg-sky-900/20",
	"border-blue-500 bg-blue-900/20",
	"border-indigo-500 bg-indigo-900/20",
	"border-violet-500 bg-violet-900/20",
	"border-purple-500 bg-purple-900/20",
	"border-fuchsia-500 bg-fuchsia-900/20",
	"border-pink-500 bg-pink-900/20",
	"border-rose-500 bg-rose-900/20",
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	IDGenerator idgen.Generator
	Repository  encounters.Repository
	Broadcaster Broadcaster
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Broadcaster == nil {
		vb.RequiredField("Broadcaster")
	}

	return vb.Build()
}

type orchestrator struct {
	repo        encounters.Repository
	broadcaster Broadcaster

	// mu serializes every engine access; the engine itself is not
	// concurrency safe.
	mu  sync.Mutex
	eng *engine.Encounter

	// startPending is set when a combat start was deferred by the
	// tie-breaker workflow.
	startPending bool
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	eng, err := engine.New(&engine.Config{IDGenerator: cfg.IDGenerator})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	return &orchestrator{
		repo:        cfg.Repository,
		broadcaster: cfg.Broadcaster,
		eng:         eng,
	}, nil
}

// afterMutation persists the live snapshot and mirrors it to
// observers. Neither failure blocks the gameplay operation; the engine
// state is already authoritative.
func (o *orchestrator) afterMutation(ctx context.Context) {
	snap := o.eng.Snapshot()
	if _, err := o.repo.SaveLive(ctx, &encounters.SaveLiveInput{Snapshot: snap}); err != nil {
		slog.Error("Failed to persist live snapshot", "error", err)
	}
	o.broadcaster.Publish(snap)
}

// GetState returns the full DM-side snapshot plus tie status
func (o *orchestrator) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetStateOutput{
		Snapshot: o.eng.Snapshot(),
		Started:  o.eng.Started(),
		Ties:     o.eng.UnresolvedTies(),
	}, nil
}

// GetPlayerView returns the redacted observer view
func (o *orchestrator) GetPlayerView(ctx context.Context, input *GetPlayerViewInput) (*GetPlayerViewOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	order := o.eng.Order()
	currentIndex := o.eng.CurrentIndex()

	entries := make([]*PlayerViewEntry, len(order))
	for i, p := range order {
		entries[i] = &PlayerViewEntry{
			ID:         p.ID,
			Name:       p.Name,
			Type:       p.Type,
			Initiative: p.Initiative,
			Conditions: p.Conditions,
			Vitality:   vitalityOf(p),
			Active:     i == currentIndex,
			Defeated:   p.IsDefeated(),
		}
	}

	return &GetPlayerViewOutput{
		Round:   o.eng.Round(),
		Entries: entries,
	}, nil
}

// vitalityOf bands HP into the labels the player view shows instead of
// raw numbers.
func vitalityOf(p *entities.Participant) Vitality {
	if p.HP == nil || p.MaxHP == nil || *p.MaxHP <= 0 {
		return VitalityUnknown
	}
	percent := float64(*p.HP) / float64(*p.MaxHP) * 100
	switch {
	case percent > 75:
		return VitalityUnscathed
	case percent > 50:
		return VitalityBruised
	case percent > 25:
		return VitalityWounded
	default:
		return VitalityCrippled
	}
}

// GetDifficulty scores the current roster against the DMG tables
func (o *orchestrator) GetDifficulty(ctx context.Context, input *GetDifficultyInput) (*GetDifficultyOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetDifficultyOutput{
		Info: rules.CalculateDifficulty(o.eng.Order()),
	}, nil
}

// AddParticipants appends participants, optionally as a group
func (o *orchestrator) AddParticipants(ctx context.Context, input *AddParticipantsInput) (*AddParticipantsOutput, error) {
	if input == nil || len(input.Participants) == 0 {
		return nil, errors.InvalidArgument("at least one participant is required")
	}
	for _, p := range input.Participants {
		if p == nil || p.Name == "" {
			return nil, errors.InvalidArgument("participant name is required")
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	ids := o.eng.AddParticipants(input.Participants)
	if input.Grouped && len(ids) >= 2 {
		o.eng.Group(ids, randomGroupColor())
	}

	slog.Info("Participants added",
		"count", len(ids),
		"grouped", input.Grouped,
	)

	o.afterMutation(ctx)

	return &AddParticipantsOutput{
		IDs:  ids,
		Ties: o.blockingTies(),
	}, nil
}

// AddMob appends a single shared-health mob participant
func (o *orchestrator) AddMob(ctx context.Context, input *AddMobInput) (*AddMobOutput, error) {
	if input == nil || input.Template == nil || input.Template.Name == "" {
		return nil, errors.InvalidArgument("mob template with a name is required")
	}
	if input.Units < 1 {
		return nil, errors.InvalidArgument("mob needs at least one unit")
	}
	if input.HPPerUnit < 1 {
		return nil, errors.InvalidArgument("mob per-unit HP must be positive")
	}

	mob := input.Template.Clone()
	if !strings.Contains(mob.Name, "(x") {
		mob.Name = fmt.Sprintf("%s (x%d)", mob.Name, input.Units)
	}
	pool := input.Units * input.HPPerUnit
	mob.HP = &pool
	maxPool := pool
	mob.MaxHP = &maxPool
	mob.IndividualMaxHP = input.HPPerUnit

	o.mu.Lock()
	defer o.mu.Unlock()

	ids := o.eng.AddParticipants([]*entities.Participant{mob})

	slog.Info("Mob added",
		"name", mob.Name,
		"units", input.Units,
		"hp_per_unit", input.HPPerUnit,
	)

	o.afterMutation(ctx)

	return &AddMobOutput{
		ID:   ids[0],
		Ties: o.blockingTies(),
	}, nil
}

// UpdateParticipant applies a partial update
func (o *orchestrator) UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("participant id is required")
	}
	if input.Update == nil {
		return nil, errors.InvalidArgument("update is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.eng.Update(input.ID, input.Update) {
		return nil, errors.NotFound("participant not found")
	}

	o.afterMutation(ctx)
	return &UpdateParticipantOutput{}, nil
}

// RemoveParticipant deletes a participant
func (o *orchestrator) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("participant id is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.eng.Remove(input.ID) {
		return nil, errors.NotFound("participant not found")
	}

	o.afterMutation(ctx)
	return &RemoveParticipantOutput{}, nil
}

// ApplyDamage deals damage, absorbed by temporary hit points first
func (o *orchestrator) ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("participant id is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.eng.ApplyDamage(input.ID, input.Amount) {
		return nil, errors.NotFound("participant not found")
	}

	o.afterMutation(ctx)
	return &ApplyDamageOutput{}, nil
}

// ApplyHealing restores hit points up to the maximum
func (o *orchestrator) ApplyHealing(ctx context.Context, input *ApplyHealingInput) (*ApplyHealingOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("participant id is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.eng.ApplyHealing(input.ID, input.Amount) {
		return nil, errors.NotFound("participant not found")
	}

	o.afterMutation(ctx)
	return &ApplyHealingOutput{}, nil
}

// SetTempHP replaces the temporary hit point buffer
func (o *orchestrator) SetTempHP(ctx context.Context, input *SetTempHPInput) (*SetTempHPOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("participant id is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.eng.SetTempHP(input.ID, input.Amount) {
		return nil, errors.NotFound("participant not found")
	}

	o.afterMutation(ctx)
	return &SetTempHPOutput{}, nil
}

// AddCondition attaches a condition to a participant
func (o *orchestrator) AddCondition(ctx context.Context, input *AddConditionInput) (*AddConditionOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("participant id is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("condition name is required")
	}
	if input.Duration <= 0 && input.Duration != entities.PermanentDuration {
		return nil, errors.InvalidArgument("condition duration must be positive or permanent")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.eng.AddCondition(input.ID, input.Name, input.Duration) {
		return nil, errors.NotFound("participant not found")
	}

	o.afterMutation(ctx)
	return &AddConditionOutput{}, nil
}

// RemoveCondition detaches a condition from a participant
func (o *orchestrator) RemoveCondition(ctx context.Context, input *RemoveConditionInput) (*RemoveConditionOutput, error) {
	if input == nil || input.ID == "" || input.ConditionID == "" {
		return nil, errors.InvalidArgument("participant id and condition id are required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.eng.RemoveCondition(input.ID, input.ConditionID) {
		return nil, errors.NotFound("participant or condition not found")
	}

	o.afterMutation(ctx)
	return &RemoveConditionOutput{}, nil
}

// StartCombat begins combat, or surfaces unresolved ties
func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.eng.Started() {
		return &StartCombatOutput{Started: true}, nil
	}

	if ties := o.eng.UnresolvedTies(); len(ties) > 0 {
		o.startPending = true
		slog.Info("Combat start deferred by unresolved ties", "tie_groups", len(ties))
		return &StartCombatOutput{Ties: ties}, nil
	}

	if !o.eng.Start() {
		// Nothing to start on an empty battlefield.
		return &StartCombatOutput{}, nil
	}

	// Ties may have been cleared by direct edits while a start was
	// pending; the pending flag must not outlive a successful start.
	o.startPending = false
	slog.Info("Combat started", "participants", o.eng.Len())
	o.afterMutation(ctx)
	return &StartCombatOutput{Started: true}, nil
}

// ResolveTies supplies tie-break modifiers and resumes a deferred start
func (o *orchestrator) ResolveTies(ctx context.Context, input *ResolveTiesInput) (*ResolveTiesOutput, error) {
	if input == nil || len(input.Modifiers) == 0 {
		return nil, errors.InvalidArgument("at least one modifier is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.eng.SetDexterityModifiers(input.Modifiers)

	remaining := o.eng.UnresolvedTies()
	started := false
	if len(remaining) == 0 && o.startPending {
		o.startPending = false
		started = o.eng.Start()
		if started {
			slog.Info("Deferred combat start resumed", "participants", o.eng.Len())
		}
	}

	o.afterMutation(ctx)
	return &ResolveTiesOutput{
		Started: started,
		Ties:    remaining,
	}, nil
}

// CancelTieBreak abandons the pending start; added participants remain
func (o *orchestrator) CancelTieBreak(ctx context.Context, input *CancelTieBreakInput) (*CancelTieBreakOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.startPending {
		o.startPending = false
		slog.Info("Tie break cancelled; combat start abandoned")
	}

	return &CancelTieBreakOutput{}, nil
}

// NextTurn advances the active participant
func (o *orchestrator) NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if ties := o.blockingTies(); len(ties) > 0 {
		return &NextTurnOutput{
			Round:        o.eng.Round(),
			CurrentIndex: o.eng.CurrentIndex(),
			Ties:         ties,
		}, nil
	}

	advanced := o.eng.NextTurn()
	if advanced {
		slog.Info("Advanced turn",
			"round", o.eng.Round(),
			"current_index", o.eng.CurrentIndex(),
		)
		o.afterMutation(ctx)
	}

	return &NextTurnOutput{
		Advanced:     advanced,
		Round:        o.eng.Round(),
		CurrentIndex: o.eng.CurrentIndex(),
	}, nil
}

// PreviousTurn steps the active participant backward
func (o *orchestrator) PreviousTurn(ctx context.Context, input *PreviousTurnInput) (*PreviousTurnOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	moved := o.eng.PreviousTurn()
	if moved {
		o.afterMutation(ctx)
	}

	return &PreviousTurnOutput{
		Moved:        moved,
		Round:        o.eng.Round(),
		CurrentIndex: o.eng.CurrentIndex(),
	}, nil
}

// EndCombat stops combat and filters the battlefield
func (o *orchestrator) EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.startPending = false
	ended := o.eng.EndCombat()
	if ended {
		slog.Info("Combat ended", "remaining", o.eng.Len())
		o.afterMutation(ctx)
	}

	return &EndCombatOutput{Ended: ended}, nil
}

// LongRest restores everyone and resets combat
func (o *orchestrator) LongRest(ctx context.Context, input *LongRestInput) (*LongRestOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.startPending = false
	o.eng.LongRest()
	slog.Info("Long rest taken", "participants", o.eng.Len())

	o.afterMutation(ctx)
	return &LongRestOutput{}, nil
}

// ClearBattlefield empties the encounter
func (o *orchestrator) ClearBattlefield(ctx context.Context, input *ClearBattlefieldInput) (*ClearBattlefieldOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.startPending = false
	o.eng.Clear()
	slog.Info("Battlefield cleared")

	o.afterMutation(ctx)
	return &ClearBattlefieldOutput{}, nil
}

// GroupParticipants binds participants into a shared group
func (o *orchestrator) GroupParticipants(ctx context.Context, input *GroupParticipantsInput) (*GroupParticipantsOutput, error) {
	if input == nil || len(input.IDs) < 2 {
		return nil, errors.InvalidArgument("grouping requires at least two participants")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	color := randomGroupColor()
	if !o.eng.Group(input.IDs, color) {
		return nil, errors.NotFound("participant not found")
	}

	o.afterMutation(ctx)
	return &GroupParticipantsOutput{Color: color}, nil
}

// UngroupParticipants dissolves group membership
func (o *orchestrator) UngroupParticipants(ctx context.Context, input *UngroupParticipantsInput) (*UngroupParticipantsOutput, error) {
	if input == nil || len(input.IDs) == 0 {
		return nil, errors.InvalidArgument("at least one participant id is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.eng.Ungroup(input.IDs)

	o.afterMutation(ctx)
	return &UngroupParticipantsOutput{}, nil
}

// SaveEncounter writes the current snapshot to a named slot
func (o *orchestrator) SaveEncounter(ctx context.Context, input *SaveEncounterInput) (*SaveEncounterOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("save name is required")
	}

	o.mu.Lock()
	snap := o.eng.Snapshot()
	o.mu.Unlock()

	out, err := o.repo.Save(ctx, &encounters.SaveInput{
		Name:     input.Name,
		Snapshot: snap,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save encounter %q", input.Name)
	}

	slog.Info("Encounter saved", "name", input.Name, "participants", len(snap.Participants))
	return &SaveEncounterOutput{Saved: out.Saved}, nil
}

// ListSaves lists the stored save slots
func (o *orchestrator) ListSaves(ctx context.Context, input *ListSavesInput) (*ListSavesOutput, error) {
	out, err := o.repo.List(ctx, &encounters.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saves")
	}
	return &ListSavesOutput{Saves: out.Saves}, nil
}

// DeleteSave removes a stored save slot
func (o *orchestrator) DeleteSave(ctx context.Context, input *DeleteSaveInput) (*DeleteSaveOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("save name is required")
	}

	if _, err := o.repo.Delete(ctx, &encounters.DeleteInput{Name: input.Name}); err != nil {
		return nil, err
	}
	return &DeleteSaveOutput{}, nil
}

// LoadEncounter replaces the live encounter with a stored or uploaded
// snapshot. Validation failures leave the live encounter untouched.
func (o *orchestrator) LoadEncounter(ctx context.Context, input *LoadEncounterInput) (*LoadEncounterOutput, error) {
	if input == nil || (input.Name == "" && len(input.Data) == 0) {
		return nil, errors.InvalidArgument("a save name or file payload is required")
	}
	if input.Name != "" && len(input.Data) > 0 {
		return nil, errors.InvalidArgument("provide a save name or a file payload, not both")
	}

	snap, err := o.resolveSnapshot(ctx, input)
	if err != nil {
		return nil, err
	}

	mode := input.Mode
	if mode == "" {
		mode = LoadVerbatim
	}

	switch mode {
	case LoadVerbatim:
		// Nothing to adjust.
	case LoadReinitiative:
		for _, p := range snap.Participants {
			initiative, ok := input.Initiatives[p.ID]
			if !ok {
				return nil, errors.InvalidArgument("an initiative is required for every participant")
			}
			p.Initiative = initiative
			p.DexterityModifier = nil
		}
		snap.CurrentIndex = -1
		snap.Round = 0
		snap.CombatLog = nil
	default:
		return nil, errors.InvalidArgument("unknown load mode")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.startPending = false
	o.eng.Restore(snap)

	slog.Info("Encounter loaded",
		"mode", string(mode),
		"participants", o.eng.Len(),
		"round", o.eng.Round(),
	)

	o.afterMutation(ctx)
	return &LoadEncounterOutput{Snapshot: o.eng.Snapshot()}, nil
}

// resolveSnapshot pulls the snapshot from the named slot or parses the
// uploaded payload.
func (o *orchestrator) resolveSnapshot(ctx context.Context, input *LoadEncounterInput) (*entities.Snapshot, error) {
	if input.Name != "" {
		out, err := o.repo.Get(ctx, &encounters.GetInput{Name: input.Name})
		if err != nil {
			return nil, err
		}
		if out.Saved.Snapshot == nil {
			return nil, errors.Internal("save slot has no snapshot")
		}
		return out.Saved.Snapshot.Clone(), nil
	}
	return entities.ParseSnapshot(input.Data)
}

// ImportCreatures merges creature entries from a save file into the
// live encounter
func (o *orchestrator) ImportCreatures(ctx context.Context, input *ImportCreaturesInput) (*ImportCreaturesOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, errors.InvalidArgument("a file payload is required")
	}

	snap, err := entities.ParseSnapshot(input.Data)
	if err != nil {
		return nil, err
	}

	var creatures []*entities.Participant
	for _, p := range snap.Participants {
		if p.Type != entities.TypeCreature {
			continue
		}
		initiative, ok := input.Initiatives[p.ID]
		if !ok {
			return nil, errors.InvalidArgument("an initiative is required for every imported creature")
		}
		c := p.Clone()
		c.Initiative = initiative
		c.Group = nil
		creatures = append(creatures, c)
	}

	if len(creatures) == 0 {
		return nil, errors.InvalidArgument("file contains no creatures")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	ids := o.eng.AddParticipants(creatures)

	slog.Info("Creatures imported", "count", len(ids))

	o.afterMutation(ctx)
	return &ImportCreaturesOutput{
		IDs:  ids,
		Ties: o.blockingTies(),
	}, nil
}

// RestoreLive rehydrates the engine from the persisted live snapshot
func (o *orchestrator) RestoreLive(ctx context.Context, input *RestoreLiveInput) (*RestoreLiveOutput, error) {
	out, err := o.repo.GetLive(ctx, &encounters.GetLiveInput{})
	if err != nil {
		if errors.IsNotFound(err) {
			return &RestoreLiveOutput{}, nil
		}
		return nil, errors.Wrap(err, "failed to load live snapshot")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.eng.Restore(out.Snapshot)
	o.broadcaster.Publish(o.eng.Snapshot())

	slog.Info("Live encounter restored",
		"participants", o.eng.Len(),
		"round", o.eng.Round(),
	)

	return &RestoreLiveOutput{Restored: true}, nil
}

// blockingTies returns the unresolved ties that gate turn progression:
// only relevant while combat runs or a start is pending.
func (o *orchestrator) blockingTies() [][]*entities.Participant {
	if !o.eng.Started() && !o.startPending {
		return nil
	}
	return o.eng.UnresolvedTies()
}

func randomGroupColor() string {
	return groupColors[rand.Intn(len(groupColors))]
}
