package encounter

import (
	"github.com/dmgrid/encounter-api/internal/engine"
	"github.com/dmgrid/encounter-api/internal/entities"
	"github.com/dmgrid/encounter-api/internal/repositories/encounters"
	"github.com/dmgrid/encounter-api/internal/rules"
)

// Broadcaster pushes a snapshot to every connected observer.
type Broadcaster interface {
	Publish(snap *entities.Snapshot)
}

// LoadMode selects how a loaded snapshot enters the encounter.
type LoadMode string

// Load modes
const (
	// LoadVerbatim restores the snapshot exactly, preserving
	// currentIndex and round.
	LoadVerbatim LoadMode = "verbatim"

	// LoadReinitiative keeps the roster but requires a fresh
	// initiative per participant and resets combat.
	LoadReinitiative LoadMode = "reinitiative"
)

// Vitality is the redacted health label shown on the player view.
type Vitality string

// Vitality bands
const (
	VitalityUnknown   Vitality = "Unknown"
	VitalityUnscathed Vitality = "Unscathed"
	VitalityBruised   Vitality = "Bruised"
	VitalityWounded   Vitality = "Wounded"
	VitalityCrippled  Vitality = "Crippled"
)

// GetStateInput defines the request for the full DM-side state
type GetStateInput struct{}

// GetStateOutput defines the response for the full DM-side state
type GetStateOutput struct {
	Snapshot *entities.Snapshot
	Started  bool
	Ties     [][]*entities.Participant
}

// GetPlayerViewInput defines the request for the redacted observer view
type GetPlayerViewInput struct{}

// PlayerViewEntry is one row of the redacted observer view. Raw HP
// never appears here.
type PlayerViewEntry struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Type       entities.ParticipantType `json:"type"`
	Initiative int                      `json:"initiative"`
	Conditions []entities.Condition     `json:"conditions"`
	Vitality   Vitality                 `json:"vitality"`
	Active     bool                     `json:"active"`
	Defeated   bool                     `json:"defeated"`
}

// GetPlayerViewOutput defines the response for the redacted observer view
type GetPlayerViewOutput struct {
	Round   int
	Entries []*PlayerViewEntry
}

// GetDifficultyInput defines the request for an encounter difficulty score
type GetDifficultyInput struct{}

// GetDifficultyOutput defines the response for an encounter difficulty
// score. Info is nil when the roster has no rated matchup.
type GetDifficultyOutput struct {
	Info *rules.DifficultyInfo
}

// AddParticipantsInput defines the request for adding participants
type AddParticipantsInput struct {
	Participants []*entities.Participant

	// Grouped gives the whole batch a shared group and synchronized
	// initiative.
	Grouped bool
}

// AddParticipantsOutput defines the response for adding participants
type AddParticipantsOutput struct {
	IDs  []string
	Ties [][]*entities.Participant
}

// AddMobInput defines the request for adding a shared-health mob
type AddMobInput struct {
	Template  *entities.Participant
	Units     int
	HPPerUnit int
}

// AddMobOutput defines the response for adding a shared-health mob
type AddMobOutput struct {
	ID   string
	Ties [][]*entities.Participant
}

// UpdateParticipantInput defines the request for a partial update
type UpdateParticipantInput struct {
	ID     string
	Update *engine.ParticipantUpdate
}

// UpdateParticipantOutput defines the response for a partial update
type UpdateParticipantOutput struct{}

// RemoveParticipantInput defines the request for removing a participant
type RemoveParticipantInput struct {
	ID string
}

// RemoveParticipantOutput defines the response for removing a participant
type RemoveParticipantOutput struct{}

// ApplyDamageInput defines the request for applying damage
type ApplyDamageInput struct {
	ID     string
	Amount int
}

// ApplyDamageOutput defines the response for applying damage
type ApplyDamageOutput struct{}

// ApplyHealingInput defines the request for applying healing
type ApplyHealingInput struct {
	ID     string
	Amount int
}

// ApplyHealingOutput defines the response for applying healing
type ApplyHealingOutput struct{}

// SetTempHPInput defines the request for setting temporary hit points
type SetTempHPInput struct {
	ID     string
	Amount int
}

// SetTempHPOutput defines the response for setting temporary hit points
type SetTempHPOutput struct{}

// AddConditionInput defines the request for adding a condition.
// Duration is in rounds; entities.PermanentDuration marks a condition
// that never expires.
type AddConditionInput struct {
	ID       string
	Name     string
	Duration int
}

// AddConditionOutput defines the response for adding a condition
type AddConditionOutput struct{}

// RemoveConditionInput defines the request for removing a condition
type RemoveConditionInput struct {
	ID          string
	ConditionID string
}

// RemoveConditionOutput defines the response for removing a condition
type RemoveConditionOutput struct{}

// StartCombatInput defines the request for starting combat
type StartCombatInput struct{}

// StartCombatOutput defines the response for starting combat. When
// unresolved ties block the start, Started is false and Ties carries
// the groups awaiting modifiers; the start resumes on resolution.
type StartCombatOutput struct {
	Started bool
	Ties    [][]*entities.Participant
}

// ResolveTiesInput defines the request for resolving initiative ties.
// Modifiers maps participant id to the supplied dexterity modifier.
type ResolveTiesInput struct {
	Modifiers map[string]int
}

// ResolveTiesOutput defines the response for resolving initiative
// ties. Ties carries any groups still unresolved; Started reports
// whether a deferred combat start fired.
type ResolveTiesOutput struct {
	Started bool
	Ties    [][]*entities.Participant
}

// CancelTieBreakInput defines the request for abandoning a tie break
type CancelTieBreakInput struct{}

// CancelTieBreakOutput defines the response for abandoning a tie break
type CancelTieBreakOutput struct{}

// NextTurnInput defines the request for advancing the turn
type NextTurnInput struct{}

// NextTurnOutput defines the response for advancing the turn. Ties
// non-empty means the advance was blocked pending resolution.
type NextTurnOutput struct {
	Advanced     bool
	Round        int
	CurrentIndex int
	Ties         [][]*entities.Participant
}

// PreviousTurnInput defines the request for stepping the turn back
type PreviousTurnInput struct{}

// PreviousTurnOutput defines the response for stepping the turn back
type PreviousTurnOutput struct {
	Moved        bool
	Round        int
	CurrentIndex int
}

// EndCombatInput defines the request for ending combat
type EndCombatInput struct{}

// EndCombatOutput defines the response for ending combat
type EndCombatOutput struct {
	Ended bool
}

// LongRestInput defines the request for a long rest
type LongRestInput struct{}

// LongRestOutput defines the response for a long rest
type LongRestOutput struct{}

// ClearBattlefieldInput defines the request for clearing the battlefield
type ClearBattlefieldInput struct{}

// ClearBattlefieldOutput defines the response for clearing the battlefield
type ClearBattlefieldOutput struct{}

// GroupParticipantsInput defines the request for grouping participants
type GroupParticipantsInput struct {
	IDs []string
}

// GroupParticipantsOutput defines the response for grouping participants
type GroupParticipantsOutput struct {
	Color string
}

// UngroupParticipantsInput defines the request for ungrouping participants
type UngroupParticipantsInput struct {
	IDs []string
}

// UngroupParticipantsOutput defines the response for ungrouping participants
type UngroupParticipantsOutput struct{}

// SaveEncounterInput defines the request for writing a named save
type SaveEncounterInput struct {
	Name string
}

// SaveEncounterOutput defines the response for writing a named save
type SaveEncounterOutput struct {
	Saved *encounters.SavedEncounter
}

// ListSavesInput defines the request for listing save slots
type ListSavesInput struct{}

// ListSavesOutput defines the response for listing save slots
type ListSavesOutput struct {
	Saves []*encounters.SaveSummary
}

// DeleteSaveInput defines the request for deleting a save slot
type DeleteSaveInput struct {
	Name string
}

// DeleteSaveOutput defines the response for deleting a save slot
type DeleteSaveOutput struct{}

// LoadEncounterInput defines the request for loading an encounter.
// Exactly one of Name (a stored save slot) or Data (an uploaded save
// file) supplies the snapshot. In LoadReinitiative mode Initiatives
// must cover every participant in the snapshot, keyed by its id in
// the file.
type LoadEncounterInput struct {
	Name string
	Data []byte

	Mode        LoadMode
	Initiatives map[string]int
}

// LoadEncounterOutput defines the response for loading an encounter
type LoadEncounterOutput struct {
	Snapshot *entities.Snapshot
}

// ImportCreaturesInput defines the request for merging creatures from
// a save file into the live encounter. Initiatives is keyed by the
// creature's id in the file and must cover every creature entry.
type ImportCreaturesInput struct {
	Data        []byte
	Initiatives map[string]int
}

// ImportCreaturesOutput defines the response for merging creatures
type ImportCreaturesOutput struct {
	IDs  []string
	Ties [][]*entities.Participant
}

// RestoreLiveInput defines the request for restoring the live snapshot
type RestoreLiveInput struct{}

// RestoreLiveOutput defines the response for restoring the live
// snapshot. Restored is false when no live snapshot exists.
type RestoreLiveOutput struct {
	Restored bool
}
