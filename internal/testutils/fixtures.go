package testutils

import "github.com/dmgrid/encounter-api/internal/entities"

// IntPtr returns a pointer to the given int.
func IntPtr(v int) *int { return &v }

// Float64Ptr returns a pointer to the given float64.
func Float64Ptr(v float64) *float64 { return &v }

// NewTestPlayer creates a player participant with sensible defaults.
func NewTestPlayer(id, name string, initiative int) *entities.Participant {
	return &entities.Participant{
		ID:         id,
		Name:       name,
		Type:       entities.TypePlayer,
		Initiative: initiative,
		HP:         IntPtr(25),
		MaxHP:      IntPtr(25),
		AC:         15,
		Level:      IntPtr(3),
		Conditions: []entities.Condition{},
	}
}

// NewTestCreature creates a creature participant with sensible defaults.
func NewTestCreature(id, name string, initiative int) *entities.Participant {
	return &entities.Participant{
		ID:         id,
		Name:       name,
		Type:       entities.TypeCreature,
		Initiative: initiative,
		HP:         IntPtr(11),
		MaxHP:      IntPtr(11),
		AC:         13,
		CR:         Float64Ptr(0.25),
		Conditions: []entities.Condition{},
	}
}

// NewTestSnapshot creates a two-participant snapshot mid-combat.
func NewTestSnapshot() *entities.Snapshot {
	return &entities.Snapshot{
		Participants: []*entities.Participant{
			NewTestPlayer("p-1", "Selis", 18),
			NewTestCreature("c-1", "Goblin", 12),
		},
		CurrentIndex: 0,
		Round:        2,
		CombatLog: []entities.LogEntry{
			{ID: "log-1", Round: 1, ActorName: "System", Message: "Combat has started! Round 1 begins.", Type: entities.LogInfo},
		},
	}
}
