package entities

import (
	"bytes"
	"encoding/json"

	"github.com/dmgrid/encounter-api/internal/errors"
)

// Snapshot is the persisted and broadcast encounter state. It is the
// exact structure written to save files: participants fully inlined,
// currentIndex into the derived turn order (-1 when combat has not
// started), the round counter (0 when not started), and the combat
// log.
type Snapshot struct {
	Participants []*Participant `json:"participants"`
	CurrentIndex int            `json:"currentIndex"`
	Round        int            `json:"round"`
	CombatLog    []LogEntry     `json:"combatLog"`
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	cp := &Snapshot{
		CurrentIndex: s.CurrentIndex,
		Round:        s.Round,
		Participants: make([]*Participant, len(s.Participants)),
	}
	for i, p := range s.Participants {
		cp.Participants[i] = p.Clone()
	}
	if s.CombatLog != nil {
		cp.CombatLog = make([]LogEntry, len(s.CombatLog))
		copy(cp.CombatLog, s.CombatLog)
	}
	return cp
}

// snapshotProbe mirrors the required top-level fields so a load can be
// rejected without touching state when the shape is wrong.
type snapshotProbe struct {
	Participants *json.RawMessage `json:"participants"`
	CurrentIndex *float64         `json:"currentIndex"`
	Round        *float64         `json:"round"`
}

// ParseSnapshot validates and decodes a save file. A valid file must
// carry participants as an array and numeric currentIndex and round; a
// missing combatLog is treated as empty. Anything else is an
// InvalidArgument error and the caller's state stays untouched.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var probe snapshotProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "save file is not valid JSON")
	}
	if probe.Participants == nil || !isJSONArray(*probe.Participants) {
		return nil, errors.InvalidArgument("save file: participants must be an array")
	}
	if probe.CurrentIndex == nil {
		return nil, errors.InvalidArgument("save file: currentIndex must be a number")
	}
	if probe.Round == nil {
		return nil, errors.InvalidArgument("save file: round must be a number")
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "save file: malformed participant data")
	}
	if snap.CombatLog == nil {
		snap.CombatLog = []LogEntry{}
	}
	return &snap, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
