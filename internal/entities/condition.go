package entities

import (
	"encoding/json"
	"math"
)

// PermanentDuration marks a condition that never expires on its own.
const PermanentDuration = -1

// Condition is a status effect on a participant. Duration counts
// remaining rounds, or PermanentDuration.
type Condition struct {
	ID       string
	Name     string
	Duration int
}

// IsPermanent reports whether the condition never decays.
func (c Condition) IsPermanent() bool {
	return c.Duration == PermanentDuration
}

type conditionWire struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Duration *float64 `json:"duration"`
}

// MarshalJSON encodes a permanent duration as null, matching save
// files produced by the browser client (Infinity does not survive
// JSON encoding there).
func (c Condition) MarshalJSON() ([]byte, error) {
	w := conditionWire{ID: c.ID, Name: c.Name}
	if !c.IsPermanent() {
		d := float64(c.Duration)
		w.Duration = &d
	}
	return json.Marshal(w)
}

// UnmarshalJSON treats a null, missing, or non-finite duration as
// permanent.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var w conditionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.ID = w.ID
	c.Name = w.Name
	if w.Duration == nil || math.IsInf(*w.Duration, 0) || math.IsNaN(*w.Duration) {
		c.Duration = PermanentDuration
		return nil
	}
	c.Duration = int(*w.Duration)
	return nil
}
