package rules

import (
	"math"

	"github.com/dmgrid/encounter-api/internal/entities"
)

// Difficulty is the encounter difficulty label.
type Difficulty string

// Difficulty tiers, lowest to highest.
const (
	Trivial Difficulty = "Trivial"
	Easy    Difficulty = "Easy"
	Medium  Difficulty = "Medium"
	Hard    Difficulty = "Hard"
	Deadly  Difficulty = "Deadly"
)

// Thresholds is a party's combined per-tier XP threshold vector.
type Thresholds struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
	Deadly int `json:"deadly"`
}

// DifficultyInfo is the full result of a difficulty calculation,
// including the inputs the UI displays alongside the label.
type DifficultyInfo struct {
	Difficulty      Difficulty `json:"difficulty"`
	AdjustedXP      int        `json:"adjustedXp"`
	TotalRawXP      int        `json:"totalRawXp"`
	PartyThresholds Thresholds `json:"partyThresholds"`
	PlayerCount     int        `json:"playerCount"`
	CreatureCount   int        `json:"creatureCount"`
}

// xpThresholds holds per-character XP thresholds by level from the
// DMG: easy, medium, hard, deadly. Index is level-1.
var xpThresholds = [20][4]int{
	{25, 50, 75, 100},        // Level 1
	{50, 100, 150, 200},      // Level 2
	{75, 150, 225, 400},      // Level 3
	{125, 250, 375, 500},     // Level 4
	{250, 500, 750, 1100},    // Level 5
	{300, 600, 900, 1400},    // Level 6
	{350, 750, 1100, 1700},   // Level 7
	{450, 900, 1400, 2100},   // Level 8
	{550, 1100, 1600, 2400},  // Level 9
	{600, 1200, 1900, 2800},  // Level 10
	{800, 1600, 2400, 3600},  // Level 11
	{1000, 2000, 3000, 4500}, // Level 12
	{1100, 2200, 3400, 5100}, // Level 13
	{1250, 2500, 3800, 5700}, // Level 14
	{1400, 2800, 4300, 6400}, // Level 15
	{1600, 3200, 4800, 7200}, // Level 16
	{2000, 3900, 5900, 8800}, // Level 17
	{2100, 4200, 6300, 9500}, // Level 18
	{2400, 4900, 7300, 10900}, // Level 19
	{2800, 5700, 8500, 12700}, // Level 20
}

// EncounterMultiplier returns the adjusted-XP multiplier for the
// number of creatures in the encounter.
func EncounterMultiplier(creatureCount int) float64 {
	switch {
	case creatureCount <= 1:
		return 1
	case creatureCount == 2:
		return 1.5
	case creatureCount <= 6:
		return 2
	case creatureCount <= 10:
		return 2.5
	case creatureCount <= 14:
		return 3
	default:
		return 4
	}
}

// CalculateDifficulty scores the participant set against the DMG
// encounter-building tables. It returns nil when there is nothing to
// compare: no leveled party members or no rated creatures.
//
// A dmpc with both a level and a challenge rating counts purely as a
// creature, so it is never double counted.
func CalculateDifficulty(participants []*entities.Participant) *DifficultyInfo {
	var players, creatures []*entities.Participant
	for _, p := range participants {
		switch p.Type {
		case entities.TypeCreature:
			if p.CR != nil {
				creatures = append(creatures, p)
			}
		case entities.TypeDMPC:
			if p.CR != nil {
				creatures = append(creatures, p)
			} else if p.Level != nil && *p.Level != 0 {
				players = append(players, p)
			}
		case entities.TypePlayer:
			if p.Level != nil && *p.Level != 0 {
				players = append(players, p)
			}
		}
	}

	if len(players) == 0 || len(creatures) == 0 {
		return nil
	}

	var party Thresholds
	for _, p := range players {
		idx := *p.Level - 1
		if idx < 0 || idx >= len(xpThresholds) {
			// Levels outside 1-20 contribute nothing.
			continue
		}
		t := xpThresholds[idx]
		party.Easy += t[0]
		party.Medium += t[1]
		party.Hard += t[2]
		party.Deadly += t[3]
	}

	totalRawXP := 0
	for _, c := range creatures {
		totalRawXP += XPForCR(*c.CR)
	}

	adjustedXP := int(math.Floor(float64(totalRawXP) * EncounterMultiplier(len(creatures))))

	difficulty := Trivial
	switch {
	case adjustedXP >= party.Deadly:
		difficulty = Deadly
	case adjustedXP >= party.Hard:
		difficulty = Hard
	case adjustedXP >= party.Medium:
		difficulty = Medium
	case adjustedXP >= party.Easy:
		difficulty = Easy
	}

	return &DifficultyInfo{
		Difficulty:      difficulty,
		AdjustedXP:      adjustedXP,
		TotalRawXP:      totalRawXP,
		PartyThresholds: party,
		PlayerCount:     len(players),
		CreatureCount:   len(creatures),
	}
}
