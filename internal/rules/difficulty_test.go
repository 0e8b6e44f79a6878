package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmgrid/encounter-api/internal/entities"
	"github.com/dmgrid/encounter-api/internal/rules"
)

func player(level int) *entities.Participant {
	return &entities.Participant{
		Name:  "Player",
		Type:  entities.TypePlayer,
		Level: &level,
	}
}

func creature(cr float64) *entities.Participant {
	return &entities.Participant{
		Name: "Creature",
		Type: entities.TypeCreature,
		CR:   &cr,
	}
}

func TestCalculateDifficulty_NilWhenNoCreatures(t *testing.T) {
	info := rules.CalculateDifficulty([]*entities.Participant{player(1), player(4)})
	assert.Nil(t, info)
}

func TestCalculateDifficulty_NilWhenNoPlayers(t *testing.T) {
	info := rules.CalculateDifficulty([]*entities.Participant{creature(1), creature(2)})
	assert.Nil(t, info)
}

func TestCalculateDifficulty_SinglePlayerSingleCreature(t *testing.T) {
	info := rules.CalculateDifficulty([]*entities.Participant{player(1), creature(1)})

	require.NotNil(t, info)
	assert.Equal(t, 200, info.TotalRawXP)
	assert.Equal(t, 200, info.AdjustedXP, "one creature keeps the x1 multiplier")
	assert.Equal(t, rules.Thresholds{Easy: 25, Medium: 50, Hard: 75, Deadly: 100}, info.PartyThresholds)
	assert.Equal(t, rules.Deadly, info.Difficulty)
	assert.Equal(t, 1, info.PlayerCount)
	assert.Equal(t, 1, info.CreatureCount)
}

func TestCalculateDifficulty_MultiplierByCreatureCount(t *testing.T) {
	// Four level-5 players against three CR-1 creatures: raw 600,
	// multiplier x2 for 3-6 creatures.
	participants := []*entities.Participant{
		player(5), player(5), player(5), player(5),
		creature(1), creature(1), creature(1),
	}

	info := rules.CalculateDifficulty(participants)

	require.NotNil(t, info)
	assert.Equal(t, 600, info.TotalRawXP)
	assert.Equal(t, 1200, info.AdjustedXP)
	assert.Equal(t, rules.Thresholds{Easy: 1000, Medium: 2000, Hard: 3000, Deadly: 4400}, info.PartyThresholds)
	assert.Equal(t, rules.Easy, info.Difficulty)
}

func TestCalculateDifficulty_TrivialBelowAllThresholds(t *testing.T) {
	cr := 0.0
	participants := []*entities.Participant{
		player(10),
		{Name: "Rat", Type: entities.TypeCreature, CR: &cr},
	}

	info := rules.CalculateDifficulty(participants)

	require.NotNil(t, info)
	assert.Equal(t, 10, info.TotalRawXP)
	assert.Equal(t, rules.Trivial, info.Difficulty)
}

func TestCalculateDifficulty_DMPCWithCRCountsAsCreature(t *testing.T) {
	level := 5
	cr := 2.0
	dmpc := &entities.Participant{
		Name:  "Villain",
		Type:  entities.TypeDMPC,
		Level: &level,
		CR:    &cr,
	}

	info := rules.CalculateDifficulty([]*entities.Participant{player(3), dmpc})

	require.NotNil(t, info)
	assert.Equal(t, 1, info.PlayerCount, "dmpc with CR must not double count as a player")
	assert.Equal(t, 1, info.CreatureCount)
	assert.Equal(t, 450, info.TotalRawXP)
}

func TestCalculateDifficulty_DMPCWithLevelOnlyCountsAsPlayer(t *testing.T) {
	level := 4
	dmpc := &entities.Participant{
		Name:  "Ally",
		Type:  entities.TypeDMPC,
		Level: &level,
	}

	info := rules.CalculateDifficulty([]*entities.Participant{dmpc, creature(0.5)})

	require.NotNil(t, info)
	assert.Equal(t, 1, info.PlayerCount)
	assert.Equal(t, 100, info.TotalRawXP)
}

func TestCalculateDifficulty_OutOfRangeLevelIgnored(t *testing.T) {
	info := rules.CalculateDifficulty([]*entities.Participant{player(25), player(1), creature(1)})

	require.NotNil(t, info)
	assert.Equal(t, 2, info.PlayerCount)
	assert.Equal(t, rules.Thresholds{Easy: 25, Medium: 50, Hard: 75, Deadly: 100}, info.PartyThresholds,
		"level 25 contributes nothing to the thresholds")
}

func TestCalculateDifficulty_UnmappedCRContributesZero(t *testing.T) {
	info := rules.CalculateDifficulty([]*entities.Participant{player(1), creature(0.3)})

	require.NotNil(t, info)
	assert.Equal(t, 0, info.TotalRawXP)
	assert.Equal(t, rules.Trivial, info.Difficulty)
}

func TestEncounterMultiplier(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 1}, {1, 1}, {2, 1.5}, {3, 2}, {6, 2}, {7, 2.5},
		{10, 2.5}, {11, 3}, {14, 3}, {15, 4}, {40, 4},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, rules.EncounterMultiplier(tc.count), "count %d", tc.count)
	}
}

func TestParseChallengeRating(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"1/8", 0.125},
		{"1/4", 0.25},
		{"1/2", 0.5},
		{"0.25", 0.25},
		{" 5 ", 5},
		{"30", 30},
	}

	for _, tc := range tests {
		got, err := rules.ParseChallengeRating(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseChallengeRating_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1/0", "1/x", "x/2"} {
		_, err := rules.ParseChallengeRating(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFormatChallengeRating(t *testing.T) {
	assert.Equal(t, "1/8", rules.FormatChallengeRating(0.125))
	assert.Equal(t, "1/4", rules.FormatChallengeRating(0.25))
	assert.Equal(t, "1/2", rules.FormatChallengeRating(0.5))
	assert.Equal(t, "0", rules.FormatChallengeRating(0))
	assert.Equal(t, "17", rules.FormatChallengeRating(17))
}
