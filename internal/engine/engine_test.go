package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dmgrid/encounter-api/internal/engine"
	"github.com/dmgrid/encounter-api/internal/entities"
	"github.com/dmgrid/encounter-api/internal/pkg/idgen"
)

type EngineTestSuite struct {
	suite.Suite
	enc *engine.Encounter
}

func (s *EngineTestSuite) SetupTest() {
	enc, err := engine.New(&engine.Config{
		IDGenerator: idgen.NewSequential("test"),
	})
	s.Require().NoError(err)
	s.enc = enc
}

func intPtr(v int) *int { return &v }

func (s *EngineTestSuite) addPlayer(name string, initiative, hp, maxHP int) string {
	ids := s.enc.AddParticipants([]*entities.Participant{{
		Name:       name,
		Type:       entities.TypePlayer,
		Initiative: initiative,
		HP:         intPtr(hp),
		MaxHP:      intPtr(maxHP),
	}})
	return ids[0]
}

func (s *EngineTestSuite) addCreature(name string, initiative, hp, maxHP int) string {
	ids := s.enc.AddParticipants([]*entities.Participant{{
		Name:       name,
		Type:       entities.TypeCreature,
		Initiative: initiative,
		HP:         intPtr(hp),
		MaxHP:      intPtr(maxHP),
	}})
	return ids[0]
}

func (s *EngineTestSuite) names(order []*entities.Participant) []string {
	out := make([]string, len(order))
	for i, p := range order {
		out[i] = p.Name
	}
	return out
}

func (s *EngineTestSuite) activeName() string {
	order := s.enc.Order()
	idx := s.enc.CurrentIndex()
	s.Require().GreaterOrEqual(idx, 0)
	return order[idx].Name
}

// ---- Turn order resolver ----

func (s *EngineTestSuite) TestOrder_InitiativeDescending() {
	s.addPlayer("Cleric", 12, 20, 20)
	s.addPlayer("Rogue", 21, 15, 15)
	s.addPlayer("Fighter", 17, 30, 30)

	s.Equal([]string{"Rogue", "Fighter", "Cleric"}, s.names(s.enc.Order()))
}

func (s *EngineTestSuite) TestOrder_DexterityBreaksTies() {
	dexLow, dexHigh := 1, 4
	s.enc.AddParticipants([]*entities.Participant{
		{Name: "Slow", Type: entities.TypeCreature, Initiative: 15, DexterityModifier: &dexLow},
		{Name: "Fast", Type: entities.TypeCreature, Initiative: 15, DexterityModifier: &dexHigh},
	})

	s.Equal([]string{"Fast", "Slow"}, s.names(s.enc.Order()))
}

func (s *EngineTestSuite) TestOrder_MissingModifierSortsLast() {
	dex := -2
	s.enc.AddParticipants([]*entities.Participant{
		{Name: "Unknown", Type: entities.TypeCreature, Initiative: 15},
		{Name: "Clumsy", Type: entities.TypeCreature, Initiative: 15, DexterityModifier: &dex},
	})

	s.Equal([]string{"Clumsy", "Unknown"}, s.names(s.enc.Order()),
		"a defined modifier beats a missing one even when negative")
}

func (s *EngineTestSuite) TestOrder_NameBreaksRemainingTies() {
	s.addPlayer("Zed", 10, 10, 10)
	s.addPlayer("Anna", 10, 10, 10)
	s.addPlayer("Mira", 10, 10, 10)

	s.Equal([]string{"Anna", "Mira", "Zed"}, s.names(s.enc.Order()))
}

func (s *EngineTestSuite) TestOrder_Deterministic() {
	s.addPlayer("Anna", 10, 10, 10)
	s.addCreature("Wolf", 10, 11, 11)
	s.addCreature("Bear", 14, 34, 34)

	first := s.names(s.enc.Order())
	for i := 0; i < 5; i++ {
		s.Equal(first, s.names(s.enc.Order()))
	}
}

func (s *EngineTestSuite) TestUnresolvedTies_FlaggedOnlyWhenModifierMissing() {
	dex := 2
	s.enc.AddParticipants([]*entities.Participant{
		{Name: "A", Type: entities.TypeCreature, Initiative: 15, DexterityModifier: &dex},
		{Name: "B", Type: entities.TypeCreature, Initiative: 15},
		{Name: "C", Type: entities.TypeCreature, Initiative: 9, DexterityModifier: &dex},
		{Name: "D", Type: entities.TypeCreature, Initiative: 9, DexterityModifier: &dex},
		{Name: "E", Type: entities.TypeCreature, Initiative: 3},
	})

	ties := s.enc.UnresolvedTies()
	s.Require().Len(ties, 1, "the all-modifier tie at 9 is legitimate and the lone 3 is no tie")
	s.Len(ties[0], 2)
	s.Equal(15, ties[0][0].Initiative)
}

func (s *EngineTestSuite) TestSetDexterityModifiers_ResolvesTie() {
	s.addCreature("Goblin A", 15, 7, 7)
	s.addCreature("Goblin B", 15, 7, 7)
	s.Require().Len(s.enc.UnresolvedTies(), 1)

	order := s.enc.Order()
	s.enc.SetDexterityModifiers(map[string]int{
		order[0].ID: 2,
		order[1].ID: 1,
	})

	s.Empty(s.enc.UnresolvedTies())
}

func (s *EngineTestSuite) TestSetDexterityModifiers_KeepsExistingModifier() {
	known := 3
	ids := s.enc.AddParticipants([]*entities.Participant{
		{Name: "Goblin A", Type: entities.TypeCreature, Initiative: 15, DexterityModifier: &known},
		{Name: "Goblin B", Type: entities.TypeCreature, Initiative: 15},
	})

	s.enc.SetDexterityModifiers(map[string]int{
		ids[0]: 0,
		ids[1]: 1,
	})

	s.Empty(s.enc.UnresolvedTies())
	for _, p := range s.enc.Order() {
		switch p.ID {
		case ids[0]:
			s.Equal(3, *p.DexterityModifier, "existing modifier must survive resolution")
		case ids[1]:
			s.Equal(1, *p.DexterityModifier)
		}
	}
}

// ---- HP and temp HP ----

func (s *EngineTestSuite) TestApplyDamage_ClampsAtZero() {
	id := s.addPlayer("Fighter", 10, 12, 30)

	s.enc.ApplyDamage(id, 50)

	p := s.enc.Order()[0]
	s.Equal(0, *p.HP)
}

func (s *EngineTestSuite) TestApplyHealing_ClampsAtMax() {
	id := s.addPlayer("Fighter", 10, 25, 30)

	s.enc.ApplyHealing(id, 100)

	p := s.enc.Order()[0]
	s.Equal(30, *p.HP)
}

func (s *EngineTestSuite) TestApplyDamage_NonPositiveAmountIsNoOp() {
	id := s.addPlayer("Fighter", 10, 12, 30)
	logged := len(s.enc.Snapshot().CombatLog)

	s.True(s.enc.ApplyDamage(id, 0))
	s.True(s.enc.ApplyDamage(id, -4))

	p := s.enc.Order()[0]
	s.Equal(12, *p.HP)
	s.Len(s.enc.Snapshot().CombatLog, logged)
}

func (s *EngineTestSuite) TestApplyHealing_UntrackedHPIsNoOp() {
	ids := s.enc.AddParticipants([]*entities.Participant{{
		Name:       "Wraith",
		Type:       entities.TypeCreature,
		Initiative: 14,
	}})

	s.True(s.enc.ApplyHealing(ids[0], 10))

	s.Nil(s.enc.Order()[0].HP)
}

func (s *EngineTestSuite) TestApplyDamage_TempHPAbsorbsFirst() {
	id := s.addPlayer("Fighter", 10, 20, 30)
	s.enc.SetTempHP(id, 8)

	s.enc.ApplyDamage(id, 5)

	p := s.enc.Order()[0]
	s.Equal(20, *p.HP, "damage within the buffer leaves HP untouched")
	s.Equal(3, p.TempHP)
}

func (s *EngineTestSuite) TestApplyDamage_OverflowsTempHP() {
	id := s.addPlayer("Fighter", 10, 20, 30)
	s.enc.SetTempHP(id, 8)

	s.enc.ApplyDamage(id, 13)

	p := s.enc.Order()[0]
	s.Equal(0, p.TempHP)
	s.Equal(15, *p.HP)
}

func (s *EngineTestSuite) TestDamageAndDeathLogged() {
	id := s.addPlayer("Fighter", 10, 5, 30)

	s.enc.ApplyDamage(id, 5)

	log := s.enc.Snapshot().CombatLog
	s.Require().Len(log, 2)
	s.Equal(entities.LogDamage, log[0].Type)
	s.Equal("Fighter takes 5 damage.", log[0].Message)
	s.Equal(entities.LogDeath, log[1].Type)
	s.Equal("Fighter has been defeated!", log[1].Message)
}

func (s *EngineTestSuite) TestHealingLogged() {
	id := s.addPlayer("Fighter", 10, 10, 30)

	s.enc.ApplyHealing(id, 7)

	log := s.enc.Snapshot().CombatLog
	s.Require().Len(log, 1)
	s.Equal(entities.LogHealing, log[0].Type)
	s.Equal("Fighter heals for 7 hit points.", log[0].Message)
}

func (s *EngineTestSuite) TestTempHPGainLogged() {
	id := s.addPlayer("Fighter", 10, 10, 30)

	s.enc.SetTempHP(id, 6)
	s.enc.SetTempHP(id, 2)

	log := s.enc.Snapshot().CombatLog
	s.Require().Len(log, 1, "reductions are not logged")
	s.Equal("Fighter gains 6 temporary hit points.", log[0].Message)
}

func (s *EngineTestSuite) TestUpdate_MaxHPReclampsHP() {
	id := s.addPlayer("Fighter", 10, 28, 30)

	s.enc.Update(id, &engine.ParticipantUpdate{MaxHP: intPtr(20)})

	p := s.enc.Order()[0]
	s.Equal(20, *p.HP)
}

// ---- Combat lifecycle ----

func (s *EngineTestSuite) TestStart_EmptyIsNoOp() {
	s.False(s.enc.Start())
	s.Equal(0, s.enc.Round())
	s.Equal(-1, s.enc.CurrentIndex())
}

func (s *EngineTestSuite) TestStart() {
	s.addPlayer("Rogue", 21, 15, 15)
	s.addPlayer("Cleric", 12, 20, 20)

	s.Require().True(s.enc.Start())

	s.Equal(1, s.enc.Round())
	s.Equal(0, s.enc.CurrentIndex())
	s.Equal("Rogue", s.activeName())

	log := s.enc.Snapshot().CombatLog
	s.Require().Len(log, 2)
	s.Equal(entities.LogInfo, log[0].Type)
	s.Equal("Combat has started! Round 1 begins.", log[0].Message)
	s.Equal("System", log[0].ActorName)
	s.Equal(entities.LogTurnStart, log[1].Type)
	s.Equal("It is now Rogue's turn.", log[1].Message)
	s.Equal("Rogue", log[1].ActorName)
}

func (s *EngineTestSuite) TestNextTurn_RoundWraparound() {
	s.addPlayer("A", 20, 10, 10)
	s.addPlayer("B", 15, 10, 10)
	s.addPlayer("C", 10, 10, 10)
	s.Require().True(s.enc.Start())

	for i := 0; i < 3; i++ {
		s.Require().True(s.enc.NextTurn())
	}

	s.Equal(0, s.enc.CurrentIndex(), "N advances return to the top")
	s.Equal(2, s.enc.Round())
}

func (s *EngineTestSuite) TestPreviousTurn_AcrossRoundBoundary() {
	s.addPlayer("A", 20, 10, 10)
	s.addPlayer("B", 15, 10, 10)
	s.addPlayer("C", 10, 10, 10)
	s.Require().True(s.enc.Start())
	for i := 0; i < 3; i++ {
		s.enc.NextTurn()
	}
	s.Require().Equal(2, s.enc.Round())

	s.Require().True(s.enc.PreviousTurn())

	s.Equal(1, s.enc.Round())
	s.Equal(2, s.enc.CurrentIndex())
}

func (s *EngineTestSuite) TestPreviousTurn_RoundNeverBelowOne() {
	s.addPlayer("A", 20, 10, 10)
	s.addPlayer("B", 15, 10, 10)
	s.Require().True(s.enc.Start())

	s.Require().True(s.enc.PreviousTurn())

	s.Equal(1, s.enc.Round())
	s.Equal(1, s.enc.CurrentIndex())
}

func (s *EngineTestSuite) TestNextTurn_BeforeStartIsNoOp() {
	s.addPlayer("A", 20, 10, 10)
	s.False(s.enc.NextTurn())
	s.Equal(-1, s.enc.CurrentIndex())
}

func (s *EngineTestSuite) TestConditionDecay() {
	id := s.addPlayer("A", 20, 10, 10)
	s.addPlayer("B", 15, 10, 10)
	s.Require().True(s.enc.Start())

	s.enc.AddCondition(id, "Stunned", 1)
	s.enc.AddCondition(id, "Cursed", entities.PermanentDuration)

	// Two advances cross the round boundary once.
	s.enc.NextTurn()
	s.enc.NextTurn()

	p := s.enc.Order()[0]
	s.Require().Len(p.Conditions, 1, "the one-round condition expired")
	s.Equal("Cursed", p.Conditions[0].Name)

	for i := 0; i < 6; i++ {
		s.enc.NextTurn()
	}
	p = s.enc.Order()[0]
	s.Require().Len(p.Conditions, 1, "permanent conditions survive every round")
}

func (s *EngineTestSuite) TestLegendaryActionsResetOnOwnTurn() {
	ids := s.enc.AddParticipants([]*entities.Participant{
		{Name: "Dragon", Type: entities.TypeCreature, Initiative: 20,
			LegendaryActions: 3, LegendaryResistances: 2},
		{Name: "Rogue", Type: entities.TypePlayer, Initiative: 10},
	})
	s.Require().True(s.enc.Start())

	// Dragon spends resources during the rogue's turn.
	s.enc.NextTurn()
	s.enc.Update(ids[0], &engine.ParticipantUpdate{
		LegendaryActionsUsed:     intPtr(2),
		LegendaryResistancesUsed: intPtr(1),
	})

	// Back to the dragon: counters reset, silently.
	before := len(s.enc.Snapshot().CombatLog)
	s.enc.NextTurn()

	dragon := s.enc.Order()[0]
	s.Equal(0, dragon.LegendaryActionsUsed)
	s.Equal(0, dragon.LegendaryResistancesUsed)

	log := s.enc.Snapshot().CombatLog
	// Round marker plus turn_start only; no entry for the reset.
	s.Len(log, before+2)
}

func (s *EngineTestSuite) TestLegendaryUsedNeverExceedsCapacity() {
	ids := s.enc.AddParticipants([]*entities.Participant{
		{Name: "Dragon", Type: entities.TypeCreature, Initiative: 20, LegendaryActions: 3},
	})

	s.enc.Update(ids[0], &engine.ParticipantUpdate{LegendaryActionsUsed: intPtr(9)})

	s.Equal(3, s.enc.Order()[0].LegendaryActionsUsed)
}

func (s *EngineTestSuite) TestEndCombat_Filter() {
	s.addPlayer("Hero", 20, 0, 30) // defeated player stays
	richID := s.addCreature("Rich Goblin", 15, 1, 7)
	s.enc.Update(richID, &engine.ParticipantUpdate{
		Inventory: &[]entities.InventoryItem{{Name: "Gold", Amount: 20}},
	})
	s.addCreature("Poor Goblin", 12, 1, 7)
	s.addCreature("Survivor", 9, 7, 7)
	s.Require().True(s.enc.Start())

	s.enc.ApplyDamage(richID, 10)
	order := s.enc.Order()
	for _, p := range order {
		if p.Name == "Poor Goblin" {
			s.enc.ApplyDamage(p.ID, 10)
		}
	}

	s.Require().True(s.enc.EndCombat())

	s.Equal(0, s.enc.Round())
	s.Equal(-1, s.enc.CurrentIndex())
	s.ElementsMatch([]string{"Hero", "Rich Goblin", "Survivor"}, s.names(s.enc.Order()))
}

func (s *EngineTestSuite) TestLongRest() {
	id := s.addPlayer("Hero", 20, 3, 30)
	s.enc.SetTempHP(id, 5)
	s.enc.AddCondition(id, "Poisoned", 3)
	s.enc.AddParticipants([]*entities.Participant{
		{Name: "Dragon", Type: entities.TypeCreature, Initiative: 10,
			HP: intPtr(50), MaxHP: intPtr(80), LegendaryActions: 3, LegendaryActionsUsed: 2},
	})
	s.Require().True(s.enc.Start())

	s.enc.LongRest()

	s.Equal(0, s.enc.Round())
	s.Equal(-1, s.enc.CurrentIndex())
	for _, p := range s.enc.Order() {
		s.Equal(*p.MaxHP, *p.HP)
		s.Equal(0, p.TempHP)
		s.Empty(p.Conditions)
		s.Equal(0, p.LegendaryActionsUsed)
	}

	log := s.enc.Snapshot().CombatLog
	s.Require().Len(log, 1)
	s.Equal("Combat has been reset.", log[0].Message)
	s.Equal("System", log[0].ActorName)
}

func (s *EngineTestSuite) TestClear() {
	s.addPlayer("Hero", 20, 30, 30)
	s.Require().True(s.enc.Start())

	s.enc.Clear()

	s.Zero(s.enc.Len())
	s.Equal(0, s.enc.Round())
	log := s.enc.Snapshot().CombatLog
	s.Require().Len(log, 1)
	s.Equal("Battlefield has been cleared.", log[0].Message)
}

// ---- Removal ----

func (s *EngineTestSuite) TestRemove_BeforeActiveKeepsActive() {
	s.addPlayer("A", 20, 10, 10)
	s.addPlayer("B", 15, 10, 10)
	s.addPlayer("C", 10, 10, 10)
	s.Require().True(s.enc.Start())
	s.enc.NextTurn() // active: B

	order := s.enc.Order()
	s.enc.Remove(order[0].ID) // remove A

	s.Equal("B", s.activeName())
	s.Equal(0, s.enc.CurrentIndex())
	s.Equal(1, s.enc.Round())
}

func (s *EngineTestSuite) TestRemove_ActiveMidOrderPassesTurn() {
	s.addPlayer("A", 20, 10, 10)
	s.addPlayer("B", 15, 10, 10)
	s.addPlayer("C", 10, 10, 10)
	s.Require().True(s.enc.Start())
	s.enc.NextTurn() // active: B

	order := s.enc.Order()
	s.enc.Remove(order[1].ID) // remove B itself

	s.Equal("C", s.activeName())
	s.Equal(1, s.enc.Round())
}

func (s *EngineTestSuite) TestRemove_ActiveLastWrapsAndIncrementsRound() {
	s.addPlayer("A", 20, 10, 10)
	s.addPlayer("B", 15, 10, 10)
	s.addPlayer("C", 10, 10, 10)
	s.Require().True(s.enc.Start())
	s.enc.NextTurn()
	s.enc.NextTurn() // active: C, last in order

	order := s.enc.Order()
	s.enc.Remove(order[2].ID)

	s.Equal("A", s.activeName())
	s.Equal(0, s.enc.CurrentIndex())
	s.Equal(2, s.enc.Round())
}

func (s *EngineTestSuite) TestRemove_LastParticipantResets() {
	id := s.addPlayer("A", 20, 10, 10)
	s.Require().True(s.enc.Start())

	s.enc.Remove(id)

	s.Zero(s.enc.Len())
	s.Equal(0, s.enc.Round())
	s.Equal(-1, s.enc.CurrentIndex())
}

// ---- Groups ----

func (s *EngineTestSuite) TestGroup_SynchronizesInitiative() {
	a := s.addCreature("Goblin A", 18, 7, 7)
	b := s.addCreature("Goblin B", 11, 7, 7)
	s.addCreature("Ogre", 9, 30, 30)

	s.Require().True(s.enc.Group([]string{a, b}, "red"))

	order := s.enc.Order()
	for _, p := range order {
		switch p.Name {
		case "Goblin A", "Goblin B":
			s.Equal(18, p.Initiative, "group adopts the first member's initiative")
			s.Require().NotNil(p.Group)
			s.Equal("Goblin A Group", p.Group.Name)
		case "Ogre":
			s.Equal(9, p.Initiative)
			s.Nil(p.Group)
		}
	}
}

func (s *EngineTestSuite) TestGroupInitiative_PropagatesOnUpdate() {
	a := s.addCreature("Goblin A", 18, 7, 7)
	b := s.addCreature("Goblin B", 18, 7, 7)
	s.addCreature("Ogre", 9, 30, 30)
	s.Require().True(s.enc.Group([]string{a, b}, "red"))

	s.enc.Update(b, &engine.ParticipantUpdate{Initiative: intPtr(3)})

	for _, p := range s.enc.Order() {
		switch p.Name {
		case "Goblin A", "Goblin B":
			s.Equal(3, p.Initiative)
		case "Ogre":
			s.Equal(9, p.Initiative, "participants outside the group are untouched")
		}
	}
}

func (s *EngineTestSuite) TestUngroup_LeavesInitiative() {
	a := s.addCreature("Goblin A", 18, 7, 7)
	b := s.addCreature("Goblin B", 11, 7, 7)
	s.Require().True(s.enc.Group([]string{a, b}, "red"))

	s.enc.Ungroup([]string{a, b})

	for _, p := range s.enc.Order() {
		s.Nil(p.Group)
		s.Equal(18, p.Initiative, "initiative stays as last synchronized")
	}
}

func (s *EngineTestSuite) TestGroup_RequiresTwo() {
	a := s.addCreature("Goblin A", 18, 7, 7)
	s.False(s.enc.Group([]string{a}, "red"))
}

// ---- Active identity under reorder ----

func (s *EngineTestSuite) TestInitiativeChangePreservesActiveIdentity() {
	s.addPlayer("A", 20, 10, 10)
	b := s.addPlayer("B", 15, 10, 10)
	s.addPlayer("C", 10, 10, 10)
	s.Require().True(s.enc.Start())
	s.enc.NextTurn() // active: B at index 1

	// B jumps to the top of the order.
	s.enc.Update(b, &engine.ParticipantUpdate{Initiative: intPtr(30)})

	s.Equal("B", s.activeName())
	s.Equal(0, s.enc.CurrentIndex())
}

// ---- Mobs ----

func (s *EngineTestSuite) TestMobUnitCountRewrite() {
	ids := s.enc.AddParticipants([]*entities.Participant{{
		Name:            "Skeletons (x4)",
		Type:            entities.TypeCreature,
		Initiative:      12,
		HP:              intPtr(24),
		MaxHP:           intPtr(24),
		IndividualMaxHP: 6,
	}})

	s.enc.ApplyDamage(ids[0], 7)

	p := s.enc.Order()[0]
	s.Equal("Skeletons (x3)", p.Name)
	s.Equal(17, *p.HP)

	s.enc.ApplyDamage(ids[0], 17)
	s.Equal("Skeletons (x0)", s.enc.Order()[0].Name)
}

// ---- Snapshot / restore ----

func (s *EngineTestSuite) TestSnapshotRestoreRoundTrip() {
	s.addPlayer("A", 20, 10, 10)
	b := s.addPlayer("B", 15, 10, 10)
	s.enc.AddCondition(b, "Blessed", entities.PermanentDuration)
	s.Require().True(s.enc.Start())
	s.enc.NextTurn()

	snap := s.enc.Snapshot()
	s.Equal(1, snap.CurrentIndex)
	s.Equal(1, snap.Round)

	fresh, err := engine.New(&engine.Config{IDGenerator: idgen.NewSequential("fresh")})
	s.Require().NoError(err)
	fresh.Restore(snap)

	s.Equal(1, fresh.CurrentIndex())
	s.Equal(1, fresh.Round())
	s.Equal(s.names(s.enc.Order()), s.names(fresh.Order()))
	s.Equal(len(snap.CombatLog), len(fresh.Snapshot().CombatLog))
}

func (s *EngineTestSuite) TestSnapshotIsDeepCopy() {
	id := s.addPlayer("A", 20, 10, 10)

	snap := s.enc.Snapshot()
	*snap.Participants[0].HP = 1

	s.enc.ApplyDamage(id, 2)
	s.Equal(8, *s.enc.Order()[0].HP, "mutating a snapshot must not touch engine state")
}

func (s *EngineTestSuite) TestRemoveLogsEntry() {
	id := s.addPlayer("A", 20, 10, 10)
	s.addPlayer("B", 15, 10, 10)

	s.enc.Remove(id)

	log := s.enc.Snapshot().CombatLog
	s.Require().Len(log, 1)
	s.Equal("A was removed from combat.", log[0].Message)
	s.Equal(entities.LogInfo, log[0].Type)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
