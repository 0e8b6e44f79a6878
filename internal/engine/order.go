package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmgrid/encounter-api/internal/entities"
)

const minDex = -1 << 31

// dexOf returns the tie-break key for a participant. A missing
// modifier sorts after every defined one at the same initiative.
func dexOf(p *entities.Participant) int {
	if p.DexterityModifier == nil {
		return minDex
	}
	return *p.DexterityModifier
}

func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// sortOrder produces the derived turn order: initiative descending,
// then dexterity modifier descending, then name ascending with
// locale-aware comparison. The input slice is not modified.
func sortOrder(participants []*entities.Participant, col *collate.Collator) []*entities.Participant {
	order := make([]*entities.Participant, len(participants))
	copy(order, participants)

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.Initiative != b.Initiative {
			return a.Initiative > b.Initiative
		}
		da, db := dexOf(a), dexOf(b)
		if da != db {
			return da > db
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
	return order
}

// findTies groups participants by exact initiative and returns every
// group of two or more in which at least one member has no dexterity
// modifier. A tie between participants that all carry modifiers is
// fully ordered and not flagged.
func findTies(participants []*entities.Participant) [][]*entities.Participant {
	byInitiative := make(map[int][]*entities.Participant)
	var seen []int
	for _, p := range participants {
		if _, ok := byInitiative[p.Initiative]; !ok {
			seen = append(seen, p.Initiative)
		}
		byInitiative[p.Initiative] = append(byInitiative[p.Initiative], p)
	}

	var ties [][]*entities.Participant
	for _, init := range seen {
		group := byInitiative[init]
		if len(group) < 2 {
			continue
		}
		for _, p := range group {
			if p.DexterityModifier == nil {
				ties = append(ties, group)
				break
			}
		}
	}
	return ties
}
