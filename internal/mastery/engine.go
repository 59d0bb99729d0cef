package mastery

import (
	"fmt"
	"sort"
	"strings"

	"mastery-dashboard/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of the derived view.
type SortKey string

const (
	SortPointsDesc SortKey = "points-desc"
	SortPointsAsc  SortKey = "points-asc"
	SortLevelDesc  SortKey = "level-desc"
	SortLevelAsc   SortKey = "level-asc"
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
)

// ParseSortKey accepts the wire form of a sort key; empty means the
// default points-desc.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortPointsDesc, nil
	case SortPointsDesc, SortPointsAsc, SortLevelDesc, SortLevelAsc, SortNameAsc, SortNameDesc:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Criteria is the full filter/sort selection. The zero value means
// "show everything, highest points first".
type Criteria struct {
	// Case-insensitive substring match on the resolved champion name.
	SearchTerm string
	// Exact mastery level 1..7; 0 means all levels.
	LevelFilter int
	ChestsOnly  bool
	SortKey     SortKey
}

// NameResolver maps a champion id to its display name.
type NameResolver func(championID int) string

// DeriveView filters and orders a raw mastery list. Filters apply in a
// fixed order (search, level, chests) and the sort runs last over the
// reduced set. The sort is stable: ties keep their incoming relative
// order, so identical inputs always produce identical output. The input
// slice is never mutated.
func DeriveView(records []domain.MasteryRecord, c Criteria, nameOf NameResolver) []domain.MasteryRecord {
	type entry struct {
		rec  domain.MasteryRecord
		name string
	}

	entries := make([]entry, 0, len(records))
	term := strings.ToLower(strings.TrimSpace(c.SearchTerm))
	for _, rec := range records {
		name := nameOf(rec.ChampionID)
		if term != "" && !strings.Contains(strings.ToLower(name), term) {
			continue
		}
		if c.LevelFilter != 0 && rec.ChampionLevel != c.LevelFilter {
			continue
		}
		if c.ChestsOnly && !rec.IsChestAvailable {
			continue
		}
		entries = append(entries, entry{rec: rec, name: name})
	}

	key := c.SortKey
	if key == "" {
		key = SortPointsDesc
	}

	// Collators carry internal buffers, so build one per call rather
	// than sharing.
	var coll *collate.Collator
	if key == SortNameAsc || key == SortNameDesc {
		coll = collate.New(language.English)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch key {
		case SortPointsAsc:
			return a.rec.ChampionPoints < b.rec.ChampionPoints
		case SortLevelDesc:
			return a.rec.ChampionLevel > b.rec.ChampionLevel
		case SortLevelAsc:
			return a.rec.ChampionLevel < b.rec.ChampionLevel
		case SortNameAsc:
			return coll.CompareString(a.name, b.name) < 0
		case SortNameDesc:
			return coll.CompareString(a.name, b.name) > 0
		default: // SortPointsDesc
			return a.rec.ChampionPoints > b.rec.ChampionPoints
		}
	})

	out := make([]domain.MasteryRecord, len(entries))
	for i, e := range entries {
		out[i] = e.rec
	}
	return out
}
