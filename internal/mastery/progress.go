package mastery

import (
	"fmt"

	"mastery-dashboard/internal/domain"
)

const maxMasteryLevel = 7

// ProgressState classifies where a mastery record sits on the path to
// the next level.
type ProgressState string

const (
	// StateInProgress: still accumulating points toward the next level.
	StateInProgress ProgressState = "in-progress"
	// StateReadyToLevel: points threshold reached (until-next is zero or
	// negative), waiting on tokens.
	StateReadyToLevel ProgressState = "ready-to-level"
	// StateMaxLevel: level 7, no further progression.
	StateMaxLevel ProgressState = "max-level"
)

// Progress is the derived progress-bar model for one mastery record.
// Percent is 100 at max level and when waiting on tokens; ShowBar is
// false at max level (there is nothing left to fill).
type Progress struct {
	State           ProgressState `json:"state"`
	Percent         float64       `json:"percent"`
	PointsIntoLevel int           `json:"pointsIntoLevel"`
	LevelSpan       int           `json:"levelSpan"`
	TokensEarned    int           `json:"tokensEarned"`
	TokensNeeded    int           `json:"tokensNeeded"`
	ShowBar         bool          `json:"showBar"`
}

// ProgressOf derives the progress model. Null points-until-next (or a
// level-7 record, where the upstream sends 0 or null interchangeably)
// means max level. Zero or negative means the champion is at or past the
// threshold and only tokens gate the level-up.
func ProgressOf(rec domain.MasteryRecord) Progress {
	if rec.ChampionLevel >= maxMasteryLevel || rec.PointsUntilNextLevel == nil {
		return Progress{State: StateMaxLevel, Percent: 100}
	}

	since := 0
	if rec.PointsSinceLastLevel != nil {
		since = *rec.PointsSinceLastLevel
	}
	until := *rec.PointsUntilNextLevel

	if until <= 0 {
		return Progress{
			State:           StateReadyToLevel,
			Percent:         100,
			PointsIntoLevel: since,
			LevelSpan:       since,
			TokensEarned:    rec.TokensEarned,
			TokensNeeded:    tokensNeeded(rec.ChampionLevel),
			ShowBar:         true,
		}
	}

	span := since + until
	percent := 0.0
	if span > 0 {
		percent = float64(since) / float64(span) * 100
	}
	return Progress{
		State:           StateInProgress,
		Percent:         percent,
		PointsIntoLevel: since,
		LevelSpan:       span,
		TokensEarned:    rec.TokensEarned,
		TokensNeeded:    tokensNeeded(rec.ChampionLevel),
		ShowBar:         true,
	}
}

// Levels 5 -> 6 take two tokens, 6 -> 7 take three.
func tokensNeeded(level int) int {
	if level >= 6 {
		return 3
	}
	return 2
}

// FormatPoints renders a point total the way the dashboard cards do:
// 2.3M, 145K, 980.
func FormatPoints(points int64) string {
	switch {
	case points >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(points)/1_000_000)
	case points >= 1_000:
		return fmt.Sprintf("%.0fK", float64(points)/1_000)
	default:
		return fmt.Sprintf("%d", points)
	}
}
