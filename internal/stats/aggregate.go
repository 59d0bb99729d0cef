package stats

import (
	"math"

	"mastery-dashboard/internal/domain"
)

// Summarize computes win rate and average KDA/kills/deaths/assists over
// one fetched match window. An empty window is a valid result, not an
// error: everything stays zero and nothing divides by zero. A single
// game legitimately yields 100% or 0%.
//
// Rounding mirrors the dashboard cards: win rate to one decimal, KDA to
// two, per-stat averages to one.
func Summarize(matches []domain.MatchRecord) domain.MatchSummary {
	total := len(matches)
	if total == 0 {
		return domain.MatchSummary{}
	}

	var wins int
	var kda, kills, deaths, assists float64
	for _, m := range matches {
		if m.Win {
			wins++
		}
		kda += m.KDA
		kills += float64(m.Kills)
		deaths += float64(m.Deaths)
		assists += float64(m.Assists)
	}

	n := float64(total)
	return domain.MatchSummary{
		TotalGames:     total,
		Wins:           wins,
		Losses:         total - wins,
		WinRate:        round1(float64(wins) / n * 100),
		AverageKDA:     round2(kda / n),
		AverageKills:   round1(kills / n),
		AverageDeaths:  round1(deaths / n),
		AverageAssists: round1(assists / n),
	}
}

// KDA is (kills + assists) / deaths, with deaths clamped to 1 so a
// deathless game counts kills + assists directly.
func KDA(kills, deaths, assists int) float64 {
	d := deaths
	if d < 1 {
		d = 1
	}
	return float64(kills+assists) / float64(d)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
