package stats

import (
	"testing"

	"mastery-dashboard/internal/domain"
)

func match(win bool, kills, deaths, assists int) domain.MatchRecord {
	return domain.MatchRecord{
		Win:     win,
		Kills:   kills,
		Deaths:  deaths,
		Assists: assists,
		KDA:     KDA(kills, deaths, assists),
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		matches []domain.MatchRecord
		want    domain.MatchSummary
	}{
		{
			name:    "empty window yields all zeros",
			matches: nil,
			want:    domain.MatchSummary{},
		},
		{
			name:    "single winning match is a 100% window",
			matches: []domain.MatchRecord{match(true, 10, 2, 8)},
			want: domain.MatchSummary{
				TotalGames:     1,
				Wins:           1,
				Losses:         0,
				WinRate:        100,
				AverageKDA:     9,
				AverageKills:   10,
				AverageDeaths:  2,
				AverageAssists: 8,
			},
		},
		{
			name:    "single losing match is a 0% window",
			matches: []domain.MatchRecord{match(false, 2, 10, 4)},
			want: domain.MatchSummary{
				TotalGames:     1,
				Wins:           0,
				Losses:         1,
				WinRate:        0,
				AverageKDA:     0.6,
				AverageKills:   2,
				AverageDeaths:  10,
				AverageAssists: 4,
			},
		},
		{
			name: "mixed window averages and rounds",
			matches: []domain.MatchRecord{
				match(true, 10, 2, 8),  // kda 9
				match(false, 3, 6, 3),  // kda 1
				match(true, 7, 0, 11),  // deathless, kda 18
			},
			want: domain.MatchSummary{
				TotalGames:     3,
				Wins:           2,
				Losses:         1,
				WinRate:        66.7,
				AverageKDA:     9.33,
				AverageKills:   6.7,
				AverageDeaths:  2.7,
				AverageAssists: 7.3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.matches)
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKDA(t *testing.T) {
	tests := []struct {
		kills, deaths, assists int
		want                   float64
	}{
		{10, 2, 8, 9},
		{7, 0, 11, 18}, // deaths clamp to 1
		{0, 5, 0, 0},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := KDA(tt.kills, tt.deaths, tt.assists); got != tt.want {
			t.Errorf("KDA(%d, %d, %d) = %v, want %v", tt.kills, tt.deaths, tt.assists, got, tt.want)
		}
	}
}
