package domain

import (
	"time"
)

// AccountProfile is one summoner account as returned by the upstream
// dashboard API. It is replaced wholesale on every new search.
type AccountProfile struct {
	Puuid             string          `json:"puuid"`
	GameName          string          `json:"gameName"`
	TagLine           string          `json:"tagLine"`
	Region            Region          `json:"region"`
	ProfileIconID     int             `json:"profileIconId"`
	SummonerLevel     int64           `json:"summonerLevel"`
	TotalMasteryScore int             `json:"totalMasteryScore"`
	ChestsAvailable   int             `json:"chestsAvailable"`
	LastUpdated       time.Time       `json:"lastUpdated"`
	ChampionMasteries []MasteryRecord `json:"championMasteries"`
}

// RiotID is the display form "name#tag".
func (p *AccountProfile) RiotID() string {
	return p.GameName + "#" + p.TagLine
}

// MasteryRecord is one (account, champion) mastery entry.
//
// PointsSinceLastLevel and PointsUntilNextLevel are pointers because the
// upstream sends null at max level. PointsUntilNextLevel may be negative:
// the champion is past the points threshold and is waiting on tokens.
type MasteryRecord struct {
	ChampionID           int   `json:"championId"`
	ChampionLevel        int   `json:"championLevel"`
	ChampionPoints       int64 `json:"championPoints"`
	PointsSinceLastLevel *int  `json:"championPointsSinceLastLevel"`
	PointsUntilNextLevel *int  `json:"championPointsUntilNextLevel"`
	ChestGranted         bool  `json:"chestGranted"`
	TokensEarned         int   `json:"tokensEarned"`
	LastPlayTime         int64 `json:"lastPlayTime"`
	IsChestAvailable     bool  `json:"isChestAvailable"`
}

// MatchRecord is one game in the fetched match window. KDA is computed
// upstream and treated as given.
type MatchRecord struct {
	MatchID             string    `json:"matchId"`
	GameDate            time.Time `json:"gameDate"`
	GameMode            string    `json:"gameMode"`
	GameDurationSeconds int       `json:"gameDuration"`
	Win                 bool      `json:"win"`
	Kills               int       `json:"kills"`
	Deaths              int       `json:"deaths"`
	Assists             int       `json:"assists"`
	KDA                 float64   `json:"kda"`
	ChampionLevel       int       `json:"championLevel"`
	TotalMinionsKilled  int       `json:"totalMinionsKilled"`
	GoldEarned          int       `json:"goldEarned"`
	Lane                string    `json:"lane"`
	Role                string    `json:"role"`
}

// MatchSummary aggregates the fetched match window, not the account's
// full history.
type MatchSummary struct {
	TotalGames     int     `json:"totalGames"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	WinRate        float64 `json:"winRate"`
	AverageKDA     float64 `json:"averageKDA"`
	AverageKills   float64 `json:"averageKills"`
	AverageDeaths  float64 `json:"averageDeaths"`
	AverageAssists float64 `json:"averageAssists"`
}

// ChampionMatches is the per-champion match history payload.
type ChampionMatches struct {
	ChampionName  string        `json:"championName"`
	ChampionID    int           `json:"championId"`
	RecentMatches []MatchRecord `json:"recentMatches"`
	OverallStats  MatchSummary  `json:"overallStats"`
}
