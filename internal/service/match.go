package service

import (
	"context"

	"mastery-dashboard/internal/constants"
	"mastery-dashboard/internal/directory"
	"mastery-dashboard/internal/domain"
	"mastery-dashboard/internal/gateway"
	"mastery-dashboard/internal/stats"

	"github.com/rs/zerolog"
)

type MatchService struct {
	gateway *gateway.Client
	dir     *directory.Directory
	logger  zerolog.Logger
}

func NewMatchService(gw *gateway.Client, dir *directory.Directory, logger zerolog.Logger) *MatchService {
	return &MatchService{gateway: gw, dir: dir, logger: logger}
}

// GetChampionMatches fetches the recent-match window for one champion.
// The overall summary is recomputed locally so it always agrees with the
// match rows actually returned, and the champion name falls back to the
// directory when the upstream omits it.
func (s *MatchService) GetChampionMatches(ctx context.Context, gameName, tagLine string, championID int, region domain.Region, count int) (*domain.ChampionMatches, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("game_name", gameName).Int("champion_id", championID).Int("count", count).Msg("getting champion matches")

	if err := s.dir.Load(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("champion directory unavailable, falling back to placeholder names")
	}

	result, err := s.gateway.FetchChampionMatches(ctx, gameName, tagLine, championID, region, count)
	if err != nil {
		s.logger.Error().Err(err).Int("champion_id", championID).Msg("failed to fetch champion matches")
		return nil, err
	}

	result.OverallStats = stats.Summarize(result.RecentMatches)
	if result.ChampionName == "" {
		result.ChampionName = s.dir.NameOf(championID)
	}
	if result.ChampionID == 0 {
		result.ChampionID = championID
	}

	s.logger.Info().Int("champion_id", championID).Int("matches", len(result.RecentMatches)).Msg("champion matches fetched")
	return result, nil
}
