package service

import (
	"context"

	"mastery-dashboard/internal/constants"
	"mastery-dashboard/internal/directory"
	"mastery-dashboard/internal/domain"
	"mastery-dashboard/internal/gateway"
	"mastery-dashboard/internal/mastery"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MasteryCard is one enriched entry of the derived mastery view: the
// raw record plus everything the card needs rendered (resolved name,
// image URLs, formatted points, progress classification).
type MasteryCard struct {
	domain.MasteryRecord
	ChampionName     string           `json:"championName"`
	ImageURL         string           `json:"imageUrl"`
	FallbackImageURL string           `json:"fallbackImageUrl"`
	PointsDisplay    string           `json:"pointsDisplay"`
	Progress         mastery.Progress `json:"progress"`
}

// SummonerView is the full dashboard payload for one account search.
// Cards holds the filtered/sorted view; TotalChampions counts the
// unfiltered mastery list.
type SummonerView struct {
	Puuid             string        `json:"puuid"`
	GameName          string        `json:"gameName"`
	TagLine           string        `json:"tagLine"`
	Region            domain.Region `json:"region"`
	ProfileIconURL    string        `json:"profileIconUrl"`
	SummonerLevel     int64         `json:"summonerLevel"`
	TotalMasteryScore int           `json:"totalMasteryScore"`
	ChestsAvailable   int           `json:"chestsAvailable"`
	TotalChampions    int           `json:"totalChampions"`
	Cards             []MasteryCard `json:"cards"`
}

type SummonerService struct {
	gateway *gateway.Client
	dir     *directory.Directory
	logger  zerolog.Logger
}

func NewSummonerService(gw *gateway.Client, dir *directory.Directory, logger zerolog.Logger) *SummonerService {
	return &SummonerService{gateway: gw, dir: dir, logger: logger}
}

// GetSummoner searches the account and applies the filter/sort criteria
// to its mastery list. The champion directory loads concurrently with
// the search; a directory failure degrades to placeholder names rather
// than failing the request.
func (s *SummonerService) GetSummoner(ctx context.Context, gameName, tagLine string, region domain.Region, criteria mastery.Criteria) (*SummonerView, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("game_name", gameName).Str("tag_line", tagLine).Str("region", region.String()).Msg("getting summoner")

	var profile *domain.AccountProfile

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.gateway.SearchAccount(gCtx, gameName, tagLine, region)
		return err
	})
	g.Go(func() error {
		if err := s.dir.Load(gCtx); err != nil {
			s.logger.Warn().Err(err).Msg("champion directory unavailable, falling back to placeholder names")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("game_name", gameName).Str("tag_line", tagLine).Msg("failed to fetch summoner")
		return nil, err
	}

	derived := mastery.DeriveView(profile.ChampionMasteries, criteria, s.dir.NameOf)

	cards := make([]MasteryCard, len(derived))
	for i, rec := range derived {
		cards[i] = MasteryCard{
			MasteryRecord:    rec,
			ChampionName:     s.dir.NameOf(rec.ChampionID),
			ImageURL:         s.dir.ImageURL(rec.ChampionID),
			FallbackImageURL: s.dir.FallbackImageURL(),
			PointsDisplay:    mastery.FormatPoints(rec.ChampionPoints),
			Progress:         mastery.ProgressOf(rec),
		}
	}

	view := &SummonerView{
		Puuid:             profile.Puuid,
		GameName:          profile.GameName,
		TagLine:           profile.TagLine,
		Region:            profile.Region,
		ProfileIconURL:    s.dir.ProfileIconURL(profile.ProfileIconID),
		SummonerLevel:     profile.SummonerLevel,
		TotalMasteryScore: profile.TotalMasteryScore,
		ChestsAvailable:   profile.ChestsAvailable,
		TotalChampions:    len(profile.ChampionMasteries),
		Cards:             cards,
	}

	s.logger.Info().Str("puuid", profile.Puuid).Int("champions", view.TotalChampions).Int("shown", len(cards)).Msg("summoner view built")
	return view, nil
}
