package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"mastery-dashboard/internal/config"
	"mastery-dashboard/internal/constants"
	"mastery-dashboard/internal/domain"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// Client wraps the upstream dashboard REST API. It performs no retries;
// a failed call is the caller's to retry.
type Client struct {
	baseURL      string
	apiKey       string
	defaultCount int
	client       *fasthttp.Client
	limiter      *rate.Limiter
	logger       zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:      cfg.APIBaseURL,
		apiKey:       cfg.APIKey,
		defaultCount: cfg.MatchCount,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		limiter: rate.NewLimiter(rate.Limit(constants.UpstreamRequestsPerSecond), constants.UpstreamBurst),
		logger:  logger,
	}
}

// SearchAccount resolves one account profile with its full mastery list.
func (c *Client) SearchAccount(ctx context.Context, gameName, tagLine string, region domain.Region) (*domain.AccountProfile, error) {
	reqURL := fmt.Sprintf("%s/summoners/%s/%s?region=%s",
		c.baseURL, url.PathEscape(gameName), url.PathEscape(tagLine), region.Wire())

	c.logger.Debug().Str("game_name", gameName).Str("tag_line", tagLine).Str("region", region.Wire()).Msg("searching account")

	profile, err := doRequest[domain.AccountProfile](ctx, c, reqURL, gameName+"#"+tagLine, region)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// FetchChampionMatches fetches the recent-match window for one champion.
// count <= 0 falls back to the configured default and is capped at
// constants.MaxMatchCount.
func (c *Client) FetchChampionMatches(ctx context.Context, gameName, tagLine string, championID int, region domain.Region, count int) (*domain.ChampionMatches, error) {
	if count <= 0 {
		count = c.defaultCount
	}
	if count > constants.MaxMatchCount {
		count = constants.MaxMatchCount
	}

	reqURL := fmt.Sprintf("%s/summoners/%s/%s/champion/%d/matches?region=%s&count=%d",
		c.baseURL, url.PathEscape(gameName), url.PathEscape(tagLine), championID, region.Wire(), count)

	c.logger.Debug().Str("game_name", gameName).Int("champion_id", championID).Int("count", count).Msg("fetching champion matches")

	matches, err := doRequest[domain.ChampionMatches](ctx, c, reqURL, gameName+"#"+tagLine, region)
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func doRequest[T any](ctx context.Context, c *Client, reqURL, riotID string, region domain.Region) (*T, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &Error{Kind: KindNetwork, RiotID: riotID, Region: region, err: err}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(reqURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(constants.ExternalAPITimeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		// No response received: connectivity loss or timeout.
		return nil, &Error{Kind: KindNetwork, RiotID: riotID, Region: region, err: err}
	}

	status := resp.StatusCode()
	if status != fasthttp.StatusOK {
		return nil, &Error{Kind: classifyStatus(status), Status: status, RiotID: riotID, Region: region}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &Error{Kind: KindUnknown, Status: status, RiotID: riotID, Region: region, err: err}
	}
	return &result, nil
}

var Module = fx.Provide(NewClient)
