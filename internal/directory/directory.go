package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"mastery-dashboard/internal/config"
	"mastery-dashboard/internal/constants"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// FetchError reports a failed champion-table load. The directory stays
// usable afterwards; every id resolves to a placeholder name.
type FetchError struct {
	Status int
	err    error
}

func (e *FetchError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("directory: champion table fetch failed: %v", e.err)
	}
	return fmt.Sprintf("directory: champion table fetch failed with status %d", e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.err
}

// Directory maps numeric champion ids to Data Dragon slug names and
// composes image URLs from them. It is loaded at most once per process;
// concurrent callers share a single in-flight fetch. Pass the one
// instance around explicitly, there is no package-level cache.
type Directory struct {
	baseURL string
	version string
	client  *fasthttp.Client
	logger  zerolog.Logger
	group   singleflight.Group

	mu     sync.RWMutex
	names  map[int]string
	loaded bool
}

func New(cfg *config.Config, logger zerolog.Logger) *Directory {
	return &Directory{
		baseURL: cfg.DDragonBaseURL,
		version: cfg.DDragonVersion,
		client: &fasthttp.Client{
			ReadTimeout:         constants.DirectoryTimeout,
			WriteTimeout:        constants.DirectoryTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger,
		names:  map[int]string{},
	}
}

// championFile is the shape of Data Dragon's champion.json: an object
// keyed by slug, where key is the numeric id as a string and id is the
// slug name.
type championFile struct {
	Data map[string]struct {
		Key string `json:"key"`
		ID  string `json:"id"`
	} `json:"data"`
}

// Load fetches and caches the champion table. A successful load sticks
// for the process lifetime; a failed one returns a *FetchError, leaves
// the directory empty, and a later call may retry. Concurrent callers
// never duplicate the network fetch.
func (d *Directory) Load(ctx context.Context) error {
	d.mu.RLock()
	loaded := d.loaded
	d.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := d.group.Do("champion.json", func() (interface{}, error) {
		names, err := d.fetchTable(ctx)
		if err != nil {
			d.logger.Warn().Err(err).Msg("champion table load failed, using placeholder names")
			return nil, err
		}

		d.mu.Lock()
		d.names = names
		d.loaded = true
		d.mu.Unlock()

		d.logger.Info().Int("champions", len(names)).Str("version", d.version).Msg("champion table loaded")
		return nil, nil
	})
	return err
}

func (d *Directory) fetchTable(ctx context.Context) (map[int]string, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/%s/data/en_US/champion.json", d.baseURL, d.version))
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(constants.DirectoryTimeout)
	}
	if err := d.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, &FetchError{err: err}
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &FetchError{Status: resp.StatusCode()}
	}

	var file championFile
	if err := json.Unmarshal(resp.Body(), &file); err != nil {
		return nil, &FetchError{err: err}
	}

	names := make(map[int]string, len(file.Data))
	for _, champ := range file.Data {
		id, err := strconv.Atoi(champ.Key)
		if err != nil {
			d.logger.Warn().Str("key", champ.Key).Str("slug", champ.ID).Msg("skipping champion with non-numeric key")
			continue
		}
		names[id] = champ.ID
	}
	return names, nil
}

// NameOf returns the slug name for a champion id, or the synthesized
// placeholder when the id is unknown or the table never loaded.
func (d *Directory) NameOf(championID int) string {
	d.mu.RLock()
	name, ok := d.names[championID]
	d.mu.RUnlock()
	if ok {
		return name
	}
	return fmt.Sprintf("Champion %d", championID)
}

// Known reports whether the id resolves to a real name. Image URLs built
// from placeholder names will 404, so callers pair ImageURL with
// FallbackImageURL.
func (d *Directory) Known(championID int) bool {
	d.mu.RLock()
	_, ok := d.names[championID]
	d.mu.RUnlock()
	return ok
}

func (d *Directory) ImageURL(championID int) string {
	return fmt.Sprintf("%s/%s/img/champion/%s.png", d.baseURL, d.version, d.NameOf(championID))
}

func (d *Directory) ProfileIconURL(profileIconID int) string {
	return fmt.Sprintf("%s/%s/img/profileicon/%d.png", d.baseURL, d.version, profileIconID)
}

// FallbackImageURL is the stand-in shown when a champion image 404s
// (unresolved id, or a champion renamed between patches).
func (d *Directory) FallbackImageURL() string {
	return fmt.Sprintf("%s/%s/img/profileicon/29.png", d.baseURL, d.version)
}

var Module = fx.Provide(New)
