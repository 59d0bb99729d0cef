package dashboard

import (
	"context"
	"fmt"
	"sync"

	"mastery-dashboard/internal/domain"
	"mastery-dashboard/internal/mastery"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// Gateway is the slice of the remote client the view-model needs; tests
// substitute a fake.
type Gateway interface {
	SearchAccount(ctx context.Context, gameName, tagLine string, region domain.Region) (*domain.AccountProfile, error)
	FetchChampionMatches(ctx context.Context, gameName, tagLine string, championID int, region domain.Region, count int) (*domain.ChampionMatches, error)
}

type SearchPhase int

const (
	PhaseIdle SearchPhase = iota
	PhaseSearching
	PhaseLoaded
	PhaseErrored
)

type CardPhase int

const (
	CardCollapsed CardPhase = iota
	CardLoading
	CardLoaded
	CardErrored
)

type cardSlot struct {
	phase CardPhase
	token string
	data  *domain.ChampionMatches
	err   error
}

// CardView is a point-in-time snapshot of one champion card's match
// panel.
type CardView struct {
	Phase   CardPhase
	Matches *domain.ChampionMatches
	Err     error
}

// State is the dashboard view-model. It holds the last successful
// account search, the current filter/sort criteria, and one independent
// match-panel slot per expanded champion card.
//
// Network fetches run on their own goroutines; each carries an identity
// token, and a completion is applied only while its token is still the
// active one for that slot. A response that lost the race is discarded,
// never applied out of order. Collapsing a card does not cancel its
// fetch, it just orphans the token.
type State struct {
	gateway    Gateway
	nameOf     mastery.NameResolver
	logger     zerolog.Logger
	matchCount int

	mu          sync.Mutex
	phase       SearchPhase
	searchToken string
	profile     *domain.AccountProfile
	searchErr   error
	criteria    mastery.Criteria
	cards       map[int]*cardSlot
	onChange    func()
}

func New(gw Gateway, nameOf mastery.NameResolver, matchCount int, logger zerolog.Logger) *State {
	return &State{
		gateway:    gw,
		nameOf:     nameOf,
		logger:     logger,
		matchCount: matchCount,
		phase:      PhaseIdle,
		cards:      map[int]*cardSlot{},
	}
}

// SetOnChange registers a callback fired after every state transition,
// outside the internal lock.
func (s *State) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Search starts a new account search. The prior result and all card
// slots are discarded immediately, before the request is issued, so the
// UI never shows old champion data while a new search is in flight.
func (s *State) Search(ctx context.Context, gameName, tagLine string, region domain.Region) {
	token := gonanoid.Must()

	s.mu.Lock()
	s.phase = PhaseSearching
	s.searchToken = token
	s.profile = nil
	s.searchErr = nil
	s.cards = map[int]*cardSlot{}
	s.mu.Unlock()
	s.notify()

	go func() {
		profile, err := s.gateway.SearchAccount(ctx, gameName, tagLine, region)
		s.applySearch(token, profile, err)
	}()
}

func (s *State) applySearch(token string, profile *domain.AccountProfile, err error) {
	s.mu.Lock()
	if token != s.searchToken {
		s.mu.Unlock()
		s.logger.Debug().Msg("discarding stale search response")
		return
	}
	if err != nil {
		s.phase = PhaseErrored
		s.searchErr = err
	} else {
		s.phase = PhaseLoaded
		s.profile = profile
	}
	s.mu.Unlock()
	s.notify()
}

// SetCriteria updates the filter/sort selection. This only changes how
// the current profile is derived; it never triggers a network call.
func (s *State) SetCriteria(c mastery.Criteria) {
	s.mu.Lock()
	s.criteria = c
	s.mu.Unlock()
	s.notify()
}

func (s *State) Criteria() mastery.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// View derives the displayed mastery list from the current profile and
// criteria. Nil when no profile is loaded.
func (s *State) View() []domain.MasteryRecord {
	s.mu.Lock()
	profile := s.profile
	criteria := s.criteria
	s.mu.Unlock()

	if profile == nil {
		return nil
	}
	return mastery.DeriveView(profile.ChampionMasteries, criteria, s.nameOf)
}

func (s *State) Phase() SearchPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *State) Profile() *domain.AccountProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *State) SearchError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchErr
}

// ExpandCard opens a champion card's match panel and starts its fetch.
// Each expansion re-fetches; results are not cached across
// expand/collapse cycles.
func (s *State) ExpandCard(ctx context.Context, championID int) error {
	s.mu.Lock()
	if s.phase != PhaseLoaded || s.profile == nil {
		s.mu.Unlock()
		return fmt.Errorf("no account loaded")
	}
	gameName := s.profile.GameName
	tagLine := s.profile.TagLine
	region := s.profile.Region
	count := s.matchCount

	token := gonanoid.Must()
	s.cards[championID] = &cardSlot{phase: CardLoading, token: token}
	s.mu.Unlock()
	s.notify()

	go func() {
		data, err := s.gateway.FetchChampionMatches(ctx, gameName, tagLine, championID, region, count)
		s.applyCard(championID, token, data, err)
	}()
	return nil
}

func (s *State) applyCard(championID int, token string, data *domain.ChampionMatches, err error) {
	s.mu.Lock()
	slot, ok := s.cards[championID]
	if !ok || slot.token != token {
		s.mu.Unlock()
		s.logger.Debug().Int("champion_id", championID).Msg("discarding stale match response")
		return
	}
	if err != nil {
		slot.phase = CardErrored
		slot.err = err
	} else {
		slot.phase = CardLoaded
		slot.data = data
	}
	s.mu.Unlock()
	s.notify()
}

// CollapseCard closes a card's match panel. An in-flight fetch is not
// cancelled; its token no longer matches, so the late response is
// silently dropped.
func (s *State) CollapseCard(championID int) {
	s.mu.Lock()
	if slot, ok := s.cards[championID]; ok {
		slot.phase = CardCollapsed
		slot.token = ""
		slot.data = nil
		slot.err = nil
	}
	s.mu.Unlock()
	s.notify()
}

// Card snapshots one card slot. ok is false when the card was never
// expanded.
func (s *State) Card(championID int) (CardView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.cards[championID]
	if !ok {
		return CardView{Phase: CardCollapsed}, false
	}
	return CardView{Phase: slot.phase, Matches: slot.data, Err: slot.err}, true
}

func (s *State) notify() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
