package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mastery-dashboard/internal/domain"
	"mastery-dashboard/internal/gateway"
	"mastery-dashboard/internal/mastery"
	"mastery-dashboard/internal/service"

	"github.com/rs/zerolog"
)

// DashboardServer is the JSON HTTP surface of the dashboard: account
// search with the derived mastery view, per-champion match history, and
// the supported region list.
type DashboardServer struct {
	summonerSvc *service.SummonerService
	matchSvc    *service.MatchService
	logger      zerolog.Logger
}

func NewDashboardServer(summonerSvc *service.SummonerService, matchSvc *service.MatchService, logger zerolog.Logger) *DashboardServer {
	return &DashboardServer{summonerSvc: summonerSvc, matchSvc: matchSvc, logger: logger}
}

func (s *DashboardServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/regions", s.handleRegions)
	mux.HandleFunc("GET /api/summoners/{gameName}/{tagLine}", s.handleSummoner)
	mux.HandleFunc("GET /api/summoners/{gameName}/{tagLine}/champion/{championId}/matches", s.handleChampionMatches)
}

func (s *DashboardServer) handleRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Regions())
}

func (s *DashboardServer) handleSummoner(w http.ResponseWriter, r *http.Request) {
	gameName := r.PathValue("gameName")
	tagLine := r.PathValue("tagLine")

	region, err := domain.ParseRegion(r.URL.Query().Get("region"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	criteria, err := criteriaFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	view, err := s.summonerSvc.GetSummoner(r.Context(), gameName, tagLine, region, criteria)
	if err != nil {
		s.writeGatewayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *DashboardServer) handleChampionMatches(w http.ResponseWriter, r *http.Request) {
	gameName := r.PathValue("gameName")
	tagLine := r.PathValue("tagLine")

	championID, err := strconv.Atoi(r.PathValue("championId"))
	if err != nil || championID <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request", "championId must be a positive integer")
		return
	}

	region, err := domain.ParseRegion(r.URL.Query().Get("region"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	// count is optional; 0 lets the gateway apply its configured default.
	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", "count must be a positive integer")
			return
		}
	}

	matches, err := s.matchSvc.GetChampionMatches(r.Context(), gameName, tagLine, championID, region, count)
	if err != nil {
		s.writeGatewayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func criteriaFromQuery(r *http.Request) (mastery.Criteria, error) {
	q := r.URL.Query()

	sortKey, err := mastery.ParseSortKey(q.Get("sort"))
	if err != nil {
		return mastery.Criteria{}, err
	}

	level := 0
	if raw := q.Get("level"); raw != "" && raw != "all" {
		level, err = strconv.Atoi(raw)
		if err != nil || level < 1 || level > 7 {
			return mastery.Criteria{}, errors.New("level must be \"all\" or 1..7")
		}
	}

	return mastery.Criteria{
		SearchTerm:  q.Get("search"),
		LevelFilter: level,
		ChestsOnly:  q.Get("chestsOnly") == "true",
		SortKey:     sortKey,
	}, nil
}

func (s *DashboardServer) writeGatewayError(w http.ResponseWriter, err error) {
	var ge *gateway.Error
	if !errors.As(err, &ge) {
		s.logger.Error().Err(err).Msg("unexpected error")
		writeError(w, http.StatusInternalServerError, "unknown", "Something went wrong while fetching data. Please try again.")
		return
	}

	status := http.StatusInternalServerError
	switch ge.Kind {
	case gateway.KindNotFound:
		status = http.StatusNotFound
	case gateway.KindRateLimited:
		status = http.StatusTooManyRequests
	case gateway.KindAuth, gateway.KindNetwork:
		status = http.StatusBadGateway
	}
	writeError(w, status, ge.Kind.String(), ge.Message())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, map[string]string{
		"error":   kind,
		"message": message,
	})
}
