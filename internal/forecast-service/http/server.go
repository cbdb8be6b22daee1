package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/match-forecast-poc/internal/forecast-service/dto"
	"github.com/radieske/match-forecast-poc/internal/forecast-service/repo"
	"github.com/radieske/match-forecast-poc/internal/simulation"
	"github.com/radieske/match-forecast-poc/pkg/contracts/events"
)

// Defaults documentados para estatísticas omitidas no request
var (
	defaultHomeStats = simulation.TeamStats{Possession: 55, AvgShots: 12, Efficiency: 15}
	defaultAwayStats = simulation.TeamStats{Possession: 45, AvgShots: 10, Efficiency: 12}
)

// ForecastStore é a visão do repositório usada pela API
type ForecastStore interface {
	Insert(ctx context.Context, f *repo.Forecast) (string, error)
	GetByID(ctx context.Context, id string) (*repo.Forecast, error)
}

// ForecastCache é a visão do cache Redis usada pela API
type ForecastCache interface {
	Get(ctx context.Context, id string, dst any) (bool, error)
	Set(ctx context.Context, id string, v any, ttl time.Duration) error
}

// Publisher publica os eventos do pipeline de forecasts
type Publisher interface {
	PublishForecastRequested(ctx context.Context, e events.ForecastRequested) error
	PublishForecastComputed(ctx context.Context, e events.ForecastComputed) error
}

// Server expõe a API REST de forecasts de partidas.
// Cada request síncrono executa a simulação com um engine próprio
// (stream aleatório independente por requisição).
type Server struct {
	Log   *zap.Logger
	Store ForecastStore
	Cache ForecastCache
	Publ  Publisher

	DefaultTrials int
	MaxTrials     int
	TopScores     int
	CacheTTL      time.Duration

	OnComputed func() // métricas (counter++)
	OnQueued   func() // métricas
}

// Router retorna o roteador HTTP com os endpoints REST
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/v1/forecasts", s.postForecast)            // Simulação síncrona
	r.Post("/v1/forecasts/async", s.postForecastAsync) // Enfileira no Kafka
	r.Get("/v1/forecasts/{id}", s.getForecast)         // Consulta por ID
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// resolveInputs aplica os defaults documentados e valida o payload
// antes de qualquer simulação começar
func (s *Server) resolveInputs(req *dto.ForecastRequest) (home, away simulation.TeamStats, trials int, err error) {
	if req.HomeTeam == "" {
		req.HomeTeam = "Home"
	}
	if req.AwayTeam == "" {
		req.AwayTeam = "Away"
	}

	home = defaultHomeStats
	if req.Home != nil {
		home = simulation.TeamStats{Possession: req.Home.Possession, AvgShots: req.Home.AvgShots, Efficiency: req.Home.Efficiency}
	}
	away = defaultAwayStats
	if req.Away != nil {
		away = simulation.TeamStats{Possession: req.Away.Possession, AvgShots: req.Away.AvgShots, Efficiency: req.Away.Efficiency}
	}

	if err = simulation.ValidateStats(home); err != nil {
		return
	}
	if err = simulation.ValidateStats(away); err != nil {
		return
	}

	trials = req.Trials
	if trials == 0 {
		trials = s.DefaultTrials
	}
	if trials < 1 {
		err = simulation.ErrInvalidTrialCount
		return
	}
	if trials > s.MaxTrials {
		err = simulation.ErrInvalidTrialCount
		return
	}
	return
}

// postForecast computa a simulação de forma síncrona, persiste e responde
func (s *Server) postForecast(w http.ResponseWriter, r *http.Request) {
	var req dto.ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
		return
	}

	home, away, trials, err := s.resolveInputs(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	lambdaHome, err := simulation.ComputeExpectedGoals(home)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	lambdaAway, err := simulation.ComputeExpectedGoals(away)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	engine := simulation.New(nil)
	batch, err := engine.RunMonteCarlo(r.Context(), lambdaHome, lambdaAway, trials)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	analysis, err := simulation.AnalyzeTopK(batch, s.TopScores)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	f := &repo.Forecast{
		HomeTeam:   req.HomeTeam,
		AwayTeam:   req.AwayTeam,
		HomeStats:  home,
		AwayStats:  away,
		LambdaHome: lambdaHome,
		LambdaAway: lambdaAway,
		Analysis:   *analysis,
		CreatedAt:  time.Now().UTC(),
	}
	id, err := s.Store.Insert(r.Context(), f)
	if err != nil {
		s.Log.Error("forecast insert failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "persist failed"})
		return
	}

	resp := dto.ForecastResponse{
		ForecastID: id,
		HomeTeam:   req.HomeTeam,
		AwayTeam:   req.AwayTeam,
		LambdaHome: lambdaHome,
		LambdaAway: lambdaAway,
		CreatedAt:  f.CreatedAt,
		Analysis:   *analysis,
	}

	// cache e evento são melhor-esforço; a resposta não depende deles
	if err := s.Cache.Set(r.Context(), id, resp, s.CacheTTL); err != nil {
		s.Log.Warn("forecast cache set failed", zap.Error(err))
	}
	if err := s.Publ.PublishForecastComputed(r.Context(), computedEvent(id, "", f)); err != nil {
		s.Log.Warn("forecast_computed publish failed", zap.Error(err))
	}

	if s.OnComputed != nil {
		s.OnComputed()
	}

	writeJSON(w, http.StatusCreated, resp)
}

// postForecastAsync valida e enfileira a simulação no Kafka (worker processa)
func (s *Server) postForecastAsync(w http.ResponseWriter, r *http.Request) {
	var req dto.ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
		return
	}

	home, away, trials, err := s.resolveInputs(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	requestID := uuid.NewString()
	ev := events.ForecastRequested{
		RequestID: requestID,
		Home:      events.TeamInput{Name: req.HomeTeam, Possession: home.Possession, AvgShots: home.AvgShots, Efficiency: home.Efficiency},
		Away:      events.TeamInput{Name: req.AwayTeam, Possession: away.Possession, AvgShots: away.AvgShots, Efficiency: away.Efficiency},
		Trials:    trials,
		Source:    "forecast-service",
	}
	if err := s.Publ.PublishForecastRequested(r.Context(), ev); err != nil {
		s.Log.Error("forecast_requested publish failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "queue unavailable"})
		return
	}

	if s.OnQueued != nil {
		s.OnQueued()
	}

	writeJSON(w, http.StatusAccepted, dto.AsyncForecastResponse{RequestID: requestID, Status: "QUEUED"})
}

// getForecast retorna um forecast persistido, preferencialmente do cache
func (s *Server) getForecast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fromCache dto.ForecastResponse
	if ok, _ := s.Cache.Get(r.Context(), id, &fromCache); ok {
		writeJSON(w, http.StatusOK, fromCache)
		return
	}

	f, err := s.Store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	resp := dto.ForecastResponse{
		ForecastID: f.ID,
		HomeTeam:   f.HomeTeam,
		AwayTeam:   f.AwayTeam,
		LambdaHome: f.LambdaHome,
		LambdaAway: f.LambdaAway,
		CreatedAt:  f.CreatedAt,
		Analysis:   f.Analysis,
	}

	_ = s.Cache.Set(r.Context(), id, resp, s.CacheTTL)
	writeJSON(w, http.StatusOK, resp)
}

// computedEvent converte um forecast persistido no evento de contrato
func computedEvent(forecastID, requestID string, f *repo.Forecast) events.ForecastComputed {
	top := make([]events.ScorelineFreq, 0, len(f.Analysis.TopScores))
	for _, sc := range f.Analysis.TopScores {
		top = append(top, events.ScorelineFreq{HomeGoals: sc.HomeGoals, AwayGoals: sc.AwayGoals, Count: sc.Count, Pct: sc.Pct})
	}

	return events.ForecastComputed{
		ForecastID:  forecastID,
		RequestID:   requestID,
		HomeTeam:    f.HomeTeam,
		AwayTeam:    f.AwayTeam,
		LambdaHome:  f.LambdaHome,
		LambdaAway:  f.LambdaAway,
		TotalTrials: f.Analysis.TotalTrials,
		HomeWins:    f.Analysis.HomeWins,
		AwayWins:    f.Analysis.AwayWins,
		Draws:       f.Analysis.Draws,
		HomeWinPct:  f.Analysis.HomeWinPct,
		AwayWinPct:  f.Analysis.AwayWinPct,
		DrawPct:     f.Analysis.DrawPct,
		TopScores:   top,
		Forecast:    string(f.Analysis.Forecast),
	}
}
