package consumer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/match-forecast-poc/internal/forecast-service/repo"
	"github.com/radieske/match-forecast-poc/internal/simulation"
	"github.com/radieske/match-forecast-poc/pkg/contracts/events"
)

type fakeStore struct {
	inserted []*repo.Forecast
}

func (f *fakeStore) Insert(_ context.Context, fc *repo.Forecast) (string, error) {
	fc.ID = "fc-42"
	f.inserted = append(f.inserted, fc)
	return fc.ID, nil
}

type fakePublisher struct {
	computed []events.ForecastComputed
}

func (f *fakePublisher) PublishForecastComputed(_ context.Context, e events.ForecastComputed) error {
	f.computed = append(f.computed, e)
	return nil
}

func request(trials int) events.ForecastRequested {
	return events.ForecastRequested{
		RequestID: "req-1",
		Home:      events.TeamInput{Name: "Corinthians", Possession: 55, AvgShots: 12, Efficiency: 15},
		Away:      events.TeamInput{Name: "Santos", Possession: 45, AvgShots: 10, Efficiency: 12},
		Trials:    trials,
	}
}

func TestProcessRequest(t *testing.T) {
	store := &fakeStore{}
	publ := &fakePublisher{}
	stages := map[string]int{}

	p := &Processor{
		Log:       zap.NewNop(),
		Store:     store,
		Publ:      publ,
		TopScores: 5,
		OnError:   func(stage string) { stages[stage]++ },
	}

	err := p.process(context.Background(), request(1000))
	require.NoError(t, err)
	assert.Empty(t, stages)

	require.Len(t, store.inserted, 1)
	f := store.inserted[0]
	assert.Equal(t, "req-1", f.RequestID)
	assert.InDelta(t, 1.395, f.LambdaHome, 1e-9)
	assert.InDelta(t, 0.87, f.LambdaAway, 1e-9)
	assert.Equal(t, 1000, f.Analysis.TotalTrials)
	assert.Equal(t, f.Analysis.TotalTrials, f.Analysis.HomeWins+f.Analysis.AwayWins+f.Analysis.Draws)

	require.Len(t, publ.computed, 1)
	ev := publ.computed[0]
	assert.Equal(t, "fc-42", ev.ForecastID)
	assert.Equal(t, "req-1", ev.RequestID)
	assert.Equal(t, string(f.Analysis.Forecast), ev.Forecast)
	assert.LessOrEqual(t, len(ev.TopScores), 5)
}

func TestProcessInvalidStats(t *testing.T) {
	store := &fakeStore{}
	publ := &fakePublisher{}
	stages := map[string]int{}

	p := &Processor{
		Log:     zap.NewNop(),
		Store:   store,
		Publ:    publ,
		OnError: func(stage string) { stages[stage]++ },
	}

	req := request(100)
	req.Home.Possession = 150

	err := p.process(context.Background(), req)
	assert.ErrorIs(t, err, simulation.ErrInvalidStatistic)
	assert.Empty(t, store.inserted)
	assert.Empty(t, publ.computed)
	assert.Equal(t, 1, stages["validate"])
}

func TestProcessInvalidTrials(t *testing.T) {
	store := &fakeStore{}
	stages := map[string]int{}

	p := &Processor{
		Log:     zap.NewNop(),
		Store:   store,
		Publ:    &fakePublisher{},
		OnError: func(stage string) { stages[stage]++ },
	}

	err := p.process(context.Background(), request(0))
	assert.ErrorIs(t, err, simulation.ErrInvalidTrialCount)
	assert.Empty(t, store.inserted)
	assert.Equal(t, 1, stages["simulate"])
}
