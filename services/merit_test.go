package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/matchmerit/models"
)

func TestComputeMerit(t *testing.T) {
	cfg := models.DefaultMeritConfig()

	tests := []struct {
		name    string
		history []models.MatchRegistration
		want    int
	}{
		{"empty history", nil, 0},
		{
			"played neutral plus late cancel",
			[]models.MatchRegistration{
				{DidPlay: true, Attitude: models.AttitudeNeutral},
				{IsLateCancellation: true},
			},
			1,
		},
		{"played positive", []models.MatchRegistration{{DidPlay: true, Attitude: models.AttitudePositive}}, 4},
		{"played negative", []models.MatchRegistration{{DidPlay: true, Attitude: models.AttitudeNegative}}, 2},
		{"reserve", []models.MatchRegistration{{IsReserve: true}}, 1},
		{"no show", []models.MatchRegistration{{Attitude: models.AttitudeNeutral}}, -5},
		{
			"late cancel excludes every other category",
			[]models.MatchRegistration{{IsLateCancellation: true, DidPlay: true, IsReserve: true, Attitude: models.AttitudePositive}},
			-2,
		},
		{
			"played wins over reserve",
			[]models.MatchRegistration{{DidPlay: true, IsReserve: true, Attitude: models.AttitudeNeutral}},
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeMerit(tt.history, cfg); got != tt.want {
				t.Errorf("ComputeMerit: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeMerit_CustomWeights(t *testing.T) {
	cfg := models.MeritConfig{PointsPlayed: 10, PointsNoShow: -20, PointsReserve: 4, PointsLateCancel: -7, PointsPositiveAttitude: 2}
	history := []models.MatchRegistration{
		{DidPlay: true, Attitude: models.AttitudePositive},
		{IsReserve: true},
		{},
		{IsLateCancellation: true},
	}
	if got, want := ComputeMerit(history, cfg), 10+2+4-20-7; got != want {
		t.Errorf("ComputeMerit: got %d, want %d", got, want)
	}
}

func TestMeritCalculator_WindowIsLastFinishedMatches(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cfg := models.DefaultMeritConfig()
	cfg.MaxMatchesConsidered = 2
	f.addGroup(t, "g1", cfg)

	day := 24 * time.Hour
	f.addMatch(t, "oldest", "g1", models.MatchStatusFinished, t0.Add(-4*day), 10)
	f.addMatch(t, "cancelled", "g1", models.MatchStatusCancelled, t0.Add(-3*day), 10)
	f.addMatch(t, "older", "g1", models.MatchStatusFinished, t0.Add(-2*day), 10)
	f.addMatch(t, "recent", "g1", models.MatchStatusFinished, t0.Add(-1*day), 10)
	f.addMatch(t, "current", "g1", models.MatchStatusPlanning, t0.Add(day), 10)

	f.register(t, "oldest", "u1", t0, nil)
	f.register(t, "cancelled", "u1", t0, nil)
	f.register(t, "older", "u1", t0, played)
	f.register(t, "recent", "u1", t0, reserve)

	window, err := meritWindow(ctx, f.matches, "g1", "current", cfg.MaxMatchesConsidered)
	if err != nil {
		t.Fatalf("meritWindow: %v", err)
	}
	if len(window) != 2 || window[0] != "recent" || window[1] != "older" {
		t.Fatalf("window: got %v, want [recent older]", window)
	}

	calc := NewMeritCalculator(f.matches)
	score, err := calc.Compute(ctx, "u1", window, cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if score != 4 {
		t.Errorf("score: got %d, want 4 (played + reserve, oldest no-show outside window)", score)
	}

	empty, err := calc.Compute(ctx, "u1", nil, cfg)
	if err != nil {
		t.Fatalf("Compute with empty window: %v", err)
	}
	if empty != 0 {
		t.Errorf("empty window score: got %d, want 0", empty)
	}
}

func TestMeritWindow_ExcludesCurrentMatch(t *testing.T) {
	f := newFixture(t)
	f.addGroup(t, "g1", models.DefaultMeritConfig())
	f.addMatch(t, "a", "g1", models.MatchStatusFinished, t0.Add(-time.Hour), 5)
	f.addMatch(t, "b", "g1", models.MatchStatusFinished, t0.Add(-2*time.Hour), 5)

	window, err := meritWindow(context.Background(), f.matches, "g1", "a", 2)
	if err != nil {
		t.Fatalf("meritWindow: %v", err)
	}
	if len(window) != 1 || window[0] != "b" {
		t.Errorf("window: got %v, want [b]", window)
	}
}
