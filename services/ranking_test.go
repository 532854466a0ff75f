package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/Dosada05/matchmerit/models"
)

func regAt(userID string, offset time.Duration) models.MatchRegistration {
	return models.MatchRegistration{MatchID: "m", UserID: userID, RegisteredAt: t0.Add(offset), Attitude: models.AttitudeNeutral}
}

func userOrder(ranked []RankedParticipant) []string {
	ids := make([]string, len(ranked))
	for i, p := range ranked {
		ids[i] = p.UserID
	}
	return ids
}

func TestRankRegistrations_CapacityExample(t *testing.T) {
	regs := []models.MatchRegistration{
		regAt("e", 0),
		regAt("c", 2*time.Minute),
		regAt("a", 3*time.Minute),
		regAt("b", 1*time.Minute),
		regAt("d", 4*time.Minute),
	}
	scores := map[string]int{"a": 10, "b": 8, "c": 8, "d": 5, "e": 0}

	ranked := RankRegistrations(regs, scores, 3)

	if got, want := userOrder(ranked), []string{"a", "b", "c", "d", "e"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order: got %v, want %v", got, want)
	}
	for i, p := range ranked {
		wantReserve := i >= 3
		if p.IsReserveCalculated != wantReserve {
			t.Errorf("%s reserve: got %v, want %v", p.UserID, p.IsReserveCalculated, wantReserve)
		}
		if p.Position != i+1 {
			t.Errorf("%s position: got %d, want %d", p.UserID, p.Position, i+1)
		}
	}
}

func TestRankRegistrations_LateCancellationsLast(t *testing.T) {
	late1 := regAt("late-high", 0)
	late1.IsLateCancellation = true
	late2 := regAt("late-low", time.Minute)
	late2.IsLateCancellation = true

	regs := []models.MatchRegistration{late2, regAt("x", 2*time.Minute), late1, regAt("y", 3*time.Minute)}
	scores := map[string]int{"late-high": 50, "late-low": 1, "x": -3, "y": 0}

	ranked := RankRegistrations(regs, scores, 10)

	if got, want := userOrder(ranked), []string{"y", "x", "late-high", "late-low"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order: got %v, want %v", got, want)
	}
	for _, p := range ranked {
		if p.IsLateCancellation && !p.IsReserveCalculated {
			t.Errorf("late cancellation %s must be reserve", p.UserID)
		}
		if !p.IsLateCancellation && p.IsReserveCalculated {
			t.Errorf("%s is within capacity and must play", p.UserID)
		}
	}
}

func TestRankRegistrations_ReserveThreshold(t *testing.T) {
	for capacity := 1; capacity <= 6; capacity++ {
		for lateEvery := 2; lateEvery <= 4; lateEvery++ {
			regs := make([]models.MatchRegistration, 0, 8)
			scores := make(map[string]int)
			active := 0
			for i := 0; i < 8; i++ {
				r := regAt(string(rune('a'+i)), time.Duration(i)*time.Minute)
				if i%lateEvery == 0 {
					r.IsLateCancellation = true
				} else {
					active++
				}
				scores[r.UserID] = (i * 7) % 5
				regs = append(regs, r)
			}

			playing := 0
			for _, p := range RankRegistrations(regs, scores, capacity) {
				if p.IsLateCancellation {
					if !p.IsReserveCalculated {
						t.Errorf("capacity %d: late cancellation %s not reserve", capacity, p.UserID)
					}
					continue
				}
				if !p.IsReserveCalculated {
					playing++
				}
			}
			want := capacity
			if active < want {
				want = active
			}
			if playing != want {
				t.Errorf("capacity %d, active %d: playing got %d, want %d", capacity, active, playing, want)
			}
		}
	}
}

func TestRankRegistrations_Deterministic(t *testing.T) {
	regs := []models.MatchRegistration{
		regAt("a", 0), regAt("b", 0), regAt("c", time.Minute), regAt("d", 0),
	}
	scores := map[string]int{"a": 3, "b": 3, "c": 3, "d": 1}

	first := RankRegistrations(regs, scores, 2)
	second := RankRegistrations(regs, scores, 2)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("ranking the same input twice must yield the same result")
	}

	reversed := []models.MatchRegistration{regs[3], regs[2], regs[1], regs[0]}
	third := RankRegistrations(reversed, scores, 2)
	if got, want := userOrder(third), userOrder(first); !reflect.DeepEqual(got, want) {
		t.Errorf("input order changed ranking: got %v, want %v", got, want)
	}
	if got, want := userOrder(first), []string{"a", "b", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order: got %v, want %v", got, want)
	}
}

func TestRankRegistrations_DoesNotTouchStoredReserve(t *testing.T) {
	r := regAt("a", 0)
	r.IsReserve = true
	ranked := RankRegistrations([]models.MatchRegistration{r}, map[string]int{}, 5)
	if !ranked[0].IsReserve {
		t.Error("stored reserve flag must be carried through untouched")
	}
	if ranked[0].IsReserveCalculated {
		t.Error("calculated reserve must follow capacity")
	}
}

func TestParticipantRanker_UsesHistory(t *testing.T) {
	f := newFixture(t)
	f.addGroup(t, "g1", models.DefaultMeritConfig())
	f.addMatch(t, "past", "g1", models.MatchStatusFinished, t0.Add(-48*time.Hour), 10)
	current := f.addMatch(t, "now", "g1", models.MatchStatusPlanning, t0.Add(48*time.Hour), 2)

	// ghost no-showed last time, reliable played, newbie has no history.
	f.register(t, "past", "ghost", t0.Add(-72*time.Hour), nil)
	f.register(t, "past", "reliable", t0.Add(-72*time.Hour), played)

	f.register(t, "now", "ghost", t0, nil)
	f.register(t, "now", "newbie", t0.Add(time.Minute), nil)
	f.register(t, "now", "reliable", t0.Add(2*time.Minute), nil)

	ranker := NewParticipantRanker(f.matches, NewMeritCalculator(f.matches))
	ranked, err := ranker.Rank(context.Background(), current, models.DefaultMeritConfig())
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if got, want := userOrder(ranked), []string{"reliable", "newbie", "ghost"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order: got %v, want %v", got, want)
	}
	wantScores := []int{3, 0, -5}
	for i, p := range ranked {
		if p.Score != wantScores[i] {
			t.Errorf("%s score: got %d, want %d", p.UserID, p.Score, wantScores[i])
		}
	}
	if !ranked[2].IsReserveCalculated || ranked[1].IsReserveCalculated {
		t.Error("only the third participant should be reserve at capacity 2")
	}

	again, err := ranker.Rank(context.Background(), current, models.DefaultMeritConfig())
	if err != nil {
		t.Fatalf("Rank again: %v", err)
	}
	if !reflect.DeepEqual(ranked, again) {
		t.Error("ranking must be idempotent on unchanged data")
	}
}
