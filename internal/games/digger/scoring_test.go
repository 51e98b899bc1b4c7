package digger

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-digger/internal/config"
)

func defaultScoring() Scoring {
	cfg := config.DefaultDiggerConfig()
	return NewScoring(cfg.Scoring, cfg.Bonus)
}

func TestBonusKillDoubles(t *testing.T) {
	s := defaultScoring()
	tests := []struct {
		chain int
		want  int
	}{
		{0, 200},
		{1, 400},
		{2, 800},
		{3, 1600},
		{4, 3200},
		{5, 6400},
		{6, 12800},
		{7, 12800}, // capped
		{20, 12800},
		{-1, 200},
	}
	for _, tt := range tests {
		if got := s.BonusKill(tt.chain); got != tt.want {
			t.Errorf("BonusKill(%d) = %d, want %d", tt.chain, got, tt.want)
		}
	}
}

func TestStreakAward(t *testing.T) {
	s := defaultScoring()
	for streak := 0; streak <= 24; streak++ {
		want := 0
		if streak > 0 && streak%8 == 0 {
			want = 250
		}
		if got := s.StreakAward(streak); got != want {
			t.Errorf("StreakAward(%d) = %d, want %d", streak, got, want)
		}
	}
}

func TestExtraLives(t *testing.T) {
	s := defaultScoring()
	tests := []struct {
		name      string
		score     int
		threshold int
		lives     int
		next      int
	}{
		{"below", 19999, 20000, 0, 20000},
		{"exactly at", 20000, 20000, 1, 40000},
		{"jump over two", 45000, 20000, 2, 60000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lives, next := s.ExtraLives(tt.score, tt.threshold)
			if lives != tt.lives || next != tt.next {
				t.Errorf("ExtraLives(%d, %d) = (%d, %d), want (%d, %d)",
					tt.score, tt.threshold, lives, next, tt.lives, tt.next)
			}
		})
	}
}

func TestBonusItemScoresNothing(t *testing.T) {
	if got := defaultScoring().BonusItem(); got != 0 {
		t.Errorf("BonusItem() = %d, the item should only start bonus mode", got)
	}
}

func TestExtraLifeWithoutIncrement(t *testing.T) {
	cfg := config.DefaultDiggerConfig()
	cfg.Scoring.ExtraLifeIncrement = 0
	s := NewScoring(cfg.Scoring, cfg.Bonus)

	lives, next := s.ExtraLives(25000, 20000)
	if lives != 1 || next != math.MaxInt {
		t.Errorf("expected a single life and no further threshold, got (%d, %d)", lives, next)
	}
}
