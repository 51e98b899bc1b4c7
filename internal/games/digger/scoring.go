package digger

import (
	"math"

	"github.com/vovakirdan/tui-digger/internal/config"
)

// Scoring holds the point economy. It is pure policy with no entity state.
type Scoring struct {
	points config.DiggerScoring
	bonus  config.DiggerBonus
}

// NewScoring builds the scoring policy from configuration.
func NewScoring(points config.DiggerScoring, bonus config.DiggerBonus) Scoring {
	return Scoring{points: points, bonus: bonus}
}

// Emerald returns the points for one emerald.
func (s Scoring) Emerald() int { return s.points.Emerald }

// Treasure returns the points for collecting a broken bag.
func (s Scoring) Treasure() int { return s.points.Treasure }

// ShotKill returns the points for shooting a creature.
func (s Scoring) ShotKill() int { return s.points.ShotKill }

// BonusItem returns the points for picking up the bonus item.
func (s Scoring) BonusItem() int { return s.bonus.ItemPoints }

// StreakAward returns the bonus for the streak-th consecutive emerald:
// every streak_length-th emerald pays streak_bonus, others pay nothing.
func (s Scoring) StreakAward(streak int) int {
	if streak <= 0 || s.points.StreakLength <= 0 || streak%s.points.StreakLength != 0 {
		return 0
	}
	return s.points.StreakBonus
}

// BonusKill returns the points for the chain-th kill (0-based) of one bonus
// activation: base_kill * 2^chain, with chain capped at max_chain.
func (s Scoring) BonusKill(chain int) int {
	chain = max(0, min(chain, s.bonus.MaxChain))
	return s.bonus.BaseKill << chain
}

// FirstExtraLife returns the score threshold for the first extra life.
func (s Scoring) FirstExtraLife() int { return s.points.ExtraLifeAt }

// ExtraLives returns how many lives crossing into score earns given the
// current threshold, and the threshold that follows.
func (s Scoring) ExtraLives(score, threshold int) (lives, next int) {
	next = threshold
	if s.points.ExtraLifeIncrement <= 0 {
		if next > 0 && score >= next {
			return 1, math.MaxInt
		}
		return 0, next
	}
	for next > 0 && score >= next {
		lives++
		next += s.points.ExtraLifeIncrement
	}
	return lives, next
}
