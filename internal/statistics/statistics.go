// Package statistics aggregates settled blackjack hands.
package statistics

import (
	"fmt"
	"math"

	"github.com/lox/blackjack/internal/game"
)

// Statistics tracks the settled hands of a simulation. Each hand scores +1
// for a win, -1 for a loss and 0 for a push.
type Statistics struct {
	Rounds int `json:"rounds"`
	Hands  int `json:"hands"`

	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Pushes int `json:"pushes"`

	Blackjacks  int `json:"blackjacks"`
	PlayerBusts int `json:"player_busts"`
	DealerBusts int `json:"dealer_busts"`

	Sum  float64 `json:"sum"`
	Sum2 float64 `json:"sum_squares"` // for variance
}

func score(o game.Outcome) float64 {
	switch o {
	case game.Win:
		return 1
	case game.Lose:
		return -1
	default:
		return 0
	}
}

// AddRound records one dealt round: the dealer's final hand and every
// player's settlement
func (s *Statistics) AddRound(dealer *game.Hand, results []game.Result) {
	s.Rounds++
	if dealer.IsBust() {
		s.DealerBusts++
	}
	for _, res := range results {
		s.Add(res)
	}
}

// Add incorporates a single settled hand
func (s *Statistics) Add(res game.Result) {
	s.Hands++
	switch res.Outcome {
	case game.Win:
		s.Wins++
	case game.Lose:
		s.Losses++
	default:
		s.Pushes++
	}
	if res.Blackjack {
		s.Blackjacks++
	}
	if res.Bust {
		s.PlayerBusts++
	}

	v := score(res.Outcome)
	s.Sum += v
	s.Sum2 += v * v
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Hands += other.Hands
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.PlayerBusts += other.PlayerBusts
	s.DealerBusts += other.DealerBusts
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
}

// Mean returns the average score per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.Sum / float64(s.Hands)
}

// Variance returns the sample variance of hand scores
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of hand scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Rate returns n as a fraction of all hands
func (s *Statistics) Rate(n int) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(n) / float64(s.Hands)
}

// Validate checks the counters are consistent
func (s *Statistics) Validate() error {
	if s.Wins+s.Losses+s.Pushes != s.Hands {
		return fmt.Errorf("outcomes (%d+%d+%d) do not add up to %d hands", s.Wins, s.Losses, s.Pushes, s.Hands)
	}
	if s.PlayerBusts > s.Losses {
		return fmt.Errorf("%d player busts but only %d losses", s.PlayerBusts, s.Losses)
	}
	if s.DealerBusts > s.Rounds {
		return fmt.Errorf("%d dealer busts in %d rounds", s.DealerBusts, s.Rounds)
	}
	if want := float64(s.Wins - s.Losses); math.Abs(s.Sum-want) > 1e-9 {
		return fmt.Errorf("score sum %.1f does not match wins minus losses %.1f", s.Sum, want)
	}
	return nil
}
