package gameservice

import (
	"fmt"
	"math"
	"strings"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/pkg/random"
)

// Outcome is the result of one round before it is applied to an account.
type Outcome struct {
	Multiplier float64
	Symbols    []string
	Crash      float64
	CashedAt   float64
	Info       string
}

// maxPayout is the first float64 that no longer converts to int64.
const maxPayout = float64(math.MaxInt64)

// Win is the payout of bet under the outcome, rounded down. A payout outside
// the int64 range is rejected with ErrInvalidArgument.
func (o Outcome) Win(bet int64) (int64, error) {
	win := math.Floor(float64(bet) * o.Multiplier)
	if win >= maxPayout || math.IsNaN(win) {
		return 0, fmt.Errorf("%w: payout overflow", domain.ErrInvalidArgument)
	}
	return int64(win), nil
}

// OutcomeFunc draws one round of a game.
type OutcomeFunc func(rnd random.Source) Outcome

var SlotSymbols = []string{"777", "BAR", "Grape", "Lemon", "Cherry"}

// SlotPayouts maps a three-of-a-kind symbol to its multiplier.
var SlotPayouts = map[string]float64{
	"777":    10,
	"BAR":    5,
	"Grape":  3,
	"Lemon":  2,
	"Cherry": 2,
}

func Slots(rnd random.Source) Outcome {
	reels := make([]string, 3)
	for i := range reels {
		reels[i] = SlotSymbols[rnd.IntN(len(SlotSymbols))]
	}
	var multiplier float64
	if reels[0] == reels[1] && reels[1] == reels[2] {
		multiplier = SlotPayouts[reels[0]]
	}
	return Outcome{
		Multiplier: multiplier,
		Symbols:    reels,
		Info:       "Slots result " + strings.Join(reels, "|"),
	}
}

const (
	RocketMaxCrash = 5.0
	rocketSkew     = 1.3
)

// DefaultRocketCrashChance is the probability that the rocket crashes before
// the player cashes out, losing the whole bet.
const DefaultRocketCrashChance = 0.5

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rocket plays a round with DefaultRocketCrashChance.
func Rocket(rnd random.Source) Outcome {
	return RocketWithCrashChance(DefaultRocketCrashChance)(rnd)
}

// RocketWithCrashChance draws a crash point in [1, RocketMaxCrash] skewed
// towards low values. With probability crashChance the rocket is lost before
// cash-out and pays nothing, otherwise it cashes out at a uniform point before
// the crash.
func RocketWithCrashChance(crashChance float64) OutcomeFunc {
	return func(rnd random.Source) Outcome {
		crash := round2(math.Pow(rnd.Float64(), rocketSkew)*(RocketMaxCrash-1) + 1)
		if rnd.Float64() < crashChance {
			return Outcome{
				Crash: crash,
				Info:  fmt.Sprintf("Rocket crashed at %.2f before cash-out", crash),
			}
		}
		cashed := round2(1 + rnd.Float64()*(crash-1))
		return Outcome{
			Multiplier: cashed,
			Crash:      crash,
			CashedAt:   cashed,
			Info:       fmt.Sprintf("Rocket crashed at %.2f, cashed at %.2f", crash, cashed),
		}
	}
}

const (
	basketSwish = 0.25
	basketMake  = 0.6
)

// Basketball pays 3x on a swish, 2x on a make and nothing on a miss.
func Basketball(rnd random.Source) Outcome {
	r := rnd.Float64()
	var multiplier float64
	switch {
	case r < basketSwish:
		multiplier = 3
	case r < basketMake:
		multiplier = 2
	}
	return Outcome{
		Multiplier: multiplier,
		Info:       fmt.Sprintf("Basket result x%g", multiplier),
	}
}
