// Package scoring evaluates a submitted pizza against a customer's
// order. Both functions are pure: same inputs, same outputs, no state.
package scoring

import (
	"math"

	"github.com/elmarchena/pizzaloca/internal/domain"
)

// BasePrice is the flat payout every served pizza earns before the tip.
// The recipe's menu price deliberately plays no part in payout.
const BasePrice = 8

// extraPenalty is subtracted from satisfaction per unwanted ingredient.
const extraPenalty = 0.1

// Evaluate scores submitted ingredient IDs against the order and
// returns a satisfaction value in [0, 1].
//
// Each required ingredient counts as matched if it appears anywhere in
// the submission (membership, not multiplicity). Every submitted
// element that the order does not ask for, duplicates included, costs
// one penalty. Returns ErrInvalidState if the order has no required
// ingredients; the catalog invariant rules that out for real recipes.
func Evaluate(order domain.Order, submitted []string) (float64, error) {
	required := order.Recipe.Ingredients
	if len(required) == 0 {
		return 0, domain.ErrInvalidState
	}

	have := make(map[string]bool, len(submitted))
	for _, id := range submitted {
		have[id] = true
	}

	matched := 0
	wanted := make(map[string]bool, len(required))
	for _, id := range required {
		wanted[id] = true
		if have[id] {
			matched++
		}
	}

	extras := 0
	for _, id := range submitted {
		if !wanted[id] {
			extras++
		}
	}

	satisfaction := float64(matched)/float64(len(required)) - extraPenalty*float64(extras)
	return clamp(satisfaction, 0, 1), nil
}

// Earnings converts satisfaction into money: the flat base price plus a
// tip of up to 5, floored.
func Earnings(satisfaction float64, basePrice int) int {
	tip := int(math.Floor(satisfaction * 5))
	return basePrice + tip
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
