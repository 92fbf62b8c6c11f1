// Package customer implements the per-customer session: a random order
// and the presence state machine that walks a customer to the counter
// and away again.
package customer

import (
	"math/rand/v2"

	"github.com/elmarchena/pizzaloca/internal/domain"
	"github.com/elmarchena/pizzaloca/internal/scoring"
)

// Presence tracks where a customer is relative to the counter.
type Presence int

const (
	OffStage Presence = iota
	Entering
	Present
	Leaving
	Gone
)

// String returns a human-readable presence state.
func (p Presence) String() string {
	switch p {
	case OffStage:
		return "off-stage"
	case Entering:
		return "entering"
	case Present:
		return "present"
	case Leaving:
		return "leaving"
	case Gone:
		return "gone"
	default:
		return "unknown"
	}
}

// progressStep is the walk-animation increment per tick; a full
// entrance or exit takes 50 ticks.
const progressStep = 0.02

// Customer is one customer session. Created with an immutable random
// order, destroyed once Leaving completes. Not safe for concurrent use;
// the shift controller owns it.
type Customer struct {
	id            string
	order         domain.Order
	presence      Presence
	progress      float64
	bubbleVisible bool
	bubbleTicks   int // ticks until the speech bubble reveals
}

// New creates a customer with an order picked uniformly at random from
// recipes. Returns ErrEmptyCatalog on an empty recipe list instead of
// an undefined pick.
func New(rng *rand.Rand, recipes []domain.Recipe) (*Customer, error) {
	order, err := randomOrder(rng, recipes)
	if err != nil {
		return nil, err
	}
	return &Customer{
		id:    generateID(),
		order: order,
	}, nil
}

// randomOrder picks one recipe uniformly at random.
func randomOrder(rng *rand.Rand, recipes []domain.Recipe) (domain.Order, error) {
	if len(recipes) == 0 {
		return domain.Order{}, domain.ErrEmptyCatalog
	}
	return domain.Order{Recipe: recipes[rng.IntN(len(recipes))]}, nil
}

// ID returns the customer's short hex identifier.
func (c *Customer) ID() string { return c.id }

// Order returns the customer's immutable order.
func (c *Customer) Order() domain.Order { return c.order }

// Presence returns the current presence state.
func (c *Customer) Presence() Presence { return c.presence }

// Progress returns the walk-animation progress in [0,1].
func (c *Customer) Progress() float64 { return c.progress }

// BubbleVisible reports whether the order speech bubble has revealed.
func (c *Customer) BubbleVisible() bool { return c.bubbleVisible }

// Enter starts the walk to the counter. Valid from OffStage (the normal
// path) or Present (re-enter, matching the reference behavior); other
// states are ignored.
func (c *Customer) Enter(bubbleDelayTicks int) {
	if c.presence != OffStage && c.presence != Present {
		return
	}
	c.presence = Entering
	c.progress = 0
	c.bubbleVisible = bubbleDelayTicks <= 0
	c.bubbleTicks = bubbleDelayTicks
}

// Leave starts the walk away from the counter. Valid only while
// Present; otherwise ignored.
func (c *Customer) Leave() {
	if c.presence != Present {
		return
	}
	c.presence = Leaving
	c.progress = 0
	c.bubbleVisible = false
}

// Tick advances the walk animation by one update. Entering flips to
// Present at full progress, Leaving flips to Gone (terminal).
func (c *Customer) Tick() {
	if c.bubbleTicks > 0 {
		c.bubbleTicks--
		if c.bubbleTicks == 0 && c.presence != Leaving && c.presence != Gone {
			c.bubbleVisible = true
		}
	}

	switch c.presence {
	case Entering:
		c.progress += progressStep
		if c.progress >= 1 {
			c.progress = 1
			c.presence = Present
		}
	case Leaving:
		c.progress += progressStep
		if c.progress >= 1 {
			c.progress = 1
			c.presence = Gone
		}
	}
}

// OrderText formats the order for display. Valid in any state.
func (c *Customer) OrderText() string {
	return c.order.Text()
}

// Evaluate scores a submitted ingredient list against this customer's
// order. Callable in any state; the controller only serves while the
// customer is Present.
func (c *Customer) Evaluate(submitted []string) (float64, error) {
	return scoring.Evaluate(c.order, submitted)
}
