// Package shift implements the day and customer orchestration: one
// controller owns all mutable game state and drives it from a tick
// loop. There are no ambient singletons and no free-running timers;
// every deferred action goes through the controller's task queue.
package shift

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/elmarchena/pizzaloca/internal/customer"
	"github.com/elmarchena/pizzaloca/internal/domain"
	"github.com/elmarchena/pizzaloca/internal/logger"
	"github.com/elmarchena/pizzaloca/internal/scoring"
)

// Option configures the controller.
type Option func(*Controller)

// WithRand sets the random source used for order selection.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithTickInterval sets how often the background loop ticks.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) { c.tickInterval = d }
}

// WithStartingMoney sets the money the run begins with.
func WithStartingMoney(n int) Option {
	return func(c *Controller) { c.money = n }
}

// WithBasePrice sets the flat payout per served pizza.
func WithBasePrice(n int) Option {
	return func(c *Controller) { c.basePrice = n }
}

// WithCustomersPerDay sets day one's customer count.
func WithCustomersPerDay(n int) Option {
	return func(c *Controller) { c.maxCustomers = n }
}

// WithCustomerCap sets the ceiling the difficulty ramp stops at.
func WithCustomerCap(n int) Option {
	return func(c *Controller) { c.customerCap = n }
}

// WithCustomerBatch sets how many customers a queue refill creates at most.
func WithCustomerBatch(n int) Option {
	return func(c *Controller) { c.customerBatch = n }
}

// WithMinIngredients sets how many ingredients a pizza needs before it
// can go in the oven.
func WithMinIngredients(n int) Option {
	return func(c *Controller) { c.minIngredients = n }
}

// WithCookDelay sets the cooking time in ticks.
func WithCookDelay(ticks int) Option {
	return func(c *Controller) { c.cookDelay = ticks }
}

// WithArrivalDelay sets the pause between customers in ticks.
func WithArrivalDelay(ticks int) Option {
	return func(c *Controller) { c.arrivalDelay = ticks }
}

// WithDayBreakDelay sets the pause between days in ticks.
func WithDayBreakDelay(ticks int) Option {
	return func(c *Controller) { c.dayBreakDelay = ticks }
}

// WithBubbleDelay sets how many ticks after arrival the order bubble shows.
func WithBubbleDelay(ticks int) Option {
	return func(c *Controller) { c.bubbleDelay = ticks }
}

// Controller owns the shift state: money, day, difficulty, the customer
// queue, and the pizza in progress. All mutation funnels through its
// methods under one mutex; the tick loop and the input goroutine are
// the only callers.
type Controller struct {
	catalog   domain.Catalog
	presenter domain.Presenter
	sound     domain.Sound
	ledger    domain.ShiftLedger
	log       *logger.Logger
	rng       *rand.Rand

	tickInterval   time.Duration
	basePrice      int
	customerCap    int
	customerBatch  int
	minIngredients int
	cookDelay      int // ticks
	arrivalDelay   int
	dayBreakDelay  int
	bubbleDelay    int

	mu           sync.Mutex
	tick         int64
	epoch        uint64
	money        int
	day          int
	served       int
	dayEarned    int
	maxCustomers int
	queue        []*customer.Customer
	current      *customer.Customer
	departing    []*customer.Customer
	pizza        *pizza
	sched        schedule

	running bool
	cancel  context.CancelFunc
}

// New creates a shift controller with the given collaborators and
// options. Defaults match the reference game: $100, five customers on
// day one, cap ten, three-ingredient minimum, 40 ms ticks.
func New(cat domain.Catalog, pres domain.Presenter, snd domain.Sound, led domain.ShiftLedger, log *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		catalog:   cat,
		presenter: pres,
		sound:     snd,
		ledger:    led,
		log:       log,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),

		tickInterval:   40 * time.Millisecond,
		basePrice:      scoring.BasePrice,
		customerCap:    10,
		customerBatch:  5,
		minIngredients: 3,
		cookDelay:      50,
		arrivalDelay:   50,
		dayBreakDelay:  75,
		bubbleDelay:    25,

		money:        100,
		day:          1,
		maxCustomers: 5,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins the background tick loop. Non-blocking.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		c.log.Warn("shift controller already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.running = true

	go c.loop(childCtx)

	c.log.Info("shift controller started (tick=%s)", c.tickInterval)
}

// Stop gracefully shuts down the tick loop.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}

	c.cancel()
	c.running = false
	c.log.Info("shift controller stopped")
}

// loop is the main tick loop.
func (c *Controller) loop(ctx context.Context) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick(ctx)
		}
	}
}

// Begin opens the pizzeria: publishes the initial stats and brings the
// first customer to the counter.
func (c *Controller) Begin(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.presenter.ShowGameUI()
	c.presenter.UpdateDay(c.day)
	c.presenter.UpdateMoney(c.money)
	c.nextCustomerLocked(ctx)
}

// Tick runs one logical update: advance customer walk animations, then
// run whatever tasks have come due.
func (c *Controller) Tick(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++

	if c.current != nil {
		c.current.Tick()
		if c.current.Presence() == customer.Gone {
			c.log.Debug("customer %s gone", c.current.ID())
			c.current = nil
		}
	}

	remaining := c.departing[:0]
	for _, d := range c.departing {
		d.Tick()
		if d.Presence() != customer.Gone {
			remaining = append(remaining, d)
		}
	}
	c.departing = remaining

	for _, t := range c.sched.due(c.tick, c.epoch) {
		c.log.Debug("running task %q at tick %d", t.name, c.tick)
		t.fn(ctx)
	}
}

// NextCustomer pulls the next customer to the counter, refilling the
// queue if needed. A no-op when a customer is already there, so a stale
// double-fire cannot seat two customers at once.
func (c *Controller) NextCustomer(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextCustomerLocked(ctx)
}

func (c *Controller) nextCustomerLocked(ctx context.Context) {
	if c.current != nil {
		switch c.current.Presence() {
		case customer.Leaving, customer.Gone:
			// The previous customer keeps walking out on their own.
			c.departing = append(c.departing, c.current)
			c.current = nil
		default:
			c.log.Warn("next customer requested while %s is at the counter", c.current.ID())
			return
		}
	}

	if len(c.queue) == 0 {
		c.generateCustomersLocked()
	}
	if len(c.queue) == 0 {
		c.log.Debug("no customers left to seat")
		return
	}

	c.current = c.queue[0]
	c.queue = c.queue[1:]
	c.current.Enter(c.bubbleDelay)

	c.sound.Play(domain.CueCustomer)
	c.presenter.ShowCustomerOrder(c.current.OrderText())
	c.log.Info("customer %s wants %s", c.current.ID(), c.current.Order().Recipe.Name)
}

// generateCustomersLocked refills the queue with fresh customers, at
// most customerBatch at a time and never more than the day has left.
func (c *Controller) generateCustomersLocked() {
	n := c.maxCustomers - c.served
	if n > c.customerBatch {
		n = c.customerBatch
	}

	for i := 0; i < n; i++ {
		cust, err := customer.New(c.rng, c.catalog.Recipes())
		if err != nil {
			c.log.Error("generating customer: %v", err)
			c.presenter.ShowMessage("The pizzeria has no menu today!")
			return
		}
		c.queue = append(c.queue, cust)
	}
	c.log.Debug("generated %d customers (day %d, served %d/%d)", n, c.day, c.served, c.maxCustomers)
}

// AddIngredient puts an ingredient on the pizza in progress. The first
// ingredient must be the dough; dough can only go on once. Rejections
// report to the player and leave state unchanged.
func (c *Controller) AddIngredient(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ing, err := c.catalog.Ingredient(id)
	if err != nil {
		c.presenter.ShowMessage("We don't have that ingredient!")
		return fmt.Errorf("adding ingredient %q: %w", id, err)
	}

	if c.pizza == nil {
		if ing.Category != domain.CategoryBase {
			c.presenter.ShowMessage("You need to add dough first!")
			return domain.ErrMissingBase
		}
		c.pizza = newPizza(ing.ID)
		c.presenter.UpdateIngredients(c.pizza.ids())
		c.sound.Play(domain.CueDough)
		c.log.Debug("started pizza with %s", ing.ID)
		return nil
	}

	if ing.Category == domain.CategoryBase {
		c.presenter.ShowMessage("You already have dough!")
		return domain.ErrDuplicateBase
	}

	c.pizza.add(ing.ID)
	c.presenter.UpdateIngredients(c.pizza.ids())
	c.sound.Play(domain.CueIngredient)
	c.log.Debug("added %s (pizza has %d ingredients)", ing.ID, c.pizza.count())
	return nil
}

// Cook puts the pizza in the oven. Requires a pizza with at least the
// minimum ingredient count; serving happens after the cooking delay.
func (c *Controller) Cook(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pizza == nil {
		c.presenter.ShowMessage("No pizza to cook!")
		return domain.ErrNoPizza
	}
	if c.pizza.count() < c.minIngredients {
		c.presenter.ShowMessage("You need more ingredients!")
		return domain.ErrTooFewIngredients
	}

	c.sound.Play(domain.CueOven)
	c.presenter.ShowMessage("Cooking pizza!")
	c.sched.after(c.tick, c.cookDelay, c.epoch, "serve", func(ctx context.Context) {
		c.serveLocked(ctx)
	})
	c.log.Info("cooking pizza with %d ingredients", c.pizza.count())
	return nil
}

// Serve hands the cooked pizza to the current customer immediately.
// Exposed for flows that bypass the cooking delay.
func (c *Controller) Serve(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.serveLocked(ctx)
}

func (c *Controller) serveLocked(ctx context.Context) error {
	if c.current == nil || c.current.Presence() != customer.Present {
		c.presenter.ShowMessage("No customer waiting!")
		return domain.ErrNoCustomer
	}

	var submitted []string
	if c.pizza != nil {
		submitted = c.pizza.ids()
	}

	satisfaction, err := c.current.Evaluate(submitted)
	if err != nil {
		c.log.Error("evaluating pizza: %v", err)
		return err
	}

	earnings := scoring.Earnings(satisfaction, c.basePrice)
	c.money += earnings
	c.dayEarned += earnings

	c.presenter.ShowMessage(fmt.Sprintf("Customer satisfied! You earned $%d", earnings))
	c.presenter.UpdateMoney(c.money)
	c.sound.Play(domain.CueCash)
	if satisfaction >= 0.5 {
		c.sound.Play(domain.CueSuccess)
	} else {
		c.sound.Play(domain.CueFail)
	}

	c.pizza = nil
	c.presenter.UpdateIngredients(nil)

	c.current.Leave()
	c.presenter.HideCustomerOrder()
	c.served++
	c.log.Info("served customer %s (satisfaction=%.2f, earned=%d, %d/%d today)",
		c.current.ID(), satisfaction, earnings, c.served, c.maxCustomers)

	if c.served >= c.maxCustomers {
		c.endDayLocked(ctx)
	} else {
		c.sched.after(c.tick, c.arrivalDelay, c.epoch, "next-customer", func(ctx context.Context) {
			c.nextCustomerLocked(ctx)
		})
	}
	return nil
}

// EndDay closes the current day: records it, bumps the difficulty, and
// schedules the next day's first customer.
func (c *Controller) EndDay(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.endDayLocked(ctx)
}

func (c *Controller) endDayLocked(ctx context.Context) {
	finished := c.day
	rec := domain.DayRecord{
		Day:     finished,
		Served:  c.served,
		Earned:  c.dayEarned,
		EndedAt: time.Now(),
	}
	if err := c.ledger.Record(ctx, rec); err != nil {
		c.log.Error("recording day %d: %v", finished, err)
	}

	c.day++
	c.served = 0
	c.dayEarned = 0
	if c.maxCustomers < c.customerCap {
		c.maxCustomers++
	}

	// New epoch: anything still scheduled belongs to the finished day.
	c.epoch++

	c.presenter.ShowMessage(fmt.Sprintf("End of day %d! Total money: $%d", finished, c.money))
	c.presenter.UpdateDay(c.day)
	c.log.Info("day %d ended (money=%d, next day max=%d)", finished, c.money, c.maxCustomers)

	c.sched.after(c.tick, c.dayBreakDelay, c.epoch, "new-day", func(ctx context.Context) {
		c.presenter.ShowMessage(fmt.Sprintf("Day %d! Get ready for customers", c.day))
		c.nextCustomerLocked(ctx)
	})
}

// Snapshot returns a read-only view of the shift for display.
func (c *Controller) Snapshot() domain.ShiftSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := domain.ShiftSnapshot{
		Day:          c.day,
		Money:        c.money,
		Served:       c.served,
		MaxCustomers: c.maxCustomers,
	}
	if c.current != nil {
		switch c.current.Presence() {
		case customer.Entering, customer.Present:
			snap.OrderText = c.current.OrderText()
		}
	}
	if c.pizza != nil {
		snap.Selected = c.pizza.ids()
	}
	return snap
}
