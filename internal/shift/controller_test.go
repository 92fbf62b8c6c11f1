package shift

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/elmarchena/pizzaloca/internal/catalog"
	"github.com/elmarchena/pizzaloca/internal/customer"
	"github.com/elmarchena/pizzaloca/internal/domain"
	"github.com/elmarchena/pizzaloca/internal/ledger"
	"github.com/elmarchena/pizzaloca/internal/logger"
)

// fakePresenter records every presentation call for assertions.
type fakePresenter struct {
	messages    []string
	orders      []string
	hides       int
	money       []int
	days        []int
	ingredients [][]string
	gameUI      bool
}

func (p *fakePresenter) ShowMessage(text string)        { p.messages = append(p.messages, text) }
func (p *fakePresenter) ShowCustomerOrder(text string)  { p.orders = append(p.orders, text) }
func (p *fakePresenter) HideCustomerOrder()             { p.hides++ }
func (p *fakePresenter) UpdateMoney(amount int)         { p.money = append(p.money, amount) }
func (p *fakePresenter) UpdateDay(day int)              { p.days = append(p.days, day) }
func (p *fakePresenter) UpdateIngredients(ids []string) { p.ingredients = append(p.ingredients, ids) }
func (p *fakePresenter) ShowGameUI()                    { p.gameUI = true }

func (p *fakePresenter) lastMessage() string {
	if len(p.messages) == 0 {
		return ""
	}
	return p.messages[len(p.messages)-1]
}

// fakeSound records played cues.
type fakeSound struct {
	cues []domain.Cue
}

func (s *fakeSound) Play(cue domain.Cue) { s.cues = append(s.cues, cue) }

func (s *fakeSound) count(cue domain.Cue) int {
	n := 0
	for _, c := range s.cues {
		if c == cue {
			n++
		}
	}
	return n
}

// newTestController wires a controller to fakes with single-tick delays
// so tests drive time by calling Tick directly.
func newTestController(t *testing.T, opts ...Option) (*Controller, *fakePresenter, *fakeSound, *ledger.Memory) {
	t.Helper()

	log := logger.New(logger.LevelOff, nil)
	pres := &fakePresenter{}
	snd := &fakeSound{}
	led := ledger.NewMemory(log)

	base := []Option{
		WithRand(rand.New(rand.NewPCG(11, 17))),
		WithCookDelay(1),
		WithArrivalDelay(1),
		WithDayBreakDelay(1),
		WithBubbleDelay(0),
	}
	c := New(catalog.NewMemory(log), pres, snd, led, log, append(base, opts...)...)
	return c, pres, snd, led
}

// tickN advances the controller n logical ticks.
func tickN(c *Controller, n int) {
	ctx := context.Background()
	for i := 0; i < n; i++ {
		c.Tick(ctx)
	}
}

// waitAtCounter ticks until the current customer finishes walking in.
func waitAtCounter(t *testing.T, c *Controller) {
	t.Helper()

	for i := 0; i < 100; i++ {
		c.mu.Lock()
		ready := c.current != nil && c.current.Presence() == customer.Present
		c.mu.Unlock()
		if ready {
			return
		}
		c.Tick(context.Background())
	}
	t.Fatal("customer never reached the counter")
}

// servePerfectPizza assembles the current customer's exact order and
// runs it through cook and serve.
func servePerfectPizza(t *testing.T, c *Controller) {
	t.Helper()

	waitAtCounter(t, c)

	c.mu.Lock()
	want := c.current.Order().Recipe.Ingredients
	c.mu.Unlock()

	for _, id := range want {
		if err := c.AddIngredient(id); err != nil {
			t.Fatalf("adding %s: %v", id, err)
		}
	}
	if err := c.Cook(context.Background()); err != nil {
		t.Fatalf("cook: %v", err)
	}
	// Cook delay is one tick in tests.
	tickN(c, 1)
}

func TestAddIngredientRules(t *testing.T) {
	c, pres, snd, _ := newTestController(t)

	if err := c.AddIngredient("cheese"); !errors.Is(err, domain.ErrMissingBase) {
		t.Fatalf("topping without dough: got %v, want ErrMissingBase", err)
	}
	if got := pres.lastMessage(); got != "You need to add dough first!" {
		t.Errorf("message = %q", got)
	}

	if err := c.AddIngredient("anchovies"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown ingredient: got %v, want ErrNotFound", err)
	}
	if got := pres.lastMessage(); got != "We don't have that ingredient!" {
		t.Errorf("message = %q", got)
	}

	if err := c.AddIngredient("dough"); err != nil {
		t.Fatalf("dough: %v", err)
	}
	if snd.count(domain.CueDough) != 1 {
		t.Errorf("expected one dough cue, got %d", snd.count(domain.CueDough))
	}

	if err := c.AddIngredient("dough"); !errors.Is(err, domain.ErrDuplicateBase) {
		t.Fatalf("second dough: got %v, want ErrDuplicateBase", err)
	}
	if got := pres.lastMessage(); got != "You already have dough!" {
		t.Errorf("message = %q", got)
	}

	if err := c.AddIngredient("cheese"); err != nil {
		t.Fatalf("cheese: %v", err)
	}
	if snd.count(domain.CueIngredient) != 1 {
		t.Errorf("expected one ingredient cue, got %d", snd.count(domain.CueIngredient))
	}

	snap := c.Snapshot()
	if len(snap.Selected) != 2 || snap.Selected[0] != "dough" || snap.Selected[1] != "cheese" {
		t.Errorf("selected = %v", snap.Selected)
	}
}

func TestCookRequiresPizza(t *testing.T) {
	c, pres, _, _ := newTestController(t)

	if err := c.Cook(context.Background()); !errors.Is(err, domain.ErrNoPizza) {
		t.Fatalf("got %v, want ErrNoPizza", err)
	}
	if got := pres.lastMessage(); got != "No pizza to cook!" {
		t.Errorf("message = %q", got)
	}
}

func TestCookRequiresMinimumIngredients(t *testing.T) {
	c, pres, _, _ := newTestController(t)

	c.AddIngredient("dough")
	c.AddIngredient("cheese")

	if err := c.Cook(context.Background()); !errors.Is(err, domain.ErrTooFewIngredients) {
		t.Fatalf("got %v, want ErrTooFewIngredients", err)
	}
	if got := pres.lastMessage(); got != "You need more ingredients!" {
		t.Errorf("message = %q", got)
	}
}

func TestServeWithoutCustomer(t *testing.T) {
	c, pres, _, _ := newTestController(t)

	if err := c.Serve(context.Background()); !errors.Is(err, domain.ErrNoCustomer) {
		t.Fatalf("got %v, want ErrNoCustomer", err)
	}
	if got := pres.lastMessage(); got != "No customer waiting!" {
		t.Errorf("message = %q", got)
	}
}

// Cooking a pizza that matches the order exactly pays base price plus
// the full five-dollar tip.
func TestServePerfectPizza(t *testing.T) {
	c, pres, snd, _ := newTestController(t)
	c.Begin(context.Background())

	servePerfectPizza(t, c)

	snap := c.Snapshot()
	if snap.Money != 113 {
		t.Errorf("money = %d, want 113", snap.Money)
	}
	if snap.Served != 1 {
		t.Errorf("served = %d, want 1", snap.Served)
	}
	if len(snap.Selected) != 0 {
		t.Errorf("pizza should be cleared after serving, got %v", snap.Selected)
	}

	found := false
	for _, msg := range pres.messages {
		if msg == "Customer satisfied! You earned $13" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing earnings message, got %v", pres.messages)
	}
	if snd.count(domain.CueCash) != 1 || snd.count(domain.CueSuccess) != 1 {
		t.Errorf("cues = %v", snd.cues)
	}
	if pres.hides != 1 {
		t.Errorf("order bubble hidden %d times, want 1", pres.hides)
	}
}

// An empty-handed serve still pays the base price and plays the fail cue.
func TestServeEmptyHanded(t *testing.T) {
	c, _, snd, _ := newTestController(t)
	c.Begin(context.Background())
	waitAtCounter(t, c)

	if err := c.Serve(context.Background()); err != nil {
		t.Fatalf("serve: %v", err)
	}

	snap := c.Snapshot()
	if snap.Money != 108 {
		t.Errorf("money = %d, want 108", snap.Money)
	}
	if snd.count(domain.CueFail) != 1 {
		t.Errorf("expected fail cue, got %v", snd.cues)
	}
}

// Serving the day's full customer count closes the day, records it, and
// raises the next day's customer count by one.
func TestFullDayProgression(t *testing.T) {
	c, pres, _, led := newTestController(t)
	ctx := context.Background()
	c.Begin(ctx)

	for i := 0; i < 5; i++ {
		servePerfectPizza(t, c)
		// Arrival delay is one tick in tests.
		tickN(c, 1)
	}

	snap := c.Snapshot()
	if snap.Day != 2 {
		t.Errorf("day = %d, want 2", snap.Day)
	}
	if snap.Served != 0 {
		t.Errorf("served = %d, want 0 after day rollover", snap.Served)
	}
	if snap.MaxCustomers != 6 {
		t.Errorf("max customers = %d, want 6", snap.MaxCustomers)
	}
	if snap.Money != 100+5*13 {
		t.Errorf("money = %d, want %d", snap.Money, 100+5*13)
	}

	found := false
	for _, msg := range pres.messages {
		if msg == "End of day 1! Total money: $165" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing end-of-day message, got %v", pres.messages)
	}

	days, err := led.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 recorded day, got %d", len(days))
	}
	if days[0].Day != 1 || days[0].Served != 5 || days[0].Earned != 65 {
		t.Errorf("record = %+v", days[0])
	}

	// The day break schedules the next day's first customer.
	tickN(c, 1)
	for _, msg := range pres.messages {
		if msg == "Day 2! Get ready for customers" {
			return
		}
	}
	t.Errorf("missing new-day message, got %v", pres.messages)
}

// The difficulty ramp stops at the customer cap.
func TestCustomerCap(t *testing.T) {
	c, _, _, _ := newTestController(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		c.EndDay(ctx)
	}

	snap := c.Snapshot()
	if snap.MaxCustomers != 10 {
		t.Errorf("max customers = %d, want 10", snap.MaxCustomers)
	}
	if snap.Day != 13 {
		t.Errorf("day = %d, want 13", snap.Day)
	}
}

// Ending the day invalidates tasks scheduled during it: a cook still in
// the oven when the day closes must not pay out on the next day.
func TestDayEndDropsPendingTasks(t *testing.T) {
	c, _, _, _ := newTestController(t, WithCookDelay(10))
	ctx := context.Background()
	c.Begin(ctx)
	waitAtCounter(t, c)

	c.mu.Lock()
	want := c.current.Order().Recipe.Ingredients
	c.mu.Unlock()
	for _, id := range want {
		if err := c.AddIngredient(id); err != nil {
			t.Fatalf("adding %s: %v", id, err)
		}
	}
	if err := c.Cook(ctx); err != nil {
		t.Fatalf("cook: %v", err)
	}

	c.EndDay(ctx)
	moneyBefore := c.Snapshot().Money

	tickN(c, 20)
	if got := c.Snapshot().Money; got != moneyBefore {
		t.Errorf("stale serve task paid out: money %d -> %d", moneyBefore, got)
	}
}

// A duplicate next-customer request must not seat a second customer.
func TestNextCustomerIdempotent(t *testing.T) {
	c, pres, _, _ := newTestController(t)
	ctx := context.Background()
	c.Begin(ctx)

	c.NextCustomer(ctx)
	c.NextCustomer(ctx)

	if len(pres.orders) != 1 {
		t.Errorf("customer order shown %d times, want 1", len(pres.orders))
	}
}

// Queue refills are capped at the batch size and at the day's remainder.
func TestQueueBatch(t *testing.T) {
	c, _, _, _ := newTestController(t, WithCustomersPerDay(8), WithCustomerBatch(3))
	c.Begin(context.Background())

	c.mu.Lock()
	queued := len(c.queue)
	c.mu.Unlock()
	if queued != 2 {
		t.Errorf("queue = %d after seating one of a batch of 3, want 2", queued)
	}

	c2, _, _, _ := newTestController(t, WithCustomersPerDay(2), WithCustomerBatch(5))
	c2.Begin(context.Background())

	c2.mu.Lock()
	queued = len(c2.queue)
	c2.mu.Unlock()
	if queued != 1 {
		t.Errorf("queue = %d with 2 customers left in the day, want 1", queued)
	}
}

// Snapshot hides the order text once the customer starts leaving.
func TestSnapshotOrderVisibility(t *testing.T) {
	c, _, _, _ := newTestController(t)
	ctx := context.Background()
	c.Begin(ctx)

	if c.Snapshot().OrderText == "" {
		t.Error("order text should show while the customer walks in")
	}

	waitAtCounter(t, c)
	if err := c.Serve(ctx); err != nil {
		t.Fatalf("serve: %v", err)
	}
	if got := c.Snapshot().OrderText; got != "" {
		t.Errorf("order text should clear after serving, got %q", got)
	}
}
