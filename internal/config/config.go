// Package config loads game tuning from an optional YAML file layered
// over compiled-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything tunable about a run. Zero values in the YAML
// file fall back to the defaults, so a partial file is fine.
type Config struct {
	Game   Game   `yaml:"game"`
	Timing Timing `yaml:"timing"`
}

// Game tunes the economy and difficulty ramp.
type Game struct {
	StartingMoney   int `yaml:"starting_money"`
	BasePrice       int `yaml:"base_price"`
	CustomersPerDay int `yaml:"customers_per_day"`
	CustomerCap     int `yaml:"customer_cap"`
	CustomerBatch   int `yaml:"customer_batch"`
	MinIngredients  int `yaml:"min_ingredients"`
}

// Timing tunes the tick rate and presentation delays. Delays are wall
// time; the controller converts them to ticks.
type Timing struct {
	TickMS     int `yaml:"tick_ms"`
	CookMS     int `yaml:"cook_ms"`
	ArrivalMS  int `yaml:"arrival_ms"`
	DayBreakMS int `yaml:"day_break_ms"`
	BubbleMS   int `yaml:"bubble_ms"`
}

// Default returns the reference tuning: day 1 starts with $100 and five
// customers, difficulty caps at ten, a pizza needs three ingredients.
func Default() Config {
	return Config{
		Game: Game{
			StartingMoney:   100,
			BasePrice:       8,
			CustomersPerDay: 5,
			CustomerCap:     10,
			CustomerBatch:   5,
			MinIngredients:  3,
		},
		Timing: Timing{
			TickMS:     40,
			CookMS:     2000,
			ArrivalMS:  2000,
			DayBreakMS: 3000,
			BubbleMS:   1000,
		},
	}
}

// Load reads the YAML file at path and overlays it on the defaults.
// An empty path returns the defaults; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	merge(&cfg, file)
	return cfg, nil
}

// merge overlays non-zero file values onto dst.
func merge(dst *Config, file Config) {
	setInt(&dst.Game.StartingMoney, file.Game.StartingMoney)
	setInt(&dst.Game.BasePrice, file.Game.BasePrice)
	setInt(&dst.Game.CustomersPerDay, file.Game.CustomersPerDay)
	setInt(&dst.Game.CustomerCap, file.Game.CustomerCap)
	setInt(&dst.Game.CustomerBatch, file.Game.CustomerBatch)
	setInt(&dst.Game.MinIngredients, file.Game.MinIngredients)
	setInt(&dst.Timing.TickMS, file.Timing.TickMS)
	setInt(&dst.Timing.CookMS, file.Timing.CookMS)
	setInt(&dst.Timing.ArrivalMS, file.Timing.ArrivalMS)
	setInt(&dst.Timing.DayBreakMS, file.Timing.DayBreakMS)
	setInt(&dst.Timing.BubbleMS, file.Timing.BubbleMS)
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// TickInterval returns the tick duration.
func (t Timing) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// Ticks converts a millisecond delay into a whole number of ticks,
// rounding up so a nonzero delay is never zero ticks.
func (t Timing) Ticks(ms int) int {
	if t.TickMS <= 0 {
		return ms
	}
	n := (ms + t.TickMS - 1) / t.TickMS
	if n < 1 && ms > 0 {
		n = 1
	}
	return n
}
