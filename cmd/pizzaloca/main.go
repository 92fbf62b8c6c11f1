// Pizza Loca — run a tiny Dominican pizzeria from your terminal.
//
// Usage:
//
//	pizzaloca [-verbose] [-quiet] [-config game.yaml] [-no-sound]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/elmarchena/pizzaloca/internal/catalog"
	"github.com/elmarchena/pizzaloca/internal/command"
	"github.com/elmarchena/pizzaloca/internal/config"
	"github.com/elmarchena/pizzaloca/internal/display"
	"github.com/elmarchena/pizzaloca/internal/domain"
	"github.com/elmarchena/pizzaloca/internal/ledger"
	"github.com/elmarchena/pizzaloca/internal/logger"
	"github.com/elmarchena/pizzaloca/internal/shift"
	"github.com/elmarchena/pizzaloca/internal/sound"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".pizzaloca-logs/pizzaloca.log", "file to write logs to (use \"stderr\" to log to console)")
	configPath := flag.String("config", "pizzaloca.yaml", "optional YAML tuning file")
	noSound := flag.Bool("no-sound", false, "disable audio cues")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package (used by third-party libs) to the
	// same output so it doesn't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	cat := catalog.NewMemory(log)
	led := ledger.NewMemory(log)
	ui := display.NewUI()
	parser := command.NewParser(cat, log)

	var snd domain.Sound = sound.NewNoOp(log)
	if !*noSound {
		player, err := sound.NewPlayer(log)
		if err != nil {
			log.Error("audio init failed, sound disabled: %v", err)
		} else {
			snd = player
		}
	}

	ctrl := shift.New(cat, ui, snd, led, log,
		shift.WithTickInterval(cfg.Timing.TickInterval()),
		shift.WithStartingMoney(cfg.Game.StartingMoney),
		shift.WithBasePrice(cfg.Game.BasePrice),
		shift.WithCustomersPerDay(cfg.Game.CustomersPerDay),
		shift.WithCustomerCap(cfg.Game.CustomerCap),
		shift.WithCustomerBatch(cfg.Game.CustomerBatch),
		shift.WithMinIngredients(cfg.Game.MinIngredients),
		shift.WithCookDelay(cfg.Timing.Ticks(cfg.Timing.CookMS)),
		shift.WithArrivalDelay(cfg.Timing.Ticks(cfg.Timing.ArrivalMS)),
		shift.WithDayBreakDelay(cfg.Timing.Ticks(cfg.Timing.DayBreakMS)),
		shift.WithBubbleDelay(cfg.Timing.Ticks(cfg.Timing.BubbleMS)),
	)
	ui.SetStats(ctrl.Snapshot)

	app := &gameApp{
		ctrl:    ctrl,
		parser:  parser,
		catalog: cat,
		ledger:  led,
		log:     log,
		ui:      ui,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run game logic in a background goroutine.
	go func() {
		ui.WaitReady()
		ctrl.Start(ctx)
		ctrl.Begin(ctx)
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	ctrl.Stop()
	cancel()
}

type gameApp struct {
	ctrl    *shift.Controller
	parser  *command.Parser
	catalog domain.Catalog
	ledger  domain.ShiftLedger
	log     *logger.Logger
	ui      *display.UI
}

func (a *gameApp) run(ctx context.Context) {
	a.ui.ShowMessage("Welcome to Pizza Loca!")
	a.ui.Println("")
	a.showMenu()

	uiCh := a.ui.InputChan()

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent := a.parser.Parse(input)
		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)

		switch intent.Type {
		case command.IntentAddIngredient:
			if err := a.ctrl.AddIngredient(intent.Payload); err != nil {
				a.log.Debug("add ingredient: %v", err)
			}
		case command.IntentCook:
			if err := a.ctrl.Cook(ctx); err != nil {
				a.log.Debug("cook: %v", err)
			}
		case command.IntentMenu:
			a.showMenu()
		case command.IntentRecipes:
			a.showRecipes()
		case command.IntentStatus:
			a.showStatus(ctx)
		case command.IntentHelp:
			a.showHelp()
		case command.IntentQuit:
			a.ui.ShowMessage("Thanks for running the pizzeria. See you tomorrow!")
			return
		case command.IntentUnknown:
			a.ui.PrintHint("I didn't catch that. Type 'help' for commands or 'menu' for ingredients.")
		}
	}
}

func (a *gameApp) showMenu() {
	a.ui.ShowMessage("Ingredients:")
	for i, ing := range a.catalog.Ingredients() {
		a.ui.PrintHint(fmt.Sprintf("[%d] %-16s $%.2f  (%s)", i+1, ing.Name, ing.Price, ing.Category))
	}
	a.ui.Println("")
	a.ui.PrintHint("Add by number or name, then 'cook' when the pizza is ready.")
}

func (a *gameApp) showRecipes() {
	a.ui.ShowMessage("Recipe book:")
	for _, r := range a.catalog.Recipes() {
		a.ui.ShowMessage(fmt.Sprintf("  %s", r.Name))
		a.ui.PrintHint("    " + r.Description)
		a.ui.PrintHint("    " + strings.Join(r.Ingredients, ", "))
	}
}

func (a *gameApp) showStatus(ctx context.Context) {
	snap := a.ctrl.Snapshot()

	a.ui.ShowMessage(fmt.Sprintf("Day %d with $%d in the register, %d/%d customers served.",
		snap.Day, snap.Money, snap.Served, snap.MaxCustomers))
	if snap.OrderText != "" {
		a.ui.PrintHint("At the counter: " + snap.OrderText)
	}
	if len(snap.Selected) > 0 {
		a.ui.PrintHint("Pizza so far: " + strings.Join(snap.Selected, ", "))
	}

	days, err := a.ledger.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error reading the ledger: %v", err))
		return
	}
	if len(days) == 0 {
		return
	}

	a.ui.Println("")
	a.ui.ShowMessage("Past days:")
	for _, d := range days {
		a.ui.PrintHint(fmt.Sprintf("  day %d: served %d, earned $%d", d.Day, d.Served, d.Earned))
	}
	if total, err := a.ledger.Earned(ctx); err == nil {
		a.ui.PrintHint(fmt.Sprintf("  total earned: $%d", total))
	}
}

func (a *gameApp) showHelp() {
	a.ui.ShowMessage("Commands:")
	a.ui.PrintHint("  1, 2, 3...        Add an ingredient by menu number")
	a.ui.PrintHint("  add <name>        Add an ingredient by name (or just type the name)")
	a.ui.PrintHint("  cook / bake       Put the pizza in the oven")
	a.ui.PrintHint("  menu              Show the ingredient menu")
	a.ui.PrintHint("  recipes           Show the recipe book")
	a.ui.PrintHint("  status            Show the day, money, and past days")
	a.ui.PrintHint("  help              Show this message")
	a.ui.PrintHint("  quit / exit       Close the pizzeria")
}
