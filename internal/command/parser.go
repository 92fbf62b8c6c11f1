// Package command parses typed player input into game intents.
package command

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/elmarchena/pizzaloca/internal/domain"
	"github.com/elmarchena/pizzaloca/internal/logger"
)

// IntentType identifies what the player asked for.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentAddIngredient
	IntentCook
	IntentMenu
	IntentRecipes
	IntentStatus
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent name.
func (t IntentType) String() string {
	switch t {
	case IntentAddIngredient:
		return "add-ingredient"
	case IntentCook:
		return "cook"
	case IntentMenu:
		return "menu"
	case IntentRecipes:
		return "recipes"
	case IntentStatus:
		return "status"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent is a parsed player command. Payload carries the resolved
// ingredient ID for IntentAddIngredient and the raw input for
// IntentUnknown.
type Intent struct {
	Type    IntentType
	Payload string
}

// Parser matches typed input to intents using keywords and the catalog.
// Ingredients resolve by menu number, ID, or display name.
type Parser struct {
	catalog  domain.Catalog
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent IntentType
}

// NewParser creates a keyword parser over the given catalog.
func NewParser(cat domain.Catalog, log *logger.Logger) *Parser {
	p := &Parser{catalog: cat, log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(cook|bake|oven|c)$`), IntentCook},
		{regexp.MustCompile(`(?i)^(menu|ingredients|list|m)$`), IntentMenu},
		{regexp.MustCompile(`(?i)^(recipes|recipe book|specials|r)$`), IntentRecipes},
		{regexp.MustCompile(`(?i)^(status|money|day|progress|info)$`), IntentStatus},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), IntentQuit},
	}
	return p
}

// Parse converts one input line into an intent.
func (p *Parser) Parse(input string) Intent {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Intent{Type: IntentUnknown}
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return Intent{Type: rule.intent}
		}
	}

	// Ingredient selection by menu number (e.g. "1", "4").
	if n, err := strconv.Atoi(trimmed); err == nil {
		if id, ok := p.ingredientByNumber(n); ok {
			return Intent{Type: IntentAddIngredient, Payload: id}
		}
		return Intent{Type: IntentUnknown, Payload: trimmed}
	}

	// Explicit "add <ingredient>" and friends.
	lower := strings.ToLower(trimmed)
	for _, verb := range []string{"add ", "put ", "use "} {
		if strings.HasPrefix(lower, verb) {
			rest := strings.TrimSpace(trimmed[len(verb):])
			return p.addIntent(rest)
		}
	}

	// A bare ingredient name or ID is an add too.
	if id, ok := p.resolveIngredient(trimmed); ok {
		return Intent{Type: IntentAddIngredient, Payload: id}
	}

	p.log.Debug("no match, returning unknown intent")
	return Intent{Type: IntentUnknown, Payload: trimmed}
}

// addIntent resolves an ingredient reference after an add verb. An
// unresolvable reference still returns an add intent with the raw text
// so the game can report the miss itself.
func (p *Parser) addIntent(ref string) Intent {
	if n, err := strconv.Atoi(ref); err == nil {
		if id, ok := p.ingredientByNumber(n); ok {
			return Intent{Type: IntentAddIngredient, Payload: id}
		}
		return Intent{Type: IntentAddIngredient, Payload: ref}
	}
	if id, ok := p.resolveIngredient(ref); ok {
		return Intent{Type: IntentAddIngredient, Payload: id}
	}
	return Intent{Type: IntentAddIngredient, Payload: normalizeID(ref)}
}

// ingredientByNumber maps a 1-based menu position to an ingredient ID.
func (p *Parser) ingredientByNumber(n int) (string, bool) {
	ingredients := p.catalog.Ingredients()
	if n < 1 || n > len(ingredients) {
		return "", false
	}
	return ingredients[n-1].ID, true
}

// resolveIngredient matches a reference against ingredient IDs and
// display names, case-insensitively.
func (p *Parser) resolveIngredient(ref string) (string, bool) {
	norm := normalizeID(ref)
	for _, ing := range p.catalog.Ingredients() {
		if ing.ID == norm || strings.EqualFold(ing.Name, strings.TrimSpace(ref)) {
			return ing.ID, true
		}
	}
	return "", false
}

// normalizeID lowercases a reference and joins words with underscores,
// matching the catalog's ID convention.
func normalizeID(ref string) string {
	return strings.Join(strings.Fields(strings.ToLower(ref)), "_")
}
