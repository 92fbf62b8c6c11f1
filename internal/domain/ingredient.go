// Package domain defines the core types and interfaces for the pizzeria
// game. All other packages depend on domain; domain depends on nothing.
package domain

// Ingredient is a single item the player can put on a pizza.
// The full set is fixed at startup; ingredients are never mutated.
type Ingredient struct {
	ID       string
	Name     string
	Category Category
	Price    float64
}

// Category classifies an ingredient's role on the pizza.
type Category int

const (
	// CategoryBase is the foundational ingredient (dough). A pizza
	// always starts with exactly one base.
	CategoryBase Category = iota
	// CategorySauce spreads on the base.
	CategorySauce
	// CategoryTopping is everything else.
	CategoryTopping
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryBase:
		return "base"
	case CategorySauce:
		return "sauce"
	case CategoryTopping:
		return "topping"
	default:
		return "unknown"
	}
}

// Recipe is a named pizza the pizzeria knows how to make.
type Recipe struct {
	Name        string
	Ingredients []string // required ingredient IDs, in assembly order
	Description string
	Price       float64 // menu price; not used for payout (see Order)
}

// Order is a Recipe bound to one customer for the current serving.
// Immutable once created.
type Order struct {
	Recipe Recipe
}

// Text formats the order the way the customer asks for it.
func (o Order) Text() string {
	return `"I want a ` + o.Recipe.Name + `! ` + o.Recipe.Description + `"`
}
