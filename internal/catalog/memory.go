// Package catalog provides the ingredient and recipe registry.
package catalog

import (
	"sync"

	"github.com/elmarchena/pizzaloca/internal/domain"
	"github.com/elmarchena/pizzaloca/internal/logger"
)

// Compile-time interface check.
var _ domain.Catalog = (*Memory)(nil)

// Memory holds the fixed ingredient and recipe sets in memory.
// Read-only after construction; safe for concurrent reads.
type Memory struct {
	mu          sync.RWMutex
	ingredients map[string]domain.Ingredient
	order       []string // ingredient IDs in menu order
	recipes     []domain.Recipe
	log         *logger.Logger
}

// NewMemory creates a catalog preloaded with the pizzeria's fixed
// ingredient set and recipe book.
func NewMemory(log *logger.Logger) *Memory {
	c := &Memory{
		ingredients: make(map[string]domain.Ingredient),
		log:         log,
	}
	c.seed()
	return c
}

// Ingredient returns an ingredient by ID. An unknown ID is a reportable
// ErrNotFound, never a silent default.
func (c *Memory) Ingredient(id string) (domain.Ingredient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ing, ok := c.ingredients[id]
	if !ok {
		c.log.Debug("ingredient not found: %s", id)
		return domain.Ingredient{}, domain.ErrNotFound
	}
	return ing, nil
}

// Ingredients returns all ingredients in menu order.
func (c *Memory) Ingredients() []domain.Ingredient {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Ingredient, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.ingredients[id])
	}
	return out
}

// Recipes returns all recipes.
func (c *Memory) Recipes() []domain.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// seed populates the fixed catalog. Every recipe ingredient must
// resolve against the ingredient set.
func (c *Memory) seed() {
	ingredients := []domain.Ingredient{
		{ID: "dough", Name: "Dough", Category: domain.CategoryBase, Price: 1},
		{ID: "tomato_sauce", Name: "Tomato Sauce", Category: domain.CategorySauce, Price: 0.5},
		{ID: "cheese", Name: "Cheese", Category: domain.CategoryTopping, Price: 1},
		{ID: "salami", Name: "Dominican Salami", Category: domain.CategoryTopping, Price: 2},
		{ID: "corn", Name: "Corn", Category: domain.CategoryTopping, Price: 0.75},
		{ID: "onion", Name: "Onion", Category: domain.CategoryTopping, Price: 0.5},
		{ID: "bell_pepper", Name: "Bell Pepper", Category: domain.CategoryTopping, Price: 0.5},
		{ID: "pineapple", Name: "Pineapple", Category: domain.CategoryTopping, Price: 1},
		{ID: "oregano", Name: "Oregano", Category: domain.CategoryTopping, Price: 0.25},
	}
	for _, ing := range ingredients {
		c.ingredients[ing.ID] = ing
		c.order = append(c.order, ing.ID)
	}

	c.recipes = []domain.Recipe{
		{
			Name:        "Classic Dominican Pizza",
			Ingredients: []string{"dough", "tomato_sauce", "cheese", "salami", "oregano"},
			Description: "Local favorite with Dominican salami",
			Price:       10,
		},
		{
			Name:        "Tropical Pizza",
			Ingredients: []string{"dough", "tomato_sauce", "cheese", "pineapple", "salami"},
			Description: "Sweet and savory, a Caribbean flavor",
			Price:       12,
		},
		{
			Name:        "Vegetarian Pizza",
			Ingredients: []string{"dough", "tomato_sauce", "cheese", "corn", "bell_pepper", "onion"},
			Description: "Loaded with fresh veggies",
			Price:       11,
		},
	}

	c.log.Debug("seeded %d ingredients, %d recipes", len(ingredients), len(c.recipes))
}
