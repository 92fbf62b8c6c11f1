package domain

import "context"

// Catalog is the read-only registry of ingredients and recipes,
// populated once at startup. Implementations can be in-memory
// (hardcoded) or file-backed.
type Catalog interface {
	Ingredient(id string) (Ingredient, error)
	Ingredients() []Ingredient
	Recipes() []Recipe
}

// Presenter is the presentation sink the game logic publishes to.
// Implementations can be a terminal UI, a test recorder, or anything
// else that shows state to the player.
type Presenter interface {
	ShowMessage(text string)
	ShowCustomerOrder(text string)
	HideCustomerOrder()
	UpdateMoney(amount int)
	UpdateDay(day int)
	UpdateIngredients(ids []string)
	ShowGameUI()
}

// Sound plays short audio cues. Playback is fire-and-forget; game logic
// never blocks on it and no acknowledgment is expected.
type Sound interface {
	Play(cue Cue)
}

// ShiftLedger records finished days. Implementations can be in-memory
// or any durable backend.
type ShiftLedger interface {
	Record(ctx context.Context, rec DayRecord) error
	List(ctx context.Context) ([]DayRecord, error)
	Earned(ctx context.Context) (int, error)
}
