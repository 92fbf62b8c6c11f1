package domain

// Cue names a fire-and-forget sound effect. The audio sink decides what
// a cue actually sounds like; game logic never waits on playback.
type Cue string

const (
	CueDough      Cue = "dough"
	CueIngredient Cue = "ingredient"
	CueOven       Cue = "oven"
	CueSuccess    Cue = "success"
	CueFail       Cue = "fail"
	CueCustomer   Cue = "customer"
	CueCash       Cue = "cash"
)
