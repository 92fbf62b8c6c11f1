package shift

// pizza is the pizza in progress. Created on the first dough, destroyed
// on serve. The controller enforces the base rules before calling add.
type pizza struct {
	selected []string
}

func newPizza(baseID string) *pizza {
	return &pizza{selected: []string{baseID}}
}

func (p *pizza) add(id string) {
	p.selected = append(p.selected, id)
}

func (p *pizza) count() int {
	return len(p.selected)
}

// ids returns a copy of the selected ingredient IDs in assembly order.
func (p *pizza) ids() []string {
	out := make([]string, len(p.selected))
	copy(out, p.selected)
	return out
}
