package model

// FocusPane identifies which part of the list view has keyboard focus
type FocusPane int

const (
	FocusList FocusPane = iota
	FocusSearch
	FocusAdd
)

// focusOrder is the Tab cycle: search box, list, add input
var focusOrder = []FocusPane{FocusSearch, FocusList, FocusAdd}

func (p FocusPane) String() string {
	switch p {
	case FocusSearch:
		return "search"
	case FocusAdd:
		return "add"
	default:
		return "list"
	}
}

// Next returns the pane after p in the Tab cycle
func (p FocusPane) Next() FocusPane {
	return p.step(1)
}

// Prev returns the pane before p in the Tab cycle
func (p FocusPane) Prev() FocusPane {
	return p.step(-1)
}

func (p FocusPane) step(delta int) FocusPane {
	for i, pane := range focusOrder {
		if pane == p {
			n := len(focusOrder)
			return focusOrder[((i+delta)%n+n)%n]
		}
	}
	return FocusList
}

// IsInput reports whether the pane is a text input
func (p FocusPane) IsInput() bool {
	return p == FocusSearch || p == FocusAdd
}
