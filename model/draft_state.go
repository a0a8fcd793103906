package model

import "sync"

// DraftState holds the transient UI state of the list view: the add-row draft,
// the search string, the selected row and the focused pane. None of it is persisted.
type DraftState struct {
	mu        sync.RWMutex
	draft     string
	search    string
	selected  int
	focus     FocusPane
	listeners listenerSet
}

// NewDraftState creates an empty state with the list focused
func NewDraftState() *DraftState {
	return &DraftState{focus: FocusList}
}

// SetDraft updates the add-row text. Returns false when unchanged.
func (ds *DraftState) SetDraft(text string) bool {
	ds.mu.Lock()
	if ds.draft == text {
		ds.mu.Unlock()
		return false
	}
	ds.draft = text
	ds.mu.Unlock()
	ds.listeners.notify()
	return true
}

// GetDraft returns the add-row text
func (ds *DraftState) GetDraft() string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.draft
}

// ClearDraft empties the add-row text
func (ds *DraftState) ClearDraft() {
	ds.SetDraft("")
}

// SetSearch updates the search string and moves the selection to the first row.
// Returns false when unchanged.
func (ds *DraftState) SetSearch(term string) bool {
	ds.mu.Lock()
	if ds.search == term {
		ds.mu.Unlock()
		return false
	}
	ds.search = term
	ds.selected = 0
	ds.mu.Unlock()
	ds.listeners.notify()
	return true
}

// GetSearch returns the search string
func (ds *DraftState) GetSearch() string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.search
}

// GetSelection returns the selected row index within the filtered list
func (ds *DraftState) GetSelection() int {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.selected
}

// SetSelection selects row index, clamped to [0, count)
func (ds *DraftState) SetSelection(index, count int) {
	ds.mu.Lock()
	index = clampIndex(index, count)
	if ds.selected == index {
		ds.mu.Unlock()
		return
	}
	ds.selected = index
	ds.mu.Unlock()
	ds.listeners.notify()
}

// MoveSelection moves the selection by delta rows, clamped to [0, count)
func (ds *DraftState) MoveSelection(delta, count int) {
	ds.SetSelection(ds.GetSelection()+delta, count)
}

// ClampSelection keeps the selection inside [0, count) without notifying.
// Used while rendering after the list shrank.
func (ds *DraftState) ClampSelection(count int) int {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.selected = clampIndex(ds.selected, count)
	return ds.selected
}

// SetFocus records the focused pane
func (ds *DraftState) SetFocus(pane FocusPane) {
	ds.mu.Lock()
	if ds.focus == pane {
		ds.mu.Unlock()
		return
	}
	ds.focus = pane
	ds.mu.Unlock()
	ds.listeners.notify()
}

// GetFocus returns the focused pane
func (ds *DraftState) GetFocus() FocusPane {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.focus
}

// AddListener registers a change callback and returns its ID
func (ds *DraftState) AddListener(listener func()) int {
	return ds.listeners.add(listener)
}

// RemoveListener removes a previously registered listener by ID
func (ds *DraftState) RemoveListener(id int) {
	ds.listeners.remove(id)
}

func clampIndex(index, count int) int {
	if count <= 0 || index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
