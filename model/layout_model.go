package model

import "sync"

// LayoutModel tracks which view occupies the content area.
// RootLayout observes it and swaps views when it changes.
type LayoutModel struct {
	mu        sync.RWMutex
	viewID    ViewID
	params    map[string]any
	revision  uint64
	listeners listenerSet
}

// NewLayoutModel creates an empty layout model
func NewLayoutModel() *LayoutModel {
	return &LayoutModel{}
}

// SetContent replaces the content view and notifies listeners
func (lm *LayoutModel) SetContent(viewID ViewID, params map[string]any) {
	lm.mu.Lock()
	lm.viewID = viewID
	lm.params = params
	lm.revision++
	lm.mu.Unlock()

	lm.listeners.notify()
}

// Touch bumps the revision without changing content, forcing observers to re-evaluate
func (lm *LayoutModel) Touch() {
	lm.mu.Lock()
	lm.revision++
	lm.mu.Unlock()

	lm.listeners.notify()
}

// GetContentViewID returns the current content view ID
func (lm *LayoutModel) GetContentViewID() ViewID {
	lm.mu.RLock()
	defer lm.mu.RUnlock()
	return lm.viewID
}

// GetContentParams returns the current content view params
func (lm *LayoutModel) GetContentParams() map[string]any {
	lm.mu.RLock()
	defer lm.mu.RUnlock()
	return lm.params
}

// GetRevision returns a counter incremented on every change
func (lm *LayoutModel) GetRevision() uint64 {
	lm.mu.RLock()
	defer lm.mu.RUnlock()
	return lm.revision
}

// AddListener registers a change callback and returns its ID
func (lm *LayoutModel) AddListener(listener func()) int {
	return lm.listeners.add(listener)
}

// RemoveListener removes a previously registered listener by ID
func (lm *LayoutModel) RemoveListener(id int) {
	lm.listeners.remove(id)
}
