package model

import (
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// HeaderAction is a key hint shown in the header.
// Mirrors controller.Action without importing the controller package.
type HeaderAction struct {
	ID           string
	Key          tcell.Key
	Rune         rune
	Label        string
	Modifier     tcell.ModMask
	ShowInHeader bool
}

// HeaderStat is a label/value pair shown in the header stats column
type HeaderStat struct {
	Name  string
	Value string
	Order int
}

// HeaderConfig holds everything the header widget renders.
type HeaderConfig struct {
	mu             sync.RWMutex
	viewActions    []HeaderAction
	baseStats      map[string]HeaderStat
	viewStats      map[string]HeaderStat
	status         string
	statusIsError  bool
	visible        bool
	userPreference bool
	listeners      listenerSet
}

// NewHeaderConfig creates a visible header config
func NewHeaderConfig() *HeaderConfig {
	return &HeaderConfig{
		baseStats:      make(map[string]HeaderStat),
		viewStats:      make(map[string]HeaderStat),
		visible:        true,
		userPreference: true,
	}
}

// SetViewActions replaces the view-specific key hints
func (hc *HeaderConfig) SetViewActions(actions []HeaderAction) {
	hc.mu.Lock()
	hc.viewActions = actions
	hc.mu.Unlock()
	hc.listeners.notify()
}

// GetViewActions returns the view-specific key hints
func (hc *HeaderConfig) GetViewActions() []HeaderAction {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.viewActions
}

// SetBaseStat sets a stat that survives view changes
func (hc *HeaderConfig) SetBaseStat(name, value string, order int) {
	hc.mu.Lock()
	hc.baseStats[name] = HeaderStat{Name: name, Value: value, Order: order}
	hc.mu.Unlock()
	hc.listeners.notify()
}

// SetViewStat sets a stat owned by the current view
func (hc *HeaderConfig) SetViewStat(name, value string, order int) {
	hc.mu.Lock()
	hc.viewStats[name] = HeaderStat{Name: name, Value: value, Order: order}
	hc.mu.Unlock()
	hc.listeners.notify()
}

// ClearViewStats removes all stats owned by the current view
func (hc *HeaderConfig) ClearViewStats() {
	hc.mu.Lock()
	hc.viewStats = make(map[string]HeaderStat)
	hc.mu.Unlock()
	hc.listeners.notify()
}

// GetStats returns base and view stats ordered by Order, then name.
// A view stat overrides a base stat of the same name.
func (hc *HeaderConfig) GetStats() []HeaderStat {
	hc.mu.RLock()
	merged := make(map[string]HeaderStat, len(hc.baseStats)+len(hc.viewStats))
	for k, v := range hc.baseStats {
		merged[k] = v
	}
	for k, v := range hc.viewStats {
		merged[k] = v
	}
	hc.mu.RUnlock()

	stats := make([]HeaderStat, 0, len(merged))
	for _, s := range merged {
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Order != stats[j].Order {
			return stats[i].Order < stats[j].Order
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// SetStatus sets the one-line status message; isError selects the error color
func (hc *HeaderConfig) SetStatus(message string, isError bool) {
	hc.mu.Lock()
	if hc.status == message && hc.statusIsError == isError {
		hc.mu.Unlock()
		return
	}
	hc.status = message
	hc.statusIsError = isError
	hc.mu.Unlock()
	hc.listeners.notify()
}

// ClearStatus removes the status message
func (hc *HeaderConfig) ClearStatus() {
	hc.SetStatus("", false)
}

// GetStatus returns the status message and whether it is an error
func (hc *HeaderConfig) GetStatus() (string, bool) {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.status, hc.statusIsError
}

// SetVisible sets the effective header visibility
func (hc *HeaderConfig) SetVisible(visible bool) {
	hc.mu.Lock()
	if hc.visible == visible {
		hc.mu.Unlock()
		return
	}
	hc.visible = visible
	hc.mu.Unlock()
	hc.listeners.notify()
}

// IsVisible returns the effective header visibility
func (hc *HeaderConfig) IsVisible() bool {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.visible
}

// SetUserPreference records whether the user wants the header shown
func (hc *HeaderConfig) SetUserPreference(visible bool) {
	hc.mu.Lock()
	hc.userPreference = visible
	hc.mu.Unlock()
}

// GetUserPreference returns whether the user wants the header shown
func (hc *HeaderConfig) GetUserPreference() bool {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.userPreference
}

// ToggleUserPreference flips the user preference and applies it
func (hc *HeaderConfig) ToggleUserPreference() {
	hc.mu.Lock()
	hc.userPreference = !hc.userPreference
	pref := hc.userPreference
	hc.mu.Unlock()
	hc.SetVisible(pref)
}

// AddListener registers a change callback and returns its ID
func (hc *HeaderConfig) AddListener(listener func()) int {
	return hc.listeners.add(listener)
}

// RemoveListener removes a previously registered listener by ID
func (hc *HeaderConfig) RemoveListener(id int) {
	hc.listeners.remove(id)
}
