package controller

import (
	"sync"

	"github.com/boolean-maybe/todos/model"
)

// ViewEntry is one level of the navigation stack
type ViewEntry struct {
	ViewID model.ViewID
	Params map[string]interface{}
}

// viewStack is the navigation history, top of stack last
type viewStack struct {
	mu      sync.RWMutex
	entries []ViewEntry
}

func newViewStack() *viewStack {
	return &viewStack{}
}

func (s *viewStack) push(viewID model.ViewID, params map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, ViewEntry{ViewID: viewID, Params: params})
}

// pop removes and returns the top entry, or nil when empty
func (s *viewStack) pop() *ViewEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &top
}

// replaceTopView swaps the top entry; false when the stack is empty
func (s *viewStack) replaceTopView(viewID model.ViewID, params map[string]interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return false
	}
	s.entries[len(s.entries)-1] = ViewEntry{ViewID: viewID, Params: params}
	return true
}

func (s *viewStack) currentView() *ViewEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	return &top
}

func (s *viewStack) currentViewID() model.ViewID {
	if e := s.currentView(); e != nil {
		return e.ViewID
	}
	return ""
}

func (s *viewStack) previousView() *ViewEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) < 2 {
		return nil
	}
	prev := s.entries[len(s.entries)-2]
	return &prev
}

func (s *viewStack) canGoBack() bool {
	return s.depth() > 1
}

func (s *viewStack) depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *viewStack) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
