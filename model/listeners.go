package model

import "sync"

// listenerSet is the add/remove/notify plumbing shared by the models.
// Listeners run synchronously on the caller's goroutine, outside the model's lock.
type listenerSet struct {
	mu     sync.Mutex
	byID   map[int]func()
	nextID int
}

func (ls *listenerSet) add(listener func()) int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.byID == nil {
		ls.byID = make(map[int]func())
		ls.nextID = 1 // Start at 1 to avoid conflict with zero-value sentinel
	}
	id := ls.nextID
	ls.nextID++
	ls.byID[id] = listener
	return id
}

func (ls *listenerSet) remove(id int) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.byID, id)
}

func (ls *listenerSet) notify() {
	ls.mu.Lock()
	listeners := make([]func(), 0, len(ls.byID))
	for _, l := range ls.byID {
		listeners = append(listeners, l)
	}
	ls.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}
