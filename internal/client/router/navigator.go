package router

import (
	"slices"
	"strconv"
	"sync"
)

// Navigator holds the current path and its history. Listeners run
// synchronously, after the change, on every Push, Replace and Back.
type Navigator struct {
	mu        sync.RWMutex
	history   []string
	route     Route
	matched   bool
	listeners []func(Route, bool)
}

// NewNavigator starts at initial, as on a fresh page load.
func NewNavigator(initial string) *Navigator {
	n := &Navigator{}
	n.history = []string{stripQuery(initial)}
	n.route, n.matched = Resolve(initial)
	return n
}

// Push navigates to path and adds a history entry (link activation).
func (n *Navigator) Push(path string) {
	n.mu.Lock()
	n.history = append(n.history, stripQuery(path))
	n.route, n.matched = Resolve(path)
	n.mu.Unlock()
	n.notify()
}

// Replace navigates to path, overwriting the current history entry.
func (n *Navigator) Replace(path string) {
	n.mu.Lock()
	n.history[len(n.history)-1] = stripQuery(path)
	n.route, n.matched = Resolve(path)
	n.mu.Unlock()
	n.notify()
}

// Back returns to the previous entry. It reports false at the first entry.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	if len(n.history) < 2 {
		n.mu.Unlock()
		return false
	}
	n.history = n.history[:len(n.history)-1]
	n.route, n.matched = Resolve(n.history[len(n.history)-1])
	n.mu.Unlock()
	n.notify()
	return true
}

func (n *Navigator) Path() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.history[len(n.history)-1]
}

// Current returns the resolved current route and whether it matched a view.
func (n *Navigator) Current() (Route, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.route, n.matched
}

// History returns a copy of the history entries, oldest first.
func (n *Navigator) History() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]string(nil), n.history...)
}

func (n *Navigator) OnChange(fn func(Route, bool)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

func (n *Navigator) notify() {
	n.mu.RLock()
	route, matched := n.route, n.matched
	listeners := slices.Clone(n.listeners)
	n.mu.RUnlock()

	for _, fn := range listeners {
		fn(route, matched)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
