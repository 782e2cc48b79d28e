package tvision

import "sync"

// historyLimit is the number of entries kept per history list.
const historyLimit = 20

// History stores recently entered strings, keyed by a list ID. InputLines
// sharing an ID share their history.
type History struct {
	mu    sync.Mutex
	lists map[uint16][]string
}

var histories = &History{lists: map[uint16][]string{}}

// Histories returns the process-wide history store.
func Histories() *History {
	return histories
}

// Add records s as the most recent entry of list id. Empty strings are
// ignored and an existing copy of s moves to the front.
func (h *History) Add(id uint16, s string) {
	if s == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	list := h.lists[id]
	for i, e := range list {
		if e == s {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	list = append([]string{s}, list...)
	if len(list) > historyLimit {
		list = list[:historyLimit]
	}
	h.lists[id] = list
}

// Entries returns list id, most recent first.
func (h *History) Entries(id uint16) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.lists[id]...)
}

// Clear drops every list.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.lists)
}
