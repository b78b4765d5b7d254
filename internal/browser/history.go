package browser

// History is the surface's back stack
type History struct {
	entries []string
}

// Push adds a new current entry
func (h *History) Push(url string) {
	h.entries = append(h.entries, url)
}

// ReplaceCurrent rewrites the current entry, e.g. after a redirect
func (h *History) ReplaceCurrent(url string) {
	if len(h.entries) == 0 {
		h.Push(url)
		return
	}
	h.entries[len(h.entries)-1] = url
}

// Current returns the current entry
func (h *History) Current() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// CanGoBack reports whether there is an entry behind the current one
func (h *History) CanGoBack() bool {
	return len(h.entries) > 1
}

// Back drops the current entry and returns the new current one
func (h *History) Back() (string, bool) {
	if !h.CanGoBack() {
		return "", false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.Current()
}

// Depth returns the number of entries
func (h *History) Depth() int {
	return len(h.entries)
}
