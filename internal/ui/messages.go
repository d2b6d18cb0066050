package ui

// debounceMsg carries a fired debounce task onto the Update goroutine
type debounceMsg struct {
	task func()
}

// pagerDoneMsg is sent when the item pager exits
type pagerDoneMsg struct {
	itemID string
	err    error
}
