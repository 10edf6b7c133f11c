package ui

import "zettelnav/internal/domain"

// EventMsg wraps a domain event forwarded from the bus to the UI
type EventMsg struct {
	Event domain.DomainEvent
}

// pagerDoneMsg contains the result of a pager command
type pagerDoneMsg struct {
	err error
}
