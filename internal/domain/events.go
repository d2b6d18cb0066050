package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted     EventType = "search.started"
	EventSearchSettled     EventType = "search.settled"
	EventSearchCleared     EventType = "search.cleared"
	EventTabChanged        EventType = "search.tab_changed"
	EventVisibilityChanged EventType = "search.visibility_changed"
	EventSettingsToggled   EventType = "ui.settings_toggled"
	EventItemOpened        EventType = "item.opened"
	EventConfigLoaded      EventType = "config.loaded"
	EventError             EventType = "error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a recomputation is scheduled
type SearchStartedEvent struct {
	Query string
	Tab   TabID
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchSettledEvent is emitted when a scheduled recomputation is applied
type SearchSettledEvent struct {
	Query string
	Tab   TabID
	Count int
}

func (e SearchSettledEvent) Type() EventType { return EventSearchSettled }

// SearchClearedEvent is emitted when the query is emptied
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// TabChangedEvent is emitted when the active tab changes
type TabChangedEvent struct {
	From TabID
	To   TabID
}

func (e TabChangedEvent) Type() EventType { return EventTabChanged }

// VisibilityChangedEvent is emitted when a settings toggle flips
type VisibilityChangedEvent struct {
	Group      VisibilityGroup
	Visibility Visibility
}

func (e VisibilityChangedEvent) Type() EventType { return EventVisibilityChanged }

// SettingsToggledEvent is emitted when the settings panel opens or closes
type SettingsToggledEvent struct {
	Open bool
}

func (e SettingsToggledEvent) Type() EventType { return EventSettingsToggled }

// ItemOpenedEvent is emitted when an item is opened in the pager
type ItemOpenedEvent struct {
	ID    string
	Title string
}

func (e ItemOpenedEvent) Type() EventType { return EventItemOpened }

// ConfigLoadedEvent is emitted after configuration is read
type ConfigLoadedEvent struct {
	Path    string
	Dataset string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
