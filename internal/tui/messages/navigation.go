package messages

// NavigationMsg is the base interface for all navigation messages
type NavigationMsg interface {
	IsNavigation() bool
}

// NavigateToDetailMsg requests navigation to the plant detail view.
// The plant itself travels through the navigation state store, keyed by PlantID.
type NavigateToDetailMsg struct {
	PlantID string
}

// NavigateToListMsg requests navigation to the catalog list (the "/" route)
type NavigateToListMsg struct {
	Category string // Optional: preselect a family
}

// NavigateBackMsg requests navigation to the previous view in the stack
type NavigateBackMsg struct{}

// NavigateToErrorMsg requests navigation to an error view
type NavigateToErrorMsg struct {
	Error       error
	Message     string
	Recoverable bool // Can user go back?
}

// Implement NavigationMsg interface for all messages
func (NavigateToDetailMsg) IsNavigation() bool { return true }
func (NavigateToListMsg) IsNavigation() bool   { return true }
func (NavigateBackMsg) IsNavigation() bool     { return true }
func (NavigateToErrorMsg) IsNavigation() bool  { return true }
