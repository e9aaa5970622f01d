package zipinstaller

// ListAction represents user actions that can occur within an OptionsList.
type ListAction int

const (
	ListActionSelected  ListAction = iota // User activated a clickable item
	ListActionConfirmed                   // User pressed Enter on a non-clickable item
)
