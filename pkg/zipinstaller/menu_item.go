package zipinstaller

// MenuItem is the label part of a list entry.
type MenuItem struct {
	Text     string // Display text for the item
	Icon     string // Optional icon name, see constants.Icon*
	Selected bool   // Whether this item has focus
	Metadata any    // Application-specific data attached to the item
}
