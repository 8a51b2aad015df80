package cbtui

// Pane represents which pane currently has focus
type Pane int

const (
	LeftPane Pane = iota
	RightPane
)

func (p Pane) String() string {
	switch p {
	case LeftPane:
		return "Left"
	case RightPane:
		return "Right"
	default:
		return "Unknown"
	}
}
