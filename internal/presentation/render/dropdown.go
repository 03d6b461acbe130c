package render

import (
	"golang.org/x/net/html"
)

// DropdownState is the open/closed state of a fork dropdown
type DropdownState int

const (
	DropdownClosed DropdownState = iota
	DropdownOpen
)

func (s DropdownState) String() string {
	if s == DropdownOpen {
		return "open"
	}
	return "closed"
}

// ClickTarget classifies a click relative to a rendered dropdown
type ClickTarget int

const (
	// ClickToggle is a click on the caret button
	ClickToggle ClickTarget = iota
	// ClickInside is any other click within the split button
	ClickInside
	// ClickOutside is a click anywhere else on the page
	ClickOutside
)

// Dropdown is the two-state machine behind one rendered split button.
// The zero value is closed.
type Dropdown struct {
	state DropdownState
}

func (d *Dropdown) State() DropdownState {
	return d.state
}

// Toggle flips the state
func (d *Dropdown) Toggle() DropdownState {
	if d.state == DropdownOpen {
		d.state = DropdownClosed
	} else {
		d.state = DropdownOpen
	}
	return d.state
}

// Dismiss forces the dropdown closed
func (d *Dropdown) Dismiss() DropdownState {
	d.state = DropdownClosed
	return d.state
}

// HandleClick applies a click to the state machine
func (d *Dropdown) HandleClick(target ClickTarget) DropdownState {
	switch target {
	case ClickToggle:
		return d.Toggle()
	case ClickOutside:
		return d.Dismiss()
	default:
		return d.state
	}
}

// Apply writes the state into the split button markup rooted at wrapper
func (d *Dropdown) Apply(wrapper *html.Node) {
	setAttr(wrapper, "data-dropdown-state", d.state.String())

	if toggle := findFirst(wrapper, byClass(toggleClass)); toggle != nil {
		if d.state == DropdownOpen {
			setAttr(toggle, "aria-expanded", "true")
		} else {
			setAttr(toggle, "aria-expanded", "false")
		}
	}
	if menu := findFirst(wrapper, byClass(menuClass)); menu != nil {
		if d.state == DropdownOpen {
			removeAttr(menu, "hidden")
		} else {
			setAttr(menu, "hidden", "")
		}
	}
}
