package logic

// Navigator handles cursor movement and viewport scrolling over a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState updates the navigator's state and clamps the cursor into range
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	if n.viewportHeight < 1 {
		n.viewportHeight = 1
	}
	n.totalItems = totalItems
	n.clamp()
	n.ensureSelectedVisible()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Move applies a named movement and returns the new cursor and viewport offset.
// Directions: "up", "down", "pageup", "pagedown", "home", "end".
func (n *Navigator) Move(direction string) (int, int) {
	switch direction {
	case "up":
		n.selectedIndex--
	case "down":
		n.selectedIndex++
	case "pageup":
		n.selectedIndex -= n.viewportHeight
	case "pagedown":
		n.selectedIndex += n.viewportHeight
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.totalItems - 1
	}
	n.clamp()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

func (n *Navigator) clamp() {
	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}
	maxOffset := n.totalItems - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
