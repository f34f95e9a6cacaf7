// Package mouse provides hit-testing for clickable regions of a view.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect describes a hit-test rectangle in view coordinates.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rectangle has non-positive dimensions.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// IsLeftClick reports whether msg is a left-button press.
func IsLeftClick(msg tea.MouseMsg) bool {
	return msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress
}
