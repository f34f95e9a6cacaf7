package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 1, true},
		{4, 2, true},
		{5, 1, false},
		{2, 3, false},
		{1, 1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if (Rect{X: 0, Y: 0, W: 0, H: 5}).Contains(0, 0) {
		t.Error("empty rect must not contain any point")
	}
}

func TestIsLeftClick(t *testing.T) {
	if !IsLeftClick(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}) {
		t.Error("left press should count as click")
	}
	if IsLeftClick(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}) {
		t.Error("release should not count as click")
	}
	if IsLeftClick(tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}) {
		t.Error("right press should not count as click")
	}
}
