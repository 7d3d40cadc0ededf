package highlight

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles applied to matched spans.
var Styles = struct {
	// Timestamp emphasizes matched times without color derivation.
	Timestamp lipgloss.Style

	// Address is the base style for matched addresses; the foreground
	// color is derived per address.
	Address lipgloss.Style
}{
	Timestamp: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")), // Bright white
	Address:   lipgloss.NewStyle().Underline(true),
}

// AddressStyle returns the address style with the given 8-bit terminal
// color as its foreground.
func AddressStyle(color int) lipgloss.Style {
	return Styles.Address.Foreground(lipgloss.Color(strconv.Itoa(color)))
}
