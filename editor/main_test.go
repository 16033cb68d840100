package editor

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	// Pin the color profile so styling assertions don't depend on the
	// terminal running the tests.
	lipgloss.SetColorProfile(termenv.ANSI256)
	os.Exit(m.Run())
}
