package util

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Adaptive colors shared by stderr log lines and stdout listings.
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
	colorBlack  = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}
	colorWhite  = lipgloss.AdaptiveColor{Light: "15", Dark: "15"}
)

var (
	stderrRenderer = lipgloss.NewRenderer(os.Stderr)
	stdoutRenderer = lipgloss.NewRenderer(os.Stdout)

	styleArrow   = stderrRenderer.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = stderrRenderer.NewStyle().Foreground(colorGreen)
	styleWarning = stderrRenderer.NewStyle().Foreground(colorYellow)
	styleError   = stderrRenderer.NewStyle().Bold(true).Foreground(colorRed)

	// StyleProfile renders a profile name as a badge in listings.
	StyleProfile = stdoutRenderer.NewStyle().Foreground(colorBlack).Background(colorWhite)
	// StyleActive renders the active-profile marker in listings.
	StyleActive = stdoutRenderer.NewStyle().Foreground(colorCyan)
)

var (
	outMu  sync.Mutex
	stderr io.Writer = os.Stderr
)

// SetOutput redirects log output and returns a function restoring the previous writer.
// Redirected output is never colored.
func SetOutput(w io.Writer) func() {
	outMu.Lock()
	defer outMu.Unlock()
	prev := stderr
	stderr = w
	return func() {
		outMu.Lock()
		defer outMu.Unlock()
		stderr = prev
	}
}

// colorEnabled returns true if stderr is a TTY and NO_COLOR is not set.
var colorEnabled = sync.OnceValue(func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
})

// stdoutColorEnabled returns true if stdout is a TTY and NO_COLOR is not set.
var stdoutColorEnabled = sync.OnceValue(func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
})

// Colorf formats a string and applies style when w is a color-capable stdout.
func Colorf(w io.Writer, style lipgloss.Style, format string, args ...interface{}) string {
	formatted := fmt.Sprintf(format, args...)
	if w != io.Writer(os.Stdout) || !stdoutColorEnabled() {
		return formatted
	}
	return style.Render(formatted)
}

func writeLine(style lipgloss.Style, prefix, body string, styleBody bool) {
	outMu.Lock()
	defer outMu.Unlock()

	colored := stderr == io.Writer(os.Stderr) && colorEnabled()
	if colored {
		prefix = style.Render(prefix)
		if styleBody {
			body = style.Render(body)
		}
	}
	fmt.Fprintf(stderr, "%s %s\n", prefix, body)
}

// Log prints an informational message to stderr with a cyan bold "==>" prefix.
func Log(msg string, args ...interface{}) {
	writeLine(styleArrow, "==>", fmt.Sprintf(msg, args...), false)
}

// Success prints a success message to stderr with a green "==>" prefix.
func Success(msg string, args ...interface{}) {
	writeLine(styleSuccess, "==>", fmt.Sprintf(msg, args...), true)
}

// Warn prints a warning message to stderr.
func Warn(msg string, args ...interface{}) {
	writeLine(styleWarning, "WARN:", fmt.Sprintf(msg, args...), true)
}

// Error prints an error message to stderr without exiting.
func Error(msg string, args ...interface{}) {
	writeLine(styleError, "ERROR:", fmt.Sprintf(msg, args...), true)
}
