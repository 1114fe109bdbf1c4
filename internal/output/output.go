package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	flagJSON    bool
	flagQuiet   bool
	flagVerbose bool
)

var (
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71"))
	styleWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

// SetFlags is called by the root command's PersistentPreRun to propagate flag values.
func SetFlags(jsonMode, quiet, verbose bool) {
	flagJSON = jsonMode
	flagQuiet = quiet
	flagVerbose = verbose
}

// IsJSON returns true when --json mode is active.
func IsJSON() bool { return flagJSON }

// PrintJSON marshals v as JSON and writes it to w.
func PrintJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// PrintError writes a JSON error envelope to w.
func PrintError(w io.Writer, code string, message string) error {
	return PrintJSON(w, map[string]string{
		"error":   code,
		"message": message,
	})
}

// OK prints a green status line unless quiet.
func OK(w io.Writer, format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(w, styleOK.Render(fmt.Sprintf(format, args...)))
}

// Warn prints an orange status line unless quiet.
func Warn(w io.Writer, format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(w, styleWarn.Render(fmt.Sprintf(format, args...)))
}
