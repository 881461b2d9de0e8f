// Package output provides styled terminal output for the barrelint CLI.
//
// Functions use lipgloss for styling but abstract away the details from
// callers, so command code stays free of style concerns.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output.
// The CLI calls this when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message in bold green.
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints an error message in bold red.
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Warn prints a warning message in yellow.
// Use this for violations that need user attention.
func Warn(msg string) {
	fmt.Println(warnStyle.Render("! " + msg))
}

// Info prints an informational message in cyan.
func Info(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// Step prints an indented sub-item in gray.
//
// Example:
//
//	output.Step("feature_auth/auth.dart → feature_billing/billing.dart")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a message only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
