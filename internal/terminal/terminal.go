// Package terminal provides kanri's user-facing terminal output and
// prompts: styled titles and status lines, the synchronous yes/no
// confirmation dialog, and a spinner for slow operations.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Output is where user-facing messages are written. Tests may replace it.
var Output io.Writer = os.Stdout

// Input is where prompts read answers from. Tests may replace it.
var Input io.Reader = os.Stdin

// PrintTitle writes a bold section header.
func PrintTitle(title string) {
	fmt.Fprintln(Output, titleStyle.Render("======== "+title+" ========"))
}

// PrintError writes a styled error line to stderr.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error:")+" "+msg)
}

// PrintDone writes a styled success line.
func PrintDone(msg string) {
	fmt.Fprintln(Output, doneStyle.Render("✓")+" "+msg)
}

// Bold returns s rendered bold, used for inline labels.
func Bold(s string) string {
	return titleStyle.Render(s)
}

// Dim returns s rendered faint, used for secondary annotations.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// Progress writes one provisioning step line.
func Progress(command string, current, total int) {
	fmt.Fprintf(Output, "%s %s\n", dimStyle.Render(fmt.Sprintf("[%d/%d]", current, total)), command)
}

// Ask poses a yes/no question and blocks for an answer. An empty answer
// takes defaultYes. Unreadable input answers no.
func Ask(prompt string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprintf(Output, "%s %s ", prompt, dimStyle.Render(hint))

	line, err := bufio.NewReader(Input).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}

// AskString poses a free-form question. With required set, the question
// repeats until the answer is non-empty or input is exhausted.
func AskString(prompt string, required bool) string {
	reader := bufio.NewReader(Input)
	for {
		fmt.Fprintf(Output, "%s ", prompt)
		line, err := reader.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer != "" || !required || err != nil {
			return answer
		}
	}
}
