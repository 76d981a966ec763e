package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const overwriteQuestionFormat = "File %s already exists, do you want to overwrite it? [Y/n]"

var (
	// promptStyle highlights the interactive overwrite question.
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	// successStyle marks a successfully written summary.
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// confirmOverwrite asks whether the existing output file may be replaced.
// Empty input, y, and Y confirm; n and N decline; anything else repeats the
// question. End of input declines.
func confirmOverwrite(input io.Reader, output io.Writer, outputFileName string) (bool, error) {
	scanner := bufio.NewScanner(input)
	for {
		fmt.Fprintln(output, promptStyle.Render(fmt.Sprintf(overwriteQuestionFormat, outputFileName)))
		if !scanner.Scan() {
			if scanError := scanner.Err(); scanError != nil {
				return false, fmt.Errorf("read confirmation: %w", scanError)
			}
			return false, nil
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "", "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		}
	}
}
