package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/mEX/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive Terminal-Oberfläche",
	Long: `Startet die Terminal User Interface (TUI) von meinEXPRESSIONSWERK.

Die TUI bietet eine interaktive Auswertung mit Verlauf.

Navigation:
  Enter     - Ausdruck auswerten
  Ctrl+T    - Syntaxbaum an/aus
  Ctrl+L    - Verlauf leeren
  Ctrl+C    - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(
		tui.NewModel(newEngine()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI Fehler: %v\n", err)
		return err
	}

	return nil
}
