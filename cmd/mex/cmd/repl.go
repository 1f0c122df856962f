package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mexlog "github.com/msto63/mEX/core/log"
)

var (
	replPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	replResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB")).Bold(true)
	replErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	replMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Startet die interaktive Auswertung",
	Long: `Startet eine interaktive mEX-Sitzung im Zeilenmodus.

Jede Eingabezeile wird ausgewertet und das Ergebnis ausgegeben.
Syntaxfehler werden gesammelt und zeilenweise angezeigt.

Befehle innerhalb der Sitzung:
  exit, quit  - Sitzung beenden
  clear       - Bildschirm leeren
  help        - Hilfe anzeigen`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	engine := newEngine()
	sessionID := uuid.New().String()
	logger := mexlog.GetDefault().WithSessionID(sessionID)

	logger.Debug("REPL session started", mexlog.Field("sessionId", sessionID))

	prompt := cfg.GetString("repl.prompt", ">> ")

	fmt.Println("meinEXPRESSIONSWERK v" + Version)
	fmt.Println(replMutedStyle.Render("Sitzung " + sessionID[:8] + " - 'help' für Hilfe, 'exit' zum Beenden"))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(replPromptStyle.Render(prompt))

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "exit", "quit":
			fmt.Println(replMutedStyle.Render("Auf Wiedersehen!"))
			return nil
		case "clear":
			fmt.Print("\033[2J\033[H")
			continue
		case "help":
			printReplHelp()
			continue
		}

		result, err := engine.Run(line)
		if result != nil && result.HasErrors() {
			for _, msg := range result.ParseErrors {
				fmt.Println(replErrorStyle.Render("\t" + msg))
			}
			continue
		}
		if err != nil {
			fmt.Println(replErrorStyle.Render("Fehler: " + err.Error()))
			continue
		}

		if rendering := result.Rendering(); rendering != "" {
			fmt.Println(replResultStyle.Render(rendering))
		} else {
			fmt.Println(replMutedStyle.Render("(kein Wert)"))
		}
	}

	if err := scanner.Err(); err != nil {
		printError("Eingabe nicht lesbar", err)
		return err
	}

	return nil
}

func printReplHelp() {
	fmt.Println("Ausdrücke mit Ganzzahlen, Wahrheitswerten und Operatoren:")
	fmt.Println("  + - * /        Arithmetik (/ rundet Richtung Null)")
	fmt.Println("  < > == !=      Vergleiche")
	fmt.Println("  ! -            Präfix-Operatoren")
	fmt.Println("  let x = ...;   Anweisungsform (ohne Bindung)")
	fmt.Println("  return ...;    Anweisungsform")
	fmt.Println()
	fmt.Println("Beispiele:")
	fmt.Println("  5 * 2 + 10")
	fmt.Println("  7 / 2 == 3")
	fmt.Println("  !true != false")
}
