package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mEX/lang"
	"github.com/msto63/mEX/lang/ast"
)

var parseCmd = &cobra.Command{
	Use:   "parse <ausdruck>",
	Short: "Zeigt den Syntaxbaum eines Ausdrucks an",
	Long: `Parst einen mEX-Ausdruck ohne ihn auszuwerten und gibt den
Syntaxbaum sowie die kanonische, vollständig geklammerte Form aus.

Beispiele:
  mex parse "-a * b"
  mex parse "5 > 4 == 3 < 4"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	source := strings.Join(args, " ")
	engine := newEngine()

	result, err := engine.Parse(source)
	if err != nil {
		printError("Parsen fehlgeschlagen", err)
		return err
	}

	if result.HasErrors() {
		for _, msg := range result.ParseErrors {
			fmt.Printf("\t%s\n", msg)
		}
		return fmt.Errorf("%d Syntaxfehler", len(result.ParseErrors))
	}

	fmt.Println(renderTree(result))
	fmt.Printf("Kanonisch: %s\n", result.Program.String())

	return nil
}

// renderTree renders the result's program as an indented tree
func renderTree(result *lang.Result) string {
	return strings.TrimRight(ast.NewTreePrinter().Print(result.Program), "\n")
}
