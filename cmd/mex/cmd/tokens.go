package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mexparser "github.com/msto63/mEX/lang/parser"
	mextoken "github.com/msto63/mEX/lang/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <ausdruck>",
	Short: "Zeigt den Token-Strom eines Ausdrucks an",
	Long: `Zerlegt einen mEX-Ausdruck in Token und gibt sie mit Typ und
Position aus. Unbekannte Zeichen erscheinen als ILLEGAL.

Beispiel:
  mex tokens "let x = 5;"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source := strings.Join(args, " ")

	tokens := mexparser.NewLexer(source).Tokenize()

	for _, tok := range tokens {
		literal := tok.Literal
		if tok.Type == mextoken.EOF {
			literal = "<EOF>"
		}
		fmt.Printf("%3d:%-3d %-10s %s\n", tok.Line, tok.Column, tok.Type, literal)
	}

	return nil
}
