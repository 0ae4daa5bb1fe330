package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cademtz/cdecl/lex"
	"github.com/cademtz/cdecl/parse"
	"github.com/spf13/cobra"
)

const version = "0.01"

var (
	inputPath string
	parseAs   string
)

var rootCmd = &cobra.Command{
	Use:     "cdecl",
	Short:   "Parse and check C declarations",
	Version: version,
	Long: `cdecl parses C declarations, type names and function prototypes,
including MSVC calling conventions, and prints the resulting types.

Input is taken from the command line arguments, or one declaration per line
from the file given with -f (- for stdin).

Environment variables:
  CDECLDEBUG=true appends a stack trace to parse errors.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [declaration...]",
	Short: "Print the tokens of each declaration (for debugging)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return forEachInput(args, func(src string) error {
			return tokenizeLine(src, cmd.OutOrStdout())
		})
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [declaration...]",
	Short: "Parse each declaration and print its type",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := parsers[parseAs]; !ok {
			return fmt.Errorf("unknown --as value %q, expected one of decl, type, var, arg, proto", parseAs)
		}
		return forEachInput(args, func(src string) error {
			return parseLine(src, parseAs, cmd.OutOrStdout())
		})
	},
}

var parsers = map[string]func(string) (fmt.Stringer, error){
	"decl":  func(s string) (fmt.Stringer, error) { return parse.ParseDeclarationString(s) },
	"type":  func(s string) (fmt.Stringer, error) { return parse.ParseTypeString(s) },
	"var":   func(s string) (fmt.Stringer, error) { return parse.ParseVariableString(s) },
	"arg":   func(s string) (fmt.Stringer, error) { return parse.ParseArgumentString(s) },
	"proto": func(s string) (fmt.Stringer, error) { return parse.ParseFunctionProtoString(s) },
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "file", "f", "", "File of declarations, one per line, - for stdin.")
	parseCmd.Flags().StringVar(&parseAs, "as", "decl", "What to parse each line as: decl, type, var, arg or proto.")

	rootCmd.AddCommand(tokensCmd, parseCmd)
}

func parseLine(src, as string, out io.Writer) error {
	v, err := parsers[as](src)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)
	return nil
}

func tokenizeLine(src string, out io.Writer) error {
	toks, err := lex.Tokenize(src)
	if err != nil {
		return err
	}
	for _, tok := range toks {
		fmt.Fprintf(out, "%s:%s:%d\n", tok.Kind, tok.Val, tok.Pos)
	}
	return nil
}

// forEachInput calls fn on the joined arguments, or on every non blank line
// of the input file. Errors are reported as they happen and the first one is
// returned once all input has been seen.
func forEachInput(args []string, fn func(string) error) error {
	if inputPath == "" {
		if len(args) == 0 {
			return fmt.Errorf("no declaration given, pass one as arguments or use -f")
		}
		src := strings.Join(args, " ")
		if err := fn(src); err != nil {
			reportError(os.Stderr, src, err)
			return errReported
		}
		return nil
	}

	var in io.Reader = os.Stdin
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("failed to open input file %s: %s", inputPath, err)
		}
		defer f.Close()
		in = f
	}
	return forEachLine(in, inputPath, fn)
}

func forEachLine(in io.Reader, name string, fn func(string) error) error {
	var firstErr error
	s := bufio.NewScanner(in)
	lineno := 0
	for s.Scan() {
		lineno++
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: ", name, lineno)
			reportError(os.Stderr, line, err)
			if firstErr == nil {
				firstErr = errReported
			}
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	return firstErr
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if err != errReported {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
