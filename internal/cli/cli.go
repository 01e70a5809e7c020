// Package cli wires the tampio binary's command-line surface: flag
// parsing, loading the standard prelude and an optional source file, and
// dispatching to the REPL when no file is given (§4.11 and §6 of the
// spec).
package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tampio-lang/tampio/internal/prelude"
	"github.com/tampio-lang/tampio/internal/repl"
	"github.com/tampio-lang/tampio/internal/store"
	"github.com/tampio-lang/tampio/internal/tree"
	"github.com/tampio-lang/tampio/pkg/evaluator"
	"github.com/tampio-lang/tampio/pkg/morph"
)

// Version is the interpreter's reported version; there is no release
// process yet, so it is simply a development placeholder.
const Version = "0.1.0"

type options struct {
	version    bool
	freeImpure bool
	freePure   bool
	io         bool
	noMagic    bool
	debug      bool
	verbosity  int
	visualize  bool
}

// Execute builds and runs the root command, returning the error (if any)
// the command itself did not already report to stderr.
func Execute() error {
	var o options

	cmd := &cobra.Command{
		Use:     "tampio [file]",
		Short:   "A term-rewriting interpreter for the Tampio language",
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.version {
				fmt.Fprintln(cmd.OutOrStdout(), Version)

				return nil
			}

			var file string
			if len(args) == 1 {
				file = args[0]
			}

			return run(o, file)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.BoolVarP(&o.version, "version", "v", false, "print the version and exit")
	flags.BoolVarP(&o.freeImpure, "free-impure", "i", false, "free mode, allowing impure substitution")
	flags.BoolVarP(&o.freePure, "free-pure", "p", false, "free mode, keeping substitution pure")
	flags.BoolVar(&o.io, "io", false, "evaluate result(worldCounter) instead of the bare variable result")
	flags.BoolVar(&o.noMagic, "no-magic", false, "disable the arithmetic peephole and built-ins")
	flags.BoolVar(&o.debug, "debug", false, "trace rule matching to stderr")
	flags.CountVarP(&o.verbosity, "verbosity", "V", "increase trace verbosity (repeatable)")
	flags.BoolVar(&o.visualize, "visualize", false, "print every intermediate reduction")
	cmd.MarkFlagsMutuallyExclusive("free-impure", "free-pure")

	return cmd.Execute()
}

// run loads the prelude, then either a source file or the REPL, sharing
// one Evaluator and Store between both.
func run(o options, file string) error {
	free := o.freeImpure || o.freePure
	s := store.New(free)
	an := morph.NewRuleBasedAnalyzer()
	e := evaluator.New(s, an)
	e.Magic = !o.noMagic
	e.Impure = o.freeImpure
	e.Debug = o.debug
	e.Verbosity = o.verbosity
	e.Visualize = o.visualize
	e.Stdin = os.Stdin
	e.Stdout = os.Stdout
	e.Stderr = os.Stderr

	reader := bufio.NewReader(os.Stdin)
	e.ReadLine = func(prompt string) (string, error) {
		fmt.Fprint(e.Stdout, prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}

		return trimNewline(line), nil
	}

	if err := loadUnit(e, prelude.Lines()); err != nil {
		return err
	}

	if file == "" {
		return repl.Run(e, reader)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	if err := loadUnit(e, splitLines(string(data))); err != nil {
		return err
	}

	return evaluateResult(e, o.io)
}

// loadUnit evaluates a batch of source lines (the prelude or a whole user
// file) and runs the restricted-mode check once afterward, matching
// §4.9's "runs once after loading the prelude and user file" rule.
func loadUnit(e *evaluator.Evaluator, lines []string) error {
	if err := e.EvalFile(lines); err != nil {
		return err
	}
	errs := e.Store.Check()
	for _, cerr := range errs {
		fmt.Fprintln(e.Stderr, cerr)
	}
	if len(errs) > 0 {
		return fmt.Errorf("restricted-mode check failed")
	}

	return nil
}

// evaluateResult prints the final value of "tulos" (result): the bare
// variable normally, or "tulos(maailma)" in genitive form under --io, per
// §6's "result(worldCounter)" flag.
func evaluateResult(e *evaluator.Evaluator, io bool) error {
	var target tree.Node = tree.NewVar("$tulos")
	if io {
		call, err := tree.NewCall(tree.NewVar("$tulos"), []tree.Node{tree.NewWorld(0)}, morph.CaseNone, []morph.Case{morph.Genitive}, e.Store.Free())
		if err != nil {
			return err
		}
		target = call
	}

	result, err := e.Evals(target)
	if err != nil {
		if e.Debug {
			e.PrintStack()
		}

		return err
	}
	fmt.Fprintln(e.Stdout, result.Inflect(morph.Nominative, e.Analyzer, nil))

	return nil
}

// splitLines breaks file content into EvalFile's expected one-entry-per-
// physical-line shape; backslash continuation is handled by EvalFile
// itself, so this step is a plain newline split.
func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}

	return lines
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}

	return s
}
