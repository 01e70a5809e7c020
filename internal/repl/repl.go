// Package repl implements the interactive read-eval-print loop: one
// Evaluator and Store shared across every line typed, a best-effort
// history file, and a handful of ":"-prefixed introspection commands
// (§4.11 of the spec).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"github.com/tampio-lang/tampio/pkg/evaluator"
	"github.com/tampio-lang/tampio/pkg/morph"
)

const historyFileName = ".tampio_history"
const prompt = "tampio> "

// Run drives the loop until EOF or a ":quit"/":q" command. reader is the
// same *bufio.Reader the caller wired to Evaluator.ReadLine, so the "$luettu"
// built-in's own prompts interleave cleanly with the REPL's.
func Run(e *evaluator.Evaluator, reader *bufio.Reader) error {
	historyPath := historyFilePath()
	history := loadHistory(historyPath)
	startDump := dumpStore(e)

	fmt.Fprintln(e.Stdout, "tampio repl - :quit to exit, :help for commands")

	for {
		fmt.Fprint(e.Stdout, prompt)
		line, err := reader.ReadString('\n')
		eof := err == io.EOF
		if err != nil && !eof {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
		case trimmed == ":quit" || trimmed == ":q":
			saveHistory(historyPath, history)

			return nil
		case trimmed == ":help" || trimmed == ":h":
			printHelp(e.Stdout)
		case trimmed == ":dump":
			fmt.Fprint(e.Stdout, dumpStore(e))
		case trimmed == ":diff":
			fmt.Fprint(e.Stdout, diffStore(startDump, dumpStore(e)))
		default:
			history = append(history, line)
			evalOne(e, trimmed)
		}

		if eof {
			saveHistory(historyPath, history)

			return nil
		}
	}
}

// evalOne evaluates one REPL line, printing its value (a query) or running
// the restricted-mode check again (a new definition, per §9a).
func evalOne(e *evaluator.Evaluator, line string) {
	result, err := e.EvalLine(line, true)
	if err != nil {
		fmt.Fprintln(e.Stderr, "Error:", err)

		return
	}
	if result != nil {
		fmt.Fprintln(e.Stdout, result.Inflect(morph.Nominative, e.Analyzer, nil))

		return
	}
	for _, cerr := range e.Store.Check() {
		fmt.Fprintln(e.Stderr, cerr)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  :quit, :q    exit the repl")
	fmt.Fprintln(w, "  :help, :h    show this help")
	fmt.Fprintln(w, "  :dump        print every stored equation")
	fmt.Fprintln(w, "  :diff        diff stored equations against session start")
}

// dumpStore YAML-serializes the store's equations in definition order, the
// "dump of all stored equations" named in §7.
func dumpStore(e *evaluator.Evaluator) string {
	eqs := e.Store.Equations()
	lines := make([]string, len(eqs))
	for i, eq := range eqs {
		lines[i] = eq.String()
	}
	out, err := yaml.Marshal(lines)
	if err != nil {
		return fmt.Sprintf("dump error: %v\n", err)
	}

	return string(out)
}

// diffStore renders the character-level differences between two dumps as
// inline text with ANSI-coloured insertions and deletions (diffmatchpatch's
// DiffPrettyText), so a user can see what their session has defined since
// it started.
func diffStore(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	return dmp.DiffPrettyText(diffs)
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, historyFileName)
}

// loadHistory reads a history file if present; its absence or any read
// error is not a failure, matching §6's "best-effort" history note.
func loadHistory(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func saveHistory(path string, history []string) {
	if path == "" {
		return
	}
	content := strings.Join(history, "\n")
	if content != "" {
		content += "\n"
	}
	_ = os.WriteFile(path, []byte(content), 0o644)
}
