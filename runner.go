package automata

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// Prompt commands. The leading colon keeps them apart from words.
const (
	CommandExit = ":exit"
	CommandQuit = ":quit"
)

// Runner drives an interactive word prompt using provided IO.
// This allows for easy testing and integration with different frontends (CLI, TUI, etc).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer VerdictRenderer
}

// VerdictRenderer transforms a verdict before outputting it.
// This allows for terminal colouring without coupling the core package.
type VerdictRenderer func(domain.Verdict) string

// NewRunner creates a Runner reading words from in and writing verdicts to out.
func NewRunner(in io.Reader, out io.Writer) *Runner {
	return &Runner{Input: in, Output: out}
}

// Run prompts for words until EOF or a quit command (":exit", ":quit") and returns the
// session report. Every line that is not a command is a word, so "exit" itself can be
// evaluated. An empty line evaluates the empty word.
// The automaton is compiled once, and the report is saved at most once, when the session ends.
// The report is nil when no word was entered.
func (r *Runner) Run(ctx context.Context, engine *Engine, name string, deterministic bool) (*domain.Report, error) {
	if r.Input == nil {
		return nil, fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return nil, fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	// Definition errors surface before the first prompt.
	ev, err := engine.Evaluator(ctx, name, deterministic)
	if err != nil {
		return nil, err
	}

	if !r.Headless {
		fmt.Fprintf(r.Output, "--- %s (type %s to quit) ---\n", name, CommandExit)
	}

	var results []domain.Result
	scanner := bufio.NewScanner(r.Input)
	scanner.Buffer(make([]byte, 0, 64*1024), domain.MaxLineSize)
	for {
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}
		if !scanner.Scan() {
			break
		}
		word := strings.TrimSpace(scanner.Text())
		if word == CommandExit || word == CommandQuit {
			if !r.Headless {
				fmt.Fprintln(r.Output, "Bye!")
			}
			break
		}

		res := ev.Evaluate(ctx, word)
		results = append(results, res)

		verdict := string(res.Verdict)
		if r.Renderer != nil {
			verdict = r.Renderer(res.Verdict)
		}
		if res.Reason != "" {
			fmt.Fprintf(r.Output, "%s (%s)\n", verdict, res.Reason)
		} else {
			fmt.Fprintln(r.Output, verdict)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input error: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return engine.Record(ctx, name, deterministic, results)
}
