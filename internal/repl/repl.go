package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/funvibe/calcx/internal/config"
	"github.com/funvibe/calcx/internal/evaluator"
	"github.com/funvibe/calcx/internal/lexer"
	"github.com/funvibe/calcx/internal/prettyprinter"
)

const (
	banner = "calcx interactive mode. Type :help for commands, :quit to exit."
	prompt = "calc> "
)

const helpText = `Each line is evaluated on its own.
  :help           show this help
  :tokens EXPR    show the tokens of EXPR
  :quit, :q       exit`

// Session evaluates REPL lines. It holds no evaluation state between lines.
type Session struct {
	Color bool
}

// Handle processes one input line. It returns the text to print (possibly
// empty) and whether the session should end.
func (s *Session) Handle(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}

	if strings.HasPrefix(trimmed, ":") {
		cmd, arg, _ := strings.Cut(trimmed, " ")
		switch strings.ToLower(cmd) {
		case ":quit", ":q":
			return "", true
		case ":help":
			return helpText, false
		case ":tokens":
			return tokenDump(arg), false
		default:
			return "unknown command. Type :help for commands.", false
		}
	}

	o := evaluator.Evaluate([]byte(line))
	out := strings.TrimSuffix(prettyprinter.Format(o), "\n")
	if o.OK() {
		return out, false
	}
	detail := o.Err.Error()
	if s.Color {
		red := color.New(color.FgRed)
		red.EnableColor()
		out = red.Sprint(out)
		detail = red.Sprint(detail)
	}
	return out + "  " + detail, false
}

func tokenDump(src string) string {
	toks := lexer.Tokenize([]byte(src))
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

// HistoryPath returns ~/.calcx_history, or "" when the home directory is
// unknown.
func HistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, config.HistoryFileName)
}

// Run reads lines from the terminal until :quit or EOF.
func Run(out io.Writer, s *Session) error {
	fmt.Fprintln(out, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		text, quit := s.Handle(line)
		if quit {
			return nil
		}
		if text != "" {
			fmt.Fprintln(out, text)
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}
