package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"orderdesk/internal/pkg/errs"

	"github.com/spf13/cobra"
)

const shellPrompt = "orderdesk> "

func newShellCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively until exit or end of input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, deps)
		},
	}
}

func runShell(cmd *cobra.Command, deps Deps) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		args, err := splitLine(line)
		if err == nil && len(args) > 0 && args[0] == "shell" {
			err = errors.New("already in the shell")
		}
		if err == nil {
			err = runLine(cmd, deps, args, out)
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), FormatError(err))
		}
	}
}

// runLine executes one shell line on a fresh command tree so flag values never leak
// between lines.
func runLine(parent *cobra.Command, deps Deps, args []string, out io.Writer) error {
	root := newRootCmd(deps)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(parent.ErrOrStderr())
	root.SetIn(parent.InOrStdin())
	return root.ExecuteContext(parent.Context())
}

// splitLine breaks a shell line into words. Single and double quotes group words and
// a backslash escapes the next character outside single quotes.
func splitLine(line string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 || escaped {
		return nil, errs.NewValueIsInvalidErrorWithCause("line", errors.New("unterminated quote or escape"))
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}
