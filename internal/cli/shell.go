package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const shellPrompt = "imob> "

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: "Read one command per line and run it against this session's registry. " +
			"Type 'help' for the command list and 'exit' to quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, a)
		},
	}
}

func runShell(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	format := a.flagFormat

	printf(out, "imob shell: employee %s, session %s. Type 'help' or 'exit'.\n", a.emp.Name, a.emp.SessionID)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		printf(out, "%s", shellPrompt)
		if !scanner.Scan() {
			break
		}

		args, err := splitArgs(scanner.Text())
		if err != nil {
			printf(cmd.ErrOrStderr(), "Error: %s\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "exit", "quit":
			printf(out, "\n")
			return nil
		case "shell":
			printf(cmd.ErrOrStderr(), "Error: already in a shell\n")
			continue
		}

		line := newRootCmd(a)
		line.SetArgs(args)
		line.SetIn(cmd.InOrStdin())
		line.SetOut(out)
		line.SetErr(cmd.ErrOrStderr())
		if err := line.PersistentFlags().Set("format", format); err != nil {
			return err
		}
		if err := line.ExecuteContext(cmd.Context()); err != nil {
			printf(cmd.ErrOrStderr(), "Error: %s\n", err)
		}
	}

	printf(out, "\n")
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// splitArgs splits a shell line on whitespace. Single or double quotes group
// words; there are no escapes.
func splitArgs(line string) ([]string, error) {
	var (
		args   []string
		cur    strings.Builder
		inWord bool
		quote  rune // 0 outside quotes
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				args = append(args, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, errors.New("unterminated quote")
	}
	if inWord {
		args = append(args, cur.String())
	}
	return args, nil
}
