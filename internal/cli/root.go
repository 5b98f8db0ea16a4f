// Package cli provides the command-line interface for duke.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/duke/internal/app"
	"github.com/runoshun/duke/internal/domain"
	"github.com/spf13/cobra"
)

// ContainerFactory builds the application container once flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// rootState is shared by the root command and its subcommands.
type rootState struct {
	newContainer ContainerFactory
	opts         app.Options
}

// withContainer builds a container, reports config warnings and runs fn.
func (s *rootState) withContainer(cmd *cobra.Command, fn func(c *app.Container) error) error {
	c, err := s.newContainer(s.opts)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	for _, w := range c.Config.Warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	return fn(c)
}

// NewRootCommand creates the root command for duke.
// newContainer is called by every command that needs the task list.
func NewRootCommand(newContainer ContainerFactory, version string) *cobra.Command {
	s := &rootState{newContainer: newContainer}

	root := &cobra.Command{
		Use:   "duke",
		Short: "Personal task tracker",
		Long: `duke keeps a list of to-dos, deadlines and events in a plain text file.

Run without arguments to start an interactive session. Commands:
  todo DESCRIPTION
  deadline DESCRIPTION /by DD-MM-YYYY HAM|PM
  event DESCRIPTION /start DD-MM-YYYY HAM|PM /end DD-MM-YYYY HAM|PM
  done N
  delete N
  list
  bye`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.withContainer(cmd, func(c *app.Container) error {
				return runREPL(cmd.Context(), c, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}

	root.PersistentFlags().StringVar(&s.opts.ConfigPath, "config", "", "Path to config file")
	root.PersistentFlags().StringVar(&s.opts.DataPath, "data", "", "Path to task file (overrides storage.path)")

	root.AddCommand(
		newExecCommand(s),
		newExportCommand(s),
		newConfigCommand(s),
	)

	return root
}

// runREPL reads commands line by line until bye, EOF or a fatal error.
// Parse and command errors are printed and the loop continues.
func runREPL(ctx context.Context, c *app.Container, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	renderGreeting(out)
	scanner := bufio.NewScanner(in)
	for {
		renderPrompt(out)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		res, err := c.Interpreter.Execute(ctx, line)
		if err != nil {
			if !isRecoverable(err) {
				return err
			}
			renderError(out, err)
			continue
		}
		if res.Exit {
			renderFarewell(out)
			return nil
		}
		renderResult(out, res)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	_, _ = fmt.Fprintln(out)
	renderFarewell(out)
	return nil
}

// isRecoverable reports whether err is a user error the session can survive.
func isRecoverable(err error) bool {
	var pe *domain.ParseError
	var ce *domain.CommandError
	return errors.As(err, &pe) || errors.As(err, &ce)
}
