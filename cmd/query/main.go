package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/planner/planner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "\nError occurred: %v\n\n%s", err, planner.Remediation(err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd(opts ...planner.Option) *cobra.Command {
	return &cobra.Command{
		Use:           "query",
		Short:         "Send independent Paris travel questions and stream each answer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			p, err := planner.Start(ctx, cmd.ErrOrStderr(), os.Getenv(planner.ConfigFileEnv), opts...)
			if err != nil {
				return err
			}

			printHeader(out)

			if _, err := p.NewRunner(out).RunAll(ctx, p.Prompts()); err != nil {
				if ctx.Err() != nil && errors.Is(err, context.Canceled) {
					fmt.Fprintln(out, "\n\nProgram interrupted by user.")
					return nil
				}
				return err
			}

			printFooter(out)
			return nil
		},
	}
}

var rule = strings.Repeat("=", 60)

func printHeader(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Paris Trip Planning Agent - Stateless Query Demo")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Using Messages API: Each interaction is independent")
	fmt.Fprintln(w)
}

func printFooter(w io.Writer) {
	fmt.Fprintf(w, "\n%s\nDemo Complete!\n%s\n", rule, rule)
	fmt.Fprintln(w, "\nNote: Each query was independent (stateless).")
	fmt.Fprintln(w, "Claude didn't remember context between queries.")
}
