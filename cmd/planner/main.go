package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/planner/chat"
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
	var demo bool

	cmd := &cobra.Command{
		Use:           "planner",
		Short:         "Plan a trip in a conversation that remembers what you said",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := planner.Start(ctx, cmd.ErrOrStderr(), os.Getenv(planner.ConfigFileEnv), opts...)
			if err != nil {
				return err
			}

			if demo {
				return runDemo(ctx, p, cmd.OutOrStdout())
			}

			in := cmd.InOrStdin()
			loop := &chat.Loop{
				Session: p.NewSession(),
				In:      in,
				Out:     cmd.OutOrStdout(),
				Echo:    !isTerminal(in),
			}
			return loop.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Play a scripted conversation instead of reading input")
	return cmd
}

func runDemo(ctx context.Context, p *planner.Planner, out io.Writer) error {
	d := &chat.Demo{
		Session:  p.NewSession(),
		Messages: chat.DefaultDemoMessages,
		Pause:    p.DemoPause(),
		Out:      out,
	}

	err := d.Run(ctx)
	if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
		fmt.Fprintln(out, "\n\nGoodbye!")
		return nil
	}
	return err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
