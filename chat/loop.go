package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tailored-agentic-units/planner/session"
)

// Farewell messages for each way the loop can end normally.
const (
	FarewellQuit        = "Thanks for chatting! Have an amazing trip!"
	FarewellInterrupted = "Session interrupted. Have a great trip!"
	FarewellEnded       = "Session ended. Happy travels!"
)

const maxLineSize = 1 << 20

// Loop is the interactive console conversation. Session is replaced by a
// fresh value on every reset; after Run returns it holds the last session.
type Loop struct {
	Session *session.Session
	In      io.Reader
	Out     io.Writer
	// Echo writes each input line back after the prompt. Useful when In is
	// not a terminal and the operator's text would otherwise be invisible.
	Echo bool
}

type line struct {
	text string
	err  error
}

// Run prints the banner, opens the session, then reads and dispatches one
// line at a time until quit, end of input, or ctx cancellation. Those three
// endings return nil. A failed send is returned.
func (l *Loop) Run(ctx context.Context) error {
	printBanner(l.Out)

	if done, err := l.exchange(ctx, l.Session.Open); done || err != nil {
		return err
	}

	readCtx, stop := context.WithCancel(ctx)
	defer stop()
	lines := readLines(readCtx, l.In)

	for {
		printPrompt(l.Out)

		var in line
		var ok bool
		select {
		case <-ctx.Done():
			printBoxed(l.Out, "\n\n", FarewellInterrupted)
			return nil
		case in, ok = <-lines:
		}

		if !ok {
			printBoxed(l.Out, "\n\n", FarewellEnded)
			return nil
		}
		if in.err != nil {
			return fmt.Errorf("read input: %w", in.err)
		}
		if l.Echo {
			fmt.Fprintln(l.Out, in.text)
		}

		switch Classify(in.text) {
		case CommandNone:
			continue

		case CommandQuit:
			printBoxed(l.Out, "\n", FarewellQuit)
			return nil

		case CommandReset:
			printBoxed(l.Out, "\n", "Starting a new conversation...")
			done, err := l.exchange(ctx, func(ctx context.Context) (string, error) {
				fresh, reply, err := l.Session.Reset(ctx)
				l.Session = fresh
				return reply, err
			})
			if done || err != nil {
				return err
			}

		case CommandHelp:
			printHelp(l.Out)

		case CommandMessage:
			done, err := l.exchange(ctx, func(ctx context.Context) (string, error) {
				return l.Session.Send(ctx, in.text)
			})
			if done || err != nil {
				return err
			}
		}
	}
}

// exchange runs one request and prints its reply. It reports done when ctx
// was cancelled during the request, after printing the interrupted farewell.
func (l *Loop) exchange(ctx context.Context, call func(context.Context) (string, error)) (bool, error) {
	printAssistantPrefix(l.Out)

	reply, err := call(ctx)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			printBoxed(l.Out, "\n\n", FarewellInterrupted)
			return true, nil
		}
		fmt.Fprintln(l.Out)
		return false, err
	}

	fmt.Fprintln(l.Out, reply)
	return false, nil
}

// readLines scans in on its own goroutine and delivers one line at a time.
// The channel is closed at end of input.
func readLines(ctx context.Context, in io.Reader) <-chan line {
	ch := make(chan line)

	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case ch <- line{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return ch
}
