package chat

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tailored-agentic-units/planner/session"
)

// DefaultDemoPause is the pacing delay between scripted turns.
const DefaultDemoPause = 2 * time.Second

// DefaultDemoMessages build up a Southeast Asia trip over five turns, each
// relying on details given earlier.
var DefaultDemoMessages = []string{
	"I'm thinking of visiting Southeast Asia for the first time.",
	"I have about 3 weeks and love outdoor activities and good food. My budget is around $3000 total.",
	"That sounds great! I'm most interested in Thailand and Vietnam. Which cities do you recommend?",
	"Perfect! How should I split my time between Thailand and Vietnam?",
	"Can you suggest a rough itinerary with the highlights you mentioned?",
}

// Demo plays a fixed list of user turns through a Session.
type Demo struct {
	Session  *session.Session
	Messages []string
	Pause    time.Duration
	Out      io.Writer
}

// Run sends every message in order, printing each exchange, and waits Pause
// between turns. A failed send or a cancelled ctx stops the demo.
func (d *Demo) Run(ctx context.Context) error {
	printBoxed(d.Out, "\n", " DEMO MODE - Sample Conversation")
	fmt.Fprintf(d.Out, "Watch how the agent maintains context throughout the conversation!\n%s\n", heavyRule)

	for i, msg := range d.Messages {
		if i > 0 {
			if err := pause(ctx, d.Pause); err != nil {
				return err
			}
		}

		fmt.Fprintf(d.Out, "\n%s\nDemo Message %d: %s\n", lightRule, i+1, msg)
		printAssistantPrefix(d.Out)

		reply, err := d.Session.Send(ctx, msg)
		if err != nil {
			fmt.Fprintln(d.Out)
			return fmt.Errorf("demo message %d: %w", i+1, err)
		}
		fmt.Fprintln(d.Out, reply)
	}

	fmt.Fprintf(d.Out, "\n\n%s\nDemo complete! Notice how the agent:\n", heavyRule)
	fmt.Fprintln(d.Out, "  ✓ Remembered: 3 weeks, $3000 budget, outdoor + food interests")
	fmt.Fprintln(d.Out, "  ✓ Built recommendations based on accumulated preferences")
	fmt.Fprintln(d.Out, "  ✓ Created cohesive itinerary from multiple conversation turns")
	fmt.Fprintln(d.Out, heavyRule)
	return nil
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
