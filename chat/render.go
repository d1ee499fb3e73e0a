package chat

import (
	"fmt"
	"io"
	"strings"
)

const width = 70

var (
	heavyRule = strings.Repeat("=", width)
	lightRule = strings.Repeat("-", width)
)

func printBanner(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n INTERACTIVE TRIP PLANNER\n%s\n", heavyRule, heavyRule)
	fmt.Fprintln(w, "\nWelcome! I'm your AI travel planning assistant.")
	fmt.Fprintln(w, "I'll remember everything you tell me during our conversation.")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  - Type your messages to chat about your trip")
	fmt.Fprintln(w, "  - Type 'reset' to start a new conversation")
	fmt.Fprintln(w, "  - Type 'help' for tips")
	fmt.Fprintln(w, "  - Type 'quit' or 'exit' to end the session")
	fmt.Fprintln(w, heavyRule)
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, "\n%s\nHELP\n%s\n", heavyRule, heavyRule)
	fmt.Fprintln(w, "Just chat naturally about your trip! I'll remember everything.")
	fmt.Fprintln(w, "\nTips for better trip planning:")
	fmt.Fprintln(w, "  - Tell me about your interests and preferences")
	fmt.Fprintln(w, "  - Share your budget range and travel dates")
	fmt.Fprintln(w, "  - Mention any must-see destinations or activities")
	fmt.Fprintln(w, "  - Ask follow-up questions anytime")
	fmt.Fprintln(w, "  - I can help with itineraries, activities, restaurants, logistics")
	fmt.Fprintln(w, heavyRule)
}

// printBoxed writes msg between two heavy rules, preceded by lead.
func printBoxed(w io.Writer, lead, msg string) {
	fmt.Fprintf(w, "%s%s\n%s\n%s\n", lead, heavyRule, msg, heavyRule)
}

func printAssistantPrefix(w io.Writer) {
	fmt.Fprintf(w, "\n%s\nAssistant: ", lightRule)
}

func printPrompt(w io.Writer) {
	fmt.Fprintf(w, "\n%s\nYou: ", lightRule)
}
