package server

import (
	"fmt"

	"reboundai/backend/internal/session"
	"reboundai/backend/internal/stage"
)

const basePersona = "You are Rebound AI, a calm, emotionally intelligent listener who helps users heal from heartbreak. Speak with warmth and insight, never judging."

const closingInstruction = "Keep replies short and conversational, and leave room for the user to keep talking."

// buildSystemPrompt composes the per-turn instruction for the model: persona
// line for the mode, then the summary sentence, the stage sentence, and the
// closing instruction. Deterministic for identical inputs.
func buildSystemPrompt(mode session.Mode, st stage.Stage, summary string) string {
	prompt := basePersona
	switch mode {
	case session.ModeAlternate:
		prompt += " You guide users through 'what-if' scenarios, imagining alternate timelines with empathy and creativity."
	case session.ModeSupportive, session.ModeRebound:
		prompt += " You rebuild confidence and self-love through an uplifting, motivating tone."
	default:
		prompt += " Help them process loss, regret, and forgiveness. Keep your tone gentle and grounded."
	}
	if summary != "" {
		prompt += fmt.Sprintf(" The user's situation summary: %q. Use this as emotional context.", summary)
	}
	if st != "" {
		prompt += fmt.Sprintf(" The current emotional stage is %s. Adjust your tone accordingly.", st)
	}
	return prompt + " " + closingInstruction
}
