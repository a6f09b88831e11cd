package server

import (
	"context"
	"log"
	"math/rand"
	"strings"

	"reboundai/backend/internal/config"
	"reboundai/backend/internal/session"
	"reboundai/backend/internal/stage"
)

// GenerateInput is one reply-generation request. Recent is the caller-windowed
// tail of the conversation.
type GenerateInput struct {
	Mode    session.Mode
	Stage   stage.Stage
	Summary string
	Recent  []session.Message
}

// EchoGenerator produces the assistant side of a turn. It never fails from
// the caller's perspective: any upstream trouble degrades to a canned
// per-mode line, with the cause logged for operators.
type EchoGenerator struct {
	ai          AIClient
	temperature float64
	maxTokens   int
	pick        func(n int) int
}

func NewEchoGenerator(ai AIClient, cfg config.Config) *EchoGenerator {
	temperature := cfg.AITemperature
	if temperature <= 0 {
		temperature = 0.85
	}
	maxTokens := cfg.AIMaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = 200
	}
	return &EchoGenerator{
		ai:          ai,
		temperature: temperature,
		maxTokens:   maxTokens,
		pick:        rand.Intn,
	}
}

var fallbackReplies = map[session.Mode][]string{
	session.ModeClosure: {
		"It's okay, you've come a long way. What's still lingering on your mind?",
		"You don't have to rush closure. Sometimes it comes in quiet waves.",
		"I'm here. Tell me what you wish they'd understood.",
	},
	session.ModeAlternate: {
		"In another timeline, maybe this played out differently... want to imagine it?",
		"Let's rewrite this story together. Where does it start?",
		"What would have happened if you'd said something else that day?",
	},
	session.ModeSupportive: {
		"You're doing better than you think, so let's keep going.",
		"Even the strongest people need to talk. I'm listening.",
		"Healing doesn't mean forgetting. It means forgiving yourself.",
	},
	session.ModeRebound: {
		"You're allowed to start again. What do you want to build next?",
		"Energy attracts energy. You're glowing more than you realize.",
		"This is your comeback arc, and I'm here for it.",
	},
}

// Generate returns the assistant reply text. Never returns an error.
func (g *EchoGenerator) Generate(ctx context.Context, input GenerateInput) string {
	reply, err := g.ai.Complete(ctx, ChatRequest{
		SystemPrompt: buildSystemPrompt(input.Mode, input.Stage, input.Summary),
		Messages:     input.Recent,
		Temperature:  g.temperature,
		MaxTokens:    g.maxTokens,
	})
	if err != nil {
		log.Printf("echo generation failed, serving fallback: %v", err)
		return g.fallback(input.Mode)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		log.Printf("echo generation returned empty content, serving fallback")
		return g.fallback(input.Mode)
	}
	return reply
}

func (g *EchoGenerator) fallback(mode session.Mode) string {
	lines, ok := fallbackReplies[mode]
	if !ok || len(lines) == 0 {
		lines = fallbackReplies[session.ModeClosure]
	}
	return lines[g.pick(len(lines))]
}
