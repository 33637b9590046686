// Package chat drives the two-round conversation protocol: one model call to
// decide on tools, sequential tool execution, and a second call to synthesize
// the final answer from the tool results.
package chat

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/verityai/grounder/pkg/tools"
)

const DefaultModel = openai.ChatModelGPT4oMini

// ToolRunner executes one tool call and returns the serialized result text.
type ToolRunner interface {
	Dispatch(ctx context.Context, name tools.Name, argumentsJSON string) string
}

// Turn is the assistant's reply for one user message.
type Turn struct {
	Answer    string
	ToolsUsed []string
}

// Session owns one conversation: an append-only transcript extended in place,
// one turn at a time. It is not safe for concurrent use; a turn runs to
// completion before the next may start.
type Session struct {
	client   openai.Client
	model    string
	runner   ToolRunner
	messages []openai.ChatCompletionMessageParamUnion
	log      zerolog.Logger
}

// NewSession starts a conversation seeded with the system prompt.
func NewSession(client openai.Client, model string, runner ToolRunner, log zerolog.Logger) *Session {
	if model == "" {
		model = DefaultModel
	}
	return &Session{
		client:   client,
		model:    model,
		runner:   runner,
		messages: []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(systemPrompt)},
		log:      log.With().Str("component", "chat").Logger(),
	}
}

// Ask appends the user message, runs the two-round protocol, and returns the
// assistant's answer together with the display names of the tools used.
func (s *Session) Ask(ctx context.Context, prompt string) (*Turn, error) {
	turnLog := s.log.With().Str("turn_id", xid.New().String()).Logger()
	s.messages = append(s.messages, openai.UserMessage(prompt))

	// Round one: the model decides whether to use tools.
	first, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    s.model,
		Messages: s.messages,
		Tools:    tools.ChatTools(),
	})
	if err != nil {
		return nil, fmt.Errorf("tool-decision call: %w", err)
	}
	if len(first.Choices) == 0 {
		return nil, fmt.Errorf("tool-decision call returned no choices")
	}

	message := first.Choices[0].Message
	if len(message.ToolCalls) == 0 {
		turnLog.Debug().Msg("No tool calls requested")
		s.messages = append(s.messages, openai.AssistantMessage(message.Content))
		return &Turn{Answer: message.Content}, nil
	}

	s.messages = append(s.messages, message.ToParam())

	var used []string
	for _, call := range message.ToolCalls {
		name := tools.Name(call.Function.Name)
		turnLog.Info().Str("tool", call.Function.Name).Msg("Executing tool call")

		result := s.runner.Dispatch(ctx, name, call.Function.Arguments)
		s.messages = append(s.messages, openai.ToolMessage(result, call.ID))

		if label := tools.DisplayName(name); !contains(used, label) {
			used = append(used, label)
		}
	}

	// Round two: synthesize the final answer from the tool results.
	second, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    s.model,
		Messages: s.messages,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesis call: %w", err)
	}
	if len(second.Choices) == 0 {
		return nil, fmt.Errorf("synthesis call returned no choices")
	}

	answer := second.Choices[0].Message.Content
	s.messages = append(s.messages, openai.AssistantMessage(answer))
	return &Turn{Answer: answer, ToolsUsed: used}, nil
}

// Len reports the number of transcript entries, including the system prompt.
func (s *Session) Len() int {
	return len(s.messages)
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
