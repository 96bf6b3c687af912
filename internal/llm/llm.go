package llm

import (
	"context"
	"errors"
)

// Client abstracts the external answer provider. Given the full document
// text and a user question it returns generated answer text, or one of the
// category errors below wrapped with provider detail.
type Client interface {
	Answer(ctx context.Context, docText, question string) (string, error)
}

// Instruction is the fixed system prompt prepended to the user question.
const Instruction = "You are a bot that can comprehend the entire text given and produce the most appropriate answer to " +
	"the question asked by the user, and the user wants to get the answer to the following question related " +
	"to the text: "

// Provider failure categories. Handlers translate these to distinct HTTP
// statuses; anything else from a Client is a generic server failure.
var (
	ErrInvalidInput     = errors.New("invalid provider input")
	ErrQuotaExhausted   = errors.New("provider quota exhausted")
	ErrDeadlineExceeded = errors.New("provider deadline exceeded")
	ErrUnavailable      = errors.New("provider unavailable")
)
