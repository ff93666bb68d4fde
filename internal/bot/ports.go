package bot

import "context"

// Message — одне вхідне повідомлення з чату.
type Message struct {
	ChatID string
	Text   string
}

// Outbound pushes replies back into the chat transport.
type Outbound interface {
	SendToChat(ctx context.Context, chatID string, text string) error
}

// Service — оркестрація відповіді.
type Service interface {
	// HandleIncoming answers a webhook message through the outbound channel.
	HandleIncoming(ctx context.Context, msg *Message) error
	// Answer returns the reply text synchronously (web-chat mode).
	Answer(ctx context.Context, text string) string
}
