package bot

import (
	"context"
	"log"
)

// NopOutbound logs instead of sending, for deployments without a chat
// transport configured.
type NopOutbound struct{}

func (NopOutbound) SendToChat(_ context.Context, chatID string, text string) error {
	log.Printf("[bot] reply (no transport) chatId=%s text=%q", chatID, text)
	return nil
}
