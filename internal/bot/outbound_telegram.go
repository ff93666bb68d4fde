package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type TelegramOutbound struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewTelegramOutbound() *TelegramOutbound {
	token := strings.TrimSpace(os.Getenv("BOT_TOKEN"))
	if token == "" {
		panic("BOT_TOKEN not set")
	}

	return &TelegramOutbound{
		baseURL: "https://api.telegram.org",
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Відправка відповіді у чат.
func (t *TelegramOutbound) SendToChat(ctx context.Context, chatID string, text string) error {
	body := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		t.baseURL+"/bot"+t.token+"/sendMessage",
		bytes.NewReader(b),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.New(
			"telegram api error: " +
				resp.Status +
				" body=" + string(respBody),
		)
	}

	return nil
}
