package bot

import (
	"context"
	"log"

	"github.com/bustimel/routebot/internal/ai"
	"github.com/bustimel/routebot/internal/engine"
)

type service struct {
	engine   *engine.Engine
	ai       ai.AI // nil → no LLM fallback
	outbound Outbound
}

// NewService wires the resolution engine to the chat transport. aiClient
// may be nil; it is consulted only for messages the engine cannot place.
func NewService(eng *engine.Engine, aiClient ai.AI, outbound Outbound) Service {
	return &service{
		engine:   eng,
		ai:       aiClient,
		outbound: outbound,
	}
}

func (s *service) HandleIncoming(ctx context.Context, msg *Message) error {
	log.Printf("[svc] chatId=%s text=%q", msg.ChatID, msg.Text)
	return s.outbound.SendToChat(ctx, msg.ChatID, s.Answer(ctx, msg.Text))
}

func (s *service) Answer(ctx context.Context, text string) string {
	reply := s.engine.HandleMessage(text)
	log.Printf("[svc] intent=%s resolved=%t", reply.Intent, reply.Route != nil)

	if reply.Intent != engine.IntentUnknown || s.ai == nil {
		return reply.Text
	}

	// Движок нічого не знайшов — даємо LLM спробувати чернетку.
	// The canonical fallback line with the dispatcher phone always stays.
	draft, err := s.ai.GetReply(ctx, ai.DispatcherPrompt, text)
	if err != nil || draft == "" {
		if err != nil {
			log.Printf("[svc] ai fallback error: %v", err)
		}
		return reply.Text
	}
	return draft + "\n\n" + reply.Text
}
