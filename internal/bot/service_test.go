package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bustimel/routebot/internal/engine"
)

type fakeOutbound struct {
	chatID string
	text   string
	err    error
}

func (f *fakeOutbound) SendToChat(_ context.Context, chatID string, text string) error {
	f.chatID = chatID
	f.text = text
	return f.err
}

type fakeAI struct {
	reply string
	err   error
	asked bool
}

func (f *fakeAI) GetReply(_ context.Context, _ string, _ string) (string, error) {
	f.asked = true
	return f.reply, f.err
}

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New([]engine.Route{
		{Start: "Київ", End: "Львів", DepartureTimes: []string{"08:00"}, ArrivalTimes: []string{"14:00"}},
	}, engine.Config{})
	require.NoError(t, err)
	return eng
}

func TestAnswer_Greeting(t *testing.T) {
	svc := NewService(testEngine(t), nil, &fakeOutbound{})

	got := svc.Answer(context.Background(), "Привіт!")
	assert.Equal(t, engine.Render(engine.IntentGreeting, nil), got)
}

func TestAnswer_Route(t *testing.T) {
	svc := NewService(testEngine(t), nil, &fakeOutbound{})

	got := svc.Answer(context.Background(), "з києва до львова")
	assert.Contains(t, got, "Київ")
	assert.Contains(t, got, "Львів")
	assert.Contains(t, got, "08:00")
}

func TestAnswer_UnknownWithoutAI(t *testing.T) {
	svc := NewService(testEngine(t), nil, &fakeOutbound{})

	got := svc.Answer(context.Background(), "з одеси до харкова")
	assert.Contains(t, got, engine.DispatcherPhone)
}

func TestAnswer_UnknownWithAIDraft(t *testing.T) {
	llm := &fakeAI{reply: "Підкажіть, будь ласка, звідки та куди їдете."}
	svc := NewService(testEngine(t), llm, &fakeOutbound{})

	got := svc.Answer(context.Background(), "з одеси до харкова")
	assert.True(t, llm.asked)
	assert.Contains(t, got, llm.reply)
	// канонічний fallback з телефоном завжди лишається
	assert.Contains(t, got, engine.DispatcherPhone)
}

func TestAnswer_AIErrorDegradesToFallback(t *testing.T) {
	llm := &fakeAI{err: errors.New("boom")}
	svc := NewService(testEngine(t), llm, &fakeOutbound{})

	got := svc.Answer(context.Background(), "з одеси до харкова")
	assert.True(t, llm.asked)
	assert.Equal(t, engine.Render(engine.IntentUnknown, nil), got)
}

func TestAnswer_AINotConsultedForResolvedIntents(t *testing.T) {
	llm := &fakeAI{reply: "зайве"}
	svc := NewService(testEngine(t), llm, &fakeOutbound{})

	_ = svc.Answer(context.Background(), "багаж")
	_ = svc.Answer(context.Background(), "з києва до львова")
	assert.False(t, llm.asked)
}

func TestHandleIncoming_SendsReply(t *testing.T) {
	out := &fakeOutbound{}
	svc := NewService(testEngine(t), nil, out)

	err := svc.HandleIncoming(context.Background(), &Message{ChatID: "42", Text: "привіт"})
	require.NoError(t, err)
	assert.Equal(t, "42", out.chatID)
	assert.Equal(t, engine.Render(engine.IntentGreeting, nil), out.text)
}

func TestHandleIncoming_OutboundError(t *testing.T) {
	out := &fakeOutbound{err: errors.New("network")}
	svc := NewService(testEngine(t), nil, out)

	err := svc.HandleIncoming(context.Background(), &Message{ChatID: "42", Text: "привіт"})
	assert.Error(t, err)
}
