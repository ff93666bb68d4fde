package ai

import "context"

// AI — зовнішній інтелект, не знає ні про транспорт, ні про каталог.
type AI interface {
	GetReply(
		ctx context.Context,
		systemPrompt string,
		userText string,
	) (string, error)
}

// DispatcherPrompt steers the fallback draft for messages the rule engine
// could not place. The model must never invent schedules or prices.
const DispatcherPrompt = `Ти — диспетчер автобусних перевезень Bus-Timel.
Пасажир написав повідомлення, яке не вдалося розпізнати автоматично.
Відповідай коротко і ввічливо українською.
НІКОЛИ не вигадуй ціни, розклад чи маршрути — для цього є диспетчер.
Якщо питання не про перевезення, чемно поверни розмову до маршрутів.`
