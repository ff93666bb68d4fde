package engine

import (
	"strconv"
	"strings"
)

// Pre-authored reply blocks. The dispatcher phone is the single human
// escalation channel and appears in every fallback.
const (
	DispatcherPhone = "+38 075 375 00 00"

	// кожне відсутнє поле → "уточнюйте", ніколи не помилка
	placeholderText = "уточнюйте у диспетчера"

	greetingText = "Вітаю! Напиши маршрут або питання по перевезеннях."

	baggageText = "Безкоштовно можна провезти одну валізу до 20 кг і ручну поклажу. " +
		"Додаткові сумки чи негабаритні речі — уточнюйте у диспетчера: " + DispatcherPhone

	vehicleText = "Перевезення виконуємо комфортабельними автобусами з кондиціонером " +
		"та розетками. На коротких рейсах можливий мікроавтобус."

	pickupText = "Посадка за адресою, вказаною при бронюванні. Щоб забронювати місце, " +
		"напишіть маршрут і дату поїздки або зателефонуйте: " + DispatcherPhone

	fallbackText = "На жаль, не знайшов такий маршрут. Спробуй інше або зателефонуй: " + DispatcherPhone
)

// Render turns a classified outcome into reply text. Pure and total: every
// intent/route combination has a defined, non-empty rendering, and absent
// optional route fields fall back to the placeholder instead of dropping
// the line, so the answer shape is always complete.
func Render(intent Intent, route *Route) string {
	switch intent {
	case IntentGreeting:
		return greetingText
	case IntentBaggageFaq:
		return baggageText
	case IntentVehicleFaq:
		return vehicleText
	case IntentPickupFaq:
		return pickupText
	case IntentRouteQuery:
		if route != nil {
			return renderRoute(route)
		}
		return fallbackText
	default:
		return fallbackText
	}
}

func renderRoute(r *Route) string {
	var b strings.Builder
	b.WriteString("Маршрут: " + r.Start + " → " + r.End + "\n")
	b.WriteString("Відправлення: " + firstOr(r.DepartureTimes) + "\n")
	b.WriteString("Прибуття: " + firstOr(r.ArrivalTimes) + "\n")
	b.WriteString("Тривалість: " + orPlaceholder(r.Duration) + "\n")
	b.WriteString("Ціна: " + priceOr(r.Price) + "\n")
	b.WriteString("Посадка: " + orPlaceholder(r.PickupAddress))

	if len(r.Stops) > 0 {
		cities := make([]string, len(r.Stops))
		for i, s := range r.Stops {
			cities[i] = s.City
		}
		b.WriteString("\nЗупинки по дорозі: " + strings.Join(cities, " → "))
	}
	b.WriteString("\nПереглянути та забронювати: " + RouteLink(r))
	return b.String()
}

// RouteLink builds the site page for a route, same slug scheme as the
// public timetable pages.
func RouteLink(r *Route) string {
	slug := func(name string) string {
		return strings.ReplaceAll(Normalize(name), " ", "-")
	}
	return "https://bus-timel.com.ua/routes/" + slug(r.Start) + "-" + slug(r.End) + ".html"
}

func firstOr(times []string) string {
	if len(times) > 0 && times[0] != "" {
		return times[0]
	}
	return placeholderText
}

func orPlaceholder(s string) string {
	if s != "" {
		return s
	}
	return placeholderText
}

func priceOr(p *float64) string {
	if p == nil {
		return placeholderText
	}
	return strconv.FormatFloat(*p, 'f', -1, 64) + " грн"
}
