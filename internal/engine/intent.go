package engine

import "strings"

// Intent — classified purpose of an inbound message.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentGreeting
	IntentBaggageFaq
	IntentVehicleFaq
	IntentPickupFaq
	IntentRouteQuery
)

func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentBaggageFaq:
		return "baggage_faq"
	case IntentVehicleFaq:
		return "vehicle_faq"
	case IntentPickupFaq:
		return "pickup_faq"
	case IntentRouteQuery:
		return "route_query"
	default:
		return "unknown"
	}
}

// rule is one entry of the classification table: if the normalized text
// contains any keyword, the rule's intent applies.
type rule struct {
	intent   Intent
	keywords []string
}

// Keyword sets overlap (a message may carry a greeting and two city names),
// so the table order IS the contract: small talk and FAQ pre-empt route
// matching, first match wins.
var rules = []rule{
	{IntentGreeting, []string{"привіт", "привет", "доброго дня", "добрий день", "здравствуйте", "хай", "як справи", "как дела"}},
	{IntentBaggageFaq, []string{"багаж", "поклажа", "речі", "сумки", "валіза", "вещи", "чемодан"}},
	{IntentVehicleFaq, []string{"автобус", "машина", "транспорт"}},
	{IntentPickupFaq, []string{"місце", "місця", "забронювати", "посадка", "звідки", "остановка"}},
}

// Classify maps normalized text to an intent. Anything the keyword table
// does not claim falls through to IntentRouteQuery; the resolver decides
// whether the residual actually names a route.
func Classify(normalized string) Intent {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(normalized, Normalize(kw)) {
				return r.intent
			}
		}
	}
	return IntentRouteQuery
}
