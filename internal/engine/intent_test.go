package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Intent
	}{
		{"greeting ua", "Привіт!", IntentGreeting},
		{"greeting ru", "Здравствуйте", IntentGreeting},
		{"greeting phrase", "Доброго дня, підкажіть ціну", IntentGreeting},
		{"small talk", "як справи?", IntentGreeting},
		{"baggage", "багаж", IntentBaggageFaq},
		{"baggage sentence", "Яка валіза дозволена у салон?", IntentBaggageFaq},
		{"baggage ru", "можно взять чемодан?", IntentBaggageFaq},
		{"vehicle", "Який у вас автобус?", IntentVehicleFaq},
		{"vehicle ru", "какая машина поедет", IntentVehicleFaq},
		{"pickup", "Звідки відправлення?", IntentPickupFaq},
		{"pickup booking", "хочу забронювати", IntentPickupFaq},
		{"route residual", "з Києва до Львова", IntentRouteQuery},
		{"gibberish residual", "фіолетовий трамвай", IntentRouteQuery},
		{"empty residual", "", IntentRouteQuery},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(Normalize(tc.text)))
		})
	}
}

// Keyword sets overlap; the table order is the contract.
func TestClassify_OrderIsPriority(t *testing.T) {
	// greeting pre-empts both FAQ and route matching
	assert.Equal(t, IntentGreeting, Classify(Normalize("Привіт, скільки коштує багаж з Києва до Львова?")))
	// baggage pre-empts vehicle
	assert.Equal(t, IntentBaggageFaq, Classify(Normalize("чи влізуть речі в автобус")))
	// vehicle pre-empts pickup
	assert.Equal(t, IntentVehicleFaq, Classify(Normalize("яким автобусом і звідки посадка")))
	// FAQ pre-empts route mentions
	assert.Equal(t, IntentPickupFaq, Classify(Normalize("звідки їде київ львів")))
}
