package dialogue

import (
	"testing"

	"swiftcab/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFirstTurnDropoff(t *testing.T) {
	ext := Extract(models.BookingIntent{}, "Take me to the airport")

	assert.Equal(t, ActionPrompt, ext.Action)
	assert.Equal(t, "Airport", ext.Intent.Dropoff)
	assert.Empty(t, ext.Intent.Pickup)
	assert.Equal(t, []string{"pickup"}, ext.Missing)
	assert.Equal(t, "To Airport. From where?", ext.Message)
}

func TestExtractBarePlaceFillsEmptySlot(t *testing.T) {
	// First turn: a bare place answers the dropoff question.
	ext := Extract(models.BookingIntent{}, "airport")
	assert.Equal(t, "Airport", ext.Intent.Dropoff)

	// Dropoff known: a bare place answers the pickup question.
	ext = Extract(models.BookingIntent{Dropoff: "Airport"}, "home")
	assert.Equal(t, "Home", ext.Intent.Pickup)
	assert.Equal(t, "Airport", ext.Intent.Dropoff)
	assert.Empty(t, ext.Missing)
	assert.Equal(t, "Book standard from Home to Airport?", ext.Message)
}

func TestExtractFromToSegmentation(t *testing.T) {
	ext := Extract(models.BookingIntent{}, "take me from office to the airport")

	require.Equal(t, ActionPrompt, ext.Action)
	assert.Equal(t, "Office", ext.Intent.Pickup)
	assert.Equal(t, "Airport", ext.Intent.Dropoff)
	assert.Equal(t, "Book standard from Office to Airport?", ext.Message)
}

func TestExtractToFromSegmentation(t *testing.T) {
	ext := Extract(models.BookingIntent{}, "to the airport from home")

	assert.Equal(t, "Home", ext.Intent.Pickup)
	assert.Equal(t, "Airport", ext.Intent.Dropoff)
}

func TestExtractFromOnly(t *testing.T) {
	ext := Extract(models.BookingIntent{Dropoff: "Airport"}, "from home")

	assert.Equal(t, "Home", ext.Intent.Pickup)
	assert.Equal(t, []string(nil), ext.Missing)
}

func TestExtractVehicleClass(t *testing.T) {
	ext := Extract(models.BookingIntent{}, "book a van from home to the airport")
	assert.Equal(t, models.VehicleVan, ext.Intent.VehicleClass)
	assert.Equal(t, "Home", ext.Intent.Pickup)
	assert.Equal(t, "Airport", ext.Intent.Dropoff)
	assert.Equal(t, "Book van from Home to Airport?", ext.Message)

	// Class-only utterance upgrades the ride without touching the places.
	current := models.BookingIntent{Pickup: "Home", Dropoff: "Airport"}
	ext = Extract(current, "premium")
	assert.Equal(t, models.VehiclePremium, ext.Intent.VehicleClass)
	assert.Equal(t, "Home", ext.Intent.Pickup)
	assert.Equal(t, "Book premium from Home to Airport?", ext.Message)
}

func TestExtractConfirmRequiresCompleteIntent(t *testing.T) {
	// A bare affirmative with slots still open is never a place name.
	ext := Extract(models.BookingIntent{}, "yes")
	assert.Equal(t, ActionReprompt, ext.Action)
	assert.Empty(t, ext.Intent.Dropoff)

	ext = Extract(models.BookingIntent{Dropoff: "Airport"}, "okay")
	assert.Equal(t, ActionReprompt, ext.Action)
	assert.Empty(t, ext.Intent.Pickup)

	// With both slots filled the same word confirms.
	complete := models.BookingIntent{Pickup: "Home", Dropoff: "Airport"}
	for _, word := range []string{"yes", "yeah", "okay", "book it", "go ahead"} {
		ext = Extract(complete, word)
		assert.Equal(t, ActionConfirm, ext.Action, "word %q", word)
		assert.Equal(t, complete, ext.Intent)
	}
}

func TestExtractCancel(t *testing.T) {
	current := models.BookingIntent{Pickup: "Home", Dropoff: "Airport"}
	for _, word := range []string{"no", "cancel", "never mind", "forget it"} {
		ext := Extract(current, word)
		assert.Equal(t, ActionCancel, ext.Action, "word %q", word)
		assert.Equal(t, models.BookingIntent{}, ext.Intent)
		assert.Equal(t, "Booking cancelled. Where would you like to go?", ext.Message)
	}
}

func TestExtractFillerDoesNotCorruptIntent(t *testing.T) {
	current := models.BookingIntent{Dropoff: "Airport"}
	ext := Extract(current, "um, uh, please")

	assert.Equal(t, ActionReprompt, ext.Action)
	assert.Equal(t, current, ext.Intent)
	assert.Equal(t, "Sorry, I didn't catch that. Where should we pick you up for Airport?", ext.Message)
}

func TestExtractRejectsIdenticalPickupDropoff(t *testing.T) {
	ext := Extract(models.BookingIntent{}, "from home to my house")

	assert.Equal(t, ActionReprompt, ext.Action)
	assert.Equal(t, models.BookingIntent{}, ext.Intent)
	assert.Contains(t, ext.Message, "Pickup and drop-off can't be the same place.")

	// Same conflict on a single-slot fill.
	ext = Extract(models.BookingIntent{Dropoff: "Airport"}, "from the airport")
	assert.Equal(t, ActionReprompt, ext.Action)
	assert.Empty(t, ext.Intent.Pickup)
}

func TestExtractChangesDropoffWhileConfirming(t *testing.T) {
	current := models.BookingIntent{Pickup: "Home", Dropoff: "Airport"}
	ext := Extract(current, "to the mall")

	assert.Equal(t, "Mall", ext.Intent.Dropoff)
	assert.Equal(t, "Home", ext.Intent.Pickup)
	assert.Equal(t, "Book standard from Home to Mall?", ext.Message)
}

func TestExtractNeverRepeatsFilledSlotPrompt(t *testing.T) {
	// Once a slot is filled, no utterance sequence can produce the opening
	// prompt again without an explicit cancel.
	current := models.BookingIntent{Dropoff: "Airport"}
	for _, u := range []string{"um", "yes", "gibberish please", "to the airport"} {
		ext := Extract(current, u)
		if ext.Action == ActionCancel {
			continue
		}
		assert.NotEqual(t, "Where would you like to go?", ext.Message, "utterance %q", u)
		assert.NotEmpty(t, ext.Intent.Dropoff, "utterance %q", u)
	}
}

func TestPromptForDerivesFromMissingSlots(t *testing.T) {
	assert.Equal(t, "Where would you like to go?", PromptFor(models.BookingIntent{}))
	assert.Equal(t, "To Airport. From where?", PromptFor(models.BookingIntent{Dropoff: "Airport"}))
	assert.Equal(t, "From Home. Where to?", PromptFor(models.BookingIntent{Pickup: "Home"}))
	assert.Equal(t, "Book standard from Home to Airport?",
		PromptFor(models.BookingIntent{Pickup: "Home", Dropoff: "Airport"}))
}
