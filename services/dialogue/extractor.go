package dialogue

import (
	"fmt"
	"regexp"
	"strings"

	"swiftcab/models"
)

// Action is what the dialogue manager should do with an extraction result.
type Action string

const (
	ActionPrompt   Action = "prompt"   // a slot was filled; ask for the next one or confirm
	ActionReprompt Action = "reprompt" // nothing usable; re-ask for the missing slot
	ActionConfirm  Action = "confirm"  // user confirmed a complete intent
	ActionCancel   Action = "cancel"   // user cancelled; intent reset
)

// Extraction is the result of interpreting one utterance against the
// current intent, whether produced by the fallback grammar or the remote NLU.
type Extraction struct {
	Intent  models.BookingIntent
	Missing []string
	Message string
	Action  Action
}

// Closed confirmation/cancellation vocabularies, checked against the whole
// normalized utterance before slot extraction so a one-word answer is never
// taken as a place name once both slots are filled.
var confirmVocab = map[string]bool{
	"yes":      true,
	"yeah":     true,
	"yep":      true,
	"confirm":  true,
	"ok":       true,
	"okay":     true,
	"sure":     true,
	"correct":  true,
	"book it":  true,
	"go ahead": true,
}

var cancelVocab = map[string]bool{
	"no":                 true,
	"nope":               true,
	"cancel":             true,
	"stop":               true,
	"never mind":         true,
	"nevermind":          true,
	"forget it":          true,
	"cancel it":          true,
	"cancel the booking": true,
}

var (
	fromToRe   = regexp.MustCompile(`^from\s+(.+?)\s+to\s+(.+)$`)
	toFromRe   = regexp.MustCompile(`^to\s+(.+?)\s+from\s+(.+)$`)
	fromOnlyRe = regexp.MustCompile(`^from\s+(.+)$`)
	toOnlyRe   = regexp.MustCompile(`^to\s+(.+)$`)
)

var vehicleKeywords = map[string]models.VehicleClass{
	"premium":   models.VehiclePremium,
	"luxury":    models.VehiclePremium,
	"executive": models.VehiclePremium,
	"van":       models.VehicleVan,
	"minivan":   models.VehicleVan,
	"suv":       models.VehicleVan,
	"xl":        models.VehicleVan,
	"standard":  models.VehicleStandard,
	"sedan":     models.VehicleStandard,
	"regular":   models.VehicleStandard,
}

// Extract runs the fallback grammar over (current intent, utterance).
// Pure function; the system message is always derived from the recomputed
// missing-slot set, never from a fixed script, so a prompt can never re-ask
// for a slot that is already filled.
func Extract(current models.BookingIntent, utterance string) Extraction {
	u := Normalize(utterance)
	missing := current.MissingSlots()

	// Empty or filler-only input must not corrupt a partially filled intent.
	if u == "" {
		return repromptExtraction(current)
	}

	if confirmVocab[u] {
		if len(missing) == 0 {
			return Extraction{Intent: current, Action: ActionConfirm}
		}
		// A bare affirmative cannot fill a slot; keep asking.
		return repromptExtraction(current)
	}

	if cancelVocab[u] {
		empty := models.BookingIntent{}
		return Extraction{
			Intent:  empty,
			Missing: empty.MissingSlots(),
			Message: "Booking cancelled. " + PromptFor(empty),
			Action:  ActionCancel,
		}
	}

	next := current
	u, class := extractVehicleClass(u)
	if class != "" {
		next.VehicleClass = class
	}
	if u == "" {
		// Vehicle class only; re-derive the prompt for whatever is missing.
		return promptExtraction(next)
	}

	var pickup, dropoff string
	switch {
	case fromToRe.MatchString(u):
		m := fromToRe.FindStringSubmatch(u)
		pickup, dropoff = ResolvePlace(m[1]), ResolvePlace(m[2])
	case toFromRe.MatchString(u):
		m := toFromRe.FindStringSubmatch(u)
		pickup, dropoff = ResolvePlace(m[2]), ResolvePlace(m[1])
	case fromOnlyRe.MatchString(u):
		m := fromOnlyRe.FindStringSubmatch(u)
		pickup = ResolvePlace(m[1])
	case toOnlyRe.MatchString(u):
		m := toOnlyRe.FindStringSubmatch(u)
		dropoff = ResolvePlace(m[1])
	default:
		if targetSlot(next) == "pickup" {
			pickup = ResolvePlace(u)
		} else {
			dropoff = ResolvePlace(u)
		}
	}

	if pickup == "" && dropoff == "" {
		// Nothing resolvable survived cleaning.
		return repromptExtraction(next)
	}

	var ok bool
	if pickup != "" && dropoff != "" {
		next, ok = applyPlaces(next, pickup, dropoff)
	} else if pickup != "" {
		next, ok = applyPlace(next, "pickup", pickup)
	} else {
		next, ok = applyPlace(next, "dropoff", dropoff)
	}

	if !ok {
		ext := repromptExtraction(current)
		ext.Message = "Pickup and drop-off can't be the same place. " + ext.Message
		return ext
	}
	return promptExtraction(next)
}

// targetSlot decides which slot a bare place utterance answers: the one
// still empty, the first-turn dropoff default, or a change of destination
// while confirming.
func targetSlot(i models.BookingIntent) string {
	switch {
	case i.Pickup == "" && i.Dropoff != "":
		return "pickup"
	case i.Dropoff == "" && i.Pickup != "":
		return "dropoff"
	default:
		return "dropoff"
	}
}

// applyPlace fills one slot, refusing a value that would make pickup and
// dropoff identical. An empty resolved place fills nothing.
func applyPlace(i models.BookingIntent, slot, place string) (models.BookingIntent, bool) {
	if place == "" {
		return i, false
	}
	switch slot {
	case "pickup":
		if i.Dropoff == place {
			return i, false
		}
		i.Pickup = place
	case "dropoff":
		if i.Pickup == place {
			return i, false
		}
		i.Dropoff = place
	}
	return i, true
}

func applyPlaces(i models.BookingIntent, pickup, dropoff string) (models.BookingIntent, bool) {
	if pickup == "" || dropoff == "" || pickup == dropoff {
		return i, false
	}
	i.Pickup = pickup
	i.Dropoff = dropoff
	return i, true
}

func extractVehicleClass(u string) (string, models.VehicleClass) {
	words := strings.Fields(u)
	for idx, w := range words {
		if class, hit := vehicleKeywords[w]; hit {
			kept := append([]string{}, words[:idx]...)
			kept = append(kept, words[idx+1:]...)
			// Drop a dangling article left behind ("a premium").
			if len(kept) > 0 && (kept[len(kept)-1] == "a" || kept[len(kept)-1] == "an") {
				kept = kept[:len(kept)-1]
			}
			return strings.Join(kept, " "), class
		}
	}
	return u, ""
}

// PromptFor derives the next system message purely from which slots are
// still empty. This is what structurally enforces the no-repeat guarantee.
func PromptFor(i models.BookingIntent) string {
	switch {
	case i.Pickup == "" && i.Dropoff == "":
		return "Where would you like to go?"
	case i.Pickup == "":
		return fmt.Sprintf("To %s. From where?", i.Dropoff)
	case i.Dropoff == "":
		return fmt.Sprintf("From %s. Where to?", i.Pickup)
	default:
		return fmt.Sprintf("Book %s from %s to %s?", i.Class(), i.Pickup, i.Dropoff)
	}
}

// rePromptFor is the generic retry wording for the same missing set.
func rePromptFor(i models.BookingIntent) string {
	switch {
	case i.Pickup == "" && i.Dropoff == "":
		return "Sorry, I didn't catch that. Where would you like to go?"
	case i.Pickup == "":
		return fmt.Sprintf("Sorry, I didn't catch that. Where should we pick you up for %s?", i.Dropoff)
	case i.Dropoff == "":
		return fmt.Sprintf("Sorry, I didn't catch that. Where are you headed from %s?", i.Pickup)
	default:
		return PromptFor(i)
	}
}

func promptExtraction(i models.BookingIntent) Extraction {
	return Extraction{
		Intent:  i,
		Missing: i.MissingSlots(),
		Message: PromptFor(i),
		Action:  ActionPrompt,
	}
}

func repromptExtraction(i models.BookingIntent) Extraction {
	return Extraction{
		Intent:  i,
		Missing: i.MissingSlots(),
		Message: rePromptFor(i),
		Action:  ActionReprompt,
	}
}
