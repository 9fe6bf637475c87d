package dialogue

// Speaker is the text-to-speech collaborator. Playback is fire-and-forget
// relative to the state machine but must be cancelable: user input always
// pre-empts system output, never the reverse.
type Speaker interface {
	Speak(text string)
	Cancel()
}

// NopSpeaker is used when playback happens client-side (browser TTS).
type NopSpeaker struct{}

func (NopSpeaker) Speak(string) {}
func (NopSpeaker) Cancel()      {}
