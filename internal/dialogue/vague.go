package dialogue

// Vague-input detection. Anything caught here gets the clarification menu
// before the intent rules ever run, so bare "ok" or "no" never reach the
// simple-response handling either (the length check claims them first).

var vagueSingleWords = map[string]bool{
	"what": true, "how": true, "when": true, "where": true, "why": true,
	"who": true, "tell": true, "info": true, "help": true,
	"hi": true, "hello": true, "hey": true,
}

var vaguePhrases = map[string]bool{
	"what?": true, "how?": true, "tell me": true, "i want to know": true,
	"information": true, "what is": true, "what are": true, "how do": true,
	"how can": true, "tell me about": true, "what about": true,
	"how about": true, "what does": true,
}

// isVague reports whether the trimmed, normalized message is too short or
// too generic to resolve an intent from.
func isVague(msg string) bool {
	if vagueSingleWords[msg] {
		return true
	}
	if len(msg) < 3 {
		return true
	}
	return vaguePhrases[msg]
}
