// Package dialogue owns the per-session conversation state machine: it
// applies a fixed priority order across the resolvers and decides how each
// user turn is answered.
package dialogue

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bhanuprakash-18/zeppy/internal/corpus"
	"github.com/bhanuprakash-18/zeppy/internal/normalize"
	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// Assistant processes one user turn at a time against the loaded corpus.
// It is single-owner state: only the controller mutates the conversation
// record and the pagination cursor, and never concurrently.
type Assistant struct {
	store     *corpus.Store
	sessionID uuid.UUID
	state     types.ConversationState
	cursor    cursor
	rules     []rule
}

// New creates an Assistant for one session. A nil store means corpus loading
// failed; the assistant then stays inert and apologizes on every turn.
func New(store *corpus.Store) *Assistant {
	a := &Assistant{
		store:     store,
		sessionID: uuid.New(),
		state:     types.NewConversationState(),
	}
	a.rules = intentRules()
	return a
}

// SessionID identifies this conversation.
func (a *Assistant) SessionID() uuid.UUID {
	return a.sessionID
}

// State exposes the current conversation record (read-only snapshot).
func (a *Assistant) State() types.ConversationState {
	return a.state
}

// HandleTurn resolves one turn of user input into a renderable response.
//
// Decision order: the vague-input check runs first and short-circuits
// without touching state; a pending follow-up flag is then consumed
// (one-shot) and the text falls through to the intent rules, which are
// evaluated top to bottom with first-match semantics.
func (a *Assistant) HandleTurn(text string) types.Response {
	if a.store == nil {
		return corpusUnavailable()
	}

	msg := strings.TrimSpace(normalize.Normalize(text))

	if isVague(msg) {
		return clarificationMenu()
	}

	if a.state.ExpectingFollowUp {
		a.state.ExpectingFollowUp = false
	}

	return a.resolve(msg)
}

func (a *Assistant) resolve(msg string) types.Response {
	for _, r := range a.rules {
		if r.applies(a, msg) {
			return r.handle(a, msg)
		}
	}
	// The final rule always applies; this is unreachable.
	return fallbackMenu()
}

// Reset clears the conversation state to its initial values and returns the
// welcome menu. The pagination cursor is left alone: it only resets when a
// new search replaces the job set.
func (a *Assistant) Reset() types.Response {
	a.state = types.NewConversationState()
	return welcomeMenu()
}

func (a *Assistant) setTopic(topic types.Topic, question string) {
	a.state.LastTopic = topic
	a.state.LastQuestion = question
}

// HandleOption answers one of the quick-option menu topics. Choosing an
// option resets the conversation state with the option as the new topic,
// mirroring a fresh branch of the dialog tree.
func (a *Assistant) HandleOption(topic types.Topic) types.Response {
	if a.store == nil {
		return corpusUnavailable()
	}
	a.state = types.NewConversationState()
	a.state.LastTopic = topic
	return optionMenu(topic)
}
