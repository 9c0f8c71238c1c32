package dialogue

import (
	"fmt"

	"github.com/bhanuprakash-18/zeppy/internal/types"
)

// pageSize is the number of job cards revealed per "show more" step.
const pageSize = 4

// cursor is the session-scoped pointer into the active ranked job set. It
// resets only when a new search replaces the set; MoreJobs only ever moves
// it forward.
type cursor struct {
	set  []types.RankedJob
	page int
}

func (c *cursor) reset(set []types.RankedJob) {
	c.set = set
	c.page = 0
}

// MoreJobs reveals the next slice of the stored result set. The second
// return value is false when the cursor is exhausted (or no search is
// active); the response then carries the exhaustion announcement instead of
// cards. The offset never decreases.
func (a *Assistant) MoreJobs() (types.Response, bool) {
	if a.store == nil {
		return corpusUnavailable(), false
	}
	if len(a.cursor.set) == 0 {
		return types.Message("There are no search results to page through yet. Ask me about jobs first!"), false
	}

	a.cursor.page++
	start := a.cursor.page * pageSize
	if start >= len(a.cursor.set) {
		return types.Message("That's all the available positions! Any of these look interesting to you?"), false
	}

	end := min(start+pageSize, len(a.cursor.set))
	next := a.cursor.set[start:end]
	remaining := len(a.cursor.set) - end

	paragraphs := []string{fmt.Sprintf("Here are the next %d positions:", len(next))}
	if remaining == 0 {
		paragraphs = append(paragraphs, "That's all the available positions! Any of these look interesting to you?")
	}

	return types.Response{
		Kind:       types.KindJobList,
		Paragraphs: paragraphs,
		Jobs:       next,
		Remaining:  remaining,
	}, true
}
