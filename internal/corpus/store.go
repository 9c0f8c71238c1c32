// Package corpus loads and serves the read-only job, FAQ and handbook
// collections the assistant answers from.
package corpus

import "github.com/bhanuprakash-18/zeppy/internal/types"

// Store holds the three corpora after a successful load. All accessors are
// read-only; the underlying records never mutate during a session.
type Store struct {
	jobs     []types.Job
	faqs     []types.FAQ
	handbook types.Handbook

	jobsByID    map[int]int // job id -> index into jobs
	locations   []string    // unique, first-seen corpus order
	departments []string
}

func newStore(jobs []types.Job, faqs []types.FAQ, handbook types.Handbook) *Store {
	store := &Store{
		jobs:     jobs,
		faqs:     faqs,
		handbook: handbook,
		jobsByID: make(map[int]int, len(jobs)),
	}

	seenLocation := make(map[string]bool)
	seenDepartment := make(map[string]bool)
	for i, job := range jobs {
		store.jobsByID[job.ID] = i
		if !seenLocation[job.Location] {
			seenLocation[job.Location] = true
			store.locations = append(store.locations, job.Location)
		}
		if !seenDepartment[job.Department] {
			seenDepartment[job.Department] = true
			store.departments = append(store.departments, job.Department)
		}
	}
	return store
}

// Jobs returns the job listings in corpus order.
func (s *Store) Jobs() []types.Job {
	return s.jobs
}

// FAQs returns the FAQ entries in corpus order.
func (s *Store) FAQs() []types.FAQ {
	return s.faqs
}

// Handbook returns the company handbook document.
func (s *Store) Handbook() types.Handbook {
	return s.handbook
}

// JobByID looks up a job by its stable identifier. A stale id yields a
// NotFoundError, never a panic.
func (s *Store) JobByID(id int) (*types.Job, error) {
	i, ok := s.jobsByID[id]
	if !ok {
		return nil, &NotFoundError{JobID: id}
	}
	job := s.jobs[i]
	return &job, nil
}

// Locations returns the distinct job locations in first-seen corpus order.
func (s *Store) Locations() []string {
	return s.locations
}

// Departments returns the distinct departments in first-seen corpus order.
func (s *Store) Departments() []string {
	return s.departments
}
