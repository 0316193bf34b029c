// Package session keeps the per-client storefront state: cart, checkout,
// filter criteria and assistant conversation.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"lumina/internal/cart"
	"lumina/internal/checkout"
	"lumina/internal/filter"
	"lumina/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrSearchInProgress = errors.New("semantic search already in progress")

// Session is the state of one client.
type Session struct {
	ID       string
	Cart     *cart.Cart
	Checkout *checkout.Coordinator

	mu        sync.Mutex
	defaults  filter.Criteria
	criteria  filter.Criteria
	searching bool
	history   []models.ChatMessage
	lastSeen  time.Time
}

// Criteria returns a copy of the current filter criteria.
func (s *Session) Criteria() filter.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria.Clone()
}

// UpdateCriteria applies change to the criteria and returns the result.
func (s *Session) UpdateCriteria(change func(c *filter.Criteria)) filter.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	change(&s.criteria)
	return s.criteria.Clone()
}

// ResetCriteria restores every criterion to its default in one step.
func (s *Session) ResetCriteria() filter.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Reset(s.defaults)
	return s.criteria.Clone()
}

// BeginSearch records query as the free-text query. It reports whether a
// semantic search should run; a blank query clears the semantic set
// instead. Only one search runs at a time.
func (s *Session) BeginSearch(query string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searching {
		return false, ErrSearchInProgress
	}
	s.criteria.Query = query
	if strings.TrimSpace(query) == "" {
		s.criteria.Semantic = nil
		return false, nil
	}
	s.searching = true
	return true, nil
}

// FinishSearch ends the search started for query. The result is applied
// only if the query has not changed in the meantime; it reports whether it
// was applied.
func (s *Session) FinishSearch(query string, ids []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searching = false
	if s.criteria.Query != query {
		return false
	}
	if len(ids) == 0 {
		s.criteria.Semantic = nil
	} else {
		s.criteria.Semantic = append([]string{}, ids...)
	}
	return true
}

// History returns a copy of the assistant conversation.
func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage{}, s.history...)
}

// AppendChat adds messages to the conversation.
func (s *Session) AppendChat(messages ...models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, messages...)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Options configures the sessions a Registry creates.
type Options struct {
	Defaults filter.Criteria
	Checkout checkout.Config
	Greeting models.ChatMessage
	Logger   *logrus.Logger
}

// Registry owns every live session.
type Registry struct {
	opts Options
	now  func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		opts:     opts,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session with a fresh ID.
func (r *Registry) Create() *Session {
	c := cart.New(r.opts.Logger)
	s := &Session{
		ID:       uuid.New().String(),
		Cart:     c,
		Checkout: checkout.New(c, r.opts.Checkout),
		defaults: r.opts.Defaults,
		criteria: r.opts.Defaults.Clone(),
		lastSeen: r.now(),
	}
	if r.opts.Greeting.Content != "" {
		s.history = []models.ChatMessage{r.opts.Greeting}
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session with id and marks it as used.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		s.touch(r.now())
	}
	return s, ok
}

// GetOrCreate returns the session with id, or a new session when id is
// empty or unknown. created reports which happened.
func (r *Registry) GetOrCreate(id string) (s *Session, created bool) {
	if id != "" {
		if s, ok := r.Get(id); ok {
			return s, false
		}
	}
	return r.Create(), true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions unused for longer than maxIdle, except those with a
// payment outstanding, and returns how many were dropped.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) && !s.Checkout.Paying() {
			delete(r.sessions, id)
			dropped++
		}
	}
	if dropped > 0 {
		r.opts.Logger.WithField("dropped", dropped).Debug("Idle sessions swept")
	}
	return dropped
}
