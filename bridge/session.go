package bridge

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/erraggy/namekit/element"
	"github.com/erraggy/namekit/nkerrors"
	"github.com/erraggy/namekit/preview"
)

// DefaultDebounce is the delay Schedule waits after the last call.
const DefaultDebounce = 50 * time.Millisecond

// Session is the state of one rename workflow against a host.
// It is safe for concurrent use.
type Session struct {
	host     Host
	logger   *slog.Logger
	debounce time.Duration

	mu       sync.Mutex
	category element.Category
	scope    element.Scope
	cfg      preview.Config
	items    []element.Item
	timer    *time.Timer
}

// Option configures a Session.
type Option func(*Session)

// WithScope sets the initial scope. The default is element.CurrentPage.
func WithScope(scope element.Scope) Option {
	return func(s *Session) { s.scope = scope }
}

// WithConfig replaces the category's default config.
func WithConfig(cfg preview.Config) Option {
	return func(s *Session) { s.cfg = cfg.Clone() }
}

// WithDebounce sets the Schedule delay. Non-positive values keep DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session for category c. Items are not fetched until Load.
func NewSession(host Host, c element.Category, opts ...Option) *Session {
	s := &Session{
		host:     host,
		logger:   slog.Default(),
		debounce: DefaultDebounce,
		category: c,
		cfg:      preview.DefaultConfig(c),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the items of the current category and scope. On failure the
// session is left with no items.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	c, scope := s.category, s.scope
	s.items = nil
	s.mu.Unlock()

	items, err := s.host.Items(ctx, c, scope)
	if err != nil {
		s.logger.Error("fetching items failed", "category", c.String(), "scope", scope.String(), "error", err)
		return &nkerrors.HostError{Op: "fetch", Category: c.String(), Cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A category or scope switch during the fetch supersedes this result.
	if s.category == c && s.scope == scope {
		s.items = items
	}
	s.logger.Debug("fetched items", "category", c.String(), "scope", scope.String(), "count", len(items))
	return nil
}

// SetCategory switches category, resets the config to the category
// default, and reloads.
func (s *Session) SetCategory(ctx context.Context, c element.Category) error {
	s.mu.Lock()
	s.category = c
	s.cfg = preview.DefaultConfig(c)
	s.mu.Unlock()
	return s.Load(ctx)
}

// SetScope switches scope and reloads.
func (s *Session) SetScope(ctx context.Context, scope element.Scope) error {
	s.mu.Lock()
	s.scope = scope
	s.mu.Unlock()
	return s.Load(ctx)
}

// SetConfig replaces the preview config.
func (s *Session) SetConfig(cfg preview.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg.Clone()
}

// Update edits the preview config in place.
func (s *Session) Update(fn func(*preview.Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cfg)
}

// Config returns a copy of the current preview config.
func (s *Session) Config() preview.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// Category returns the current category.
func (s *Session) Category() element.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// Items returns a copy of the fetched items.
func (s *Session) Items() []element.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Preview recomputes the preview from the current items and config.
func (s *Session) Preview() []preview.Entry {
	s.mu.Lock()
	items, cfg := s.items, s.cfg.Clone()
	s.mu.Unlock()
	return preview.Build(items, cfg)
}

// Schedule runs fn with a fresh preview once no other Schedule call has
// happened for the debounce delay. Earlier pending calls are discarded.
func (s *Session) Schedule(fn func([]preview.Entry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		fn(s.Preview())
	})
}

// Close stops any pending scheduled preview.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// ApplyAll commits every changed entry of the current preview, then reloads.
// Nothing is sent to the host when no name changes.
func (s *Session) ApplyAll(ctx context.Context) (Result, error) {
	return s.commit(ctx, preview.Changes(s.Preview()))
}

// ApplySelected commits the entries at the given indices of the current
// preview, then reloads. Repeated indices count once. Indices out of range
// and unchanged entries are skipped; nothing is sent when none remain.
func (s *Session) ApplySelected(ctx context.Context, indices ...int) (Result, error) {
	entries := s.Preview()
	var changes []preview.Change
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if seen[i] {
			continue
		}
		seen[i] = true
		if change, ok := preview.ChangeAt(entries, i); ok {
			changes = append(changes, change)
		}
	}
	return s.commit(ctx, changes)
}

func (s *Session) commit(ctx context.Context, changes []preview.Change) (Result, error) {
	if len(changes) == 0 {
		return Result{}, nil
	}

	s.mu.Lock()
	c, scope := s.category, s.scope
	s.mu.Unlock()

	res, err := s.host.Rename(ctx, c, scope, changes)
	if err != nil {
		s.logger.Error("renaming failed", "category", c.String(), "changes", len(changes), "error", err)
		return res, &nkerrors.HostError{Op: "rename", Category: c.String(), Cause: err}
	}
	for _, f := range res.Failures {
		s.logger.Warn("rename skipped", "id", f.ID, "reason", f.Reason)
	}
	if res.Renamed > 0 {
		s.logger.Info("renamed items", "category", c.String(), "count", res.Renamed)
	}

	return res, s.Load(ctx)
}
