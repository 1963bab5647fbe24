package session

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/inertia/internal/logging"
	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// Character is one managed node instance with its latest output.
type Character struct {
	ID       string
	Node     ports.BlendNode
	LastPose domain.Pose
	Frames   int
}

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager owns node instances keyed by character ID.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	mu         sync.Mutex
	locks      map[string]*lockEntry
	characters map[string]*Character

	concurrency int
	logger      *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithConcurrency bounds how many characters TickAll evaluates at once (default: unbounded).
func WithConcurrency(n int) Option {
	return func(m *Manager) {
		m.concurrency = n
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates an empty Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		locks:      make(map[string]*lockEntry),
		characters: make(map[string]*Character),
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(id) after unlocking.
func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

func (m *Manager) lookup(id string) (*Character, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.characters[id]
	return c, ok
}

// Add initializes node, binds it to the frame's bones and starts managing it under id.
func (m *Manager) Add(ctx context.Context, id string, node ports.BlendNode, frame *domain.Frame) error {
	if node == nil {
		return domain.ErrNoSource
	}
	if _, exists := m.lookup(id); exists {
		return fmt.Errorf("%w: %s", domain.ErrCharacterExists, id)
	}

	if err := node.Initialize(ctx, frame); err != nil {
		return fmt.Errorf("failed to initialize character %s: %w", id, err)
	}
	if err := node.CacheBones(ctx, frame); err != nil {
		return fmt.Errorf("failed to cache bones for character %s: %w", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.characters[id]; exists {
		return fmt.Errorf("%w: %s", domain.ErrCharacterExists, id)
	}
	m.characters[id] = &Character{ID: id, Node: node}
	m.logger.Debug("character added", "character", id)
	return nil
}

// Remove stops managing the character. In-flight access under WithLock completes first.
func (m *Manager) Remove(ctx context.Context, id string) error {
	return m.WithLock(ctx, id, func(_ context.Context, _ *Character) error {
		m.mu.Lock()
		delete(m.characters, id)
		m.mu.Unlock()
		m.logger.Debug("character removed", "character", id)
		return nil
	})
}

// List returns the managed character IDs in sorted order.
func (m *Manager) List() []string {
	m.mu.Lock()
	ids := make([]string, 0, len(m.characters))
	for id := range m.characters {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	sort.Strings(ids)
	return ids
}

// WithLock executes fn while holding the lock for the character.
func (m *Manager) WithLock(ctx context.Context, id string, fn func(context.Context, *Character) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	c, ok := m.lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, id)
	}
	return fn(ctx, c)
}

// Tick runs one Update and Evaluate on a single character and stores the output.
func (m *Manager) Tick(ctx context.Context, id string, frame *domain.Frame) (domain.Pose, error) {
	var out domain.Pose
	err := m.WithLock(ctx, id, func(ctx context.Context, c *Character) error {
		if err := c.Node.Update(ctx, frame); err != nil {
			return err
		}
		pose, err := c.Node.Evaluate(ctx, frame)
		if err != nil {
			return err
		}
		c.LastPose = pose
		c.Frames++
		out = pose.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("character %s: %w", id, err)
	}
	return out, nil
}

// TickAll ticks every managed character concurrently and returns their output poses.
// The first error cancels the remaining ticks.
func (m *Manager) TickAll(ctx context.Context, frame *domain.Frame) (map[string]domain.Pose, error) {
	ids := m.List()

	g, ctx := errgroup.WithContext(ctx)
	if m.concurrency > 0 {
		g.SetLimit(m.concurrency)
	}

	var mu sync.Mutex
	out := make(map[string]domain.Pose, len(ids))
	for _, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pose, err := m.Tick(ctx, id, frame)
			if err != nil {
				return err
			}
			mu.Lock()
			out[id] = pose
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		m.logger.Warn("tick failed", "err", err)
		return nil, err
	}
	return out, nil
}

// Run ticks every character once per frame.DeltaSeconds of wall time until ctx is done.
// Tick failures are logged and do not stop the loop.
func (m *Manager) Run(ctx context.Context, frame *domain.Frame) error {
	interval := time.Duration(frame.DeltaSeconds * float64(time.Second))
	if interval <= 0 {
		return fmt.Errorf("invalid frame interval %v", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := m.TickAll(ctx, frame); err != nil && ctx.Err() == nil {
				m.logger.Error("frame failed", "err", err)
			}
		}
	}
}
