package intern

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"weak"

	"github.com/google/uuid"

	"github.com/randalmurphal/intern/pkg/intern/observability"
)

// Registry is a shared, lockable index of interned strings. Insert returns
// one shared Symbol per distinct value; the index holds only non-counting
// entries, so an unused value is removed the moment its last handle is
// released.
//
// A *Registry is the handle to the shared index: copies of the pointer are
// clones, and two handles are the same registry iff the pointers are equal.
// Indexed symbols keep only a weak back-reference to the registry, so the
// index itself is collectible once the last handle to it is gone; symbols it
// still indexed live on as standalone-equivalents.
//
// All methods are safe for concurrent use.
type Registry struct {
	id      string
	log     *slog.Logger
	metrics observability.MetricsRecorder

	mu      sync.Mutex
	entries map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{
		id:      uuid.NewString(),
		log:     cfg.logger,
		metrics: cfg.metrics,
		entries: make(map[string]entry, cfg.capacity),
	}
}

// ID returns the registry's unique identifier, as used in logs, metrics
// attributes and the String output.
func (r *Registry) ID() string {
	return r.id
}

// Insert returns the registry's symbol for value, interning it first if no
// entry exists yet. The returned handle is owned by the caller and must be
// released; every Insert of the same value returns a handle to the same
// storage (they are Same) for as long as at least one handle stays alive.
func (r *Registry) Insert(value string) Symbol {
	r.mu.Lock()
	if e, ok := r.entries[value]; ok {
		s := e.retain()
		r.mu.Unlock()
		r.metrics.RecordLookup(r.id, true)
		observability.LogDeduplicated(r.log, r.id, len(value))
		return s
	}
	s := New(value)
	e := entry{b: s.b}
	// Key the index with the block's own copy of the value so the map key
	// shares its backing bytes with the payload.
	r.entries[e.value()] = e
	// Stamp the back-reference while still holding the lock: no other
	// goroutine can reach this block until Insert returns.
	s.b.origin = weak.Make(r)
	n := len(r.entries)
	r.mu.Unlock()
	r.metrics.RecordLookup(r.id, false)
	r.metrics.RecordEntries(r.id, 1)
	observability.LogInterned(r.log, r.id, len(value), n)
	return s
}

// Find returns a counted handle to the registry's symbol for value, or
// false if the value is not interned. Not-found is the only expected-failure
// outcome in this package.
func (r *Registry) Find(value string) (Symbol, bool) {
	r.mu.Lock()
	e, ok := r.entries[value]
	var s Symbol
	if ok {
		s = e.retain()
	}
	r.mu.Unlock()
	r.metrics.RecordLookup(r.id, ok)
	return s, ok
}

// Contains reports whether value is currently interned, without retaining it.
func (r *Registry) Contains(value string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[value]
	return ok
}

// IsLocal reports whether s was interned by this exact registry. A symbol
// from another registry is never local here, even if this registry holds an
// equal value; standalone symbols are local to no registry.
func (r *Registry) IsLocal(s Symbol) bool {
	return s.b != nil && s.b.origin.Value() == r
}

// FindSymbol resolves s against this registry. When s is already local the
// result is a clone of s itself, with no index lookup; otherwise FindSymbol
// falls back to Find on the symbol's value.
func (r *Registry) FindSymbol(s Symbol) (Symbol, bool) {
	if r.IsLocal(s) {
		return s.Clone(), true
	}
	if s.IsZero() {
		// Never let the zero Symbol alias an interned empty string.
		return Symbol{}, false
	}
	return r.Find(s.Value())
}

// Len returns the number of currently interned values.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Preload interns every value in order and returns one owned handle per
// input. Callers seed registries with common dictionaries this way, usually
// from a config.Manifest, and keep the returned handles alive for as long as
// the dictionary should stay interned.
func (r *Registry) Preload(ctx context.Context, values []string) []Symbol {
	_, span := observability.StartPreloadSpan(ctx, r.id, len(values))
	defer span.End()

	syms := make([]Symbol, len(values))
	for i, v := range values {
		syms[i] = r.Insert(v)
	}
	return syms
}

// String renders the registry's identity and current contents, values
// sorted for determinism.
func (r *Registry) String() string {
	r.mu.Lock()
	values := make([]string, 0, len(r.entries))
	for v := range r.entries {
		values = append(values, v)
	}
	r.mu.Unlock()
	slices.Sort(values)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Registry(%s){", r.id)
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", v)
	}
	sb.WriteString("}")
	return sb.String()
}

// teardownOutcome classifies what removeEntry did with a dying block.
type teardownOutcome int

const (
	// entryRemoved: the count stayed zero under the lock and the index
	// entry was deleted.
	entryRemoved teardownOutcome = iota
	// entryRevived: a lookup cloned a fresh handle between the final
	// release and the lock; that handle's Release owns cleanup now.
	entryRevived
	// entryGone: a teardown racing through the same zero count acquired
	// the lock first and already removed (or replaced) the entry.
	entryGone
)

// removeEntry is the lock-guarded half of the teardown protocol: re-check
// the strong count under the same lock every lookup uses, and remove the
// index entry only if the count is still zero and the entry is still this
// very block. It reports the outcome and how many entries remain.
func (r *Registry) removeEntry(b *block) (remaining int, outcome teardownOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.strong.Load() != 0 {
		return len(r.entries), entryRevived
	}
	if e, ok := r.entries[b.data]; ok && e.b == b {
		delete(r.entries, b.data)
		return len(r.entries), entryRemoved
	}
	return len(r.entries), entryGone
}

func (r *Registry) observeEviction(valueLen, remaining int) {
	r.metrics.RecordEviction(r.id)
	r.metrics.RecordEntries(r.id, -1)
	observability.LogEvicted(r.log, r.id, valueLen, remaining)
}

func (r *Registry) observeRevival(valueLen int) {
	r.metrics.RecordResurrection(r.id)
	observability.LogRevived(r.log, r.id, valueLen)
}
