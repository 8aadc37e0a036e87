package intern

import (
	"math"
	"strings"
	"sync/atomic"
	"weak"

	"github.com/cespare/xxhash/v2"
)

// maxRefs is the ceiling for a block's strong count. A count anywhere near
// this value can only mean runaway cloning or a corrupted counter, and a
// wrapped counter would break the teardown protocol, so Clone panics instead
// of letting it happen.
const maxRefs = math.MaxUint64 >> 1

// block is the shared storage behind one or more Symbol handles: the strong
// count, the back-reference to the owning registry (if any), and the string
// payload. The payload is never mutated after construction; the strong count
// is only ever touched atomically.
//
// origin is written at most once, inside Registry.Insert while the registry
// lock is still held and before any other goroutine can reach the block, so
// the plain field cannot race with its readers.
type block struct {
	strong atomic.Uint64
	origin weak.Pointer[Registry]
	data   string
}

// retain increments the strong count, panicking at the ceiling.
func (b *block) retain() {
	if b.strong.Add(1) > maxRefs {
		panic("intern: symbol reference count overflow")
	}
}

// teardown runs after the strong count hits zero. If the block is indexed by
// a still-live registry, its index entry is removed under the registry lock,
// unless a concurrent lookup revived the count first — then the revived
// handle's Release owns cleanup and this teardown cancels itself. Once the
// entry is gone nothing references the block anymore and the garbage
// collector reclaims it.
func (b *block) teardown() {
	r := b.origin.Value()
	if r == nil {
		// Standalone symbol, or the registry was collected already; the
		// block simply goes away with its last handle.
		return
	}
	remaining, outcome := r.removeEntry(b)
	switch outcome {
	case entryRemoved:
		r.observeEviction(len(b.data), remaining)
	case entryRevived:
		r.observeRevival(len(b.data))
	case entryGone:
		// A teardown racing through the same zero count already removed
		// the entry; nothing left to do.
	}
}

// Symbol is an owning handle to an immutable shared string.
//
// Copies of a Symbol value alias the same storage without affecting its
// lifetime; use Clone to create a handle that extends the lifetime and
// Release to give one up. The string is shared either by cloning a Symbol or
// by looking its value up in the Registry that interned it.
//
// The zero Symbol is invalid: it has an empty value and no storage, and
// Clone and Release panic on it.
type Symbol struct {
	b *block
}

// New creates a standalone symbol holding a private copy of value. The
// symbol starts with a strong count of one and belongs to no registry; two
// standalone symbols built from equal text never share storage.
func New(value string) Symbol {
	b := &block{data: strings.Clone(value)}
	b.strong.Store(1)
	return Symbol{b: b}
}

// Value returns the symbol's string without copying. The zero Symbol has an
// empty value.
func (s Symbol) Value() string {
	if s.b == nil {
		return ""
	}
	return s.b.data
}

// String implements fmt.Stringer by rendering the symbol's value.
func (s Symbol) String() string {
	return s.Value()
}

// IsZero reports whether s is the invalid zero Symbol.
func (s Symbol) IsZero() bool {
	return s.b == nil
}

// Clone returns a new owning handle to the same storage, incrementing the
// strong count. Clone panics if the count would pass its ceiling or if s is
// the zero Symbol.
func (s Symbol) Clone() Symbol {
	if s.b == nil {
		panic("intern: Clone of zero Symbol")
	}
	s.b.retain()
	return Symbol{b: s.b}
}

// Release gives up this handle's ownership. When the last handle is
// released the symbol's registry entry, if any, is removed and the storage
// becomes collectible; see the package documentation for the exact protocol.
//
// Each handle must be released exactly once. Release panics on the zero
// Symbol and on a double release it can detect.
func (s Symbol) Release() {
	if s.b == nil {
		panic("intern: Release of zero Symbol")
	}
	// Go atomics are sequentially consistent, which covers the
	// release-decrement/acquire-fence pairing reference counting needs.
	n := s.b.strong.Add(^uint64(0))
	if n == 0 {
		s.b.teardown()
		return
	}
	if n > maxRefs {
		panic("intern: Release of already-released Symbol")
	}
}

// Same reports whether both handles reference the very same storage. Two
// standalone symbols built from equal text are never Same unless one was
// cloned from the other. Comparing Symbol values with == is equivalent.
func (s Symbol) Same(other Symbol) bool {
	return s.b == other.b
}

// Equal reports value equality: true iff both symbols hold equal text,
// regardless of identity or registry membership. See Same for the stricter
// identity relation.
func (s Symbol) Equal(other Symbol) bool {
	return s.Value() == other.Value()
}

// Compare orders symbols lexicographically by value, returning -1, 0 or 1.
func (s Symbol) Compare(other Symbol) int {
	return strings.Compare(s.Value(), other.Value())
}

// Sum64 returns a stable 64-bit hash of the symbol's value, for containers
// keyed by value rather than identity. Equal values always hash equal.
func (s Symbol) Sum64() uint64 {
	return xxhash.Sum64String(s.Value())
}
