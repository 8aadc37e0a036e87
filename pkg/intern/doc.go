/*
Package intern provides shared immutable strings ("symbols") with
reference-counted, race-safe cleanup.

# Overview

A Symbol is an owning handle to one heap copy of a string. Symbols created
through a Registry are deduplicated: every Insert of the same value returns a
handle to the same storage for as long as any handle to it stays alive, and
the registry's entry is removed the moment the last handle is released. The
registry itself never keeps a value alive — its index holds only non-counting
views — and symbols hold only a weak back-reference to their registry, so
either side can outlive the other.

# Basic Usage

Create a registry and intern values:

	r := intern.NewRegistry()

	a := r.Insert("content-type")
	b := r.Insert("content-type")
	fmt.Println(a.Same(b)) // true: one shared allocation

	a.Release()
	b.Release() // last handle gone: the entry is removed

Standalone symbols skip deduplication entirely:

	s := intern.New("hello")
	defer s.Release()

# Ownership

Every Symbol returned by New, Clone, Insert, Find, FindSymbol or Preload is
owned by its caller and must be released exactly once. Copying a Symbol value
(assignment, passing by value) aliases the handle without extending the
string's lifetime; use Clone when a copy needs its own lifetime. Using a
handle after releasing it is a bug; over-release panics where detectable.

Releasing the last handle runs the teardown protocol: the count drops to
zero, the registry lock is taken, and the count is re-checked under that lock
before the index entry is removed. The re-check closes the resurrection race:
a concurrent Find or Insert may have handed out a fresh handle after the
count hit zero, in which case the teardown cancels itself and cleanup passes
to that handle's eventual Release.

# Identity Versus Value

Symbols carry two equality relations. Equal, Compare and Sum64 see only the
string value: any two symbols holding equal text are Equal, interned or not.
Same (and ==, Symbol is comparable) is identity: true only for handles to the
very same storage. Two standalone symbols built from equal text are Equal but
never Same.

Registries compare by identity only: two *Registry handles are the same
registry iff the pointers are equal. IsLocal ties the two together — it
reports whether a symbol was interned by this exact registry, never whether
the values happen to match.

# Go Notes

The package keeps an explicit strong count even though Go is garbage
collected, because deduplication hinges on deterministic cleanup: the index
entry must disappear exactly when the last handle does, not when the GC next
runs. "Freeing" a block here means removing its index entry; reclaiming the
memory afterwards is the GC's job, which is also why the metadata-plus-bytes
single allocation of lower-level implementations is simply a struct holding a
string.

# Observability

Registries optionally log interning activity through slog and record
hit/miss/eviction counters through OpenTelemetry:

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	r := intern.NewRegistry(
	    intern.WithLogger(logger),
	    intern.WithMetrics(observability.NewMetricsRecorder()),
	)

Both default to no-ops. See the observability sub-package.

# Preloading

Seed a registry with a dictionary of common values, optionally loaded from a
YAML or JSON manifest via the config sub-package:

	m, err := config.FromFile("symbols.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	pinned := r.Preload(ctx, m.Symbols)
	// release the pinned handles when the dictionary should unpin

# Concurrency

All Registry methods and all Symbol methods are safe for concurrent use.
Operations are either single atomic updates or short critical sections around
the index map; nothing blocks indefinitely and nothing is cancelable.
*/
package intern
