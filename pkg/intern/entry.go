package intern

// entry is the registry's non-owning view of a storage block. Holding an
// entry in the index contributes nothing to the block's strong count, so a
// registry's possession of a value never keeps that value alive.
type entry struct {
	b *block
}

// retain produces a properly counted handle for a caller that found this
// entry via lookup. It must only be called with the owning registry's lock
// held: reviving a count that already reached zero is safe exactly because
// the dying handle's teardown re-checks the count under that same lock.
func (e entry) retain() Symbol {
	e.b.retain()
	return Symbol{b: e.b}
}

// value returns the indexed string without counting.
func (e entry) value() string {
	return e.b.data
}
