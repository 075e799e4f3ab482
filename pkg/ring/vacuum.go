package ring

// vacuum sweeps the occupied set for Broken slots and reclaims them through
// a deleter.
type vacuum struct {
	lister  *lister
	reader  *reader
	deleter deleter
}

func newVacuum(lister *lister, reader *reader, deleter deleter) *vacuum {
	return &vacuum{lister: lister, reader: reader, deleter: deleter}
}

// run returns BrokenItemsRemoved(count), or UnexpectedError if enumeration
// itself fails.
func (v *vacuum) run() Event {
	names, err := v.lister.occupiedNames()
	if err != nil {
		return unexpectedEvent(err)
	}

	var removed uint64

	for _, n := range names {
		ev := v.reader.get(n)
		if ev.Kind != EventBroken {
			// NoEntry (raced away by another deleter), ItemGot, or anything
			// else: not a reclaim, and not a failure either.
			continue
		}

		delEv := v.deleter.del(n)
		if delEv.Kind == EventUnexpectedError {
			return delEv
		}

		removed++
	}

	return brokenRemovedEvent(removed)
}
