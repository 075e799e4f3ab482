package ring

// dispatcher is the state machine mapping a Request to the Event its
// subcomponents produce. It is the only component that constructs terminal
// success Events from subcomponent outcomes.
type dispatcher struct {
	alphabet Alphabet

	reader  *reader
	writer  *writer
	deleter deleter
	lister  *lister
	next    *nextNameGenerator
	vacuum  *vacuum
}

// handle dispatches req and returns the resulting Event. Get and Del first
// validate the raw name through the alphabet, returning BadRequest on
// anything that fails validation before any subcomponent ever sees it.
func (d *dispatcher) handle(req Request) Event {
	switch req.Kind {
	case RequestGet:
		name, ok := d.alphabet.Validate(req.RawName)
		if !ok {
			return badRequestEvent("invalid name: " + req.RawName)
		}

		return d.reader.get(name)

	case RequestDel:
		name, ok := d.alphabet.Validate(req.RawName)
		if !ok {
			return badRequestEvent("invalid name: " + req.RawName)
		}

		ev := d.deleter.del(name)
		if ev.Kind == EventUnexpectedError {
			return ev
		}

		return successEvent()

	case RequestPush:
		name, err := d.next.next()
		if err != nil {
			if err == errRetryBudgetExhausted {
				return tooManyItemsEvent()
			}

			return unexpectedEvent(err)
		}

		ev := d.writer.writeChecked(name, req.Item)
		if ev.Kind != EventSuccess {
			return ev
		}

		return successEvent()

	case RequestList:
		return d.lister.list()

	case RequestVacuum:
		return d.vacuum.run()

	default:
		return badRequestEvent("unknown request kind")
	}
}
