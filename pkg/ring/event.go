package ring

import "fmt"

// EventKind identifies which variant of [Event] is populated. The Event
// taxonomy is closed: these are the only outcomes a [Request] can produce.
type EventKind int

const (
	// EventSuccess reports that DEL or PUSH completed. VACUUM reports
	// EventBrokenItemsRemoved instead.
	EventSuccess EventKind = iota

	// EventItemGot reports a successful GET. Event.Item is populated.
	EventItemGot

	// EventNamesGot reports a successful LIST. Event.Names is populated.
	EventNamesGot

	// EventNoEntry reports GET on an empty slot. Event.Name is populated.
	EventNoEntry

	// EventBroken reports a slot that is occupied but unreadable or fails
	// integrity verification. Event.Name is populated.
	EventBroken

	// EventInvalidItem reports structurally invalid slot contents. Reserved
	// for richer formats than the opaque-byte model this package stores;
	// nothing in this package currently produces it. Event.Message is
	// populated.
	EventInvalidItem

	// EventAgain reports a transient condition: the caller should retry the
	// same operation immediately (an occupied-slot collision during PUSH, or
	// a transient I/O condition on GET).
	EventAgain

	// EventTooManyItemsAlready reports that PUSH's retry budget was
	// exhausted — the ring is full.
	EventTooManyItemsAlready

	// EventBadRequest reports that a Name failed alphabet validation.
	// Event.Message carries the rejected input.
	EventBadRequest

	// EventNoPerm reports that enumeration was denied. Event.Message is
	// populated.
	EventNoPerm

	// EventBrokenItemsRemoved reports a VACUUM result. Event.Count is the
	// number of slots reclaimed.
	EventBrokenItemsRemoved

	// EventUnexpectedError reports any outcome that is not one of the above.
	// Event.Message is diagnostic text only; callers must not pattern-match
	// on it.
	EventUnexpectedError
)

func (k EventKind) String() string {
	switch k {
	case EventSuccess:
		return "Success"
	case EventItemGot:
		return "ItemGot"
	case EventNamesGot:
		return "NamesGot"
	case EventNoEntry:
		return "NoEntry"
	case EventBroken:
		return "Broken"
	case EventInvalidItem:
		return "InvalidItem"
	case EventAgain:
		return "Again"
	case EventTooManyItemsAlready:
		return "TooManyItemsAlready"
	case EventBadRequest:
		return "BadRequest"
	case EventNoPerm:
		return "NoPerm"
	case EventBrokenItemsRemoved:
		return "BrokenItemsRemoved"
	case EventUnexpectedError:
		return "UnexpectedError"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is the closed-enumeration outcome of dispatching a [Request]. Only
// the fields relevant to Kind are populated; see each EventKind's doc.
type Event struct {
	Kind EventKind

	Name    Name      // NoEntry, Broken
	Item    NamedItem // ItemGot
	Names   []Name    // NamesGot
	Count   uint64    // BrokenItemsRemoved
	Message string    // InvalidItem, BadRequest, NoPerm, UnexpectedError
}

func (e Event) String() string {
	switch e.Kind {
	case EventItemGot:
		return fmt.Sprintf("ItemGot(%s, %d bytes)", e.Item.Name, len(e.Item.Item))
	case EventNamesGot:
		return fmt.Sprintf("NamesGot(%d names)", len(e.Names))
	case EventNoEntry, EventBroken:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Name)
	case EventBrokenItemsRemoved:
		return fmt.Sprintf("BrokenItemsRemoved(%d)", e.Count)
	case EventInvalidItem, EventBadRequest, EventNoPerm, EventUnexpectedError:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Message)
	default:
		return e.Kind.String()
	}
}

func successEvent() Event                { return Event{Kind: EventSuccess} }
func itemGotEvent(ni NamedItem) Event     { return Event{Kind: EventItemGot, Item: ni} }
func namesGotEvent(names []Name) Event    { return Event{Kind: EventNamesGot, Names: names} }
func noEntryEvent(n Name) Event           { return Event{Kind: EventNoEntry, Name: n} }
func brokenEvent(n Name) Event            { return Event{Kind: EventBroken, Name: n} }
func againEvent() Event                   { return Event{Kind: EventAgain} }
func tooManyItemsEvent() Event            { return Event{Kind: EventTooManyItemsAlready} }
func badRequestEvent(msg string) Event    { return Event{Kind: EventBadRequest, Message: msg} }
func noPermEvent(msg string) Event        { return Event{Kind: EventNoPerm, Message: msg} }
func brokenRemovedEvent(n uint64) Event   { return Event{Kind: EventBrokenItemsRemoved, Count: n} }
func unexpectedEvent(err error) Event { return Event{Kind: EventUnexpectedError, Message: err.Error()} }
