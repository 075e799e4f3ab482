package ring

// RequestKind identifies which variant of [Request] is populated.
type RequestKind int

const (
	// RequestGet fetches the item at Name.
	RequestGet RequestKind = iota

	// RequestDel removes (or empties) the slot at Name.
	RequestDel

	// RequestPush stores Item at a freshly chosen empty slot.
	RequestPush

	// RequestList enumerates occupied slots.
	RequestList

	// RequestVacuum reclaims broken slots.
	RequestVacuum
)

// Request is the input to [Ring.Handle]: a closed enumeration of the five
// operations the dispatcher understands.
type Request struct {
	Kind RequestKind

	RawName string // GET, DEL — unvalidated; validated against the alphabet during dispatch
	Item    Item   // PUSH
}

// GetRequest builds a GET request for the given raw name. The name is
// validated against the configured alphabet by the dispatcher, not here.
func GetRequest(name string) Request { return Request{Kind: RequestGet, RawName: name} }

// DelRequest builds a DEL request for the given raw name.
func DelRequest(name string) Request { return Request{Kind: RequestDel, RawName: name} }

// PushRequest builds a PUSH request for item.
func PushRequest(item Item) Request { return Request{Kind: RequestPush, Item: item} }

// ListRequest builds a LIST request.
func ListRequest() Request { return Request{Kind: RequestList} }

// VacuumRequest builds a VACUUM request.
func VacuumRequest() Request { return Request{Kind: RequestVacuum} }
