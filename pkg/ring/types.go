package ring

// Item is an opaque byte sequence. No structural interpretation is placed on
// its contents.
type Item []byte

// Name identifies a slot. For the canonical alphabet it is exactly two
// lowercase hex digits ("00".."ff"). Names are compared byte-exact; there is
// no normalization.
type Name string

// NamedItem pairs a Name with the Item stored (or to be stored) at that
// slot. Reads produce NamedItems; writes consume them.
type NamedItem struct {
	Name Name
	Item Item
}
