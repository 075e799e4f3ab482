package ring

import (
	"errors"
	"os"
)

// lister enumerates every candidate Name and keeps the ones the oracle
// reports occupied.
type lister struct {
	alphabet Alphabet
	oracle   *oracle
}

func newLister(alphabet Alphabet, oracle *oracle) *lister {
	return &lister{alphabet: alphabet, oracle: oracle}
}

// list returns NamesGot for a healthy ring, NoPerm if enumeration itself was
// denied, or UnexpectedError for any other oracle failure — fail-closed: a
// partial listing is never returned as if it were complete.
func (l *lister) list() Event {
	names, err := l.occupiedNames()
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return noPermEvent(err.Error())
		}

		return unexpectedEvent(err)
	}

	return namesGotEvent(names)
}

// occupiedNames is the shared enumeration step reused by vacuum, which
// needs the raw slice rather than an Event.
func (l *lister) occupiedNames() ([]Name, error) {
	candidates := l.alphabet.All()

	names := make([]Name, 0, len(candidates))

	for _, n := range candidates {
		occupied, err := l.oracle.isOccupied(n)
		if err != nil {
			return nil, err
		}

		if occupied {
			names = append(names, n)
		}
	}

	return names, nil
}
