package ring

import "errors"

// maxPushAttempts bounds the next-name probe: one full pass over the
// 256-slot alphabet in expectation gives coverage without an unbounded loop
// on a full ring.
const maxPushAttempts = 256

// nextNameGenerator probes random candidate names until one is found empty,
// or gives up after maxPushAttempts tries. Candidates are rendered straight
// from the entropy byte via the canonical alphabet's encoding (byteToName),
// so the generator is naturally bound to the same single-byte keyspace the
// alphabet enumerates.
type nextNameGenerator struct {
	entropy EntropySource
	oracle  *oracle
}

func newNextNameGenerator(entropy EntropySource, oracle *oracle) *nextNameGenerator {
	return &nextNameGenerator{entropy: entropy, oracle: oracle}
}

// errRetryBudgetExhausted signals that maxPushAttempts probes all landed on
// occupied slots; the dispatcher turns this into TooManyItemsAlready.
var errRetryBudgetExhausted = errors.New("ring: retry budget exhausted")

// next returns an empty slot's Name. err is errRetryBudgetExhausted once the
// retry budget is spent, or the entropy source's/oracle's own error
// otherwise; the dispatcher maps both to the appropriate Event.
func (g *nextNameGenerator) next() (Name, error) {
	for attempt := 0; attempt < maxPushAttempts; attempt++ {
		b, err := g.entropy.NextByte()
		if err != nil {
			return "", err
		}

		candidate := byteToName(b)

		empty, err := g.oracle.isEmpty(candidate)
		if err != nil {
			return "", err
		}

		if empty {
			return candidate, nil
		}
	}

	return "", errRetryBudgetExhausted
}
