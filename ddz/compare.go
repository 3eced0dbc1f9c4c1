package ddz

// Comparison is the three-valued result of comparing two hands.
type Comparison int8

const (
	// Incomparable means the hands cannot be ranked against each other.
	Incomparable Comparison = iota
	// NotGreater means the first hand does not beat the second.
	NotGreater
	// Greater means the first hand beats the second.
	Greater
)

// String returns the comparison name.
func (c Comparison) String() string {
	switch c {
	case Greater:
		return "greater"
	case NotGreater:
		return "not greater"
	default:
		return "incomparable"
	}
}

// Compare orders a against b.
//   - Either side incomparable: Incomparable.
//   - Same tier: only same-length hands compare, by Rank.
//   - Different tiers: the higher tier wins regardless of length or rank.
func (a Value) Compare(b Value) Comparison {
	if a.Tier == TierIncomparable || b.Tier == TierIncomparable {
		return Incomparable
	}
	if a.Tier == b.Tier {
		if a.Length != b.Length {
			return Incomparable
		}
		if a.Rank > b.Rank {
			return Greater
		}
		return NotGreater
	}
	if a.Tier > b.Tier {
		return Greater
	}
	return NotGreater
}

// Compare orders hand a against hand b.
func Compare(a, b Hand) Comparison {
	return a.Value().Compare(b.Value())
}
