package nivesh

// PC is a helper for tests to create weights from consts.
func PC(v float64) Percent { return P(v) }

// weights is a helper for tests to build a weight slice from consts.
func weights(vs ...float64) []Percent {
	out := make([]Percent, len(vs))
	for i, v := range vs {
		out[i] = P(v)
	}
	return out
}
