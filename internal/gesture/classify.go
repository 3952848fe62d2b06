package gesture

// Classify maps a finger state to a gesture label. The rules below are
// checked in order and the first match wins; they are not mutually exclusive
// (an open palm also satisfies the three-fingers condition), so the order is
// the tie-break policy and must not be rearranged.
func Classify(f Fingers) Label {
	// Open palm: all five fingers extended. Most specific, checked first.
	if f.Thumb && f.Index && f.Middle && f.Ring && f.Pinky {
		return OpenPalm
	}

	// Three fingers: index + middle + ring up; thumb and pinky ignored.
	if f.Index && f.Middle && f.Ring {
		return ThreeFingers
	}

	// Peace: index + middle up, ring + pinky strictly closed.
	if f.Index && f.Middle && f.RingClosed && f.PinkyClosed {
		return Peace
	}

	// Fist: all four non-thumb fingers strictly closed.
	if f.IndexClosed && f.MiddleClosed && f.RingClosed && f.PinkyClosed {
		return Fist
	}

	return Idle
}
