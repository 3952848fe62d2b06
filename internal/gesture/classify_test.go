package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		fingers Fingers
		want    Label
	}{
		{
			name:    "open palm",
			fingers: Fingers{Thumb: true, Index: true, Middle: true, Ring: true, Pinky: true},
			want:    OpenPalm,
		},
		{
			name:    "three fingers",
			fingers: Fingers{Index: true, Middle: true, Ring: true, PinkyClosed: true},
			want:    ThreeFingers,
		},
		{
			// Thumb and pinky are ignored by the three-finger rule.
			name:    "three fingers with thumb out",
			fingers: Fingers{Thumb: true, Index: true, Middle: true, Ring: true},
			want:    ThreeFingers,
		},
		{
			name:    "peace",
			fingers: Fingers{Index: true, Middle: true, RingClosed: true, PinkyClosed: true},
			want:    Peace,
		},
		{
			name: "fist",
			fingers: Fingers{
				IndexClosed: true, MiddleClosed: true, RingClosed: true, PinkyClosed: true,
			},
			want: Fist,
		},
		{
			name:    "nothing matches",
			fingers: Fingers{},
			want:    Idle,
		},
		{
			// Index and middle up but ring in the dead zone: not three fingers
			// (ring not extended) and not peace (ring not closed).
			name:    "dead zone blocks peace",
			fingers: Fingers{Index: true, Middle: true, PinkyClosed: true},
			want:    Idle,
		},
		{
			// Only the pinky out of the dead zone: fist needs all four closed.
			name:    "dead zone blocks fist",
			fingers: Fingers{IndexClosed: true, MiddleClosed: true, PinkyClosed: true},
			want:    Idle,
		},
		{
			name:    "single index finger",
			fingers: Fingers{Index: true, MiddleClosed: true, RingClosed: true, PinkyClosed: true},
			want:    Idle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.fingers); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestClassifyPriority pins the tie-break order on states satisfying more than
// one rule.
func TestClassifyPriority(t *testing.T) {
	// All five extended satisfies both the open-palm and three-finger rules;
	// open palm wins.
	all := Fingers{Thumb: true, Index: true, Middle: true, Ring: true, Pinky: true}
	if got := Classify(all); got != OpenPalm {
		t.Errorf("all extended classified as %v, want %v", got, OpenPalm)
	}

	// Four non-thumb fingers extended is not an open palm but still three
	// fingers.
	four := Fingers{Index: true, Middle: true, Ring: true, Pinky: true}
	if got := Classify(four); got != ThreeFingers {
		t.Errorf("four extended classified as %v, want %v", got, ThreeFingers)
	}
}

// TestClassifyFixtures runs the classifier over the landmark fixtures
// end-to-end through ReadFingers.
func TestClassifyFixtures(t *testing.T) {
	tests := []struct {
		name string
		hand detector.Hand
		want Label
	}{
		{"open palm", detector.OpenPalmHand(), OpenPalm},
		{"fist", detector.FistHand(), Fist},
		{"peace", detector.PeaceHand(), Peace},
		{"three fingers", detector.ThreeFingersHand(), ThreeFingers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(ReadFingers(tt.hand.Points, DefaultTolerance))
			if got != tt.want {
				t.Errorf("classified as %v, want %v", got, tt.want)
			}
		})
	}
}

// TestClassifyDeterministic feeds the same landmarks repeatedly; the result
// must never vary.
func TestClassifyDeterministic(t *testing.T) {
	lm := detector.PeaceHand().Points
	first := Classify(ReadFingers(lm, DefaultTolerance))
	for i := 0; i < 100; i++ {
		if got := Classify(ReadFingers(lm, DefaultTolerance)); got != first {
			t.Fatalf("iteration %d: got %v, want %v", i, got, first)
		}
	}
}
