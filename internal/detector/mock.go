package detector

import (
	"gocv.io/x/gocv"
)

// Mock is a test implementation of the Detector interface. It allows tests to
// control the detection results.
type Mock struct {
	hands []Hand
	err   error
}

// NewMock creates a new Mock detector.
func NewMock() *Mock {
	return &Mock{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *Mock) SetHands(hands []Hand) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *Mock) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *Mock) Detect(frame *gocv.Mat) ([]Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *Mock) Close() error {
	return nil
}

// Preset landmark fixtures below model a right hand presented palm-out with
// the wrist near the bottom of the frame. Y grows downward, so extended
// fingertips sit at numerically smaller Y than their base joints.

// OpenPalmHand returns landmarks for an open palm: all five fingers extended.
func OpenPalmHand() Hand {
	h := Hand{Points: make([]Point3D, NumLandmarks), Handedness: "Right", Score: 0.95}

	h.Points[Wrist] = Point3D{X: 0.52, Y: 0.80}

	// Thumb abducted to the side, tip a hair inward of the IP joint.
	h.Points[ThumbCMC] = Point3D{X: 0.58, Y: 0.75}
	h.Points[ThumbMCP] = Point3D{X: 0.63, Y: 0.70}
	h.Points[ThumbIP] = Point3D{X: 0.67, Y: 0.65}
	h.Points[ThumbTip] = Point3D{X: 0.66, Y: 0.60}

	h.Points[IndexMCP] = Point3D{X: 0.56, Y: 0.68}
	h.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55}
	h.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45}
	h.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35}

	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28}

	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68}
	h.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55}
	h.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45}
	h.Points[RingTip] = Point3D{X: 0.42, Y: 0.35}

	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70}
	h.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60}
	h.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50}
	h.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42}

	return h
}

// FistHand returns landmarks for a fist: all four non-thumb fingers curled
// with tips below their PIP joints, thumb folded across the knuckles.
func FistHand() Hand {
	h := Hand{Points: make([]Point3D, NumLandmarks), Handedness: "Right", Score: 0.95}

	h.Points[Wrist] = Point3D{X: 0.52, Y: 0.80}

	h.Points[ThumbCMC] = Point3D{X: 0.57, Y: 0.75}
	h.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.70}
	h.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.68}
	h.Points[ThumbTip] = Point3D{X: 0.62, Y: 0.70}

	h.Points[IndexMCP] = Point3D{X: 0.56, Y: 0.68}
	h.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.62}
	h.Points[IndexDIP] = Point3D{X: 0.54, Y: 0.68}
	h.Points[IndexTip] = Point3D{X: 0.53, Y: 0.72}

	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.60}
	h.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.66}
	h.Points[MiddleTip] = Point3D{X: 0.47, Y: 0.71}

	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68}
	h.Points[RingPIP] = Point3D{X: 0.45, Y: 0.62}
	h.Points[RingDIP] = Point3D{X: 0.43, Y: 0.68}
	h.Points[RingTip] = Point3D{X: 0.42, Y: 0.72}

	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70}
	h.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.65}
	h.Points[PinkyDIP] = Point3D{X: 0.38, Y: 0.70}
	h.Points[PinkyTip] = Point3D{X: 0.37, Y: 0.73}

	return h
}

// PeaceHand returns landmarks for a peace sign: index and middle extended,
// ring and pinky curled, thumb folded.
func PeaceHand() Hand {
	h := FistHand()

	h.Points[ThumbIP] = Point3D{X: 0.57, Y: 0.67}
	h.Points[ThumbTip] = Point3D{X: 0.62, Y: 0.69}

	h.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55}
	h.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45}
	h.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35}

	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28}

	return h
}

// ThreeFingersHand returns landmarks with index, middle, and ring extended
// while the pinky stays curled and the thumb folded.
func ThreeFingersHand() Hand {
	h := PeaceHand()

	h.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55}
	h.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45}
	h.Points[RingTip] = Point3D{X: 0.42, Y: 0.35}

	return h
}

// PartialHand returns the first n landmarks of an open palm. Useful for
// exercising the malformed-input path.
func PartialHand(n int) Hand {
	h := OpenPalmHand()
	if n < 0 {
		n = 0
	}
	if n > NumLandmarks {
		n = NumLandmarks
	}
	h.Points = h.Points[:n]
	return h
}
