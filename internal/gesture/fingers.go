package gesture

import "github.com/ayusman/mudra/internal/detector"

// DefaultTolerance is the slack margin, in normalized image units, absorbing
// natural curl and landmark jitter when deciding whether a finger is
// extended.
const DefaultTolerance = 0.03

// thumbCurlMargin is how far below the thumb MCP the tip may sit before the
// thumb counts as curled under regardless of its lateral position.
const thumbCurlMargin = 0.12

// Fingers holds the per-finger predicates for one frame. Extended and Closed
// are deliberately not logical negations of each other: between them lies a
// dead zone where a finger is neither, which keeps poses from flickering at
// the decision boundary.
type Fingers struct {
	Thumb  bool
	Index  bool
	Middle bool
	Ring   bool
	Pinky  bool

	// Strict-closed variants. The thumb has no closed predicate; no gesture
	// needs one.
	IndexClosed  bool
	MiddleClosed bool
	RingClosed   bool
	PinkyClosed  bool
}

// ReadFingers derives the finger state from a complete landmark set. The
// caller guarantees len(lm) == detector.NumLandmarks; invalid sets are
// rejected upstream by the controller.
//
// Image coordinates put smaller Y higher on screen, so an extended finger has
// its tip at numerically smaller Y than its base joints.
func ReadFingers(lm []detector.Point3D, tol float64) Fingers {
	return Fingers{
		Thumb:  thumbExtended(lm, tol),
		Index:  fingerExtended(lm, detector.IndexTip, detector.IndexPIP, detector.IndexMCP, tol),
		Middle: fingerExtended(lm, detector.MiddleTip, detector.MiddlePIP, detector.MiddleMCP, tol),
		Ring:   fingerExtended(lm, detector.RingTip, detector.RingPIP, detector.RingMCP, tol),
		Pinky:  fingerExtended(lm, detector.PinkyTip, detector.PinkyPIP, detector.PinkyMCP, tol),

		IndexClosed:  fingerClosed(lm, detector.IndexTip, detector.IndexPIP, tol),
		MiddleClosed: fingerClosed(lm, detector.MiddleTip, detector.MiddlePIP, tol),
		RingClosed:   fingerClosed(lm, detector.RingTip, detector.RingPIP, tol),
		PinkyClosed:  fingerClosed(lm, detector.PinkyTip, detector.PinkyPIP, tol),
	}
}

// fingerExtended reports whether a non-thumb finger points up: tip clearly
// above the PIP joint and above the knuckle.
func fingerExtended(lm []detector.Point3D, tip, pip, mcp int, tol float64) bool {
	return lm[tip].Y < lm[pip].Y-tol && lm[tip].Y < lm[mcp].Y
}

// fingerClosed is the looser strict-closed predicate: tip at or below the PIP
// joint, with half the extension tolerance of slack.
func fingerClosed(lm []detector.Point3D, tip, pip int, tol float64) bool {
	return lm[tip].Y > lm[pip].Y-tol/2
}

// thumbExtended is laterality-aware: thumb abduction is sideways, not
// vertical, and which side depends on how the hand faces the camera. The sign
// of wrist.X - middleMCP.X picks the inequality direction. A tip curled well
// under the MCP never counts as extended.
func thumbExtended(lm []detector.Point3D, tol float64) bool {
	tipX := lm[detector.ThumbTip].X
	ipX := lm[detector.ThumbIP].X

	handSide := lm[detector.Wrist].X - lm[detector.MiddleMCP].X

	var extended bool
	if handSide >= 0 {
		extended = (ipX - tipX) > -tol
	} else {
		extended = (tipX - ipX) > -tol
	}

	notCurledUnder := lm[detector.ThumbTip].Y < lm[detector.ThumbMCP].Y+thumbCurlMargin

	return extended && notCurledUnder
}
