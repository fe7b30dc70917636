// Package regulation holds the fixed physical measurements of a curling sheet.
//
// All distances are in metres. The long axis of the sheet starts at the hack
// line (y = 0) and grows towards the far house, so every transverse line is
// expressed as its distance from the hack.
//
// # Regulation Sources
//
// The values follow the World Curling playing rules:
//
//   - Line width: at most 13 mm (0.5 in)
//   - Stone circumference: at most 0.914 m (36 in)
//   - House rings: 6 in, 2 ft, 4 ft and 6 ft radii
//   - Stones per end: eight per team, sixteen in total
package regulation

const (
	// sixFeet is 6 ft in metres.
	sixFeet = 1.829

	// hackBack is the distance between the hack line and the back line.
	hackBack = sixFeet
	// backTee is the distance between the back line and the tee line.
	backTee = sixFeet
	// teeHog is the distance between the tee line and the hog line.
	teeHog = 6.401
	// teeCenter is the distance between the tee line and the centre of the sheet.
	teeCenter = 17.375
)

// Distances of the transverse lines from the hack line.
const (
	// Hack is the origin of the y-axis.
	Hack = 0.0

	// Center is the middle of the sheet.
	Center = Hack + hackBack + backTee + teeCenter

	// HogLine is the far hog line.
	HogLine = Center + teeCenter - teeHog

	// TeeLine passes through the centre of the far house.
	TeeLine = HogLine + teeHog

	// BackLine is the far back line.
	BackLine = TeeLine + backTee
)

const (
	// StoneRadius is the radius of a stone.
	StoneRadius = 0.145

	// StoneBorderRatio is the thickness of the drawn stone border relative
	// to StoneRadius.
	StoneBorderRatio = 0.40

	// LineWidth is the width of every painted line.
	LineWidth = 0.013

	// MaxStones is the number of stones thrown in one end (eight per team).
	MaxStones = 16
)

// HouseRadii returns the radii of the four house rings, innermost first.
// The returned slice is freshly allocated.
func HouseRadii() []float64 {
	return []float64{
		0.152,   // 6 in
		0.610,   // 2 ft
		1.219,   // 4 ft
		sixFeet, // 6 ft
	}
}

// Lines returns the transverse guide lines in increasing distance from the
// hack: hack, center, hog, tee and back.
func Lines() []float64 {
	return []float64{Hack, Center, HogLine, TeeLine, BackLine}
}
