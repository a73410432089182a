package core

// ColorScheme selects the palette used to draw pieces.
type ColorScheme uint8

const (
	SchemeClassic ColorScheme = iota
	SchemeNeon
	SchemeIce
	SchemeFire
)

// String returns the scheme name.
func (c ColorScheme) String() string {
	switch c {
	case SchemeNeon:
		return "Neon"
	case SchemeIce:
		return "Ice"
	case SchemeFire:
		return "Fire"
	default:
		return "Classic"
	}
}

// SchemeForLevel derives the palette from the level: a new scheme every
// five levels, capped at Fire.
func SchemeForLevel(level int) ColorScheme {
	return ColorScheme(min(max(level-1, 0)/5, int(SchemeFire)))
}
