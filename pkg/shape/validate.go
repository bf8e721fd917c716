package shape

import "fmt"

// Warning is an advisory finding about a builder configuration.
// Outline generation never fails; it degrades to visually degenerate
// but well-formed polygons. Hosts that want to reject bad
// configurations upstream can call Validate first.
type Warning struct {
	Message string
}

// Validate checks a builder for configurations that produce degenerate
// geometry. All findings are advisory; Outline terminates on every one
// of them.
func (b Builder) Validate() []Warning {
	var warnings []Warning

	if b.TotalHeight <= 0 {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("total height is %.4f, must be positive", b.TotalHeight),
		})
	}

	neckHeight := NeckHeight(b.Neck)
	if neckHeight >= b.TotalHeight && b.TotalHeight > 0 {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("neck height %.4f leaves no room for bulbs at total height %.4f",
				neckHeight, b.TotalHeight),
		})
	}

	// A neck at least as wide as both bulbs inverts the silhouette.
	bulbHeight := (b.TotalHeight - neckHeight) / 2
	bulbWidth := bulbHeight * BulbWidthFactor(b.Bulb)
	if neckWidth := NeckWidth(b.Neck); neckWidth >= 2*bulbWidth {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("neck width %.4f is at least twice the bulb width %.4f, silhouette is degenerate",
				neckWidth, bulbWidth),
		})
	}

	return warnings
}
