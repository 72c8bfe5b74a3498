// Package numfmt renders accumulated values for display according to a
// formatting configuration.
package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tallyfmt/rollup/config"
)

// humanize.FormatFloat supports at most nine decimal places.
const maxDigits = 9

// Result renders v per cfg. Priority: numberFormat (fixed decimals with
// thousands separators), else round (shortest form of the rounded value),
// else the shortest form of v. The result is then wrapped with the
// configured prefix and suffix. A nil cfg means Default.
func Result(v float64, cfg *config.Config) string {
	if cfg == nil {
		cfg = config.Default()
	}
	var s string
	switch {
	case cfg.NumberFormat.OK():
		s = humanize.FormatFloat(pattern(cfg.NumberFormat.N()), v)
	case cfg.Round.OK():
		s = strconv.FormatFloat(roundTo(v, cfg.Round.N()), 'f', -1, 64)
	default:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return cfg.Prefix + s + cfg.Suffix
}

// pattern builds the humanize render format for a decimal-place count,
// e.g. 2 gives "#,###.##" and 0 gives "#,###.".
func pattern(digits int) string {
	if digits < 0 {
		digits = 0
	}
	if digits > maxDigits {
		digits = maxDigits
	}
	return "#,###." + strings.Repeat("#", digits)
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
