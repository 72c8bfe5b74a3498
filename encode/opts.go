package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Raw bypasses configured formatting, printing unformatted numbers.
func Raw(v bool) EncodeOption {
	return func(es *EncState) { es.raw = v }
}

// NoTotals omits running totals on nested node lines.
func NoTotals(v bool) EncodeOption {
	return func(es *EncState) { es.noTotals = v }
}

func Colorize(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
