package config

// Config controls how accumulated values render for display. A Config is
// shared by pointer across every node created with it and is never mutated
// after construction; per-call overrides are passed as separate Config
// values rather than edited in place.
//
// NumberFormat and Round are mutually exclusive when rendering: when both
// are on, NumberFormat wins.
type Config struct {
	// NumberFormat, when on, renders values with that many decimal places
	// and thousands separators.
	NumberFormat OptInt
	// Round, when on and NumberFormat is off, rounds values to that many
	// decimal places without separators.
	Round OptInt
	// Prefix and Suffix wrap the rendered value.
	Prefix string
	Suffix string
}

// Default returns the stock configuration: two decimal places with
// thousands separators, no rounding, no prefix or suffix.
func Default() *Config {
	return &Config{NumberFormat: Int(2)}
}

// New builds a Config by applying opts over Default.
func New(opts ...Option) *Config {
	c := Default()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clone returns a copy of c, or Default for a nil receiver.
func (c *Config) Clone() *Config {
	if c == nil {
		return Default()
	}
	cp := *c
	return &cp
}
