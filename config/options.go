package config

type Option func(*Config)

func NumberFormat(n int) Option {
	return func(c *Config) { c.NumberFormat = Int(n) }
}

// NoNumberFormat turns fixed-decimal rendering off, letting Round apply
// when set.
func NoNumberFormat() Option {
	return func(c *Config) { c.NumberFormat = Off() }
}

func Round(n int) Option {
	return func(c *Config) { c.Round = Int(n) }
}

func NoRound() Option {
	return func(c *Config) { c.Round = Off() }
}

func Prefix(s string) Option {
	return func(c *Config) { c.Prefix = s }
}

func Suffix(s string) Option {
	return func(c *Config) { c.Suffix = s }
}
