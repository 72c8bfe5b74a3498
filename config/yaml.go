package config

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// partial mirrors Config with pointer fields so that absent keys can be
// told apart from explicit values when merging over defaults.
type partial struct {
	NumberFormat *OptInt `yaml:"numberFormat"`
	Round        *OptInt `yaml:"round"`
	Prefix       *string `yaml:"prefix"`
	Suffix       *string `yaml:"suffix"`
}

// FromYAML decodes a partial configuration document and merges it over
// Default. Keys present in the document take precedence; absent keys keep
// their defaults. The caller supplies the bytes; this package does no I/O.
func FromYAML(data []byte) (*Config, error) {
	p := &partial{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	c := Default()
	if p.NumberFormat != nil {
		c.NumberFormat = *p.NumberFormat
	}
	if p.Round != nil {
		c.Round = *p.Round
	}
	if p.Prefix != nil {
		c.Prefix = *p.Prefix
	}
	if p.Suffix != nil {
		c.Suffix = *p.Suffix
	}
	return c, nil
}

// YAML renders c as a full configuration document.
func (c *Config) YAML() ([]byte, error) {
	nf := c.NumberFormat
	rd := c.Round
	p := &partial{
		NumberFormat: &nf,
		Round:        &rd,
		Prefix:       &c.Prefix,
		Suffix:       &c.Suffix,
	}
	d, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}
	return d, nil
}
