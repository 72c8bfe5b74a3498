package config

import (
	"fmt"
	"strconv"
)

// OptInt is an int-or-off union. In configuration documents the value is
// written either as an integer or as false:
//
//	numberFormat: 2
//	round: false
//
// The zero value is off.
type OptInt struct {
	ok bool
	n  int
}

// Int returns an OptInt carrying n.
func Int(n int) OptInt {
	return OptInt{ok: true, n: n}
}

// Off returns a disabled OptInt.
func Off() OptInt {
	return OptInt{}
}

func (o OptInt) OK() bool { return o.ok }
func (o OptInt) N() int   { return o.n }

func (o OptInt) String() string {
	if !o.ok {
		return "false"
	}
	return strconv.Itoa(o.n)
}

func (o OptInt) MarshalYAML() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *OptInt) UnmarshalYAML(d []byte) error {
	switch string(d) {
	case "false", "no", "off":
		*o = Off()
		return nil
	case "true":
		return fmt.Errorf("expected an integer or false, got true")
	}
	n, err := strconv.Atoi(string(d))
	if err != nil {
		return fmt.Errorf("expected an integer or false, got %q", d)
	}
	*o = Int(n)
	return nil
}
