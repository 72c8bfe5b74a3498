// Package dpath parses dotted keys like "a.b.c" into path segments.
//
// Segments containing dots or quotes can be double-quoted, with backslash
// escaping inside quotes:
//
//	totals."eu.west".net → ["totals", "eu.west", "net"]
package dpath

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyPath = errors.New("empty path")

// Parse splits a dotted key into its segments.
func Parse(p string) ([]string, error) {
	if p == "" {
		return nil, ErrEmptyPath
	}
	var segs []string
	rest := p
	for {
		seg, tail, err := parseSegment(rest)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", p, err)
		}
		segs = append(segs, seg)
		if tail == "" {
			return segs, nil
		}
		rest = tail
	}
}

// parseSegment consumes one segment and the dot following it, if any.
func parseSegment(frag string) (seg, rest string, err error) {
	if frag == "" {
		return "", "", fmt.Errorf("empty segment")
	}
	if frag[0] != '"' {
		i := strings.IndexByte(frag, '.')
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 || i == len(frag)-1 {
			return "", "", fmt.Errorf("empty segment")
		}
		return frag[:i], frag[i+1:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				escaped = false
				res = append(res, c)
				continue
			}
			escaped = true
		case '"':
			if escaped {
				escaped = false
				res = append(res, c)
				continue
			}
			switch {
			case i == len(frag)-1:
				return string(res), "", nil
			case frag[i+1] == '.':
				if i+2 == len(frag) {
					return "", "", fmt.Errorf("empty segment")
				}
				return string(res), frag[i+2:], nil
			default:
				return "", "", fmt.Errorf("expected '.' after closing quote")
			}
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for '\"'")
}

// String joins segments back into a dotted key, quoting segments that
// contain dots or quotes. String(Parse(p)) is p up to quoting choices.
func String(segs []string) string {
	res := make([]string, len(segs))
	for i, seg := range segs {
		res[i] = quoteSegment(seg)
	}
	return strings.Join(res, ".")
}

func quoteSegment(seg string) string {
	if !strings.ContainsAny(seg, `."\`) && seg != "" {
		return seg
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(seg) + `"`
}
