package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded value before it is handed back to the
// caller. A non-nil error rejects the extraction as invalid output.
type SchemaValidator[T any] func(T) error

// ExtractJSON pulls a JSON object of type T out of raw model text. Models
// wrap their answers in markdown fences, chat around the object, emit
// comments, and write bare decimals like .8; each repair pass below fixes
// one of those habits before decoding.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	candidate := firstObject(stripFences(raw))
	if candidate == "" {
		return zero, fmt.Errorf("%w: no JSON object in model text", ErrInvalidOutput)
	}
	candidate = fixBareDecimals(stripComments(candidate))

	var out T
	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validator != nil {
		if err := validator(out); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

// stringTracker follows JSON string boundaries byte by byte so the repair
// passes only touch text outside string values.
type stringTracker struct {
	inString bool
	escaped  bool
}

// step consumes one byte and reports whether it belongs to a string value,
// including the surrounding quotes and escapes.
func (t *stringTracker) step(c byte) bool {
	if t.escaped {
		t.escaped = false
		return true
	}
	if t.inString && c == '\\' {
		t.escaped = true
		return true
	}
	if c == '"' {
		t.inString = !t.inString
		return true
	}
	return t.inString
}

// stripFences drops markdown fence marker lines, keeping whatever they
// enclosed.
func stripFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// firstObject returns the first brace-balanced { ... } block, or "" when
// none closes.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}
	var track stringTracker
	depth := 0
	for i := start; i < len(s); i++ {
		c := s[i]
		if track.step(c) {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// stripComments removes // and /* */ comments outside string values.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var track stringTracker
	for i := 0; i < len(s); i++ {
		c := s[i]
		if track.step(c) {
			b.WriteByte(c)
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			i += 2
			for i+1 < len(s) {
				if s[i] == '*' && s[i+1] == '/' {
					i++
					break
				}
				i++
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// fixBareDecimals rewrites numeric literals like .8 or -.3 into the 0.8
// and -0.3 forms JSON requires, outside string values.
func fixBareDecimals(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	var track stringTracker
	for i := 0; i < len(s); i++ {
		c := s[i]
		if track.step(c) {
			b.WriteByte(c)
			continue
		}
		if c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(lastMeaningful(s, i-1)) {
			b.WriteByte('0')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// lastMeaningful scans backwards past whitespace and returns the byte
// there, or 0 at the start of input.
func lastMeaningful(s string, i int) byte {
	for ; i >= 0; i-- {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
		default:
			return s[i]
		}
	}
	return 0
}

// startsNumber reports whether a numeric literal may begin right after c.
func startsNumber(c byte) bool {
	switch c {
	case 0, ':', ',', '[', '{', '-':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
