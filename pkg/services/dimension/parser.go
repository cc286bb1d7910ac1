package dimension

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError reports a dimension string that could not be parsed.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parse dimension %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Parse converts a dimension string to decimal feet. Accepted forms are
// feet/inches with a foot mark (`14'3"`), bare feet with a foot mark
// (`14'`), or a plain decimal ("14.25"). Empty input parses to 0.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	// Inch marks carry no information once the foot mark splits the parts.
	s = strings.ReplaceAll(s, `"`, "")

	if feetPart, inchPart, ok := strings.Cut(s, "'"); ok {
		feet := 0.0
		if p := strings.TrimSpace(feetPart); p != "" {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return 0, &FormatError{Input: s, Err: err}
			}
			feet = f
		}

		inches := 0.0
		if p := strings.TrimSpace(inchPart); p != "" {
			i, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return 0, &FormatError{Input: s, Err: err}
			}
			inches = i
		}

		return feet + inches/12, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FormatError{Input: s, Err: err}
	}
	return f, nil
}
