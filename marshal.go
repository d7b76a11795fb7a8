package isolang

import "fmt"

// UnknownCodeError reports a serialized value that is not a known ISO
// 639-3 code.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("isolang: unknown ISO 639-3 code %q", e.Code)
}

// MarshalText encodes the language as its ISO 639-3 code. The code is the
// single external representation; the full entry is never serialized.
// encoding/json and friends pick this up automatically.
func (l Language) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("isolang: cannot marshal out-of-range language %d", uint16(l))
	}
	return []byte(languages[l].code3), nil
}

// UnmarshalText decodes an ISO 639-3 code as produced by MarshalText.
// Unknown codes fail with *UnknownCodeError rather than defaulting to
// Und.
func (l *Language) UnmarshalText(text []byte) error {
	v, ok := FromISO3(string(text))
	if !ok {
		return &UnknownCodeError{Code: string(text)}
	}
	*l = v
	return nil
}
