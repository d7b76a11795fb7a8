package isolang

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer, storing the language as its ISO 639-3
// code in a TEXT column.
func (l Language) Value() (driver.Value, error) {
	if !l.valid() {
		return nil, fmt.Errorf("isolang: cannot store out-of-range language %d", uint16(l))
	}
	return languages[l].code3, nil
}

// Scan implements sql.Scanner, reading a TEXT column holding an ISO 639-3
// code. Unknown codes fail with *UnknownCodeError. NULL is rejected; use
// a *Language or sql.Null[Language] destination for nullable columns.
func (l *Language) Scan(src any) error {
	var code string
	switch v := src.(type) {
	case string:
		code = v
	case []byte:
		code = string(v)
	case nil:
		return fmt.Errorf("isolang: cannot scan NULL into Language")
	default:
		return fmt.Errorf("isolang: cannot scan %T into Language", src)
	}

	lang, ok := FromISO3(code)
	if !ok {
		return &UnknownCodeError{Code: code}
	}
	*l = lang
	return nil
}
