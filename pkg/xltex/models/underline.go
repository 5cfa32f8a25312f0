package models

import (
	"fmt"
	"strings"
)

var underlineNames = map[Underline]string{
	UnderlineNone:   "none",
	UnderlineSingle: "single",
	UnderlineOther:  "other",
}

// ParseUnderline maps a spreadsheet underline name to an Underline.
// "single" is UnderlineSingle, "" and "none" are UnderlineNone, and any
// other kind (double, singleAccounting, ...) is UnderlineOther.
func ParseUnderline(s string) Underline {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return UnderlineNone
	case "single":
		return UnderlineSingle
	default:
		return UnderlineOther
	}
}

// String returns the underline name.
func (u Underline) String() string {
	if name, ok := underlineNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Underline(%d)", int(u))
}

// MarshalText implements encoding.TextMarshaler.
func (u Underline) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Underline) UnmarshalText(text []byte) error {
	*u = ParseUnderline(string(text))
	return nil
}
