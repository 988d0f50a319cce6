package models

import "strconv"

// MissingToken is the literal text written to (and read from) the exported
// files for an absent cell. The source workbooks use the same token as a
// typed-in placeholder, which the normalizer folds into a true missing value.
const MissingToken = "NA"

// Kind discriminates the value domains a cell can hold.
type Kind int

const (
	// KindMissing marks an intentionally absent value.
	KindMissing Kind = iota
	// KindText holds free text.
	KindText
	// KindNumber holds a numeric value.
	KindNumber
	// KindBool holds a boolean flag.
	KindBool
)

// Value is a single tagged cell value. Missing cells are tagged from the
// moment of load rather than carried as empty strings, so every stage after
// the loader sees one consistent representation of "no data".
type Value struct {
	Kind   Kind
	Text   string
	Number float64
	Bool   bool
}

// Missing returns the absent-value marker.
func Missing() Value {
	return Value{Kind: KindMissing}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// IsMissing reports whether the value is the absent marker.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// Classify parses a raw cell string into a typed Value. An empty string is a
// true absent cell. Booleans are recognized in the spreadsheet spelling
// (TRUE/FALSE), then numbers, then anything else stays text. The exporter's
// reader uses the same classifier, so a loaded table survives an
// export-and-reparse unchanged.
func Classify(s string) Value {
	if s == "" {
		return Missing()
	}
	switch s {
	case "TRUE":
		return Bool(true)
	case "FALSE":
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f)
	}
	return Text(s)
}

// String renders the value in the on-disk spelling: MissingToken for absent
// cells, TRUE/FALSE for booleans, the shortest exact decimal form for
// numbers. Classify(v.String()) yields v back for every non-missing kind.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	default:
		return MissingToken
	}
}
