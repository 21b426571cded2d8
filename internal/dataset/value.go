package dataset

// Value is one field of a row. Valid is false when the field has no value,
// which is distinct from a present empty string.
type Value struct {
	Text  string
	Valid bool
}

// Some returns a present value.
func Some(s string) Value { return Value{Text: s, Valid: true} }

// Missing returns the "no value" marker.
func Missing() Value { return Value{} }

// String renders missing values as "<missing>".
func (v Value) String() string {
	if !v.Valid {
		return "<missing>"
	}
	return v.Text
}
