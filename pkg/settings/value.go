package settings

import "strings"

// Value is an optional string setting. The zero value is unset, which lets a later
// source fall through to an earlier one; a set value may still be empty.
type Value struct {
	val string
	set bool
}

// Some makes a set Value
func Some(s string) Value {
	return Value{val: s, set: true}
}

// Get returns the value and whether it is set
func (v Value) Get() (string, bool) {
	return v.val, v.set
}

// String returns the value, empty if unset
func (v Value) String() string {
	return v.val
}

// IsSet reports whether any source defined the value
func (v Value) IsSet() bool {
	return v.set
}

// Blank reports whether the value is unset, empty or whitespace only
func (v Value) Blank() bool {
	return !v.set || strings.TrimSpace(v.val) == ""
}

// Or returns the value if set, def otherwise
func (v Value) Or(def string) string {
	if !v.set {
		return def
	}
	return v.val
}

// UnmarshalFlag implements flags.Unmarshaler, so settings structs can describe themselves to go-flags
func (v *Value) UnmarshalFlag(s string) error {
	*v = Some(s)
	return nil
}

// MarshalFlag implements flags.Marshaler
func (v Value) MarshalFlag() (string, error) {
	return v.val, nil
}
