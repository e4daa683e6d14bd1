package collinalitics

// Pointer helper functions for working with optional fields.
//
// Optional fields on API types are pointers so that "not present" can
// be told apart from an explicit zero value. These helpers simplify
// creating and dereferencing them.

// String returns a pointer to the provided string value.
func String(v string) *string {
	return &v
}

// StringValue returns the value of the string pointer passed in or
// "" if the pointer is nil.
func StringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// Int returns a pointer to the provided int value.
func Int(v int) *int {
	return &v
}

// IntValue returns the value of the int pointer passed in or 0 if the
// pointer is nil.
func IntValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// Bool returns a pointer to the provided bool value.
func Bool(v bool) *bool {
	return &v
}

// BoolValue returns the value of the bool pointer passed in or false
// if the pointer is nil.
func BoolValue(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}
