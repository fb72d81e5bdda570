package utils

// StringPtr returns a pointer to the string value
func StringPtr(s string) *string {
	return &s
}

// StringOrNil returns nil for the empty string, otherwise a pointer to it.
// Optional request/spreadsheet fields persist as NULL when absent.
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// UintPtr returns a pointer to the uint value
func UintPtr(u uint) *uint {
	return &u
}
