package commands

// absentMarker is printed in place of a value the operation could not
// produce.
const absentMarker = "(none)"

// orAbsent returns the value, or the absent marker when ok is false.
func orAbsent(value string, ok bool) string {
	if !ok {
		return absentMarker
	}
	return value
}
