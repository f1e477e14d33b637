package models

// StringList is a set of strings persisted as a JSON column. Used for
// project galleries/services and blog tags.
type StringList []string

// Contains reports whether value is in the list (exact match).
func (l StringList) Contains(value string) bool {
	for _, item := range l {
		if item == value {
			return true
		}
	}
	return false
}
