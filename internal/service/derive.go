package service

import "strings"

// UnknownUserName is shown for activities whose user reference does not resolve
const UnknownUserName = "Unknown User"

// Username returns the part of email before the first "@", or the whole
// email when it has none
func Username(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// SplitName splits name on its first space. last is empty for single-word names.
func SplitName(name string) (first, last string) {
	first, last, _ = strings.Cut(name, " ")
	return first, last
}
