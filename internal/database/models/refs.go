package models

import (
	"strings"

	"github.com/google/uuid"
)

// UserRef is a string-typed reference to a User id. Stored as-is, never enforced.
type UserRef string

// TeamRef is a string-typed reference to a Team id. Stored as-is, never enforced.
type TeamRef string

// NewUserRef builds a reference from a user id
func NewUserRef(id uuid.UUID) UserRef {
	return UserRef(id.String())
}

// NewTeamRef builds a reference from a team id
func NewTeamRef(id uuid.UUID) TeamRef {
	return TeamRef(id.String())
}

// UUID parses the reference. ok is false for references that cannot point at any record.
func (r UserRef) UUID() (uuid.UUID, bool) {
	return parseRef(string(r))
}

// UUID parses the reference. ok is false for references that cannot point at any record.
func (r TeamRef) UUID() (uuid.UUID, bool) {
	return parseRef(string(r))
}

func (r UserRef) String() string { return string(r) }

func (r TeamRef) String() string { return string(r) }

func parseRef(s string) (uuid.UUID, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
