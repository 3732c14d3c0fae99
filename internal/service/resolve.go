package service

import (
	"errors"
	"strings"

	"octofit-backend/internal/database/models"
	"octofit-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolveUser follows a user reference. A reference that is malformed or
// points at no record is dangling: found is false and err is nil.
func resolveUser(users repository.UserRepositoryInterface, ref models.UserRef) (user *models.User, found bool, err error) {
	id, ok := ref.UUID()
	if !ok {
		return nil, false, nil
	}
	user, err = users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return user, true, nil
}

// resolveTeam follows an optional team reference with the same dangling rules as resolveUser
func resolveTeam(teams repository.TeamRepositoryInterface, ref *models.TeamRef) (team *models.Team, found bool, err error) {
	if ref == nil {
		return nil, false, nil
	}
	id, ok := ref.UUID()
	if !ok {
		return nil, false, nil
	}
	team, err = teams.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return team, true, nil
}

// teamRefFromInput turns an optional request team id into a stored reference.
// Empty or blank input clears the reference.
func teamRefFromInput(in *string) *models.TeamRef {
	if in == nil {
		return nil
	}
	raw := strings.TrimSpace(*in)
	if raw == "" {
		return nil
	}
	ref := models.TeamRef(canonicalRef(raw))
	return &ref
}

// userRefFromInput stores well-formed ids in canonical form so they match
// references built from record ids; anything else is kept verbatim.
func userRefFromInput(in string) models.UserRef {
	return models.UserRef(canonicalRef(strings.TrimSpace(in)))
}

func canonicalRef(raw string) string {
	if id, err := uuid.Parse(raw); err == nil {
		return id.String()
	}
	return raw
}
