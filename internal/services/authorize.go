package services

import (
	"github.com/google/uuid"

	"github.com/playtube/playtube-backend/internal/apperr"
)

// requireOwner is the single ownership check applied before every mutating
// operation on user-owned entities.
func requireOwner(resource string, ownerID, userID uuid.UUID) error {
	if ownerID != userID {
		return apperr.New(apperr.Forbidden, "not allowed to modify this "+resource)
	}
	return nil
}
