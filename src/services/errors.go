package services

import "errors"

var (
	// ErrValidation covers unparseable or out-of-range input, such as an
	// unknown transaction type string.
	ErrValidation = errors.New("validation failed")
	// ErrConflict covers duplicate usernames/emails and deleting a category
	// that is still referenced.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized means the entity exists but belongs to another user.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// ownerCheck is the single ownership gate behind every mutating operation on
// entities fetched by bare id.
func ownerCheck(ownerID, userID int64) error {
	if ownerID != userID {
		return ErrUnauthorized
	}
	return nil
}
