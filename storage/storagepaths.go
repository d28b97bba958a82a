package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	V1ListPrefix = "v1/skiplists/"
	ListExt      = ".skl"

	// LenUUIDString is the length of the UUID string representation, per
	// https://www.rfc-editor.org/rfc/rfc9562.html#name-uuid-format
	LenUUIDString = 36
)

// ListPath returns the storage path of the list identified by listID.
func ListPath(listID uuid.UUID) string {
	return fmt.Sprintf("%s%s%s", V1ListPrefix, listID.String(), ListExt)
}

// NewListPath allocates a fresh list identity and returns it with its path.
func NewListPath() (uuid.UUID, string) {
	listID := uuid.New()
	return listID, ListPath(listID)
}

// ListIDFromPath recovers the list identity from a storage path. Anything
// before the V1ListPrefix is ignored, so paths carrying a service specific
// prefix parse too.
func ListIDFromPath(storagePath string) (uuid.UUID, error) {
	i := strings.Index(storagePath, V1ListPrefix)
	if i == -1 {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrBadListPath, storagePath)
	}
	name := storagePath[i+len(V1ListPrefix):]
	if len(name) != LenUUIDString+len(ListExt) || !strings.HasSuffix(name, ListExt) {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrBadListPath, storagePath)
	}

	listID, err := uuid.Parse(name[:LenUUIDString])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", ErrBadListPath, storagePath, err)
	}
	return listID, nil
}
