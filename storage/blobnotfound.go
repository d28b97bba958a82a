package storage

import (
	"errors"
	"fmt"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

const blobNotFoundCode = "BlobNotFound"

// IsBlobNotFound reports whether err means the requested list object does
// not exist, either as ErrNotFound or as the SDK's BlobNotFound storage error.
func IsBlobNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var serr *azStorageBlob.StorageError
	if !errors.As(err, &serr) {
		return false
	}
	return serr.ErrorCode == blobNotFoundCode
}

// WrapBlobNotFound returns err with ErrNotFound in its chain when it reports a
// missing blob. Other errors, and nil, are returned unchanged.
func WrapBlobNotFound(err error) error {
	if !IsBlobNotFound(err) || errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrNotFound, err)
}
