package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Object-storage errors
var (
	ErrBucketCreate  = errors.New("bucket creation failed")
	ErrUnknownBucket = errors.New("unknown bucket")
	ErrNoFile        = errors.New("no file provided")
	ErrUploadFailed  = errors.New("upload failed")
	ErrSignURL       = errors.New("signed URL generation failed")
)

func NewBucketCreateError(bucket string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrBucketCreate,
		Details:    fmt.Sprintf("Failed to create bucket %s", bucket),
		Cause:      cause,
		Field:      "bucket",
	}
}

func NewUnknownBucketError(bucket string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnknownBucket,
		Details:    fmt.Sprintf("Bucket %s is not a known upload target", bucket),
		Field:      "bucket",
	}
}

func NewNoFileError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrNoFile,
		Details:    "Multipart form must include a 'file' part",
		Field:      "file",
	}
}

func NewUploadFailedError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Failed to store object %s", key),
		Cause:      cause,
		Field:      "file",
	}
}

func NewSignURLError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrSignURL,
		Details:    fmt.Sprintf("Failed to sign URL for object %s", key),
		Cause:      cause,
	}
}

func IsUnknownBucketError(err error) bool {
	return errors.Is(err, ErrUnknownBucket)
}

func IsNoFileError(err error) bool {
	return errors.Is(err, ErrNoFile)
}
