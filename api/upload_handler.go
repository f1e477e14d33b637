package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianstudio/site-backend/errs"
	"github.com/meridianstudio/site-backend/storage"
)

// maxUploadSize caps multipart uploads at 20MB.
const maxUploadSize = 20 << 20

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     ObjectStore
}

func newUploadHandler(store ObjectStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// uploadFile godoc
// @Summary Upload a file
// @Description Stores a file in the named bucket and returns its path plus a long-lived signed URL
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param bucket path string true "Logical bucket name"
// @Param file formData file true "File to upload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /upload/{bucket} [post]
func (h uploadHandler) uploadFile() http.HandlerFunc {
	type response struct {
		Path      string `json:"path"`
		URL       string `json:"url"`
		PublicURL string `json:"publicUrl"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		bucketName := chi.URLParam(r, "bucket")
		bucket, ok := h.store.BucketFor(bucketName)
		if !ok {
			h.responder.WriteError(w, errs.NewUnknownBucketError(bucketName))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxUploadSize))
				return
			}
			h.responder.WriteError(w, errs.NewBadRequestError("invalid multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewNoFileError())
			return
		}
		defer file.Close()

		key := storage.ObjectName(header.Filename)
		contentType := header.Header.Get("Content-Type")

		path, err := h.store.Upload(r.Context(), bucket, key, contentType, file)
		if err != nil {
			h.responder.WriteError(w, errs.NewUploadFailedError(key, err))
			return
		}

		signedURL, err := h.store.SignedURL(r.Context(), bucket, key)
		if err != nil {
			h.responder.WriteError(w, errs.NewSignURLError(key, err))
			return
		}

		h.logger.Info().
			Str("bucket", bucket).
			Str("key", key).
			Int64("size", header.Size).
			Msg("file uploaded")

		// The buckets are private, so the signed URL is the only fetchable
		// form; publicUrl carries the same link for clients that read it.
		h.responder.WriteJSON(w, response{
			Path:      path,
			URL:       signedURL,
			PublicURL: signedURL,
		})
	}
}
