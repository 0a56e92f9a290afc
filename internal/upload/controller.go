package upload

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"meatshop/internal/commons"
	apperrors "meatshop/internal/errors"
)

const (
	formField = "file"
	// Room for multipart boundaries and headers on top of the file itself.
	formOverhead = 1 << 20
)

type Response struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
}

// Controller turns an uploaded image into a base64 data URL. Nothing is
// written to disk.
type Controller struct {
	maxBytes int64
	logger   *zap.Logger
}

func NewController(maxBytes int64, logger *zap.Logger) *Controller {
	return &Controller{
		maxBytes: maxBytes,
		logger:   logger,
	}
}

func (c *Controller) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.maxBytes+formOverhead)

	file, header, err := r.FormFile(formField)
	if err != nil {
		commons.WriteError(w, c.formError(err), c.logger)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, c.maxBytes+1))
	if err != nil {
		commons.WriteError(w, apperrors.NewInternalError("Image upload failed: "+err.Error(), err), c.logger)
		return
	}
	if int64(len(data)) > c.maxBytes {
		commons.WriteError(w, tooLarge(), c.logger)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}

	c.logger.Info("image uploaded",
		zap.String("filename", header.Filename),
		zap.String("contentType", contentType),
		zap.Int("size", len(data)),
	)

	commons.WriteJSON(w, http.StatusOK, Response{
		Success:  true,
		ImageURL: "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, c.logger)
}

func (c *Controller) formError(err error) error {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return tooLarge()
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return apperrors.NewValidationError("file is required", apperrors.ValidationDetail{
			Field:   formField,
			Message: "multipart field \"file\" is required",
		})
	default:
		c.logger.Warn("unreadable upload form", zap.Error(err))
		return apperrors.NewValidationError("invalid multipart form", apperrors.ValidationDetail{
			Field:   formField,
			Message: err.Error(),
		})
	}
}

func tooLarge() error {
	return apperrors.NewValidationError("file too large", apperrors.ValidationDetail{
		Field:   formField,
		Message: "file exceeds the upload size limit",
	})
}
