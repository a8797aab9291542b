package helpers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"umrah-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.StatusCode(err)
	return ctx.Status(code).JSON(Response{
		Message: err.Error(),
	})
}

// DurationCalculation returns the remaining duration until t.
func DurationCalculation(t time.Time) time.Duration {
	return time.Until(t)
}

var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// IsImageContentType reports whether the multipart file claims an
// accepted image content type.
func IsImageContentType(file *multipart.FileHeader) bool {
	_, ok := imageContentTypes[file.Header.Get("Content-Type")]
	return ok
}

// SaveUpload stores the uploaded file under baseDir/subdir with a
// generated name and returns the stored relative path.
func SaveUpload(ctx *fiber.Ctx, file *multipart.FileHeader, baseDir, subdir string) (string, error) {
	dir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.InternalServerError("error create upload directory")
	}

	ext := filepath.Ext(file.Filename)
	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dest := filepath.Join(dir, name)
	if err := ctx.SaveFile(file, dest); err != nil {
		return "", errors.InternalServerError("error save uploaded file")
	}

	return filepath.Join(subdir, name), nil
}
