package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"inventory_backend/internal/apperrors"
)

// errNoImageFile signals that the multipart form carried no image part.
var errNoImageFile = errors.New("no image file in form")

// saveImageFile stores the uploaded "image" form file under a unique
// name in uploadDir and returns its public path. Returns errNoImageFile
// when the form has no image part so callers can decide whether that is
// an error.
func saveImageFile(c *fiber.Ctx, uploadDir string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", errNoImageFile
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", apperrors.Invalid("only .jpg, .jpeg and .png files are allowed")
	}

	filename := uuid.NewString() + ext
	destination := filepath.Join(uploadDir, filename)

	if err := c.SaveFile(file, destination); err != nil {
		return "", apperrors.Internal("could not save image file", err)
	}

	// Static files are served from /uploads
	return fmt.Sprintf("/uploads/products/%s", filename), nil
}
