package handlers

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"backend/internal/media"
)

const maxUploadSize = 10 << 20

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

func validateImageUpload(file *multipart.FileHeader) error {
	if file.Size > maxUploadSize {
		return fmt.Errorf("Imagem deve ter menos de 10MB")
	}

	if contentType := file.Header.Get("Content-Type"); contentType != "" {
		if !strings.HasPrefix(contentType, "image/") {
			return fmt.Errorf("Ficheiro deve ser uma imagem")
		}
		return nil
	}

	extension := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExtensions[extension]; !ok {
		return fmt.Errorf("Ficheiro deve ser uma imagem")
	}
	return nil
}

/*
POST /api/admin/upload
- multipart field "image", pushed to the external media host
- returns the hosted URL for the admin UI to attach to a product
*/
func UploadImage(uploads media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/upload"
		defer handlePanic(c, route)

		file, err := c.FormFile("image")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "Nenhuma imagem fornecida")
			return
		}

		if err := validateImageUpload(file); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		src, err := file.Open()
		if err != nil {
			log.Printf("[%s] open upload failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Erro interno do servidor")
			return
		}
		defer src.Close()

		image, err := uploads.Upload(c.Request.Context(), src, file.Filename)
		if err != nil {
			log.Printf("[%s] upload failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Erro interno do servidor")
			return
		}

		log.Printf("[%s] uploaded %s as %s", route, file.Filename, image.PublicID)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"image":   image,
		})
	}
}
