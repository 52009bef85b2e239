package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"backend/internal/media"
)

type fakeUploader struct {
	uploaded bool
	fail     bool
}

func (f *fakeUploader) Upload(ctx context.Context, r io.Reader, filename string) (media.UploadedImage, error) {
	if f.fail {
		return media.UploadedImage{}, fmt.Errorf("upstream down")
	}
	f.uploaded = true
	return media.UploadedImage{
		URL:      "https://res.example.com/demo/abc.jpg",
		PublicID: "abc",
		Alt:      filename,
	}, nil
}

func uploadRequest(t *testing.T, field, filename, contentType string, size int) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(bytes.Repeat([]byte("x"), size)); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func uploadRouter(uploads media.Uploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/upload", UploadImage(uploads))
	return r
}

func TestUploadImageSuccess(t *testing.T) {
	uploads := &fakeUploader{}
	r := uploadRouter(uploads)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "image", "rosa.jpg", "image/jpeg", 128))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !uploads.uploaded {
		t.Fatal("expected file handed to the media host")
	}

	var resp struct {
		Success bool                `json:"success"`
		Image   media.UploadedImage `json:"image"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Image.URL == "" || resp.Image.Alt != "rosa.jpg" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUploadImageMissingFile(t *testing.T) {
	r := uploadRouter(&fakeUploader{})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing file, got %d", w.Code)
	}
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	uploads := &fakeUploader{}
	r := uploadRouter(uploads)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "image", "doc.pdf", "application/pdf", 128))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-image, got %d", w.Code)
	}
	if uploads.uploaded {
		t.Fatal("non-image must not reach the media host")
	}
}

func TestUploadImageUpstreamFailure(t *testing.T) {
	r := uploadRouter(&fakeUploader{fail: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "image", "rosa.jpg", "image/jpeg", 128))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on upstream failure, got %d", w.Code)
	}
}

func TestValidateImageUploadSizeCap(t *testing.T) {
	file := &multipart.FileHeader{
		Filename: "big.jpg",
		Size:     maxUploadSize + 1,
	}
	if err := validateImageUpload(file); err == nil {
		t.Fatal("expected size validation error")
	}
}

func TestValidateImageUploadExtensionFallback(t *testing.T) {
	// No Content-Type header: extension decides.
	if err := validateImageUpload(&multipart.FileHeader{Filename: "rosa.webp", Size: 10}); err != nil {
		t.Fatalf("expected webp accepted, got %v", err)
	}
	if err := validateImageUpload(&multipart.FileHeader{Filename: "notes.txt", Size: 10}); err == nil {
		t.Fatal("expected txt rejected")
	}
}
