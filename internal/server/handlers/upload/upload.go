// Package upload echoes metadata about an uploaded image. Nothing is stored.
package upload

import (
	"errors"
	"io"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"users-api/internal/server/handler"
)

const formField = "image"

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/post-image", handler.Handle(h.postImage))
}

type imageResponse struct {
	Filename string  `json:"Filename"`
	Format   string  `json:"Format"`
	SizeKB   float64 `json:"Size(kb)"`
}

func (h *Handler) postImage(r *http.Request) (*handler.Response, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, handler.ClientErr(http.StatusBadRequest, "invalid multipart body")
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, handler.ClientErr(http.StatusBadRequest, "invalid multipart body")
		}
		if part.FormName() != formField {
			part.Close()
			continue
		}

		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			return nil, handler.ClientErr(http.StatusBadRequest, "invalid multipart body")
		}

		return &handler.Response{
			Status: http.StatusOK,
			Body: imageResponse{
				Filename: part.FileName(),
				Format:   part.Header.Get("Content-Type"),
				SizeKB:   sizeKB(len(data)),
			},
		}, nil
	}

	return nil, handler.ClientErr(http.StatusBadRequest, "image file is required")
}

// sizeKB converts a byte count to kilobytes rounded to two decimals.
func sizeKB(n int) float64 {
	return math.Round(float64(n)/1024*100) / 100
}
