// Package handler provides the HTTP handlers for the mtc feature.
package handler

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"mtc_backend/internal/api"
	"mtc_backend/internal/apperror"
	"mtc_backend/internal/feature/mtc/domain/entity"
	dto "mtc_backend/internal/feature/mtc/transport/http/dto"
	"mtc_backend/internal/feature/mtc/usecase"
)

// PhotoFormField is the multipart form field carrying the mtc photo.
const PhotoFormField = "photo_upload"

// MtcUsecase defines the mtc operations this handler depends on. Following
// Go convention the interface is declared on the consumer side.
type MtcUsecase interface {
	List(ctx context.Context, q usecase.ListQuery) (int64, []entity.Mtc, error)
	Get(ctx context.Context, id string) (*entity.Mtc, error)
	Create(ctx context.Context, rm dto.MtcRequest) (*entity.Mtc, error)
	Update(ctx context.Context, id string, rm dto.MtcRequest) (*entity.Mtc, error)
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, id string, meta dto.MtcPhotoMeta, save usecase.PhotoSaver) (string, error)
	SearchWithinRadius(ctx context.Context, zipcode, distance, unit string) (int64, []entity.Mtc, error)
}

// MtcHandler handles the mtc HTTP requests.
type MtcHandler struct {
	uc MtcUsecase
}

// NewMtcHandler creates an MtcHandler around the given usecase.
func NewMtcHandler(uc MtcUsecase) *MtcHandler {
	return &MtcHandler{uc: uc}
}

// GetAllMtcsHandler lists mtcs with paging, prefix search and sorting.
//
// GET /mtcs?skip=0&take=25&searchInput=City&sortBy=name&sortOrder=asc
func (h *MtcHandler) GetAllMtcsHandler(c *gin.Context) {
	opts := dto.NewMtcsSearchOptions(
		c.Query("skip"),
		c.Query("take"),
		c.Query("searchInput"),
		c.Query("sortBy"),
		c.Query("sortOrder"),
	)

	total, mtcs, err := h.uc.List(c.Request.Context(), usecase.ListQuery{
		Skip:      opts.Skip,
		Take:      opts.Take,
		Search:    opts.SearchInput,
		SortBy:    string(opts.SortBy),
		SortOrder: string(opts.SortOrder),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MtcsResponse{Total: total, Mtcs: mtcs})
}

// GetMtcHandler returns one mtc by id.
//
// GET /mtcs/:mtcId
func (h *MtcHandler) GetMtcHandler(c *gin.Context) {
	mtc, err := h.uc.Get(c.Request.Context(), c.Param("mtcId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, mtc)
}

// GetMtcsWithinRadiusHandler lists the mtcs within a distance of a zipcode.
// The distance stays a raw path string so the validator can report a
// non-numeric value as a field error.
//
// GET /mtcs/radius/:zipcode/:distance?unit=KM
func (h *MtcHandler) GetMtcsWithinRadiusHandler(c *gin.Context) {
	total, mtcs, err := h.uc.SearchWithinRadius(
		c.Request.Context(),
		c.Param("zipcode"),
		c.Param("distance"),
		c.Query("unit"),
	)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MtcsResponse{Total: total, Mtcs: mtcs})
}

// CreateMtcHandler creates an mtc from a JSON body.
//
// POST /mtcs
func (h *MtcHandler) CreateMtcHandler(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		return
	}

	mtc, err := h.uc.Create(c.Request.Context(), dto.NewMtcRequest(body))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, mtc)
}

// UpdateMtcHandler updates an mtc by id.
//
// PUT /mtcs/:mtcId
func (h *MtcHandler) UpdateMtcHandler(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		return
	}

	mtc, err := h.uc.Update(c.Request.Context(), c.Param("mtcId"), dto.NewMtcRequest(body))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, mtc)
}

// DeleteMtcHandler deletes an mtc and its courses.
//
// DELETE /mtcs/:mtcId
func (h *MtcHandler) DeleteMtcHandler(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("mtcId")); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.OK(nil, ""))
}

// UploadMtcPhotoHandler stores an uploaded photo for an mtc. The multipart
// file is validated by the usecase; writing the bytes to disk is handed
// over as a callback so the usecase decides the final filename first.
//
// POST /mtcs/:mtcId/photo
func (h *MtcHandler) UploadMtcPhotoHandler(c *gin.Context) {
	file, err := c.FormFile(PhotoFormField)
	if err != nil {
		_ = c.Error(apperror.NewBadRequest(apperror.CodeInvalidInputParams, "Please upload a file"))
		return
	}

	meta := dto.MtcPhotoMeta{
		Filename: file.Filename,
		Mimetype: file.Header.Get("Content-Type"),
		Size:     file.Size,
	}

	save := func(path string) error {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		src, err := file.Open()
		if err != nil {
			return err
		}
		defer src.Close()

		dst, err := os.Create(path)
		if err != nil {
			return err
		}
		defer dst.Close()

		_, err = io.Copy(dst, src)
		return err
	}

	filename, err := h.uc.UploadPhoto(c.Request.Context(), c.Param("mtcId"), meta, save)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MtcPhotoResponse{Photo: filename})
}

// decodeBody reads the request body as loosely typed JSON, attaching a
// BAD_REQUEST on malformed input.
func decodeBody(c *gin.Context) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(apperror.NewBadRequest(apperror.CodeInvalidInputParams, "Request body must be valid JSON"))
		return nil, false
	}
	return body, true
}
