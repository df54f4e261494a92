// Package usecase contains the application logic for medical training
// centers: listing and search, create/update with geocoding, radius
// search, photo upload and cascade deletion.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"mtc_backend/internal/apperror"
	"mtc_backend/internal/feature/mtc/domain"
	"mtc_backend/internal/feature/mtc/domain/entity"
	dto "mtc_backend/internal/feature/mtc/transport/http/dto"
	"mtc_backend/internal/validation"
)

// Client-facing detail messages.
const (
	MtcNotFoundMessage              = "mtc not found"
	MtcNameRegisteredMessage        = "MTC with such name is already registered"
	AnotherMtcNameRegisteredMessage = "Another mtc with such name is already registered"
)

// ListQuery narrows and orders an mtc listing. Skip and Take stay pointers
// so an absent value means "no paging" rather than zero rows.
type ListQuery struct {
	Skip      *int
	Take      *int
	Search    string
	SortBy    string
	SortOrder string
}

// BoundingBox is the coordinate prefilter for radius search.
type BoundingBox struct {
	MinLongitude float64
	MaxLongitude float64
	MinLatitude  float64
	MaxLatitude  float64
}

// MtcRepository is the persistence contract required by this usecase.
type MtcRepository interface {
	Create(ctx context.Context, mtc *entity.Mtc) error
	Update(ctx context.Context, mtc *entity.Mtc) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Mtc, error)
	FindByName(ctx context.Context, name string) (*entity.Mtc, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	List(ctx context.Context, q ListQuery) ([]entity.Mtc, error)
	FindWithinBox(ctx context.Context, box BoundingBox) ([]entity.Mtc, error)
	UpdatePhoto(ctx context.Context, id, filename string) error
}

// CourseRemover cascades course deletion when an mtc goes away.
type CourseRemover interface {
	DeleteByMtcID(ctx context.Context, mtcID string) error
}

// GeocodeResult is the normalized output of one forward-geocode lookup.
// Coordinates stay pointers so a provider answer without them is reported
// as a validation failure rather than zero coordinates.
type GeocodeResult struct {
	Longitude        *float64
	Latitude         *float64
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
}

// Geocoder resolves a free-form query into coordinates.
type Geocoder interface {
	Forward(ctx context.Context, query string) (GeocodeResult, error)
}

// PhotoSaver persists uploaded photo bytes at the given path. The HTTP
// layer supplies it so the usecase stays free of multipart handling.
type PhotoSaver func(path string) error

// MtcUsecase implements the mtc operations.
type MtcUsecase struct {
	mtcs    MtcRepository
	courses CourseRemover
	geo     Geocoder

	uploadPath  string
	maxFileSize int64
}

// NewMtcUsecase creates an mtc usecase.
func NewMtcUsecase(mtcs MtcRepository, courses CourseRemover, geo Geocoder, uploadPath string, maxFileSize int64) *MtcUsecase {
	return &MtcUsecase{
		mtcs:        mtcs,
		courses:     courses,
		geo:         geo,
		uploadPath:  uploadPath,
		maxFileSize: maxFileSize,
	}
}

// List returns the total match count and one page of mtcs. The total is
// computed without paging; a zero total skips the page query entirely.
func (u *MtcUsecase) List(ctx context.Context, q ListQuery) (int64, []entity.Mtc, error) {
	total, err := u.mtcs.Count(ctx, q)
	if err != nil {
		return 0, nil, err
	}
	if total == 0 {
		return 0, []entity.Mtc{}, nil
	}

	mtcs, err := u.mtcs.List(ctx, q)
	if err != nil {
		return 0, nil, err
	}
	return total, mtcs, nil
}

// Get returns one mtc by id.
func (u *MtcUsecase) Get(ctx context.Context, id string) (*entity.Mtc, error) {
	mtc, err := u.mtcs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMtcNotFound) {
			return nil, apperror.NewNotFound(apperror.CodeRecordNotFound, MtcNotFoundMessage)
		}
		return nil, err
	}
	return mtc, nil
}

// Create validates the payload, rejects duplicate names, geocodes the
// address and persists a new mtc.
func (u *MtcUsecase) Create(ctx context.Context, rm dto.MtcRequest) (*entity.Mtc, error) {
	if errs := validation.ValidateMtcRequest(rm); len(errs) > 0 {
		return nil, apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}
	model := rm.Model()

	if err := u.ensureNameFree(ctx, model.Name, "", MtcNameRegisteredMessage); err != nil {
		return nil, err
	}

	location, err := u.resolveLocation(ctx, model.Address)
	if err != nil {
		return nil, err
	}

	mtc := &entity.Mtc{
		ID:            uuid.NewString(),
		Name:          model.Name,
		Slug:          slug.Make(model.Name),
		Description:   model.Description,
		Website:       model.Website,
		Phone:         model.Phone,
		Email:         model.Email,
		Address:       model.Address,
		Location:      location,
		Careers:       model.Careers,
		AverageRating: model.AverageRating,
		AverageCost:   model.AverageCost,
		Photo:         entity.DefaultPhoto,
	}
	if model.Photo != "" {
		mtc.Photo = model.Photo
	}
	applyOptionalFlags(mtc, model)

	if err := u.mtcs.Create(ctx, mtc); err != nil {
		return nil, err
	}
	return mtc, nil
}

// Update validates the payload and replaces the stored fields of an
// existing mtc. The address is re-geocoded on every update.
func (u *MtcUsecase) Update(ctx context.Context, id string, rm dto.MtcRequest) (*entity.Mtc, error) {
	mtc, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := validation.ValidateMtcRequest(rm); len(errs) > 0 {
		return nil, apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}
	model := rm.Model()

	if err := u.ensureNameFree(ctx, model.Name, id, AnotherMtcNameRegisteredMessage); err != nil {
		return nil, err
	}

	location, err := u.resolveLocation(ctx, model.Address)
	if err != nil {
		return nil, err
	}

	mtc.Name = model.Name
	mtc.Slug = slug.Make(model.Name)
	mtc.Description = model.Description
	mtc.Website = model.Website
	mtc.Phone = model.Phone
	mtc.Email = model.Email
	mtc.Address = model.Address
	mtc.Location = location
	mtc.Careers = model.Careers
	if model.AverageRating != nil {
		mtc.AverageRating = model.AverageRating
	}
	if model.AverageCost != nil {
		mtc.AverageCost = model.AverageCost
	}
	if model.Photo != "" {
		mtc.Photo = model.Photo
	}
	applyOptionalFlags(mtc, model)

	if err := u.mtcs.Update(ctx, mtc); err != nil {
		return nil, err
	}
	return mtc, nil
}

// Delete removes an mtc and every course it owns.
func (u *MtcUsecase) Delete(ctx context.Context, id string) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	if err := u.mtcs.Delete(ctx, id); err != nil {
		return err
	}
	return u.courses.DeleteByMtcID(ctx, id)
}

// UploadPhoto validates an uploaded image, persists its filename and then
// writes the bytes through save. The database row is updated before the
// file lands so a failed write never leaves a dangling filename on disk
// without a row pointing at it.
func (u *MtcUsecase) UploadPhoto(ctx context.Context, id string, meta dto.MtcPhotoMeta, save PhotoSaver) (string, error) {
	if _, err := u.Get(ctx, id); err != nil {
		return "", err
	}

	if errs := validation.ValidateMtcPhoto(meta, u.maxFileSize); len(errs) > 0 {
		return "", apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}

	filename := fmt.Sprintf("photo_%s%s", id, filepath.Ext(meta.Filename))
	if err := u.mtcs.UpdatePhoto(ctx, id, filename); err != nil {
		return "", err
	}
	if err := save(filepath.Join(u.uploadPath, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

func (u *MtcUsecase) ensureNameFree(ctx context.Context, name, selfID, message string) error {
	existing, err := u.mtcs.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrMtcNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return apperror.NewForbidden(apperror.CodeMtcNameAlreadyRegistered, message)
}

// resolveLocation geocodes a street address and validates that the
// provider returned usable coordinates.
func (u *MtcUsecase) resolveLocation(ctx context.Context, address string) (entity.Location, error) {
	res, err := u.geo.Forward(ctx, address)
	if err != nil {
		return entity.Location{}, apperror.NewInternal(apperror.CodeGeoCoderError, err.Error())
	}

	var longitude, latitude, formattedAddress any
	if res.Longitude != nil {
		longitude = *res.Longitude
	}
	if res.Latitude != nil {
		latitude = *res.Latitude
	}
	if res.FormattedAddress != "" {
		formattedAddress = res.FormattedAddress
	}

	if errs := validation.ValidateLocation(longitude, latitude, formattedAddress); len(errs) > 0 {
		return entity.Location{}, apperror.NewForbidden(apperror.CodeGeoCoderError, validation.Details(errs)...)
	}

	return entity.Location{
		Type:             entity.LocationTypePoint,
		Longitude:        *res.Longitude,
		Latitude:         *res.Latitude,
		FormattedAddress: res.FormattedAddress,
		Street:           res.Street,
		City:             res.City,
		State:            res.State,
		Zipcode:          res.Zipcode,
		Country:          res.Country,
	}, nil
}

func applyOptionalFlags(mtc *entity.Mtc, model dto.MtcModel) {
	if model.Housing != nil {
		mtc.Housing = *model.Housing
	}
	if model.JobAssistance != nil {
		mtc.JobAssistance = *model.JobAssistance
	}
	if model.JobGuarantee != nil {
		mtc.JobGuarantee = *model.JobGuarantee
	}
	if model.AcceptGiBill != nil {
		mtc.AcceptGiBill = *model.AcceptGiBill
	}
}

// parseDistance keeps the raw path value when it is not numeric so the
// validator reports a type error instead of a silent zero.
func parseDistance(raw string) any {
	if raw == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
