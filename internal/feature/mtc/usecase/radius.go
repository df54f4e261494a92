package usecase

import (
	"context"
	"math"

	"mtc_backend/internal/apperror"
	"mtc_backend/internal/feature/mtc/domain/entity"
	"mtc_backend/internal/validation"
)

// Earth radius per measurement unit; the distance divided by it gives the
// angular radius of the search circle.
const (
	earthRadiusKm = 6371.0
	earthRadiusMi = 3959.0
)

// SearchWithinRadius returns every mtc whose location is within distance of
// the zipcode's coordinates. Distance arrives as the raw path segment so
// non-numeric input fails validation instead of parsing to zero. Candidates
// are prefiltered with a bounding box in SQL and then checked against the
// exact great-circle distance.
func (u *MtcUsecase) SearchWithinRadius(ctx context.Context, zipcode, distanceRaw, unit string) (int64, []entity.Mtc, error) {
	distance := parseDistance(distanceRaw)
	if errs := validation.ValidateWithinRadius(zipcode, distance, unit); len(errs) > 0 {
		return 0, nil, apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}

	res, err := u.geo.Forward(ctx, zipcode)
	if err != nil {
		return 0, nil, apperror.NewInternal(apperror.CodeGeoCoderError, err.Error())
	}

	var details []any
	if res.Longitude == nil {
		details = append(details, validation.NewFieldError("longitude", validation.LongitudeProvideValueMessage))
	}
	if res.Latitude == nil {
		details = append(details, validation.NewFieldError("latitude", validation.LatitudeProvideValueMessage))
	}
	if len(details) > 0 {
		return 0, nil, apperror.NewForbidden(apperror.CodeGeoCoderError, details...)
	}

	centerLng, centerLat := *res.Longitude, *res.Latitude

	radius := earthRadiusKm
	if validation.MeasurementUnit(unit) == validation.UnitMiles {
		radius = earthRadiusMi
	}
	angular := distance.(float64) / radius

	candidates, err := u.mtcs.FindWithinBox(ctx, boundingBox(centerLng, centerLat, angular))
	if err != nil {
		return 0, nil, err
	}

	matches := make([]entity.Mtc, 0, len(candidates))
	for _, mtc := range candidates {
		if centralAngle(centerLat, centerLng, mtc.Location.Latitude, mtc.Location.Longitude) <= angular {
			matches = append(matches, mtc)
		}
	}
	return int64(len(matches)), matches, nil
}

// boundingBox returns the coordinate rectangle enclosing the search circle.
// The longitude span widens with latitude; near the poles the cosine term
// is clamped so the box degrades to a full band instead of dividing by zero.
func boundingBox(centerLng, centerLat, angular float64) BoundingBox {
	latDelta := angular * 180 / math.Pi

	cosLat := math.Cos(centerLat * math.Pi / 180)
	if cosLat < 1e-6 {
		cosLat = 1e-6
	}
	lngDelta := latDelta / cosLat

	return BoundingBox{
		MinLongitude: centerLng - lngDelta,
		MaxLongitude: centerLng + lngDelta,
		MinLatitude:  centerLat - latDelta,
		MaxLatitude:  centerLat + latDelta,
	}
}

// centralAngle computes the haversine great-circle angle between two
// points, in radians.
func centralAngle(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
