package dto

import entity "mtc_backend/internal/feature/mtc/domain/entity"

// MtcsResponse is the list payload: the total matching count computed
// without paging, plus the requested page of mtcs.
type MtcsResponse struct {
	Total int64        `json:"total"`
	Mtcs  []entity.Mtc `json:"mtcs"`
}

// MtcPhotoMeta describes an uploaded photo before it is written to disk.
type MtcPhotoMeta struct {
	Filename string
	Mimetype string
	Size     int64
}

// MtcPhotoResponse reports the stored filename after a photo upload.
type MtcPhotoResponse struct {
	Photo string `json:"photo"`
}
