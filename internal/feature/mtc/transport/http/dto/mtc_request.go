// Package dto defines request and response shapes for the mtc HTTP surface.
package dto

import (
	entity "mtc_backend/internal/feature/mtc/domain/entity"
)

// MtcRequest carries the decoded request body for mtc create/update.
// Fields keep their raw decoded JSON values (nil when absent) so the
// validators can distinguish a missing field from a wrongly typed one.
type MtcRequest struct {
	Name          any
	Description   any
	Website       any
	Phone         any
	Email         any
	Address       any
	Careers       any
	AverageRating any
	AverageCost   any
	Photo         any
	Housing       any
	JobAssistance any
	JobGuarantee  any
	AcceptGiBill  any
}

// NewMtcRequest extracts the known mtc fields from a decoded JSON body.
func NewMtcRequest(body map[string]any) MtcRequest {
	return MtcRequest{
		Name:          body["name"],
		Description:   body["description"],
		Website:       body["website"],
		Phone:         body["phone"],
		Email:         body["email"],
		Address:       body["address"],
		Careers:       body["careers"],
		AverageRating: body["averageRating"],
		AverageCost:   body["averageCost"],
		Photo:         body["photo"],
		Housing:       body["housing"],
		JobAssistance: body["jobAssistance"],
		JobGuarantee:  body["jobGuarantee"],
		AcceptGiBill:  body["acceptGiBill"],
	}
}

// MtcModel is the typed view of a request that already passed validation.
type MtcModel struct {
	Name          string
	Description   string
	Website       string
	Phone         string
	Email         string
	Address       string
	Careers       entity.CareerList
	AverageRating *int
	AverageCost   *float64
	Photo         string
	Housing       *bool
	JobAssistance *bool
	JobGuarantee  *bool
	AcceptGiBill  *bool
}

// Model converts a validated request into its typed form. Calling it on an
// unvalidated request yields zero values for mistyped fields.
func (m MtcRequest) Model() MtcModel {
	out := MtcModel{
		Name:        stringValue(m.Name),
		Description: stringValue(m.Description),
		Website:     stringValue(m.Website),
		Phone:       stringValue(m.Phone),
		Email:       stringValue(m.Email),
		Address:     stringValue(m.Address),
		Photo:       stringValue(m.Photo),
	}

	if list, ok := m.Careers.([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok {
				out.Careers = append(out.Careers, entity.CareerType(s))
			}
		}
	}

	if f, ok := numberValue(m.AverageRating); ok {
		rating := int(f)
		out.AverageRating = &rating
	}
	if f, ok := numberValue(m.AverageCost); ok {
		cost := f
		out.AverageCost = &cost
	}

	out.Housing = boolValue(m.Housing)
	out.JobAssistance = boolValue(m.JobAssistance)
	out.JobGuarantee = boolValue(m.JobGuarantee)
	out.AcceptGiBill = boolValue(m.AcceptGiBill)

	return out
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// numberValue normalizes the numeric types a decoded body may carry.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func boolValue(v any) *bool {
	if b, ok := v.(bool); ok {
		return &b
	}
	return nil
}
