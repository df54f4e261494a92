// Package dto defines request and response shapes for the course HTTP surface.
package dto

import (
	"strconv"

	entity "mtc_backend/internal/feature/course/domain/entity"
)

// CourseRequest carries the decoded request body for course create/update.
// Raw decoded JSON values are kept (nil when absent) so validators can
// distinguish missing fields from wrongly typed ones. MtcID comes from the
// route path when creating under /mtcs/:mtcId/courses.
type CourseRequest struct {
	Title                  any
	Description            any
	WeeksDuration          any
	TuitionCost            any
	MinimumSkill           any
	IsScholarshipAvailable any
	MtcID                  string
}

// NewCourseRequest extracts the known course fields from a decoded JSON body.
func NewCourseRequest(body map[string]any, mtcID string) CourseRequest {
	rm := CourseRequest{
		Title:                  body["title"],
		Description:            body["description"],
		WeeksDuration:          body["weeksDuration"],
		TuitionCost:            body["tuitionCost"],
		MinimumSkill:           body["minimumSkill"],
		IsScholarshipAvailable: body["isScholarshipAvailable"],
		MtcID:                  mtcID,
	}
	if rm.MtcID == "" {
		if s, ok := body["mtc"].(string); ok {
			rm.MtcID = s
		}
	}
	return rm
}

// CourseModel is the typed view of a request that already passed validation.
type CourseModel struct {
	Title                  string
	Description            string
	WeeksDuration          int
	TuitionCost            float64
	MinimumSkill           entity.MinimumSkill
	IsScholarshipAvailable *bool
	MtcID                  string
}

// Model converts a validated request into its typed form.
func (m CourseRequest) Model() CourseModel {
	out := CourseModel{
		MtcID: m.MtcID,
	}
	if s, ok := m.Title.(string); ok {
		out.Title = s
	}
	if s, ok := m.Description.(string); ok {
		out.Description = s
	}
	if f, ok := m.WeeksDuration.(float64); ok {
		out.WeeksDuration = int(f)
	}
	if f, ok := m.TuitionCost.(float64); ok {
		out.TuitionCost = f
	}
	if s, ok := m.MinimumSkill.(string); ok {
		out.MinimumSkill = entity.MinimumSkill(s)
	}
	if b, ok := m.IsScholarshipAvailable.(bool); ok {
		out.IsScholarshipAvailable = &b
	}
	return out
}

// CoursesSortBy enumerates the course list sort fields.
type CoursesSortBy string

const (
	CoursesSortByTitle         CoursesSortBy = "title"
	CoursesSortByWeeksDuration CoursesSortBy = "weeksDuration"
	CoursesSortByTuitionCost   CoursesSortBy = "tuitionCost"
	CoursesSortByMinimumSkill  CoursesSortBy = "minimumSkill"
)

// SortOrder is the requested list ordering direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// CoursesSearchOptions carries the pagination, search and sorting query
// parameters of the course list endpoints.
type CoursesSearchOptions struct {
	Skip        *int
	Take        *int
	SearchInput string
	SortBy      CoursesSortBy
	SortOrder   SortOrder
}

// NewCoursesSearchOptions parses raw query parameter strings, defaulting to
// sorting by title ascending.
func NewCoursesSearchOptions(skip, take, searchInput, sortBy, sortOrder string) CoursesSearchOptions {
	opts := CoursesSearchOptions{
		SearchInput: searchInput,
		SortBy:      CoursesSortByTitle,
		SortOrder:   SortOrderAsc,
	}

	opts.Skip = parseOptionalInt(skip)
	opts.Take = parseOptionalInt(take)

	switch CoursesSortBy(sortBy) {
	case CoursesSortByWeeksDuration, CoursesSortByTuitionCost, CoursesSortByMinimumSkill:
		opts.SortBy = CoursesSortBy(sortBy)
	}
	if SortOrder(sortOrder) == SortOrderDesc {
		opts.SortOrder = SortOrderDesc
	}

	return opts
}

func parseOptionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// CoursesResponse is the list payload: the total matching count computed
// without paging, plus the requested page of courses.
type CoursesResponse struct {
	Total   int64           `json:"total"`
	Courses []entity.Course `json:"courses"`
}
