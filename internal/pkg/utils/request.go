package utils

import (
	"net/http"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/exceptions"
	"strconv"
	"strings"
)

// BuildListQuery reads page, limit, search, status, patientId, type, from and to.
// Dates are whole days; "to" is inclusive.
func BuildListQuery(r *http.Request) (*requests.ListQuery, error) {
	values := r.URL.Query()

	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}
	if page > constvars.MaxPage {
		page = constvars.MaxPage
	}

	limit, err := strconv.Atoi(values.Get("limit"))
	if err != nil || limit <= 0 {
		limit = constvars.DefaultLimit
	}
	if limit > constvars.MaxLimit {
		limit = constvars.MaxLimit
	}

	query := &requests.ListQuery{
		Page:      page,
		Limit:     limit,
		Search:    strings.TrimSpace(values.Get("search")),
		Status:    strings.TrimSpace(values.Get("status")),
		PatientID: strings.TrimSpace(values.Get("patientId")),
		Type:      strings.TrimSpace(values.Get("type")),
	}

	if from := strings.TrimSpace(values.Get("from")); from != "" {
		day, err := ParseDay(from)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		query.From = &day
	}
	if to := strings.TrimSpace(values.Get("to")); to != "" {
		day, err := ParseDay(to)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		query.To = &day
	}
	if query.From != nil && query.To != nil && query.To.Before(*query.From) {
		return nil, exceptions.ErrCannotParseDate(nil)
	}

	return query, nil
}
