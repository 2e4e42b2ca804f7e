package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/MohamedSultan7/davinci-bakers/pkg/pagination"
	"github.com/google/uuid"
)

// PaginationFromQuery reads page/page_size query params, tolerating absence.
func PaginationFromQuery(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, pkgerrors.New(pkgerrors.CodeValidation, "page must be a positive integer")
		}
		params.Page = page
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return params, pkgerrors.New(pkgerrors.CodeValidation, "page_size must be a positive integer")
		}
		params.PageSize = size
	}
	return params.Normalize(), nil
}

// UUIDFromQuery parses an optional uuid query param. Absent params return nil.
func UUIDFromQuery(r *http.Request, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, name+" must be a uuid")
	}
	return &id, nil
}

// CSVFromQuery splits a comma separated query param into trimmed values.
func CSVFromQuery(r *http.Request, name string) []string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
