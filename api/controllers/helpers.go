package controllers

import (
	"net/http"

	"github.com/MohamedSultan7/davinci-bakers/api/middleware"
	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// currentUserID pulls the authenticated buyer out of the request context.
func currentUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeAuthRequired, "authentication required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeAuthRequired, err, "malformed user context")
	}
	return id, nil
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, name+" must be a uuid")
	}
	return id, nil
}
