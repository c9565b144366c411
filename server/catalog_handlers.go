package server

import (
	"fmt"
	"net/http"

	"github.com/me1pik/admin-backoffice/catalog"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
	"github.com/me1pik/admin-backoffice/sizeguide"
)

type bulkStatusRequest struct {
	IDs    []string                   `json:"ids"`
	Status catalog.RegistrationStatus `json:"status"`
}

type bulkStatusResponse struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
}

// ProductBulkStatusHandler changes the registration status of every product
// in the request. The id set comes from the caller's filtered bulk
// selection.
func (s *Server) ProductBulkStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bulkStatusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if len(req.IDs) == 0 || req.Status == "" {
			writeError(w, http.StatusBadRequest, "ids and status are required")
			return
		}

		// Resolve every id before touching any of them, so a bad id in the
		// selection rejects the whole request instead of leaving part of it
		// applied.
		for _, id := range req.IDs {
			if _, err := s.repos.Products.GetByID(id); err != nil {
				if errs.Is(err, errs.ErrNotFound) {
					writeError(w, http.StatusNotFound, fmt.Sprintf("product %s not found", id))
					return
				}
				writeError(w, http.StatusInternalServerError, "failed to update status")
				return
			}
		}

		updated := 0
		for _, id := range req.IDs {
			if err := s.repos.Products.SetStatus(id, req.Status); err != nil {
				writeError(w, http.StatusInternalServerError, "failed to update status")
				return
			}
			updated++
		}

		writeJSON(w, http.StatusOK, bulkStatusResponse{
			Message: "status updated",
			Updated: updated,
		})
	}
}

// SizeGuidesHandler lists every category that has a measurement guide.
func (s *Server) SizeGuidesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{"categories": sizeguide.Categories()})
	}
}

// SizeGuideHandler looks up the measurement grid definition for a category.
func (s *Server) SizeGuideHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guide, ok := sizeguide.Lookup(r.PathValue("category"))
		if !ok {
			writeError(w, http.StatusNotFound, "unknown category")
			return
		}
		writeJSON(w, http.StatusOK, guide)
	}
}
