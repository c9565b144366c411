package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	errs "github.com/me1pik/admin-backoffice/internal/errors"
	"github.com/me1pik/admin-backoffice/listview"
)

const maxPageSize = 100

// parseListParams reads the shared collection query parameters:
// ?status=&search=&page=&limit=
func parseListParams(r *http.Request) listview.Query {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	// The tab label is fixed so a status value that happens to spell the
	// show-all label still filters literally.
	tab := listview.SentinelTab()
	if status := q.Get("status"); status != "" {
		tab = listview.Tab{Label: "status", Path: status}
	}

	return listview.Query{
		Tab:    tab,
		Search: q.Get("search"),
		Page:   page,
	}
}

func parsePageSize(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		return listview.DefaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

// listHandler serves a collection endpoint by running the fetched rows
// through the list pipeline: tab(status) filter, then search, then paging.
func listHandler[T any](fetch func() ([]T, error), classify func(T) string, fields func(T) []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fetch()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list items")
			return
		}

		pipeline := listview.New(classify, fields, parsePageSize(r))
		page := pipeline.Apply(items, parseListParams(r))
		writeJSON(w, http.StatusOK, page)
	}
}

func getHandler[T any](get func(id string) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := get(r.PathValue("id"))
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				writeError(w, http.StatusNotFound, "resource not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to fetch item")
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func createHandler[T any](upsert func(*T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := new(T)
		if err := decodeJSON(r, item); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := upsert(item); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to create item")
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

// updateHandler implements PATCH: the stored entity is fetched and the
// request body is merged over a copy, so absent fields keep their values.
// The body is validated against a zero value before the merge: Unmarshal
// writes element-wise into slices the copy shares with the stored entity, so
// a body that would fail mid-decode must be rejected before it can touch
// them.
func updateHandler[T any](get func(id string) (*T, error), upsert func(*T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := get(r.PathValue("id"))
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				writeError(w, http.StatusNotFound, "resource not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to fetch item")
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := json.Unmarshal(body, new(T)); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
			return
		}

		updated := *item
		if err := json.Unmarshal(body, &updated); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
			return
		}

		if err := upsert(&updated); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to update item")
			return
		}
		writeJSON(w, http.StatusOK, &updated)
	}
}

func deleteHandler(del func(id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := del(r.PathValue("id")); err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				writeError(w, http.StatusNotFound, "resource not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to delete item")
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "deleted"})
	}
}
