package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lostandfound/app/apperr"
	"lostandfound/app/dto"
	"lostandfound/global"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy to a status code and a message
// body; unclassified errors become 500 and are logged.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		global.Logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, dto.MessageResponse{Message: apperr.Message(err)})
}

// pageParam reads the 1-based page query parameter, defaulting to 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// idPathValue parses the {id} segment of the matched route.
func idPathValue(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil {
		return 0, apperr.Validation("invalid id")
	}
	return uint(id), nil
}
