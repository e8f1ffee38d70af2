package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"rollbook/internal/service"
	"rollbook/internal/web"
)

type APIHandler struct {
	students StudentStore
}

func NewAPIHandler(students StudentStore) *APIHandler {
	return &APIHandler{students: students}
}

// ListStudents returns the (optionally filtered) list with each record's position.
func (h *APIHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	entries := h.students.Entries(query)

	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"data":  entries,
		"q":     query,
		"total": h.students.Len(),
	})
}

func (h *APIHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	position, ok := positionFromPath(r)
	if !ok {
		writeJSON(w, r, http.StatusNotFound, map[string]string{"error": msgNotFound})
		return
	}
	student, err := h.students.Get(position)
	if err != nil {
		writeJSON(w, r, http.StatusNotFound, map[string]string{"error": msgNotFound})
		return
	}

	writeJSON(w, r, http.StatusOK, service.Entry{Position: position, Student: student})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		web.Log(r).WithError(err).Warn("error encoding response")
	}
}
