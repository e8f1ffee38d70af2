package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rollbook/internal/handler"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIListStudents(t *testing.T) {
	h := handler.NewAPIHandler(setupStore(t, bo, ann))

	tests := []struct {
		name        string
		target      string
		expectedLen int
	}{
		{"All students", "/api/students", 2},
		{"Filter", "/api/students?q=%20ee%20", 1},
		{"No match", "/api/students?q=zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ListStudents(rr, httptest.NewRequest("GET", tt.target, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var response map[string]interface{}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))

			data := response["data"].([]interface{})
			assert.Len(t, data, tt.expectedLen)
			assert.Equal(t, float64(2), response["total"])
		})
	}
}

func TestAPIListStudentsShape(t *testing.T) {
	h := handler.NewAPIHandler(setupStore(t, bo, ann))

	rr := httptest.NewRecorder()
	h.ListStudents(rr, httptest.NewRequest("GET", "/api/students?q=CS", nil))

	assert.JSONEq(t, `{
		"data": [{"index": 1, "name": "Ann", "roll": "R1", "course": "CS"}],
		"q": "cs",
		"total": 2
	}`, rr.Body.String())
}

func TestAPIGetStudent(t *testing.T) {
	h := handler.NewAPIHandler(setupStore(t, bo, ann))

	tests := []struct {
		name   string
		index  string
		status int
		body   string
	}{
		{"Found", "1", http.StatusOK, `{"index": 1, "name": "Ann", "roll": "R1", "course": "CS"}`},
		{"Not found", "2", http.StatusNotFound, `{"error": "Student not found."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mux.SetURLVars(httptest.NewRequest("GET", "/api/students/"+tt.index, nil), map[string]string{"index": tt.index})
			rr := httptest.NewRecorder()
			h.GetStudent(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.JSONEq(t, tt.body, rr.Body.String())
		})
	}
}
