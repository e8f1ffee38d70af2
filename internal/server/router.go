package server

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"rollbook/internal/handler"
	"rollbook/internal/web"
)

type Handlers struct {
	Students *handler.StudentHandler
	API      *handler.APIHandler
	Import   *handler.ImportHandler
}

// NewRouter registers the HTML and JSON routes and wraps them with
// recovery, access logging and compression. Only /api answers CORS.
func NewRouter(h Handlers, allowedOrigins []string, accessLog io.Writer) http.Handler {
	r := mux.NewRouter()
	r.Use(web.RequestID)

	r.HandleFunc("/", h.Students.ListStudents).Methods("GET")
	r.HandleFunc("/add", h.Students.AddStudent).Methods("GET", "POST")
	r.HandleFunc("/edit/{index:[0-9]+}", h.Students.EditStudent).Methods("GET", "POST")
	r.HandleFunc("/delete/{index:[0-9]+}", h.Students.DeleteStudent).Methods("POST")
	r.HandleFunc("/import", h.Import.ImportCSV).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	// OPTIONS must match a route, otherwise mux never runs the CORS middleware for preflights
	api.Use(handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", web.RequestIDHeader}),
	))
	api.HandleFunc("/students", h.API.ListStudents).Methods("GET", "OPTIONS")
	api.HandleFunc("/students/{index:[0-9]+}", h.API.GetStudent).Methods("GET", "OPTIONS")

	var root http.Handler = handlers.CompressHandler(r)
	root = handlers.CombinedLoggingHandler(accessLog, root)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(logrus.StandardLogger()))(root)
}
