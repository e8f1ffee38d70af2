package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"rollbook/internal/config"
	"rollbook/internal/database"
	"rollbook/internal/handler"
	"rollbook/internal/service"
	"rollbook/internal/storage"
	"rollbook/internal/web"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg       *config.Config
	students  *service.StudentService
	handler   http.Handler
	accessLog *io.PipeWriter
	closeDB   func() error
}

// New loads the student list from the configured backend and wires the handlers.
func New(cfg *config.Config) (*Server, error) {
	backend, closeDB, err := OpenBackend(cfg)
	if err != nil {
		return nil, err
	}

	students, err := service.NewStudentService(backend)
	if err != nil {
		closeDB()
		return nil, err
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		closeDB()
		return nil, err
	}
	flashes, err := web.NewFlashes(cfg.SessionSecret)
	if err != nil {
		closeDB()
		return nil, err
	}

	accessLog := logrus.StandardLogger().Writer()
	h := Handlers{
		Students: handler.NewStudentHandler(students, renderer, flashes),
		API:      handler.NewAPIHandler(students),
		Import:   handler.NewImportHandler(service.NewImportService(students), flashes),
	}

	logrus.WithFields(logrus.Fields{"driver": cfg.Driver, "students": students.Len()}).Info("student list loaded")
	return &Server{
		cfg:       cfg,
		students:  students,
		handler:   NewRouter(h, cfg.AllowedOrigins, accessLog),
		accessLog: accessLog,
		closeDB:   closeDB,
	}, nil
}

// OpenBackend returns the durable representation selected by cfg.Driver and
// a function releasing it.
func OpenBackend(cfg *config.Config) (storage.Backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverJSON:
		return storage.NewJSONFile(cfg.DataFile), noop, nil
	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.Open(cfg)
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, errors.Wrap(err, "get sql connection")
		}
		backend, err := storage.NewSQLBackend(db)
		if err != nil {
			sqlDB.Close()
			return nil, noop, err
		}
		return backend, sqlDB.Close, nil
	default:
		return nil, noop, errors.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Students() *service.StudentService {
	return s.students
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", s.cfg.Addr).Info("server running")
		err := httpSrv.ListenAndServe()
		// mute error caused by Shutdown()
		if err == http.ErrServerClosed {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return <-errCh
}

func (s *Server) Close() error {
	s.accessLog.Close()
	return s.closeDB()
}
