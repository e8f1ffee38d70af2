package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"rollbook/internal/service"
	"rollbook/internal/web"
)

const maxUploadSize = 10 << 20 // 10MB

type Importer interface {
	ImportCSV(r io.Reader) (service.ImportResult, error)
}

type ImportHandler struct {
	importer Importer
	flashes  *web.Flashes
}

func NewImportHandler(importer Importer, flashes *web.Flashes) *ImportHandler {
	return &ImportHandler{importer: importer, flashes: flashes}
}

func (h *ImportHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		web.Log(r).WithError(err).Info("bad upload")
		redirectWithFlash(w, r, h.flashes, "/", web.CategoryError, msgBadUpload)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		redirectWithFlash(w, r, h.flashes, "/", web.CategoryError, msgNoFile)
		return
	}
	defer file.Close()

	result, err := h.importer.ImportCSV(file)
	switch {
	case errors.Is(err, service.ErrInvalidCSV):
		web.Log(r).WithError(err).WithField("file", header.Filename).Info("rejected csv import")
		redirectWithFlash(w, r, h.flashes, "/", web.CategoryError, msgInvalidCSV)
	case err != nil:
		web.Log(r).WithError(err).Error("csv import failed")
		http.Error(w, msgInternalError, http.StatusInternalServerError)
	default:
		redirectWithFlash(w, r, h.flashes, "/", web.CategorySuccess, fmt.Sprintf(msgImportedFmt, result.Added, result.Skipped))
	}
}
