package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"rollbook/internal/model"
	"rollbook/internal/service"
	"rollbook/internal/web"
)

// StudentStore is the part of service.StudentService the handlers use.
type StudentStore interface {
	Len() int
	Entries(query string) []service.Entry
	Get(position int) (model.Student, error)
	Add(student model.Student) (model.Student, error)
	Update(position int, student model.Student) (model.Student, error)
	Delete(position int) error
}

type StudentHandler struct {
	students StudentStore
	renderer *web.Renderer
	flashes  *web.Flashes
}

func NewStudentHandler(students StudentStore, renderer *web.Renderer, flashes *web.Flashes) *StudentHandler {
	return &StudentHandler{students: students, renderer: renderer, flashes: flashes}
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	entries := h.students.Entries(query)
	rows := make([]web.Row, len(entries))
	for i, e := range entries {
		rows[i] = web.Row{Index: e.Position, Student: e.Student}
	}

	h.render(w, r, web.PageIndex, &web.IndexPage{
		Flashes:  h.flashes.Pop(w, r),
		Students: rows,
		Query:    query,
		Total:    h.students.Len(),
	})
}

func (h *StudentHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderForm(w, r, "Add Student", "/add", "Add", model.Student{})
		return
	}

	_, err := h.students.Add(studentFromForm(r))
	switch {
	case errors.Is(err, service.ErrValidation):
		h.redirect(w, r, "/add", web.CategoryError, msgRequired)
	case err != nil:
		h.serverError(w, r, err)
	default:
		h.redirect(w, r, "/", web.CategorySuccess, msgAdded)
	}
}

func (h *StudentHandler) EditStudent(w http.ResponseWriter, r *http.Request) {
	position, ok := positionFromPath(r)
	if !ok {
		h.redirect(w, r, "/", web.CategoryError, msgNotFound)
		return
	}
	student, err := h.students.Get(position)
	if err != nil {
		h.redirect(w, r, "/", web.CategoryError, msgNotFound)
		return
	}

	action := "/edit/" + strconv.Itoa(position)
	if r.Method != http.MethodPost {
		h.renderForm(w, r, "Edit Student", action, "Save", student)
		return
	}

	_, err = h.students.Update(position, studentFromForm(r))
	switch {
	case errors.Is(err, service.ErrValidation):
		h.redirect(w, r, action, web.CategoryError, msgRequired)
	case errors.Is(err, service.ErrNotFound):
		h.redirect(w, r, "/", web.CategoryError, msgNotFound)
	case err != nil:
		h.serverError(w, r, err)
	default:
		h.redirect(w, r, "/", web.CategorySuccess, msgUpdated)
	}
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	position, ok := positionFromPath(r)
	if !ok {
		h.redirect(w, r, "/", web.CategoryError, msgInvalidIndex)
		return
	}

	err := h.students.Delete(position)
	switch {
	case errors.Is(err, service.ErrInvalidIndex):
		h.redirect(w, r, "/", web.CategoryError, msgInvalidIndex)
	case err != nil:
		h.serverError(w, r, err)
	default:
		h.redirect(w, r, "/", web.CategorySuccess, msgDeleted)
	}
}

func (h *StudentHandler) renderForm(w http.ResponseWriter, r *http.Request, title, action, submit string, student model.Student) {
	h.render(w, r, web.PageForm, &web.FormPage{
		Flashes: h.flashes.Pop(w, r),
		Title:   title,
		Action:  action,
		Submit:  submit,
		Student: student,
	})
}

func (h *StudentHandler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	if err := h.renderer.Render(w, http.StatusOK, page, data); err != nil {
		h.serverError(w, r, err)
	}
}

func (h *StudentHandler) redirect(w http.ResponseWriter, r *http.Request, url, category, message string) {
	redirectWithFlash(w, r, h.flashes, url, category, message)
}

func (h *StudentHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	web.Log(r).WithError(err).Error("request failed")
	http.Error(w, msgInternalError, http.StatusInternalServerError)
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, flashes *web.Flashes, url, category, message string) {
	if err := flashes.Add(w, r, category, message); err != nil {
		web.Log(r).WithError(err).Warn("could not store flash message")
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

func studentFromForm(r *http.Request) model.Student {
	return model.Student{
		Name:   r.PostFormValue("name"),
		Roll:   r.PostFormValue("roll"),
		Course: r.PostFormValue("course"),
	}
}

// positionFromPath reads the {index} route variable. Values that do not fit
// an int are reported as not ok.
func positionFromPath(r *http.Request) (int, bool) {
	position, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		return 0, false
	}
	return position, true
}
