package service

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"rollbook/internal/model"
	"rollbook/internal/storage"
)

// StudentService owns the in-memory student list and mirrors every change to
// its backend. Reads never go to the backend after the initial load.
type StudentService struct {
	backend storage.Backend

	mu       sync.RWMutex
	students []model.Student
}

// NewStudentService loads the list from backend. An unreadable backend is
// treated as an empty list.
func NewStudentService(backend storage.Backend) (*StudentService, error) {
	students, err := backend.Load()
	if errors.Is(err, storage.ErrUnreadable) {
		entry := logrus.WithError(err)
		if p, ok := backend.(interface{ Path() string }); ok {
			entry = entry.WithField("path", p.Path())
		}
		entry.Warn("stored student list is unreadable, starting with an empty list; the next change overwrites it")
		students, err = nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load students")
	}
	if students == nil {
		students = []model.Student{}
	}

	return &StudentService{backend: backend, students: students}, nil
}

func (s *StudentService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.students)
}

// Entry is a student together with its current position in the list.
type Entry struct {
	Position int `json:"index"`
	model.Student
}

// List returns the students whose name, roll or course contains query,
// ignoring case. A blank query returns everything.
func (s *StudentService) List(query string) []model.Student {
	entries := s.Entries(query)
	result := make([]model.Student, len(entries))
	for i, e := range entries {
		result[i] = e.Student
	}
	return result
}

// Entries is List with the position of every match, so filtered views can
// still address records for edit and delete.
func (s *StudentService) Entries(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Entry, 0, len(s.students))
	for i, student := range s.students {
		if q == "" || student.Matches(q) {
			result = append(result, Entry{Position: i, Student: student})
		}
	}
	return result
}

func (s *StudentService) Get(position int) (model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.inRange(position) {
		return model.Student{}, ErrNotFound
	}
	return s.students[position], nil
}

// Add validates the student and inserts it at the front of the list.
func (s *StudentService) Add(student model.Student) (model.Student, error) {
	student = student.Trimmed()
	if !valid(student) {
		return model.Student{}, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Student, 0, len(s.students)+1)
	next = append(next, student)
	next = append(next, s.students...)
	if err := s.commit(next); err != nil {
		return model.Student{}, err
	}
	return student, nil
}

// AddMany behaves like calling Add for each student in order, so the last one
// ends up first, but persists once. Either all are added or none.
func (s *StudentService) AddMany(students []model.Student) error {
	batch := make([]model.Student, len(students))
	for i, student := range students {
		student = student.Trimmed()
		if !valid(student) {
			return ErrValidation
		}
		batch[len(students)-1-i] = student
	}
	if len(batch) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Student, 0, len(s.students)+len(batch))
	next = append(next, batch...)
	next = append(next, s.students...)
	return s.commit(next)
}

// Update replaces the student at position, keeping the order.
func (s *StudentService) Update(position int, student model.Student) (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(position) {
		return model.Student{}, ErrNotFound
	}
	student = student.Trimmed()
	if !valid(student) {
		return model.Student{}, ErrValidation
	}

	next := make([]model.Student, len(s.students))
	copy(next, s.students)
	next[position] = student
	if err := s.commit(next); err != nil {
		return model.Student{}, err
	}
	return student, nil
}

// Delete removes the student at position; later students shift down by one.
func (s *StudentService) Delete(position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(position) {
		return ErrInvalidIndex
	}

	next := make([]model.Student, 0, len(s.students)-1)
	next = append(next, s.students[:position]...)
	next = append(next, s.students[position+1:]...)
	return s.commit(next)
}

// commit saves next and only then makes it the current list, so a failed
// save leaves memory equal to the last saved state. Caller holds mu.
func (s *StudentService) commit(next []model.Student) error {
	if err := s.backend.Save(next); err != nil {
		return errors.Wrap(err, "persist students")
	}
	s.students = next
	return nil
}

func (s *StudentService) inRange(position int) bool {
	return position >= 0 && position < len(s.students)
}

func valid(student model.Student) bool {
	return student.Name != "" && student.Roll != ""
}
