package service

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"rollbook/internal/model"
)

type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// ImportService adds students in bulk from CSV files with the columns
// name, roll and an optional course. A leading header row is skipped.
type ImportService struct {
	students *StudentService
}

func NewImportService(students *StudentService) *ImportService {
	return &ImportService{students: students}
}

func (s *ImportService) ImportCSV(r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		result ImportResult
		batch  []model.Student
	)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ImportResult{}, errors.Wrapf(ErrInvalidCSV, "line %d: %v", line, err)
		}
		if line == 1 {
			// spreadsheet "CSV UTF-8" exports start with a byte order mark
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
			if isHeader(record) {
				continue
			}
		}

		student := studentFromRecord(record).Trimmed()
		if !valid(student) {
			logrus.WithField("line", line).Debug("skipping csv row without name or roll")
			result.Skipped++
			continue
		}
		batch = append(batch, student)
	}

	if err := s.students.AddMany(batch); err != nil {
		return ImportResult{}, err
	}
	result.Added = len(batch)

	logrus.WithFields(logrus.Fields{"added": result.Added, "skipped": result.Skipped}).Info("csv import finished")
	return result, nil
}

func isHeader(record []string) bool {
	return len(record) >= 2 &&
		strings.EqualFold(strings.TrimSpace(record[0]), "name") &&
		strings.EqualFold(strings.TrimSpace(record[1]), "roll")
}

func studentFromRecord(record []string) model.Student {
	var s model.Student
	if len(record) > 0 {
		s.Name = record[0]
	}
	if len(record) > 1 {
		s.Roll = record[1]
	}
	if len(record) > 2 {
		s.Course = record[2]
	}
	return s
}
