package storage

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"rollbook/internal/model"
)

const saveBatchSize = 1000

// SQLBackend mirrors the list into the students table, ordered by position.
type SQLBackend struct {
	db *gorm.DB
}

func NewSQLBackend(db *gorm.DB) (*SQLBackend, error) {
	if err := db.AutoMigrate(&model.StudentRow{}); err != nil {
		return nil, errors.Wrap(err, "migrate students table")
	}
	return &SQLBackend{db: db}, nil
}

func (b *SQLBackend) Load() ([]model.Student, error) {
	var rows []model.StudentRow
	if err := b.db.Order("position asc").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "query students")
	}

	students := make([]model.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, model.Student{Name: row.Name, Roll: row.Roll, Course: row.Course})
	}
	return students, nil
}

// Save replaces every row in a single transaction.
func (b *SQLBackend) Save(students []model.Student) error {
	err := b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.StudentRow{}).Error; err != nil {
			return err
		}
		if len(students) == 0 {
			return nil
		}

		rows := make([]model.StudentRow, len(students))
		for i, s := range students {
			rows[i] = model.StudentRow{Position: i, Name: s.Name, Roll: s.Roll, Course: s.Course}
		}
		return tx.CreateInBatches(rows, saveBatchSize).Error
	})
	return errors.Wrap(err, "save students")
}
