package model

import "strings"

// Student is one record of the list. Its position in the list is its only identity.
type Student struct {
	Name   string `json:"name"`
	Roll   string `json:"roll"`
	Course string `json:"course"`
}

// Trimmed returns s with surrounding whitespace removed from every field.
func (s Student) Trimmed() Student {
	return Student{
		Name:   strings.TrimSpace(s.Name),
		Roll:   strings.TrimSpace(s.Roll),
		Course: strings.TrimSpace(s.Course),
	}
}

// Matches reports whether the lowercased query is a substring of name, roll or course.
func (s Student) Matches(query string) bool {
	return strings.Contains(strings.ToLower(s.Name), query) ||
		strings.Contains(strings.ToLower(s.Roll), query) ||
		strings.Contains(strings.ToLower(s.Course), query)
}

// StudentRow is the SQL form of a Student.
type StudentRow struct {
	ID       uint   `gorm:"primaryKey"`
	Position int    `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	Roll     string `gorm:"not null"`
	Course   string
}

func (StudentRow) TableName() string {
	return "students"
}
