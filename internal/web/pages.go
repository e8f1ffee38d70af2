package web

import "rollbook/internal/model"

// Row is one line of the student table. Index is the position in the full
// list, not in the filtered one.
type Row struct {
	Index int
	model.Student
}

type IndexPage struct {
	Flashes  []Flash
	Students []Row
	Query    string
	Total    int
}

type FormPage struct {
	Flashes []Flash
	Title   string
	Action  string
	Submit  string
	Student model.Student
}
