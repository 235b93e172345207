package models

import "time"

// Subject belongs to a class and defines the full marks for its theory and
// practical papers.
type Subject struct {
	ID                 string     `json:"id" validate:"omitempty,uuid"`
	Name               string     `json:"name" validate:"required"`
	ClassID            string     `json:"class_id" validate:"required,uuid"`
	FullMarksTheory    int        `json:"full_marks_theory" validate:"gte=0"`
	FullMarksPractical int        `json:"full_marks_practical" validate:"gte=0"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty"`
}

// Exam is a school-wide examination event.
type Exam struct {
	ID        string    `json:"id" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Result holds one student's marks for one subject in one exam. Marks are
// pointers because a paper may not have been sat.
type Result struct {
	ID             string    `json:"id"`
	ExamID         string    `json:"exam_id" validate:"required,uuid"`
	StudentID      string    `json:"student_id" validate:"required,uuid"`
	SubjectID      string    `json:"subject_id" validate:"required,uuid"`
	TheoryMarks    *int      `json:"theory_marks,omitempty"`
	PracticalMarks *int      `json:"practical_marks,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MarksheetRow is one subject line on a student's marksheet.
type MarksheetRow struct {
	SubjectName        string `json:"subject_name"`
	FullMarksTheory    int    `json:"full_marks_theory"`
	FullMarksPractical int    `json:"full_marks_practical"`
	TheoryMarks        int    `json:"theory_marks"`
	PracticalMarks     int    `json:"practical_marks"`
}

// StudentMarksheet is the printable marksheet for one student in one exam.
type StudentMarksheet struct {
	Student *Student       `json:"student"`
	Class   *Class         `json:"class"`
	Exam    *Exam          `json:"exam"`
	Results []MarksheetRow `json:"results"`
}
