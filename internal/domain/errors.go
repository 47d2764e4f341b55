package domain

import "errors"

var (
	// ErrStudentNotFound is returned when no student exists for an id.
	ErrStudentNotFound = errors.New("student not found")
	// ErrQuestNotFound indicates the quest content could not be loaded.
	ErrQuestNotFound = errors.New("quest not found")
	// ErrQuestionNotFound indicates a question id is not part of the quest.
	ErrQuestionNotFound = errors.New("question not found")
)
