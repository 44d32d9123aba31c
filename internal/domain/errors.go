package domain

import "errors"

var (
	// ErrUnknownOperator is returned when an operator symbol is not one of + - * ÷.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrWorksheetNotFound indicates the worksheet could not be loaded.
	ErrWorksheetNotFound = errors.New("worksheet not found")
	// ErrInvalidWorksheet indicates a worksheet item cannot become a problem.
	ErrInvalidWorksheet = errors.New("invalid worksheet")
	// ErrNoProblems is returned when a problem source yields an empty sheet.
	ErrNoProblems = errors.New("no problems to solve")
	// ErrSeatTaken is returned when another learner already holds the drill seat.
	ErrSeatTaken = errors.New("another drill is in progress")
)
