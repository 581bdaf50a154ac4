package dataset

import "errors"

var (
	// ErrInvalidInput indicates the feature argument (or combined formula data)
	// is not tabular: nil, zero columns, ragged rows, or non-numeric cells.
	ErrInvalidInput = errors.New("dataset: input is not tabular")

	// ErrShapeMismatch indicates the feature row count differs from the label length.
	ErrShapeMismatch = errors.New("dataset: feature rows and label length differ")

	// ErrInsufficientClasses indicates the label vector holds fewer than two classes.
	ErrInsufficientClasses = errors.New("dataset: labels must contain at least two classes")

	// ErrInsufficientClassSize indicates some class has fewer than two instances.
	ErrInsufficientClassSize = errors.New("dataset: every class needs at least two instances")

	// ErrInvalidFormula indicates a specification that is not a recognized
	// "response ~ predictors" symbolic form.
	ErrInvalidFormula = errors.New("dataset: malformed formula")

	// ErrUnknownColumn indicates a referenced column name is absent from the table.
	ErrUnknownColumn = errors.New("dataset: column not found")
)
