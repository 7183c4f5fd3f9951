package types

import "errors"

var (
	// ErrEmptyInput indicates that a CSV stream ended before a single data row
	// could be parsed. No partial result is produced in that case.
	ErrEmptyInput = errors.New("CSV file appeared empty or could not be parsed")

	// ErrNoFileUploaded indicates a process-csv request without a file part.
	ErrNoFileUploaded = errors.New("no file uploaded")
)
