package app

import "errors"

var (
	// ErrEmptyFile means a visited path has zero bytes.
	ErrEmptyFile = errors.New("archtool: file is empty")

	// ErrNoFilesFound means Path named a directory with no regular files.
	ErrNoFilesFound = errors.New("archtool: no files found")
)
