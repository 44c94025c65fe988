package main

import "errors"

// ErrSerialization is returned when a record cannot be encoded as JSON.
var ErrSerialization = errors.New("record serialization failed")

// ErrFileExists is returned when a record's computed file name is already taken.
var ErrFileExists = errors.New("record file already exists")

// ErrFileSystem is returned when the record file cannot be created.
var ErrFileSystem = errors.New("record file could not be created")

// ErrInvalidInput is returned when the input payload is invalid.
var ErrInvalidInput = errors.New("invalid input")
