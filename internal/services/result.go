// Package services exposes validated CRUD operations per entity family.
// Every public operation returns a uniform Result envelope; no failure is
// ever thrown past the service boundary. Callers inspect the success flag,
// never handle storage errors.
package services

import (
	"errors"

	"github.com/socialsync/socialdb/internal/models"
	"gorm.io/gorm"
)

// ErrKind classifies a failed Result for callers that need to pick a
// transport-level response. It is not part of the serialized envelope.
type ErrKind int

const (
	KindNone ErrKind = iota
	// KindValidation: a record failed a schema constraint.
	KindValidation
	// KindDuplicate: a uniqueness constraint was violated, whether caught
	// by the advisory pre-check or by the storage-level unique index.
	KindDuplicate
	// KindNotFound: a lookup by identifier matched no record.
	KindNotFound
	// KindMalformedID: the identifier is not well-formed; raised before
	// any query runs.
	KindMalformedID
	// KindUnknown: any other storage failure.
	KindUnknown
)

// Result is the uniform envelope every service operation returns.
// Data is present iff Success; Error carries a human-readable message
// iff not.
type Result[T any] struct {
	Success bool    `json:"success"`
	Data    T       `json:"data,omitempty"`
	Error   string  `json:"error,omitempty"`
	Kind    ErrKind `json:"-"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](kind ErrKind, msg string) Result[T] {
	return Result[T]{Error: msg, Kind: kind}
}

// failFrom maps a storage or validation error onto the envelope. The
// entity-specific messages are supplied by the caller; unclassified errors
// fall through with their own description.
func failFrom[T any](err error, validationMsg, duplicateMsg, notFoundMsg string) Result[T] {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		return fail[T](KindValidation, validationMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fail[T](KindDuplicate, duplicateMsg)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fail[T](KindNotFound, notFoundMsg)
	}
	return fail[T](KindUnknown, err.Error())
}
