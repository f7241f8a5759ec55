package catalog

import (
	"errors"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/errcode"
)

// Outcome is the kind of a successful catalog write.
type Outcome int

const (
	Added Outcome = iota + 1
	AlreadyExists
	Deleted
	Updated
)

var outcomeNames = map[Outcome]string{
	Added:         "added",
	AlreadyExists: "already exists",
	Deleted:       "deleted",
	Updated:       "updated",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

// Result reports a successful write.
type Result struct {
	Accession string
	Outcome   Outcome
	Message   string
}

// Kind is the category of a failed catalog operation.
type Kind int

const (
	UnknownKind Kind = iota
	RemoteNotFound
	RemoteUnavailable
	InvalidInput
	ReferentialViolation
	StorageFailure
)

func (k Kind) String() string {
	switch k {
	case RemoteNotFound:
		return "remote not found"
	case RemoteUnavailable:
		return "remote unavailable"
	case InvalidInput:
		return "invalid input"
	case ReferentialViolation:
		return "referential violation"
	case StorageFailure:
		return "storage failure"
	default:
		return "unknown"
	}
}

// KindOf returns the Kind of an error produced by a Catalog.
func KindOf(err error) Kind {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return UnknownKind
	}
	switch gnErr.Code {
	case errcode.RemoteNotFoundError:
		return RemoteNotFound
	case errcode.RemoteUnavailableError:
		return RemoteUnavailable
	case errcode.InvalidAccessionError, errcode.InvalidUpdateError:
		return InvalidInput
	case errcode.ReferentialViolationError:
		return ReferentialViolation
	case errcode.StorageError:
		return StorageFailure
	default:
		return UnknownKind
	}
}
