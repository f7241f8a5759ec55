package iorest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/errcode"
)

// NotFoundError is returned when a remote service reports that the
// requested record does not exist.
func NotFoundError(url string, status int) error {
	msg := "Remote record not found at <em>%s</em>"
	return &gn.Error{
		Code: errcode.RemoteNotFoundError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("GET %s: status %d", url, status),
	}
}

// NoSequenceError is returned when a sequence record exists but carries
// no residues, for example an obsolete UniProt entry.
func NoSequenceError(url string) error {
	msg := "Remote record at <em>%s</em> has no sequence"
	return &gn.Error{
		Code: errcode.RemoteNotFoundError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("GET %s: record has an empty sequence", url),
	}
}

// UnavailableError is returned when a remote service cannot be reached
// or its answer cannot be used.
func UnavailableError(url string, err error) error {
	msg := "Remote service at <em>%s</em> is unavailable"
	return &gn.Error{
		Code: errcode.RemoteUnavailableError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("GET %s: %w", url, err),
	}
}
