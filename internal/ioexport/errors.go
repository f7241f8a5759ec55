package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/errcode"
)

func FormatError(format string) error {
	msg := "Unknown export format <em>%s</em>, use json, csv, tsv or yaml"
	return &gn.Error{
		Code: errcode.ExportFormatError,
		Msg:  msg,
		Vars: []any{format},
		Err:  fmt.Errorf("unknown export format %q", format),
	}
}

func WriteError(format string, err error) error {
	msg := "Cannot write <em>%s</em> export"
	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: []any{format},
		Err:  fmt.Errorf("cannot write %s export: %w", format, err),
	}
}
