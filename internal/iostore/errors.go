package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/errcode"
)

// StorageError wraps a failed catalog read or write. Op names the
// operation, for example "insert protein".
func StorageError(op string, err error) error {
	msg := "Catalog storage failed to <em>%s</em>"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StorageError,
		Msg:  msg,
		Vars: []any{op},
		Err:  fmt.Errorf("from %s: cannot %s: %w", fn.Name(), op, err),
	}
}
