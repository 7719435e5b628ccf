package ioquery

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/pkg/errcode"
)

// SourceError marks a query failure with the source it came from, so a
// combined request can report which database broke.
func SourceError(source string, err error) error {
	msg := "Query against source <em>%s</em> failed"
	vars := []any{source}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.QuerySourceError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: source %s: %w",
			fn, source, err),
	}
}

func UnknownSourceError(source string) error {
	msg := "Unknown source <em>%s</em>, expected pheno, pheno_new or both"
	vars := []any{source}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.QueryUnknownSourceError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown source %s", fn, source),
	}
}
