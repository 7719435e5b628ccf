package ioextract

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/pkg/errcode"
)

func DirNotFoundError(dir string, err error) error {
	msg := "Cannot read source directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExtractDirNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read directory %s: %w",
			fn, dir, err),
	}
}

func DocumentError(path string, err error) error {
	msg := "Cannot extract tables from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExtractDocumentError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot extract %s: %w",
			fn, path, err),
	}
}

func OutputError(path string, err error) error {
	msg := "Cannot write extraction output to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExtractOutputError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write %s: %w",
			fn, path, err),
	}
}
