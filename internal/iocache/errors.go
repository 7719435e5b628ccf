package iocache

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/pkg/errcode"
)

func OpenError(path string, err error) error {
	msg := "Cannot open result cache at <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CacheOpenError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open cache %s: %w",
			fn, path, err),
	}
}

func ReadError(key string, err error) error {
	msg := "Cannot read cached result <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CacheReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read cache key %s: %w",
			fn, key, err),
	}
}

func WriteError(key string, err error) error {
	msg := "Cannot store cached result <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CacheWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write cache key %s: %w",
			fn, key, err),
	}
}
