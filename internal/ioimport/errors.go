package ioimport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/nitpicker55555/phenodb/pkg/errcode"
)

func CSVError(path string, err error) error {
	msg := "Cannot read merged table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportCSVError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read %s: %w",
			fn, path, err),
	}
}

func MappingError(path string, err error) error {
	msg := "Cannot read species mapping <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportMappingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read mapping %s: %w",
			fn, path, err),
	}
}

func SpeciesError(err error) error {
	msg := "Cannot insert species vocabulary"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportReferenceError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot insert species: %w", fn, err),
	}
}

func StationsError(err error) error {
	msg := "Cannot insert stations"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportStationsError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot insert stations: %w", fn, err),
	}
}

func ObservationsError(err error) error {
	msg := "Cannot insert observations"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImportObservationsError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot insert observations: %w",
			fn, err),
	}
}
