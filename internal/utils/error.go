// Package utils collects the small cross-cutting helpers every other package
// in this module leans on: a structured error type, assertions, mutex
// helpers and background-task scaffolding.
package utils

import (
	"fmt"
	"log"
	"reflect"
)

// Error is a structured extension of the standard "error" interface. Most
// packages in this module return *Error instead of a bare error so that
// failures carry a stable code and the component that raised them;
// internal/plugin reports load failures as its own *plugin.Error.
type Error struct {
	Code   int
	Text   string
	Origin interface{}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e != nil {
		return fmt.Sprintf("%v (%d): %s", e.Origin, e.Code, e.Text)
	}
	return "no_err"
}

// NewErr builds a new *Error from scratch.
// "who" is the owning component, "code" a stable error code, "txt" an
// optional printf-style message.
func NewErr(who interface{}, code int, txt string, args ...interface{}) *Error {
	return &Error{Code: code, Text: fmt.Sprintf(txt, args...), Origin: reflect.TypeOf(who)}
}

// NewErrFromError wraps a standard error as an *Error. Returns nil if err is nil.
func NewErrFromError(who interface{}, code int, err error) *Error {
	if err == nil {
		return nil
	}
	return NewErr(who, code, err.Error())
}

// NewErrs merges several errors into one compound *Error. The first
// non-nil error is the base; the rest are appended to its text.
func NewErrs(errs ...*Error) *Error {
	var res *Error
	for _, e := range errs {
		if e == nil {
			continue
		}
		if res == nil {
			res = e
			continue
		}
		res.Text += fmt.Sprintf("; WITH ERROR: %s (%d)", e.Text, e.Code)
	}
	return res
}

// Code returns the error code of an *Error, or 0 if nil.
func Code(err *Error) int {
	if err != nil {
		return err.Code
	}
	return 0
}

// Check logs a non-nil error and otherwise does nothing. Used at the
// boundaries marks "degrade to stdout, never fatal" (result
// artefact I/O).
func Check(err error) {
	if err == nil {
		return
	}
	if v := reflect.ValueOf(err); v.Kind() == reflect.Ptr && v.IsNil() {
		return
	}
	log.Println("ERROR:", err)
}
