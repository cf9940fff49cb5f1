package status

import (
	"fmt"
	"io"
	"runtime"

	"github.com/pkg/errors"
)

// Code identifies the outcome of the most recent fallible operation on a
// container.
type Code byte

// Outcome codes.
const (
	Success Code = iota
	OutOfMemory
	OutOfBounds
	InvalidSize
	InvalidIterator
)

// String returns the fixed diagnostic string of the code.
func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case OutOfMemory:
		return "out of memory"
	case OutOfBounds:
		return "out of bounds"
	case InvalidSize:
		return "invalid size"
	case InvalidIterator:
		return "invalid iterator"
	default:
		return "???"
	}
}

// Errors matching the failure codes. Operations wrap these so callers can
// test identity with errors.Is.
var (
	ErrOutOfMemory     = errors.New("out of memory")
	ErrOutOfBounds     = errors.New("out of bounds")
	ErrInvalidSize     = errors.New("invalid size")
	ErrInvalidIterator = errors.New("invalid iterator")
)

// Site is the source location captured at the moment a failure was recorded.
type Site struct {
	File string
	Line int
}

// IsZero reports whether no site has been captured.
func (s Site) IsZero() bool {
	return s.File == "" && s.Line == 0
}

// Record is the per-container slot storing the outcome of the most recent
// fallible operation together with the call site of the failure.
type Record struct {
	code Code
	site Site
}

// Fail stores c and captures the source location skip frames above this call.
// skip follows the runtime.Caller convention: 1 is the caller of Fail, 2 is
// its caller, and so on.
func (r *Record) Fail(c Code, skip int) {
	r.code = c
	r.site = Site{}
	if _, file, line, ok := runtime.Caller(skip); ok {
		r.site = Site{File: file, Line: line}
	}
}

// OK clears the record to Success with an empty site.
func (r *Record) OK() {
	r.code = Success
	r.site = Site{}
}

// Err returns the recorded code.
func (r *Record) Err() Code {
	return r.code
}

// ErrorSite returns the recorded site.
func (r *Record) ErrorSite() Site {
	return r.site
}

// Perror writes the diagnostic line of the record to w:
//
//	error: [prefix: ]<message> @ <file>:<line>
//
// The site part is omitted when no site has been captured.
func (r *Record) Perror(w io.Writer, prefix string) {
	msg := r.code.String()
	if prefix != "" {
		msg = prefix + ": " + msg
	}
	if r.site.IsZero() {
		fmt.Fprintf(w, "error: %s\n", msg)
		return
	}
	fmt.Fprintf(w, "error: %s @ %s:%d\n", msg, r.site.File, r.site.Line)
}
