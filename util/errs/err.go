package errs

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// Coded error with optional cause and captured stacktrace.
//
//	Use NewErrf(...) / NewErrfCode(...) to instantiate.
type Err struct {
	code        string // error code, used for errors.Is matching.
	msg         string // error message shown to the caller.
	internalMsg string // extra context, typically only logged.
	stack       string
	err         error
}

func (e *Err) Cause() error {
	return e.err
}

func (e *Err) InternalMsg() string {
	return e.internalMsg
}

func (e *Err) Msg() string {
	return e.msg
}

func (e *Err) Code() string {
	return e.code
}

func (e *Err) StackTrace() string {
	return e.stack
}

func (e *Err) HasCode() bool {
	return strings.TrimSpace(e.code) != ""
}

func (e *Err) Error() string {
	tok := []string{}
	if e.msg != "" {
		tok = append(tok, e.msg)
	}
	if e.internalMsg != "" {
		tok = append(tok, e.internalMsg)
	}
	uw := e.Unwrap()
	if uw != nil {
		tok = append(tok, uw.Error())
	}
	return strings.Join(tok, ", ")
}

func (e *Err) Unwrap() error {
	return e.err
}

// Implements *Err Is check.
//
// Returns true, if both are *Err and the code matches.
//
// Wrapf and WithInternalMsg always create a new error, so the same sentinel
// created using 'errs.NewErrfCode(...)' can be reused:
//
//	var ErrNameNotFound = errs.NewErrfCode(...)
//
//	var e1 = ErrNameNotFound.Wrapf(cause, ...)
//
//	errors.Is(e1, ErrNameNotFound)
func (e *Err) Is(target error) bool {
	if te, ok := target.(*Err); ok && e.code != "" && e.code == te.code {
		return true
	}
	return false
}

// Create new *Err to wrap the cause error.
//
// If cause is nil, nil is returned.
func (e *Err) Wrap(cause error) error {
	if cause == nil {
		return nil
	}
	n := e.copyNew()
	n.err = cause
	n.withStack()
	return n
}

// Create new *Err to wrap the cause error with extra context.
//
// If cause is nil, nil is returned.
func (e *Err) Wrapf(cause error, internalMsg string, args ...any) error {
	if cause == nil {
		return nil
	}
	n := e.copyNew()
	n.err = cause
	n.withStack()
	if len(args) > 0 {
		n.internalMsg = fmt.Sprintf(internalMsg, args...)
	} else {
		n.internalMsg = internalMsg
	}
	return n
}

func (e *Err) WithInternalMsg(msg string, args ...any) *Err {
	n := e.copyNew()
	n.withStack()
	if len(args) > 0 {
		n.internalMsg = fmt.Sprintf(msg, args...)
	} else {
		n.internalMsg = msg
	}
	return n
}

func (e *Err) WithCode(code string) *Err {
	n := e.copyNew()
	n.code = code
	return n
}

func (e *Err) copyNew() *Err {
	n := new(Err)
	n.code = e.code
	n.msg = e.msg
	n.internalMsg = e.internalMsg
	n.stack = e.stack
	n.err = e.err
	return n
}

func (e *Err) withStack() *Err {
	e.stack = stack(3)
	return e
}

// Create new *Err with message.
func NewErrf(msg string, args ...any) *Err {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	n := &Err{msg: msg}
	n.withStack()
	return n
}

// Create new *Err with message and error code.
func NewErrfCode(code string, msg string, args ...any) *Err {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	n := &Err{msg: msg, code: code}
	n.withStack()
	return n
}

// Wrap an error to create new *Err with message.
//
// If the wrapped err is nil, nil is returned.
func WrapErrf(err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	n := &Err{msg: msg, err: err}
	n.withStack()
	return n
}

// Unwrap err repeatedly to find the deepest captured stacktrace.
func UnwrapErrStack(err error) (string, bool) {
	var st string
	var ue error = err
	for {
		if e, ok := ue.(*Err); ok && e != nil {
			st = e.stack
		}
		u := errors.Unwrap(ue)
		if u == nil {
			break
		}
		ue = u
	}
	return st, st != ""
}

var stackPool = sync.Pool{
	New: func() any {
		var v []uintptr = make([]uintptr, 50)
		return &v
	},
}

func stack(n int) string {
	pcs := stackPool.Get().(*[]uintptr)
	defer func() {
		clear(*pcs)
		stackPool.Put(pcs)
	}()

	length := runtime.Callers(n, *pcs)
	frames := runtime.CallersFrames((*pcs)[:length])
	b := strings.Builder{}

	for {
		f, next := frames.Next()
		if !next {
			break
		}
		b.WriteString(fmt.Sprintf("\n\t%v\n\t\t%v:%v", f.Function, f.File, f.Line))
	}
	return b.String()
}
