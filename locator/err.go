package locator

import "github.com/omnifaces/locator/util/errs"

const (
	ErrCodeNameNotFound     string = "NAME_NOT_FOUND"
	ErrCodeDirectoryFailure string = "DIRECTORY_FAILURE"
	ErrCodeIllegalState     string = "ILLEGAL_STATE"
	ErrCodeIllegalArgument  string = "ILLEGAL_ARGUMENT"
)

var (
	// ErrNameNotFound marks a lookup whose name does not exist in the directory.
	//
	// Directory implementations return errors matching this sentinel
	// (errors.Is); the locator maps it to an absent Opt instead of an error,
	// and never caches the miss.
	ErrNameNotFound *errs.Err = errs.NewErrfCode(ErrCodeNameNotFound, "name not found")

	// ErrDirectoryFailure marks a directory failure other than not-found.
	//
	// Before it is surfaced, the locator drops its whole object cache; entries
	// resolved through a possibly broken directory session are not trusted.
	ErrDirectoryFailure *errs.Err = errs.NewErrfCode(ErrCodeDirectoryFailure, "directory lookup failed")

	// ErrIllegalState marks misuse of the API, e.g. re-configuring a consumed
	// Builder. Misuse panics with this error at the point of misuse.
	ErrIllegalState *errs.Err = errs.NewErrfCode(ErrCodeIllegalState, "illegal state")

	// ErrIllegalArgument marks invalid arguments, e.g. an unknown namespace.
	ErrIllegalArgument *errs.Err = errs.NewErrfCode(ErrCodeIllegalArgument, "illegal argument")
)
