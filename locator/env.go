package locator

import (
	"time"

	"github.com/omnifaces/locator/util"
	"github.com/spf13/cast"
)

// Typed environment entry accessors.
//
// Directory backends bind environment entries as strings or bytes; these
// helpers coerce the bound value to the requested type, failing with
// ErrIllegalArgument when the value cannot be converted.

func (l *ObjectLocator) GetEnvEntryStr(name string) (util.Opt[string], error) {
	return envEntryAs(l, name, cast.ToStringE)
}

func (l *ObjectLocator) GetEnvEntryInt(name string) (util.Opt[int], error) {
	return envEntryAs(l, name, cast.ToIntE)
}

func (l *ObjectLocator) GetEnvEntryBool(name string) (util.Opt[bool], error) {
	return envEntryAs(l, name, cast.ToBoolE)
}

func (l *ObjectLocator) GetEnvEntryDur(name string) (util.Opt[time.Duration], error) {
	return envEntryAs(l, name, cast.ToDurationE)
}

func envEntryAs[T any](l *ObjectLocator, name string, conv func(any) (T, error)) (util.Opt[T], error) {
	o, err := l.GetEnvEntry(name)
	if err != nil || !o.IsPresent {
		return util.EmptyOpt[T](), err
	}

	// byte slices are common for KV-style backends, coerce to string first
	val := o.Val
	if buf, ok := val.([]byte); ok {
		val = string(buf)
	}

	v, err := conv(val)
	if err != nil {
		return util.EmptyOpt[T](), ErrIllegalArgument.Wrapf(err, "env entry '%s' holds incompatible value", name)
	}
	return util.OptWith(v), nil
}
