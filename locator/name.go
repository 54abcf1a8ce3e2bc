package locator

import (
	"reflect"
	"strings"

	"github.com/omnifaces/locator/util/hash"
)

// Lookup namespaces.
//
// A qualified name starts with the reserved "ns:" marker; qualifying an
// already qualified name is a no-op.
const (
	nsMarker = "ns:"

	// Module-local names, the default namespace.
	NamespaceModule = "ns:module/"

	// Application-wide names.
	NamespaceApp = "ns:app/"

	// Globally shared names.
	NamespaceGlobal = "ns:global/"

	// Environment entries, used by ObjectLocator.GetEnvEntry.
	namespaceEnv = "ns:env/"
)

var (
	suffixLocal  = "local"
	suffixRemote = "remote"

	// reflect.Type -> derived name, the derivation is pure so the cache is
	// shared process-wide.
	typeNames = hash.NewRWMap[reflect.Type, typeName]()
)

type typeName struct {
	name   string
	remote bool
}

// Derive the lookup name for type T.
//
// The type's simple name is stripped of a case-insensitive "Local" or
// "Remote" suffix, then qualified with the full type name:
//
//	type FooRemote ...  ->  "Foo!<pkgpath>.FooRemote", remote = true
//
// The remote flag reports whether T denotes a remote-style object. The
// derivation is memoized per type.
func LookupName[T any]() (name string, remote bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	tn, _ := typeNames.GetElse(t, deriveTypeName)
	return tn.name, tn.remote
}

func deriveTypeName(t reflect.Type) typeName {
	simple := t.Name()
	full := t.String()
	if pp := t.PkgPath(); pp != "" {
		full = pp + "." + simple
	}

	stripped := simple
	remote := false
	lower := strings.ToLower(simple)
	if strings.HasSuffix(lower, suffixRemote) {
		stripped = simple[:len(simple)-len(suffixRemote)]
		remote = true
	} else if strings.HasSuffix(lower, suffixLocal) {
		stripped = simple[:len(simple)-len(suffixLocal)]
	}
	return typeName{name: stripped + "!" + full, remote: remote}
}

// Qualify name with namespace ns.
//
// Names already carrying the "ns:" marker are returned as-is, so the
// operation is idempotent.
func Qualify(ns string, name string) string {
	if strings.HasPrefix(name, nsMarker) {
		return name
	}
	return ns + name
}

func isKnownNamespace(ns string) bool {
	switch ns {
	case NamespaceModule, NamespaceApp, NamespaceGlobal:
		return true
	}
	return false
}
