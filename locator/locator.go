package locator

import (
	"errors"
	"sync"

	"github.com/omnifaces/locator/util"
	"github.com/omnifaces/locator/util/hash"
)

// Directory is the underlying naming service queried by ObjectLocator.
//
// Lookup resolves a qualified name to a live object. A missing name is
// signalled with an error matching ErrNameNotFound; any other error is
// treated as a directory failure and poisons the locator's cache.
//
// Implementations need no internal locking for Lookup, the locator serializes
// all directory calls behind its own mutex.
type Directory interface {
	Lookup(name string) (any, error)
}

// DirectoryProvider creates a Directory session from environment entries.
//
// A nil env is passed when the locator was configured without environment
// entries; implementations then fall back to their defaults.
type DirectoryProvider func(env map[string]string) (Directory, error)

var providers = hash.NewRWMap[string, DirectoryProvider]()

// Register a named DirectoryProvider.
//
// Directory middlewares call this in their init func, so that config files
// and serialized locators can refer to the backend by name. Registering the
// same name twice panics with ErrIllegalState.
func RegisterProvider(name string, p DirectoryProvider) {
	if name == "" || p == nil {
		panic(ErrIllegalArgument.WithInternalMsg("provider name and func are both required"))
	}
	if _, ok := providers.Get(name); ok {
		panic(ErrIllegalState.WithInternalMsg("directory provider '%s' already registered", name))
	}
	providers.Put(name, p)
}

func providerOf(name string) (DirectoryProvider, bool) {
	if name == "" {
		return nil, false
	}
	return providers.Get(name)
}

// Cached, lock-guarded named-object locator.
//
// The directory session is created lazily on first lookup and reused for the
// locator's lifetime; it is never closed by the locator. All directory calls
// are serialized behind one mutex, cache hits do not take it.
//
// Safe for concurrent use by multiple goroutines.
type ObjectLocator struct {
	config Config
	mu     sync.Mutex
	dir    *Lazy[Directory]
	cache  *hash.RWMap[string, any]
}

func newLocator(cfg Config, provider DirectoryProvider) *ObjectLocator {
	l := &ObjectLocator{
		config: cfg,
		cache:  hash.NewRWMap[string, any](),
	}
	l.dir = NewLazy(func() (Directory, error) {
		env := cfg.environmentCopy()
		if len(env) == 0 {
			// ask for a default-environment session instead of passing an
			// empty table
			env = nil
		}
		return provider(env)
	})
	return l
}

// Config returns a copy of the locator's configuration.
func (l *ObjectLocator) Config() Config {
	c := l.config
	c.Environment = l.config.environmentCopy()
	return c
}

// Get the object bound to name, qualified with the configured namespace.
//
// Returns an empty Opt when the name is not bound. Successful lookups are
// cached; see GetObjectNoCache to bypass the cache.
func (l *ObjectLocator) GetObject(name string) (util.Opt[any], error) {
	return l.getObject(name, false)
}

// Get the object bound to name, always bypassing the cache.
//
// The result is not stored either, a later GetObject for the same name still
// hits the directory.
func (l *ObjectLocator) GetObjectNoCache(name string) (util.Opt[any], error) {
	return l.getObject(name, true)
}

// Get the environment entry bound to name.
//
// Environment entries live in their own namespace; an absent entry yields an
// empty Opt.
func (l *ObjectLocator) GetEnvEntry(name string) (util.Opt[any], error) {
	return l.getObject(namespaceEnv+name, false)
}

// Drop every cached object.
//
// Safe to call concurrently with lookups; in-flight lookups observe either
// the old or the cleared cache.
func (l *ObjectLocator) ClearCache() {
	l.cache.Clear()
	cacheClears.Inc()
}

// Get the object for type T from locator l.
//
// The lookup name is derived from T (see LookupName). Remote-style types
// bypass the cache unless the locator was built with CacheRemote.
func GetTyped[T any](l *ObjectLocator) (util.Opt[T], error) {
	name, remote := LookupName[T]()
	noCache := remote && !l.config.CacheRemote

	o, err := l.getObject(name, noCache)
	if err != nil || !o.IsPresent {
		return util.EmptyOpt[T](), err
	}
	v, ok := o.Val.(T)
	if !ok {
		return util.EmptyOpt[T](), ErrDirectoryFailure.WithInternalMsg(
			"object bound to '%s' is %T, not the requested type", name, o.Val)
	}
	return util.OptWith(v), nil
}

func (l *ObjectLocator) getObject(name string, noCache bool) (util.Opt[any], error) {
	key := Qualify(l.config.Namespace, name)

	if noCache || l.config.NoCaching {
		return l.resolve(key, false)
	}

	if v, ok := l.cache.Get(key); ok {
		cacheHits.Inc()
		return util.OptWith(v), nil
	}
	cacheMisses.Inc()
	return l.resolve(key, true)
}

// resolve performs the directory round-trip behind the locator mutex and,
// when store is set, caches the result.
func (l *ObjectLocator) resolve(key string, store bool) (util.Opt[any], error) {
	l.mu.Lock()
	dir, err := l.dir.Get()
	if err != nil {
		l.mu.Unlock()
		lookupFailures.Inc()
		l.ClearCache()
		return util.EmptyOpt[any](), ErrDirectoryFailure.Wrapf(err, "creating directory session failed")
	}
	v, err := dir.Lookup(key)
	l.mu.Unlock()

	if err != nil {
		if errors.Is(err, ErrNameNotFound) {
			lookupMisses.Inc()
			Debugf("Name '%s' not bound in directory", key)
			return util.EmptyOpt[any](), nil
		}

		// the directory session may be broken, previously resolved entries
		// are no longer trusted
		lookupFailures.Inc()
		l.ClearCache()
		Errorf("Directory lookup for '%s' failed, object cache dropped, %v", key, err)
		return util.EmptyOpt[any](), ErrDirectoryFailure.Wrapf(err, "lookup '%s' failed", key)
	}

	if store {
		l.cache.Put(key, v)
	}
	return util.OptWith(v), nil
}
