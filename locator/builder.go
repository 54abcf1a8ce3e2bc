package locator

// Immutable configuration of an ObjectLocator.
//
// Produced once by Builder.Build; never mutated afterwards, so it is freely
// shared without synchronization. The zero value is not usable, always go
// through a Builder.
type Config struct {
	// Environment entries handed to the DirectoryProvider, e.g. host/port
	// style settings for the backing naming service.
	Environment map[string]string `json:"environment"`

	// Namespace prepended to unqualified lookup names.
	Namespace string `json:"namespace"`

	// Disable the object cache entirely.
	NoCaching bool `json:"noCaching"`

	// Cache objects of remote-style types too. By default remote objects
	// bypass the cache.
	CacheRemote bool `json:"cacheRemote"`

	// Registered name of the DirectoryProvider, empty when the locator was
	// built with an unregistered DirectoryFunc.
	Provider string `json:"provider"`
}

func (c Config) environmentCopy() map[string]string {
	if c.Environment == nil {
		return nil
	}
	m := make(map[string]string, len(c.Environment))
	for k, v := range c.Environment {
		m[k] = v
	}
	return m
}

// Builder for ObjectLocator.
//
// Each option may be set at most once; setting an option twice, or touching
// the builder after Build was called, panics with ErrIllegalState. Build
// applies defaults for unset options: nil environment, NamespaceModule,
// caching enabled, remote caching disabled.
//
// Not safe for concurrent use; build the locator once and share that instead.
type Builder struct {
	env            map[string]string
	namespace      string
	noCaching      bool
	noCachingSet   bool
	cacheRemote    bool
	cacheRemoteSet bool
	provider       string
	dirFunc        DirectoryProvider
	built          bool
}

// Create new ObjectLocator Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) mustMutable(option string, alreadySet bool) {
	if b.built {
		panic(ErrIllegalState.WithInternalMsg("builder already consumed by Build"))
	}
	if alreadySet {
		panic(ErrIllegalState.WithInternalMsg("option %s already set", option))
	}
}

// Set environment entries for the directory session. The map is copied.
func (b *Builder) Environment(env map[string]string) *Builder {
	b.mustMutable("Environment", b.env != nil)
	if env == nil {
		panic(ErrIllegalArgument.WithInternalMsg("environment map is nil"))
	}
	m := make(map[string]string, len(env))
	for k, v := range env {
		m[k] = v
	}
	b.env = m
	return b
}

// Select the namespace for unqualified names, one of NamespaceModule,
// NamespaceApp or NamespaceGlobal.
func (b *Builder) Namespace(ns string) *Builder {
	b.mustMutable("Namespace", b.namespace != "")
	if !isKnownNamespace(ns) {
		panic(ErrIllegalArgument.WithInternalMsg("unknown namespace '%s'", ns))
	}
	b.namespace = ns
	return b
}

// Disable the object cache; every lookup goes to the directory.
func (b *Builder) NoCaching() *Builder {
	b.mustMutable("NoCaching", b.noCachingSet)
	b.noCaching = true
	b.noCachingSet = true
	return b
}

// Cache remote-style objects too, instead of bypassing the cache for them.
func (b *Builder) CacheRemote() *Builder {
	b.mustMutable("CacheRemote", b.cacheRemoteSet)
	b.cacheRemote = true
	b.cacheRemoteSet = true
	return b
}

// Select a registered DirectoryProvider by name (see RegisterProvider).
func (b *Builder) Provider(name string) *Builder {
	b.mustMutable("Provider", b.provider != "" || b.dirFunc != nil)
	if _, ok := providerOf(name); !ok {
		panic(ErrIllegalArgument.WithInternalMsg("directory provider '%s' not registered", name))
	}
	b.provider = name
	return b
}

// Use f directly as the directory session factory.
//
// Locators built this way cannot be re-built from serialized form, their
// Config carries no provider name; prefer Provider for that.
func (b *Builder) DirectoryFunc(f DirectoryProvider) *Builder {
	b.mustMutable("DirectoryFunc", b.provider != "" || b.dirFunc != nil)
	if f == nil {
		panic(ErrIllegalArgument.WithInternalMsg("DirectoryProvider is nil"))
	}
	b.dirFunc = f
	return b
}

// Build the ObjectLocator, consuming the builder.
//
// Calling Build twice panics with ErrIllegalState. A directory provider must
// have been configured via Provider or DirectoryFunc.
func (b *Builder) Build() *ObjectLocator {
	if b.built {
		panic(ErrIllegalState.WithInternalMsg("builder already consumed by Build"))
	}
	b.built = true

	dirFunc := b.dirFunc
	if dirFunc == nil {
		p, ok := providerOf(b.provider)
		if !ok {
			panic(ErrIllegalState.WithInternalMsg("no directory provider configured"))
		}
		dirFunc = p
	}

	ns := b.namespace
	if ns == "" {
		ns = NamespaceModule
	}

	cfg := Config{
		Environment: b.env,
		Namespace:   ns,
		NoCaching:   b.noCaching,
		CacheRemote: b.cacheRemote,
		Provider:    b.provider,
	}
	return newLocator(cfg, dirFunc)
}
