package locator

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/omnifaces/locator/util/errs"
)

var jsonCfg = jsoniter.Config{EscapeHTML: true}.Froze()

// MarshalJSON serializes the locator as its Config only.
//
// The mutex, the directory session and the object cache are runtime state and
// are deliberately left out; a deserialized locator starts fresh.
func (l *ObjectLocator) MarshalJSON() ([]byte, error) {
	return jsonCfg.Marshal(l.Config())
}

// UnmarshalJSON rebuilds the locator from a serialized Config, re-running the
// same construction path used for a fresh instance: new lazy directory
// session, empty cache.
//
// The Config must name a registered provider; locators built with an ad hoc
// DirectoryFunc cannot round-trip.
func (l *ObjectLocator) UnmarshalJSON(buf []byte) error {
	var cfg Config
	if err := jsonCfg.Unmarshal(buf, &cfg); err != nil {
		return errs.WrapErrf(err, "unmarshal locator config failed")
	}

	p, ok := providerOf(cfg.Provider)
	if !ok {
		return ErrIllegalState.WithInternalMsg("directory provider '%s' not registered", cfg.Provider)
	}
	if cfg.Namespace == "" {
		cfg.Namespace = NamespaceModule
	}

	n := newLocator(cfg, p)
	l.config = n.config
	l.dir = n.dir
	l.cache = n.cache
	return nil
}
