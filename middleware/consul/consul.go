package consul

import (
	"strings"

	"github.com/hashicorp/consul/api"
	"github.com/omnifaces/locator/locator"
	"github.com/omnifaces/locator/util/errs"
)

// Environment entries understood by the Consul directory provider.
const (
	PropConsulAddress = "consul.address"
	PropConsulToken   = "consul.token"
)

func init() {
	locator.RegisterProvider("consul", NewDirectory)
}

// Directory backed by the Consul KV store.
//
// A qualified lookup name maps to a KV key (see KVKey); the resolved object
// is the key's value, as []byte.
type ConsulDirectory struct {
	kv *api.KV
}

// Create a Consul client using the locator environment entries.
//
// With a nil env the client uses Consul's own defaults (local agent).
func NewDirectory(env map[string]string) (locator.Directory, error) {
	cfg := api.DefaultConfig()
	if addr, ok := env[PropConsulAddress]; ok {
		cfg.Address = addr
	}
	if tok, ok := env[PropConsulToken]; ok {
		cfg.Token = tok
	}

	c, err := api.NewClient(cfg)
	if err != nil {
		return nil, errs.WrapErrf(err, "failed to create new Consul client on '%s'", cfg.Address)
	}
	locator.Infof("Created Consul Client on %s", cfg.Address)
	return &ConsulDirectory{kv: c.KV()}, nil
}

func (d *ConsulDirectory) Lookup(name string) (any, error) {
	key := KVKey(name)
	pair, _, err := d.kv.Get(key, nil)
	if err != nil {
		return nil, errs.WrapErrf(err, "get consul key '%s' failed", key)
	}
	if pair == nil {
		return nil, locator.ErrNameNotFound.WithInternalMsg("consul key '%s' missing", key)
	}
	return pair.Value, nil
}

// Map a qualified lookup name to a Consul KV key, e.g.
//
//	"ns:module/Foo!example.Foo" -> "module/Foo!example.Foo"
func KVKey(name string) string {
	return strings.TrimPrefix(name, "ns:")
}
