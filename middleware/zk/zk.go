package zk

import (
	"errors"
	"strings"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/omnifaces/locator/locator"
	"github.com/omnifaces/locator/util/errs"
	"github.com/spf13/cast"
)

// Environment entries understood by the ZooKeeper directory provider.
const (
	PropZkHosts          = "zookeeper.hosts"           // comma separated host:port list
	PropZkSessionTimeout = "zookeeper.session-timeout" // seconds, default 5
)

func init() {
	locator.RegisterProvider("zookeeper", NewDirectory)
}

// Directory backed by ZooKeeper znodes.
//
// A qualified lookup name maps to a znode path (see ZnodePath); the znode's
// data is the resolved object, as []byte.
type ZKDirectory struct {
	conn *zk.Conn
}

// Connect to ZooKeeper using the locator environment entries.
//
// zk connects in the background; lookups issued before the session is
// established block inside the zk client.
func NewDirectory(env map[string]string) (locator.Directory, error) {
	hosts := []string{"localhost:2181"}
	if h, ok := env[PropZkHosts]; ok {
		hosts = strings.Split(h, ",")
		for i := range hosts {
			hosts[i] = strings.TrimSpace(hosts[i])
		}
	}

	timeout := 5
	if t, ok := env[PropZkSessionTimeout]; ok {
		n, err := cast.ToIntE(t)
		if err != nil {
			return nil, errs.WrapErrf(err, "illegal %s value '%s'", PropZkSessionTimeout, t)
		}
		timeout = n
	}

	locator.Infof("Connecting to Zookeeper: %+v", hosts)
	c, _, err := zk.Connect(hosts, time.Second*time.Duration(timeout))
	if err != nil {
		return nil, errs.WrapErrf(err, "connect zookeeper failed")
	}
	return &ZKDirectory{conn: c}, nil
}

func (d *ZKDirectory) Lookup(name string) (any, error) {
	p := ZnodePath(name)
	buf, _, err := d.conn.Get(p)
	if err != nil {
		return nil, TranslateErr(err, p)
	}
	return buf, nil
}

// Map a zk error for path p to the locator error taxonomy.
func TranslateErr(err error, p string) error {
	if errors.Is(err, zk.ErrNoNode) {
		return locator.ErrNameNotFound.Wrapf(err, "znode '%s' missing", p)
	}
	return errs.WrapErrf(err, "get znode '%s' failed", p)
}

// Map a qualified lookup name to a znode path, e.g.
//
//	"ns:module/Foo!example.Foo" -> "/module/Foo!example.Foo"
func ZnodePath(name string) string {
	name = strings.TrimPrefix(name, "ns:")
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	return name
}
