package locator

import (
	"os"
	"path"
	"strings"
	"testing"
)

func init() {
	RegisterProvider("config-stub", func(env map[string]string) (Directory, error) {
		return newStubDirectory(), nil
	})
}

func TestBuilderFromConfigFile(t *testing.T) {
	conf := `
locator:
  provider: "config-stub"
  namespace: "ns:global/"
  cache-remote: true
  environment:
    zookeeper.hosts: "zk1:2181,zk2:2181"
`
	f := path.Join(t.TempDir(), "conf.yml")
	if err := os.WriteFile(f, []byte(conf), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := BuilderFromConfigFile(f)
	if err != nil {
		t.Fatal(err)
	}

	cfg := b.Build().Config()
	if cfg.Provider != "config-stub" {
		t.Fatalf("unexpected provider: %v", cfg.Provider)
	}
	if cfg.Namespace != NamespaceGlobal {
		t.Fatalf("unexpected namespace: %v", cfg.Namespace)
	}
	if !cfg.CacheRemote {
		t.Fatal("cache-remote should be set")
	}
	if cfg.NoCaching {
		t.Fatal("no-caching should not be set")
	}
	if cfg.Environment["zookeeper.hosts"] != "zk1:2181,zk2:2181" {
		t.Fatalf("unexpected environment: %v", cfg.Environment)
	}
}

func TestBuilderFromConfigReader(t *testing.T) {
	conf := `
locator:
  provider: "config-stub"
  no-caching: true
`
	b, err := BuilderFromConfigReader(strings.NewReader(conf), "yaml")
	if err != nil {
		t.Fatal(err)
	}

	cfg := b.Build().Config()
	if !cfg.NoCaching {
		t.Fatal("no-caching should be set")
	}
	if cfg.Namespace != NamespaceModule {
		t.Fatalf("unset namespace should default, but %v", cfg.Namespace)
	}
}

func TestBuilderFromConfigBadNamespace(t *testing.T) {
	conf := `
locator:
  provider: "config-stub"
  namespace: "ns:wrong/"
`
	_, err := BuilderFromConfigReader(strings.NewReader(conf), "yaml")
	if err == nil {
		t.Fatal("should have failed")
	}
}

func TestBuilderFromConfigFileMissing(t *testing.T) {
	_, err := BuilderFromConfigFile(path.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Fatal("should have failed")
	}
}
