package consul

import "testing"

func TestKVKey(t *testing.T) {
	k := KVKey("ns:app/Foo!example.Foo")
	if k != "app/Foo!example.Foo" {
		t.Fatalf("unexpected key: %v", k)
	}

	k = KVKey("Foo")
	if k != "Foo" {
		t.Fatalf("unexpected key: %v", k)
	}
}
