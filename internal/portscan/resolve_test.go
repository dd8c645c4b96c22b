package portscan

import "testing"

func TestResolveTarget_LiteralIPv4(t *testing.T) {
	ips, err := ResolveTarget("1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ips) != 1 || ips[0].String() != "1.2.3.4" {
		t.Fatalf("got %v want [1.2.3.4]", ips)
	}
}

func TestResolveTarget_LiteralIPv6(t *testing.T) {
	ips, err := ResolveTarget("::1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ips) != 1 || ips[0].String() != "::1" {
		t.Fatalf("got %v want [::1]", ips)
	}
}

func TestResolveTarget_Unresolvable(t *testing.T) {
	// .invalid is reserved and never resolves.
	if _, err := ResolveTarget("host.invalid"); err == nil {
		t.Fatal("expected error for unresolvable host")
	}
}
