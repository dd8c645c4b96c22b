package portscan

import (
	"bytes"
	"fmt"
	"net"
	"sort"
)

// ResolveTarget resolves a hostname or IP literal into a deduplicated,
// deterministically ordered address list. Resolution happens once, up
// front: probes never do DNS.
func ResolveTarget(target string) ([]net.IP, error) {
	if ip := net.ParseIP(target); ip != nil {
		return []net.IP{ip}, nil
	}
	ips, err := net.LookupIP(target)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target %q: %w", target, err)
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("no addresses found for target %q", target)
	}
	sort.Slice(ips, func(i, j int) bool {
		return bytes.Compare(ips[i].To16(), ips[j].To16()) < 0
	})
	out := ips[:1]
	for _, ip := range ips[1:] {
		if !ip.Equal(out[len(out)-1]) {
			out = append(out, ip)
		}
	}
	return out, nil
}
