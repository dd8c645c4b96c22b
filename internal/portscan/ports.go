package portscan

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParsePorts parses a port specification into a strictly ascending,
// deduplicated list of ports. Supported forms:
//   - single: "22"
//   - range: "1-1000"
//   - mixed list: "22,80,8000-8100"
func ParsePorts(spec string) ([]uint16, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, errors.New("empty port spec")
	}
	seen := make(map[int]struct{})
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, errors.New("empty token in port spec")
		}
		if strings.Contains(tok, "-") {
			start, end, err := parseRange(tok)
			if err != nil {
				return nil, err
			}
			for p := start; p <= end; p++ {
				seen[p] = struct{}{}
			}
			continue
		}
		p, err := parsePort(tok)
		if err != nil {
			return nil, err
		}
		seen[p] = struct{}{}
	}
	ports := make([]int, 0, len(seen))
	for p := range seen {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	out := make([]uint16, len(ports))
	for i, p := range ports {
		out[i] = uint16(p)
	}
	return out, nil
}

func parseRange(tok string) (int, int, error) {
	bounds := strings.SplitN(tok, "-", 2)
	if len(bounds) != 2 {
		return 0, 0, fmt.Errorf("range must be in format start-end (example: 1-1000), got %q", tok)
	}
	start, err := parsePort(bounds[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parsePort(bounds[1])
	if err != nil {
		return 0, 0, err
	}
	if start > end {
		return 0, 0, fmt.Errorf("range start must be <= end, got %q", tok)
	}
	return start, end, nil
}

func parsePort(tok string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0, fmt.Errorf("port must be a number, got %q", tok)
	}
	if p < 1 || p > 65535 {
		return 0, fmt.Errorf("port %d out of range 1-65535", p)
	}
	return p, nil
}
