package portscan

import (
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"
)

// ProbePort performs one TCP connect attempt against target:port,
// bounded by timeout, and classifies the outcome. Exactly one attempt,
// no retries. The probe dials without a context on purpose: a
// cancelled scan lets in-flight connects run out their own timeout
// instead of aborting the socket mid-handshake.
func ProbePort(target Target, port uint16, timeout time.Duration) PortResult {
	addr := net.JoinHostPort(target.IP, strconv.Itoa(int(port)))
	d := net.Dialer{
		Timeout:   timeout,
		KeepAlive: -1, // a probe never keeps the connection
	}

	start := time.Now()
	conn, err := d.Dial("tcp", addr)
	res := PortResult{Port: port, Elapsed: time.Since(start)}

	if err == nil {
		conn.Close()
		res.State = StateOpen
		res.Service = ServiceHint(port)
		return res
	}

	var ne net.Error
	switch {
	case errors.As(err, &ne) && ne.Timeout():
		res.State = StateFiltered
	case errors.Is(err, syscall.ECONNREFUSED):
		res.State = StateClosed
	default:
		res.State = StateError
		res.Diag = err.Error()
	}
	return res
}
