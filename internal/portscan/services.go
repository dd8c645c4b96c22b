package portscan

// serviceNames maps well-known ports to conventional protocol names.
// Read-only after init.
var serviceNames = map[uint16]string{
	20:   "ftp",
	21:   "ftp",
	22:   "ssh",
	23:   "telnet",
	25:   "smtp",
	53:   "dns",
	80:   "http",
	110:  "pop3",
	135:  "msrpc",
	139:  "netbios",
	143:  "imap",
	443:  "https",
	445:  "smb",
	3306: "mysql",
	3389: "rdp",
	5432: "postgres",
	6379: "redis",
	8000: "http-alt",
	8080: "http-alt",
	8443: "https-alt",
}

// ServiceHint returns the conventional service name for a well-known
// port, or "" when the port has no entry.
func ServiceHint(port uint16) string {
	return serviceNames[port]
}
