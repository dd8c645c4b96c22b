package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/melbahwati/port-scanner/internal/portscan"
)

func main() {
	target := flag.String("H", "", "target host (ip or domain), required")
	portsSpec := flag.String("p", "1-1000", "ports to scan (e.g. 22,80,1-1024)")
	timeoutMs := flag.Int("t", 50, "per-port connect timeout in milliseconds")
	parallel := flag.Bool("parallel", false, "probe ports concurrently")
	threads := flag.Int("threads", 0, "in-flight probes when -parallel is set (default: number of CPUs)")
	showClosed := flag.Bool("show-closed", false, "include closed/filtered ports in the summary")
	allIPs := flag.Bool("all-ips", false, "scan every resolved address, not just the first")
	progress := flag.Bool("progress", true, "show a live progress bar")
	flag.Parse()

	if *target == "" {
		fmt.Fprintln(os.Stderr, "error: -H <host> is required")
		flag.Usage()
		os.Exit(2)
	}
	if *timeoutMs < 1 {
		fmt.Fprintln(os.Stderr, "error: timeout must be at least 1 ms")
		os.Exit(2)
	}
	ports, err := portscan.ParsePorts(*portsSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid port spec: %v\n", err)
		os.Exit(2)
	}

	ips, err := portscan.ResolveTarget(*target)
	if err != nil {
		color.Red("[-] %v", err)
		os.Exit(1)
	}
	if !*allIPs {
		ips = ips[:1]
	}

	concurrency := 1
	if *parallel {
		concurrency = *threads
		if concurrency < 1 {
			concurrency = runtime.NumCPU()
		}
	}
	cfg := portscan.Config{
		Timeout:     time.Duration(*timeoutMs) * time.Millisecond,
		Concurrency: concurrency,
		ShowClosed:  *showClosed,
	}

	// Ctrl+C stops new dispatches; in-flight probes run out their own
	// timeout, so the scan winds down instead of dying mid-connect.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	color.Cyan("--- pscan %s [ports %s] ---", *target, *portsSpec)
	color.Cyan("--- concurrency: %d | timeout: %dms | addresses: %d ---", concurrency, *timeoutMs, len(ips))

	for _, ip := range ips {
		t := portscan.Target{Host: *target, IP: ip.String()}
		if scanOne(ctx, t, ports, cfg, *progress) == portscan.StatusCancelled {
			color.Yellow("[!] scan cancelled, the port range was not fully covered")
			return
		}
	}
}

func scanOne(ctx context.Context, target portscan.Target, ports []uint16, cfg portscan.Config, progress bool) portscan.Status {
	sc := portscan.NewScanner(target, ports, cfg)
	results, err := sc.Run(ctx)
	if err != nil {
		color.Red("[-] %v", err)
		os.Exit(1)
	}

	var bar *progressbar.ProgressBar
	if progress && isatty.IsTerminal(os.Stderr.Fd()) {
		bar = newBar(len(ports))
	}

	started := time.Now()
	// Progress is poll-driven: the tracker is sampled on a fixed
	// interval, never updated from the probe path.
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

drain:
	for {
		select {
		case res, ok := <-results:
			if !ok {
				break drain
			}
			if res.State == portscan.StateOpen {
				if bar != nil {
					bar.Clear()
				}
				hint := res.Service
				if hint != "" {
					hint = " (" + hint + ")"
				}
				color.Green("[+] %s:%d open%s", target.IP, res.Port, hint)
			}
		case <-tick.C:
			if bar != nil {
				bar.Set(int(sc.Tracker().Snapshot().Attempted))
			}
		}
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	printSummary(target, sc.Summary(), sc.Tracker().Snapshot(), time.Since(started))
	return sc.Status()
}

func newBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][scanning][reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func printSummary(target portscan.Target, results []portscan.PortResult, snap portscan.ProgressSnapshot, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("target: %s (%s)\n", target.Host, target.IP)
	fmt.Printf("%-8s  %-8s  %s\n", "port", "state", "hint")
	fmt.Printf("%-8s  %-8s  %s\n", "--------", "--------", "--------")
	for _, r := range results {
		hint := r.Service
		if r.State == portscan.StateError {
			hint = r.Diag
		}
		fmt.Printf("%-8d  %-8s  %s\n", r.Port, r.State, hint)
	}
	fmt.Println()
	fmt.Printf("probed %d/%d ports in %s, %d open\n",
		snap.Attempted, snap.Total, elapsed.Round(time.Millisecond), snap.Open)
}
