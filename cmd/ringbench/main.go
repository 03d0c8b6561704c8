// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ringbench measures a ringbuf.Ring under single-producer
// single-consumer load and prints a report.
//
// Usage:
//
//	ringbench [flags]
//
// Flags:
//
//	-size n            ring storage size in bytes (default 1024)
//	-scale n           divide every message and sample count by n
//	-wait policy       retry policy: spin, yield, or backoff
//	-producer-cpu n    pin the producer thread to CPU n (linux)
//	-consumer-cpu n    pin the consumer thread to CPU n (linux)
//	-only list         comma-separated stages: baseline,throughput,latency,contention
//	-json              print the report as JSON
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"code.hybscloud.com/ringbuf/internal/bench"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	default:
		fmt.Fprintln(os.Stderr, "ringbench:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := bench.DefaultConfig()

	fs := flag.NewFlagSet("ringbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Size, "size", cfg.Size, "ring storage size in bytes, rounded up to a power of 2")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "divide every message and sample count by this factor")
	wait := fs.String("wait", string(cfg.Wait), "retry policy: spin, yield, or backoff")
	fs.IntVar(&cfg.ProducerCPU, "producer-cpu", cfg.ProducerCPU, "pin the producer thread to this CPU (-1 disables)")
	fs.IntVar(&cfg.ConsumerCPU, "consumer-cpu", cfg.ConsumerCPU, "pin the consumer thread to this CPU (-1 disables)")
	only := fs.String("only", "", "comma-separated stages to run (default all)")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := bench.ParsePolicy(*wait)
	if err != nil {
		return err
	}
	cfg.Wait = p
	if cfg.Only, err = bench.ParseStages(*only); err != nil {
		return err
	}

	rep, err := bench.Run(ctx, cfg)
	if rep == nil {
		return err
	}
	// Print what completed even when interrupted
	var werr error
	if *asJSON {
		werr = rep.WriteJSON(stdout)
	} else {
		werr = rep.WriteText(stdout)
	}
	return errors.Join(err, werr)
}
