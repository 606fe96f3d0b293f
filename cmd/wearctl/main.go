//go:build !tinygo

// wearctl checks and normalises control-panel messages offline.
//
//	wearctl -mode check -in panel.jsonl   # one canonical message per line
//	wearctl -mode defaults                # text_update restoring defaults
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"pixelwear/screenos/proto"
	"pixelwear/screenos/settings"
)

func main() {
	var (
		inPath = flag.String("in", "", "Input JSON-lines file (default stdin).")
		mode   = flag.String("mode", "check", "check|defaults.")
	)
	flag.Parse()

	in := io.Reader(os.Stdin)
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	os.Exit(run(*mode, in, os.Stdout, os.Stderr))
}

func run(mode string, in io.Reader, out, errOut io.Writer) int {
	switch mode {
	case "check":
		return check(in, out, errOut)
	case "defaults":
		b, err := proto.TextUpdatePayload(settings.DefaultText())
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintln(out, string(b))
		return 0
	default:
		fmt.Fprintf(errOut, "unknown mode %q (want check|defaults)\n", mode)
		return 2
	}
}

// check prints the canonical form of every message and reports bad lines
// with their line number. It returns 1 when any line was rejected.
func check(in io.Reader, out, errOut io.Writer) int {
	status := 0
	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		msg, err := proto.Decode(line)
		if err != nil {
			fmt.Fprintf(errOut, "line %d: %v\n", n, err)
			status = 1
			continue
		}
		msg.Text.Clamp()
		b, err := proto.Payload(msg)
		if err != nil {
			fmt.Fprintf(errOut, "line %d: encode: %v\n", n, err)
			status = 1
			continue
		}
		fmt.Fprintln(out, string(b))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return status
}
