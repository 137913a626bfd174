// Command jsonh reads JSONH from a file argument or stdin and writes
// canonical JSON to stdout.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mcvoid/jsonh"
)

func main() {
	version := flag.String("version", "latest", "grammar version: v1, v2, or latest")
	incomplete := flag.Bool("incomplete-inputs", false, "tolerate a missing trailing '}'/']'")
	singleElement := flag.Bool("single-element", false, "require exactly one top-level element")
	maxDepth := flag.Int("max-depth", 0, "container nesting limit (0 = default)")
	indent := flag.String("indent", "  ", "indentation for the JSON output")
	flag.Parse()

	v, err := parseVersion(*version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	opts := jsonh.NewReaderOptions(
		jsonh.WithVersion(v),
		jsonh.WithIncompleteInputs(*incomplete),
		jsonh.WithParseSingleElement(*singleElement),
		jsonh.WithMaxDepth(*maxDepth),
	)

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, arg := range args {
		if err := convert(out, arg, opts, *indent); err != nil {
			fmt.Fprintf(os.Stderr, "input %s: %s\n", arg, err)
			os.Exit(1)
		}
	}
}

func parseVersion(s string) (jsonh.Version, error) {
	switch s {
	case "v1":
		return jsonh.V1, nil
	case "v2":
		return jsonh.V2, nil
	case "latest", "":
		return jsonh.Latest, nil
	default:
		return 0, fmt.Errorf("unknown -version %q: want v1, v2, or latest", s)
	}
}

// convert reads JSONH from arg ("-" for stdin) under opts and writes
// indented JSON to out.
func convert(out *bufio.Writer, arg string, opts jsonh.ReaderOptions, indent string) error {
	in := os.Stdin
	if arg != "-" {
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("can't open %q: %w", arg, err)
		}
		defer f.Close()
		in = f
	}

	val, err := jsonh.Read(in, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", indent)
	return enc.Encode(jsonOf(val))
}

// jsonOf converts a jsonh.Value into a plain Go value encoding/json can
// marshal, since Value itself deliberately has no MarshalJSON (spec's
// Non-goals exclude a wire/on-disk format from the core library).
func jsonOf(v *jsonh.Value) any {
	switch v.Kind() {
	case jsonh.KindNull:
		return nil
	case jsonh.KindNumber:
		n, _ := v.AsNumber()
		return n
	case jsonh.KindString:
		s, _ := v.AsString()
		return s
	case jsonh.KindBoolean:
		b, _ := v.AsBoolean()
		return b
	case jsonh.KindArray:
		arr, _ := v.AsArray()
		out := make([]any, len(arr))
		for i, item := range arr {
			out[i] = jsonOf(item)
		}
		return out
	case jsonh.KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]any, len(obj))
		for k, item := range obj {
			out[k] = jsonOf(item)
		}
		return out
	default:
		return nil
	}
}
