// hash256-cli computes Bitcoin-style double-SHA256 digests from the command line.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Klingon-tech/hash256/internal/log"
	"github.com/Klingon-tech/hash256/pkg/crypto"
	"github.com/Klingon-tech/hash256/pkg/merkle"
	"github.com/Klingon-tech/hash256/pkg/types"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	logLevel := "info"
	jsonLog := false

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--log-level" && len(args) > 1:
			logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			logLevel = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json-log":
			jsonLog = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Init(logLevel, jsonLog)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "hash":
		cmdHash(cmdArgs)
	case "words":
		cmdWords(cmdArgs)
	case "parent":
		cmdParent(cmdArgs)
	case "merkle":
		cmdMerkle(cmdArgs)
	case "int":
		cmdInt(cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hash256-cli [global flags] <command> [flags]

Global flags:
  --log-level <lvl>   debug, info, warn, error (default: info)
  --json-log          Structured JSON log output

Commands:
  hash [--hex] [--file <path>] <data>
                                  Double-SHA256 of a string, hex bytes, or file
  words <n,n,...>                 Double-SHA256 of comma-separated 32-bit words
  parent <hex> <hex>              Merkle parent of two digests
  merkle <hex> [hex...]           Merkle root of digest leaves
  int <hex>                       Show a digest's 256-bit integer halves
`)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// parseDigest decodes a 64-character hex argument or exits.
func parseDigest(s string) types.Digest {
	d, err := types.HexToDigest(s)
	if err != nil {
		fatalf("invalid digest %q: %v", s, err)
	}
	return d
}

func cmdHash(args []string) {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	hexIn := fs.Bool("hex", false, "treat the argument as hex-encoded bytes")
	file := fs.String("file", "", "hash the contents of a file instead of an argument")
	fs.Parse(args)

	var data []byte
	switch {
	case *file != "":
		b, err := os.ReadFile(*file)
		if err != nil {
			fatalf("read %s: %v", *file, err)
		}
		data = b
	case fs.NArg() == 1:
		if *hexIn {
			b, err := hex.DecodeString(fs.Arg(0))
			if err != nil {
				fatalf("invalid hex input: %v", err)
			}
			data = b
		} else {
			data = []byte(fs.Arg(0))
		}
	default:
		fatalf("hash requires exactly one argument or --file")
	}

	done := log.Benchmark("double-hash")
	d := crypto.DoubleHash(data)
	done()

	log.Debug().Int("input_bytes", len(data)).Msg("hashed input")
	fmt.Println(d)
}

func cmdWords(args []string) {
	if len(args) != 1 {
		fatalf("words requires one comma-separated list, e.g. 1,2,3")
	}

	parts := strings.Split(args[0], ",")
	words := make([]uint32, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.ParseUint(strings.TrimSpace(p), 0, 32)
		if err != nil {
			fatalf("invalid 32-bit word %q: %v", p, err)
		}
		words = append(words, uint32(w))
	}

	fmt.Println(crypto.DoubleHashWords(words))
}

func cmdParent(args []string) {
	if len(args) != 2 {
		fatalf("parent requires exactly two digest arguments")
	}
	left := parseDigest(args[0])
	right := parseDigest(args[1])
	fmt.Println(crypto.MerkleParent(left, right))
}

func cmdMerkle(args []string) {
	if len(args) == 0 {
		fatalf("merkle requires at least one digest argument")
	}

	leaves := make([]types.Digest, 0, len(args))
	for _, a := range args {
		leaves = append(leaves, parseDigest(a))
	}

	done := log.Benchmark("merkle-root")
	root := merkle.ComputeRoot(leaves)
	done()

	log.Debug().Int("leaves", len(leaves)).Msg("computed merkle root")
	fmt.Println(root)
}

func cmdInt(args []string) {
	if len(args) != 1 {
		fatalf("int requires exactly one digest argument")
	}
	d := parseDigest(args[0])
	n := types.Uint256FromDigest(d)

	if n.Digest() != d {
		log.Fatal().Str("digest", d.String()).Msg("integer round-trip mismatch")
	}

	fmt.Printf("high: %016x%016x\n", n.Hi.Hi, n.Hi.Lo)
	fmt.Printf("low:  %016x%016x\n", n.Lo.Hi, n.Lo.Lo)
	fmt.Printf("dec:  %s\n", n.Big())
}
