package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/simfony-tools/valuekit/extval"
	"github.com/simfony-tools/valuekit/types"
	"github.com/simfony-tools/valuekit/value"
)

func main() {
	var (
		typeExpr = flag.String("type", "", "Type expression, e.g. \"2^32\" or \"(1 + 2^8) * 2\"")
		bitsArg  = flag.String("bits", "", "Bit string to decode: 0x hex or 0b binary")
		bytesArg = flag.String("bytes", "", "Hex byte string to compact as a word value")
		width    = flag.Bool("width", false, "Print the type's bit width and exit")
		verbose  = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug logging unavailable: %v\n", err)
		} else {
			extval.SetLogger(logger)
		}
	}

	if *typeExpr == "" && *bytesArg == "" {
		fmt.Fprintln(os.Stderr, "Usage: valuekit -type <expr> -bits <0x..|0b..>")
		fmt.Fprintln(os.Stderr, "       valuekit -type <expr> -width")
		fmt.Fprintln(os.Stderr, "       valuekit -bytes <hex>")
		os.Exit(1)
	}

	if err := run(*typeExpr, *bitsArg, *bytesArg, *width); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(typeExpr, bitsArg, bytesArg string, widthOnly bool) error {
	if bytesArg != "" {
		return compactBytes(bytesArg)
	}

	ty, err := types.Parse(typeExpr)
	if err != nil {
		return fmt.Errorf("parse type: %w", err)
	}

	if widthOnly {
		fmt.Printf("%s: %d bits\n", ty, ty.BitWidth())
		return nil
	}

	reader, total, err := bitReader(bitsArg)
	if err != nil {
		return err
	}

	v, err := extval.FromBits(ty, reader)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Printf("Type:  %s\n", ty)
	fmt.Printf("Value: %s\n", v)
	fmt.Printf("Width: %d bits", v.BitWidth())
	if surplus := total - v.BitWidth(); surplus > 0 {
		fmt.Printf(" (%d surplus bits unread)", surplus)
	}
	fmt.Println()
	return nil
}

func compactBytes(arg string) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		return fmt.Errorf("parse bytes: %w", err)
	}
	v, err := value.FromBytes(raw)
	if err != nil {
		return err
	}
	ev := extval.FromValue(v)
	fmt.Printf("Value: %s\n", ev)
	fmt.Printf("Width: %d bits\n", ev.BitWidth())
	return nil
}

// bitReader parses a 0x hex or 0b binary string into a bit stream and
// its total bit count.
func bitReader(arg string) (extval.BitReader, int, error) {
	switch {
	case strings.HasPrefix(arg, "0x"):
		raw, err := hex.DecodeString(arg[2:])
		if err != nil {
			return nil, 0, fmt.Errorf("parse bits: %w", err)
		}
		return extval.NewByteReader(raw), len(raw) * 8, nil
	case strings.HasPrefix(arg, "0b"):
		bits := make([]bool, 0, len(arg)-2)
		for _, c := range arg[2:] {
			switch c {
			case '0':
				bits = append(bits, false)
			case '1':
				bits = append(bits, true)
			default:
				return nil, 0, fmt.Errorf("parse bits: invalid character %q", c)
			}
		}
		return extval.NewSliceReader(bits), len(bits), nil
	default:
		return nil, 0, fmt.Errorf("parse bits: expected a 0x or 0b prefix")
	}
}
