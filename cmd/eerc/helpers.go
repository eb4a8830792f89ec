package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ava-labs/eerc-go-sdk/curve"
	"github.com/ava-labs/eerc-go-sdk/egct"
	"github.com/ava-labs/eerc-go-sdk/engine"
)

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("--signature: %w", err)
	}
	return b, nil
}

func currentMode() engine.Mode {
	if flags.mode == "converter" {
		return engine.Converter
	}
	return engine.Standalone
}

func parseBigInt(flagName, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("--%s: %q is not a valid integer", flagName, s)
	}
	return v, nil
}

func parsePoint(flagName, xHex, yHex string) (*curve.Point, error) {
	x, ok := new(big.Int).SetString(xHex, 0)
	if !ok {
		return nil, fmt.Errorf("--%s-x: %q is not a valid integer", flagName, xHex)
	}
	y, ok := new(big.Int).SetString(yHex, 0)
	if !ok {
		return nil, fmt.Errorf("--%s-y: %q is not a valid integer", flagName, yHex)
	}
	return &curve.Point{X: x, Y: y}, nil
}

func parseEGCT(prefix, c1x, c1y, c2x, c2y string) (*egct.Ciphertext, error) {
	c1, err := parsePoint(prefix+"-c1", c1x, c1y)
	if err != nil {
		return nil, err
	}
	c2, err := parsePoint(prefix+"-c2", c2x, c2y)
	if err != nil {
		return nil, err
	}
	return &egct.Ciphertext{C1: c1, C2: c2}, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
