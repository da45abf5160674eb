// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command rgraph inspects render graph frame files.
//
// Usage:
//
//	rgraph plan frame.yaml
//	rgraph dot --order lifo frame.yaml | dot -Tsvg > frame.svg
//	rgraph validate -v frame.yaml
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/rendergraph/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rgraph:", err)
		os.Exit(1)
	}
}
