// Command cppslc is the CppSL demonstration compiler.
//
// Usage:
//
//	cppslc list
//	cppslc build <sample>
//	cppslc emit [-o out.hlsl] <sample>
//	cppslc version
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/cppsl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cppslc: %v\n", err)
		os.Exit(1)
	}
}
