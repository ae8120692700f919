// Package main provides the CLI entrypoint for slicewrap-generator.
//
// slicewrap-generator is a codegen tool that:
//   - Parses Go packages for //slicewrap:wrap directives (or a YAML manifest)
//   - Validates each declaration's sequence shape and container set
//   - Generates transparent newtype wrappers with private constructors,
//     accessors, ownership-container conversions, and a text bundle
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
