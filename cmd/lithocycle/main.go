// lithocycle searches facies numberings of lithological profiles for Markov
// cyclicity and generates synthetic parasequence profiles.
//
// Usage:
//
//	lithocycle analyze <profile.(yaml|json|csv)> [--format text|markdown|json] [--png]
//	lithocycle synth [--template NAME] [--n N --alpha A --beta B --psi P --omega W --gamma G --seed S] [--noisy] [-o FILE]
//	lithocycle version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
