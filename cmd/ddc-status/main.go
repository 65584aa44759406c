// Command ddc-status explains DDC/CI status codes.
//
// Usage:
//
//	ddc-status [flags] <code|name>...
//
// Arguments are shared-space codes (-3015), symbolic names
// (DDCRC_RETRIES, ENXIO) or, with -domain, domain-local values.
//
// Examples:
//
//	# Describe a code from a log line
//	ddc-status -3015
//
//	# Find the code for an errno name
//	ddc-status EIO
//
//	# Translate a raw errno returned by the kernel
//	ddc-status -domain errno -5
//
//	# List every known protocol code
//	ddc-status -list ddc
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	domain := flag.String("domain", "", "Interpret numeric arguments as local codes of this domain (errno, adl, ddc)")
	list := flag.String("list", "", "List the codes of a domain (errno, adl, ddc, all)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ddc-status [-domain <name>] <code|name>...")
		fmt.Fprintln(os.Stderr, "       ddc-status -list <domain|all>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list != "" {
		if err := runList(os.Stdout, *list); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := runLookup(os.Stdout, *domain, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
