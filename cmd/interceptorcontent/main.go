// Command interceptorcontent normalizes interceptor form content from the
// command line and prints the OpenAPI document of the interceptor API.
//
//	echo 'headers: Accept, X-Tenant' | interceptorcontent normalize --kind cache
//	interceptorcontent verify --kind ips body.json
//	interceptorcontent schema --version 1.2.0
package main

import (
	"os"
)

func main() {
	if err := execute(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
