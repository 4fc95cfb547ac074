// loading-server answers every HTTP request with one static HTML page.
// Typical use is showing a "deploying, please wait" page in front of a service.
package main

import (
	"fmt"
	"os"

	"github.com/corey/loading-server/cmd/loading-server/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
