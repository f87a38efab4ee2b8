// Command gridastar solves grid scenarios and serves the search over HTTP.
//
// Usage:
//
//	gridastar solve testdata/wall.yaml
//	gridastar solve testdata/wall.yaml --start 2,0 --goal 0,2
//	GRIDASTAR_ADDR=:9090 gridastar serve
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
