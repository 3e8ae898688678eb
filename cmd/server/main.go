// Command server runs the listmonk MCP server over stdio or streamable HTTP.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
