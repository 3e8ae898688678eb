// Package tools exposes listmonk operations as MCP tools.
//
// Every tool follows the same path: arguments are normalized, one or two
// listmonk calls are made, and the outcome becomes a tool result. Handlers
// never return a Go error to the MCP server. Failures are error results whose
// text reads "Error <action>: <cause>", or "Error: <message>" when the
// arguments were rejected before any remote call.
package tools
