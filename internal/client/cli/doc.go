// Package cli implements the syncctl command tree: minting development
// tokens and driving Ping, Pull, Push and Status against a running server.
// Responses are written to stdout as indented JSON.
package cli
