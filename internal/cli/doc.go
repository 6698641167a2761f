// Package cli builds the fubon command tree. Every command prints exactly
// one JSON envelope on stdout ({"success": true, "data": ...} or
// {"success": false, "error": "..."}), except streaming commands which print
// one JSON line per event, and the bare invocation which prints a welcome
// screen. The process exit code is 0 iff the envelope reported success.
package cli
