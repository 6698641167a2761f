// Package session persists the login credentials and resolved account list
// between CLI invocations as a single JSON document at a fixed path.
//
// Known gaps, accepted by design:
//
//   - The file holds credential material in plaintext. Its permissions are
//     restricted to 0600, but there is no encryption at rest.
//   - Concurrent invocations are not coordinated. Two processes racing on
//     the file produce last-writer-wins results. The tool assumes a single
//     user running one command at a time.
package session
