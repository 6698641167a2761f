// Package sdk wraps the Fubon Neo brokerage API behind a capability
// surface: login, order placement and management, account queries, market
// data, and realtime streaming.
//
// The rest of the program treats this surface as opaque. It does not cache
// or reshape the brokerage's semantics; it only moves requests out and
// result objects back in, leaving normalization to the core package.
package sdk
