// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package core holds the invariant-bearing pieces of fubon-cli: the session
// manager that re-establishes an SDK session on every invocation, the
// normalizer that turns SDK result objects into JSON-safe values, and the
// envelope emitter that writes exactly one response document (or one NDJSON
// line per event) to stdout.
package core
