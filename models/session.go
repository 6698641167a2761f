// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials is the material needed to open a brokerage SDK session:
// the personal id, the login password and the client certificate the
// brokerage issues per user.
type Credentials struct {
	// PersonalID is the national id the brokerage account is registered under.
	PersonalID string `json:"personal_id"`
	// Password is the login password.
	Password string `json:"password"`
	// CertPath is the filesystem path to the client certificate (.p12).
	CertPath string `json:"cert_path"`
	// CertPassword is the certificate password. Optional; many users keep it
	// equal to PersonalID and the SDK accepts its absence.
	CertPassword string `json:"cert_password,omitempty"`
}

// StoredSession is the on-disk session document written after a successful
// login and read back on every later invocation. It is stored as a single
// JSON file at a fixed path.
//
// The credential material is kept in plaintext; see the session package doc
// for the at-rest encryption caveat.
type StoredSession struct {
	Credentials

	// AccountIDs are the trading account identifiers resolved at login time,
	// in the order the SDK returned them.
	AccountIDs []string `json:"account_ids,omitempty"`
	// LoggedInAt records when the session file was last written.
	LoggedInAt time.Time `json:"logged_in_at"`
}
