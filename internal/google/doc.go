// Package google handles OAuth2 authentication for the Google Calendar API.
//
// Tokens are stored per account as files in the user cache directory and
// exposed through the TokenProvider interface so that clients can be wired
// with alternative token sources in tests.
package google
