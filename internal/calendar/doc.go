// Package calendar provides a read-only client for the Google Calendar API.
//
// It fetches busy periods for one or more calendars over a time window,
// either through the freebusy API (fast, no event titles) or the events API
// (when titles are requested), and fans out across calendars concurrently.
// A failing source contributes an empty busy list with a warning; the
// computation proceeds with the remaining sources.
//
// The client supports multi-account authentication using the Google OAuth2
// flow via the google.TokenProvider abstraction.
package calendar
