// Package session holds the interaction state for generating one email reply.
//
// # Overview
//
// A Session owns the email content, the selected tone, the request phase and
// whatever the last request produced. Front ends (the TUI, the generate
// command, demo scenarios) never mutate that state directly: they call the
// operations below and render the Snapshot they are handed.
//
// # Phases
//
//	Idle ──Submit──▶ Loading ──ok──▶ Success
//	  ▲                 │
//	  │                 └──fail──▶ Error
//	  └──────Reset (any phase but Loading)
//
// Submit with blank content moves straight to Error with a validation
// message and never reaches the client. Only one request is in flight at a
// time: Submit and Reset return ErrRequestInFlight while Loading.
//
// # Requests
//
// The request body is captured when Submit is called. Edits made while a
// request runs are kept but do not change what was sent. Requests are not
// cancellable; the client's own timeout is the only bound.
//
// # Observers
//
// Subscribe registers a callback that receives a Snapshot after every state
// change. Callbacks run outside the session lock, so they may call back into
// the session.
package session
