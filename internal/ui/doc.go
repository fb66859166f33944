// Package ui provides the user interface components for the replywriter TUI.
//
// # Overview
//
// The ui package implements the visual components of replywriter using the
// Bubble Tea framework and Lipgloss styling library. Components hold display
// state only; the app package owns the session and pushes its snapshots in
// through setters.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Composer: email content textarea                    │
//	│   validation hint                                   │
//	│   Tone: Default                  [Generate Reply]   │
//	├─────────────────────────────────────────────────────┤
//	│ Banner (only after a failed request)                │
//	├─────────────────────────────────────────────────────┤
//	│ Reply: scrollable generated reply                   │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title on a gradient background plus the theme indicator.
//
// Footer: Context-aware keyboard shortcuts. A flash message, when set,
// replaces the shortcuts until it expires.
//
// Composer: Textarea for the received email, the "content required" hint,
// the current tone and the submit label, which reads "Generating..." while a
// request is in flight.
//
// Banner: The generation failure box. Esc dismisses it without touching the
// session.
//
// Reply: Viewport showing the reply wrapped to the panel width.
//
// Modal: Popup dialogs built on huh forms:
//   - ToneState: pick one of the tones
//   - LoadMailState: load an .eml or .mbox message into the composer
//
// # Focus System
//
// Tab toggles focus between the composer and the reply panel. Ctrl
// shortcuts work from either.
//
// # Styles
//
// Styles are package variables rebuilt by SetTheme from the light or dark
// palette in theme.go, so callers always read the active theme.
package ui
