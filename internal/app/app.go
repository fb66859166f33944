package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/replywriter/internal/config"
	"github.com/zhubert/replywriter/internal/logger"
	"github.com/zhubert/replywriter/internal/session"
	"github.com/zhubert/replywriter/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusComposer Focus = iota
	FocusReply
)

func (f Focus) String() string {
	switch f {
	case FocusComposer:
		return "composer"
	case FocusReply:
		return "reply"
	default:
		return "unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config   *config.Config
	version  string
	session  *session.Session
	header   *ui.Header
	footer   *ui.Footer
	composer *ui.Composer
	banner   *ui.Banner
	reply    *ui.Reply
	modal    *ui.Modal
	log      *slog.Logger

	width  int
	height int
	focus  Focus

	// snap is the last session state pushed into the components
	snap session.Snapshot

	// changes is signalled by the session observer; the listener turns each
	// signal into a SessionChangedMsg
	changes     chan struct{}
	unsubscribe func()

	windowFocused bool
	bannerShown   bool
}

// SessionChangedMsg is sent after the session state changed outside of Update,
// for example when a request finishes or the copy notice expires
type SessionChangedMsg struct{}

// GenerationDoneMsg is sent when a submitted request resolves
type GenerationDoneMsg struct {
	Outcome session.Outcome
}

// MailLoadedMsg is sent when the mail loader finishes reading a file
type MailLoadedMsg struct {
	Text    string
	Subject string
	Err     error
}

// New creates the app model around an existing session
func New(cfg *config.Config, sess *session.Session, version string) *Model {
	m := &Model{
		config:        cfg,
		version:       version,
		session:       sess,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		composer:      ui.NewComposer(),
		banner:        ui.NewBanner(),
		reply:         ui.NewReply(),
		modal:         ui.NewModal(),
		log:           logger.ComponentLogger("App"),
		focus:         FocusComposer,
		changes:       make(chan struct{}, 1),
		windowFocused: true,
	}

	m.unsubscribe = sess.Subscribe(func(session.Snapshot) {
		select {
		case m.changes <- struct{}{}:
		default:
			// A signal is already pending; the handler reads the latest state
		}
	})

	m.composer.SetFocused(true)
	m.syncFromSession()

	return m
}

// Close detaches the model from its session
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Session returns the session the model drives
func (m *Model) Session() *session.Session {
	return m.session
}

// CurrentFocus returns the focused panel
func (m *Model) CurrentFocus() Focus {
	return m.focus
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.listenForSessionChanges()
}

// toggleFocus moves focus between the composer and the reply panel
func (m *Model) toggleFocus() {
	if m.focus == FocusComposer {
		m.focus = FocusReply
	} else {
		m.focus = FocusComposer
	}
	m.composer.SetFocused(m.focus == FocusComposer)
	m.reply.SetFocused(m.focus == FocusReply)
	m.log.Debug("focus changed", "focus", m.focus)
}

// syncFromSession pushes the current session state into the components
func (m *Model) syncFromSession() {
	prev := m.snap
	snap := m.session.Snapshot()
	m.snap = snap

	if prev.Phase != snap.Phase {
		m.log.Debug("session phase", "from", prev.Phase, "to", snap.Phase)
	}

	loading := snap.Phase == session.Loading
	m.composer.SetValue(snap.Content)
	m.composer.SetTone(snap.Tone)
	m.composer.SetLoading(loading)
	m.composer.SetHelperError(snap.ShowInlineError())

	m.reply.SetLoading(loading)
	m.reply.SetText(snap.Result)

	if snap.ShowBanner() {
		if m.banner.Message() == "" {
			m.banner.Show(snap.ErrorMessage)
		}
	} else {
		m.banner.Hide()
	}

	if snap.Theme != ui.CurrentMode() {
		ui.SetTheme(snap.Theme)
		m.composer.RefreshStyles()
		m.reply.RefreshStyles()
	}
	m.header.SetMode(snap.Theme)
	m.header.SetBusy(loading)
	m.footer.SetCopyNotice(snap.CopyNotice)

	m.relayoutBanner()
}

// relayoutBanner resizes the panels when the banner appears or goes away
func (m *Model) relayoutBanner() {
	if m.banner.Visible() != m.bannerShown {
		m.bannerShown = m.banner.Visible()
		m.updateSizes()
	}
}
