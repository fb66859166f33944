package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/replywriter/internal/generation"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog. State is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		ModalStyle.Render(content),
	)
}

// =============================================================================
// ToneState - State for the tone picker
// =============================================================================

type ToneState struct {
	selected string
	form     *huh.Form
}

func (*ToneState) modalState() {}

func (s *ToneState) Title() string { return "Reply Tone" }

func (s *ToneState) Help() string { return "↑/↓ to choose, Enter to apply, Esc to cancel" }

func (s *ToneState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ToneState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selected returns the highlighted tone value
func (s *ToneState) Selected() string {
	return s.selected
}

// NewToneState creates a tone picker with current preselected
func NewToneState(current string) *ToneState {
	s := &ToneState{selected: current}

	options := make([]huh.Option[string], len(generation.Tones))
	for i, t := range generation.Tones {
		options[i] = huh.NewOption(t.Label, t.Value)
	}
	// Free-form tones set from the CLI still show up in the list
	if generation.ToneLabel(current) == current && current != generation.ToneDefault {
		options = append(options, huh.NewOption(current, current))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Tone").
				Description("How the reply should sound").
				// Unset Height sizes the list to fit every option
				Options(options...).
				Value(&s.selected),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)
	s.form.Init()
	return s
}

// =============================================================================
// LoadMailState - State for loading content from a mail file
// =============================================================================

type LoadMailState struct {
	path  string
	index string
	form  *huh.Form
}

func (*LoadMailState) modalState() {}

func (s *LoadMailState) Title() string { return "Open Email" }

func (s *LoadMailState) Help() string { return "Tab: next field  Enter: load  Esc: cancel" }

func (s *LoadMailState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *LoadMailState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Path returns the entered file path with surrounding space removed
func (s *LoadMailState) Path() string {
	return strings.TrimSpace(s.path)
}

// IsMbox reports whether the path names an mbox file
func (s *LoadMailState) IsMbox() bool {
	return strings.HasSuffix(strings.ToLower(s.Path()), ".mbox")
}

// Index returns the mbox message index, 0 when left blank
func (s *LoadMailState) Index() (int, error) {
	return parseIndex(s.index)
}

func parseIndex(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("index must be a non-negative number")
	}
	return n, nil
}

// Validate checks the form values before loading
func (s *LoadMailState) Validate() error {
	if s.Path() == "" {
		return fmt.Errorf("path is required")
	}
	_, err := s.Index()
	return err
}

// NewLoadMailState creates the mail loader with an optional starting path
func NewLoadMailState(path string) *LoadMailState {
	s := &LoadMailState{path: path}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File").
				Description(".eml message or .mbox mailbox").
				Placeholder("~/Downloads/message.eml").
				CharLimit(ModalInputCharLimit).
				Value(&s.path),
			huh.NewInput().
				Title("Message index").
				Description("Only used for .mbox files, starting at 0").
				Placeholder("0").
				Validate(func(v string) error {
					_, err := parseIndex(v)
					return err
				}).
				Value(&s.index),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)
	s.form.Init()
	return s
}
