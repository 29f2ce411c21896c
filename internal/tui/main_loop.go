// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/notebook"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainMode int

const (
	modeList mainMode = iota
	modeDetail
	modeCreate
	modeEdit
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayConfirmDelete
	overlayError
)

// mainLoopModel drives the note screens: the list, the detail view, and the
// create/edit forms. Every controller call runs as an async command; busy
// flags keep the spinner alive and block duplicate submissions.
type mainLoopModel struct {
	ctx        context.Context
	controller *notebook.Controller
	logger     *logger.Logger

	mode    mainMode
	overlay overlayKind

	notes []notebook.Note
	idx   int

	loading    bool
	refreshing bool
	saving     bool
	deleting   bool

	spinner     spinner.Model
	status      string
	overlayText string

	nameInput  textinput.Model
	descArea   textarea.Model
	imageInput textinput.Model
	formFocus  int
	editID     string

	logout bool
}

func newMainLoopModel(ctx context.Context, controller *notebook.Controller, log *logger.Logger) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:        ctx,
		controller: controller,
		logger:     log,
		spinner:    s,
		loading:    true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdSynchronize())
}

func (m mainLoopModel) busy() bool {
	return m.loading || m.refreshing || m.saving || m.deleting
}

func (m mainLoopModel) current() (notebook.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return notebook.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.busy() {
			return m, cmd
		}
		return m, nil

	case notesLoadedMsg:
		m.loading = false
		m.refreshing = false
		if msg.err != nil {
			m.showError(humanizeTransportError(msg.err))
			return m, nil
		}
		m.notes = msg.notes
		m.clampIdx()
		return m, nil

	case noteSavedMsg:
		m.saving = false
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, notebook.ErrEmptyNote):
				m.status = "note is empty, nothing to save"
			case errors.Is(msg.err, notebook.ErrOperationInFlight):
				m.status = "operation already in flight"
			default:
				m.showError(humanizeTransportError(msg.err))
			}
			return m, m.cmdClearStatus()
		}
		m.notes = m.controller.Notes()
		m.clampIdx()
		m.mode = modeList
		m.status = "saved"
		return m, m.cmdClearStatus()

	case noteDeletedMsg:
		m.deleting = false
		m.overlay = overlayNone
		m.notes = m.controller.Notes()
		m.clampIdx()
		switch {
		case msg.err == nil:
			m.mode = modeList
			m.status = "note deleted"
		case errors.Is(msg.err, notebook.ErrBlobCleanup):
			// Degraded success: the note is gone, only the attachment lingers.
			m.mode = modeList
			m.status = "note deleted, attachment cleanup failed"
		case errors.Is(msg.err, notebook.ErrOperationInFlight):
			m.status = "operation already in flight"
		default:
			m.showError(humanizeTransportError(msg.err))
		}
		return m, m.cmdClearStatus()

	case copiedMsg:
		m.status = msg.what + " copied to clipboard"
		return m, m.cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeCreate || m.mode == modeEdit {
		return m.updateForm(msg)
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}

	switch m.mode {
	case modeList:
		return m.updateList(msg)
	case modeDetail:
		return m.updateDetail(msg)
	case modeCreate, modeEdit:
		return m.updateForm(msg)
	}

	return m, nil
}

// ── overlays ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayConfirmDelete:
		switch msg.String() {
		case "y":
			if m.deleting {
				return m, nil
			}
			note, ok := m.current()
			if !ok {
				m.overlay = overlayNone
				return m, nil
			}
			m.deleting = true
			imagePath := ""
			if note.Image != nil {
				imagePath = *note.Image
			}
			return m, tea.Batch(m.spinner.Tick, m.cmdDelete(note.ID, imagePath))
		case "n", "esc":
			m.overlay = overlayNone
		}
	case overlayError:
		switch msg.String() {
		case "enter", "esc":
			m.overlay = overlayNone
			m.overlayText = ""
		}
	}
	return m, nil
}

func (m *mainLoopModel) showError(message string) {
	m.overlay = overlayError
	m.overlayText = message
}

// ── list ─────────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case "enter":
		if _, ok := m.current(); ok {
			m.mode = modeDetail
		}
	case "n":
		m.startCreate()
		return m, textinput.Blink
	case "s":
		if m.refreshing || m.loading || m.controller.Loading() {
			return m, nil
		}
		m.refreshing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdSynchronize())
	case "l":
		m.logout = true
		return m, tea.Quit
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// ── detail ───────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.mode = modeList
	case "e":
		if m.controller.Busy(note.ID) {
			m.status = "operation already in flight"
			return m, m.cmdClearStatus()
		}
		m.startEdit(note)
		return m, textinput.Blink
	case "d":
		if m.controller.Busy(note.ID) {
			m.status = "operation already in flight"
			return m, m.cmdClearStatus()
		}
		m.overlay = overlayConfirmDelete
	case "c":
		if note.Description != "" {
			return m, cmdCopyToClipboard(note.Description, "description")
		}
	case "u":
		if note.ImageURL != "" {
			return m, cmdCopyToClipboard(note.ImageURL, "image url")
		}
	}
	return m, nil
}

// ── create / edit form ───────────────────────────────────────────────────────

const (
	formFieldName = iota
	formFieldDescription
	formFieldImage
)

func (m *mainLoopModel) startCreate() {
	m.mode = modeCreate
	m.editID = ""
	m.initForm("", "")
}

func (m *mainLoopModel) startEdit(note notebook.Note) {
	m.mode = modeEdit
	m.editID = note.ID
	m.initForm(note.Name, note.Description)
}

func (m *mainLoopModel) initForm(name, description string) {
	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "name"
	m.nameInput.CharLimit = 255
	m.nameInput.Width = 40
	m.nameInput.SetValue(name)
	m.nameInput.Focus()

	m.descArea = textarea.New()
	m.descArea.Placeholder = "description"
	m.descArea.CharLimit = 0
	m.descArea.SetWidth(60)
	m.descArea.SetHeight(6)
	m.descArea.SetValue(description)

	m.imageInput = textinput.New()
	m.imageInput.Placeholder = "path to image file (optional)"
	m.imageInput.Width = 60

	m.formFocus = formFieldName
}

func (m mainLoopModel) formFieldCount() int {
	// Attachments can only be added on create; editing keeps the existing one.
	if m.mode == modeCreate {
		return 3
	}
	return 2
}

func (m *mainLoopModel) focusFormField(field int) {
	m.nameInput.Blur()
	m.descArea.Blur()
	m.imageInput.Blur()

	m.formFocus = field
	switch field {
	case formFieldName:
		m.nameInput.Focus()
	case formFieldDescription:
		m.descArea.Focus()
	case formFieldImage:
		m.imageInput.Focus()
	}
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			if m.editID != "" {
				m.mode = modeDetail
			}
			return m, nil
		case "tab":
			m.focusFormField((m.formFocus + 1) % m.formFieldCount())
			return m, nil
		case "shift+tab":
			m.focusFormField((m.formFocus - 1 + m.formFieldCount()) % m.formFieldCount())
			return m, nil
		case "ctrl+s":
			if m.saving || m.controller.Creating() {
				return m, nil
			}
			m.saving = true
			m.status = ""
			if m.mode == modeEdit {
				return m, tea.Batch(m.spinner.Tick, m.cmdUpdate(m.editID, m.nameInput.Value(), m.descArea.Value()))
			}
			return m, tea.Batch(m.spinner.Tick, m.cmdCreate(m.nameInput.Value(), m.descArea.Value(), m.imageInput.Value()))
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case formFieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case formFieldDescription:
		m.descArea, cmd = m.descArea.Update(msg)
	case formFieldImage:
		m.imageInput, cmd = m.imageInput.Update(msg)
	}
	return m, cmd
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdSynchronize() tea.Cmd {
	ctx := m.ctx
	controller := m.controller

	return func() tea.Msg {
		notes, err := controller.SynchronizeAll(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m mainLoopModel) cmdCreate(name, description, imagePath string) tea.Cmd {
	ctx := m.ctx
	controller := m.controller

	return func() tea.Msg {
		var attachment *models.Attachment
		if p := strings.TrimSpace(imagePath); p != "" {
			data, err := os.ReadFile(p)
			if err != nil {
				return noteSavedMsg{err: fmt.Errorf("read attachment: %w", err)}
			}
			attachment = &models.Attachment{Filename: filepath.Base(p), Data: data}
		}

		_, err := controller.Create(ctx, name, description, attachment)
		return noteSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdate(noteID, name, description string) tea.Cmd {
	ctx := m.ctx
	controller := m.controller

	return func() tea.Msg {
		patch := models.NotePatch{Name: &name, Description: &description}
		_, err := controller.Update(ctx, noteID, patch)
		return noteSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete(noteID, imagePath string) tea.Cmd {
	ctx := m.ctx
	controller := m.controller

	return func() tea.Msg {
		return noteDeletedMsg{err: controller.Delete(ctx, noteID, imagePath)}
	}
}

func cmdCopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return noteSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func (m mainLoopModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *mainLoopModel) clampIdx() {
	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// ── views ────────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	if m.overlay == overlayConfirmDelete {
		name := ""
		if note, ok := m.current(); ok {
			name = note.Name
		}
		return overlayBoxStyle.Render("Delete \"" + fitText(name, 40) + "\"?\n\ny: yes    n: no")
	}
	if m.overlay == overlayError {
		return overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + m.overlayText + "\n\nenter / esc: close")
	}

	switch m.mode {
	case modeDetail:
		return m.viewDetail()
	case modeCreate, modeEdit:
		return m.viewForm()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" loading notes...")
	} else if len(m.notes) == 0 {
		b.WriteString("no notes yet, press n to create one")
	} else {
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			marker := "   "
			if note.HasImage() {
				marker = "[i]"
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, marker, fitText(valueOrDash(note.Name), 48)))
		}
	}

	if m.refreshing {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" refreshing...")
	}
	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
	}

	return renderPage("NOTES", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ s: refresh │ l: logout │ q: quit")
}

func (m mainLoopModel) viewDetail() string {
	note, ok := m.current()
	if !ok {
		return m.viewList()
	}

	var b strings.Builder
	b.WriteString("Name:     ")
	b.WriteString(valueOrDash(note.Name))
	b.WriteString("\n")
	b.WriteString("Created:  ")
	b.WriteString(note.CreatedAt.Format(time.DateTime))
	b.WriteString("\n")
	b.WriteString("Updated:  ")
	b.WriteString(note.UpdatedAt.Format(time.DateTime))
	b.WriteString("\n")
	b.WriteString("Image:    ")
	b.WriteString(valueOrDash(note.ImageURL))
	b.WriteString("\n\n")
	b.WriteString(valueOrDash(note.Description))

	if m.deleting {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" deleting...")
	}
	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
	}

	hotKeys := "e: edit │ d: delete │ c: copy text │ esc: back"
	if note.ImageURL != "" {
		hotKeys = "e: edit │ d: delete │ c: copy text │ u: copy image url │ esc: back"
	}

	return renderPage("NOTE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewForm() string {
	title := "NEW NOTE"
	if m.mode == modeEdit {
		title = "EDIT NOTE"
	}

	var b strings.Builder
	b.WriteString("Name:\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString("Description:\n")
	b.WriteString(m.descArea.View())
	b.WriteString("\n")

	if m.mode == modeCreate {
		b.WriteString("\nImage:\n")
		b.WriteString(m.imageInput.View())
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" saving...")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"ctrl+s: save │ tab: next field │ esc: cancel")
}
