// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal interface of the note
// client on top of Bubble Tea.
//
// The interface runs as two consecutive programs: an authentication flow
// (menu, login, register pages routed by [RootModel]) and the main loop
// (note list, detail, create and edit screens in [mainLoopModel]). All
// remote work is dispatched as asynchronous tea commands so the UI never
// blocks on the network.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/notebook"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// authClient is the slice of the server adapter the auth pages need.
type authClient interface {
	Register(ctx context.Context, user models.User) error
	Login(ctx context.Context, user models.User) error
}

// TUI wires the terminal interface to the server adapter and the note
// lifecycle controller.
type TUI struct {
	auth       authClient
	controller *notebook.Controller
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(auth authClient, controller *notebook.Controller, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if auth == nil || controller == nil {
		return nil, fmt.Errorf("tui requires an auth client and a controller")
	}
	return &TUI{auth: auth, controller: controller, buildInfo: buildInfo, logger: log}, nil
}

// LoginFlow runs the authentication program: main menu, login and register
// pages. It blocks until the user either authenticates (nil error) or quits
// ([ErrUserQuit]).
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.auth),
		"register": NewRegisterModel(ctx, t.auth),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authenticated {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the note screens until the user quits or logs out. It
// reports logout=true when the caller should restart the login flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.controller, t.logger)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.logout, nil
}
