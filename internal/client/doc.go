// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, the note lifecycle controller, and background
// synchronization into a single process lifecycle.
package client
