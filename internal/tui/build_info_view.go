// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/voice-notes/models"
)

func renderBuildInfoWindow(client models.AppBuildInfo, server *models.AppBuildInfo, serverErr string) string {
	var b strings.Builder

	client = client.Defaulted()
	b.WriteString("Application: Voice Notes\n\n")
	b.WriteString("Client version: ")
	b.WriteString(client.Version)
	b.WriteString("\nClient date:    ")
	b.WriteString(client.Date)
	b.WriteString("\nClient commit:  ")
	b.WriteString(client.Commit)
	b.WriteString("\n\nServer version: ")

	switch {
	case server != nil:
		b.WriteString(server.Defaulted().Version)
	case serverErr != "":
		b.WriteString("unavailable (" + serverErr + ")")
	default:
		b.WriteString("loading...")
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}
