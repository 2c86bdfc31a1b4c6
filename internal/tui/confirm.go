package tui

func renderConfirm(subject string) string {
	content := "Delete \"" + fitText(subject, 40) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
