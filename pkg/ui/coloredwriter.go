package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

func newColoredWriter(writer io.Writer, style lipgloss.Style) io.Writer {
	return coloredWriter{writer: writer, style: style}
}

type coloredWriter struct {
	writer io.Writer
	style  lipgloss.Style
}

func (w coloredWriter) Write(p []byte) (n int, err error) {
	n, err = fmt.Fprint(w.writer, w.style.Render(string(p)))
	return n, err
}
