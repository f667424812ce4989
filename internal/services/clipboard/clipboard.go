// Package clipboard delivers assembled report text to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier is the output sink receiving a fully assembled report in one write.
type Copier interface {
	Copy(text string) error
}

// SystemClipboard implements Copier on top of github.com/atotto/clipboard.
type SystemClipboard struct{}

// NewSystemClipboard constructs the production clipboard sink.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Copy places text on the system clipboard, replacing its previous contents.
func (clipboardSink *SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ Copier = (*SystemClipboard)(nil)
