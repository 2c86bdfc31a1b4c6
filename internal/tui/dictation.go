package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// dictationFeed carries session callbacks into the Bubble Tea loop. One feed
// serves exactly one recording; messages from an older feed are ignored.
//
// Callbacks never block. Interim transcripts are cumulative, so when the UI
// falls behind the oldest pending one is dropped; the newest is always kept
// and travels with the stop message.
type dictationFeed struct {
	transcripts chan string
	stopped     chan error
}

func newDictationFeed() *dictationFeed {
	return &dictationFeed{
		transcripts: make(chan string, 32),
		stopped:     make(chan error, 1),
	}
}

func (f *dictationFeed) onTranscript(text string) {
	for {
		select {
		case f.transcripts <- text:
			return
		default:
		}
		select {
		case <-f.transcripts:
		default:
		}
	}
}

func (f *dictationFeed) onStop(err error) {
	f.stopped <- err
}

// next waits for the following feed event.
func (f *dictationFeed) next() tea.Cmd {
	return func() tea.Msg {
		select {
		case text := <-f.transcripts:
			return transcriptMsg{feed: f, text: text}
		case err := <-f.stopped:
			return dictationStoppedMsg{feed: f, text: f.drain(), err: err}
		}
	}
}

func (f *dictationFeed) drain() string {
	var last string
	for {
		select {
		case text := <-f.transcripts:
			last = text
		default:
			return last
		}
	}
}

func cmdStartDictation(ctx context.Context, d Dictation, feed *dictationFeed) tea.Cmd {
	return func() tea.Msg {
		err := d.Start(ctx, feed.onTranscript, feed.onStop)
		return dictationStartedMsg{feed: feed, err: err}
	}
}

// cmdStopDictation stops off the UI goroutine; the stop itself is reported
// through the feed.
func cmdStopDictation(d Dictation) tea.Cmd {
	return func() tea.Msg {
		d.Stop()
		return nil
	}
}
