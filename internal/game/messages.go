package game

import "strings"

// MsgPriority controls the color of a message in the comms log.
type MsgPriority uint8

const (
	MsgInfo     MsgPriority = iota // cyan
	MsgWarning                     // yellow
	MsgCritical                    // red
	MsgTrade                       // green
	MsgSocial                      // white
)

// Message is a single line in the comms log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// CommsWidth is the wrap width of the comms panel, in characters.
const CommsWidth = 55

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	maxSize = max(maxSize, 0)
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends a message, wrapping it at CommsWidth and evicting the oldest
// lines once full. A log with no room drops everything.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	if l.maxSize <= 0 {
		return
	}
	for _, line := range wrapText(text, CommsWidth) {
		msg := Message{Text: line, Priority: priority}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

func wrapText(s string, maxWidth int) []string {
	if len(s) <= maxWidth {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var result []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(result, line)
}

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	n = min(max(n, 0), len(l.Messages))
	return l.Messages[len(l.Messages)-n:]
}

// Len returns the number of stored lines.
func (l *MessageLog) Len() int { return len(l.Messages) }
