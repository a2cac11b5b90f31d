// internal/domain/notification/state.go
package notification

// State remembers what was last delivered to the chat.
// Status messages and error messages are tracked independently.
// It is owned by a single poller and is not safe for concurrent use.
type State struct {
	LastMessage      string
	LastErrorMessage string
}

// IsNewMessage reports whether a status message should be sent.
func (s *State) IsNewMessage(message string) bool {
	return message != s.LastMessage
}

// IsNewError reports whether an error message should be sent.
func (s *State) IsNewError(message string) bool {
	return message != s.LastErrorMessage
}

// MessageSent records a delivered status message.
func (s *State) MessageSent(message string) {
	s.LastMessage = message
}

// ErrorSent records a delivered error message.
func (s *State) ErrorSent(message string) {
	s.LastErrorMessage = message
}
