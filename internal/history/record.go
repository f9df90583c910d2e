package history

import (
	"time"

	"github.com/google/uuid"
)

// Record is one stored dialog invocation.
type Record struct {
	ID        uuid.UUID
	Kind      string
	Title     string
	Command   string
	Response  string
	Content   *string
	ExitCode  int
	CreatedAt time.Time
}

// NewRecord builds a record for an invocation that just completed, assigning
// a fresh id and timestamp.
func NewRecord(kind, title, command, response string, content *string, exitCode int) Record {
	return Record{
		ID:        uuid.New(),
		Kind:      kind,
		Title:     title,
		Command:   command,
		Response:  response,
		Content:   content,
		ExitCode:  exitCode,
		CreatedAt: time.Now().UTC(),
	}
}

// Filter narrows List results. Zero values mean no constraint.
type Filter struct {
	Kind     string
	Response string
	Since    *time.Time
	Limit    int
}
