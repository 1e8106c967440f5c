package session

import "context"

// Store archives completed session responses. Implementations decide
// where and how; the handler only logs archival failures, it never
// fails the session over them.
type Store interface {
	Save(ctx context.Context, resp *SessionResponse) (string, error)
}
