package session

import "strings"

const (
	MinPairs     = 1
	MaxPairs     = 50
	DefaultPairs = 10
)

// SessionRequest is the payload for POST /run-session. NumPairs is a
// pointer so an omitted field can default while an explicit 0 is rejected.
type SessionRequest struct {
	Subject  string `json:"subject"`
	NumPairs *int   `json:"num_pairs"`
}

// Normalize validates the request and returns the trimmed subject and
// the effective pair count. Invalid input yields a *ValidationError.
func (r SessionRequest) Normalize() (string, int, error) {
	subject := strings.TrimSpace(r.Subject)
	if subject == "" {
		return "", 0, &ValidationError{Reason: "subject cannot be empty or whitespace only"}
	}

	numPairs := DefaultPairs
	if r.NumPairs != nil {
		numPairs = *r.NumPairs
	}
	if numPairs < MinPairs || numPairs > MaxPairs {
		return "", 0, &ValidationError{Reason: "num_pairs must be between 1 and 50"}
	}

	return subject, numPairs, nil
}

// QAPair is one generated question with its answer. ID is the 1-based
// position in generation order.
type QAPair struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SessionResponse struct {
	Subject  string   `json:"subject"`
	NumPairs int      `json:"num_pairs"`
	Pairs    []QAPair `json:"pairs"`
}
