package session_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/saulo-duarte/qa-agents/internal/session"
)

func intPtr(n int) *int { return &n }

func TestSessionRequestNormalize(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		subject, numPairs, err := session.SessionRequest{Subject: "Photosynthesis", NumPairs: intPtr(3)}.Normalize()
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if subject != "Photosynthesis" || numPairs != 3 {
			t.Errorf("got (%q, %d)", subject, numPairs)
		}
	})

	t.Run("TrimsSubject", func(t *testing.T) {
		subject, _, err := session.SessionRequest{Subject: "  Go  ", NumPairs: intPtr(1)}.Normalize()
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if subject != "Go" {
			t.Errorf("subject = %q, want %q", subject, "Go")
		}
	})

	t.Run("DefaultsNumPairs", func(t *testing.T) {
		_, numPairs, err := session.SessionRequest{Subject: "Go"}.Normalize()
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if numPairs != session.DefaultPairs {
			t.Errorf("numPairs = %d, want %d", numPairs, session.DefaultPairs)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		cases := []struct {
			name string
			req  session.SessionRequest
		}{
			{"EmptySubject", session.SessionRequest{Subject: "", NumPairs: intPtr(3)}},
			{"WhitespaceSubject", session.SessionRequest{Subject: "   ", NumPairs: intPtr(3)}},
			{"ZeroPairs", session.SessionRequest{Subject: "Go", NumPairs: intPtr(0)}},
			{"NegativePairs", session.SessionRequest{Subject: "Go", NumPairs: intPtr(-1)}},
			{"TooManyPairs", session.SessionRequest{Subject: "Go", NumPairs: intPtr(51)}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, _, err := tc.req.Normalize()
				var vErr *session.ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("expected ValidationError, got %v", err)
				}
			})
		}
	})
}

func TestSessionResponseRoundTrip(t *testing.T) {
	original := session.SessionResponse{
		Subject:  "Photosynthesis",
		NumPairs: 2,
		Pairs: []session.QAPair{
			{ID: 1, Question: "What is chlorophyll?", Answer: "A pigment."},
			{ID: 2, Question: "How is light used?", Answer: "It drives the reaction."},
		},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded session.SessionResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip changed the response:\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}
