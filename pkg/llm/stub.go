package llm

import (
	"context"
	"errors"
	"sync"
)

// StubClient is a canned-response Client for tests and dry runs.
// Responses are consumed in order; when the queue is empty the
// configured Err (or a transport error) is returned.
type StubClient struct {
	mu        sync.Mutex
	responses []string
	requests  []Request

	// Err, when set, is returned for every call.
	Err error
}

// NewStubClient queues the given responses.
func NewStubClient(responses ...string) *StubClient {
	return &StubClient{responses: responses}
}

// Requests returns the requests seen so far.
func (s *StubClient) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Text pops the next canned response.
func (s *StubClient) Text(_ context.Context, req Request) (string, error) {
	return s.next(req)
}

// Structured pops the next canned response and decodes it like the
// real client would, schema validation included.
func (s *StubClient) Structured(_ context.Context, req Request, schema []byte, out any) error {
	text, err := s.next(req)
	if err != nil {
		return err
	}
	return DecodeStructured(text, schema, out)
}

func (s *StubClient) next(req Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.responses) == 0 {
		return "", &Error{Kind: KindTransport, Err: errors.New("stub has no queued responses")}
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}
