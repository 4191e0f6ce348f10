package provider

import (
	"context"

	"github.com/ZaguanLabs/puente"
)

// MockUpstream is a mock translation backend for testing.
type MockUpstream struct {
	Replies     map[string]string // Map of input block to reply
	Reply       string            // Fallback reply when Replies has no match
	Err         error             // Error to return instead of a reply
	CallCount   int               // Number of times Translate was called
	LastRequest *Request          // Last request received
}

// NewMockUpstream creates a mock upstream that echoes the block back,
// simulating a translation that returns the input headers intact.
func NewMockUpstream() *MockUpstream {
	return &MockUpstream{Replies: map[string]string{}}
}

// Translate returns the configured reply for the request block.
func (m *MockUpstream) Translate(ctx context.Context, req Request) (string, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return "", m.Err
	}
	if reply, ok := m.Replies[req.Block]; ok {
		return reply, nil
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	return req.Block, nil
}

// Reset resets the call count and last request.
func (m *MockUpstream) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockUpstream implements Upstream
var _ puente.Upstream = (*MockUpstream)(nil)
