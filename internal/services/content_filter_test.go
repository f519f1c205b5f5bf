package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentFilter(t *testing.T) {
	f := NewContentFilter()

	tests := []struct {
		name       string
		text       string
		ok         bool
		wantReason string
	}{
		{"normal post", "Caught the BA A380 on short final for 27R this morning.", true, ""},
		{"empty text passes", "   ", true, ""},
		{"blocked term", "Join my crypto giveaway now", false, "blocked_term"},
		{"blocked term is word-bounded", "I photographed a scampering fox by the fence", true, ""},
		{"repeated characters", "woooooooooow what a landing", false, "spam_detected"},
		{"caps in registration codes are fine", "G-XLEB departed as BAW179 to JFK", true, ""},
		{"excessive caps", "AMAZING SPOTTING TRIPS CHEAP FLIGHTS GREAT DEALS TODAY", false, "excessive_caps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := f.Check(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestRejectionMessage(t *testing.T) {
	f := NewContentFilter()
	assert.Equal(t, "Your content appears to be spam.", f.RejectionMessage("spam_detected"))
	assert.Equal(t, "Your content does not meet the community guidelines.", f.RejectionMessage("something_else"))
}
