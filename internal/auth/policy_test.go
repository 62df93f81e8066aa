package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"feedbackboard/internal/model"
)

func TestCanViewProfile(t *testing.T) {
	assert.False(t, CanViewProfile(""))
	assert.True(t, CanViewProfile("alice"))
	// Any logged-in identity may view any profile.
	assert.True(t, CanViewProfile("bob"))
}

func TestCanModifyUser(t *testing.T) {
	tests := []struct {
		name      string
		requester string
		target    string
		want      bool
	}{
		{"anonymous", "", "alice", false},
		{"owner", "alice", "alice", true},
		{"other user", "bob", "alice", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyUser(tt.requester, tt.target))
		})
	}
}

func TestCanModifyFeedback(t *testing.T) {
	fb := &model.Feedback{ID: 1, Title: "T", Content: "C", Username: "alice"}

	assert.True(t, CanModifyFeedback("alice", fb))
	assert.False(t, CanModifyFeedback("bob", fb))
	assert.False(t, CanModifyFeedback("", fb))
	assert.False(t, CanModifyFeedback("alice", nil))
	assert.False(t, CanModifyFeedback("", &model.Feedback{}))
}
