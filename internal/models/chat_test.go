package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_BeforeCreateNormalizesPair(t *testing.T) {
	t.Parallel()

	conv := &Conversation{UserAID: 9, UserBID: 4}
	require.NoError(t, conv.BeforeCreate(nil))
	assert.Equal(t, uint(4), conv.UserAID)
	assert.Equal(t, uint(9), conv.UserBID)

	// Already ordered pairs are untouched.
	conv = &Conversation{UserAID: 4, UserBID: 9}
	require.NoError(t, conv.BeforeCreate(nil))
	assert.Equal(t, []uint{4, 9}, conv.Participants())
}

func TestConversation_ParticipantHelpers(t *testing.T) {
	t.Parallel()

	alice := &User{ID: 1, Username: "alice"}
	bob := &User{ID: 2, Username: "bob"}
	conv := &Conversation{UserAID: 1, UserBID: 2, UserA: alice, UserB: bob}

	assert.True(t, conv.HasParticipant(1))
	assert.True(t, conv.HasParticipant(2))
	assert.False(t, conv.HasParticipant(3))

	assert.Equal(t, "bob", conv.Other(1).Username)
	assert.Equal(t, "alice", conv.Other(2).Username)
}
