package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

func TestNewHousehold(t *testing.T) {
	t.Run("Success: generates id and invite code", func(t *testing.T) {
		h, err := domain.NewHousehold("  Campbell House  ")

		require.NoError(t, err)
		assert.Equal(t, "Campbell House", h.Name)
		assert.NotEmpty(t, h.ID)
		assert.Len(t, h.InviteCode, 6)
		assert.WithinDuration(t, time.Now().UTC(), h.CreatedAt, 2*time.Second)
	})

	t.Run("Error: empty name", func(t *testing.T) {
		_, err := domain.NewHousehold("   ")
		assert.Equal(t, domain.ErrHouseholdNameEmpty, err)
	})

	t.Run("Error: name too long", func(t *testing.T) {
		_, err := domain.NewHousehold(strings.Repeat("x", 101))
		assert.Equal(t, domain.ErrHouseholdNameLong, err)
	})
}

func TestHousehold_RotateInviteCode(t *testing.T) {
	h, err := domain.NewHousehold("Test")
	require.NoError(t, err)

	old := h.InviteCode
	h.RotateInviteCode()

	assert.Len(t, h.InviteCode, 6)
	assert.NotEqual(t, old, h.InviteCode)
}

func TestGenerateInviteCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := domain.GenerateInviteCode()
		assert.Len(t, code, 6)
		// Ambiguous glyphs are excluded from the alphabet.
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "I")
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "1")
		seen[code] = true
	}
	assert.Greater(t, len(seen), 90, "codes should be effectively unique")
}
