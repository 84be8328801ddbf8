package class

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassComposition tests composing and decomposing the classes.
func TestClassComposition(t *testing.T) {
	c := ModelNotMapped

	assert.Equal(t, MjrModel, c.Major())
	assert.True(t, c.IsMajor(MjrModel))
	assert.False(t, c.IsMajor(MjrConfig))

	t.Run("Distinct", func(t *testing.T) {
		// the classes within a single minor differ by the index part
		assert.NotEqual(t, ModelNotMapped, ModelAlreadyRegistered)
		assert.Equal(t, ModelNotMapped.Minor(), ModelAlreadyRegistered.Minor())
		assert.NotEqual(t, ModelNotMapped.Index(), ModelAlreadyRegistered.Index())
	})

	t.Run("Majors", func(t *testing.T) {
		majors := []Class{
			CommonLoggerUnknownLevel,
			ConfigValueInvalid,
			ModelNotMapped,
		}
		seen := map[Major]bool{}
		for _, c := range majors {
			require.False(t, seen[c.Major()])
			seen[c.Major()] = true
		}
	})
}
