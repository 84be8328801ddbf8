package fluent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/fluent/config"
	"github.com/neuronlabs/fluent/errors"
	"github.com/neuronlabs/fluent/errors/class"
	"github.com/neuronlabs/fluent/mapping"
)

// Note is the testing model.
type Note struct {
	mapping.Relations

	ID     int
	Body   string
	Author *Writer `fluent:"relation=belongsTo"`
}

// Writer is the testing model related to the Note.
type Writer struct {
	mapping.Relations

	ID int
}

// TestNew tests creating the configured model maps.
func TestNew(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		m, err := New(nil)
		require.NoError(t, err)
		require.NotNil(t, m)

		require.NoError(t, m.RegisterModels(&Writer{}, &Note{}))

		mStruct, err := m.GetModelStruct(&Note{})
		require.NoError(t, err)
		assert.Equal(t, "notes", mStruct.Collection())
		assert.Len(t, mStruct.FluentRelations(), 1)
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		cfg := config.Default()
		cfg.NamingConvention = "screaming"

		_, err := New(cfg)
		require.Error(t, err)
		assert.Equal(t, class.ConfigValueNamingConvention, errors.ClassOf(err))
	})

	t.Run("CollectionSingular", func(t *testing.T) {
		cfg := config.Default()
		cfg.CollectionSingular = true

		m, err := New(cfg)
		require.NoError(t, err)

		require.NoError(t, m.RegisterModels(&Writer{}))
		assert.NotNil(t, m.GetByCollection("writer"))
	})
}
