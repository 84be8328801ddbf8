package mapping

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/fluent/config"
	"github.com/neuronlabs/fluent/errors"
	"github.com/neuronlabs/fluent/errors/class"
	"github.com/neuronlabs/fluent/namer"
)

// TestRegisterModels tests the model registration process.
func TestRegisterModels(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		m := testingModelMap(t, &User{}, &Post{}, &Comment{})

		assert.Len(t, m.Models(), 3)

		mStruct := m.Get(reflect.TypeOf(Post{}))
		require.NotNil(t, mStruct)

		assert.Equal(t, "Post", mStruct.Type().Name())
		assert.Equal(t, "posts", mStruct.Collection())

		primary := mStruct.Primary()
		require.NotNil(t, primary)
		assert.Equal(t, "ID", primary.Name())
		assert.Equal(t, "id", primary.FluentName())
		assert.Equal(t, KindPrimary, primary.Kind())

		t.Run("OmittedField", func(t *testing.T) {
			_, ok := mStruct.FieldByName("Meta")
			assert.False(t, ok)
		})

		t.Run("EmbeddedStore", func(t *testing.T) {
			assert.NotNil(t, mStruct.relationsStoreIndex)
		})

		t.Run("Config", func(t *testing.T) {
			cfg := mStruct.Config()
			require.NotNil(t, cfg)
			assert.Equal(t, "posts", cfg.Collection)
		})
	})

	t.Run("TaggedPrimary", func(t *testing.T) {
		m := testingModelMap(t, &User{}, &Vote{})

		mStruct := m.Get(reflect.TypeOf(Vote{}))
		require.NotNil(t, mStruct)

		primary := mStruct.Primary()
		require.NotNil(t, primary)
		assert.Equal(t, "Key", primary.Name())
	})

	t.Run("AlreadyRegistered", func(t *testing.T) {
		m := testingModelMap(t, &User{})

		mStruct := m.Get(reflect.TypeOf(User{}))
		require.NotNil(t, mStruct)

		// registering the model again leaves the mapping untouched
		require.NoError(t, m.RegisterModels(&User{}))
		assert.Len(t, m.Models(), 1)
		assert.True(t, mStruct == m.Get(reflect.TypeOf(User{})))
	})

	t.Run("NilModel", func(t *testing.T) {
		m := NewModelMap(namer.NamingSnake, config.Default())

		err := m.RegisterModels(nil)
		require.Error(t, err)
		assert.Equal(t, class.ModelValueNil, errors.ClassOf(err))
	})

	t.Run("NonStruct", func(t *testing.T) {
		m := NewModelMap(namer.NamingSnake, config.Default())

		err := m.RegisterModels("invalid")
		require.Error(t, err)
		assert.Equal(t, class.ModelValueInvalid, errors.ClassOf(err))
	})

	t.Run("NoPrimary", func(t *testing.T) {
		type Nameless struct {
			Relations
			Label string
		}
		m := NewModelMap(namer.NamingSnake, config.Default())

		err := m.RegisterModels(&Nameless{})
		require.Error(t, err)
		assert.Equal(t, class.ModelMappingNoFields, errors.ClassOf(err))
	})

	t.Run("UnknownRelationKind", func(t *testing.T) {
		type Broken struct {
			Relations
			ID     int
			Target *User `fluent:"relation=weird"`
		}
		m := NewModelMap(namer.NamingSnake, config.Default())

		err := m.RegisterModels(&User{}, &Broken{})
		require.Error(t, err)
		assert.Equal(t, class.ModelFieldInvalid, errors.ClassOf(err))
	})
}

// TestModelMapGetters tests the model map lookup methods.
func TestModelMapGetters(t *testing.T) {
	m := testingModelMap(t, &User{}, &Post{}, &Comment{})

	t.Run("Get", func(t *testing.T) {
		// the pointer and slice types dereference down to the struct type
		assert.NotNil(t, m.Get(reflect.TypeOf(&Post{})))
		assert.NotNil(t, m.Get(reflect.TypeOf([]*Post{})))
		assert.Nil(t, m.Get(reflect.TypeOf(&Vote{})))
	})

	t.Run("GetByCollection", func(t *testing.T) {
		mStruct := m.GetByCollection("posts")
		require.NotNil(t, mStruct)
		assert.Equal(t, "Post", mStruct.Type().Name())

		assert.Nil(t, m.GetByCollection("unknown"))
	})

	t.Run("GetModelStruct", func(t *testing.T) {
		mStruct, err := m.GetModelStruct(&Comment{})
		require.NoError(t, err)
		assert.Equal(t, "comments", mStruct.Collection())

		_, err = m.GetModelStruct(&Vote{})
		require.Error(t, err)
		assert.Equal(t, class.ModelNotMapped, errors.ClassOf(err))

		_, err = m.GetModelStruct(nil)
		require.Error(t, err)
		assert.Equal(t, class.ModelValueNil, errors.ClassOf(err))
	})

	t.Run("ModelByName", func(t *testing.T) {
		mStruct := m.ModelByName("User")
		require.NotNil(t, mStruct)
		assert.Equal(t, "users", mStruct.Collection())

		assert.Nil(t, m.ModelByName("Unknown"))
	})
}
