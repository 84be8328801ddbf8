package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/fluent/errors"
	"github.com/neuronlabs/fluent/errors/class"
)

// TestSetRelation tests setting the single relation values.
func TestSetRelation(t *testing.T) {
	m := testingModelMap(t, &User{}, &Post{}, &Comment{})

	t.Run("FluentField", func(t *testing.T) {
		post := &Post{ID: 1}
		author := &User{ID: 2, Name: "Sam"}

		require.NoError(t, m.SetRelation(post, "author", author))

		assert.True(t, post.Author == author)
		assert.True(t, m.RelationLoaded(post, "author"))

		value, err := m.GetRelation(post, "author")
		require.NoError(t, err)
		assert.True(t, value.(*User) == author)
	})

	t.Run("TableOnly", func(t *testing.T) {
		post := &Post{ID: 1}

		// a name that matches no fluent field lands in the table only
		require.NoError(t, m.SetRelation(post, "likes", 10))

		assert.True(t, m.RelationLoaded(post, "likes"))
		value, err := m.GetRelation(post, "likes")
		require.NoError(t, err)
		assert.Equal(t, 10, value)
	})

	t.Run("NilValue", func(t *testing.T) {
		post := &Post{ID: 1, Author: &User{ID: 2}}

		// the nullable field gets zeroed
		require.NoError(t, m.SetRelation(post, "author", nil))
		assert.Nil(t, post.Author)
		assert.True(t, m.RelationLoaded(post, "author"))

		// the typed nil behaves like the untyped one
		post.Author = &User{ID: 2}
		require.NoError(t, m.SetRelation(post, "author", (*User)(nil)))
		assert.Nil(t, post.Author)
	})

	t.Run("NilValueNonNullable", func(t *testing.T) {
		post := &Post{ID: 1, Editor: User{ID: 3}}

		// the non nullable field stays untouched, the table records the nil
		require.NoError(t, m.SetRelation(post, "editor", nil))
		assert.Equal(t, 3, post.Editor.ID)
		assert.True(t, m.RelationLoaded(post, "editor"))
	})

	t.Run("CollectionField", func(t *testing.T) {
		post := &Post{ID: 1}

		t.Run("Slice", func(t *testing.T) {
			require.NoError(t, m.SetRelation(post, "tags", []string{"go", "orm"}))
			assert.Equal(t, Collection{"go", "orm"}, post.Tags)
		})

		t.Run("Collection", func(t *testing.T) {
			require.NoError(t, m.SetRelation(post, "tags", NewCollection("go")))
			assert.Equal(t, Collection{"go"}, post.Tags)
		})

		t.Run("Scalar", func(t *testing.T) {
			require.NoError(t, m.SetRelation(post, "tags", "go"))
			assert.Equal(t, Collection{"go"}, post.Tags)
		})
	})

	t.Run("NotAssignable", func(t *testing.T) {
		post := &Post{ID: 1}

		err := m.SetRelation(post, "author", 42)
		require.Error(t, err)
		assert.Equal(t, class.ModelRelationInvalidValue, errors.ClassOf(err))
		assert.Nil(t, post.Author)

		// the rejected value lands neither in the field nor in the table
		assert.False(t, m.RelationLoaded(post, "author"))
	})

	t.Run("InvalidInstance", func(t *testing.T) {
		t.Run("Nil", func(t *testing.T) {
			err := m.SetRelation(nil, "author", &User{})
			require.Error(t, err)
			assert.Equal(t, class.ModelValueNil, errors.ClassOf(err))
		})

		t.Run("NonPointer", func(t *testing.T) {
			err := m.SetRelation(Post{}, "author", &User{})
			require.Error(t, err)
			assert.Equal(t, class.ModelValueInvalid, errors.ClassOf(err))
		})

		t.Run("NotMapped", func(t *testing.T) {
			err := m.SetRelation(&Vote{}, "creator", &User{})
			require.Error(t, err)
			assert.Equal(t, class.ModelNotMapped, errors.ClassOf(err))
		})

		t.Run("NoStore", func(t *testing.T) {
			um := testingModelMap(t, &User{}, &Untracked{})

			err := um.SetRelation(&Untracked{}, "author", &User{})
			require.Error(t, err)
			assert.Equal(t, class.ModelRelationStore, errors.ClassOf(err))
		})
	})
}

// TestUnsetRelation tests removing the single relations.
func TestUnsetRelation(t *testing.T) {
	m := testingModelMap(t, &User{}, &Post{}, &Comment{})

	post := &Post{ID: 1}
	require.NoError(t, m.SetRelation(post, "author", &User{ID: 2}))
	require.NoError(t, m.SetRelation(post, "likes", 10))

	require.NoError(t, m.UnsetRelation(post, "author"))
	assert.Nil(t, post.Author)
	assert.False(t, m.RelationLoaded(post, "author"))

	// unsetting a relation that is not loaded is a no-op
	require.NoError(t, m.UnsetRelation(post, "comments"))

	require.NoError(t, m.UnsetRelation(post, "likes"))
	assert.False(t, m.RelationLoaded(post, "likes"))
}

// TestSetRelations tests replacing the whole relations table.
func TestSetRelations(t *testing.T) {
	m := testingModelMap(t, &User{}, &Post{}, &Comment{})

	post := &Post{ID: 1}
	require.NoError(t, m.SetRelation(post, "author", &User{ID: 2}))
	require.NoError(t, m.SetRelation(post, "likes", 10))

	comments := []*Comment{{ID: 5, Body: "first"}}
	require.NoError(t, m.SetRelations(post, map[string]interface{}{
		"comments": comments,
	}))

	// the stale relations get unset with their fields zeroed
	assert.Nil(t, post.Author)
	assert.False(t, m.RelationLoaded(post, "author"))
	assert.False(t, m.RelationLoaded(post, "likes"))

	assert.Equal(t, comments, post.Comments)
	assert.True(t, m.RelationLoaded(post, "comments"))
}

// TestUnsetRelations tests clearing the whole relations table.
func TestUnsetRelations(t *testing.T) {
	m := testingModelMap(t, &User{}, &Post{}, &Comment{})

	post := &Post{ID: 1}
	require.NoError(t, m.SetRelation(post, "author", &User{ID: 2}))
	require.NoError(t, m.SetRelation(post, "tags", []string{"go"}))
	require.NoError(t, m.SetRelation(post, "likes", 10))

	require.NoError(t, m.UnsetRelations(post))

	assert.Nil(t, post.Author)
	assert.Nil(t, post.Tags)
	assert.False(t, m.RelationLoaded(post, "author"))
	assert.False(t, m.RelationLoaded(post, "tags"))
	assert.False(t, m.RelationLoaded(post, "likes"))
	assert.Empty(t, post.Loaded())
}

// TestGetRelation tests reading the relations table with the lazy resolution.
func TestGetRelation(t *testing.T) {
	m := testingModelMap(t, &User{}, &Post{}, &Comment{})

	t.Run("Loaded", func(t *testing.T) {
		post := &Post{ID: 1}
		author := &User{ID: 2}
		require.NoError(t, m.SetRelation(post, "author", author))

		// the loaded value wins over the bound resolver
		value, err := m.GetRelation(post, "author")
		require.NoError(t, err)
		assert.True(t, value.(*User) == author)
	})

	t.Run("LazyResolve", func(t *testing.T) {
		post := &Post{ID: 1}

		value, err := m.GetRelation(post, "author")
		require.NoError(t, err)

		relation, ok := value.(*Relation)
		require.True(t, ok)
		assert.Equal(t, RelBelongsTo, relation.Kind())

		// the resolved value gets cached in the relations table
		assert.True(t, m.RelationLoaded(post, "author"))
	})

	t.Run("ResolvedOnce", func(t *testing.T) {
		mStruct := m.GetByCollection("posts")
		require.NotNil(t, mStruct)

		var calls int
		mStruct.ResolveRelationUsing("drafts", func(model interface{}) (*Relation, error) {
			calls++
			return &Relation{kind: RelHasMany, constructor: "hasMany"}, nil
		})

		post := &Post{ID: 1}
		first, err := m.GetRelation(post, "drafts")
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := m.GetRelation(post, "drafts")
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.True(t, first.(*Relation) == second.(*Relation))
	})

	t.Run("ResolverError", func(t *testing.T) {
		mStruct := m.GetByCollection("posts")
		require.NotNil(t, mStruct)

		mStruct.ResolveRelationUsing("broken", func(model interface{}) (*Relation, error) {
			return nil, errors.New(class.ModelRelationInvalidValue, "resolution failed")
		})

		post := &Post{ID: 1}
		_, err := m.GetRelation(post, "broken")
		require.Error(t, err)

		// the failed resolution caches nothing
		assert.False(t, m.RelationLoaded(post, "broken"))
	})

	t.Run("NotLoaded", func(t *testing.T) {
		post := &Post{ID: 1}

		// the unbound candidate has no resolver - reads as nil
		value, err := m.GetRelation(post, "tags")
		require.NoError(t, err)
		assert.Nil(t, value)
		assert.False(t, m.RelationLoaded(post, "tags"))
	})
}
