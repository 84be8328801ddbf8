package mapping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/fluent/config"
	"github.com/neuronlabs/fluent/namer"
)

// User is the testing model being the related side of the relations.
type User struct {
	Relations

	ID   int
	Name string
}

// Post is the testing model with the tagged, collection and omitted fields.
type Post struct {
	Relations

	ID       int
	Title    string
	Author   *User      `fluent:"relation=belongsTo"`
	Editor   User       `fluent:"relation=hasOne"`
	Comments []*Comment `fluent:"relation=hasMany;args=PostID"`
	Tags     Collection
	Meta     string `fluent:"-"`
}

// Comment is the testing model with an untagged model typed field.
type Comment struct {
	Relations

	ID   int
	Body string
	Post *Post
}

// Profile is the testing model that declares its relations explicitly.
// The declaration takes precedence over the field's tag.
type Profile struct {
	Relations

	ID    int
	Owner *User `fluent:"relation=belongsTo"`
}

// FluentRelations implements mapping.RelationDeclarer interface.
func (p *Profile) FluentRelations() []Declaration {
	return []Declaration{
		{Field: "Owner", Kind: RelHasOne, Arguments: []string{"profile_id"}},
	}
}

// Vote is the testing model with the tag based primary key and a renamed
// relation field.
type Vote struct {
	Relations

	Key   string `fluent:"primary"`
	Voter *User  `fluent:"relation=belongsTo;name=creator"`
}

// Untracked is the testing model without the embedded Relations store.
type Untracked struct {
	ID     int
	Author *User `fluent:"relation=belongsTo"`
}

func testingModelMap(t *testing.T, models ...interface{}) *ModelMap {
	t.Helper()

	m := NewModelMap(namer.NamingSnake, config.Default())
	require.NoError(t, m.RegisterModels(models...))
	return m
}
