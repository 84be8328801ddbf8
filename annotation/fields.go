package annotation

// Fluent is the root structfield annotation tag.
const Fluent = "fluent"

// Model primary field annotation tags.
const (
	Primary      = "primary"
	PrimaryFull  = "primary_key"
	PrimaryShort = "pk"
)

// Relation is the field's tag used to mark the field as a fluent relation
// and to set the relation kind.
const Relation = "relation"

// Arguments is the relation field's tag used to provide the relation
// constructor arguments.
const Arguments = "args"

// Name is the model field's tag used to set the field's naming convention name.
const Name = "name"

// Relation kind tag values. Each value is the lower camel case form of the
// relation constructor it maps to.
const (
	BelongsTo  = "belongsTo"
	HasOne     = "hasOne"
	HasMany    = "hasMany"
	ManyToMany = "many2Many"
)
