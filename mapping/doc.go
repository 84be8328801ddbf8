// Package mapping contains the fluent model mapping.
//
// The ModelMap registers the models, discovers their fluent relation fields
// and binds the relation objects for them. The relation fields are described
// with the 'fluent' struct tags or declared explicitly by implementing the
// RelationDeclarer interface. The models that embed the Relations store allow
// the per instance relation table operations - SetRelation, UnsetRelation,
// SetRelations, UnsetRelations, GetRelation and RelationLoaded.
package mapping
