package mapping

import (
	"strings"

	"github.com/neuronlabs/fluent/annotation"
	"github.com/neuronlabs/fluent/log"
	"github.com/neuronlabs/fluent/namer"
)

// RelationKind is the relation field's relationship kind enum.
type RelationKind int

const (
	// RelUnknown is the unknown default relation kind. Used as the generic
	// relation marker that carries no binding instructions.
	RelUnknown RelationKind = iota

	// RelBelongsTo is the enum value for the 'belongs to' relation kind.
	// This kind states that the model containing the relation field contains
	// also the foreign key of the related model.
	RelBelongsTo

	// RelHasOne is the enum value for the 'has one' relation kind.
	// This kind states that the model is in a one to one relationship with
	// the related model and the foreign key is located in the related model.
	RelHasOne

	// RelHasMany is the enum value for the 'has many' relation kind.
	// This kind states that the model is in a many to one relationship with
	// the related model.
	RelHasMany

	// RelMany2Many is the enum value for the 'many to many' relation kind.
	RelMany2Many
)

// String implements fmt.Stringer interface.
func (r RelationKind) String() string {
	switch r {
	case RelUnknown:
	case RelBelongsTo:
		return "BelongsTo"
	case RelHasOne:
		return "HasOne"
	case RelHasMany:
		return "HasMany"
	case RelMany2Many:
		return "Many2Many"
	}
	return "Unknown"
}

// IsToOne defines if the relation kind is of to one type.
func (r RelationKind) IsToOne() bool {
	switch r {
	case RelBelongsTo, RelHasOne:
		return true
	}
	return false
}

// IsToMany defines if the relation kind is of to many type.
func (r RelationKind) IsToMany() bool {
	switch r {
	case RelHasMany, RelMany2Many:
		return true
	}
	return false
}

// ParseRelationKind parses the relation kind from its tag value form.
func ParseRelationKind(value string) (RelationKind, bool) {
	switch value {
	case annotation.BelongsTo:
		return RelBelongsTo, true
	case annotation.HasOne:
		return RelHasOne, true
	case annotation.HasMany:
		return RelHasMany, true
	case annotation.ManyToMany:
		return RelMany2Many, true
	}
	return RelUnknown, false
}

// Descriptor describes how to construct the relation for a fluent field.
type Descriptor struct {
	// Kind is the relation kind the descriptor binds to.
	Kind RelationKind

	// Arguments are the relation constructor arguments, used as given.
	// For the to one kinds with no arguments a default foreign key argument
	// is synthesized while binding.
	Arguments []string
}

// Declaration is an explicit fluent relation declaration for a single model field.
type Declaration struct {
	// Field is the model's field name the declaration applies to.
	Field string

	// Kind is the relation kind.
	Kind RelationKind

	// Arguments are the relation constructor arguments.
	Arguments []string
}

// RelationDeclarer is implemented by the models that declare their fluent
// relations explicitly instead of using the 'fluent' field tags.
// Explicit declarations take precedence over the field tags.
type RelationDeclarer interface {
	FluentRelations() []Declaration
}

// Relation is the relation object constructed for a bound fluent relation field.
type Relation struct {
	kind        RelationKind
	constructor string
	relatedName string
	mStruct     *ModelStruct
	arguments   []string
}

// Kind returns the relation's kind.
func (r *Relation) Kind() RelationKind {
	return r.kind
}

// Constructor returns the lower camel case relation constructor name derived
// from the relation's kind - i.e. 'belongsTo' for the RelBelongsTo kind.
func (r *Relation) Constructor() string {
	return r.constructor
}

// RelatedName returns the name of the related model type.
func (r *Relation) RelatedName() string {
	return r.relatedName
}

// Struct returns the related model's *ModelStruct.
// Returns nil when the related type is not a registered model.
func (r *Relation) Struct() *ModelStruct {
	return r.mStruct
}

// Arguments returns the relation constructor arguments.
func (r *Relation) Arguments() []string {
	return r.arguments
}

// String implements fmt.Stringer interface.
func (r *Relation) String() string {
	return r.constructor + "(" + strings.Join(r.arguments, ", ") + ")"
}

// RelationResolver resolves the relation object for the provided model instance.
type RelationResolver func(model interface{}) (*Relation, error)

// bindingFunc is the binding strategy for a single relation kind.
type bindingFunc func(m *ModelMap, mStruct *ModelStruct, sField *StructField, descriptor *Descriptor) *Relation

// bindingStrategies maps the closed set of relation kinds to their binding
// strategies.
var bindingStrategies = map[RelationKind]bindingFunc{
	RelBelongsTo: bindToOne,
	RelHasOne:    bindToOne,
	RelHasMany:   bindToMany,
	RelMany2Many: bindToMany,
}

// bindToOne binds the to one relation kinds. When the descriptor carries no
// arguments the default foreign key is synthesized from the field's name and
// the model's primary key name. The related type name is always prepended as
// the first constructor argument.
func bindToOne(m *ModelMap, mStruct *ModelStruct, sField *StructField, descriptor *Descriptor) *Relation {
	arguments := descriptor.Arguments
	if len(arguments) == 0 {
		foreignKey := namer.DefaultForeignKey(sField.Name(), mStruct.primary.FluentName())
		log.Debugf("Model: '%s' field: '%s' synthesized the default foreign key: '%s'", mStruct.Type().Name(), sField.Name(), foreignKey)
		arguments = []string{foreignKey}
	}
	arguments = append([]string{sField.BaseType().Name()}, arguments...)
	return newRelation(m, sField, descriptor.Kind, arguments)
}

// bindToMany binds the to many relation kinds with the descriptor arguments
// taken as given.
func bindToMany(m *ModelMap, mStruct *ModelStruct, sField *StructField, descriptor *Descriptor) *Relation {
	return newRelation(m, sField, descriptor.Kind, descriptor.Arguments)
}

func newRelation(m *ModelMap, sField *StructField, kind RelationKind, arguments []string) *Relation {
	return &Relation{
		kind:        kind,
		constructor: namer.NamingLowerCamel(kind.String()),
		relatedName: sField.BaseType().Name(),
		mStruct:     m.Get(sField.BaseType()),
		arguments:   arguments,
	}
}
