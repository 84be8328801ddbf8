package mapping

import (
	"reflect"

	"github.com/neuronlabs/fluent/annotation"
)

// FieldKind is the model field's kind enum.
type FieldKind int

const (
	// KindUnknown is the unknown field kind.
	KindUnknown FieldKind = iota

	// KindPrimary is the model's primary key field kind.
	KindPrimary

	// KindAttribute is the model's attribute field kind.
	KindAttribute

	// KindRelation is the model's fluent relation field kind.
	KindRelation
)

// String implements fmt.Stringer interface.
func (k FieldKind) String() string {
	switch k {
	case KindPrimary:
		return "Primary"
	case KindAttribute:
		return "Attribute"
	case KindRelation:
		return "Relation"
	}
	return "Unknown"
}

// StructField is the mapped model's single field definition.
type StructField struct {
	mStruct      *ModelStruct
	reflectField reflect.StructField
	fluentName   string
	fieldKind    FieldKind
	nullable     bool
	isCollection bool

	tags       []*FieldTag
	descriptor *Descriptor
	relation   *Relation
}

func newStructField(mStruct *ModelStruct, field reflect.StructField, tags []*FieldTag) *StructField {
	return &StructField{
		mStruct:      mStruct,
		reflectField: field,
		tags:         tags,
		nullable:     isNullable(field.Type),
		isCollection: field.Type == collectionType,
	}
}

// Name returns the field's Go name.
func (s *StructField) Name() string {
	return s.reflectField.Name
}

// FluentName returns the field's name obtained with the naming convention
// or set explicitly with the 'name' tag.
func (s *StructField) FluentName() string {
	return s.fluentName
}

// Kind returns the field's kind.
func (s *StructField) Kind() FieldKind {
	return s.fieldKind
}

// Struct returns the field's model struct.
func (s *StructField) Struct() *ModelStruct {
	return s.mStruct
}

// ReflectField returns the reflect.StructField for given field.
func (s *StructField) ReflectField() reflect.StructField {
	return s.reflectField
}

// BaseType returns the field's base dereferenced type. For the pointer and
// slice types the element's type is taken, recursively.
func (s *StructField) BaseType() reflect.Type {
	return baseType(s.reflectField.Type)
}

// Nullable defines if the field allows the nil value.
func (s *StructField) Nullable() bool {
	return s.nullable
}

// IsCollection defines if the field's declared type is exactly the Collection type.
func (s *StructField) IsCollection() bool {
	return s.isCollection
}

// Descriptor returns the relation descriptor the field was bound with.
// Returns nil for the fields that are not bound.
func (s *StructField) Descriptor() *Descriptor {
	return s.descriptor
}

// Relation returns the relation object constructed for given field.
// Returns nil for the fields that are not bound.
func (s *StructField) Relation() *Relation {
	return s.relation
}

// String implements fmt.Stringer interface.
func (s *StructField) String() string {
	return s.mStruct.Type().Name() + "." + s.reflectField.Name
}

// tagValue gets the first value of the field tag with given 'key'.
func (s *StructField) tagValue(key string) (string, bool) {
	for _, tag := range s.tags {
		if tag.Key != key {
			continue
		}
		if len(tag.Values) == 0 {
			return "", true
		}
		return tag.Values[0], true
	}
	return "", false
}

// tagValues gets all the values of the field tag with given 'key'.
func (s *StructField) tagValues(key string) []string {
	for _, tag := range s.tags {
		if tag.Key == key {
			return tag.Values
		}
	}
	return nil
}

func (s *StructField) isPrimary() bool {
	for _, tag := range s.tags {
		switch tag.Key {
		case annotation.Primary, annotation.PrimaryFull, annotation.PrimaryShort:
			return true
		}
	}
	return s.reflectField.Name == "ID" || s.reflectField.Name == "Id"
}

func baseType(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice:
		return baseType(t.Elem())
	}
	return t
}

func isNullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
