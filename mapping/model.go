package mapping

import (
	"reflect"
	"sync"

	"github.com/jinzhu/inflection"

	"github.com/neuronlabs/fluent/annotation"
	"github.com/neuronlabs/fluent/config"
	"github.com/neuronlabs/fluent/errors"
	"github.com/neuronlabs/fluent/errors/class"
	"github.com/neuronlabs/fluent/log"
	"github.com/neuronlabs/fluent/namer"
)

// ModelStruct is the mapped model definition. It contains the model's fields,
// the discovered fluent relation fields and the relation resolvers bound for them.
type ModelStruct struct {
	id         int
	modelType  reflect.Type
	collection string

	primary *StructField
	fields  []*StructField

	fluentRelations []*StructField
	fluentByName    map[string]*StructField
	resolvers       map[string]RelationResolver
	declarations    map[string]Declaration

	// relationsStoreIndex is the index of the embedded Relations store field.
	// Nil when the model doesn't embed the store.
	relationsStoreIndex []int

	cfg *config.ModelConfig
}

func newModelStruct(t reflect.Type, collection string) *ModelStruct {
	return &ModelStruct{
		id:           ctr.next(),
		modelType:    t,
		collection:   collection,
		fluentByName: map[string]*StructField{},
		resolvers:    map[string]RelationResolver{},
		declarations: map[string]Declaration{},
	}
}

// ID returns the model struct's index number.
func (s *ModelStruct) ID() int {
	return s.id
}

// Type returns the model struct's reflect.Type.
func (s *ModelStruct) Type() reflect.Type {
	return s.modelType
}

// Collection returns the model struct's collection name.
func (s *ModelStruct) Collection() string {
	return s.collection
}

// Config returns the model struct's config.
func (s *ModelStruct) Config() *config.ModelConfig {
	return s.cfg
}

// Primary returns the model struct's primary key field.
func (s *ModelStruct) Primary() *StructField {
	return s.primary
}

// Fields returns all the mapped model struct's fields.
func (s *ModelStruct) Fields() []*StructField {
	return s.fields
}

// FieldByName gets the field with given Go 'name'.
func (s *ModelStruct) FieldByName(name string) (*StructField, bool) {
	for _, sField := range s.fields {
		if sField.Name() == name {
			return sField, true
		}
	}
	return nil, false
}

// FluentRelations returns the model's fluent relation fields discovered while
// registering the model. The result is computed once per model type and never
// invalidated.
func (s *ModelStruct) FluentRelations() []*StructField {
	return s.fluentRelations
}

// FluentRelation gets the fluent relation field for given 'relation' name.
// Both the Go field name and the naming convention name are matched.
func (s *ModelStruct) FluentRelation(relation string) (*StructField, bool) {
	sField, ok := s.fluentByName[relation]
	return sField, ok
}

// ResolveRelationUsing binds the 'resolver' for given 'relation' name.
// A resolver bound earlier under the same name gets replaced.
func (s *ModelStruct) ResolveRelationUsing(relation string, resolver RelationResolver) {
	s.resolvers[relation] = resolver
}

// RelationResolver gets the relation resolver bound for given 'relation' name.
func (s *ModelStruct) RelationResolver(relation string) (RelationResolver, bool) {
	resolver, ok := s.resolvers[relation]
	if ok {
		return resolver, true
	}
	sField, ok := s.FluentRelation(relation)
	if !ok {
		return nil, false
	}
	resolver, ok = s.resolvers[sField.FluentName()]
	return resolver, ok
}

// String implements fmt.Stringer interface.
func (s *ModelStruct) String() string {
	return s.modelType.Name()
}

func (s *ModelStruct) addFluentRelation(sField *StructField) {
	s.fluentRelations = append(s.fluentRelations, sField)
	s.fluentByName[sField.Name()] = sField
	s.fluentByName[sField.FluentName()] = sField
}

func (s *ModelStruct) setDeclarations(declarations []Declaration) {
	for _, declaration := range declarations {
		s.declarations[declaration.Field] = declaration
	}
}

// descriptorFor gets the relation descriptor for given fluent relation field.
// The explicit declaration takes precedence over the 'fluent' field tag.
// Returns nil descriptor for the fields marked as relations with no concrete
// kind - these stay unbound.
func (s *ModelStruct) descriptorFor(sField *StructField) (*Descriptor, error) {
	if declaration, ok := s.declarations[sField.Name()]; ok {
		if declaration.Kind == RelUnknown {
			return nil, nil
		}
		return &Descriptor{Kind: declaration.Kind, Arguments: declaration.Arguments}, nil
	}

	value, ok := sField.tagValue(annotation.Relation)
	if !ok || value == "" {
		return nil, nil
	}
	kind, ok := ParseRelationKind(value)
	if !ok {
		return nil, errors.Newf(class.ModelFieldInvalid, "model: '%s' field: '%s' defined unknown relation kind: '%s'", s.modelType.Name(), sField.Name(), value)
	}
	return &Descriptor{Kind: kind, Arguments: sField.tagValues(annotation.Arguments)}, nil
}

var ctr = &counter{}

type counter struct {
	nextID int
	lock   sync.Mutex
}

func (c *counter) next() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.nextID++
	return c.nextID
}

// buildModelStruct maps the model's type into a new *ModelStruct value.
func buildModelStruct(model interface{}, namerFunc namer.Namer, collectionSingular bool) (*ModelStruct, error) {
	if model == nil {
		return nil, errors.New(class.ModelValueNil, "provided nil model value")
	}

	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Newf(class.ModelValueInvalid, "provided invalid model type: '%s'", t.Kind())
	}

	collectionName := t.Name()
	if !collectionSingular {
		collectionName = inflection.Plural(collectionName)
	}

	mStruct := newModelStruct(t, namerFunc(collectionName))

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			// unexported field
			continue
		}
		if field.Anonymous {
			if field.Type == relationsStoreType {
				mStruct.relationsStoreIndex = field.Index
			}
			// the embedded fields are never mapped directly
			continue
		}

		tags := extractFieldTags(field, annotation.Fluent, annotation.TagSeparator, annotation.Separator)
		if len(tags) == 1 && tags[0].Key == "-" {
			log.Debug3f("Model: '%s' field: '%s' omitted", t.Name(), field.Name)
			continue
		}

		sField := newStructField(mStruct, field, tags)
		if name, ok := sField.tagValue(annotation.Name); ok && name != "" {
			sField.fluentName = name
		} else {
			sField.fluentName = namerFunc(field.Name)
		}

		if mStruct.primary == nil && sField.isPrimary() {
			sField.fieldKind = KindPrimary
			mStruct.primary = sField
		} else {
			sField.fieldKind = KindAttribute
		}
		mStruct.fields = append(mStruct.fields, sField)
	}

	if len(mStruct.fields) == 0 {
		return nil, errors.Newf(class.ModelMappingNoFields, "model: '%s' has no fields defined", t.Name())
	}
	if mStruct.primary == nil {
		return nil, errors.Newf(class.ModelMappingNoFields, "model: '%s' has no primary key field defined", t.Name())
	}
	return mStruct, nil
}
