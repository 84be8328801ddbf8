package mapping

import (
	"reflect"

	"github.com/neuronlabs/fluent/errors"
	"github.com/neuronlabs/fluent/errors/class"
	"github.com/neuronlabs/fluent/log"
)

// Relations is the per instance relations table. Embed the Relations store in
// a model to allow the fluent relation operations for its instances.
type Relations struct {
	loaded map[string]interface{}
}

// relationsStoreType is the reflect type of the embedded Relations store.
var relationsStoreType = reflect.TypeOf(Relations{})

// relationStorer is satisfied only by the models embedding the Relations store.
type relationStorer interface {
	relationsStore() *Relations
}

func (r *Relations) relationsStore() *Relations {
	return r
}

// Loaded returns the names of the relations currently loaded in the table.
func (r *Relations) Loaded() []string {
	names := make([]string, 0, len(r.loaded))
	for name := range r.loaded {
		names = append(names, name)
	}
	return names
}

func (r *Relations) set(name string, value interface{}) {
	if r.loaded == nil {
		r.loaded = map[string]interface{}{}
	}
	r.loaded[name] = value
}

func (r *Relations) get(name string) (interface{}, bool) {
	value, ok := r.loaded[name]
	return value, ok
}

func (r *Relations) delete(name string) {
	delete(r.loaded, name)
}

func (r *Relations) clear() {
	r.loaded = nil
}

// SetRelation stores the 'value' under the 'relation' name within the model
// instance's relations table. When the relation names a fluent relation field
// the field is set in sync with the stored value:
//	- a nil value zeroes the nullable fields and leaves the others untouched,
//	- the Collection typed fields wrap the value into a Collection,
//	- otherwise the value must be assignable to the field's type.
func (m *ModelMap) SetRelation(model interface{}, relation string, value interface{}) error {
	mStruct, v, store, err := m.instance(model)
	if err != nil {
		return err
	}
	return m.setRelation(mStruct, v, store, relation, value)
}

// SetRelations stores all the 'values' within the model instance's relations
// table. The relations loaded before and absent from the 'values' are unset
// first, with their fluent relation fields zeroed.
func (m *ModelMap) SetRelations(model interface{}, values map[string]interface{}) error {
	mStruct, v, store, err := m.instance(model)
	if err != nil {
		return err
	}

	// unset the stale relations so that the fluent fields don't keep the
	// values absent from the new set
	for _, name := range store.Loaded() {
		if _, ok := values[name]; !ok {
			m.unsetRelation(mStruct, v, store, name)
		}
	}

	for name, value := range values {
		if err = m.setRelation(mStruct, v, store, name, value); err != nil {
			return err
		}
	}
	return nil
}

// UnsetRelation removes the 'relation' from the model instance's relations
// table. The matching fluent relation field gets zeroed.
func (m *ModelMap) UnsetRelation(model interface{}, relation string) error {
	mStruct, v, store, err := m.instance(model)
	if err != nil {
		return err
	}
	m.unsetRelation(mStruct, v, store, relation)
	return nil
}

// UnsetRelations clears the model instance's relations table. All the fluent
// relation fields matching the loaded relations get zeroed.
func (m *ModelMap) UnsetRelations(model interface{}) error {
	mStruct, v, store, err := m.instance(model)
	if err != nil {
		return err
	}

	for _, name := range store.Loaded() {
		sField, ok := mStruct.FluentRelation(name)
		if !ok {
			continue
		}
		fieldValue := v.FieldByIndex(sField.ReflectField().Index)
		fieldValue.Set(reflect.Zero(fieldValue.Type()))
	}
	store.clear()
	return nil
}

// GetRelation gets the value loaded under the 'relation' name within the model
// instance's relations table. For the relations that are not loaded but have a
// resolver bound, the resolver is invoked once and its result gets cached in
// the table before returning. A resolver error propagates with nothing cached.
// Returns nil for the relations that are neither loaded nor resolvable.
func (m *ModelMap) GetRelation(model interface{}, relation string) (interface{}, error) {
	mStruct, _, store, err := m.instance(model)
	if err != nil {
		return nil, err
	}

	if value, ok := store.get(relation); ok {
		return value, nil
	}

	resolver, ok := mStruct.RelationResolver(relation)
	if !ok {
		return nil, nil
	}

	resolved, err := resolver(model)
	if err != nil {
		return nil, err
	}
	log.Debug3f("Model: '%s' relation: '%s' resolved", mStruct.Type().Name(), relation)
	store.set(relation, resolved)
	return resolved, nil
}

// RelationLoaded checks if the 'relation' is loaded within the model instance's
// relations table.
func (m *ModelMap) RelationLoaded(model interface{}, relation string) bool {
	_, _, store, err := m.instance(model)
	if err != nil {
		return false
	}
	_, ok := store.get(relation)
	return ok
}

// ResolveRelation invokes the resolver bound for the 'relation' and returns
// the constructed relation object. Returns nil relation with no error for the
// relations with no resolver bound.
func (m *ModelMap) ResolveRelation(model interface{}, relation string) (*Relation, error) {
	mStruct, err := m.GetModelStruct(model)
	if err != nil {
		return nil, err
	}
	resolver, ok := mStruct.RelationResolver(relation)
	if !ok {
		return nil, nil
	}
	return resolver(model)
}

func (m *ModelMap) setRelation(mStruct *ModelStruct, v reflect.Value, store *Relations, relation string, value interface{}) error {
	sField, ok := mStruct.FluentRelation(relation)
	if !ok {
		// not a fluent relation field - table only
		store.set(relation, value)
		return nil
	}

	fieldValue := v.FieldByIndex(sField.ReflectField().Index)
	switch {
	case isNil(value):
		if !sField.Nullable() {
			log.Debug2f("Model: '%s' field: '%s' is not nullable - leaving untouched", mStruct.Type().Name(), sField.Name())
			break
		}
		fieldValue.Set(reflect.Zero(fieldValue.Type()))
	case sField.IsCollection():
		fieldValue.Set(reflect.ValueOf(newCollectionValue(value)))
	default:
		val := reflect.ValueOf(value)
		if !val.Type().AssignableTo(fieldValue.Type()) {
			// a rejected value must not land in the table either
			return errors.Newf(class.ModelRelationInvalidValue, "relation: '%s' value of type: '%s' is not assignable to the field: '%s'", relation, val.Type(), sField)
		}
		fieldValue.Set(val)
	}
	store.set(relation, value)
	return nil
}

func (m *ModelMap) unsetRelation(mStruct *ModelStruct, v reflect.Value, store *Relations, relation string) {
	store.delete(relation)

	sField, ok := mStruct.FluentRelation(relation)
	if !ok {
		return
	}
	fieldValue := v.FieldByIndex(sField.ReflectField().Index)
	fieldValue.Set(reflect.Zero(fieldValue.Type()))
}

// instance checks and unwraps the model instance for the relation operations.
func (m *ModelMap) instance(model interface{}) (*ModelStruct, reflect.Value, *Relations, error) {
	if model == nil {
		return nil, reflect.Value{}, nil, errors.New(class.ModelValueNil, "provided nil model instance")
	}

	v := reflect.ValueOf(model)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return nil, reflect.Value{}, nil, errors.Newf(class.ModelValueInvalid, "model instance must be a non nil pointer, provided: '%T'", model)
	}

	mStruct := m.Get(v.Type())
	if mStruct == nil {
		return nil, reflect.Value{}, nil, errors.Newf(class.ModelNotMapped, "model: '%T' is not mapped", model)
	}

	storer, ok := model.(relationStorer)
	if !ok {
		return nil, reflect.Value{}, nil, errors.Newf(class.ModelRelationStore, "model: '%T' doesn't embed the mapping.Relations store", model)
	}
	return mStruct, v.Elem(), storer.relationsStore(), nil
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}
