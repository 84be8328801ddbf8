package mapping

import (
	"reflect"
	"sync"

	"github.com/neuronlabs/fluent/annotation"
	"github.com/neuronlabs/fluent/config"
	"github.com/neuronlabs/fluent/errors"
	"github.com/neuronlabs/fluent/errors/class"
	"github.com/neuronlabs/fluent/log"
	"github.com/neuronlabs/fluent/namer"
)

// ModelMap contains the mapped models. The fluent relation fields of every
// registered model are discovered and bound once, while the model is being
// registered. The computed mapping is never invalidated.
type ModelMap struct {
	sync.RWMutex

	models      map[reflect.Type]*ModelStruct
	collections map[string]reflect.Type

	// Configs are the per model configurations, keyed by the collection name.
	Configs map[string]*config.ModelConfig

	// NamerFunc is the naming convention function used to create the field
	// and collection names.
	NamerFunc namer.Namer

	collectionSingular bool
}

// NewModelMap creates a new model map with the provided 'namerFunc' and the
// controller config 'c'. Nil arguments fall back to the defaults.
func NewModelMap(namerFunc namer.Namer, c *config.Controller) *ModelMap {
	if c == nil {
		c = config.Default()
	}
	if namerFunc == nil {
		namerFunc = c.NamerFunc()
	}
	configs := c.Models
	if configs == nil {
		configs = map[string]*config.ModelConfig{}
	}
	return &ModelMap{
		models:             map[reflect.Type]*ModelStruct{},
		collections:        map[string]reflect.Type{},
		Configs:            configs,
		NamerFunc:          namerFunc,
		collectionSingular: c.CollectionSingular,
	}
}

// RegisterModels registers the provided models within the model map.
// The models already registered are left untouched. After mapping all the
// provided models their fluent relation fields are discovered and bound.
func (m *ModelMap) RegisterModels(models ...interface{}) error {
	var registered []*ModelStruct
	for _, model := range models {
		mStruct, err := buildModelStruct(model, m.NamerFunc, m.collectionSingular)
		if err != nil {
			return err
		}

		if err = m.Set(mStruct); err != nil {
			// don't remap the already registered models
			log.Debugf("Model: '%s' already registered", mStruct.Type().Name())
			continue
		}

		modelConfig, ok := m.Configs[mStruct.Collection()]
		if !ok {
			modelConfig = &config.ModelConfig{}
			m.Configs[mStruct.Collection()] = modelConfig
		}
		if modelConfig.Collection == "" {
			modelConfig.Collection = mStruct.Collection()
		}
		mStruct.cfg = modelConfig

		if declarer, ok := model.(RelationDeclarer); ok {
			mStruct.setDeclarations(declarer.FluentRelations())
			log.Debug2f("Model: '%s' declared %d fluent relations", mStruct.Type().Name(), len(mStruct.declarations))
		}
		registered = append(registered, mStruct)
	}

	for _, mStruct := range registered {
		m.discoverFluentRelations(mStruct)
	}

	for _, mStruct := range registered {
		if err := m.bindFluentRelations(mStruct); err != nil {
			return err
		}
	}
	return nil
}

// Set sets the *ModelStruct for given map.
// Returns an error if the model were already set.
func (m *ModelMap) Set(value *ModelStruct) error {
	m.Lock()
	defer m.Unlock()

	_, ok := m.models[value.Type()]
	if ok {
		return errors.Newf(class.ModelAlreadyRegistered, "model: '%s' already registered", value.Type().Name())
	}

	_, ok = m.collections[value.Collection()]
	if ok {
		return errors.Newf(class.ModelAlreadyRegistered, "model collection: '%s' already registered", value.Collection())
	}

	m.models[value.Type()] = value
	m.collections[value.Collection()] = value.Type()
	return nil
}

// Get gets the *ModelStruct for given model type.
// Returns nil if the model is not registered.
func (m *ModelMap) Get(model reflect.Type) *ModelStruct {
	m.RLock()
	defer m.RUnlock()
	return m.models[getType(model)]
}

// GetByCollection gets the *ModelStruct by the 'collection' name.
func (m *ModelMap) GetByCollection(collection string) *ModelStruct {
	m.RLock()
	defer m.RUnlock()

	t, ok := m.collections[collection]
	if !ok {
		return nil
	}
	return m.models[t]
}

// GetModelStruct gets the model struct mapped for given model instance.
func (m *ModelMap) GetModelStruct(model interface{}) (*ModelStruct, error) {
	if model == nil {
		return nil, errors.New(class.ModelValueNil, "provided nil model value")
	}
	mStruct := m.Get(reflect.TypeOf(model))
	if mStruct == nil {
		return nil, errors.Newf(class.ModelNotMapped, "model: '%T' is not mapped", model)
	}
	return mStruct, nil
}

// Models returns all the registered model structs.
func (m *ModelMap) Models() []*ModelStruct {
	m.RLock()
	defer m.RUnlock()

	structs := make([]*ModelStruct, 0, len(m.models))
	for _, mStruct := range m.models {
		structs = append(structs, mStruct)
	}
	return structs
}

// ModelByName gets the *ModelStruct by the model type name.
func (m *ModelMap) ModelByName(name string) *ModelStruct {
	m.RLock()
	defer m.RUnlock()

	for _, mStruct := range m.models {
		if mStruct.Type().Name() == name {
			return mStruct
		}
	}
	return nil
}

// discoverFluentRelations marks the model's fluent relation fields.
// A field is a fluent relation when it is explicitly declared, tagged as a
// relation, declared with the Collection type or its base type is a
// registered model.
func (m *ModelMap) discoverFluentRelations(mStruct *ModelStruct) {
	for _, sField := range mStruct.fields {
		if sField.Kind() == KindPrimary {
			continue
		}

		_, declared := mStruct.declarations[sField.Name()]
		_, tagged := sField.tagValue(annotation.Relation)

		var candidate bool
		switch {
		case declared, tagged, sField.IsCollection():
			candidate = true
		case sField.BaseType().Kind() == reflect.Struct && m.Get(sField.BaseType()) != nil:
			candidate = true
		}
		if !candidate {
			continue
		}

		sField.fieldKind = KindRelation
		mStruct.addFluentRelation(sField)
		log.Debug2f("Model: '%s' field: '%s' discovered as a fluent relation", mStruct.Type().Name(), sField.Name())
	}
	log.Debugf("Model: '%s' mapped with %d fluent relation fields", mStruct.Type().Name(), len(mStruct.fluentRelations))
}

// bindFluentRelations binds the relation objects and their resolvers for the
// model's discovered fluent relation fields. The fields with no relation
// descriptor stay unbound. A method named like a candidate field can't exist -
// a declared field excludes the promoted method from the type's method set.
func (m *ModelMap) bindFluentRelations(mStruct *ModelStruct) error {
	for _, sField := range mStruct.FluentRelations() {
		descriptor, err := mStruct.descriptorFor(sField)
		if err != nil {
			return err
		}
		if descriptor == nil {
			log.Debug2f("Model: '%s' field: '%s' has no relation descriptor - not binding", mStruct.Type().Name(), sField.Name())
			continue
		}

		bind, ok := bindingStrategies[descriptor.Kind]
		if !ok {
			return errors.Newf(class.ModelFieldInvalid, "model: '%s' field: '%s' defined unsupported relation kind: '%s'", mStruct.Type().Name(), sField.Name(), descriptor.Kind)
		}

		relation := bind(m, mStruct, sField, descriptor)
		sField.descriptor = descriptor
		sField.relation = relation

		mStruct.ResolveRelationUsing(sField.FluentName(), func(interface{}) (*Relation, error) {
			return relation, nil
		})
		log.Debug2f("Model: '%s' field: '%s' bound as: %s", mStruct.Type().Name(), sField.Name(), relation)
	}
	return nil
}

// getType dereferences the pointer, slice and array types down to their
// element's struct type.
func getType(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Array:
		return getType(t.Elem())
	}
	return t
}
