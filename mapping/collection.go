package mapping

import "reflect"

// Collection is the generic ordered container for the related model values.
// Declare a model field with the Collection type to mark it as a fluent
// relation field without registering the related model type.
type Collection []interface{}

// collectionType is the reflect type of the Collection container.
var collectionType = reflect.TypeOf(Collection(nil))

// NewCollection creates the Collection for given 'values'.
func NewCollection(values ...interface{}) Collection {
	return Collection(values)
}

// Len returns the length of the collection.
func (c Collection) Len() int {
	return len(c)
}

// First returns the first value of the collection.
// Returns nil for an empty collection.
func (c Collection) First() interface{} {
	if len(c) == 0 {
		return nil
	}
	return c[0]
}

// Add appends the 'values' to the collection.
func (c *Collection) Add(values ...interface{}) {
	*c = append(*c, values...)
}

// newCollectionValue wraps the 'value' into a Collection. The slice and array
// values are unpacked element by element, any other value becomes a single
// element collection.
func newCollectionValue(value interface{}) Collection {
	if c, ok := value.(Collection); ok {
		return c
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		c := make(Collection, v.Len())
		for i := 0; i < v.Len(); i++ {
			c[i] = v.Index(i).Interface()
		}
		return c
	}
	return Collection{value}
}
