package class

import (
	"errors"
)

// registry stores the names for the registered subclassifications.
// Registration happens in the package 'init' only, thus no locking is required.
var registry = &classRegistry{
	majorNames: make(map[Major]string),
	minorNames: make(map[Minor]string),
	indexNames: make(map[Index]string),
	nextMinor:  make(map[Major]uint16),
	nextIndex:  make(map[Minor]uint16),
	nextMajor:  1,
}

type classRegistry struct {
	majorNames map[Major]string
	minorNames map[Minor]string
	indexNames map[Index]string

	nextMajor uint16
	nextMinor map[Major]uint16
	nextIndex map[Minor]uint16
}

/**

Major

*/

// Major is a 7 bit top level error classification.
type Major uint8

// InBounds checks if the major value is not greater than the allowed size.
func (m Major) InBounds() bool {
	return (m >> majorBitSize) == 0 && m != 0
}

// Name returns the major registered name.
func (m Major) Name() string {
	return registry.majorNames[m]
}

// MustRegisterMinor registers the minor subclassification for given Major 'm'
// with a 'name' unique within the major. Panics when the major is invalid.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

// RegisterMinor registers the minor subclassification for given Major 'm'.
// If the major is out of bounds the function returns an error.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	if !m.InBounds() {
		return Minor{}, errors.New("major out of bounds")
	}
	value := registry.nextMinor[m] + 1
	if value > maxMinorValue {
		return Minor{}, errors.New("too many minors registered")
	}
	registry.nextMinor[m] = value

	minor := Minor{value: value, major: m}
	registry.minorNames[minor] = name
	return minor, nil
}

// RegisterMajor registers new major error classification with provided 'name'.
func RegisterMajor(name string, description ...string) (Major, error) {
	if registry.nextMajor > maxMajorValue {
		return Major(0), errors.New("too many majors registered")
	}
	major := Major(registry.nextMajor)
	registry.nextMajor++
	registry.majorNames[major] = name
	return major, nil
}

// MustRegisterMajor registers new major error classification with provided
// 'name'. Panics when no more majors may be registered.
func MustRegisterMajor(name string, description ...string) Major {
	m, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return m
}

/**

Minor

*/

// Minor is a 10 bit mid level error classification, unique within its major.
type Minor struct {
	value uint16
	major Major
}

// Major gets the minor's root Major.
func (m Minor) Major() Major {
	return m.major
}

// Name gets the minor's registered name.
func (m Minor) Name() string {
	return registry.minorNames[m]
}

// Value gets the minor's uint16 value.
func (m Minor) Value() uint16 {
	return m.value
}

// MustRegisterIndex registers and returns the index for given minor.
// Panics if the minor is not valid.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	idx, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return idx
}

// RegisterIndex registers the index for given Minor.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	if !m.valid() {
		return Index{}, errors.New("invalid minor provided")
	}
	value := registry.nextIndex[m] + 1
	if value > maxIndexValue {
		return Index{}, errors.New("too many indexes registered")
	}
	registry.nextIndex[m] = value

	index := Index{value: value, minor: m}
	registry.indexNames[index] = name
	return index, nil
}

func (m Minor) valid() bool {
	return m.value>>minorBitSize == 0 && m.value != 0
}

/**

Index

*/

// Index is a 15 bit precise error classification, unique within its minor.
type Index struct {
	value uint16
	minor Minor
}

// Class composes the full class value for given index.
func (i Index) Class() Class {
	return MustNewClass(i)
}

// Minor gets the index's root minor.
func (i Index) Minor() Minor {
	return i.minor
}

// Name gets the index's registered name.
func (i Index) Name() string {
	return registry.indexNames[i]
}

// Value gets the index's uint16 value.
func (i Index) Value() uint16 {
	return i.value
}

func (i Index) valid() bool {
	return i.value>>indexBitSize == 0 && i.value != 0
}
