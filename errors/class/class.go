package class

import (
	"errors"
	"strings"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (2 << (indexBitSize - 1)) - 1
	maxMinorValue = (2 << (minorBitSize - 1)) - 1
	maxMajorValue = (2 << (majorBitSize - 1)) - 1
)

func init() {
	registerClasses()
}

func registerClasses() {
	registerCommonClasses()
	registerConfigClasses()
	registerModelClasses()
}

// Class is the fluent error classification model.
// It is composed of the major, minor and index subclassifications.
// Each subclassification is a different length number, where
// major is composed of 7, minor 10 and index of 15 bits.
// Major should be a global scope division like 'Model' or 'Config'.
// Minor divides the major into subclasses like the model mapping or the
// model field issues. Index is the most precise classification.
type Class uint32

// Index is the class index subclassification, unique within given minor.
func (c Class) Index() Index {
	return Index{value: uint16(uint32(c) & maxIndexValue), minor: c.Minor()}
}

// IsMajor checks if the given class is composed of provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// Major is the class top level subclassification.
func (c Class) Major() Major {
	return Major(uint32(c) >> (32 - majorBitSize))
}

// Minor is the class mid level subclassification, unique within given major.
func (c Class) Minor() Minor {
	return Minor{value: uint16(uint32(c) >> indexBitSize & maxMinorValue), major: c.Major()}
}

// String implements fmt.Stringer interface.
func (c Class) String() string {
	names := strings.Split(c.Major().Name(), " ")

	minor := c.Minor()
	if !minor.valid() {
		return strings.Join(names, "")
	}
	names = append(names, strings.Split(minor.Name(), " ")...)

	index := c.Index()
	if index.valid() {
		names = append(names, strings.Split(index.Name(), " ")...)
	}
	return strings.Join(names, "")
}

// NewClass composes the class from the provided 'index' with its minor and major.
// If any of the subclassifications is not valid the function returns an error.
func NewClass(index Index) (Class, error) {
	minor := index.Minor()
	if !minor.Major().InBounds() {
		return Class(0), errors.New("provided invalid major")
	}
	if !minor.valid() {
		return Class(0), errors.New("provided invalid minor")
	}
	if !index.valid() {
		return Class(0), errors.New("provided invalid index")
	}
	return composeClass(minor, index.value), nil
}

// MustNewClass composes the class from the provided 'index'.
// Panics if any of the index subclassifications is not valid.
func MustNewClass(index Index) Class {
	c, err := NewClass(index)
	if err != nil {
		panic(err)
	}
	return c
}

// NewMinorClass gets the class composed from the provided 'minor' and its major only.
func NewMinorClass(minor Minor) (Class, error) {
	if !minor.Major().InBounds() {
		return Class(0), errors.New("provided invalid major")
	}
	if !minor.valid() {
		return Class(0), errors.New("provided invalid minor")
	}
	return composeClass(minor, 0), nil
}

// MustNewMinorClass creates new minor class for provided 'minor'.
// If the minor value is not valid the function panics.
func MustNewMinorClass(minor Minor) Class {
	c, err := NewMinorClass(minor)
	if err != nil {
		panic(err)
	}
	return c
}

func composeClass(minor Minor, index uint16) Class {
	return Class(uint32(minor.major)<<(32-majorBitSize) | uint32(minor.value)<<indexBitSize | uint32(index))
}
