package mapdata

import (
	"errors"
	"fmt"

	"github.com/eak1mov/go-libmaps/container"
)

var (
	ErrMissingElement       = errors.New("missing element")
	ErrMissingAttribute     = errors.New("missing attribute")
	ErrInvalidAttributeType = errors.New("invalid attribute type")
)

type MissingElementError struct {
	Name   string
	Parent string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("%v: %q in %q", ErrMissingElement, e.Name, e.Parent)
}

func (e *MissingElementError) Is(target error) bool {
	return target == ErrMissingElement
}

type MissingAttributeError struct {
	Attribute string
	Element   string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%v: %q on %q", ErrMissingAttribute, e.Attribute, e.Element)
}

func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

type InvalidAttributeTypeError struct {
	Attribute string
	Expected  string
	Got       container.Kind
}

func (e *InvalidAttributeTypeError) Error() string {
	return fmt.Sprintf("%v: %q expected %s, got %v", ErrInvalidAttributeType, e.Attribute, e.Expected, e.Got)
}

func (e *InvalidAttributeTypeError) Is(target error) bool {
	return target == ErrInvalidAttributeType
}
