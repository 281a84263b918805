package ir

import "fmt"

type (
	// Type is the static type of a variable or expression.
	Type interface {
		fmt.Stringer
		isType()
	}

	// PrimitiveType is one of the built-in value types.
	PrimitiveType int

	// ClassType is a reference type named after its class.
	ClassType struct {
		Name string
	}
)

const (
	Void PrimitiveType = iota
	Boolean
	Byte
	Char
	Short
	Int
	Long
	Float
	Double
)

func (PrimitiveType) isType() {}
func (ClassType) isType()     {}

func (t PrimitiveType) String() string {
	switch t {
	case Void:
		return "void"
	case Boolean:
		return "boolean"
	case Byte:
		return "byte"
	case Char:
		return "char"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	}
	panic(fmt.Sprintf("unknown primitive type %d", int(t)))
}

func (t ClassType) String() string {
	return t.Name
}

// CanHoldInt reports whether values of type t are drawn from the integer
// constant domain. Only such variables are tracked by constant propagation.
func CanHoldInt(t Type) bool {
	switch t {
	case Boolean, Byte, Char, Short, Int:
		return true
	}
	return false
}
