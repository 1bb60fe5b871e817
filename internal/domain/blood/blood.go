package blood

import "fmt"

// Type represents an ABO/Rh blood type. The zero value is not valid;
// unknown blood types are modeled explicitly as TypeUnknown.
type Type string

const (
	TypeAPositive  Type = "A+"
	TypeANegative  Type = "A-"
	TypeBPositive  Type = "B+"
	TypeBNegative  Type = "B-"
	TypeABPositive Type = "AB+"
	TypeABNegative Type = "AB-"
	TypeOPositive  Type = "O+"
	TypeONegative  Type = "O-"
	TypeUnknown    Type = "Unknown"
)

// types is the single bidirectional mapping between wire strings and Type.
// Validation happens once at the system boundary via ParseType; internal code
// works with Type values only.
var types = map[string]Type{
	string(TypeAPositive):  TypeAPositive,
	string(TypeANegative):  TypeANegative,
	string(TypeBPositive):  TypeBPositive,
	string(TypeBNegative):  TypeBNegative,
	string(TypeABPositive): TypeABPositive,
	string(TypeABNegative): TypeABNegative,
	string(TypeOPositive):  TypeOPositive,
	string(TypeONegative):  TypeONegative,
	string(TypeUnknown):    TypeUnknown,
}

func ParseType(s string) (Type, error) {
	if t, ok := types[s]; ok {
		return t, nil
	}
	return "", fmt.Errorf("invalid blood type %q", s)
}

func (t Type) String() string {
	return string(t)
}

func (t Type) Valid() bool {
	_, ok := types[string(t)]
	return ok
}
