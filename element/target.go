package element

import (
	"github.com/erraggy/namekit/nkerrors"
)

// Target is a naming field that can be transformed independently.
type Target int

// Naming targets. Components expose a node name and property keys/values;
// styles and variables have one target per subtype.
const (
	NodeName Target = iota + 1
	PropName
	PropValue
	TextStyle
	ColorStyle
	EffectStyle
	GridStyle
	ColorVar
	StringVar
	BoolVar
	NumberVar
)

var targetLabels = map[Target]string{
	NodeName:    "nodeName",
	PropName:    "propName",
	PropValue:   "propValue",
	TextStyle:   "textStyle",
	ColorStyle:  "colorStyle",
	EffectStyle: "effectStyle",
	GridStyle:   "gridStyle",
	ColorVar:    "colorVar",
	StringVar:   "stringVar",
	BoolVar:     "boolVar",
	NumberVar:   "numberVar",
}

// String returns the target label, e.g. "nodeName".
func (t Target) String() string {
	if l, ok := targetLabels[t]; ok {
		return l
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) {
	if _, ok := targetLabels[t]; !ok {
		return nil, &nkerrors.ConfigError{Option: "target", Value: int(t), Message: "unknown naming target"}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Target) UnmarshalText(text []byte) error {
	parsed, err := ParseTarget(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTarget parses a target label such as "nodeName" or "colorVar".
func ParseTarget(s string) (Target, error) {
	for t, l := range targetLabels {
		if l == s {
			return t, nil
		}
	}
	return 0, &nkerrors.ConfigError{Option: "target", Value: s, Message: "unknown naming target"}
}

// Targets returns every target in declaration order.
func Targets() []Target {
	return []Target{
		NodeName, PropName, PropValue,
		TextStyle, ColorStyle, EffectStyle, GridStyle,
		ColorVar, StringVar, BoolVar, NumberVar,
	}
}

// TargetsFor returns the targets offered for a category.
func TargetsFor(c Category) []Target {
	switch c {
	case Component:
		return []Target{NodeName, PropName, PropValue}
	case Style:
		return []Target{TextStyle, ColorStyle, EffectStyle, GridStyle}
	case Variable:
		return []Target{ColorVar, StringVar, BoolVar, NumberVar}
	default:
		return nil
	}
}

// DefaultTarget is the target preselected when a category is chosen.
func DefaultTarget(c Category) Target {
	switch c {
	case Style:
		return ColorStyle
	case Variable:
		return ColorVar
	default:
		return NodeName
	}
}

// ResolveTarget returns the target that governs the name of an element of
// the given category and subtype. Unknown style subtypes resolve to
// TextStyle and unknown variable subtypes to StringVar. The boolean is false
// only for a category outside the known set.
func ResolveTarget(c Category, subtype string) (Target, bool) {
	switch c {
	case Component:
		return NodeName, true
	case Style:
		switch subtype {
		case SubtypeColor:
			return ColorStyle, true
		case SubtypeEffect:
			return EffectStyle, true
		case SubtypeGrid:
			return GridStyle, true
		default:
			return TextStyle, true
		}
	case Variable:
		switch subtype {
		case SubtypeColor:
			return ColorVar, true
		case SubtypeBool:
			return BoolVar, true
		case SubtypeNumber:
			return NumberVar, true
		default:
			return StringVar, true
		}
	default:
		return 0, false
	}
}

// Target resolves the target of the item. See ResolveTarget.
func (it Item) Target() (Target, bool) {
	return ResolveTarget(it.Category, it.Subtype)
}
