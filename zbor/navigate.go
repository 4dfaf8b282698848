package zbor

// IsInt, IsBytes, IsText, IsArray, IsMap, IsTag, IsFloat, and IsSimple let
// callers branch on an Item's variant without a type switch, mirroring
// spec §4.4's predicate surface. They report false for a nil Item.

func IsInt(i Item) bool    { return i != nil && i.Kind() == KindInt }
func IsBytes(i Item) bool  { return i != nil && i.Kind() == KindBytes }
func IsText(i Item) bool   { return i != nil && i.Kind() == KindText }
func IsArray(i Item) bool  { return i != nil && i.Kind() == KindArray }
func IsMap(i Item) bool    { return i != nil && i.Kind() == KindMap }
func IsTag(i Item) bool    { return i != nil && i.Kind() == KindTag }
func IsFloat(i Item) bool  { return i != nil && i.Kind() == KindFloat }
func IsSimple(i Item) bool { return i != nil && i.Kind() == KindSimple }
