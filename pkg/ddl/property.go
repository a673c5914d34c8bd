package ddl

// Property is one key/value pair from a header's parenthesized list. Exactly
// one of Value and Ref is set; a property with neither is never produced by
// the parser.
type Property struct {
	Key   string
	Value *Value
	Ref   *Reference
}
