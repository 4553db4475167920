package wire

// UndocumentedMessageField is a field present in a message's wire
// definition but not in the expected-field-numbers set of the message's
// documented kind (spec.md §3, glossary "Undocumented field").
type UndocumentedMessageField struct {
	Definition FieldDefinition
	Value      Value
}

// DeveloperMessageField is a field declared through FIT's developer-data
// extension. Per spec.md §9 open question (b), its value is preserved only
// as raw bytes; this decoder does not interpret developer-field semantics.
type DeveloperMessageField struct {
	Definition DeveloperFieldDefinition
	RawBytes   []byte
}
