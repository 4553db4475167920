package wire

// FieldDefinition is one documented-field entry inside a message
// definition: the field number, total byte width (which may span several
// array elements), and the base type to decode it as (spec.md §3, §4.4.4).
type FieldDefinition struct {
	Number        uint8
	SizeBytes     uint8
	BaseType      uint8 // base-type number, bits 0-4 of the type byte
	EndianAbility bool  // bit 7 of the type byte
}

// DeveloperFieldDefinition is one developer-field entry inside a message
// definition. Its semantics are vendor-defined and resolved through a
// field_description message this decoder does not interpret (spec.md §9,
// open question (b)); only the definition and raw bytes are preserved.
type DeveloperFieldDefinition struct {
	FieldNumber        uint8
	SizeBytes          uint8
	DeveloperDataIndex uint8
}
