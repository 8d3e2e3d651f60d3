package model

// Attribute type names and keys understood by identity resolution.
const (
	AttributeAssemblyMetadata     = "AssemblyMetadataAttribute"
	AttributeInformationalVersion = "AssemblyInformationalVersionAttribute"
	MetadataKeyRepositoryURL      = "RepositoryUrl"
)

// BinaryAttribute is a metadata attribute embedded in a compiled binary: a
// declared type name and its ordered constructor argument values.
type BinaryAttribute struct {
	TypeName  string
	Arguments []any
}

// NewMetadataAttribute builds an AssemblyMetadataAttribute(key, value).
func NewMetadataAttribute(key, value string) BinaryAttribute {
	return BinaryAttribute{TypeName: AttributeAssemblyMetadata, Arguments: []any{key, value}}
}

// NewInformationalVersionAttribute builds an AssemblyInformationalVersionAttribute(version).
func NewInformationalVersionAttribute(version string) BinaryAttribute {
	return BinaryAttribute{TypeName: AttributeInformationalVersion, Arguments: []any{version}}
}
