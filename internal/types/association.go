package types

// AssociationMap maps a content type to an ordered list of desktop ids.
// Ids appear at most once per content type.
type AssociationMap map[string][]string

// Lookup returns the ids for mime, or nil.
func (m AssociationMap) Lookup(mime string) []string {
	if m == nil {
		return nil
	}
	return m[mime]
}

// Clone returns a copy that shares no slices with m.
func (m AssociationMap) Clone() AssociationMap {
	out := make(AssociationMap, len(m))
	for key, ids := range m {
		out[key] = append([]string(nil), ids...)
	}
	return out
}

// AssociationTables holds the four mappings of the layered store.
type AssociationTables struct {
	UserDefaults       AssociationMap
	SystemDefaults     AssociationMap
	UserAssociations   AssociationMap
	SystemAssociations AssociationMap
}
