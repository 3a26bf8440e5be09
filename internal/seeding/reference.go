package seeding

// FieldNames returns the lookup fields to seed, in processing order.
func FieldNames() []string {
	names := make([]string, len(fieldNames))
	copy(names, fieldNames[:])
	return names
}

// ValuesFor returns the reference values for a field. Fields without an entry
// get the generic placeholder values.
func ValuesFor(name string) [3]string {
	if values, ok := referenceValues[name]; ok {
		return values
	}
	return fallbackValues
}

// HasReference reports whether name has its own reference entry.
func HasReference(name string) bool {
	_, ok := referenceValues[name]
	return ok
}
