package lookup

import (
	"time"
)

// CollectionName is the collection the RESO server reads lookup values from.
const CollectionName = "lookup"

// Lookup is a single enumeration value of a RESO lookup field as stored in
// the lookup collection. Field names follow the RESO data dictionary.
type Lookup struct {
	LookupKey             string    `bson:"LookupKey" json:"LookupKey"`
	LookupName            string    `bson:"LookupName" json:"LookupName"`
	LookupValue           string    `bson:"LookupValue" json:"LookupValue"`
	StandardLookupValue   string    `bson:"StandardLookupValue" json:"StandardLookupValue"`
	LegacyOdataValue      string    `bson:"LegacyOdataValue" json:"LegacyOdataValue"`
	ModificationTimestamp time.Time `bson:"ModificationTimestamp" json:"ModificationTimestamp"`
}

// New builds a lookup value for name. The standard value is the raw value
// and the legacy OData value is its spaced form.
func New(key, name, value string, at time.Time) Lookup {
	return Lookup{
		LookupKey:             key,
		LookupName:            name,
		LookupValue:           value,
		StandardLookupValue:   value,
		LegacyOdataValue:      LegacyLabel(value),
		ModificationTimestamp: at,
	}
}
