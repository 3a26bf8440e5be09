package lookup

import (
	"sort"
)

// Cache indexes lookup values by name, both key to value and value to key,
// the way the RESO server resolves enumerations.
type Cache struct {
	entries map[string][]Lookup
	byKey   map[string]map[string]string
	byValue map[string]map[string]string
}

func NewCache(lookups []Lookup) *Cache {
	c := &Cache{
		entries: make(map[string][]Lookup),
		byKey:   make(map[string]map[string]string),
		byValue: make(map[string]map[string]string),
	}
	for _, l := range lookups {
		c.add(l)
	}
	return c
}

func (c *Cache) add(l Lookup) {
	if _, ok := c.byKey[l.LookupName]; !ok {
		c.byKey[l.LookupName] = make(map[string]string)
		c.byValue[l.LookupName] = make(map[string]string)
	}
	c.entries[l.LookupName] = append(c.entries[l.LookupName], l)
	c.byKey[l.LookupName][l.LookupKey] = l.LookupValue
	c.byValue[l.LookupName][l.LookupValue] = l.LookupKey
}

// Names returns the cached lookup names in sorted order.
func (c *Cache) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the values cached for name in insertion order.
func (c *Cache) Entries(name string) []Lookup {
	return c.entries[name]
}

// Value resolves a lookup key to its value.
func (c *Cache) Value(name, key string) (string, bool) {
	v, ok := c.byKey[name][key]
	return v, ok
}

// Key resolves a lookup value to its key. When the same value was stored more
// than once the last key wins.
func (c *Cache) Key(name, value string) (string, bool) {
	k, ok := c.byValue[name][value]
	return k, ok
}

// Len returns the number of cached values.
func (c *Cache) Len() int {
	n := 0
	for _, e := range c.entries {
		n += len(e)
	}
	return n
}
