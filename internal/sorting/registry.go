package sorting

import "fmt"

// registry is the ordered catalog of selectable strategies. The first entry
// is the default.
var registry = []Strategy{
	PriorityStrategy{},
	DeadlineStrategy{},
	StatusStrategy{},
	CreationDateStrategy{},
}

// Available returns the selectable strategies in display order.
func Available() []Strategy {
	out := make([]Strategy, len(registry))
	copy(out, registry)
	return out
}

// Default returns the strategy a new Sorter starts with.
func Default() Strategy {
	return registry[0]
}

// Keys returns the keys of all selectable strategies.
func Keys() []string {
	keys := make([]string, len(registry))
	for i, s := range registry {
		keys[i] = s.Key()
	}
	return keys
}

// Lookup finds a strategy by key.
func Lookup(key string) (Strategy, error) {
	for _, s := range registry {
		if s.Key() == key {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, key)
}
