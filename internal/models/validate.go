package models

import "fmt"

// Keyed is implemented by every record stored in a collection.
type Keyed interface {
	Key() string
	Validate() error
}

func validateAll[T Keyed](items []T) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.Key()]; dup {
			return fmt.Errorf("duplicate id %q", item.Key())
		}
		seen[item.Key()] = struct{}{}
	}
	return nil
}
