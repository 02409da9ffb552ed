package model

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixFrame    = "frame"
	PrefixCatalog  = "size"
	PrefixTemplate = "tmpl"
)

func newID(prefix string) string {
	return typeid.MustGenerate(prefix).String()
}

func NewFrameID() string    { return newID(PrefixFrame) }
func NewCatalogID() string  { return newID(PrefixCatalog) }
func NewTemplateID() string { return newID(PrefixTemplate) }

// ValidateID checks that id is a well-formed typeid with the expected prefix.
func ValidateID(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
