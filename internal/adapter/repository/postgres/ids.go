package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates prefixed ULID-based IDs, e.g. "blk_01HV...".
type ULIDGenerator struct {
	prefix string
}

// NewULIDGenerator creates a new ULIDGenerator. An empty prefix yields bare ULIDs.
func NewULIDGenerator(prefix string) *ULIDGenerator {
	return &ULIDGenerator{prefix: prefix}
}

// Generate generates a new ID.
func (g *ULIDGenerator) Generate() string {
	id := ulid.Make().String()
	if g.prefix == "" {
		return id
	}
	return g.prefix + "_" + id
}
