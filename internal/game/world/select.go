package world

import (
	"github.com/Faultbox/grapple/internal/engine/picking"
)

// SelectBlockUnderRay returns the first block in blocks whose mesh the ray
// hits, or nil. Hits are not sorted by distance; blocks are expected not to
// overlap.
func SelectBlockUnderRay(blocks []*Block, ray picking.Ray) *Block {
	for _, b := range blocks {
		if b == nil {
			continue
		}
		if ray.IntersectMesh(b.Mesh(), b.Transform()).Hit {
			return b
		}
	}
	return nil
}

// FindByName returns the block with the given name, or nil.
func FindByName(blocks []*Block, name string) *Block {
	for _, b := range blocks {
		if b != nil && b.Name == name {
			return b
		}
	}
	return nil
}
