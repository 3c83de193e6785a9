// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"fmt"

	"github.com/kvlabs/swrast/color"
	"github.com/kvlabs/swrast/internal/handle"
	"github.com/kvlabs/swrast/texture"
)

// textureEntry is what the Context's texture table stores.
type textureEntry struct {
	tex *texture.Texture
}

// CreateTexture allocates a texture of the given dimensions, color
// type and texel order and returns a handle to it (spec.md §3's
// Texture data model).
func (c *Context) CreateTexture(width, height, depth int, typ color.Type, order texture.Order) (TextureID, error) {
	tex, err := texture.New(width, height, depth, typ, order)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrResourceExhaustion, err)
	}
	h := c.textures.Insert(&textureEntry{tex: tex})
	return TextureID(h), nil
}

// Texture returns the texture identified by id.
func (c *Context) Texture(id TextureID) (*texture.Texture, error) {
	e, ok := c.textures.Get(handle.Handle(id))
	if !ok {
		return nil, fmt.Errorf("%w: unknown texture id %d", ErrInvalidOperation, id)
	}
	return e.tex, nil
}

// DestroyTexture releases the texture identified by id. It is a
// no-op if id does not identify a live texture.
func (c *Context) DestroyTexture(id TextureID) {
	c.textures.Remove(handle.Handle(id))
}
