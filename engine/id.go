// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import "github.com/kvlabs/swrast/internal/handle"

// TextureID identifies a texture owned by a Context.
// The zero TextureID is never issued by CreateTexture.
type TextureID handle.Handle

// MeshID identifies a mesh owned by a Context.
// The zero MeshID is never issued by CreateMesh.
type MeshID handle.Handle
