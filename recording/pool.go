package recording

import (
	"image"
	"sort"

	"github.com/gogpu/olive"
)

// ResourcePool stores the images referenced by sprite commands, by name.
// Each Add copies the image so that later drawing on the original does not
// change the recording.
//
// ResourcePool is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type ResourcePool struct {
	images map[string]*olive.Canvas
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{images: make(map[string]*olive.Canvas)}
}

// AddImage stores a copy of img under name, replacing any previous image
// with that name. A nil image removes the name.
func (p *ResourcePool) AddImage(name string, img image.Image) {
	if img == nil {
		delete(p.images, name)
		return
	}
	p.images[name] = olive.FromImage(img)
}

// GetImage returns the image stored under name, or nil.
func (p *ResourcePool) GetImage(name string) *olive.Canvas {
	return p.images[name]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Names returns the image names in sorted order.
func (p *ResourcePool) Names() []string {
	names := make([]string, 0, len(p.images))
	for name := range p.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	clear(p.images)
}

// Clone creates a copy of the pool. Images are shared; the pool never
// draws on them.
func (p *ResourcePool) Clone() *ResourcePool {
	clone := NewResourcePool()
	for name, img := range p.images {
		clone.images[name] = img
	}
	return clone
}
