package texwrap

import "github.com/gogpu/texwrap/internal/cache"

// DefaultImageCapacity is the number of images an ImageSet keeps by default.
const DefaultImageCapacity = 64

// ImageSet builds each TextureImage once and shares it between readers.
//
// An image is fully constructed before GetOrCreate publishes it, so
// concurrent samplers need no further synchronization.
type ImageSet struct {
	images *cache.Cache[ImageKey, *TextureImage]
}

// NewImageSet creates a set retaining at most capacity images.
// A capacity of 0 means unlimited.
func NewImageSet(capacity int) *ImageSet {
	return &ImageSet{images: cache.New[ImageKey, *TextureImage](capacity)}
}

// Image returns the image for key, building it on first use.
func (s *ImageSet) Image(key ImageKey) (*TextureImage, error) {
	return s.images.GetOrCreate(key, func() (*TextureImage, error) {
		Logger().Debug("texwrap: building image", "key", key)
		return BuildImage(key.Target, key.Size, key.BorderRing)
	})
}

// Sampler returns a sampler for key.
func (s *ImageSet) Sampler(key ImageKey) (*Sampler, error) {
	img, err := s.Image(key)
	if err != nil {
		return nil, err
	}
	return NewSampler(img), nil
}

// Sample samples req from the image for its key.
func (s *ImageSet) Sample(req SampleRequest) (SampleResult, error) {
	smp, err := s.Sampler(req.Key())
	if err != nil {
		return SampleResult{}, err
	}
	return smp.Sample(req), nil
}

// Len returns the number of retained images.
func (s *ImageSet) Len() int {
	return s.images.Len()
}

// Builds returns how many images have been built.
func (s *ImageSet) Builds() uint64 {
	return s.images.Builds()
}
