package shopperorder

import (
	"errors"
	"strings"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"
)

const maxImageSize = 10 << 20

var ErrImageIsNotConstructed = errors.New("Image must be created via NewImage constructor")

// Image is an uploaded attachment. Only its metadata is stored; the bytes
// live wherever path points.
type Image struct {
	id       kernel.UUID
	filename string
	size     int64
	path     string

	isConstructed bool
}

func NewImage(id kernel.UUID, filename string, size int64, path string) (*Image, error) {
	image := &Image{isConstructed: true}

	if err := errors.Join(
		image.setID(id),
		image.setFilename(filename),
		image.setSize(size),
		image.setPath(path),
	); err != nil {
		return nil, err
	}

	return image, nil
}

func (i *Image) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrImageIsNotConstructed
	}
	return nil
}

func (i *Image) ID() kernel.UUID {
	return i.id
}

func (i *Image) Filename() string {
	return i.filename
}

func (i *Image) Size() int64 {
	return i.size
}

func (i *Image) Path() string {
	return i.path
}

func (i *Image) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Image) setFilename(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return errs.NewValueIsRequiredError("image filename")
	}
	i.filename = filename
	return nil
}

func (i *Image) setSize(size int64) error {
	if size < 0 || size > maxImageSize {
		return errs.NewValueIsOutOfRangeError("image size", size, 0, maxImageSize)
	}
	i.size = size
	return nil
}

func (i *Image) setPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errs.NewValueIsRequiredError("image path")
	}
	i.path = path
	return nil
}
