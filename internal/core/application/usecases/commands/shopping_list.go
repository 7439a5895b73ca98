package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/shopperorder"
)

// ItemInput is one shopping list line as submitted by a shopper.
type ItemInput struct {
	Name  string
	Count int
	Price kernel.Money
}

// ImageInput describes an already uploaded image.
type ImageInput struct {
	Filename string
	Size     int64
	Path     string
}

// buildShoppingList assigns ids to the submitted lines and images.
func buildShoppingList(items []ItemInput, images []ImageInput) ([]*shopperorder.Item, []*shopperorder.Image, error) {
	builtItems := make([]*shopperorder.Item, 0, len(items))
	builtImages := make([]*shopperorder.Image, 0, len(images))
	var errList []error

	for _, in := range items {
		item, err := shopperorder.NewItem(kernel.NewUUID(), in.Name, in.Count, in.Price)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		builtItems = append(builtItems, item)
	}

	for _, in := range images {
		image, err := shopperorder.NewImage(kernel.NewUUID(), in.Filename, in.Size, in.Path)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		builtImages = append(builtImages, image)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, nil, err
	}

	return builtItems, builtImages, nil
}
