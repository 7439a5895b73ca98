package http

import (
	"errors"

	"errands/internal/core/application/usecases/commands"
	"errands/internal/core/application/usecases/queries"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/generated/servers"
	"errands/internal/pkg/errs"
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func pageOf(offset, limit *int) (kernel.Page, error) {
	if offset == nil && limit == nil {
		return kernel.DefaultPage(), nil
	}
	return kernel.NewPage(deref(offset), deref(limit))
}

func moneyOrZero(name string, raw *string) (kernel.Money, error) {
	if raw == nil || *raw == "" {
		return kernel.Zero, nil
	}
	m, err := kernel.MoneyFromString(*raw)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return m, nil
}

// shoppingList converts a submitted shopping list into command input.
func shoppingList(body servers.NewShopperOrder) (shopperorder.Details, []commands.ItemInput, []commands.ImageInput, error) {
	var errList []error

	window, err := kernel.NewTimeWindow(body.ReceiveStart, body.ReceiveEnd)
	errList = append(errList, err)

	estimated, err := moneyOrZero("estimatedPrice", body.EstimatedPrice)
	errList = append(errList, err)

	tip, err := moneyOrZero("runnerTip", body.RunnerTip)
	errList = append(errList, err)

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		price, priceErr := moneyOrZero("price", &item.Price)
		if priceErr != nil {
			errList = append(errList, priceErr)
			continue
		}
		items = append(items, commands.ItemInput{Name: item.Name, Count: item.Count, Price: price})
	}

	images := make([]commands.ImageInput, 0, len(body.Images))
	for _, image := range body.Images {
		images = append(images, commands.ImageInput{Filename: image.Filename, Size: image.Size, Path: image.Path})
	}

	if err = errors.Join(errList...); err != nil {
		return shopperorder.Details{}, nil, nil, err
	}

	details := shopperorder.Details{
		Title:             body.Title,
		Priority:          deref(body.Priority),
		Contents:          deref(body.Contents),
		ReceiveWindow:     window,
		ReceiveAddress:    deref(body.ReceiveAddress),
		AdditionalMessage: deref(body.AdditionalMessage),
		EstimatedPrice:    estimated,
		RunnerTip:         tip,
	}
	return details, items, images, nil
}

func runnerDetails(body servers.NewRunnerOrder) (runnerorder.Details, error) {
	window, err := kernel.NewTimeWindow(body.ContactStart, body.ContactEnd)
	if err != nil {
		return runnerorder.Details{}, err
	}
	return runnerorder.Details{
		Message:          body.Message,
		EstimatedMinutes: deref(body.EstimatedMinutes),
		Introduce:        deref(body.Introduce),
		DistanceMeters:   deref(body.Distance),
		ContactWindow:    window,
		Address:          deref(body.Address),
		Payments:         body.Payments,
	}, nil
}

func toUser(view *queries.UserView) *servers.User {
	if view == nil {
		return nil
	}
	return &servers.User{
		Id:           view.ID.Bytes(),
		Nickname:     view.Nickname,
		Email:        view.Email,
		ProfileImage: view.ProfileImage,
	}
}

func toShopperOrder(view *queries.ShopperOrderView) *servers.ShopperOrder {
	if view == nil {
		return nil
	}

	out := &servers.ShopperOrder{
		Id:                view.ID.Bytes(),
		ShopperId:         view.ShopperID.Bytes(),
		Shopper:           toUser(view.Shopper),
		Title:             view.Title,
		Priority:          view.Priority,
		Contents:          view.Contents,
		ReceiveStart:      view.ReceiveStart,
		ReceiveEnd:        view.ReceiveEnd,
		ReceiveAddress:    view.ReceiveAddress,
		AdditionalMessage: view.AdditionalMessage,
		EstimatedPrice:    view.EstimatedPrice.String(),
		RunnerTip:         view.RunnerTip.String(),
		Status:            view.Status.String(),
		Items:             make([]servers.Item, 0, len(view.Items)),
		Images:            make([]servers.Image, 0, len(view.Images)),
		CreatedAt:         view.CreatedAt,
		UpdatedAt:         view.UpdatedAt,
	}

	for _, item := range view.Items {
		out.Items = append(out.Items, servers.Item{
			Id:    item.ID.Bytes(),
			Name:  item.Name,
			Count: item.Count,
			Price: item.Price.String(),
		})
	}
	for _, image := range view.Images {
		out.Images = append(out.Images, servers.Image{
			Id:       image.ID.Bytes(),
			Filename: image.Filename,
			Size:     image.Size,
			Path:     image.Path,
		})
	}
	for i := range view.Requests {
		out.Requests = append(out.Requests, *toShopperOrderRequest(&view.Requests[i]))
	}

	return out
}

func toShopperOrderRequest(view *queries.ShopperOrderRequestView) *servers.ShopperOrderRequest {
	return &servers.ShopperOrderRequest{
		Id:        view.ID.Bytes(),
		OrderId:   view.OrderID.Bytes(),
		RunnerId:  view.RunnerID.Bytes(),
		Runner:    toUser(view.Runner),
		Status:    view.Status.String(),
		Order:     toShopperOrder(view.Order),
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func toRunnerOrder(view *queries.RunnerOrderView) *servers.RunnerOrder {
	if view == nil {
		return nil
	}

	out := &servers.RunnerOrder{
		Id:               view.ID.Bytes(),
		RunnerId:         view.RunnerID.Bytes(),
		Runner:           toUser(view.Runner),
		Message:          view.Message,
		EstimatedMinutes: view.EstimatedMinutes,
		Introduce:        view.Introduce,
		Distance:         view.DistanceMeters,
		ContactStart:     view.ContactStart,
		ContactEnd:       view.ContactEnd,
		Address:          view.Address,
		Payments:         append([]string{}, view.Payments...),
		CreatedAt:        view.CreatedAt,
		UpdatedAt:        view.UpdatedAt,
	}
	for i := range view.Requests {
		out.Requests = append(out.Requests, *toRunnerOrderRequest(&view.Requests[i]))
	}

	return out
}

func toRunnerOrderRequest(view *queries.RunnerOrderRequestView) *servers.RunnerOrderRequest {
	return &servers.RunnerOrderRequest{
		Id:             view.ID.Bytes(),
		OrderId:        view.OrderID.Bytes(),
		ShopperId:      view.ShopperID.Bytes(),
		ShopperOrderId: view.ShopperOrderID.Bytes(),
		Shopper:        toUser(view.Shopper),
		Status:         view.Status.String(),
		SubOrder:       toShopperOrder(view.SubOrder),
		Order:          toRunnerOrder(view.Order),
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}
