package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/application/events"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RegisterDeliveryCommandHandler moves an order to Delivered and records the delivery.
//
// The status change and the delivery record share one transaction, so a request that
// loses the race on the delivery unique index leaves the order untouched and gets
// errs.AlreadyExistsError. Reaching MarkDelivered with an order that is already
// delivered means the data broke the lifecycle invariant; the handler panics.
type RegisterDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   NotificationCreator
	publisher  ports.EventPublisher
}

func NewRegisterDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier NotificationCreator,
	publisher ports.EventPublisher,
) RegisterDeliveryCommandHandler {
	return RegisterDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		publisher:  publisher,
	}
}

func (h *RegisterDeliveryCommandHandler) Handle(ctx context.Context, cmd RegisterDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, d, err := h.deliver(ctx, cmd)
	if err != nil {
		return err
	}

	notifyCmd, err := NewCreateNotificationCommand(
		cmd.ActorUserID(), fmt.Sprintf("Delivery registered for order %s.", o.OrderNumber()))
	if err != nil {
		return err
	}

	n, err := h.notifier.Handle(ctx, notifyCmd)
	if err != nil {
		return err
	}

	if err = h.publisher.PublishToAll(ctx, events.NewDeliveryRegistered(o, d)); err != nil {
		return err
	}

	return h.publisher.PublishToUser(ctx, cmd.ActorUserID().String(), events.NewNotification(n))
}

func (h *RegisterDeliveryCommandHandler) deliver(
	ctx context.Context,
	cmd RegisterDeliveryCommand,
) (*order.Order, *delivery.Delivery, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	o, err := orderRepo.GetByOrderNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return nil, nil, err
	}

	exists, err := deliveryRepo.ExistsByOrderNumber(ctx, o.OrderNumber())
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, errs.NewAlreadyExistsError("delivery", o.OrderNumber())
	}

	if err = o.MarkDelivered(); err != nil {
		panic(err)
	}

	d, err := delivery.NewDelivery(o.OrderNumber(), cmd.DeliveredAt())
	if err != nil {
		return nil, nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, nil, err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return o, d, nil
}
