package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/application/events"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateOrderCommandHandler registers an order and tells everyone about it.
//
// Steps run in order and stop at the first failure: duplicate check, postal-code
// lookup, persist, notification for the actor, ORDER_CREATED broadcast, NOTIFICATION
// to the actor. Once the order is committed later failures do not undo it.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   ports.AddressResolver
	notifier   NotificationCreator
	publisher  ports.EventPublisher
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	resolver ports.AddressResolver,
	notifier NotificationCreator,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		notifier:   notifier,
		publisher:  publisher,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	// Checked before the lookup so a duplicate never costs an upstream call.
	exists, err := uow.OrderRepository().ExistsByOrderNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewAlreadyExistsError("orderNumber", cmd.OrderNumber())
	}

	resolved, err := h.resolver.Resolve(ctx, cmd.PostalCode())
	if err != nil {
		return err
	}

	address, err := kernel.NewAddress(
		resolved.PostalCode,
		resolved.Street,
		cmd.AddressNumber(),
		resolved.District,
		resolved.City,
		resolved.State,
	)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.OrderNumber(), cmd.Description(), cmd.Value(), address)
	if err != nil {
		return err
	}

	if err = h.persist(ctx, uow, o); err != nil {
		return err
	}

	notifyCmd, err := NewCreateNotificationCommand(
		cmd.ActorUserID(), fmt.Sprintf("Order %s created.", o.OrderNumber()))
	if err != nil {
		return err
	}

	n, err := h.notifier.Handle(ctx, notifyCmd)
	if err != nil {
		return err
	}

	if err = h.publisher.PublishToAll(ctx, events.NewOrderCreated(o)); err != nil {
		return err
	}

	return h.publisher.PublishToUser(ctx, cmd.ActorUserID().String(), events.NewNotification(n))
}

func (h *CreateOrderCommandHandler) persist(ctx context.Context, uow OrderUoW, o *order.Order) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
