package queries

import (
	"context"

	"logistics/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			description,
			value,
			address_postal_code,
			address_street,
			address_number,
			address_district,
			address_city,
			address_state,
			status,
			created_at
		FROM orders
		ORDER BY created_at DESC, order_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view OrderView
		var value decimal.Decimal
		var status int

		err = rows.Scan(
			&view.OrderNumber,
			&view.Description,
			&value,
			&view.PostalCode,
			&view.Street,
			&view.Number,
			&view.District,
			&view.City,
			&view.State,
			&status,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		view.Value = value
		view.Status = order.Status(status).String()
		view.CreatedAt = view.CreatedAt.UTC()
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
