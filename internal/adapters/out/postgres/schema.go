package postgres

import (
	"logistics/internal/adapters/out/postgres/deliveryrepo"
	"logistics/internal/adapters/out/postgres/notificationrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Tables lists every table the service owns, in truncation-safe order.
var Tables = []string{"notifications", "deliveries", "orders", "users"}

// Migrate creates or updates the tables together with their unique and feed indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&notificationrepo.NotificationDTO{},
	)
}
