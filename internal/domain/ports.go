package domain

import "context"

// MaintenanceRepository is the persistence gateway the service layer runs
// against. Implementations assign ids on create, keep listings in insertion
// order and cascade deletes to dependent rows.
type MaintenanceRepository interface {
	CreateUser(ctx context.Context, value User) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateEquipment(ctx context.Context, value Equipment) (Equipment, error)
	GetEquipmentByID(ctx context.Context, id int64) (Equipment, error)
	ListEquipment(ctx context.Context) ([]Equipment, error)

	CreateOrder(ctx context.Context, value MaintenanceOrder) (MaintenanceOrder, error)
	ListOrders(ctx context.Context) ([]OrderSummary, error)
	OrderExists(ctx context.Context, id int64) (bool, error)

	CreateDetail(ctx context.Context, value DetailMaintenance) (DetailMaintenance, error)
	ListDetailsByOrder(ctx context.Context, orderID int64) ([]DetailMaintenance, error)
}
