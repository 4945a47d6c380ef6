package sqlite

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/solucionesabiertas/mantenimiento/internal/domain"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

// Open opens (creating if needed) the sqlite database at path. Foreign key
// enforcement is opt-in per connection in sqlite; the cascade rules in the
// schema depend on it.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path + "?_pragma=foreign_keys(1)",
	}, &gorm.Config{})
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// translateErr maps gorm and driver failures onto domain error kinds so the
// service layer never sees storage internals.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound("record not found")
	}
	if strings.Contains(err.Error(), "constraint failed") {
		return domain.ConstraintViolation(err.Error())
	}
	return err
}

func (r *MaintenanceRepository) CreateUser(ctx context.Context, value domain.User) (domain.User, error) {
	m := UserModel{Name: value.Name, Role: value.Role}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.User{}, translateErr(err)
	}
	return domain.User{ID: m.ID, Name: m.Name, Role: m.Role, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}, nil
}

func (r *MaintenanceRepository) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.User{}, translateErr(err)
	}
	return domain.User{ID: m.ID, Name: m.Name, Role: m.Role, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}, nil
}

func (r *MaintenanceRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows := make([]UserModel, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translateErr(err)
	}
	result := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.User{ID: m.ID, Name: m.Name, Role: m.Role, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt})
	}
	return result, nil
}

func (r *MaintenanceRepository) DeleteUser(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&UserModel{}, id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("record not found")
	}
	return nil
}

func (r *MaintenanceRepository) CreateEquipment(ctx context.Context, value domain.Equipment) (domain.Equipment, error) {
	m := EquipmentModel{Name: value.Name, SerialNumber: value.SerialNumber}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Equipment{}, translateErr(err)
	}
	return domain.Equipment{ID: m.ID, Name: m.Name, SerialNumber: m.SerialNumber, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}, nil
}

func (r *MaintenanceRepository) GetEquipmentByID(ctx context.Context, id int64) (domain.Equipment, error) {
	var m EquipmentModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Equipment{}, translateErr(err)
	}
	return domain.Equipment{ID: m.ID, Name: m.Name, SerialNumber: m.SerialNumber, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}, nil
}

func (r *MaintenanceRepository) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	rows := make([]EquipmentModel, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translateErr(err)
	}
	result := make([]domain.Equipment, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.Equipment{ID: m.ID, Name: m.Name, SerialNumber: m.SerialNumber, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt})
	}
	return result, nil
}

func (r *MaintenanceRepository) CreateOrder(ctx context.Context, value domain.MaintenanceOrder) (domain.MaintenanceOrder, error) {
	m := MaintenanceOrderModel{
		DateCreated: value.DateCreated,
		State:       value.State,
		UserID:      value.UserID,
		EquipmentID: value.EquipmentID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.MaintenanceOrder{}, translateErr(err)
	}
	return domain.MaintenanceOrder{
		ID:          m.ID,
		DateCreated: m.DateCreated,
		State:       m.State,
		UserID:      m.UserID,
		EquipmentID: m.EquipmentID,
	}, nil
}

func (r *MaintenanceRepository) ListOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	type row struct {
		ID            int64
		DateCreated   time.Time
		State         string
		UserID        int64
		UserName      string
		EquipmentID   int64
		EquipmentName string
	}

	rows := make([]row, 0)
	if err := r.db.WithContext(ctx).Raw(`
SELECT o.id,
       o.date_created,
       o.state,
       o.user_id,
       COALESCE(u.name, '') AS user_name,
       o.equipment_id,
       COALESCE(e.name, '') AS equipment_name
FROM maintenance_orders o
LEFT JOIN users u ON u.id = o.user_id
LEFT JOIN equipment e ON e.id = o.equipment_id
ORDER BY o.id ASC
`).Scan(&rows).Error; err != nil {
		return nil, translateErr(err)
	}
	result := make([]domain.OrderSummary, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.OrderSummary{
			ID:            m.ID,
			DateCreated:   m.DateCreated,
			State:         m.State,
			UserID:        m.UserID,
			UserName:      m.UserName,
			EquipmentID:   m.EquipmentID,
			EquipmentName: m.EquipmentName,
		})
	}
	return result, nil
}

func (r *MaintenanceRepository) OrderExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&MaintenanceOrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateErr(err)
	}
	return count > 0, nil
}

func (r *MaintenanceRepository) CreateDetail(ctx context.Context, value domain.DetailMaintenance) (domain.DetailMaintenance, error) {
	m := DetailMaintenanceModel{
		Description: value.Description,
		Date:        value.Date,
		OrderID:     value.OrderID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.DetailMaintenance{}, translateErr(err)
	}
	return domain.DetailMaintenance{ID: m.ID, Description: m.Description, Date: m.Date, OrderID: m.OrderID}, nil
}

func (r *MaintenanceRepository) ListDetailsByOrder(ctx context.Context, orderID int64) ([]domain.DetailMaintenance, error) {
	rows := make([]DetailMaintenanceModel, 0)
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translateErr(err)
	}
	result := make([]domain.DetailMaintenance, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.DetailMaintenance{ID: m.ID, Description: m.Description, Date: m.Date, OrderID: m.OrderID})
	}
	return result, nil
}
