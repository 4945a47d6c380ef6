package sqlite

import "time"

type UserModel struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Role      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string { return "users" }

type EquipmentModel struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	SerialNumber string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (EquipmentModel) TableName() string { return "equipment" }

type MaintenanceOrderModel struct {
	ID          int64     `gorm:"primaryKey"`
	DateCreated time.Time `gorm:"not null"`
	State       string    `gorm:"not null;default:'OPEN'"`
	UserID      int64     `gorm:"not null;index"`
	EquipmentID int64     `gorm:"not null;index"`
}

func (MaintenanceOrderModel) TableName() string { return "maintenance_orders" }

type DetailMaintenanceModel struct {
	ID          int64     `gorm:"primaryKey"`
	Description string    `gorm:"not null"`
	Date        time.Time `gorm:"not null"`
	OrderID     int64     `gorm:"not null;index"`
}

func (DetailMaintenanceModel) TableName() string { return "maintenance_details" }
