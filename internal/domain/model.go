package domain

import "time"

// OrderStateOpen is the state every maintenance order starts in. No
// transition beyond it exists in this service.
const OrderStateOpen = "OPEN"

type User struct {
	ID        int64
	Name      string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Equipment struct {
	ID           int64
	Name         string
	SerialNumber string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type MaintenanceOrder struct {
	ID          int64
	DateCreated time.Time
	State       string
	UserID      int64
	EquipmentID int64
}

// OrderSummary is a maintenance order enriched with the names of the user
// and equipment it references, resolved at read time. Names are empty when
// the referenced row cannot be resolved.
type OrderSummary struct {
	ID            int64
	DateCreated   time.Time
	State         string
	UserID        int64
	UserName      string
	EquipmentID   int64
	EquipmentName string
}

type DetailMaintenance struct {
	ID          int64
	Description string
	Date        time.Time
	OrderID     int64
}
