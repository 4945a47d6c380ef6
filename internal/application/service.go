package application

import (
	"context"
	"time"

	"github.com/solucionesabiertas/mantenimiento/internal/domain"
)

// TimeLayout is the wire format for every timestamp the service accepts or
// returns.
const TimeLayout = "2006-01-02 15:04:05"

type MaintenanceService struct {
	repo domain.MaintenanceRepository
}

func NewMaintenanceService(repo domain.MaintenanceRepository) *MaintenanceService {
	return &MaintenanceService{repo: repo}
}

type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type DeleteUserResponse struct {
	ID int64 `json:"id"`
}

type EquipmentResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
}

type OrderResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	EquipmentID int64  `json:"equipment_id"`
	State       string `json:"state"`
	DateCreated string `json:"date_created"`
}

// OrderSummaryResponse is an OrderResponse enriched with the referenced user
// and equipment names. The names fall back to "" when the reference does not
// resolve instead of failing the listing.
type OrderSummaryResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	EquipmentID   int64  `json:"equipment_id"`
	State         string `json:"state"`
	DateCreated   string `json:"date_created"`
	UserName      string `json:"user_name"`
	EquipmentName string `json:"equipment_name"`
}

type DetailResponse struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (s *MaintenanceService) CreateUser(ctx context.Context, name, role string) (UserResponse, error) {
	user, err := s.repo.CreateUser(ctx, domain.User{Name: name, Role: role})
	if err != nil {
		return UserResponse{}, err
	}
	return UserResponse{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}

func (s *MaintenanceService) GetUserByID(ctx context.Context, id int64) (UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return UserResponse{}, domain.NotFound("Usuario no encontrado")
		}
		return UserResponse{}, err
	}
	return UserResponse{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}

func (s *MaintenanceService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, UserResponse{ID: u.ID, Name: u.Name, Role: u.Role})
	}
	return result, nil
}

// DeleteUser removes the user and, through the storage cascade, every
// maintenance order owned by it along with their details.
func (s *MaintenanceService) DeleteUser(ctx context.Context, id int64) (DeleteUserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return DeleteUserResponse{}, domain.NotFound("User not found")
		}
		return DeleteUserResponse{}, err
	}
	if err := s.repo.DeleteUser(ctx, user.ID); err != nil {
		return DeleteUserResponse{}, err
	}
	return DeleteUserResponse{ID: user.ID}, nil
}

func (s *MaintenanceService) CreateEquipment(ctx context.Context, name, serialNumber string) (EquipmentResponse, error) {
	equipment, err := s.repo.CreateEquipment(ctx, domain.Equipment{Name: name, SerialNumber: serialNumber})
	if err != nil {
		return EquipmentResponse{}, err
	}
	return EquipmentResponse{ID: equipment.ID, Name: equipment.Name, SerialNumber: equipment.SerialNumber}, nil
}

func (s *MaintenanceService) GetEquipmentByID(ctx context.Context, id int64) (EquipmentResponse, error) {
	equipment, err := s.repo.GetEquipmentByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return EquipmentResponse{}, domain.NotFound("Equipo no encontrado")
		}
		return EquipmentResponse{}, err
	}
	return EquipmentResponse{ID: equipment.ID, Name: equipment.Name, SerialNumber: equipment.SerialNumber}, nil
}

func (s *MaintenanceService) ListEquipment(ctx context.Context) ([]EquipmentResponse, error) {
	items, err := s.repo.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]EquipmentResponse, 0, len(items))
	for _, e := range items {
		result = append(result, EquipmentResponse{ID: e.ID, Name: e.Name, SerialNumber: e.SerialNumber})
	}
	return result, nil
}

// CreateOrder does not pre-check that the user or equipment exist; the
// storage foreign keys reject a dangling reference and the repository
// reports it as a constraint violation.
func (s *MaintenanceService) CreateOrder(ctx context.Context, userID, equipmentID int64) (OrderResponse, error) {
	order, err := s.repo.CreateOrder(ctx, domain.MaintenanceOrder{
		UserID:      userID,
		EquipmentID: equipmentID,
		State:       domain.OrderStateOpen,
		DateCreated: time.Now().UTC(),
	})
	if err != nil {
		return OrderResponse{}, err
	}
	return OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		EquipmentID: order.EquipmentID,
		State:       order.State,
		DateCreated: order.DateCreated.Format(TimeLayout),
	}, nil
}

func (s *MaintenanceService) ListOrders(ctx context.Context) ([]OrderSummaryResponse, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderSummaryResponse{
			ID:            o.ID,
			UserID:        o.UserID,
			EquipmentID:   o.EquipmentID,
			State:         o.State,
			DateCreated:   o.DateCreated.Format(TimeLayout),
			UserName:      o.UserName,
			EquipmentName: o.EquipmentName,
		})
	}
	return result, nil
}

func (s *MaintenanceService) CreateDetail(ctx context.Context, orderID int64, description, date string) (DetailResponse, error) {
	parsed, err := time.Parse(TimeLayout, date)
	if err != nil {
		return DetailResponse{}, domain.InvalidArgument("invalid date, expected format " + TimeLayout)
	}

	exists, err := s.repo.OrderExists(ctx, orderID)
	if err != nil {
		return DetailResponse{}, err
	}
	if !exists {
		return DetailResponse{}, domain.NotFound("La orden de mantenimiento no existe")
	}

	detail, err := s.repo.CreateDetail(ctx, domain.DetailMaintenance{
		OrderID:     orderID,
		Description: description,
		Date:        parsed,
	})
	if err != nil {
		return DetailResponse{}, err
	}
	return DetailResponse{
		ID:          detail.ID,
		OrderID:     detail.OrderID,
		Description: detail.Description,
		Date:        detail.Date.Format(TimeLayout),
	}, nil
}

// ListDetailsByOrder returns an empty slice, not an error, when the order is
// unknown or has no details.
func (s *MaintenanceService) ListDetailsByOrder(ctx context.Context, orderID int64) ([]DetailResponse, error) {
	details, err := s.repo.ListDetailsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	result := make([]DetailResponse, 0, len(details))
	for _, d := range details {
		result = append(result, DetailResponse{
			ID:          d.ID,
			OrderID:     d.OrderID,
			Description: d.Description,
			Date:        d.Date.Format(TimeLayout),
		})
	}
	return result, nil
}
