package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/solucionesabiertas/mantenimiento/internal/domain"
)

func newTestRepository(t *testing.T) *MaintenanceRepository {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "mantenimiento_test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return NewMaintenanceRepository(db)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	first, err := repo.CreateUser(ctx, domain.User{Name: "Ana", Role: "technician"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("expected id 1, got %d", first.ID)
	}
	second, err := repo.CreateUser(ctx, domain.User{Name: "Luis", Role: "supervisor"})
	if err != nil {
		t.Fatalf("create second user: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("expected id 2, got %d", second.ID)
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 || users[0].ID != 1 || users[1].ID != 2 {
		t.Fatalf("expected users in insertion order, got %+v", users)
	}
}

func TestGetUserByIDMissing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.GetUserByID(ctx, 999)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCreateOrderWithDanglingReferenceFails(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.CreateOrder(ctx, domain.MaintenanceOrder{
		UserID:      42,
		EquipmentID: 42,
		State:       domain.OrderStateOpen,
		DateCreated: time.Now().UTC(),
	})
	if !domain.IsConstraintViolation(err) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
}

func TestListOrdersResolvesNames(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	user, err := repo.CreateUser(ctx, domain.User{Name: "Ana", Role: "technician"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	equipment, err := repo.CreateEquipment(ctx, domain.Equipment{Name: "Drill", SerialNumber: "SN-001"})
	if err != nil {
		t.Fatalf("create equipment: %v", err)
	}
	order, err := repo.CreateOrder(ctx, domain.MaintenanceOrder{
		UserID:      user.ID,
		EquipmentID: equipment.ID,
		State:       domain.OrderStateOpen,
		DateCreated: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	summaries, err := repo.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected one order, got %d", len(summaries))
	}
	got := summaries[0]
	if got.ID != order.ID || got.UserName != "Ana" || got.EquipmentName != "Drill" || got.State != domain.OrderStateOpen {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestDeleteUserCascadesToOrdersAndDetails(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	user, _ := repo.CreateUser(ctx, domain.User{Name: "Ana", Role: "technician"})
	equipment, _ := repo.CreateEquipment(ctx, domain.Equipment{Name: "Drill", SerialNumber: "SN-001"})
	order, err := repo.CreateOrder(ctx, domain.MaintenanceOrder{
		UserID:      user.ID,
		EquipmentID: equipment.ID,
		State:       domain.OrderStateOpen,
		DateCreated: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	_, err = repo.CreateDetail(ctx, domain.DetailMaintenance{
		OrderID:     order.ID,
		Description: "Replaced bit",
		Date:        time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create detail: %v", err)
	}

	if err := repo.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	summaries, err := repo.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders after delete: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected orders to cascade away, got %+v", summaries)
	}

	details, err := repo.ListDetailsByOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("list details after delete: %v", err)
	}
	if len(details) != 0 {
		t.Fatalf("expected details to cascade away, got %+v", details)
	}
}

func TestDeleteUserMissing(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	err := repo.DeleteUser(ctx, 7)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestOrderExists(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	exists, err := repo.OrderExists(ctx, 1)
	if err != nil {
		t.Fatalf("order exists: %v", err)
	}
	if exists {
		t.Fatalf("expected no order yet")
	}

	user, _ := repo.CreateUser(ctx, domain.User{Name: "Ana", Role: "technician"})
	equipment, _ := repo.CreateEquipment(ctx, domain.Equipment{Name: "Drill", SerialNumber: "SN-001"})
	order, err := repo.CreateOrder(ctx, domain.MaintenanceOrder{
		UserID:      user.ID,
		EquipmentID: equipment.ID,
		State:       domain.OrderStateOpen,
		DateCreated: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	exists, err = repo.OrderExists(ctx, order.ID)
	if err != nil {
		t.Fatalf("order exists: %v", err)
	}
	if !exists {
		t.Fatalf("expected order %d to exist", order.ID)
	}
}
