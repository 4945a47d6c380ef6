package rpcjson

import (
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqliteadapter "github.com/solucionesabiertas/mantenimiento/internal/adapters/db/sqlite"
	"github.com/solucionesabiertas/mantenimiento/internal/application"
)

func startTestServer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	db, err := sqliteadapter.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	require.NoError(t, sqliteadapter.RunMigrations(ctx, db))

	service := application.NewMaintenanceService(sqliteadapter.NewMaintenanceRepository(db))

	socket := filepath.Join(dir, "test.sock")
	srv, err := Start(socket, service)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	return socket
}

func call(t *testing.T, socket, method string, params any) response {
	t.Helper()
	dialer := net.Dialer{Timeout: 5 * time.Second}
	conn, err := dialer.DialContext(context.Background(), "unix", socket)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	require.NoError(t, json.NewEncoder(conn).Encode(map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
		"id":      1,
	}))

	var resp struct {
		JSONRPC string          `json:"jsonrpc"`
		Result  json.RawMessage `json:"result"`
		Error   *rpcError       `json:"error"`
		ID      any             `json:"id"`
	}
	require.NoError(t, json.NewDecoder(conn).Decode(&resp))
	return response{JSONRPC: resp.JSONRPC, Result: resp.Result, Error: resp.Error, ID: resp.ID}
}

func decodeResult(t *testing.T, resp response, out any) {
	t.Helper()
	require.Nil(t, resp.Error)
	raw, ok := resp.Result.(json.RawMessage)
	require.True(t, ok)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestUsersLifecycleOverSocket(t *testing.T) {
	socket := startTestServer(t)

	resp := call(t, socket, "users.create", map[string]any{"name": "Ana", "role": "technician"})
	var user application.UserResponse
	decodeResult(t, resp, &user)
	assert.Equal(t, application.UserResponse{ID: 1, Name: "Ana", Role: "technician"}, user)

	resp = call(t, socket, "users.get", map[string]any{"id": 1})
	var got application.UserResponse
	decodeResult(t, resp, &got)
	assert.Equal(t, user, got)

	resp = call(t, socket, "users.list", map[string]any{})
	var users []application.UserResponse
	decodeResult(t, resp, &users)
	require.Len(t, users, 1)

	resp = call(t, socket, "users.delete", map[string]any{"id": 1})
	var deleted application.DeleteUserResponse
	decodeResult(t, resp, &deleted)
	assert.Equal(t, int64(1), deleted.ID)
}

func TestNotFoundCode(t *testing.T) {
	socket := startTestServer(t)

	resp := call(t, socket, "users.get", map[string]any{"id": 404})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 40400, resp.Error.Code)
	assert.Equal(t, "Usuario no encontrado", resp.Error.Message)
}

func TestConstraintViolationCode(t *testing.T) {
	socket := startTestServer(t)

	resp := call(t, socket, "orders.create", map[string]any{"user_id": 9, "equipment_id": 9})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 40900, resp.Error.Code)
}

func TestInvalidDateCode(t *testing.T) {
	socket := startTestServer(t)

	resp := call(t, socket, "details.create", map[string]any{"order_id": 1, "description": "x", "date": "not-a-date"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 40000, resp.Error.Code)
}

func TestMethodNotFound(t *testing.T) {
	socket := startTestServer(t)

	resp := call(t, socket, "users.rename", map[string]any{})
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
}

func TestMissingParams(t *testing.T) {
	socket := startTestServer(t)

	resp := call(t, socket, "users.get", nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32602, resp.Error.Code)
}

func TestOrdersAndDetailsOverSocket(t *testing.T) {
	socket := startTestServer(t)

	call(t, socket, "users.create", map[string]any{"name": "Ana", "role": "technician"})
	call(t, socket, "equipment.create", map[string]any{"name": "Drill", "serial_number": "SN-001"})

	resp := call(t, socket, "orders.create", map[string]any{"user_id": 1, "equipment_id": 1})
	var order application.OrderResponse
	decodeResult(t, resp, &order)
	assert.Equal(t, "OPEN", order.State)

	resp = call(t, socket, "details.create", map[string]any{"order_id": order.ID, "description": "Replaced bit", "date": "2024-01-01 10:00:00"})
	var detail application.DetailResponse
	decodeResult(t, resp, &detail)
	assert.Equal(t, "2024-01-01 10:00:00", detail.Date)

	resp = call(t, socket, "orders.list", map[string]any{})
	var orders []application.OrderSummaryResponse
	decodeResult(t, resp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "Ana", orders[0].UserName)
	assert.Equal(t, "Drill", orders[0].EquipmentName)

	resp = call(t, socket, "details.list", map[string]any{"order_id": order.ID})
	var details []application.DetailResponse
	decodeResult(t, resp, &details)
	require.Len(t, details, 1)
}
