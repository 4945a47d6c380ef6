package main

import (
	"context"
	"fmt"
	"net/http"
)

// Response shapes mirror the server's JSON. They are redeclared here so the
// CLI stays a plain client of the wire format.
type userResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type equipmentResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
}

type orderResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	EquipmentID int64  `json:"equipment_id"`
	State       string `json:"state"`
	DateCreated string `json:"date_created"`
}

type orderSummaryResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	EquipmentID   int64  `json:"equipment_id"`
	State         string `json:"state"`
	DateCreated   string `json:"date_created"`
	UserName      string `json:"user_name"`
	EquipmentName string `json:"equipment_name"`
}

type detailResponse struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func doUsersCreate(ctx context.Context, cfg cliConfig, name, role string, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "users.create", map[string]any{"name": name, "role": role}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodPost, "/api/users", map[string]any{"name": name, "role": role}, out)
}

func doUsersGet(ctx context.Context, cfg cliConfig, id int64, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "users.get", map[string]any{"id": id}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, out)
}

func doUsersList(ctx context.Context, cfg cliConfig, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "users.list", map[string]any{}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodGet, "/api/users", nil, out)
}

func doUsersDelete(ctx context.Context, cfg cliConfig, id int64, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "users.delete", map[string]any{"id": id}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, out)
}

func doEquipmentCreate(ctx context.Context, cfg cliConfig, name, serialNumber string, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "equipment.create", map[string]any{"name": name, "serial_number": serialNumber}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodPost, "/api/equipment", map[string]any{"name": name, "serial_number": serialNumber}, out)
}

func doEquipmentGet(ctx context.Context, cfg cliConfig, id int64, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "equipment.get", map[string]any{"id": id}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodGet, fmt.Sprintf("/api/equipment/%d", id), nil, out)
}

func doEquipmentList(ctx context.Context, cfg cliConfig, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "equipment.list", map[string]any{}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodGet, "/api/equipment", nil, out)
}

func doOrdersCreate(ctx context.Context, cfg cliConfig, userID, equipmentID int64, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "orders.create", map[string]any{"user_id": userID, "equipment_id": equipmentID}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodPost, "/api/orders", map[string]any{"user_id": userID, "equipment_id": equipmentID}, out)
}

func doOrdersList(ctx context.Context, cfg cliConfig, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "orders.list", map[string]any{}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodGet, "/api/orders", nil, out)
}

func doDetailsCreate(ctx context.Context, cfg cliConfig, orderID int64, description, date string, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "details.create", map[string]any{"order_id": orderID, "description": description, "date": date}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodPost, "/api/details", map[string]any{"order_id": orderID, "description": description, "date": date}, out)
}

func doDetailsList(ctx context.Context, cfg cliConfig, orderID int64, out any) error {
	if cfg.Transport == "uds" {
		client := newRPCClient(cfg.Socket)
		return client.call(ctx, "details.list", map[string]any{"order_id": orderID}, out)
	}
	client := newAPIClient(cfg.Server)
	return client.request(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d/details", orderID), nil, out)
}
