package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/solucionesabiertas/mantenimiento/internal/application"
	"github.com/solucionesabiertas/mantenimiento/internal/domain"
)

type Handler struct {
	service *application.MaintenanceService
}

func NewRouter(service *application.MaintenanceService) http.Handler {
	h := &Handler{service: service}
	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		api.Post("/users", h.handleCreateUser)
		api.Get("/users", h.handleListUsers)
		api.Get("/users/{id}", h.handleGetUser)
		api.Delete("/users/{id}", h.handleDeleteUser)

		api.Post("/equipment", h.handleCreateEquipment)
		api.Get("/equipment", h.handleListEquipment)
		api.Get("/equipment/{id}", h.handleGetEquipment)

		api.Post("/orders", h.handleCreateOrder)
		api.Get("/orders", h.handleListOrders)
		api.Get("/orders/{id}/details", h.handleListDetails)

		api.Post("/details", h.handleCreateDetail)
	})

	return r
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	out, err := h.service.CreateUser(r.Context(), in.Name, in.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	out, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	out, err := h.service.DeleteUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateEquipment(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name         string `json:"name"`
		SerialNumber string `json:"serial_number"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	out, err := h.service.CreateEquipment(r.Context(), in.Name, in.SerialNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) handleListEquipment(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListEquipment(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	out, err := h.service.GetEquipmentByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var in struct {
		UserID      int64 `json:"user_id"`
		EquipmentID int64 `json:"equipment_id"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	out, err := h.service.CreateOrder(r.Context(), in.UserID, in.EquipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCreateDetail(w http.ResponseWriter, r *http.Request) {
	var in struct {
		OrderID     int64  `json:"order_id"`
		Description string `json:"description"`
		Date        string `json:"date"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	out, err := h.service.CreateDetail(r.Context(), in.OrderID, in.Description, in.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) handleListDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	out, err := h.service.ListDetailsByOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case domain.KindInvalidArgument:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case domain.KindConstraintViolation:
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
