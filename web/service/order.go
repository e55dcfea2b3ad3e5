package service

import (
	"errors"

	"orderdesk/database"
	"orderdesk/database/model"
)

var (
	ErrInvalidStatus = errors.New("status is not offered by the dashboard")
	ErrNotOwnOrder   = errors.New("order belongs to another agent")
)

// statusRankOrder mirrors model.OrderStatus.Rank for the dashboard sort:
// New, In Progress, Ready, then anything else, newest first within a rank.
const statusRankOrder = "CASE status " +
	"WHEN 'New' THEN 1 " +
	"WHEN 'In Progress' THEN 2 " +
	"WHEN 'Ready' THEN 3 " +
	"ELSE 4 END, created_at DESC"

// OrderService persists customer submissions and drives the dashboard's
// status flow. Orders are append-only; only Status ever changes.
type OrderService struct{}

// Create writes a new order with status New. Field validation happens at
// the request boundary; nothing reaches here unless it is complete.
func (s *OrderService) Create(order *model.Order) error {
	order.Status = model.StatusNew
	db := database.GetDB()
	return db.Create(order).Error
}

// ListAll returns every order in dashboard rank order. Admin view.
func (s *OrderService) ListAll() ([]model.Order, error) {
	db := database.GetDB()
	var orders []model.Order
	err := db.Order(statusRankOrder).Find(&orders).Error
	return orders, err
}

// ListByAgent returns the orders routed to the given agent, in dashboard
// rank order. Employee view.
func (s *OrderService) ListByAgent(username string) ([]model.Order, error) {
	db := database.GetDB()
	var orders []model.Order
	err := db.Where("agent_username = ?", username).Order(statusRankOrder).Find(&orders).Error
	return orders, err
}

// Get returns a single order by id.
func (s *OrderService) Get(id int) (*model.Order, error) {
	db := database.GetDB()
	order := &model.Order{}
	err := db.First(order, id).Error
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves one order to a new status. Only the three offered
// statuses are accepted. When the acting account is an employee, the
// order must be routed to them; admins may update any order.
func (s *OrderService) UpdateStatus(id int, status model.OrderStatus, acting *model.Account) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	db := database.GetDB()
	if acting.Role != model.RoleAdmin {
		order, err := s.Get(id)
		if err != nil {
			return err
		}
		if order.AgentUsername != acting.Username {
			return ErrNotOwnOrder
		}
	}
	return db.Model(&model.Order{}).Where("id = ?", id).Update("status", status).Error
}
