package db

import (
	"fmt"
	"time"

	"github.com/aldawsari/shopdesk/internal/models"
)

// CreateOrderRequest holds the data needed to submit a performed service
type CreateOrderRequest struct {
	UserID      string
	ServiceID   uint
	ClientName  string
	ClientPhone string
	Quantity    int
	Discount    float64
	Notes       string
}

// CreateOrder records one performed service. The price is copied from the
// catalog at submit time so later catalog edits don't rewrite history.
func CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	if req.Discount < 0 {
		return nil, fmt.Errorf("discount must not be negative")
	}

	service, err := GetServiceByID(req.ServiceID)
	if err != nil {
		return nil, err
	}

	client, err := findOrCreateClient(req.ClientName, req.ClientPhone)
	if err != nil {
		return nil, err
	}

	total := service.Price*float64(req.Quantity) - req.Discount
	if total < 0 {
		return nil, fmt.Errorf("discount %.2f exceeds order price %.2f", req.Discount, service.Price*float64(req.Quantity))
	}

	order := models.Order{
		UserID:    req.UserID,
		ClientID:  client.ID,
		ServiceID: service.ID,
		Price:     service.Price,
		Quantity:  req.Quantity,
		Discount:  req.Discount,
		Total:     total,
		Notes:     req.Notes,
	}
	if err := DB.Create(&order).Error; err != nil {
		return nil, err
	}

	// Load the relationships for display
	DB.Preload("Service").Preload("Client").First(&order, order.ID)

	return &order, nil
}

// GetOrdersInRange returns orders between two times, for one user or for
// everyone when userID is empty.
func GetOrdersInRange(userID string, from, to time.Time) ([]models.Order, error) {
	query := DB.Where("created_at >= ? AND created_at <= ?", from, to)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var orders []models.Order
	err := query.Preload("Service").
		Preload("Client").
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// RevenueLine is one aggregated row of the revenue report
type RevenueLine struct {
	ServiceName string
	Orders      int
	Quantity    int
	Revenue     float64
}

// RevenueSummary aggregates order totals per service for a time range
func RevenueSummary(from, to time.Time) ([]RevenueLine, error) {
	var lines []RevenueLine
	err := DB.Model(&models.Order{}).
		Select("services.name AS service_name, COUNT(orders.id) AS orders, SUM(orders.quantity) AS quantity, SUM(orders.total) AS revenue").
		Joins("JOIN services ON services.id = orders.service_id").
		Where("orders.created_at >= ? AND orders.created_at <= ?", from, to).
		Group("services.name").
		Order("revenue DESC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}
