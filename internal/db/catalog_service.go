package db

import (
	"fmt"
	"strings"

	"github.com/aldawsari/shopdesk/internal/models"
)

// CreateService adds an item to the service catalog
func CreateService(name, category string, price float64, link string) (*models.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}

	service := models.Service{
		Name:     name,
		Category: strings.TrimSpace(category),
		Price:    price,
		Link:     strings.TrimSpace(link),
	}
	if err := DB.Create(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// GetServices returns the catalog ordered by category then name
func GetServices() ([]models.Service, error) {
	var services []models.Service
	if err := DB.Order("category ASC, name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// GetServiceByID retrieves a catalog item by ID
func GetServiceByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := DB.First(&service, id).Error; err != nil {
		return nil, fmt.Errorf("service #%d not found", id)
	}
	return &service, nil
}

// UpdateServicePrice changes the catalog price of a service
func UpdateServicePrice(id uint, price float64) (*models.Service, error) {
	if price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	service, err := GetServiceByID(id)
	if err != nil {
		return nil, err
	}
	service.Price = price
	if err := DB.Save(service).Error; err != nil {
		return nil, err
	}
	return service, nil
}

// findOrCreateClient finds an existing client by name and phone or creates one
func findOrCreateClient(name, phone string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, fmt.Errorf("client name is required")
	}

	var client models.Client

	// Try to find an existing client first
	err := DB.Where("name = ? AND phone = ?", name, phone).First(&client).Error
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		client = models.Client{Name: name, Phone: phone}
		if err := DB.Create(&client).Error; err != nil {
			return nil, err
		}
	}

	return &client, nil
}

// GetClients returns every known client ordered by most recent
func GetClients() ([]models.Client, error) {
	var clients []models.Client
	if err := DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}
