package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/aldawsari/shopdesk/internal/models"
)

// AddExpense records a shop expense
func AddExpense(userID, name string, amount float64) (*models.Expense, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("expense name is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	expense := models.Expense{
		Name:   name,
		Amount: amount,
		UserID: userID,
	}
	if err := DB.Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// GetExpensesInRange returns expenses between two times, newest first
func GetExpensesInRange(from, to time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := DB.Where("created_at >= ? AND created_at <= ?", from, to).
		Preload("User").
		Order("created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// ExpenseTotal sums expense amounts for a time range
func ExpenseTotal(from, to time.Time) (float64, error) {
	var total float64
	err := DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
