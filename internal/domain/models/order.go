package models

import "time"

// Order — неизменяемый снимок корзины на момент оформления.
// Items — копия по значению, последующие изменения корзины заказ не затрагивают
type Order struct {
	ID         string     `json:"id"`
	Date       time.Time  `json:"date"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}
