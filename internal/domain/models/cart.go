package models

// CartItem — позиция в корзине: товар и его количество.
// В корзине не может быть двух позиций с одним product.id
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal возвращает стоимость позиции
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
