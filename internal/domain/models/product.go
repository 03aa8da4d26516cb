package models

// Product — товар из внешнего каталога. Мы его не создаём и не изменяем,
// только читаем из API каталога
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating — рейтинг товара в каталоге
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}
