package menu

import "fooddelivery/pkg/money"

// DefaultItems returns the demo menu the service starts with.
func DefaultItems() []Item {
	return []Item{
		item("1", "Margherita Pizza", "Classic tomato sauce, mozzarella, basil", "12.99", "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=500"),
		item("2", "Pepperoni Pizza", "Tomato sauce, mozzarella, pepperoni", "14.99", "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=500"),
		item("3", "Classic Burger", "Beef patty, lettuce, tomato, cheese", "10.99", "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500"),
		item("4", "Chicken Burger", "Grilled chicken, lettuce, mayo", "11.99", "https://images.unsplash.com/photo-1606755962773-d324e0a13086?w=500"),
		item("5", "Caesar Salad", "Romaine lettuce, croutons, parmesan", "8.99", "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=500"),
		item("6", "French Fries", "Crispy golden fries with salt", "4.99", "https://images.unsplash.com/photo-1630384060421-cb20d0e0649d?w=500"),
		item("7", "Coca Cola", "Ice cold beverage", "2.99", "https://images.unsplash.com/photo-1554866585-cd94860890b7?w=500"),
		item("8", "Chocolate Cake", "Rich chocolate layer cake", "6.99", "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500"),
	}
}

func item(id, name, description, price, imageURL string) Item {
	return Item{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       money.MustParse(price),
		ImageURL:    imageURL,
	}
}
