package menu

// DefaultCategories is the starter catalog inserted into an empty database.
var DefaultCategories = []Category{
	{Name: "Espresso", Description: "Rich, concentrated coffee shots", Position: 1},
	{Name: "Milk", Description: "Espresso with steamed milk and foam", Position: 2},
	{Name: "Iced", Description: "Chilled coffee over ice", Position: 3},
	{Name: "Seasonal", Description: "Limited-time holiday specials", Position: 4},
}

// DefaultItems references DefaultCategories by 1-based position.
var DefaultItems = []Item{
	{Name: "Espresso", Description: "Rich, concentrated shot of coffee.", PriceCents: 6000, CategoryID: 1, Position: 1},
	{Name: "Ristretto", Description: "Short, more intense espresso shot.", PriceCents: 6500, CategoryID: 1, Position: 2},
	{Name: "Doppio", Description: "Double shot of espresso.", PriceCents: 7500, CategoryID: 1, Position: 3},
	{Name: "Americano", Description: "Espresso diluted with hot water.", PriceCents: 6500, CategoryID: 1, Position: 4},
	{Name: "Long Black", Description: "Hot water first, topped with espresso.", PriceCents: 6500, CategoryID: 1, Position: 5},
	{Name: "Macchiato", Description: "Espresso topped with a small amount of foam.", PriceCents: 7000, CategoryID: 1, Position: 6},

	{Name: "Latte", Description: "Espresso with steamed milk and light foam.", PriceCents: 8500, CategoryID: 2, Position: 1},
	{Name: "Cappuccino", Description: "Equal parts espresso, steamed milk, foam.", PriceCents: 8500, CategoryID: 2, Position: 2},
	{Name: "Flat White", Description: "Velvety microfoam over a double espresso.", PriceCents: 9000, CategoryID: 2, Position: 3},
	{Name: "Mocha", Description: "Chocolate, steamed milk, espresso.", PriceCents: 9500, CategoryID: 2, Position: 4},
	{Name: "Cortado", Description: "Equal parts espresso and warm milk.", PriceCents: 8000, CategoryID: 2, Position: 5},
	{Name: "Vanilla Latte", Description: "Latte with vanilla syrup.", PriceCents: 9500, CategoryID: 2, Position: 6},
	{Name: "Caramel Latte", Description: "Latte sweetened with caramel.", PriceCents: 10000, CategoryID: 2, Position: 7},
	{Name: "Hazelnut Latte", Description: "Latte with hazelnut syrup.", PriceCents: 10000, CategoryID: 2, Position: 8},

	{Name: "Iced Americano", Description: "Chilled espresso with cold water over ice.", PriceCents: 7000, CategoryID: 3, Position: 1},
	{Name: "Iced Latte", Description: "Chilled espresso with milk over ice.", PriceCents: 9500, CategoryID: 3, Position: 2},
	{Name: "Iced Mocha", Description: "Iced latte with chocolate.", PriceCents: 10500, CategoryID: 3, Position: 3},
	{Name: "Iced Caramel Macchiato", Description: "Espresso, milk, vanilla, caramel drizzle.", PriceCents: 11500, CategoryID: 3, Position: 4},
	{Name: "Nitro Cold Brew", Description: "Cold brew infused with nitrogen for a creamy mouthfeel.", PriceCents: 12000, CategoryID: 3, Position: 5},
	{Name: "Cold Brew", Description: "Slow steeped, smooth and refreshing.", PriceCents: 9500, CategoryID: 3, Position: 6},

	{Name: "Pumpkin Spice Latte", Description: "Latte with pumpkin spice blend.", PriceCents: 11500, CategoryID: 4, Position: 1},
	{Name: "Peppermint Mocha", Description: "Chocolate + peppermint with steamed milk.", PriceCents: 11500, CategoryID: 4, Position: 2},
	{Name: "Gingerbread Latte", Description: "Warm spices with steamed milk.", PriceCents: 11500, CategoryID: 4, Position: 3},
	{Name: "Eggnog Latte", Description: "Holiday classic with eggnog.", PriceCents: 12000, CategoryID: 4, Position: 4},
	{Name: "Affogato", Description: "Vanilla gelato drowned in hot espresso.", PriceCents: 11000, CategoryID: 4, Position: 5},
}
