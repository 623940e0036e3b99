package game

import "coasters/internal/domain/cart"

// SlotPriceRupees is the flat charge per selected item (one roll each).
const SlotPriceRupees = 25

// Catalog returns the fixed set of items the game can be played for.
func Catalog() []Item {
	price := slotPrice()
	return []Item{
		{ID: "dice-item-1", Name: "Cappuccino", Price: price},
		{ID: "dice-item-2", Name: "Espresso", Price: price},
		{ID: "dice-item-3", Name: "Croissant", Price: price},
		{ID: "dice-item-4", Name: "Chocolate Cookie", Price: price},
	}
}

// FindCatalogItem looks an id up in the fixed catalog.
func FindCatalogItem(id string) (Item, bool) {
	for _, item := range Catalog() {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

func slotPrice() cart.Money {
	price, err := cart.NewMoneyFromInt(SlotPriceRupees)
	if err != nil {
		panic(err)
	}
	return price
}
