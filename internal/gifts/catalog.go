package gifts

import (
	"fmt"

	"github.com/dmathew/go-giftsmart/internal/config"
)

// CardOption is a purchasable gift card brand in the static catalog.
type CardOption struct {
	ID        string  `json:"id"`
	BrandName string  `json:"brand_name"`
	ImageURL  string  `json:"image_url"`
	Category  string  `json:"category"`
	MinAmount float64 `json:"min_amount"`
	MaxAmount float64 `json:"max_amount"`
	Popular   bool    `json:"is_popular"`
}

// PriceRange renders the option's amount bounds for display.
func (o CardOption) PriceRange() string {
	return fmt.Sprintf(config.FormatPriceRange, int(o.MinAmount), int(o.MaxAmount))
}

// catalog is the full static inventory. There is no real aggregator behind
// this service; swapping it for a live API keeps the Service surface intact.
var catalog = map[string][]CardOption{
	config.CategoryFood: {
		{ID: "1", BrandName: "Uber Eats", ImageURL: "https://cdn.giftsmart.example/brands/uber-eats.png", Category: config.CategoryFood, MinAmount: 15, MaxAmount: 200, Popular: true},
		{ID: "2", BrandName: "DoorDash", ImageURL: "https://cdn.giftsmart.example/brands/doordash.png", Category: config.CategoryFood, MinAmount: 10, MaxAmount: 150, Popular: true},
		{ID: "3", BrandName: "Grubhub", ImageURL: "https://cdn.giftsmart.example/brands/grubhub.png", Category: config.CategoryFood, MinAmount: 20, MaxAmount: 100},
		{ID: "4", BrandName: "Chipotle", ImageURL: "https://cdn.giftsmart.example/brands/chipotle.png", Category: config.CategoryFood, MinAmount: 25, MaxAmount: 75, Popular: true},
		{ID: "5", BrandName: "Starbucks", ImageURL: "https://cdn.giftsmart.example/brands/starbucks.png", Category: config.CategoryFood, MinAmount: 10, MaxAmount: 100, Popular: true},
	},
	config.CategoryRetail: {
		{ID: "6", BrandName: "Amazon", ImageURL: "https://cdn.giftsmart.example/brands/amazon.png", Category: config.CategoryRetail, MinAmount: 25, MaxAmount: 500, Popular: true},
		{ID: "7", BrandName: "Target", ImageURL: "https://cdn.giftsmart.example/brands/target.png", Category: config.CategoryRetail, MinAmount: 20, MaxAmount: 200, Popular: true},
		{ID: "8", BrandName: "Walmart", ImageURL: "https://cdn.giftsmart.example/brands/walmart.png", Category: config.CategoryRetail, MinAmount: 15, MaxAmount: 150},
		{ID: "9", BrandName: "Best Buy", ImageURL: "https://cdn.giftsmart.example/brands/best-buy.png", Category: config.CategoryRetail, MinAmount: 50, MaxAmount: 500},
		{ID: "10", BrandName: "Nike", ImageURL: "https://cdn.giftsmart.example/brands/nike.png", Category: config.CategoryRetail, MinAmount: 25, MaxAmount: 200, Popular: true},
	},
	config.CategoryExperience: {
		{ID: "11", BrandName: "Airbnb", ImageURL: "https://cdn.giftsmart.example/brands/airbnb.png", Category: config.CategoryExperience, MinAmount: 50, MaxAmount: 500, Popular: true},
		{ID: "12", BrandName: "Groupon", ImageURL: "https://cdn.giftsmart.example/brands/groupon.png", Category: config.CategoryExperience, MinAmount: 20, MaxAmount: 200},
		{ID: "13", BrandName: "MasterClass", ImageURL: "https://cdn.giftsmart.example/brands/masterclass.png", Category: config.CategoryExperience, MinAmount: 90, MaxAmount: 180, Popular: true},
		{ID: "14", BrandName: "Coursera", ImageURL: "https://cdn.giftsmart.example/brands/coursera.png", Category: config.CategoryExperience, MinAmount: 30, MaxAmount: 200, Popular: true},
	},
	config.CategoryEntertainment: {
		{ID: "15", BrandName: "Netflix", ImageURL: "https://cdn.giftsmart.example/brands/netflix.png", Category: config.CategoryEntertainment, MinAmount: 15, MaxAmount: 100, Popular: true},
		{ID: "16", BrandName: "Spotify", ImageURL: "https://cdn.giftsmart.example/brands/spotify.png", Category: config.CategoryEntertainment, MinAmount: 10, MaxAmount: 120, Popular: true},
		{ID: "17", BrandName: "Hulu", ImageURL: "https://cdn.giftsmart.example/brands/hulu.png", Category: config.CategoryEntertainment, MinAmount: 12, MaxAmount: 120},
		{ID: "18", BrandName: "Disney+", ImageURL: "https://cdn.giftsmart.example/brands/disney-plus.png", Category: config.CategoryEntertainment, MinAmount: 8, MaxAmount: 80, Popular: true},
	},
}

// Categories lists the catalog categories in display order.
func Categories() []string {
	return []string{
		config.CategoryFood,
		config.CategoryRetail,
		config.CategoryExperience,
		config.CategoryEntertainment,
	}
}
