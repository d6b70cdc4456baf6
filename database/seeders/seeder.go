// Package seeders loads sample menu and review data for local development.
package seeders

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
	"github.com/shashiranjanraj/bistro-boss-server/app/repositories"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/logger"
)

// Run seeds the menu and reviews collections. Collections that already hold
// documents are left untouched so reruns are safe.
func Run(ctx context.Context, db *mongo.Database) error {
	menu := repositories.NewMenuRepository(db)
	reviews := repositories.NewReviewRepository(db)

	count, err := menu.EstimatedCount(ctx)
	if err != nil {
		return fmt.Errorf("count menu: %w", err)
	}

	if count == 0 {
		for _, item := range sampleMenu() {
			if _, err := menu.Create(ctx, item); err != nil {
				return fmt.Errorf("seed menu item %q: %w", item.Name, err)
			}
		}
		logger.Info("seeded menu", "items", len(sampleMenu()))
	} else {
		logger.Info("menu already populated, skipping", "count", count)
	}

	existing, err := reviews.All(ctx)
	if err != nil {
		return fmt.Errorf("count reviews: %w", err)
	}

	if len(existing) == 0 {
		if err := reviews.Insert(ctx, sampleReviews()); err != nil {
			return fmt.Errorf("seed reviews: %w", err)
		}
		logger.Info("seeded reviews", "reviews", len(sampleReviews()))
	} else {
		logger.Info("reviews already populated, skipping", "count", len(existing))
	}

	return nil
}

func sampleMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			Name:     "Roast Duck Breast",
			Recipe:   "Roasted duck breast, black truffle, cauliflower puree.",
			Image:    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-1-370x247.jpg",
			Category: "popular",
			Price:    14.5,
		},
		{
			Name:     "Tuna Niçoise",
			Recipe:   "Seared tuna, green beans, soft egg, olive tapenade.",
			Image:    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-2-370x247.jpg",
			Category: "salad",
			Price:    10.5,
		},
		{
			Name:     "Escalope de Veau",
			Recipe:   "Veal escalope, sage butter, roasted root vegetables.",
			Image:    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-3-370x247.jpg",
			Category: "popular",
			Price:    12.5,
		},
		{
			Name:     "Chicken and Walnut Salad",
			Recipe:   "Poached chicken, candied walnuts, shaved fennel.",
			Image:    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-4-370x247.jpg",
			Category: "salad",
			Price:    8.99,
		},
		{
			Name:     "Fish Parmentier",
			Recipe:   "White fish, mashed potato crust, gruyere glaze.",
			Image:    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-5-370x247.jpg",
			Category: "soup",
			Price:    11.0,
		},
		{
			Name:     "Margherita Pizza",
			Recipe:   "San Marzano tomato, fior di latte, fresh basil.",
			Image:    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-6-370x247.jpg",
			Category: "pizza",
			Price:    9.5,
		},
		{
			Name:     "Tarte aux Pommes",
			Recipe:   "Thin apple tart, vanilla ice cream, calvados caramel.",
			Image:    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-7-370x247.jpg",
			Category: "dessert",
			Price:    6.5,
		},
		{
			Name:     "Chocolate Fondant",
			Recipe:   "Molten chocolate cake, creme anglaise, raspberries.",
			Image:    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-8-370x247.jpg",
			Category: "dessert",
			Price:    7.0,
		},
		{
			Name:     "Fresh Lime Soda",
			Recipe:   "Hand-pressed lime, soda water, cane sugar.",
			Image:    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-9-370x247.jpg",
			Category: "drinks",
			Price:    3.5,
		},
		{
			Name:     "Breakfast Platter",
			Recipe:   "Eggs any style, smoked bacon, sourdough, preserves.",
			Image:    "https://cristianonew.ukrdevs.com/wp-content/uploads/2016/08/product-10-370x247.jpg",
			Category: "offered",
			Price:    8.32,
		},
	}
}

func sampleReviews() []models.Review {
	return []models.Review{
		{
			Name:    "Nadia Hassan",
			Details: "The duck was cooked perfectly and the service was quick even on a Friday night.",
			Rating:  5,
		},
		{
			Name:    "Marcus Webb",
			Details: "Great pizza, decent portions. The dessert menu alone is worth the trip.",
			Rating:  4,
		},
		{
			Name:    "Priya Raman",
			Details: "Ordered through the app and the cart checkout was seamless. Food arrived hot.",
			Rating:  5,
		},
		{
			Name:    "Tom Keller",
			Details: "Soup was a little salty for my taste but everything else was excellent.",
			Rating:  3,
		},
	}
}
