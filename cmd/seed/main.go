package main

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/salonhub/booking-api/internal/config"
	dbpkg "github.com/salonhub/booking-api/internal/db"
	"github.com/salonhub/booking-api/internal/models"
)

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// ------------------------------
	// Categorias
	// ------------------------------
	categoryNames := []string{"Short", "Medium", "Long", "Curly", "Color", "Special Occasion"}
	categories := make(map[string]models.Category, len(categoryNames))

	for _, name := range categoryNames {
		var cat models.Category
		if err := db.Where(models.Category{Name: name}).
			FirstOrCreate(&cat).Error; err != nil {
			log.Fatalf("failed to seed category %q: %v", name, err)
		}
		categories[name] = cat
	}

	// ------------------------------
	// Hairstyles
	// ------------------------------
	type styleSeed struct {
		name     string
		category string
		desc     string
		duration int
		price    string
		image    string
	}

	styleSeeds := []styleSeed{
		{"Pixie Cut", "Short", "Chic short tapered cut with textured top", 30, "50.00", "https://images.unsplash.com/photo-1620122830785-a40d0d2b4f96?w=400"},
		{"Bob Cut", "Short", "Classic chin-length bob with clean lines", 45, "65.00", "https://images.unsplash.com/photo-1634449571010-02389ed0f9b0?w=400"},
		{"Layered Bob", "Medium", "Modern bob with soft face-framing layers", 60, "80.00", "https://images.unsplash.com/photo-1595476108010-b4d1f102b1b1?w=400"},
		{"Beach Waves", "Medium", "Effortless tousled texture with salt spray finish", 60, "75.00", "https://images.unsplash.com/photo-1519699047748-de8e457a634e?w=400"},
		{"Balayage", "Long", "Sun-kissed hand-painted color highlights", 180, "220.00", "https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?w=400"},
		{"Mermaid Waves", "Long", "Voluminous flowing waves with glossy finish", 90, "120.00", "https://images.unsplash.com/photo-1492106087820-71f1a00d2b11?w=400"},
		{"Spiral Curls", "Curly", "Defined bouncy spiral curls with moisture treatment", 75, "95.00", "https://images.unsplash.com/photo-1522337094846-8a818192de1f?w=400"},
		{"Bridal Updo", "Special Occasion", "Elegant pinned updo for weddings and events", 120, "180.00", "https://images.unsplash.com/photo-1519741497674-611481863552?w=400"},
		{"French Braid", "Special Occasion", "Classic French braid with loose tendrils", 45, "60.00", "https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?w=400"},
		{"Highlights", "Color", "Multi-tonal foil highlights for depth and dimension", 150, "195.00", "https://images.unsplash.com/photo-1605497788044-5a32c7078486?w=400"},
	}

	styles := make([]models.Hairstyle, 0, len(styleSeeds))
	for _, s := range styleSeeds {
		price, err := decimal.NewFromString(s.price)
		if err != nil {
			log.Fatalf("bad price for %q: %v", s.name, err)
		}

		style := models.Hairstyle{
			CategoryID:      categories[s.category].ID,
			Description:     s.desc,
			DurationMinutes: s.duration,
			Price:           price,
			ImageURL:        s.image,
			Active:          true,
		}
		if err := db.Where(models.Hairstyle{Name: s.name}).
			Attrs(style).
			FirstOrCreate(&style).Error; err != nil {
			log.Fatalf("failed to seed hairstyle %q: %v", s.name, err)
		}
		styles = append(styles, style)
	}

	// ------------------------------
	// Salões
	// ------------------------------
	type salonSeed struct {
		name    string
		address string
		city    string
		phone   string
		lat     float64
		lng     float64
		rating  float64
		image   string
	}

	salonSeeds := []salonSeed{
		{"Luxe Hair Studio", "123 Main Street", "New York", "+1-555-0101", 40.7128, -74.0060, 4.8, "https://images.unsplash.com/photo-1560066984-138daaa0e2c5?w=400"},
		{"The Mane Event", "456 Oak Avenue", "New York", "+1-555-0102", 40.7589, -73.9851, 4.6, "https://images.unsplash.com/photo-1521590832167-7bcbfaa6381f?w=400"},
		{"Glamour & Glow Spa", "789 Bliss Blvd", "New York", "+1-555-0103", 40.6892, -73.9442, 4.9, "https://images.unsplash.com/photo-1562322140-8baeececf3df?w=400"},
		{"Radiant Roots Salon", "321 Pine Lane", "Brooklyn", "+1-555-0104", 40.6782, -73.9442, 4.5, "https://images.unsplash.com/photo-1493256338651-d82f7acb2b38?w=400"},
		{"Silk & Scissors", "654 Maple Drive", "Queens", "+1-555-0105", 40.7282, -73.7949, 4.7, "https://images.unsplash.com/photo-1595475207225-428b62bda831?w=400"},
	}

	for _, s := range salonSeeds {
		salon := models.Salon{
			Address:     s.address,
			City:        s.city,
			Phone:       s.phone,
			Latitude:    s.lat,
			Longitude:   s.lng,
			Rating:      s.rating,
			OpeningTime: "09:00",
			ClosingTime: "20:00",
			ImageURL:    s.image,
			Active:      true,
		}

		res := db.Where(models.Salon{Name: s.name}).
			Attrs(salon).
			FirstOrCreate(&salon)
		if res.Error != nil {
			log.Fatalf("failed to seed salon %q: %v", s.name, res.Error)
		}

		// Salão novo oferece todos os estilos do catálogo.
		if res.RowsAffected > 0 {
			if err := db.Model(&salon).
				Association("Services").
				Replace(styles); err != nil {
				log.Fatalf("failed to attach services to %q: %v", s.name, err)
			}
		}
	}

	log.Println("seed data loaded")
}
