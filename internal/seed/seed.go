package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/gocql/gocql"

	"luvera_back_end/internal/database"
	"luvera_back_end/internal/models"
	"luvera_back_end/internal/services"
)

// Result résume ce qui a été inséré lors d'un amorçage
type Result struct {
	Products int  `json:"productsCount"`
	Blogs    int  `json:"blogsCount"`
	Offers   int  `json:"offersCount"`
	Skipped  bool `json:"skipped,omitempty"`
}

func sampleProducts(now time.Time) []models.Product {
	return []models.Product{
		{
			ID:          gocql.TimeUUID(),
			Name:        "Vitamin C Brightening Serum",
			Description: "A powerful vitamin C serum that brightens skin and reduces dark spots.",
			Price:       45,
			Category:    "skincare",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1686121522357-48dc9ea59281?w=1080"},
			Tags:        []string{"vitamin-c", "serum", "brightening"},
			InStock:     true,
			Featured:    true,
			CreatedAt:   &now,
			UpdatedAt:   &now,
		},
		{
			ID:          gocql.TimeUUID(),
			Name:        "Hydrating Night Cream",
			Description: "A rich night cream that deeply hydrates and repairs skin while you sleep.",
			Price:       38,
			Category:    "skincare",
			ImageURLs:   []string{"https://images.unsplash.com/photo-1729324738509-7935838d5ef9?w=1080"},
			Tags:        []string{"night-cream", "hydration"},
			InStock:     true,
			Featured:    false,
			CreatedAt:   &now,
			UpdatedAt:   &now,
		},
	}
}

func sampleBlogs(now time.Time) []models.BlogPost {
	return []models.BlogPost{
		{
			ID:          gocql.TimeUUID(),
			Title:       "The Complete Guide to Vitamin C in Skincare",
			Content:     "Vitamin C is one of the most powerful ingredients in skincare. This essential antioxidant helps protect your skin from environmental damage, reduces signs of aging, and promotes a brighter, more even complexion. Start with a lower concentration (10-15%) and gradually work your way up. Always use sunscreen when using vitamin C products, as they can increase photosensitivity.",
			Excerpt:     "Discover the benefits of vitamin C and how to use it effectively in your skincare routine for brighter, healthier skin.",
			Author:      "Dr. Sarah Johnson",
			Published:   true,
			PublishDate: now.Format("2006-01-02"),
			Tags:        []string{"vitamin-c", "skincare", "ingredients", "anti-aging"},
			CreatedAt:   &now,
			UpdatedAt:   &now,
		},
		{
			ID:          gocql.TimeUUID(),
			Title:       "Winter Skincare Essentials: Keep Your Skin Glowing",
			Content:     "Winter weather can be harsh on your skin, causing dryness, irritation, and dullness. Learn the essential steps to maintain healthy, glowing skin during the colder months. Focus on hydration, gentle cleansing, and protective barriers to keep your skin looking its best all season long.",
			Excerpt:     "Essential tips and products to maintain healthy, hydrated skin during the harsh winter months.",
			Author:      "Emma Chen",
			Published:   true,
			PublishDate: now.AddDate(0, 0, -2).Format("2006-01-02"),
			Tags:        []string{"winter-skincare", "hydration", "seasonal", "tips"},
			CreatedAt:   &now,
			UpdatedAt:   &now,
		},
	}
}

func sampleOffers(now time.Time) []models.Offer {
	winterEnd := now.AddDate(0, 0, 7)
	goldenEnd := now.AddDate(0, 0, 14)
	return []models.Offer{
		{
			ID:          gocql.TimeUUID(),
			Title:       "Winter Glow Sale - Up to 30% Off",
			Description: "Transform your winter skincare routine with our premium collection. Limited time festive offer!",
			Discount:    30,
			ImageURL:    "https://images.unsplash.com/photo-1571513138419-0b5904c7d161?w=1080",
			Active:      true,
			StartDate:   &now,
			EndDate:     &winterEnd,
			ButtonText:  "Shop Winter Collection",
			ButtonLink:  "/shop",
			CreatedAt:   &now,
			UpdatedAt:   &now,
		},
		{
			ID:          gocql.TimeUUID(),
			Title:       "Golden Hour Glow - 25% Off Serums",
			Description: "Achieve that perfect golden hour glow! Get 25% off all our premium vitamin C serums and treatments.",
			Discount:    25,
			ImageURL:    "https://images.unsplash.com/photo-1707300235308-ab312f702683?w=1080",
			Active:      true,
			StartDate:   &now,
			EndDate:     &goldenEnd,
			ButtonText:  "Get Golden Glow",
			ButtonLink:  "/shop",
			CreatedAt:   &now,
			UpdatedAt:   &now,
		},
	}
}

// Run insère les données d'exemple dans le catalogue. Si des produits existent
// déjà, l'amorçage est ignoré pour ne pas dupliquer les données.
func Run() (Result, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return Result{}, fmt.Errorf("connexion catalogue: %w", err)
	}

	var existing int
	if err := session.Query("SELECT COUNT(*) FROM products").Scan(&existing); err != nil {
		return Result{}, fmt.Errorf("comptage produits: %w", err)
	}
	if existing > 0 {
		log.Printf("ℹ️ Données déjà présentes (%d produits), amorçage ignoré", existing)
		return Result{Products: existing, Skipped: true}, nil
	}

	now := time.Now()
	res := Result{}

	for _, p := range sampleProducts(now) {
		if err := session.Query(`
			INSERT INTO products (product_id, name, description, price, category, image_urls, tags, in_stock, featured, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURLs, p.Tags, p.InStock, p.Featured, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
			return res, fmt.Errorf("insertion produit %s: %w", p.Name, err)
		}
		go services.IndexProduct(p)
		res.Products++
	}

	for _, b := range sampleBlogs(now) {
		if err := session.Query(`
			INSERT INTO blogs (blog_id, title, content, excerpt, author, published, publish_date, tags, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, b.ID, b.Title, b.Content, b.Excerpt, b.Author, b.Published, b.PublishDate, b.Tags, b.CreatedAt, b.UpdatedAt).Exec(); err != nil {
			return res, fmt.Errorf("insertion article %s: %w", b.Title, err)
		}
		res.Blogs++
	}

	for _, o := range sampleOffers(now) {
		if err := session.Query(`
			INSERT INTO offers (offer_id, title, description, discount, image_url, active, start_date, end_date, button_text, button_link, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, o.ID, o.Title, o.Description, o.Discount, o.ImageURL, o.Active, o.StartDate, o.EndDate, o.ButtonText, o.ButtonLink, o.CreatedAt, o.UpdatedAt).Exec(); err != nil {
			return res, fmt.Errorf("insertion offre %s: %w", o.Title, err)
		}
		res.Offers++
	}

	log.Printf("🌱 Données d'exemple insérées: %d produits, %d articles, %d offres", res.Products, res.Blogs, res.Offers)
	return res, nil
}
