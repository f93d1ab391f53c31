package catalogtest

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/ptr"
)

const (
	assetsURL   = "https://cdn.dummyjson.com/products/images"
	categoryURL = "https://dummyjson.com/products/category/"
	seedStamp   = "2024-05-23T08:56:21.618Z"
)

type seedRow struct {
	title       string
	category    string
	brand       string
	price       float64
	discount    float64
	rating      float64
	stock       int
	tags        []string
	description string
}

// seedRows are listed in id order starting at 1. Rows without brand are
// groceries, which upstream ships unbranded.
var seedRows = []seedRow{
	{"Essence Mascara Lash Princess", "beauty", "Essence", 9.99, 7.17, 4.94, 5, []string{"beauty", "mascara"},
		"The Essence Mascara Lash Princess is a popular mascara known for its volumizing and lengthening effects. Achieve dramatic lashes with this long-lasting and cruelty-free formula."},
	{"Eyeshadow Palette with Mirror", "beauty", "Glamour Beauty", 19.99, 5.5, 3.28, 44, []string{"beauty", "eyeshadow"},
		"The Eyeshadow Palette with Mirror offers a versatile range of eyeshadow shades for creating stunning eye looks. With a built-in mirror, it's convenient for on-the-go makeup application."},
	{"Powder Canister", "beauty", "Velvet Touch", 14.99, 18.14, 3.82, 59, []string{"beauty", "face powder"},
		"The Powder Canister is a finely milled setting powder designed to set makeup and control shine. With a lightweight and translucent formula, it provides a smooth and matte finish."},
	{"Red Lipstick", "beauty", "Chic Cosmetics", 12.99, 19.03, 2.51, 68, []string{"beauty", "lipstick"},
		"The Red Lipstick is a classic and bold choice for adding a pop of color to your lips. With a creamy and pigmented formula, it provides a vibrant and long-lasting finish."},
	{"Red Nail Polish", "beauty", "Nail Couture", 8.99, 2.46, 3.91, 71, []string{"beauty", "nail polish"},
		"The Red Nail Polish offers a rich and glossy red hue for vibrant and polished nails. With a quick-drying formula, it provides a salon-quality finish at home."},
	{"Calvin Klein CK One", "fragrances", "Calvin Klein", 49.99, 0.32, 4.85, 17, []string{"fragrances", "perfumes"},
		"CK One by Calvin Klein is a classic unisex fragrance, known for its fresh and clean scent. It's a versatile fragrance suitable for everyday wear."},
	{"Chanel Coco Noir Eau De", "fragrances", "Chanel", 129.99, 18.64, 2.76, 41, []string{"fragrances", "perfumes"},
		"Coco Noir by Chanel is an elegant and mysterious fragrance, featuring notes of grapefruit, rose, and sandalwood. Perfect for evening occasions."},
	{"Dior J'adore", "fragrances", "Dior", 89.99, 17.44, 3.31, 91, []string{"fragrances", "perfumes"},
		"J'adore by Dior is a luxurious and floral fragrance, known for its blend of ylang-ylang, rose, and jasmine. It embodies femininity and sophistication."},
	{"Dolce Shine Eau de", "fragrances", "Dolce & Gabbana", 69.99, 11.47, 2.68, 3, []string{"fragrances", "perfumes"},
		"Dolce Shine by Dolce & Gabbana is a vibrant and fruity fragrance, featuring notes of mango, jasmine, and blonde woods. It's a joyful and youthful scent."},
	{"Gucci Bloom Eau de", "fragrances", "Gucci", 79.99, 8.9, 2.69, 93, []string{"fragrances", "perfumes"},
		"Gucci Bloom by Gucci is a floral and captivating fragrance, with notes of tuberose, jasmine, and Rangoon creeper. It's a modern and romantic scent."},
	{"Annibale Colombo Bed", "furniture", "Annibale Colombo", 1899.99, 0.29, 4.14, 47, []string{"furniture", "beds"},
		"The Annibale Colombo Bed is a luxurious and elegant bed frame, crafted with high-quality materials for a comfortable and stylish bedroom."},
	{"Annibale Colombo Sofa", "furniture", "Annibale Colombo", 2499.99, 18.54, 3.08, 16, []string{"furniture", "sofas"},
		"The Annibale Colombo Sofa is a sophisticated and comfortable seating option, featuring exquisite design and premium upholstery for your living room."},
	{"Bedside Table African Cherry", "furniture", "Furniture Co.", 299.99, 9.58, 4.48, 16, []string{"furniture", "bedside tables"},
		"The Bedside Table in African Cherry is a stylish and functional addition to your bedroom, providing convenient storage space and a touch of elegance."},
	{"Knoll Saarinen Executive Conference Chair", "furniture", "Knoll", 499.99, 15.23, 4.11, 47, []string{"furniture", "office chairs"},
		"The Knoll Saarinen Executive Conference Chair is a modern and ergonomic chair, perfect for your office or conference room with its timeless design."},
	{"Wooden Bathroom Sink With Mirror", "furniture", "Bath Trends", 799.99, 11.22, 3.26, 95, []string{"furniture", "bathroom"},
		"The Wooden Bathroom Sink with Mirror is a unique and stylish addition to your bathroom, featuring a wooden sink countertop and a matching mirror."},
	{"Apple", "groceries", "", 1.99, 1.97, 2.96, 9, []string{"fruits"},
		"Fresh and crisp apples, perfect for snacking or incorporating into various recipes."},
	{"Beef Steak", "groceries", "", 12.99, 17.99, 2.83, 96, []string{"meat"},
		"High-quality beef steak, great for grilling or cooking to your preferred level of doneness."},
	{"Cat Food", "groceries", "", 8.99, 9.57, 2.88, 13, []string{"pet supplies", "cat food"},
		"Nutritious cat food formulated to meet the dietary needs of your feline friend."},
	{"Chicken Meat", "groceries", "", 9.99, 10.46, 4.61, 69, []string{"meat"},
		"Fresh and tender chicken meat, suitable for various culinary preparations."},
	{"Cooking Oil", "groceries", "", 4.99, 18.16, 4.01, 22, []string{"cooking essentials"},
		"Versatile cooking oil suitable for frying, sautéing, and various culinary applications."},
	{"Cucumber", "groceries", "", 1.49, 11.44, 4.71, 147, []string{"vegetables"},
		"Crisp and hydrating cucumbers, ideal for salads, snacks, or as a refreshing side."},
	{"Decoration Swing", "home-decoration", "Decor Haven", 59.99, 3.67, 3.16, 47, []string{"home decor", "swing"},
		"The Decoration Swing is a charming addition to your home decor. Crafted with intricate details, it adds a touch of elegance and whimsy to any room."},
	{"Family Tree Photo Frame", "home-decoration", "Memory Lane", 29.99, 19.74, 4.53, 77, []string{"home decor", "photo frame"},
		"The Family Tree Photo Frame is a sentimental and stylish way to display your cherished family memories. With multiple photo slots, it tells the story of your loved ones."},
	{"House Showpiece Plant", "home-decoration", "Green Living", 39.99, 15.48, 4.67, 28, []string{"home decor", "showpiece plant"},
		"The House Showpiece Plant is an artificial plant that brings a touch of nature to your home without the need for maintenance. It adds greenery and style to any space."},
	{"Bamboo Spatula", "kitchen-accessories", "Kitchen Basics", 7.99, 17.36, 3.27, 37, []string{"kitchen tools", "utensils"},
		"The Bamboo Spatula is a versatile kitchen tool made from eco-friendly bamboo. Ideal for flipping, stirring, and serving various dishes."},
	{"Black Aluminium Cup", "kitchen-accessories", "Kitchen Basics", 5.99, 14.99, 4.46, 75, []string{"kitchen tools", "drinkware"},
		"The Black Aluminium Cup is a stylish and durable cup suitable for both hot and cold beverages. Its sleek black design adds a modern touch to your drinkware collection."},
	{"Black Whisk", "kitchen-accessories", "Kitchen Basics", 9.99, 2.25, 3.9, 73, []string{"kitchen tools", "baking"},
		"The Black Whisk is a kitchen essential for whisking and beating ingredients. Its ergonomic handle and sleek design make it a practical and stylish tool."},
	{"Apple MacBook Pro 14 Inch Space Grey", "laptops", "Apple", 1999.99, 9.3, 3.65, 24, []string{"computers", "laptops"},
		"The MacBook Pro 14 Inch in Space Grey is a powerful and sleek laptop, featuring Apple's M1 Pro chip for exceptional performance and a stunning Retina display."},
	{"Asus Zenbook Pro Dual Screen Laptop", "laptops", "Asus", 1799.99, 0.17, 3.95, 45, []string{"computers", "laptops"},
		"The Asus Zenbook Pro Dual Screen Laptop is a high-performance device with dual screens, providing productivity and versatility for creative professionals."},
	{"Lenovo Yoga 920", "laptops", "Lenovo", 1099.99, 7.06, 2.86, 40, []string{"computers", "laptops"},
		"The Lenovo Yoga 920 is a 2-in-1 convertible laptop with a flexible hinge, allowing you to use it as a laptop or tablet, offering versatility and portability."},
	{"Blue & Black Check Shirt", "mens-shirts", "Fashion Trends", 29.99, 1.41, 3.64, 38, []string{"clothing", "men's shirts"},
		"The Blue & Black Check Shirt is a stylish and comfortable men's shirt featuring a classic check pattern. Made from high-quality fabric, it's suitable for both casual and semi-formal occasions."},
	{"Gigabyte Aorus Men Tshirt", "mens-shirts", "Gigabyte", 24.99, 12.6, 3.18, 90, []string{"clothing", "men's t-shirts"},
		"The Gigabyte Aorus Men Tshirt is a cool and casual shirt for gaming enthusiasts. With the Aorus logo and sleek design, it's perfect for expressing your gaming style."},
	{"Apple AirPods Max Silver", "mobile-accessories", "Apple", 549.99, 13.67, 3.47, 59, []string{"electronics", "headphones"},
		"The Apple AirPods Max in Silver are premium over-ear headphones with high-fidelity audio, adaptive EQ, and active noise cancellation. Pair them with your phone for immersive sound."},
	{"Apple MagSafe Battery Pack", "mobile-accessories", "Apple", 99.99, 15.25, 3.48, 1, []string{"electronics", "charger"},
		"The Apple MagSafe Battery Pack is a portable and convenient way to extend the battery life of your phone. Simply attach it magnetically for wireless charging on the go."},
	{"Amazon Echo Plus", "mobile-accessories", "Amazon", 99.99, 2.62, 3.97, 61, []string{"electronics", "smart speakers"},
		"The Amazon Echo Plus is a smart speaker with built-in Alexa voice control. It features premium sound quality and serves as a hub for controlling smart home devices."},
	{"iPhone 5s", "smartphones", "Apple", 199.99, 12.91, 2.83, 25, []string{"smartphones", "apple"},
		"The iPhone 5s is a classic smartphone known for its compact design and advanced features during its release. While it's an older model, it still provides a reliable user experience."},
	{"iPhone 6", "smartphones", "Apple", 299.99, 8.9, 3.41, 60, []string{"smartphones", "apple"},
		"The iPhone 6 is a stylish and capable smartphone with a larger display and improved performance. It offers a range of features, including a high-quality camera and secure mobile payments."},
	{"iPhone 13 Pro", "smartphones", "Apple", 1099.99, 9.37, 4.12, 56, []string{"smartphones", "apple"},
		"The iPhone 13 Pro is a cutting-edge smartphone with a powerful camera system, high-performance chip, and stunning display. It offers advanced features for users who demand top-notch technology."},
	{"Oppo A57", "smartphones", "Oppo", 249.99, 3.94, 3.94, 19, []string{"smartphones", "oppo"},
		"The Oppo A57 is a mid-range smartphone known for its sleek design and capable features. It offers a balanced performance for everyday use with a vibrant display."},
	{"Samsung Galaxy S10", "smartphones", "Samsung", 699.99, 1.28, 4.07, 19, []string{"smartphones", "samsung"},
		"The Samsung Galaxy S10 is a flagship device featuring a dynamic AMOLED display, versatile camera system, and powerful performance. It represents innovation and excellence in smartphone technology."},
	{"Attitude Super Leaves Hand Soap", "skin-care", "Attitude", 8.99, 9.1, 4.24, 27, []string{"skin care", "hand soap"},
		"Attitude Super Leaves Hand Soap is a natural and nourishing hand soap enriched with the goodness of super leaves. It cleanses and moisturizes, leaving your hands soft and refreshed."},
	{"Olive Oil", "skin-care", "Olay", 12.99, 5.83, 4.07, 52, []string{"skin care", "body oil"},
		"Olive Oil body oil is a light moisturizing formula that keeps skin soft and supple. Suitable for daily use after a shower."},
	{"American Football", "sports-accessories", "Sportify", 19.99, 6.8, 2.7, 53, []string{"sports equipment", "football"},
		"The American Football is a classic ball used in American football games. It is designed for throwing and catching, making it an essential piece of equipment for the sport."},
	{"Baseball Ball", "sports-accessories", "Sportify", 8.99, 16.71, 2.57, 64, []string{"sports equipment", "baseball"},
		"The Baseball Ball is a standard baseball used in baseball games. It features a durable leather cover and is designed for pitching, hitting, and fielding in the game of baseball."},
	{"iPad Mini 2021 Starlight", "tablets", "Apple", 499.99, 18.42, 4.82, 47, []string{"electronics", "tablets"},
		"The iPad Mini 2021 in Starlight is a compact and powerful tablet from Apple. Featuring a stunning Retina display, powerful A-series chip, and a sleek design, it offers a premium tablet experience."},
	{"Samsung Galaxy Tab S8 Plus Grey", "tablets", "Samsung", 599.99, 7.49, 4.44, 10, []string{"electronics", "tablets"},
		"The Samsung Galaxy Tab S8 Plus in Grey is a high-performance Android tablet by Samsung. With a large AMOLED display, powerful processor, and S Pen support, it's ideal for productivity and entertainment."},
	{"Blue Women's Handbag", "womens-bags", "Fashion Accessories", 49.99, 9.85, 3.84, 17, []string{"fashion", "handbags"},
		"The Blue Women's Handbag is a stylish and spacious accessory for everyday use. With a vibrant blue color and multiple compartments, it combines fashion and functionality."},
	{"Heshe Women's Leather Bag", "womens-bags", "Heshe", 129.99, 7.12, 2.83, 51, []string{"fashion", "leather bags"},
		"The Heshe Women's Leather Bag is a luxurious and high-quality leather bag for the sophisticated woman. With a timeless design and durable craftsmanship, it's a versatile accessory."},
}

// seedProducts expands seedRows into full product records.
func seedProducts() []model.Product {
	products := make([]model.Product, 0, len(seedRows))
	for i, row := range seedRows {
		id := i + 1
		images := fmt.Sprintf("%s/%s/%s", assetsURL, row.category, url.PathEscape(row.title))

		p := model.Product{
			ID:                   id,
			Title:                row.title,
			Description:          row.description,
			Category:             row.category,
			Price:                row.price,
			DiscountPercentage:   row.discount,
			Rating:               row.rating,
			Stock:                row.stock,
			Thumbnail:            images + "/thumbnail.png",
			Images:               []string{images + "/1.png"},
			Tags:                 row.tags,
			Sku:                  fmt.Sprintf("%s-%03d", strings.ToUpper(row.category[:3]), id),
			Weight:               float64(1 + id%9),
			Dimensions:           model.Dimensions{Width: 10 + float64(id%7), Height: 5 + float64(id%5), Depth: 2 + float64(id%3)},
			WarrantyInformation:  "1 year warranty",
			ShippingInformation:  "Ships in 1-2 business days",
			AvailabilityStatus:   availability(row.stock),
			ReturnPolicy:         "30 days return policy",
			MinimumOrderQuantity: 1 + id%10,
			Reviews: []model.Review{{
				Rating:        float64(1 + id%5),
				Comment:       "Would buy again!",
				Date:          seedStamp,
				ReviewerName:  "Eleanor Collins",
				ReviewerEmail: "eleanor.collins@x.dummyjson.com",
			}},
			Meta: model.Meta{
				CreatedAt: seedStamp,
				UpdatedAt: seedStamp,
				Barcode:   fmt.Sprintf("%013d", 9164035109868+id),
				QRCode:    "https://assets.dummyjson.com/public/qr-code.png",
			},
		}
		if row.brand != "" {
			p.Brand = ptr.New(row.brand)
		}
		products = append(products, p)
	}
	return products
}

func availability(stock int) string {
	if stock < 10 {
		return "Low Stock"
	}
	return "In Stock"
}

// seedCategories derives the category records from products, sorted by slug.
func seedCategories(products []model.Product) []model.Category {
	var categories []model.Category
	seen := map[string]struct{}{}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, model.Category{
			Slug: p.Category,
			Name: categoryName(p.Category),
			URL:  categoryURL + p.Category,
		})
	}
	slices.SortFunc(categories, func(a, b model.Category) int {
		return strings.Compare(a.Slug, b.Slug)
	})
	return categories
}

// categoryName turns "mens-shirts" into "Mens Shirts".
func categoryName(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
