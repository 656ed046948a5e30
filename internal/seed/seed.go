// Package seed fills a product store with a random but plausible catalog.
package seed

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"catalogapi/internal/domain/entity"
	"catalogapi/internal/domain/repository"
)

const DefaultCount = 100

var Categories = []string{
	"Electronics",
	"Accessories",
	"Computers",
	"Gaming",
	"Smartphones",
	"Audio",
	"Wearables",
	"Home Appliances",
	"Cameras",
	"Networking",
}

var (
	namePrefixes = []string{
		"Pro", "Ultra", "Premium", "Smart", "Advanced", "Wireless", "Portable",
		"Digital", "HD", "4K", "Bluetooth", "Gaming", "Professional", "Mini",
		"Compact", "Deluxe", "Elite", "Supreme", "Classic", "Modern",
	}
	nameTypes = []string{
		"Laptop", "Mouse", "Keyboard", "Monitor", "Headphones", "Smartphone",
		"Tablet", "Smartwatch", "Speaker", "Webcam", "Microphone", "Router",
		"Camera", "Printer", "Scanner", "External Drive", "Power Bank",
		"USB Cable", "Phone Case", "Screen Protector", "Charger", "Adapter",
		"Hub", "Dock", "Stand", "Light", "Fan", "Cooler", "Cleaner", "Bag",
	}
	nameSuffixes = []string{
		"X1", "X2", "Pro", "Plus", "Max", "Air", "Ultra", "Lite", "SE", "XL",
		"2024", "2023", "Gen 2", "Gen 3", "V2", "V3", "Edition", "Series",
	}
	descriptions = []string{
		"High-quality product with advanced features",
		"Perfect for professionals and enthusiasts",
		"Sleek design with powerful performance",
		"Innovative technology for modern users",
		"Premium build quality and reliability",
		"Compact and portable design",
		"Enhanced functionality and ease of use",
		"Industry-leading performance",
		"Cutting-edge technology",
		"Best-in-class features",
		"Ergonomic design for comfort",
		"Energy efficient and eco-friendly",
		"Durable and long-lasting",
		"Versatile and multifunctional",
		"Easy to set up and use",
	}
)

type priceRange struct {
	min, max, weight float64
}

var priceRanges = []priceRange{
	{min: 9.99, max: 49.99, weight: 0.3},
	{min: 50, max: 199.99, weight: 0.3},
	{min: 200, max: 999.99, weight: 0.25},
	{min: 1000, max: 2999.99, weight: 0.15},
}

// Generator produces random products. It is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Products returns count products with distinct names.
func (g *Generator) Products(count int) []*entity.Product {
	used := make(map[string]struct{}, count)
	products := make([]*entity.Product, 0, count)

	for i := 0; i < count; i++ {
		name := g.uniqueName(used)
		used[name] = struct{}{}

		description := g.description()
		category := Categories[g.rnd.Intn(len(Categories))]
		products = append(products, &entity.Product{
			Name:        name,
			Description: &description,
			Price:       g.price(),
			Quantity:    g.quantity(),
			Category:    &category,
		})
	}

	return products
}

// uniqueName gives up on random draws after a while and numbers the name
// instead, so large counts still terminate.
func (g *Generator) uniqueName(used map[string]struct{}) string {
	var name string
	for attempt := 0; attempt < 50; attempt++ {
		name = g.name()
		if _, taken := used[name]; !taken {
			return name
		}
	}

	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s #%d", name, n)
		if _, taken := used[candidate]; !taken {
			return candidate
		}
	}
}

func (g *Generator) name() string {
	prefix := namePrefixes[g.rnd.Intn(len(namePrefixes))]
	kind := nameTypes[g.rnd.Intn(len(nameTypes))]
	suffix := nameSuffixes[g.rnd.Intn(len(nameSuffixes))]

	switch format := g.rnd.Float64(); {
	case format < 0.33:
		return prefix + " " + kind
	case format < 0.66:
		return kind + " " + suffix
	default:
		return prefix + " " + kind + " " + suffix
	}
}

func (g *Generator) price() float64 {
	r := g.rnd.Float64()
	cumulative := 0.0
	for _, pr := range priceRanges {
		cumulative += pr.weight
		if r <= cumulative {
			price := g.rnd.Float64()*(pr.max-pr.min) + pr.min
			return math.Round(price*100) / 100
		}
	}
	return 99.99
}

// quantity is 0 for roughly one product in ten.
func (g *Generator) quantity() int {
	switch r := g.rnd.Float64(); {
	case r < 0.1:
		return 0
	case r < 0.3:
		return g.rnd.Intn(10) + 1
	case r < 0.7:
		return g.rnd.Intn(50) + 10
	default:
		return g.rnd.Intn(200) + 50
	}
}

func (g *Generator) description() string {
	first := descriptions[g.rnd.Intn(len(descriptions))]
	second := descriptions[g.rnd.Intn(len(descriptions))]
	if g.rnd.Float64() < 0.5 {
		return first
	}
	return first + ". " + second + "."
}

type Summary struct {
	Deleted       int64
	Inserted      int
	TotalQuantity int
	AveragePrice  float64
	ByCategory    map[string]int
}

// Run optionally clears repo and then inserts count generated products.
func Run(ctx context.Context, repo repository.ProductRepository, g *Generator, count int, reset bool) (*Summary, error) {
	summary := &Summary{ByCategory: make(map[string]int, len(Categories))}

	if reset {
		deleted, err := repo.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("clear products: %w", err)
		}
		summary.Deleted = deleted
	}

	var priceTotal float64
	for _, product := range g.Products(count) {
		if err := repo.Create(ctx, product); err != nil {
			return summary, fmt.Errorf("insert %q: %w", product.Name, err)
		}

		summary.Inserted++
		summary.TotalQuantity += product.Quantity
		summary.ByCategory[*product.Category]++
		priceTotal += product.Price
	}

	if summary.Inserted > 0 {
		summary.AveragePrice = priceTotal / float64(summary.Inserted)
	}
	return summary, nil
}
