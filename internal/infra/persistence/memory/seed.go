package memory

import (
	_ "embed"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"storefront/internal/domain/entity"
)

//go:embed seed.yaml
var embeddedSeed []byte

// seedFile is the YAML layout of a catalog file.
type seedFile struct {
	Products   []productSeed  `yaml:"products" validate:"dive"`
	Categories []categorySeed `yaml:"categories" validate:"dive"`
	Reviews    []reviewSeed   `yaml:"reviews" validate:"dive"`
}

type productSeed struct {
	ID             string            `yaml:"id" validate:"required"`
	Name           string            `yaml:"name" validate:"required"`
	Description    string            `yaml:"description"`
	Price          string            `yaml:"price" validate:"required,numeric"`
	OriginalPrice  string            `yaml:"originalPrice" validate:"omitempty,numeric"`
	Images         []string          `yaml:"images" validate:"dive,url"`
	Category       string            `yaml:"category" validate:"required"`
	Subcategory    string            `yaml:"subcategory"`
	Brand          string            `yaml:"brand"`
	Stock          int               `yaml:"stock" validate:"gte=0"`
	Rating         float64           `yaml:"rating" validate:"gte=0,lte=5"`
	ReviewCount    int               `yaml:"reviewCount" validate:"gte=0"`
	Features       []string          `yaml:"features"`
	Specifications map[string]string `yaml:"specifications"`
	Tags           []string          `yaml:"tags"`
	Featured       bool              `yaml:"featured"`
	CreatedAt      time.Time         `yaml:"createdAt"`
	UpdatedAt      time.Time         `yaml:"updatedAt"`
}

type categorySeed struct {
	ID            string               `yaml:"id" validate:"required"`
	Name          string               `yaml:"name" validate:"required"`
	Slug          string               `yaml:"slug" validate:"required"`
	Description   string               `yaml:"description"`
	Image         string               `yaml:"image"`
	Subcategories []entity.Subcategory `yaml:"subcategories"`
}

type reviewSeed struct {
	ID         string    `yaml:"id" validate:"required"`
	ProductID  string    `yaml:"productId" validate:"required"`
	UserID     string    `yaml:"userId"`
	UserName   string    `yaml:"userName"`
	UserAvatar string    `yaml:"userAvatar"`
	Rating     int       `yaml:"rating" validate:"gte=1,lte=5"`
	Title      string    `yaml:"title"`
	Comment    string    `yaml:"comment"`
	Helpful    int       `yaml:"helpful"`
	Verified   bool      `yaml:"verified"`
	CreatedAt  time.Time `yaml:"createdAt"`
}

// catalogData is a decoded, validated catalog.
type catalogData struct {
	products   []*entity.Product
	categories []*entity.Category
	reviews    []*entity.Review
}

// parseSeed decodes and validates a YAML catalog.
func parseSeed(data []byte) (*catalogData, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, errors.Wrap(err, "decode catalog seed")
	}
	if err := validator.New().Struct(seed); err != nil {
		return nil, errors.Wrap(err, "validate catalog seed")
	}

	result := &catalogData{
		products:   make([]*entity.Product, 0, len(seed.Products)),
		categories: make([]*entity.Category, 0, len(seed.Categories)),
		reviews:    make([]*entity.Review, 0, len(seed.Reviews)),
	}

	seen := make(map[string]struct{}, len(seed.Products))
	for _, p := range seed.Products {
		if _, dup := seen[p.ID]; dup {
			return nil, errors.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}

		product, err := toProduct(p)
		if err != nil {
			return nil, err
		}
		result.products = append(result.products, product)
	}

	for _, c := range seed.Categories {
		subcategories := c.Subcategories
		if subcategories == nil {
			subcategories = []entity.Subcategory{}
		}
		result.categories = append(result.categories, &entity.Category{
			ID:            c.ID,
			Name:          c.Name,
			Slug:          c.Slug,
			Description:   c.Description,
			Image:         c.Image,
			Subcategories: subcategories,
		})
	}

	for _, r := range seed.Reviews {
		result.reviews = append(result.reviews, &entity.Review{
			ID:         r.ID,
			ProductID:  r.ProductID,
			UserID:     r.UserID,
			UserName:   r.UserName,
			UserAvatar: r.UserAvatar,
			Rating:     r.Rating,
			Title:      r.Title,
			Comment:    r.Comment,
			Helpful:    r.Helpful,
			Verified:   r.Verified,
			CreatedAt:  r.CreatedAt,
		})
	}

	return result, nil
}

func toProduct(p productSeed) (*entity.Product, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return nil, errors.Wrapf(err, "product %s price", p.ID)
	}
	if price.IsNegative() {
		return nil, errors.Errorf("product %s has a negative price", p.ID)
	}

	product := &entity.Product{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          price,
		Images:         nonNil(p.Images),
		Category:       p.Category,
		Subcategory:    p.Subcategory,
		Brand:          p.Brand,
		Stock:          p.Stock,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		Features:       nonNil(p.Features),
		Specifications: p.Specifications,
		Tags:           nonNil(p.Tags),
		Featured:       p.Featured,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if p.OriginalPrice != "" {
		original, err := decimal.NewFromString(p.OriginalPrice)
		if err != nil {
			return nil, errors.Wrapf(err, "product %s original price", p.ID)
		}
		product.OriginalPrice = &original
	}

	return product, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
