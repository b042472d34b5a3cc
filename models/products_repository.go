package models

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// Save inserts the product when it has no ID yet and updates it otherwise.
func (r *ProductsRepository) Save(ctx context.Context, product *Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

func (r *ProductsRepository) FindByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

func (r *ProductsRepository) FindAll(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByNameContaining returns the products whose name contains text,
// ignoring case, oldest first. An empty result is not an error.
// Only postgres folds case beyond ASCII; the SQLite LOWER used elsewhere
// leaves Cyrillic and other non-ASCII stored names as they are.
func (r *ProductsRepository) FindByNameContaining(ctx context.Context, text string) ([]Product, error) {
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"

	query := r.db.WithContext(ctx).Model(&Product{})
	if r.db.Name() == "postgres" {
		query = query.Where(`name ILIKE ? ESCAPE '\'`, pattern)
	} else {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}

	var products []Product
	if err := query.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) Delete(ctx context.Context, product *Product) error {
	return r.db.WithContext(ctx).Delete(product).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
