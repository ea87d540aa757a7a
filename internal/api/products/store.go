package products

import (
	"context"
	"errors"
	"time"

	"product-studio/internal/domain/plans"
	"product-studio/internal/domain/products"
	"product-studio/internal/domain/users"
	"product-studio/internal/generation"

	"gorm.io/gorm"
)

// Owner is the slice of user state the creation flow decides on.
type Owner struct {
	UserID uint
	Plan   string
	Count  int
}

// Summary is one dashboard listing row.
type Summary struct {
	ID          uint      `json:"id"`
	ProductName string    `json:"product_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store is the persistence boundary for products and owner quota state.
// Every read and delete is scoped by the owner's email.
type Store interface {
	GetUserPlanAndCount(ctx context.Context, email string) (Owner, error)
	CreateProduct(ctx context.Context, owner Owner, origin products.Origin, input string, content *generation.GeneratedContent, coverPath, adCreativePath string) (uint, error)
	ListProducts(ctx context.Context, email string) ([]Summary, error)
	GetProduct(ctx context.Context, id uint, email string) (*products.Product, error)
	DeleteProduct(ctx context.Context, id uint, email string) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) GetUserPlanAndCount(ctx context.Context, email string) (Owner, error) {
	var u users.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Owner{}, products.ErrUserNotFound
		}
		return Owner{}, err
	}
	return Owner{UserID: u.ID, Plan: u.Plan, Count: u.ProductCount}, nil
}

// CreateProduct inserts the product row and, for free owners, claims a quota
// slot in the same transaction. The conditional UPDATE keeps the cap honest
// under concurrent creations: zero rows affected means another request already
// took the last slot, and the whole transaction rolls back.
func (s *gormStore) CreateProduct(ctx context.Context, owner Owner, origin products.Origin, input string, content *generation.GeneratedContent, coverPath, adCreativePath string) (uint, error) {
	row := products.Product{
		UserID: owner.UserID,

		ProductName:              content.ProductName,
		PersuasiveDescription:    content.PersuasiveDescription,
		MainPromise:              content.MainPromise,
		OfferCopy:                content.OfferCopy,
		AdCopyFacebook:           content.AdCopyFacebook,
		AdCopyInstagram:          content.AdCopyInstagram,
		AdCopyGoogle:             content.AdCopyGoogle,
		VSLScript:                content.VSLScript,
		LandingPageStructure:     content.LandingPageStructure,
		TitlesSuggestions:        content.TitlesSuggestions,
		CTASuggestions:           content.CTASuggestions,
		TargetAudienceSuggestion: content.TargetAudienceSuggestion,

		CoverImagePlaceholder: coverPath,
		AdCreativePlaceholder: adCreativePath,
	}
	if origin == products.OriginNiche {
		row.Niche = &input
	} else {
		row.IdeaDescription = &input
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		if plans.Normalize(owner.Plan) != plans.PlanFree {
			return nil
		}

		res := tx.Model(&users.User{}).
			Where("id = ? AND product_count < ?", owner.UserID, plans.FreeProductLimit).
			Update("product_count", gorm.Expr("product_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return products.ErrQuotaExceeded
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (s *gormStore) ListProducts(ctx context.Context, email string) ([]Summary, error) {
	rows := make([]Summary, 0)
	err := s.db.WithContext(ctx).
		Model(&products.Product{}).
		Select("products.id, products.product_name, products.created_at").
		Joins("JOIN users ON users.id = products.user_id").
		Where("users.email = ?", email).
		Order("products.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetProduct returns nil for both a nonexistent id and an id owned by another
// user; the two cases must stay indistinguishable to the caller.
func (s *gormStore) GetProduct(ctx context.Context, id uint, email string) (*products.Product, error) {
	var p products.Product
	err := s.db.WithContext(ctx).
		Joins("JOIN users ON users.id = products.user_id").
		Where("products.id = ? AND users.email = ?", id, email).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *gormStore) DeleteProduct(ctx context.Context, id uint, email string) error {
	var ownerRow struct {
		Email string
	}
	err := s.db.WithContext(ctx).
		Model(&products.Product{}).
		Select("users.email AS email").
		Joins("JOIN users ON users.id = products.user_id").
		Where("products.id = ?", id).
		Take(&ownerRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return products.ErrProductNotFound
		}
		return err
	}
	if ownerRow.Email != email {
		return products.ErrNotOwner
	}

	// Deleting does not free a quota slot; product_count stays as-is.
	return s.db.WithContext(ctx).Delete(&products.Product{}, id).Error
}
