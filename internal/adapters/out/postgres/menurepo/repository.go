package menurepo

import (
	"context"
	"errors"

	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormMenuItemRepository struct {
	db *gorm.DB
}

func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

func (r *GormMenuItemRepository) NextID(ctx context.Context) (kernel.ID, error) {
	var next int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence('menu_items', 'id'))").
		Scan(&next).Error
	if err != nil {
		return kernel.ID{}, pgerrs.Classify(err)
	}
	return kernel.NewID(next)
}

func (r *GormMenuItemRepository) Add(ctx context.Context, aggregate *menu.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.Classify(err)
	}

	return nil
}

func (r *GormMenuItemRepository) Update(ctx context.Context, aggregate *menu.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).
		Where("id = ? AND restaurant_id = ?", dto.ID, dto.RestaurantID).
		Updates(map[string]any{
			"name":     dto.Name,
			"price":    dto.Price,
			"quantity": dto.Quantity,
		})
	if result.Error != nil {
		return pgerrs.Classify(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu_item", aggregate.ID().String())
	}

	return nil
}

func (r *GormMenuItemRepository) Get(ctx context.Context, restaurantID, itemID kernel.ID) (*menu.Item, error) {
	return r.get(r.db.WithContext(ctx), restaurantID, itemID)
}

// GetForUpdate locks the item row with SELECT ... FOR UPDATE.
func (r *GormMenuItemRepository) GetForUpdate(ctx context.Context, restaurantID, itemID kernel.ID) (*menu.Item, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), restaurantID, itemID)
}

func (r *GormMenuItemRepository) get(db *gorm.DB, restaurantID, itemID kernel.ID) (*menu.Item, error) {
	if err := errors.Join(restaurantID.Validate(), itemID.Validate()); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	err := db.Where("id = ? AND restaurant_id = ?", itemID.Int64(), restaurantID.Int64()).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu_item", itemID.String())
		}
		return nil, pgerrs.Classify(err)
	}

	return toDomain(dto)
}
