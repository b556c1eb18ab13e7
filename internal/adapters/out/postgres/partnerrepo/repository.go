package partnerrepo

import (
	"context"
	"errors"

	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/partner"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormPartnerRepository struct {
	db *gorm.DB
}

func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

func (r *GormPartnerRepository) NextID(ctx context.Context) (kernel.ID, error) {
	var next int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence('delivery_partners', 'id'))").
		Scan(&next).Error
	if err != nil {
		return kernel.ID{}, pgerrs.Classify(err)
	}
	return kernel.NewID(next)
}

func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Classify(err)
	}

	return nil
}

func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PartnerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":          dto.Name,
		"phone":         dto.Phone,
		"active_orders": dto.ActiveOrders,
	})
	if result.Error != nil {
		return pgerrs.Classify(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", aggregate.ID().String())
	}

	return nil
}

func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.ID) (*partner.Partner, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormPartnerRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*partner.Partner, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetAllFree locks every partner whose counter is zero. Rows that a concurrent
// transaction is about to make busy are waited for and then re-checked by PostgreSQL,
// so a returned partner is free at the time the lock is granted.
func (r *GormPartnerRepository) GetAllFree(ctx context.Context) ([]*partner.Partner, error) {
	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("active_orders = 0").
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, pgerrs.Classify(err)
	}

	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, nil
}

func (r *GormPartnerRepository) get(db *gorm.DB, id kernel.ID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := db.First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, pgerrs.Classify(err)
	}

	return toDomain(dto)
}
