package partnerrepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/partner"
)

type PartnerDTO struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:32;not null;default:''"`
	ActiveOrders int    `gorm:"not null;default:0;check:active_orders >= 0"`
}

func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

func fromDomain(p *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:           p.ID().Int64(),
		Name:         p.Name(),
		Phone:        p.Phone(),
		ActiveOrders: p.ActiveOrders(),
	}
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return partner.RestorePartner(id, dto.Name, dto.Phone, dto.ActiveOrders)
}
