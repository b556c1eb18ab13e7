package customerrepo

import (
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
)

type CustomerDTO struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"size:255;not null"`
	Email   string `gorm:"size:255;uniqueIndex"`
	Phone   string `gorm:"size:32;not null;default:''"`
	Address string `gorm:"size:512;not null;default:''"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().Int64(),
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, dto.Address)
}
