package menurepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// RestaurantDTO is the owner of menu items. Restaurants are registered by the
// account service; this service only references them.
type RestaurantDTO struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"size:255;not null"`
	Address string `gorm:"size:512;not null;default:''"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type MenuItemDTO struct {
	ID           int64           `gorm:"primaryKey"`
	RestaurantID int64           `gorm:"not null;index"`
	Restaurant   *RestaurantDTO  `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Name         string          `gorm:"size:255;not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null;check:price >= 0"`
	Quantity     int             `gorm:"not null;default:0;check:quantity >= 0"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Int64(),
		RestaurantID: item.RestaurantID().Int64(),
		Name:         item.Name(),
		Price:        item.Price().Decimal(),
		Quantity:     item.Quantity(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return menu.RestoreItem(id, restaurantID, dto.Name, price, dto.Quantity)
}
