package models

import (
	"github.com/pegi/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for customers
type CustomerModel struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null"`
	Email   string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone   string `gorm:"type:varchar(50)"`
	Address string `gorm:"type:varchar(500);not null"`
}

// TableName specifies the table name for CustomerModel
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts CustomerModel to domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
	}
}

// CustomerModelFromDomain converts domain Customer to CustomerModel
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	model := &CustomerModel{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
	model.FromDomainBaseEntity(c.BaseEntity)
	return model
}
