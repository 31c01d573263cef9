package models

import (
	"time"
)

// Shipper and Consignee are lookup tables used to pre-fill stage-1 intake
// forms.

type Shipper struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `gorm:"size:512;not null" json:"address"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Status    string    `gorm:"size:16;default:active" json:"status"`
	CreatedBy *uint     `gorm:"column:created_by" json:"created_by"`
	UpdatedBy *uint     `gorm:"column:updated_by" json:"updated_by"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Shipper) TableName() string {
	return "shippers"
}

type Consignee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `gorm:"size:512;not null" json:"address"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Status    string    `gorm:"size:16;default:active" json:"status"`
	CreatedBy *uint     `gorm:"column:created_by" json:"created_by"`
	UpdatedBy *uint     `gorm:"column:updated_by" json:"updated_by"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Consignee) TableName() string {
	return "consignees"
}
