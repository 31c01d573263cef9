package repo

import (
	"freightflow"
	"freightflow/internal/api/models"

	"gorm.io/gorm"
)

type ShipperRepository struct {
	Db *gorm.DB
}

func NewShipperRepository() *ShipperRepository {
	return &ShipperRepository{Db: freightflow.DB}
}

func (slf *ShipperRepository) FindByID(id uint) (models.Shipper, error) {
	var shipper models.Shipper
	err := slf.Db.First(&shipper, id).Error
	return shipper, err
}

func (slf *ShipperRepository) GetAll() ([]models.Shipper, error) {
	var shippers []models.Shipper
	err := slf.Db.Order("created_at DESC").Find(&shippers).Error
	return shippers, err
}

func (slf *ShipperRepository) Create(shipper *models.Shipper) error {
	return slf.Db.Create(shipper).Error
}

func (slf *ShipperRepository) Update(shipper *models.Shipper) error {
	return slf.Db.Save(shipper).Error
}

func (slf *ShipperRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.Shipper{}, id).Error
}

type ConsigneeRepository struct {
	Db *gorm.DB
}

func NewConsigneeRepository() *ConsigneeRepository {
	return &ConsigneeRepository{Db: freightflow.DB}
}

func (slf *ConsigneeRepository) FindByID(id uint) (models.Consignee, error) {
	var consignee models.Consignee
	err := slf.Db.First(&consignee, id).Error
	return consignee, err
}

func (slf *ConsigneeRepository) GetAll() ([]models.Consignee, error) {
	var consignees []models.Consignee
	err := slf.Db.Order("created_at DESC").Find(&consignees).Error
	return consignees, err
}

func (slf *ConsigneeRepository) Create(consignee *models.Consignee) error {
	return slf.Db.Create(consignee).Error
}

func (slf *ConsigneeRepository) Update(consignee *models.Consignee) error {
	return slf.Db.Save(consignee).Error
}

func (slf *ConsigneeRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.Consignee{}, id).Error
}
