package service

import (
	"errors"
	"fmt"

	"freightflow"
	"freightflow/internal/api/models"
	"freightflow/internal/api/repo"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// PartyService maintains the shipper and consignee directories used to fill
// the stage-1 intake form.
type PartyService struct {
	shipperRepo   *repo.ShipperRepository
	consigneeRepo *repo.ConsigneeRepository
	logger        zerolog.Logger
}

func NewPartyService() *PartyService {
	return &PartyService{
		shipperRepo:   repo.NewShipperRepository(),
		consigneeRepo: repo.NewConsigneeRepository(),
		logger:        freightflow.Logger,
	}
}

func (slf *PartyService) ListShippers() ([]models.Shipper, error) {
	return slf.shipperRepo.GetAll()
}

func (slf *PartyService) CreateShipper(shipper models.Shipper, actor models.User) (*models.Shipper, error) {
	if !actor.Role.IsManager() {
		return nil, fmt.Errorf("role %s may not manage shippers: %w", actor.Role, ErrForbidden)
	}
	shipper.CreatedBy = &actor.ID
	if err := slf.shipperRepo.Create(&shipper); err != nil {
		slf.logger.Error().Err(err).Str("name", shipper.Name).Msg("Error creating shipper")
		return nil, err
	}
	return &shipper, nil
}

func (slf *PartyService) UpdateShipper(id uint, patch map[string]any, actor models.User) (*models.Shipper, error) {
	if !actor.Role.IsManager() {
		return nil, fmt.Errorf("role %s may not manage shippers: %w", actor.Role, ErrForbidden)
	}
	shipper, err := slf.shipperRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shipper %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if len(patch) > 0 {
		if err := applyPatch(slf.shipperRepo.Db.Model(&shipper), patch, actor.ID); err != nil {
			return nil, err
		}
	}
	updated, err := slf.shipperRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (slf *PartyService) DeleteShipper(id uint, actor models.User) error {
	if !actor.Role.IsManager() {
		return fmt.Errorf("role %s may not manage shippers: %w", actor.Role, ErrForbidden)
	}
	if _, err := slf.shipperRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("shipper %d: %w", id, ErrNotFound)
		}
		return err
	}
	return slf.shipperRepo.Delete(id)
}

func (slf *PartyService) ListConsignees() ([]models.Consignee, error) {
	return slf.consigneeRepo.GetAll()
}

func (slf *PartyService) CreateConsignee(consignee models.Consignee, actor models.User) (*models.Consignee, error) {
	if !actor.Role.IsManager() {
		return nil, fmt.Errorf("role %s may not manage consignees: %w", actor.Role, ErrForbidden)
	}
	consignee.CreatedBy = &actor.ID
	if err := slf.consigneeRepo.Create(&consignee); err != nil {
		slf.logger.Error().Err(err).Str("name", consignee.Name).Msg("Error creating consignee")
		return nil, err
	}
	return &consignee, nil
}

func (slf *PartyService) UpdateConsignee(id uint, patch map[string]any, actor models.User) (*models.Consignee, error) {
	if !actor.Role.IsManager() {
		return nil, fmt.Errorf("role %s may not manage consignees: %w", actor.Role, ErrForbidden)
	}
	consignee, err := slf.consigneeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("consignee %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if len(patch) > 0 {
		if err := applyPatch(slf.consigneeRepo.Db.Model(&consignee), patch, actor.ID); err != nil {
			return nil, err
		}
	}
	updated, err := slf.consigneeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (slf *PartyService) DeleteConsignee(id uint, actor models.User) error {
	if !actor.Role.IsManager() {
		return fmt.Errorf("role %s may not manage consignees: %w", actor.Role, ErrForbidden)
	}
	if _, err := slf.consigneeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("consignee %d: %w", id, ErrNotFound)
		}
		return err
	}
	return slf.consigneeRepo.Delete(id)
}
