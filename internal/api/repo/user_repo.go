package repo

import (
	"freightflow"
	"freightflow/internal/api/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	Db *gorm.DB
}

func NewUserRepository() *UserRepository {
	return &UserRepository{Db: freightflow.DB}
}

func (slf *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := slf.Db.Where("username = ?", username).First(&user).Error
	return user, err
}

func (slf *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := slf.Db.First(&user, id).Error
	return user, err
}

func (slf *UserRepository) Create(user *models.User) error {
	return slf.Db.Create(user).Error
}

func (slf *UserRepository) Update(user *models.User) error {
	return slf.Db.Save(user).Error
}

func (slf *UserRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.User{}, id).Error
}

func (slf *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (slf *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := slf.Db.Order("username").Find(&users).Error
	return users, err
}

// FirstAdminEmail returns the email of the first admin user with one set.
func (slf *UserRepository) FirstAdminEmail() (string, error) {
	var user models.User
	err := slf.Db.Where("role = ? AND email <> ''", models.RoleAdmin).Order("id").First(&user).Error
	if err != nil {
		return "", err
	}
	return user.Email, nil
}
