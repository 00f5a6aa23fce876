package repositories

import (
	"bantora-api/models"

	"gorm.io/gorm"
)

type CountryRepository interface {
	GetByCode(code string) (*models.Country, error)
	GetAll() ([]models.Country, error)
}

type countryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) GetByCode(code string) (*models.Country, error) {
	var country models.Country
	err := r.db.First(&country, "code = ?", code).Error
	return &country, err
}

func (r *countryRepository) GetAll() ([]models.Country, error) {
	var countries []models.Country
	err := r.db.Order("name asc").Find(&countries).Error
	return countries, err
}
