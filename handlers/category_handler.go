package handlers

import (
	"net/http"

	"bantora-api/repositories"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the lookup tables; plain reads, no service layer.
type CategoryHandler struct {
	categoryRepo repositories.CategoryRepository
	countryRepo  repositories.CountryRepository
}

func NewCategoryHandler(categoryRepo repositories.CategoryRepository, countryRepo repositories.CountryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo, countryRepo: countryRepo}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CategoryHandler) GetCountries(c *gin.Context) {
	countries, err := h.countryRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"countries": countries})
}
