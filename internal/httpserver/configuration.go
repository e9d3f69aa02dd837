package httpserver

import (
	"errors"
	"net/http"

	"casecraft/internal/domain"
	configrepo "casecraft/internal/repository/configuration"
	"github.com/gin-gonic/gin"
)

type createConfigurationRequest struct {
	Model           string  `json:"model"`
	Color           string  `json:"color"`
	Material        string  `json:"material"`
	Finish          string  `json:"finish"`
	CroppedImageURL *string `json:"croppedImageUrl"`
}

func createConfigurationHandler(repo configurationRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createConfigurationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if req.Model == "" || req.Material == "" || req.Finish == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "model, material and finish are required"})
			return
		}
		created, err := repo.Create(c.Request.Context(), configrepo.CreateInput{
			Model:           req.Model,
			Color:           req.Color,
			Material:        req.Material,
			Finish:          req.Finish,
			CroppedImageURL: req.CroppedImageURL,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func getConfigurationHandler(repo configurationRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := repo.GetByID(c.Request.Context(), c.Param("configId"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}
