package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dileepkakara/portfolio/internal/models"
)

type AboutController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// Optional fields left out of the body keep their stored value.
type aboutRequest struct {
	Text         string  `json:"text" binding:"required"`
	DateOfBirth  *string `json:"dateOfBirth"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	Education    *string `json:"education"`
	ProfilePhoto *string `json:"profilePhoto"`
	CVLink       *string `json:"cvLink"`
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Get returns the profile, or JSON null before one has been saved.
func (ac *AboutController) Get(c *gin.Context) {
	var about models.About
	err := ac.DB.First(&about, models.AboutSingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		storeError(c, nopIfNil(ac.Log), err, "")
		return
	}
	c.JSON(http.StatusOK, about)
}

// Put creates or replaces the singleton profile.
func (ac *AboutController) Put(c *gin.Context) {
	var req aboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var about models.About
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&about, models.AboutSingletonID).Error
		create := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !create {
			return err
		}
		about.ID = models.AboutSingletonID
		about.Text = req.Text
		setIfPresent(&about.DateOfBirth, req.DateOfBirth)
		setIfPresent(&about.Phone, req.Phone)
		setIfPresent(&about.Location, req.Location)
		setIfPresent(&about.Education, req.Education)
		setIfPresent(&about.ProfilePhoto, req.ProfilePhoto)
		setIfPresent(&about.CVLink, req.CVLink)
		if create {
			return tx.Create(&about).Error
		}
		return tx.Save(&about).Error
	})
	if err != nil {
		storeError(c, nopIfNil(ac.Log), err, "")
		return
	}
	c.JSON(http.StatusOK, about)
}
