package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dileepkakara/portfolio/internal/models"
)

type VisitorController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// Track records one visit and returns the new total.
func (vc *VisitorController) Track(c *gin.Context) {
	var stat models.VisitorStat
	err := vc.DB.Transaction(func(tx *gorm.DB) error {
		seed := models.VisitorStat{ID: models.VisitorStatID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.VisitorStat{}).
			Where("id = ?", models.VisitorStatID).
			UpdateColumn("count", gorm.Expr("count + 1")).Error; err != nil {
			return err
		}
		return tx.First(&stat, models.VisitorStatID).Error
	})
	if err != nil {
		storeError(c, nopIfNil(vc.Log), err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": stat.Count})
}

// Count returns the total without recording a visit.
func (vc *VisitorController) Count(c *gin.Context) {
	var stat models.VisitorStat
	err := vc.DB.First(&stat, models.VisitorStatID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		storeError(c, nopIfNil(vc.Log), err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": stat.Count})
}
