package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dileepkakara/portfolio/internal/models"
)

type SkillController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

type skillRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon" binding:"required"`
}

func (sc *SkillController) List(c *gin.Context) {
	skills := []models.Skill{}
	if err := sc.DB.Order("created_at ASC").Find(&skills).Error; err != nil {
		storeError(c, nopIfNil(sc.Log), err, "")
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (sc *SkillController) Create(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	skill := models.Skill{Name: req.Name, Icon: req.Icon}
	if err := sc.DB.Create(&skill).Error; err != nil {
		storeError(c, nopIfNil(sc.Log), err, "")
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (sc *SkillController) Update(c *gin.Context) {
	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	var skill models.Skill
	if err := sc.DB.First(&skill, "id = ?", c.Param("id")).Error; err != nil {
		storeError(c, nopIfNil(sc.Log), err, "skill not found")
		return
	}
	skill.Name = req.Name
	skill.Icon = req.Icon
	if err := sc.DB.Save(&skill).Error; err != nil {
		storeError(c, nopIfNil(sc.Log), err, "")
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (sc *SkillController) Delete(c *gin.Context) {
	res := sc.DB.Delete(&models.Skill{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		storeError(c, nopIfNil(sc.Log), res.Error, "")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "skill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "skill deleted"})
}
