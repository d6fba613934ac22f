package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dileepkakara/portfolio/internal/models"
)

type ProjectController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

type projectRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description" binding:"required"`
	Image       string       `json:"image" binding:"required"`
	Tags        FlexibleTags `json:"tags"`
	LiveLink    string       `json:"liveLink"`
	GithubLink  string       `json:"githubLink"`
}

func (r projectRequest) apply(p *models.Project) {
	p.Title = r.Title
	p.Description = r.Description
	p.Image = r.Image
	p.Tags = r.Tags.Strings()
	p.LiveLink = r.LiveLink
	p.GithubLink = r.GithubLink
}

func (pc *ProjectController) List(c *gin.Context) {
	projects := []models.Project{}
	if err := pc.DB.Order("created_at ASC").Find(&projects).Error; err != nil {
		storeError(c, nopIfNil(pc.Log), err, "")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (pc *ProjectController) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	var project models.Project
	req.apply(&project)
	if err := pc.DB.Create(&project).Error; err != nil {
		storeError(c, nopIfNil(pc.Log), err, "")
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (pc *ProjectController) Update(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	var project models.Project
	if err := pc.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		storeError(c, nopIfNil(pc.Log), err, "project not found")
		return
	}
	req.apply(&project)
	if err := pc.DB.Save(&project).Error; err != nil {
		storeError(c, nopIfNil(pc.Log), err, "")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (pc *ProjectController) Delete(c *gin.Context) {
	res := pc.DB.Delete(&models.Project{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		storeError(c, nopIfNil(pc.Log), res.Error, "")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
