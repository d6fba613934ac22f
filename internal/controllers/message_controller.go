package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dileepkakara/portfolio/internal/models"
	"github.com/dileepkakara/portfolio/internal/ws"
)

type MessageController struct {
	DB   *gorm.DB
	Hubs *ws.Hubs
	Log  *zap.Logger
}

type messageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

func (mc *MessageController) broadcast(event string, msg models.ContactMessage) {
	if mc.Hubs == nil {
		return
	}
	mc.Hubs.Messages.Broadcast(ws.MessageEvent{Type: event, Message: msg})
}

// List returns the inbox newest first.
func (mc *MessageController) List(c *gin.Context) {
	messages := []models.ContactMessage{}
	if err := mc.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		storeError(c, nopIfNil(mc.Log), err, "")
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (mc *MessageController) Create(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	msg := models.ContactMessage{Name: req.Name, Email: req.Email, Phone: req.Phone, Message: req.Message}
	if err := mc.DB.Create(&msg).Error; err != nil {
		storeError(c, nopIfNil(mc.Log), err, "")
		return
	}
	mc.broadcast(ws.EventMessageCreated, msg)
	c.JSON(http.StatusCreated, msg)
}

func (mc *MessageController) Delete(c *gin.Context) {
	var msg models.ContactMessage
	if err := mc.DB.First(&msg, "id = ?", c.Param("id")).Error; err != nil {
		storeError(c, nopIfNil(mc.Log), err, "message not found")
		return
	}
	if err := mc.DB.Delete(&msg).Error; err != nil {
		storeError(c, nopIfNil(mc.Log), err, "")
		return
	}
	mc.broadcast(ws.EventMessageDeleted, msg)
	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}
