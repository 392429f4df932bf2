package handlers

import (
	"EAsha/services"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatPage describes the chat widget endpoint.
func (h *ChatHandler) ChatPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "chat", "endpoint": "/ask"})
}

// Ask forwards one message to the assistant and returns the reply verbatim.
// A missing message gets a retry prompt, not an error status. Upstream
// failures surface as a textual reply with a server-error status.
func (h *ChatHandler) Ask(c *gin.Context) {
	var data struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&data); err != nil || data.Message == "" {
		c.JSON(http.StatusOK, gin.H{"reply": "Please type a message."})
		return
	}

	reply, err := h.chatService.Reply(c.Request.Context(), data.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"reply": fmt.Sprintf("Error: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
