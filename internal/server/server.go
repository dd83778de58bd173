package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	"github.com/s2o-platform/dine-assist/internal/assistant/orchestrator"
	logx "github.com/s2o-platform/dine-assist/pkg/logger"
)

// ChatRequest is the inbound message envelope. Every field is optional;
// missing values degrade to defaults instead of rejecting the request.
type ChatRequest struct {
	Message string        `json:"message"`
	UserID  string        `json:"user_id"`
	Context model.Context `json:"context"`
}

// ChatResponse is always a textual reply, never an error object.
type ChatResponse struct {
	Type  string `json:"type"`
	Reply string `json:"reply"`
}

// New builds the HTTP engine with the chat and health routes.
func New(orc *orchestrator.Orchestrator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/", handleHealth)
	r.POST("/chat", handleChat(orc))
	return r
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "dine-assist", "status": "Ready"})
}

func handleChat(orc *orchestrator.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			// A malformed body behaves like an empty message; the reply
			// contract has no error shape.
			logx.Warn().Err(err).Msg("malformed chat request body")
			req = ChatRequest{}
		}
		if req.Context.TenantID == 0 {
			req.Context.TenantID = 1
		}
		userID := req.UserID
		if userID == "" {
			userID = c.ClientIP()
		}

		requestID := uuid.NewString()
		logx.Debug().
			Str("request_id", requestID).
			Int("tenant_id", req.Context.TenantID).
			Str("user_id", userID).
			Msg("chat request")

		reply := orc.Chat(c.Request.Context(), req.Message, userID, req.Context)
		c.JSON(http.StatusOK, ChatResponse{Type: "text", Reply: reply})
	}
}
