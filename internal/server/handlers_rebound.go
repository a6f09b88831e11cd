package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reboundai/backend/internal/sanitize"
	"reboundai/backend/internal/session"
	"reboundai/backend/internal/stage"
)

// historyWindow bounds how many trailing turns travel upstream per reply.
const historyWindow = 12

const internalFallbackReply = "Something went wrong on my end. Try again in a moment, I'm still here."

type startRequest struct {
	Mode    string `json:"mode"`
	Summary string `json:"summary"`
}

type replyRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Message   string `json:"message" binding:"required,min=1,max=2000"`
}

func (a *App) startSession(c *gin.Context) {
	var payload startRequest
	if !mustJSON(c, &payload) {
		return
	}

	mode, ok := session.NormalizeMode(payload.Mode)
	if !ok {
		writeError(c, http.StatusBadRequest, "Unknown mode: "+payload.Mode)
		return
	}

	summary := ""
	if payload.Summary != "" {
		summary = sanitize.Clamp(payload.Summary, sanitize.DefaultMaxChars)
	}

	sess := a.store.Create(mode, summary)
	c.JSON(http.StatusOK, gin.H{"sessionId": sess.ID})
}

func (a *App) startSessionHint(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Rebound AI is online. This route expects POST requests from the mobile app.",
	})
}

func (a *App) postReply(c *gin.Context) {
	var payload replyRequest
	if !mustJSON(c, &payload) {
		return
	}

	sess, ok := a.store.Get(payload.SessionID)
	if !ok {
		// Unknown ids materialize a default session so a client that lost
		// the start response can keep the conversation going.
		sess = a.store.CreateWithID(payload.SessionID, session.DefaultMode, "")
		log.Printf("created session on demand for id %s", payload.SessionID)
	}

	userText := sanitize.Clamp(payload.Message, sanitize.DefaultMaxChars)
	sess, ok = a.store.Append(sess.ID, session.RoleUser, userText)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"reply": internalFallbackReply})
		return
	}

	st := stage.FromTranscript(sess.UserUtterances())
	reply := a.echo.Generate(c.Request.Context(), GenerateInput{
		Mode:    sess.Mode,
		Stage:   st,
		Summary: sess.Summary,
		Recent:  sess.Recent(historyWindow),
	})

	if _, ok := a.store.Append(sess.ID, session.RoleAssistant, reply); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"reply": internalFallbackReply})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stage": st, "reply": reply})
}

func (a *App) getHistory(c *gin.Context) {
	sess, ok := a.store.Get(c.Query("sessionId"))
	if !ok {
		writeError(c, http.StatusNotFound, "Session not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"history": sess.History,
		"mode":    sess.Mode,
		"summary": sess.Summary,
	})
}
