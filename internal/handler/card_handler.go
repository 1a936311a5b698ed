package handler

import (
	"net/http"
	"time"

	"cardboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CardHandler struct {
	cards    *service.CardService
	comments *service.CommentService
}

func NewCardHandler(cards *service.CardService, comments *service.CommentService) *CardHandler {
	return &CardHandler{
		cards:    cards,
		comments: comments,
	}
}

type CreateCardRequest struct {
	ColumnID string `json:"column_id" binding:"required,uuid"`
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Color    string `json:"color"`
}

type UpdateCardRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type MoveCardRequest struct {
	TargetColumnID string `json:"target_column_id" binding:"required,uuid"`
	TargetIndex    *int   `json:"target_index"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID        string               `json:"id"`
	Text      string               `json:"text"`
	CreatedBy *UserSummaryResponse `json:"created_by,omitempty"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

type CardResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Color     string               `json:"color"`
	CreatedBy *UserSummaryResponse `json:"created_by,omitempty"`
	Comments  []CommentResponse    `json:"comments"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

// GetByID godoc
// @Summary  Get a card with its comments and creator info
// @Tags     Cards
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Card ID"
// @Success  200 {object} CardResponse
// @Router   /api/cards/{id} [get]
func (h *CardHandler) GetByID(c *gin.Context) {
	if _, ok := subjectFrom(c); !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	detail, err := h.cards.Get(c.Request.Context(), cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := CardResponse{
		ID:        detail.Card.ID.String(),
		Title:     detail.Card.Title,
		Content:   detail.Card.Content,
		Color:     detail.Card.Color,
		CreatedBy: toUserSummaryResponse(detail.Creator),
		Comments:  make([]CommentResponse, len(detail.Comments)),
		CreatedAt: detail.Card.CreatedAt.Format(time.RFC3339),
		UpdatedAt: detail.Card.UpdatedAt.Format(time.RFC3339),
	}
	for i, comment := range detail.Comments {
		response.Comments[i] = CommentResponse{
			ID:        comment.Comment.ID.String(),
			Text:      comment.Comment.Text,
			CreatedBy: toUserSummaryResponse(comment.Creator),
			CreatedAt: comment.Comment.CreatedAt.Format(time.RFC3339),
			UpdatedAt: comment.Comment.UpdatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary  Create a card at the end of a column
// @Tags     Cards
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body CreateCardRequest true "Card data"
// @Success  201 {object} CardResponse
// @Router   /api/cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	subject, ok := subjectFrom(c)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	columnID, err := uuid.Parse(req.ColumnID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	card, err := h.cards.Create(c.Request.Context(), subject, columnID, req.Title, req.Content, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CardResponse{
		ID:        card.ID.String(),
		Title:     card.Title,
		Content:   card.Content,
		Color:     card.Color,
		Comments:  []CommentResponse{},
		CreatedAt: card.CreatedAt.Format(time.RFC3339),
		UpdatedAt: card.UpdatedAt.Format(time.RFC3339),
	})
}

// Update godoc
// @Summary  Edit a card's title and/or content
// @Tags     Cards
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id      path string            true "Card ID"
// @Param    request body UpdateCardRequest true "Fields to change"
// @Success  200 {object} map[string]string
// @Router   /api/cards/{id} [patch]
func (h *CardHandler) Update(c *gin.Context) {
	subject, ok := subjectFrom(c)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	update := service.CardUpdate{Title: req.Title, Content: req.Content}
	if _, err := h.cards.Edit(c.Request.Context(), subject, cardID, update); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card updated successfully"})
}

// Delete godoc
// @Summary  Delete a card and remove its reference from any column
// @Tags     Cards
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Card ID"
// @Success  200 {object} map[string]string
// @Router   /api/cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	if _, ok := subjectFrom(c); !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	if err := h.cards.Delete(c.Request.Context(), cardID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}

// Move godoc
// @Summary  Move a card to a column at a target index
// @Tags     Cards
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id      path string          true "Card ID"
// @Param    request body MoveCardRequest true "Target placement"
// @Success  200 {object} map[string]string
// @Router   /api/cards/{id}/move [patch]
func (h *CardHandler) Move(c *gin.Context) {
	if _, ok := subjectFrom(c); !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	targetColumnID, err := uuid.Parse(req.TargetColumnID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	targetIndex := 0
	if req.TargetIndex != nil {
		targetIndex = *req.TargetIndex
	}

	if err := h.cards.Move(c.Request.Context(), cardID, targetColumnID, targetIndex); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card moved successfully"})
}

// AddComment godoc
// @Summary  Append a comment to a card
// @Tags     Comments
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id      path string         true "Card ID"
// @Param    request body CommentRequest true "Comment text"
// @Success  201 {object} map[string]string
// @Router   /api/cards/{id}/comments [post]
func (h *CardHandler) AddComment(c *gin.Context) {
	subject, ok := subjectFrom(c)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	if _, err := h.comments.Add(c.Request.Context(), subject, cardID, req.Text); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added successfully"})
}

// UpdateComment godoc
// @Summary  Edit a comment on a card
// @Tags     Comments
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id         path string         true "Card ID"
// @Param    comment_id path string         true "Comment ID"
// @Param    request    body CommentRequest true "New text"
// @Success  200 {object} map[string]string
// @Router   /api/cards/{id}/comments/{comment_id} [patch]
func (h *CardHandler) UpdateComment(c *gin.Context) {
	subject, ok := subjectFrom(c)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	commentID, err := uuid.Parse(c.Param("comment_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID format"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text cannot be empty"})
		return
	}

	if err := h.comments.Edit(c.Request.Context(), subject, cardID, commentID, req.Text); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully"})
}

// DeleteComment godoc
// @Summary  Delete a comment from a card
// @Tags     Comments
// @Produce  json
// @Security BearerAuth
// @Param    id         path string true "Card ID"
// @Param    comment_id path string true "Comment ID"
// @Success  200 {object} map[string]string
// @Router   /api/cards/{id}/comments/{comment_id} [delete]
func (h *CardHandler) DeleteComment(c *gin.Context) {
	subject, ok := subjectFrom(c)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	commentID, err := uuid.Parse(c.Param("comment_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID format"})
		return
	}

	if err := h.comments.Delete(c.Request.Context(), subject, cardID, commentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
