package handler

import (
	"net/http"
	"time"

	"cardboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ColumnHandler struct {
	columns *service.ColumnService
}

func NewColumnHandler(columns *service.ColumnService) *ColumnHandler {
	return &ColumnHandler{columns: columns}
}

type CreateColumnRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameColumnRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

type MoveColumnRequest struct {
	TargetIndex int `json:"target_index"`
}

type UserSummaryResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

type CardSummaryResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Color     string               `json:"color"`
	CreatedBy *UserSummaryResponse `json:"created_by,omitempty"`
	Comments  int                  `json:"comments"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

type ColumnResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	UserID    string                `json:"user_id"`
	Order     int                   `json:"order"`
	Cards     []CardSummaryResponse `json:"cards"`
	CreatedAt string                `json:"created_at"`
	UpdatedAt string                `json:"updated_at"`
}

func toUserSummaryResponse(s *service.UserSummary) *UserSummaryResponse {
	if s == nil {
		return nil
	}
	return &UserSummaryResponse{ID: s.ID.String(), Username: s.Username, Avatar: s.Avatar}
}

func toColumnResponse(view service.ColumnView) ColumnResponse {
	resp := ColumnResponse{
		ID:        view.Column.ID.String(),
		Name:      view.Column.Name,
		UserID:    view.Column.UserID.String(),
		Order:     view.Column.Position,
		Cards:     make([]CardSummaryResponse, len(view.Cards)),
		CreatedAt: view.Column.CreatedAt.Format(time.RFC3339),
		UpdatedAt: view.Column.UpdatedAt.Format(time.RFC3339),
	}
	for i, card := range view.Cards {
		resp.Cards[i] = CardSummaryResponse{
			ID:        card.Card.ID.String(),
			Title:     card.Card.Title,
			Content:   card.Card.Content,
			Color:     card.Card.Color,
			CreatedBy: toUserSummaryResponse(card.Creator),
			Comments:  len(card.Card.Comments),
			CreatedAt: card.Card.CreatedAt.Format(time.RFC3339),
			UpdatedAt: card.Card.UpdatedAt.Format(time.RFC3339),
		}
	}
	return resp
}

// List godoc
// @Summary  List columns visible to the subject, sorted by order
// @Tags     Columns
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} ColumnResponse
// @Router   /api/columns [get]
func (h *ColumnHandler) List(c *gin.Context) {
	subject, ok := subjectFrom(c)
	if !ok {
		return
	}

	views, err := h.columns.List(c.Request.Context(), subject)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ColumnResponse, len(views))
	for i, view := range views {
		response[i] = toColumnResponse(view)
	}
	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary  Create a column at the end of the subject's scope
// @Tags     Columns
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body CreateColumnRequest true "Column data"
// @Success  201 {object} ColumnResponse
// @Router   /api/columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	subject, ok := subjectFrom(c)
	if !ok {
		return
	}

	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column, err := h.columns.Create(c.Request.Context(), subject, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toColumnResponse(service.ColumnView{Column: *column}))
}

// Rename godoc
// @Summary  Rename a column in place
// @Tags     Columns
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id      path string              true "Column ID"
// @Param    request body RenameColumnRequest true "New name"
// @Success  200 {object} map[string]string
// @Router   /api/columns/{id} [patch]
func (h *ColumnHandler) Rename(c *gin.Context) {
	subject, ok := subjectFrom(c)
	if !ok {
		return
	}

	columnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	var req RenameColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.columns.Rename(c.Request.Context(), subject, columnID, req.NewName); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column renamed successfully"})
}

// Move godoc
// @Summary  Move a column to a target index within the subject's scope
// @Tags     Columns
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id      path string            true "Column ID"
// @Param    request body MoveColumnRequest true "Target index"
// @Success  200 {object} map[string]string
// @Router   /api/columns/{id}/move [patch]
func (h *ColumnHandler) Move(c *gin.Context) {
	subject, ok := subjectFrom(c)
	if !ok {
		return
	}

	columnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	var req MoveColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.columns.Move(c.Request.Context(), subject, columnID, req.TargetIndex); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column reordered successfully"})
}

// Delete godoc
// @Summary  Delete a column and every card it references
// @Tags     Columns
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "Column ID"
// @Success  200 {object} map[string]string
// @Router   /api/columns/{id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	if _, ok := subjectFrom(c); !ok {
		return
	}

	columnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	if err := h.columns.Delete(c.Request.Context(), columnID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Column and its cards deleted successfully"})
}
