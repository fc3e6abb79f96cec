package recipe

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-suggester/internal/core/generate"
	"recipe-suggester/internal/infrastructure/storage"
	"recipe-suggester/internal/pkg/common"
)

// Handler 食譜相關端點
type Handler struct {
	service *generate.Service
	store   storage.Store
}

// NewHandler 建立食譜處理器
func NewHandler(service *generate.Service, store storage.Store) *Handler {
	return &Handler{
		service: service,
		store:   store,
	}
}

// generateResponse 生成端點的回應
type generateResponse struct {
	Recipes []common.Recipe `json:"recipes"`
	Source  string          `json:"source"`
}

// Generate POST /api/v1/recipes/generate
// 產生三道食譜、寫入儲存層後回傳
func (h *Handler) Generate(c *gin.Context) {
	var req common.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "請求格式錯誤",
		})
		return
	}

	req.Normalize()
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "至少需要一項食材",
		})
		return
	}

	recipes, source := h.service.Generate(c.Request.Context(), req)

	stored := make([]common.Recipe, 0, len(recipes))
	for _, r := range recipes {
		saved, err := h.store.CreateRecipe(c.Request.Context(), r)
		if err != nil {
			common.LogError("寫入食譜失敗", zap.Error(err))
			c.JSON(http.StatusInternalServerError, common.ErrorResponse{
				Code:    common.ErrCodeInternalError,
				Message: "食譜儲存失敗",
			})
			return
		}
		stored = append(stored, saved)
	}

	common.LogInfo("食譜生成完成",
		zap.String("source", source),
		zap.Int("count", len(stored)),
		zap.Strings("ingredients", req.Ingredients),
	)
	c.JSON(http.StatusOK, generateResponse{
		Recipes: stored,
		Source:  source,
	})
}

// List GET /api/v1/recipes
func (h *Handler) List(c *gin.Context) {
	recipes, err := h.store.ListRecipes(c.Request.Context())
	if err != nil {
		common.LogError("讀取食譜清單失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Code:    common.ErrCodeInternalError,
			Message: "讀取食譜失敗",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// Saved GET /api/v1/recipes/saved
func (h *Handler) Saved(c *gin.Context) {
	recipes, err := h.store.SavedRecipes(c.Request.Context())
	if err != nil {
		common.LogError("讀取已儲存食譜失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Code:    common.ErrCodeInternalError,
			Message: "讀取食譜失敗",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// saveRequest 儲存端點的請求體
type saveRequest struct {
	ID int `json:"id" binding:"required"`
}

// Save POST /api/v1/recipes/save
func (h *Handler) Save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID <= 0 {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrInvalidRecipeID.Code,
			Message: common.ErrInvalidRecipeID.Message,
		})
		return
	}

	recipe, err := h.store.SaveRecipe(c.Request.Context(), req.ID)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// Unsave DELETE /api/v1/recipes/saved/:id
func (h *Handler) Unsave(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrInvalidRecipeID.Code,
			Message: common.ErrInvalidRecipeID.Message,
		})
		return
	}

	if err := h.store.RemoveSavedRecipe(c.Request.Context(), id); err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// writeStoreError 儲存層錯誤轉 HTTP 回應
func (h *Handler) writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, common.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, common.ErrorResponse{
			Code:    common.ErrRecipeNotFound.Code,
			Message: common.ErrRecipeNotFound.Message,
		})
		return
	}
	common.LogError("儲存層操作失敗", zap.Error(err))
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: "儲存層操作失敗",
	})
}
