package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/interfaces/http/middleware"
	"qrmenu.backend/internal/interfaces/http/response"
	"qrmenu.backend/internal/usecases"
)

// MenuHandler handles owner-facing menu management endpoints
type MenuHandler struct {
	menuUsecase *usecases.MenuUsecase
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuUsecase *usecases.MenuUsecase) *MenuHandler {
	return &MenuHandler{menuUsecase: menuUsecase}
}

// ListCategories lists the owner's categories, inactive included
// GET /api/v1/menu/categories
func (h *MenuHandler) ListCategories(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	categories, err := h.menuUsecase.ListCategories(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory creates a menu category
// POST /api/v1/menu/categories
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.menuUsecase.CreateCategory(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, category)
}

// UpdateCategory updates a menu category
// PUT /api/v1/menu/categories/:id
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid category ID"))
		return
	}

	var input entities.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.menuUsecase.UpdateCategory(c.Request.Context(), userID, categoryID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, category)
}

// DeleteCategory removes a menu category
// DELETE /api/v1/menu/categories/:id
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid category ID"))
		return
	}

	if err := h.menuUsecase.DeleteCategory(c.Request.Context(), userID, categoryID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Category deleted"})
}

// ListDishes lists the owner's dishes, unavailable included
// GET /api/v1/menu/dishes
func (h *MenuHandler) ListDishes(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	dishes, err := h.menuUsecase.ListDishes(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"dishes": dishes})
}

// CreateDish creates a dish in one of the owner's categories
// POST /api/v1/menu/dishes
func (h *MenuHandler) CreateDish(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.CreateDishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	dish, err := h.menuUsecase.CreateDish(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dish)
}

// UpdateDish updates a dish
// PUT /api/v1/menu/dishes/:id
func (h *MenuHandler) UpdateDish(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid dish ID"))
		return
	}

	var input entities.CreateDishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	dish, err := h.menuUsecase.UpdateDish(c.Request.Context(), userID, dishID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, dish)
}

// DeleteDish removes a dish
// DELETE /api/v1/menu/dishes/:id
func (h *MenuHandler) DeleteDish(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid dish ID"))
		return
	}

	if err := h.menuUsecase.DeleteDish(c.Request.Context(), userID, dishID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Dish deleted"})
}

// AddOption adds an option to a dish
// POST /api/v1/menu/dishes/:id/options
func (h *MenuHandler) AddOption(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid dish ID"))
		return
	}

	var input entities.CreateDishOptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	option, err := h.menuUsecase.AddOption(c.Request.Context(), userID, dishID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, option)
}

// UpdateOption updates a dish option
// PUT /api/v1/menu/dishes/:id/options/:optionId
func (h *MenuHandler) UpdateOption(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid dish ID"))
		return
	}

	optionID, err := uuid.Parse(c.Param("optionId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid option ID"))
		return
	}

	var input entities.CreateDishOptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	option, err := h.menuUsecase.UpdateOption(c.Request.Context(), userID, dishID, optionID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, option)
}

// DeleteOption removes a dish option
// DELETE /api/v1/menu/dishes/:id/options/:optionId
func (h *MenuHandler) DeleteOption(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	dishID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid dish ID"))
		return
	}

	optionID, err := uuid.Parse(c.Param("optionId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid option ID"))
		return
	}

	if err := h.menuUsecase.DeleteOption(c.Request.Context(), userID, dishID, optionID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Option deleted"})
}
