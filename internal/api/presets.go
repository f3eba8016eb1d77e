package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-genie/backend/internal/types"
)

// DietPresets are the canned searches behind the diets page
var DietPresets = []types.SearchPreset{
	{Name: "Keto", Description: "High-fat, low-carb recipes", Query: map[string]string{"diet": "ketogenic"}},
	{Name: "Vegan", Description: "Plant-based recipes without animal products", Query: map[string]string{"diet": "vegan"}},
	{Name: "Paleo", Description: "Whole foods our ancestors might have eaten", Query: map[string]string{"diet": "paleo"}},
	{Name: "Gluten-Free", Description: "Recipes without wheat, barley or rye", Query: map[string]string{"diet": "gluten free"}},
}

// MenuPresets are the canned searches behind the menus page
var MenuPresets = []types.SearchPreset{
	{Name: "Dinner Party", Description: "Main courses to impress your guests", Query: map[string]string{"type": "main course"}},
	{Name: "Holiday Feasts", Description: "Mains and desserts for festive tables", Query: map[string]string{"type": "main course,dessert"}},
	{Name: "Romantic Dinner for Two", Description: "A small menu for a special evening", Query: map[string]string{"type": "main course", "number": "2"}},
	{Name: "Summer BBQ", Description: "American mains for the grill", Query: map[string]string{"cuisine": "American", "type": "main course"}},
}

func RegisterPresetRoutes(router *gin.RouterGroup) {
	presets := router.Group("/presets")
	presets.GET("/diets", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"presets": DietPresets})
	})
	presets.GET("/menus", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"presets": MenuPresets})
	})
}
