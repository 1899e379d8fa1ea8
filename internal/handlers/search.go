package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Search users
// @Description  Case-insensitive substring match over name and email.
// @Tags         search
// @Produce      json
// @Param        q  query  string  true  "Search term"
// @Success      200  {object}  map[string]interface{}  "success, data, count, query"
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/search/users [get]
func (h *Handler) searchUsers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		respondError(c, http.StatusBadRequest, errMissingQuery)
		return
	}
	matches := h.services.Users.Search(c.Request.Context(), q)
	respondSearch(c, matches, len(matches), q)
}

// @Summary      Search products
// @Description  Case-insensitive substring match over name and category.
// @Tags         search
// @Produce      json
// @Param        q  query  string  true  "Search term"
// @Success      200  {object}  map[string]interface{}  "success, data, count, query"
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/search/products [get]
func (h *Handler) searchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		respondError(c, http.StatusBadRequest, errMissingQuery)
		return
	}
	matches := h.services.Products.Search(c.Request.Context(), q)
	respondSearch(c, matches, len(matches), q)
}
