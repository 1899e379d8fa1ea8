package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skuma49/my-node-app/internal/service"
)

type productRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	// Stock must survive an explicit 0, unlike the other fields.
	Stock *int `json:"stock"`
}

// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Exact category match (case-insensitive)"
// @Param        minPrice  query  number  false  "Inclusive lower price bound"
// @Param        maxPrice  query  number  false  "Inclusive upper price bound"
// @Param        limit     query  int     false  "Keep only the first N records"
// @Success      200  {object}  map[string]interface{}  "success, data, count"
// @Router       /api/products [get]
func (h *Handler) listProducts(c *gin.Context) {
	products := h.services.Products.List(c.Request.Context(), service.ProductFilter{
		Category: c.Query("category"),
		MinPrice: queryPrice(c, "minPrice"),
		MaxPrice: queryPrice(c, "maxPrice"),
		Limit:    queryLimit(c),
	})
	respondList(c, products, len(products))
}

// @Summary      Get product by id
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "Product id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/products/{id} [get]
func (h *Handler) getProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	p, err := h.services.Products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	respondOK(c, p)
}

// @Summary      Create product
// @Description  A zero price counts as missing; stock defaults to 0.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  productRequest  true  "name, price and category required"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/products [post]
func (h *Handler) createProduct(c *gin.Context) {
	var req productRequest
	if !h.bindBody(c, &req) {
		return
	}
	if req.Name == "" || req.Price == 0 || req.Category == "" {
		respondError(c, http.StatusBadRequest, errMissingProdReq)
		return
	}
	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	p := h.services.Products.Create(c.Request.Context(), service.ProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    stock,
	})
	respondCreated(c, p, "Product created successfully")
}

// @Summary      Update product
// @Description  Name/category apply when non-empty, price when non-zero, stock whenever present (0 included).
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Product id"
// @Param        body  body  productRequest  true  "Any of name/price/category/stock"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/products/{id} [put]
func (h *Handler) updateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	var req productRequest
	if !h.bindBody(c, &req) {
		return
	}
	p, err := h.services.Products.Update(c.Request.Context(), id, service.ProductPatch{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
	})
	if err != nil {
		respondError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	respondUpdated(c, p, "Product updated successfully")
}

// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "Product id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/products/{id} [delete]
func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	if err := h.services.Products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	respondMessage(c, "Product deleted successfully")
}
