package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skuma49/my-node-app/internal/service"
)

type userRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type bulkUsersRequest struct {
	Operation string          `json:"operation"`
	Data      json.RawMessage `json:"data"`
}

// bindBody decodes the JSON body into dst. An empty body is not an error:
// it decodes to the zero value so presence checks can answer with 400
// instead of surfacing a fault.
func (h *Handler) bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		h.respondFault(c, err)
		return false
	}
	return true
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        role   query  string  false  "Exact role match (case-sensitive)"
// @Param        limit  query  int     false  "Keep only the first N records"
// @Success      200  {object}  map[string]interface{}  "success, data, count"
// @Router       /api/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users := h.services.Users.List(c.Request.Context(), service.UserFilter{
		Role:  c.Query("role"),
		Limit: queryLimit(c),
	})
	respondList(c, users, len(users))
}

// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, errUserNotFound)
		return
	}
	u, err := h.services.Users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, errUserNotFound)
		return
	}
	respondOK(c, u)
}

// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  userRequest  true  "name and email required, role optional"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req userRequest
	if !h.bindBody(c, &req) {
		return
	}
	if req.Name == "" || req.Email == "" {
		respondError(c, http.StatusBadRequest, errMissingUserReq)
		return
	}
	u := h.services.Users.Create(c.Request.Context(), service.UserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	respondCreated(c, u, "User created successfully")
}

// @Summary      Update user
// @Description  Only non-empty fields are applied; an empty patch is a no-op.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int          true  "User id"
// @Param        body  body  userRequest  true  "Any of name/email/role"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, errUserNotFound)
		return
	}
	var req userRequest
	if !h.bindBody(c, &req) {
		return
	}
	u, err := h.services.Users.Update(c.Request.Context(), id, service.UserPatch{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		respondError(c, http.StatusNotFound, errUserNotFound)
		return
	}
	respondUpdated(c, u, "User updated successfully")
}

// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		respondError(c, http.StatusNotFound, errUserNotFound)
		return
	}
	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusNotFound, errUserNotFound)
		return
	}
	respondMessage(c, "User deleted successfully")
}

// @Summary      Bulk-create users
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  bulkUsersRequest  true  "operation must be create, data a sequence of users"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/users/bulk [post]
func (h *Handler) bulkUsers(c *gin.Context) {
	var req bulkUsersRequest
	if !h.bindBody(c, &req) {
		return
	}
	if req.Operation != "create" {
		respondError(c, http.StatusBadRequest, errInvalidBulk)
		return
	}
	// data must be a JSON sequence: an absent key or literal null decodes to
	// a nil slice and is rejected, while [] stays valid.
	var items []userRequest
	if err := json.Unmarshal(req.Data, &items); err != nil || items == nil {
		respondError(c, http.StatusBadRequest, errInvalidBulk)
		return
	}
	in := make([]service.UserInput, 0, len(items))
	for _, item := range items {
		in = append(in, service.UserInput{Name: item.Name, Email: item.Email, Role: item.Role})
	}
	created := h.services.Users.BulkCreate(c.Request.Context(), in)
	respondCreated(c, created, fmt.Sprintf("%d users created successfully", len(created)))
}
