package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/usecase"
	"github.com/Gunvolt24/riskgate/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type createUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Status      string `json:"status"` // пусто → ACTIVE
	PhoneNumber string `json:"phone_number"`
	Department  string `json:"department"`
}

type changeUserStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	if req.Username == "" || req.Email == "" {
		badRequest(c, "username and email are required")
		return
	}

	user := &domain.User{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
	}
	if req.Status != "" {
		status, err := domain.ParseUserStatus(req.Status)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		user.Status = status
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	created, err := h.users.CreateUser(ctx, user)
	switch {
	case errors.Is(err, usecase.ErrUsernameExists), errors.Is(err, usecase.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.log.Errorf(ctx, "CreateUser failed username=%s err=%v", req.Username, err)
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) getUserByID(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid user id")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	user, err := h.users.UserByID(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "UserByID failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if user == nil {
		notFound(c, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) listActiveUsers(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	users, err := h.users.ActiveUsers(ctx)
	if err != nil {
		h.log.Errorf(ctx, "ActiveUsers failed err=%v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) changeUserStatus(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid user id")
		return
	}

	var req changeUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	status, err := domain.ParseUserStatus(req.Status)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	user, err := h.users.ChangeStatus(ctx, id, status)
	if err != nil {
		h.log.Errorf(ctx, "ChangeStatus failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if user == nil {
		notFound(c, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid user id")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	deleted, err := h.users.DeleteUser(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "DeleteUser failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if !deleted {
		notFound(c, "user not found")
		return
	}
	c.Status(http.StatusNoContent)
}
