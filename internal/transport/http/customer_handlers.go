package rest

import (
	"net/http"

	"github.com/Gunvolt24/riskgate/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Снимок клиента и решения по нему внешне принадлежат другой системе,
// поэтому здесь только чтение: отсутствие снимка — 404, а не ошибка.

func (h *Handler) getCustomerInfo(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid customer id")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	customer, err := h.customers.CustomerInfo(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "CustomerInfo failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if customer == nil {
		notFound(c, "customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) customerCanOperate(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid customer id")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	canOperate, found, err := h.customers.CanOperate(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "CanOperate failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if !found {
		notFound(c, "customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer_id": id, "can_operate": canOperate})
}

func (h *Handler) customerRiskLevel(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid customer id")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	level, found, err := h.customers.RiskLevel(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "RiskLevel failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if !found {
		notFound(c, "customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customer_id": id,
		"risk_level":  level,
		"priority":    level.Priority(),
		"description": level.Description(),
	})
}

func (h *Handler) customerValidation(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid customer id")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	valid, found, err := h.customers.ComprehensiveValidation(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "ComprehensiveValidation failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if !found {
		notFound(c, "customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer_id": id, "valid": valid})
}

func (h *Handler) customerSummary(c *gin.Context) {
	id, ok := httpx.ParseUUIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid customer id")
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	summary, found, err := h.customers.StatusSummary(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "StatusSummary failed id=%s err=%v", id, err)
		internalError(c)
		return
	}
	if !found {
		notFound(c, "customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer_id": id, "summary": summary})
}
