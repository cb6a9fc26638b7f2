package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobportal/internal/view"
)

type pageForm struct {
	Page int `form:"page"`
}

func (h *Handler) listJobs(c *gin.Context) {
	var form pageForm
	if err := c.ShouldBindQuery(&form); err != nil {
		badRequest(c, err)
		return
	}

	l, err := view.RunList(c.Request.Context(), func(ctx context.Context) *view.Host[view.List] {
		return view.MountJobCards(ctx, h.catalog, h.logger)
	}, form.Page)
	if err != nil {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, l.Render())
}

func (h *Handler) companies(c *gin.Context) {
	state, err := view.Settle(c.Request.Context(), view.MountCompanies(c.Request.Context(), h.catalog, h.logger))
	if err != nil {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": state.Items})
}

func (h *Handler) companyJobs(c *gin.Context) {
	var form pageForm
	if err := c.ShouldBindQuery(&form); err != nil {
		badRequest(c, err)
		return
	}
	id := c.Param("id")

	l, err := view.RunList(c.Request.Context(), func(ctx context.Context) *view.Host[view.List] {
		return view.MountCompanyJobs(ctx, h.catalog, id, h.logger)
	}, form.Page)
	if err != nil {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, l.Render())
}

func (h *Handler) myJobs(c *gin.Context) {
	tab, err := view.ParseMyJobsTab(c.Query("tab"))
	if err != nil {
		badRequest(c, err)
		return
	}

	host := view.MountMyJobs(c.Request.Context(), h.catalog, h.logger)
	defer host.Unmount()
	if _, err := view.Settle(c.Request.Context(), host); err != nil {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, host.Dispatch(view.TabChanged{Tab: tab}).Render())
}
