package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/application"
)

type Handler struct {
	app *application.RiskAnalyticsApplicationService
}

type customShockRequest struct {
	SpxShockPct   *float64 `json:"spx_shock_pct"`
	RatesShockBps *float64 `json:"rates_shock_bps"`
	OilShockPct   *float64 `json:"oil_shock_pct"`
}

type runScenarioRequest struct {
	PortfolioID  string              `json:"portfolio_id" binding:"required"`
	ScenarioName string              `json:"scenario_name"`
	Custom       *customShockRequest `json:"custom"`
}

func NewHandler(r *gin.Engine, app *application.RiskAnalyticsApplicationService) *Handler {
	h := &Handler{app: app}
	v1 := r.Group("/api/v1")
	{
		v1.GET("/portfolios", h.ListPortfolios)
		v1.GET("/portfolios/:id/positions", h.GetPositions)
		v1.GET("/portfolios/:id/risk/history", h.GetRiskHistory)
		v1.GET("/portfolios/:id/risk/summary", h.GetRiskSummary)
		v1.GET("/scenarios", h.ListScenarios)
		v1.POST("/scenarios/run", h.RunScenario)
	}
	return h
}

func (h *Handler) ListPortfolios(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.ListPortfolios(c.Request.Context()))
}

func (h *Handler) ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.ListScenarios(c.Request.Context()))
}

func (h *Handler) GetPositions(c *gin.Context) {
	positions, err := h.app.GetPositions(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, positions)
}

func (h *Handler) GetRiskHistory(c *gin.Context) {
	points, err := h.app.GetRiskHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *Handler) GetRiskSummary(c *gin.Context) {
	summary, err := h.app.GetRiskSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) RunScenario(c *gin.Context) {
	var req runScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := application.RunScenarioCommand{
		PortfolioID:  req.PortfolioID,
		ScenarioName: req.ScenarioName,
	}
	if req.Custom != nil {
		cmd.Custom = &application.CustomShockInput{
			SpxShockPct:   req.Custom.SpxShockPct,
			RatesShockBps: req.Custom.RatesShockBps,
			OilShockPct:   req.Custom.OilShockPct,
		}
	}

	result, err := h.app.RunScenario(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
