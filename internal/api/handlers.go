package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fredao/sales-insights-api/internal/catalog"
	"github.com/fredao/sales-insights-api/internal/gapanalysis"
	"github.com/fredao/sales-insights-api/internal/intel"
	"github.com/fredao/sales-insights-api/internal/persona"
)

// Handler exposes the gap-analysis and persona engines over HTTP. The
// catalog is read-only, so a single Handler serves all requests.
type Handler struct {
	catalog        *catalog.Catalog
	engine         *persona.Engine
	logger         *zap.Logger
	defaultWinRate float64
}

// NewHandler wires the engines. winRateOverride replaces the seller
// snapshot's win rate when non-zero.
func NewHandler(c *catalog.Catalog, engine *persona.Engine, logger *zap.Logger, winRateOverride float64) *Handler {
	winRate := c.Seller().WinRate
	if winRateOverride > 0 {
		winRate = winRateOverride
	}
	return &Handler{
		catalog:        c,
		engine:         engine,
		logger:         logger,
		defaultWinRate: winRate,
	}
}

// GapAnalysis computes the overall gap to quota. Query parameters
// quota, achieved, and winRate default to the seller snapshot.
func (h *Handler) GapAnalysis(c *gin.Context) {
	seller := h.catalog.Seller()

	quota, err := queryFloat(c, "quota", seller.Quota)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	achieved, err := queryFloat(c, "achieved", seller.Achieved)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	winRate, err := queryFloat(c, "winRate", h.defaultWinRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := gapanalysis.Overall(quota, achieved, winRate)
	if err != nil {
		var invalid *gapanalysis.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("gap analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gap analysis failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GapBreakdown computes per-category gaps against the mock pipeline
// snapshot. type=brand (default) or type=licensing.
func (h *Handler) GapBreakdown(c *gin.Context) {
	winRate, err := queryFloat(c, "winRate", h.defaultWinRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var stats map[string]catalog.StageStat
	var targets map[string]float64
	switch c.DefaultQuery("type", "brand") {
	case "brand":
		stats = h.catalog.Pipeline().ByBrand
		targets = h.catalog.BrandTargets()
	case "licensing":
		stats = h.catalog.Pipeline().ByLicensingType
		targets = h.catalog.LicensingTargets()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be brand or licensing"})
		return
	}

	achieved := make(map[string]float64, len(stats))
	for key, s := range stats {
		achieved[key] = s.Value
	}

	results, err := gapanalysis.Breakdown(achieved, targets, winRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

type accountAttainment struct {
	Account             string                 `json:"account"`
	PrimaryQuota        catalog.QuotaLine      `json:"primaryQuota"`
	SecondaryQuota      catalog.QuotaLine      `json:"secondaryQuota"`
	Split               gapanalysis.SplitResult `json:"split"`
	PipelineValue       float64                `json:"pipelineValue"`
	ActiveOpportunities int                    `json:"activeOpportunities"`
}

// GapAccounts reports the primary/secondary quota split per account.
func (h *Handler) GapAccounts(c *gin.Context) {
	accounts := h.catalog.Accounts()
	out := make([]accountAttainment, 0, len(accounts))
	for _, acct := range accounts {
		out = append(out, accountAttainment{
			Account:        acct.Account,
			PrimaryQuota:   acct.PrimaryQuota,
			SecondaryQuota: acct.SecondaryQuota,
			Split: gapanalysis.AccountSplit(
				gapanalysis.QuotaPair{Quota: acct.PrimaryQuota.Quota, Achieved: acct.PrimaryQuota.Achieved},
				gapanalysis.QuotaPair{Quota: acct.SecondaryQuota.Quota, Achieved: acct.SecondaryQuota.Achieved},
			),
			PipelineValue:       acct.PipelineValue,
			ActiveOpportunities: acct.ActiveOpportunities,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Persona returns the profile for a label. Unknown labels resolve to
// the default profile, so this never 404s.
func (h *Handler) Persona(c *gin.Context) {
	label := c.Param("label")
	c.JSON(http.StatusOK, gin.H{
		"persona": label,
		"profile": h.engine.ResolveProfile(label),
	})
}

// ExtractInsights derives talking points from a posted intelligence
// feed.
func (h *Handler) ExtractInsights(c *gin.Context) {
	var feed intel.CompanyIntelligence
	if err := c.ShouldBindJSON(&feed); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid intelligence payload: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, intel.ExtractInsights(feed))
}

// Intel serves the mock intelligence feed for a company along with the
// derived strategy statements.
func (h *Handler) Intel(c *gin.Context) {
	company := strings.TrimSpace(c.Query("company"))
	if company == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company is required"})
		return
	}
	feed := intel.FetchCompanyIntelligence(company)
	c.JSON(http.StatusOK, gin.H{
		"company":      company,
		"intelligence": feed,
		"insights":     intel.ExtractInsights(feed),
		"strategy":     intel.ExtractStrategy(feed),
	})
}

// Recommendations maps a client's deployed competitor products to
// displacement recommendations using the usage catalog.
func (h *Handler) Recommendations(c *gin.Context) {
	client := strings.TrimSpace(c.Query("client"))
	if client == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client is required"})
		return
	}
	usage := h.catalog.Usage(client)
	recs := h.engine.RecommendDisplacements(usage.DeployedCompetitors)
	c.JSON(http.StatusOK, gin.H{
		"client":          client,
		"recommendations": recs,
	})
}

type recommendationsRequest struct {
	Client              string                         `json:"client"`
	DeployedCompetitors []catalog.CompetitorDeployment `json:"deployedCompetitors"`
}

// RecommendationsForList is the POST variant taking an explicit
// deployed-competitor list.
func (h *Handler) RecommendationsForList(c *gin.Context) {
	var req recommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	recs := h.engine.RecommendDisplacements(req.DeployedCompetitors)
	c.JSON(http.StatusOK, gin.H{
		"client":          req.Client,
		"recommendations": recs,
	})
}

type contentRequest struct {
	Client  string `json:"client"`
	Persona string `json:"persona"`
}

// Content builds the personalized content bundle for a client and
// persona. The core returns nil for blank input; at the HTTP boundary
// that maps to 400.
func (h *Handler) Content(c *gin.Context) {
	var req contentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	content := h.engine.BuildPersonalizedContent(req.Client, req.Persona)
	if content == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client and persona are required"})
		return
	}
	c.JSON(http.StatusOK, content)
}

type deployedProductView struct {
	catalog.DeployedProduct
	PercentDeployed *int `json:"percentDeployed"`
}

// Usage reports deployed products (with coverage percentage) and
// competitor installs for a client.
func (h *Handler) Usage(c *gin.Context) {
	client := strings.TrimSpace(c.Query("client"))
	if client == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client is required"})
		return
	}
	usage := h.catalog.Usage(client)

	products := make([]deployedProductView, 0, len(usage.DeployedProducts))
	for _, p := range usage.DeployedProducts {
		view := deployedProductView{DeployedProduct: p}
		if p.AssignedRevenue != 0 && p.DeployedRevenue != 0 {
			pct := int(p.DeployedRevenue/p.AssignedRevenue*100 + 0.5)
			view.PercentDeployed = &pct
		}
		products = append(products, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"client":              client,
		"deployedProducts":    products,
		"deployedCompetitors": usage.DeployedCompetitors,
	})
}

// Quote returns the daily seller quote.
func (h *Handler) Quote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": h.catalog.DailyQuote(time.Now())})
}

func queryFloat(c *gin.Context, name string, fallback float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &paramError{name: name, raw: raw}
	}
	return v, nil
}

type paramError struct {
	name string
	raw  string
}

func (e *paramError) Error() string {
	return "invalid " + e.name + ": " + e.raw
}
