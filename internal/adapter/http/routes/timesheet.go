package routes

import (
	"fieldhours/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEntries        = "/entries"
	PathReconciliation = "/reconciliation"
	PathSummaries      = "/summaries"
	PathRates          = "/rates"
	PathTravel         = "/travel"
)

func addTimesheetRoutes(
	rg *gin.RouterGroup,
	entryHandler *handlers.WorkEntryHandler,
	reconciliationHandler *handlers.ReconciliationHandler,
	summaryHandler *handlers.SummaryHandler,
	rateHandler *handlers.RateHandler,
) {
	entries := rg.Group(PathEntries)
	{
		entries.POST("", entryHandler.CreateEntry)
		entries.PATCH("/:id", entryHandler.UpdateEntry)
		entries.POST("/import", entryHandler.ImportEntries)
		entries.GET("", entryHandler.ListEntries)
	}

	reconciliation := rg.Group(PathReconciliation)
	{
		reconciliation.GET("", reconciliationHandler.Reconcile)
		reconciliation.POST("/agree", reconciliationHandler.Agree)
	}

	summaries := rg.Group(PathSummaries)
	{
		summaries.GET("", summaryHandler.Summarize)
		summaries.GET("/weekly", summaryHandler.Weekly)
	}

	rg.PUT(PathRates, rateHandler.UpsertRateAgreement)
	rg.GET(PathRates+"/:technician_id", rateHandler.GetRateAgreement)
	rg.PUT(PathTravel, rateHandler.UpsertTravelAgreement)
}
