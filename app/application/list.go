package application

import (
	"errors"
	"net/http"

	"jobtrack/tracker-api/internal"
	"jobtrack/tracker-api/internal/query"
	"jobtrack/tracker-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApplicationList is the collection read: optional filters combined as a
// conjunction, ordered by creation time descending, optionally paginated.
func ApplicationList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	filters, err := query.ParseFilters(c.Request.URL.Query())
	if err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	page, err := query.ParsePage(c.Request.URL.Query())
	if err != nil {
		respond.JSON(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	res, err := query.Run(d.DB, userID, filters, page)
	if err != nil {
		if errors.Is(err, query.ErrPageOutOfRange) {
			respond.JSON(c, http.StatusNotFound, nil, "Page not found")
			return
		}

		respond.JSON(c, http.StatusInternalServerError, nil, "Internal server error")

		zap.L().Error("Failed to list job applications", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	data := gin.H{
		"results":         res.Results,
		"filters_applied": filters.Echo(),
	}

	if !res.Paged {
		respond.JSON(c, http.StatusOK, data, "All job applications")
		return
	}

	data["current_page"] = res.CurrentPage
	data["total_pages"] = res.TotalPages
	data["count"] = res.Count

	respond.JSON(c, http.StatusOK, data, "Paginated job applications")
}
