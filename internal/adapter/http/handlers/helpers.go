package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fieldhours/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRangeQuery = errors.New("from/to must be formatted YYYY-MM-DD")

const dateLayout = "2006-01-02"

// rangeFromQuery reads the from/to query params shared by the listing,
// reconciliation and summary endpoints.
func rangeFromQuery(c *gin.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, strings.TrimSpace(c.Query("from")))
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidRangeQuery
	}
	to, err := time.Parse(dateLayout, strings.TrimSpace(c.Query("to")))
	if err != nil {
		return time.Time{}, time.Time{}, errInvalidRangeQuery
	}
	return from, to, nil
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(c *gin.Context) {
	writeAppError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
}
