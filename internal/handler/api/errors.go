package api

import (
	"log/slog"
	"net/http"
	"time"

	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const timeLayout = time.RFC3339

var errUnauthenticated = errs.New("request has no authenticated actor")

type conflictDetail struct {
	LocationID    string `json:"location_id"`
	ReservationID string `json:"reservation_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

type stockDetail struct {
	MaterialID   string `json:"material_id"`
	MaterialName string `json:"material_name,omitempty"`
	Requested    int    `json:"requested"`
	Available    int    `json:"available"`
}

// respondError maps command and query errors to HTTP responses. Storage
// details are logged, never returned.
func respondError(c *gin.Context, err error) {
	var (
		conflict *commands.ConflictError
		shortage *commands.InsufficientStockError
	)

	switch {
	case errs.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", gin.H{"reason": err.Error()})
	case errs.Is(err, commands.ErrInsufficientStock):
		var detail any
		if errs.As(err, &shortage) {
			detail = stockDetail{
				MaterialID:   shortage.MaterialID.String(),
				MaterialName: shortage.MaterialName,
				Requested:    shortage.Requested,
				Available:    shortage.Available,
			}
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Insufficient material stock", detail)
	case errs.Is(err, queries.ErrInvalidFilter):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", gin.H{"reason": err.Error()})
	case errs.Is(err, commands.ErrForbidden), errs.Is(err, queries.ErrAccessDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errs.Is(err, commands.ErrNotFound),
		errs.Is(err, queries.ErrReservationNotFound),
		errs.Is(err, queries.ErrLocationNotFound),
		errs.Is(err, queries.ErrMaterialNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, commands.ErrConflict):
		var detail any
		if errs.As(err, &conflict) {
			detail = conflictDetail{
				LocationID:    conflict.LocationID.String(),
				ReservationID: conflict.ReservationID.String(),
				StartTime:     conflict.Start.Format(timeLayout),
				EndTime:       conflict.End.Format(timeLayout),
			}
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is already booked", detail)
	case errs.Is(err, commands.ErrInvalidState):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation status does not allow this action", nil)
	default:
		slog.Error("request failed",
			"request_id", middleware.GetRequestID(c),
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func respondUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

func respondBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
