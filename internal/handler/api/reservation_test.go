//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	domres "facility-booking/internal/domain/reservation"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/handler/api"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"
	"facility-booking/tests/common/builder"
	"facility-booking/tests/common/httptest"
	"facility-booking/tests/common/testutil"
	commandsmock "facility-booking/tests/mock/commands"
	queriesmock "facility-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler

	actorID uuid.UUID
	role    user.Role
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.role = user.RoleViewer

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.role)
		c.Next()
	}

	g := s.router.Group("/reservations", authMiddleware)
	g.POST("", s.handler.Create)
	g.GET("", s.handler.List)
	g.GET("/:id", s.handler.Get)
	g.PUT("/:id", s.handler.Update)
	g.DELETE("/:id", s.handler.Delete)
	g.GET("/:id/materials", s.handler.ListMaterials)
	g.POST("/:id/approve", s.handler.Approve)
	g.POST("/:id/reject", s.handler.Reject)
	g.POST("/:id/cancel", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) actor() user.Actor {
	return user.NewActor(s.actorID, s.role)
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder().WithMaterial(uuid.New(), 2)
	reqBody := b.BuildCreateRequestDTO()
	created, err := b.BuildDomain()
	s.Require().NoError(err)
	returnView := b.BuildView()
	returnView.ID = created.ID()

	expectSuccess := func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor(), gomock.Any()).
			Return(created, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), created.ID()).
			Return(returnView, nil).Times(1)
	}

	s.Run("success: returns 201 Created with the stored reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor(), reqBody.ToInput()).
			Return(created, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), created.ID()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("pending", body.Status)
		s.Require().Len(body.Materials, 1)
		s.Equal(2, body.Materials[0].QuantityRequested)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + created.ID().String()})
	})

	bound := []testCaseReservation{
		{name: "purpose length OK (1000 chars)", mutate: testutil.Field("purpose", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "purpose length invalid (1001 chars)", mutate: testutil.Field("purpose", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		{name: "empty purpose is allowed", mutate: testutil.Field("purpose", ""), expectCode: http.StatusCreated},
		{name: "no materials is allowed", mutate: testutil.Field("materials", nil), expectCode: http.StatusCreated},
		{name: "material quantity invalid (0)", mutate: testutil.Field("materials", []map[string]any{{"material_id": uuid.NewString(), "quantity": 0}}), expectCode: http.StatusBadRequest},
		{name: "material quantity invalid (-1)", mutate: testutil.Field("materials", []map[string]any{{"material_id": uuid.NewString(), "quantity": -1}}), expectCode: http.StatusBadRequest},
		{name: "material without id", mutate: testutil.Field("materials", []map[string]any{{"quantity": 1}}), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReservation{
		{name: "missing field: location_id (required)", mutate: testutil.Field("location_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end_time (required)", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseReservation{
		{name: "start_time not RFC3339", mutate: testutil.Field("start_time", "tomorrow at noon"), expectCode: http.StatusBadRequest},
		{name: "location_id not a uuid", mutate: testutil.Field("location_id", "lab-1"), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseReservation{bound, missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						expectSuccess()
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "validation error",
				commandsError:  errs.Mark(errs.New("start time is in the past"), commands.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Validation failed",
			},
			{
				name: "insufficient stock",
				commandsError: errs.Mark(&commands.InsufficientStockError{
					MaterialID: uuid.New(), Requested: 3, Available: 1,
				}, commands.ErrInsufficientStock),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Insufficient material stock",
			},
			{
				name:           "unknown location",
				commandsError:  errs.Mark(errs.New("location not found"), commands.ErrNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: insufficient stock reports the material", func() {
		materialID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor(), gomock.Any()).
			Return(nil, errs.Mark(&commands.InsufficientStockError{
				MaterialID: materialID, MaterialName: "Projector", Requested: 3, Available: 1,
			}, commands.ErrInsufficientStock)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Detail struct {
				MaterialID   string `json:"material_id"`
				MaterialName string `json:"material_name"`
				Requested    int    `json:"requested"`
				Available    int    `json:"available"`
			} `json:"detail"`
		}
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(materialID.String(), body.Detail.MaterialID)
		s.Equal("Projector", body.Detail.MaterialName)
		s.Equal(3, body.Detail.Requested)
		s.Equal(1, body.Detail.Available)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.LocationName, response.LocationName)
		s.Equal(view.Purpose, response.Purpose)
		s.NotNil(response.Materials)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "reservation not found", queriesError: queries.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Not found"},
			{name: "not visible to actor", queriesError: queries.ErrAccessDenied, expectedStatus: http.StatusForbidden, expectedMsg: "Forbidden"},
			{name: "internal server error", queriesError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), view.ID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	locationID := uuid.New()
	items := []*queries.ReservationListItem{
		builder.NewReservationBuilder().WithLocationID(locationID).BuildListItem(),
		builder.NewReservationBuilder().WithLocationID(locationID).BuildListItem(),
	}

	s.Run("success: parses filters and returns the next cursor", func() {
		from := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		to := from.Add(24 * time.Hour)
		expected := queries.ReservationFilter{
			Statuses:   []string{"pending", "approved", "cancelled"},
			LocationID: &locationID,
			From:       &from,
			To:         &to,
		}
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.actor(), expected, &queries.Cursor{After: "abc"}, 2).
			Return(items, &queries.Cursor{After: "next"}, nil).Times(1)

		url := "/reservations?status=pending,approved&status=cancelled&location_id=" + locationID.String() +
			"&from=" + from.Format(time.RFC3339) + "&to=" + to.Format(time.RFC3339) + "&limit=2&after=abc"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reservations, 2)
		s.Equal("next", response.NextCursor)
	})

	s.Run("success: empty page renders an empty array", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.actor(), queries.ReservationFilter{}, nil, 0).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"reservations":[]}`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on malformed query parameters", func() {
		for _, q := range []string{"location_id=nope", "requester_id=nope", "from=yesterday", "to=2026-13-01", "limit=ten"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?"+q, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid")
			})
		}
	})

	s.Run("error: invalid filter from the query layer", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errs.New("from must be before to"), queries.ErrInvalidFilter)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=bogus", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	b := builder.NewReservationBuilder()
	view := b.BuildView()
	url := "/reservations/" + view.ID.String()
	reqBody := b.BuildUpdateRequestDTO()

	s.Run("success: returns 200 OK with the updated reservation", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor(), view.ID, reqBody.ToInput()).
			Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: empty materials array clears every line", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor(), view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ user.Actor, _ uuid.UUID, in commands.UpdateReservationInput) (*domres.Reservation, error) {
				s.Require().NotNil(in.Materials)
				s.Empty(*in.Materials)
				s.Nil(in.StartTime)
				return nil, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"materials": []any{}}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for overly long purpose", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("purpose", strings.Repeat("a", 1001)))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not the requester", commandsError: commands.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "Forbidden"},
			{name: "not pending", commandsError: commands.ErrInvalidState, expectedStatus: http.StatusConflict, expectedMsg: "status does not allow"},
			{name: "missing reservation", commandsError: commands.ErrNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Not found"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), s.actor(), view.ID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestApprove() {
	view := builder.NewReservationBuilder().WithStatus(domres.StatusApproved).BuildView()
	url := "/reservations/" + view.ID.String() + "/approve"

	s.Run("success: returns 200 OK with the approved reservation", func() {
		s.role = user.RoleOperator
		defer func() { s.role = user.RoleViewer }()

		s.mockCommands.EXPECT().Approve(gomock.Any(), s.actor(), view.ID).Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Status)
	})

	s.Run("error: 409 Conflict names the blocking reservation", func() {
		blocking := uuid.New()
		start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Approve(gomock.Any(), s.actor(), view.ID).
			Return(nil, errs.Mark(&commands.ConflictError{
				LocationID:    view.LocationID,
				ReservationID: blocking,
				Start:         start,
				End:           start.Add(2 * time.Hour),
			}, commands.ErrConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail struct {
				LocationID    string `json:"location_id"`
				ReservationID string `json:"reservation_id"`
				StartTime     string `json:"start_time"`
				EndTime       string `json:"end_time"`
			} `json:"detail"`
		}
		s.Equal(http.StatusConflict, rec.Code)
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("Time slot is already booked", body.Error.Message)
		s.Equal(blocking.String(), body.Detail.ReservationID)
		s.Equal(view.LocationID.String(), body.Detail.LocationID)
		s.Equal("2026-03-02T10:00:00Z", body.Detail.StartTime)
		s.Equal("2026-03-02T12:00:00Z", body.Detail.EndTime)
	})

	s.Run("error: 409 Conflict when reservation is not pending", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), s.actor(), view.ID).
			Return(nil, commands.ErrInvalidState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "status does not allow")
	})
}

func (s *ReservationHandlerTestSuite) TestReject() {
	view := builder.NewReservationBuilder().WithStatus(domres.StatusRejected).BuildView()
	url := "/reservations/" + view.ID.String() + "/reject"

	s.Run("success: forwards the reason", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), s.actor(), view.ID, "room under maintenance").Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "room under maintenance"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request when reason is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request when reason is too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": strings.Repeat("r", 1001)}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	view := builder.NewReservationBuilder().WithStatus(domres.StatusCancelled).BuildView()
	url := "/reservations/" + view.ID.String() + "/cancel"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor(), view.ID).Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 403 Forbidden for someone else's reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor(), view.ID).Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/invalid-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDelete() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor(), reservationID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor(), reservationID).Return(commands.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestListMaterials
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListMaterials() {
	materialID := uuid.New()
	view := builder.NewReservationBuilder().WithMaterial(materialID, 4).BuildView()
	url := "/reservations/" + view.ID.String() + "/materials"

	s.Run("success: returns the reservation's lines", func() {
		s.mockQueries.EXPECT().ListMaterials(gomock.Any(), s.actor(), view.ID).
			Return(view.Materials, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ReservationMaterialResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(materialID, response[0].MaterialID)
		s.Equal(4, response[0].QuantityRequested)
	})

	s.Run("success: no lines renders an empty array", func() {
		s.mockQueries.EXPECT().ListMaterials(gomock.Any(), s.actor(), view.ID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}
