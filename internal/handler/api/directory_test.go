//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/handler/api"
	resdto "facility-booking/internal/handler/dto/response"
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

type DirectoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDirectoryCommands
	mockQueries  *queriesmock.MockDirectoryQueries
	handler      *api.DirectoryHandler
	actor        user.Actor
}

func (s *DirectoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDirectoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDirectoryQueries(s.mockCtrl)
	s.handler = api.NewDirectoryHandler(s.mockCommands, s.mockQueries)
	s.actor = user.NewActor(uuid.New(), user.RoleOperator)

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.actor.ID)
		c.Set("user_role", user.RoleOperator)
		c.Next()
	}

	s.router.Use(authMiddleware)
	s.router.GET("/locations", s.handler.ListLocations)
	s.router.GET("/locations/:id", s.handler.GetLocation)
	s.router.POST("/locations", s.handler.CreateLocation)
	s.router.PUT("/locations/:id", s.handler.UpdateLocation)
	s.router.GET("/materials", s.handler.ListMaterials)
	s.router.GET("/materials/:id", s.handler.GetMaterial)
	s.router.POST("/materials", s.handler.CreateMaterial)
	s.router.PUT("/materials/:id", s.handler.UpdateMaterial)
	s.router.POST("/materials/:id/restock", s.handler.Restock)
}

func (s *DirectoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDirectoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(DirectoryHandlerTestSuite))
}

// ================================================================================
// Locations
// ================================================================================

func (s *DirectoryHandlerTestSuite) TestCreateLocation() {
	b := builder.NewLocationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateLocation(gomock.Any(), s.actor, reqBody.ToInput()).Return(created, nil).Times(1)
		s.mockQueries.EXPECT().GetLocation(gomock.Any(), created.ID()).Return(b.BuildView(created.ID()), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/locations", reqBody, "")

		var response resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID(), response.ID)
		s.Equal("laboratory", response.Type)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/locations/" + created.ID().String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := map[string]func(map[string]any){
			"unknown type":   testutil.Field("type", "office"),
			"zero capacity":  testutil.Field("capacity", 0),
			"missing name":   testutil.Field("name", nil),
			"missing type":   testutil.Field("type", nil),
			"capacity float": testutil.Field("capacity", 1.5),
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/locations", testutil.DtoMap(s.T(), reqBody, mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 403 Forbidden for non-privileged actors", func() {
		s.mockCommands.EXPECT().CreateLocation(gomock.Any(), s.actor, gomock.Any()).Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/locations", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *DirectoryHandlerTestSuite) TestListLocations() {
	b := builder.NewLocationBuilder()

	s.Run("success: forwards the type filter", func() {
		kind := "laboratory"
		s.mockQueries.EXPECT().ListLocations(gomock.Any(), queries.LocationFilter{Type: &kind}).
			Return([]*queries.LocationView{b.BuildView(uuid.New())}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations?type=laboratory", nil, "")

		var response []resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 404 Not Found for missing location", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetLocation(gomock.Any(), id).Return(nil, queries.ErrLocationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/locations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *DirectoryHandlerTestSuite) TestUpdateLocation() {
	id := uuid.New()

	s.Run("success: returns 200 OK", func() {
		capacity := 40
		s.mockCommands.EXPECT().UpdateLocation(gomock.Any(), s.actor, id, commands.UpdateLocationInput{Capacity: &capacity}).
			Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().GetLocation(gomock.Any(), id).Return(builder.NewLocationBuilder().BuildView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/locations/"+id.String(), map[string]any{"capacity": 40}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/locations/nope", map[string]any{"capacity": 40}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// Materials
// ================================================================================

func (s *DirectoryHandlerTestSuite) TestCreateMaterial() {
	b := builder.NewMaterialBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created, err := b.BuildDomain()
	s.Require().NoError(err)

	s.Run("success: zero stock is allowed", func() {
		zero := builder.NewMaterialBuilder().WithQuantity(0)
		s.mockCommands.EXPECT().CreateMaterial(gomock.Any(), s.actor, zero.BuildCreateRequestDTO().ToInput()).Return(created, nil).Times(1)
		s.mockQueries.EXPECT().GetMaterial(gomock.Any(), created.ID()).Return(zero.BuildView(created.ID()), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/materials", zero.BuildCreateRequestDTO(), "")

		var response resdto.MaterialResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(0, response.QuantityAvailable)
	})

	s.Run("error: 400 Bad Request for negative stock", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/materials",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", -1)), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *DirectoryHandlerTestSuite) TestRestock() {
	id := uuid.New()
	url := "/materials/" + id.String() + "/restock"

	s.Run("success: returns the new balance", func() {
		s.mockCommands.EXPECT().Restock(gomock.Any(), s.actor, id, 3).Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().GetMaterial(gomock.Any(), id).
			Return(builder.NewMaterialBuilder().WithQuantity(8).BuildView(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quantity": 3}, "")

		var response resdto.MaterialResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(8, response.QuantityAvailable)
	})

	s.Run("error: 400 Bad Request for non-positive quantity", func() {
		for _, qty := range []int{0, -2} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quantity": qty}, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "missing material", commandsError: commands.ErrNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Not found"},
			{name: "not privileged", commandsError: commands.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "Forbidden"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Restock(gomock.Any(), s.actor, id, 1).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quantity": 1}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *DirectoryHandlerTestSuite) TestListMaterials() {
	s.mockQueries.EXPECT().ListMaterials(gomock.Any()).
		Return([]*queries.MaterialView{builder.NewMaterialBuilder().BuildView(uuid.New())}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/materials", nil, "")

	var response []resdto.MaterialResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 1)
	s.Equal("Projector", response[0].Name)
}
