package update_prereservation_dates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	"github.com/Angelolozano-7/Prisma-Led/internal/availability"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations/models"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateDates(ctx context.Context, req *models.UpdateDatesRequest) (*models.PreReservationResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.PreReservationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		resp     *models.PreReservationResponse
		svcErr   error
		wantCode int
		wantBody string
	}{
		{
			name:     "updated",
			resp:     &models.PreReservationResponse{ID: "ab12cd34", StartDate: "2024-02-01", EndDate: "2024-02-15", Status: "pendiente"},
			wantCode: http.StatusOK,
			wantBody: `"start_date":"2024-02-01"`,
		},
		{
			name:     "capacity exceeded",
			svcErr:   &availability.RejectedError{Kind: availability.RejectCapacity, Reason: "La pantalla s1 excede el límite de 60 segundos"},
			wantCode: http.StatusConflict,
			wantBody: "excede el límite",
		},
		{
			name:     "category conflict",
			svcErr:   &availability.RejectedError{Kind: availability.RejectCategory, Reason: "Conflicto de categoría en cilindro 3"},
			wantCode: http.StatusConflict,
		},
		{name: "invalid dates", svcErr: prereservations.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "not owned", svcErr: prereservations.ErrPreReservationNotFound, wantCode: http.StatusNotFound},
		{name: "store failure", svcErr: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("UpdateDates", mock.Anything, &models.UpdateDatesRequest{
				ID: "ab12cd34", ClientID: "cli-1", StartDate: "2024-02-01", EndDate: "2024-02-15",
			}).Return(tt.resp, tt.svcErr)

			r := mux.NewRouter()
			r.HandleFunc("/api/v1/pre-reservations/{id}/dates", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

			body := `{"start_date":"2024-02-01","end_date":"2024-02-15"}`
			req := httptest.NewRequest(http.MethodPut, "/api/v1/pre-reservations/ab12cd34/dates", strings.NewReader(body))
			req = req.WithContext(middleware.WithClientID(req.Context(), "cli-1"))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			svc.AssertExpectations(t)
		})
	}
}
