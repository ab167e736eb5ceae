package delete_prereservation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Angelolozano-7/Prisma-Led/internal/api/middleware"
	"github.com/Angelolozano-7/Prisma-Led/internal/service/prereservations"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, id, clientID string) error {
	return m.Called(ctx, id, clientID).Error(0)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		svcErr   error
		wantCode int
	}{
		{name: "deleted", wantCode: http.StatusOK},
		{name: "not owned", svcErr: prereservations.ErrPreReservationNotFound, wantCode: http.StatusNotFound},
		{name: "store failure", svcErr: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Delete", mock.Anything, "ab12cd34", "cli-1").Return(tt.svcErr)

			r := mux.NewRouter()
			r.HandleFunc("/api/v1/pre-reservations/{id}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/pre-reservations/ab12cd34", nil)
			req = req.WithContext(middleware.WithClientID(req.Context(), "cli-1"))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
