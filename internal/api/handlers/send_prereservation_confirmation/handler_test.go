package send_prereservation_confirmation

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
	sendConfirmation "github.com/Angelolozano-7/Prisma-Led/internal/usecase/send_prereservation_confirmation"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *sendConfirmation.Request) error {
	return m.Called(ctx, req).Error(0)
}

const body = `{"email":"ventas@empresa.co","company_name":"Empresa SAS","duration_weeks":2,
"screens":[{"cylinder":3,"label":"A","weekly_base":100000,"price":180000,"discount":0.1}],"total":214200}`

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		ucErr    error
		wantCode int
	}{
		{name: "sent", wantCode: http.StatusOK},
		{name: "already sent", ucErr: sendConfirmation.ErrAlreadySent, wantCode: http.StatusConflict},
		{name: "incomplete", ucErr: sendConfirmation.ErrIncompleteData, wantCode: http.StatusBadRequest},
		{name: "not owned", ucErr: sendConfirmation.ErrPreReservationNotFound, wantCode: http.StatusNotFound},
		{name: "smtp down", ucErr: sendConfirmation.ErrDelivery, wantCode: http.StatusBadGateway},
		{name: "internal", ucErr: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *sendConfirmation.Request) bool {
				return req.ID == "ab12cd34" &&
					req.ClientID == "cli-1" &&
					req.Notice.Recipient == "ventas@empresa.co" &&
					len(req.Notice.Screens) == 1 &&
					req.Notice.Screens[0].Discount == 0.1
			})).Return(tt.ucErr)

			r := mux.NewRouter()
			r.HandleFunc("/api/v1/pre-reservations/{id}/confirmation", NewHandler(uc, logger.NewNop()).Handle)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/pre-reservations/ab12cd34/confirmation", strings.NewReader(body))
			req = req.WithContext(middleware.WithClientID(req.Context(), "cli-1"))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}
