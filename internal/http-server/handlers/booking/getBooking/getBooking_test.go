package getBooking

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shareBooker/internal/booking"
	"shareBooker/internal/http-server/handlers/booking/getBooking/mocks"
	"shareBooker/internal/lib/logger/handlers/slogdiscard"
	"shareBooker/internal/models"
	"shareBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	b := models.Booking{
		ID:     100,
		Start:  time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
		Item:   models.Item{ID: 10, OwnerID: 1},
		Booker: models.User{ID: 2},
		Status: models.StatusWaiting,
	}

	testCases := []struct {
		name           string
		userHeader     string
		url            string
		mockSetup      func(mock *mocks.BookingProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Visible to booker",
			userHeader: "2",
			url:        "/bookings/100",
			mockSetup: func(mock *mocks.BookingProvider) {
				mock.On("GetBooking", int64(100), int64(2)).Return(b, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":100`)
			},
		},
		{
			name:       "Hidden from strangers",
			userHeader: "42",
			url:        "/bookings/100",
			mockSetup: func(mock *mocks.BookingProvider) {
				mock.On("GetBooking", int64(100), int64(42)).
					Return(models.Booking{}, booking.ErrNotAuthorized)
			},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "not available for this user")
			},
		},
		{
			name:       "Booking not found",
			userHeader: "2",
			url:        "/bookings/404",
			mockSetup: func(mock *mocks.BookingProvider) {
				mock.On("GetBooking", int64(404), int64(2)).
					Return(models.Booking{}, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "booking not found")
			},
		},
		{
			name:           "Invalid booking id",
			userHeader:     "2",
			url:            "/bookings/abc",
			mockSetup:      func(mock *mocks.BookingProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid booking id format")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewBookingProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			if tc.userHeader != "" {
				req.Header.Set("X-Sharer-User-Id", tc.userHeader)
			}

			router := chi.NewRouter()
			router.Get("/bookings/{bookingId}", handler)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			tc.checkBody(t, rr.Body.String())
		})
	}
}
