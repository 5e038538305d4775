package listBookings

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shareBooker/internal/booking"
	"shareBooker/internal/http-server/handlers/booking/listBookings/mocks"
	"shareBooker/internal/lib/logger/handlers/slogdiscard"
	"shareBooker/internal/models"
	"shareBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	waiting := models.Booking{
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
		mockSetup      func(mock *mocks.BookingLister)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Default state is ALL",
			userHeader: "2",
			url:        "/bookings",
			mockSetup: func(mock *mocks.BookingLister) {
				mock.On("ListForUser", int64(2), booking.FilterAll).Return([]models.Booking{waiting}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":100`)
			},
		},
		{
			name:       "Explicit state, case insensitive",
			userHeader: "2",
			url:        "/bookings?state=waiting",
			mockSetup: func(mock *mocks.BookingLister) {
				mock.On("ListForUser", int64(2), booking.FilterWaiting).Return([]models.Booking{waiting}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"WAITING"`)
			},
		},
		{
			name:           "Unsupported state",
			userHeader:     "2",
			url:            "/bookings?state=SOMEDAY",
			mockSetup:      func(mock *mocks.BookingLister) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "unsupported state")
			},
		},
		{
			name:       "Paged mode ignores state",
			userHeader: "2",
			url:        "/bookings?from=10&size=5&state=WAITING",
			mockSetup: func(mock *mocks.BookingLister) {
				mock.On("ListForUserPage", int64(2), 10, 5).Return([]models.Booking{waiting}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":100`)
			},
		},
		{
			name:           "Malformed paging parameters",
			userHeader:     "2",
			url:            "/bookings?from=x&size=5",
			mockSetup:      func(mock *mocks.BookingLister) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid page parameters")
			},
		},
		{
			name:       "Negative paging rejected by engine",
			userHeader: "2",
			url:        "/bookings?from=-1&size=5",
			mockSetup: func(mock *mocks.BookingLister) {
				mock.On("ListForUserPage", int64(2), -1, 5).Return(nil, booking.ErrInvalidPage)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid page parameters")
			},
		},
		{
			name:       "Unknown user",
			userHeader: "99",
			url:        "/bookings",
			mockSetup: func(mock *mocks.BookingLister) {
				mock.On("ListForUser", int64(99), booking.FilterAll).Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "user not found")
			},
		},
		{
			name:           "Missing user header",
			userHeader:     "",
			url:            "/bookings",
			mockSetup:      func(mock *mocks.BookingLister) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid X-Sharer-User-Id header")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewBookingLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			if tc.userHeader != "" {
				req.Header.Set("X-Sharer-User-Id", tc.userHeader)
			}

			router := chi.NewRouter()
			router.Get("/bookings", handler)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			tc.checkBody(t, rr.Body.String())
		})
	}
}
