//go:build e2e

package checkout_test

import (
	"net/http"
	"testing"
	"time"

	resdto "guarupark-checkout/internal/handler/dto/response"
	"guarupark-checkout/tests/common/builder"
	"guarupark-checkout/tests/common/dbtest"
	"guarupark-checkout/tests/common/httptest"
	"guarupark-checkout/tests/common/testutil"
	"guarupark-checkout/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const sessionsURL = "/api/checkout/sessions"

type CheckoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) startSession(t *testing.T) resdto.CheckoutSessionResponse {
	t.Helper()
	b := builder.NewCheckoutBuilder()
	body := map[string]any{
		"entryDate":   b.EntryDate,
		"entryTime":   b.EntryTime,
		"exitDate":    b.ExitDate,
		"exitTime":    b.ExitTime,
		"parkingType": b.ParkingType,
		"insurance":   false,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL, body)

	var sess resdto.CheckoutSessionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &sess)
	require.NotEmpty(t, sess.ID)
	return sess
}

func (s *CheckoutSuite) fillForm(t *testing.T, id string) {
	t.Helper()
	fields := testutil.FormFields(builder.NewCheckoutBuilder().Fields)
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, sessionsURL+"/"+id+"/fields", map[string]any{"fields": fields})
	var sess resdto.CheckoutSessionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &sess)
	require.Empty(t, sess.Errors)
}

func (s *CheckoutSuite) poll(t *testing.T, id string, phase string) resdto.CheckoutSessionResponse {
	t.Helper()
	var sess resdto.CheckoutSessionResponse
	require.Eventually(t, func() bool {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, sessionsURL+"/"+id, nil)
		if w.Code != http.StatusOK {
			return false
		}
		sess = resdto.CheckoutSessionResponse{}
		if err := httptest.DecodeResponseBody(t, w.Body, &sess); err != nil {
			return false
		}
		return sess.Phase == phase
	}, 5*time.Second, 20*time.Millisecond, "session never reached %s", phase)
	return sess
}

// =============================================================================
// TestCheckoutFlow - interactive session
// =============================================================================

func (s *CheckoutSuite) TestCheckoutFlow() {
	s.Run("Normal case: pix session shows instructions and confirms", func() {
		t := s.T()
		sess := s.startSession(t)
		require.NotNil(t, sess.Quote)
		s.Equal(int64(5700), sess.Quote.TotalCents)
		s.Equal("collecting", sess.Phase)

		s.fillForm(t, sess.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL+"/"+sess.ID+"/submit", nil)
		httptest.AssertSuccessResponse(t, w, http.StatusAccepted, nil)

		pending := s.poll(t, sess.ID, "pix_pending")
		require.NotNil(t, pending.Pix)
		s.Equal("00020101021226", pending.Pix.Code)
		s.False(pending.Pix.Expired)
		// the reservation is written after the session moves on
		require.Eventually(t, func() bool {
			return dbtest.CountReservations(t, s.DB) == 1
		}, 5*time.Second, 20*time.Millisecond)
		s.Equal("pending", dbtest.ReservationStatus(t, s.DB, pending.TransactionID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL+"/"+sess.ID+"/confirm", nil)
		var confirmed resdto.CheckoutSessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		s.Equal("confirmed", confirmed.Phase)
		s.Equal("confirmed", dbtest.ReservationStatus(t, s.DB, confirmed.TransactionID))
	})

	s.Run("Error case: gateway failure returns the session to the form", func() {
		t := s.T()
		s.Gateway.Respond(http.StatusBadRequest, `{"message":"Cartão recusado"}`)

		sess := s.startSession(t)
		s.fillForm(t, sess.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL+"/"+sess.ID+"/submit", nil)
		httptest.AssertSuccessResponse(t, w, http.StatusAccepted, nil)

		failed := s.poll(t, sess.ID, "collecting")
		s.Equal("Cartão recusado", failed.LastFailure)
		s.Equal(0, dbtest.CountReservations(t, s.DB))
	})

	s.Run("Error case: removed session is gone", func() {
		t := s.T()
		sess := s.startSession(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, sessionsURL+"/"+sess.ID, nil)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, sessionsURL+"/"+sess.ID, nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
