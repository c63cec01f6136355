//go:build unit

package checkout_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"guarupark-checkout/internal/domain/checkout"
	"guarupark-checkout/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs string

func (f fixedIDs) Next(time.Time) string { return string(f) }

func TestPayloadBuilder(t *testing.T) {
	pb := checkout.NewPayloadBuilder("chave@guarupark.com", 3, fixedIDs("GP00000001"))
	b := builder.NewCheckoutBuilder()
	res := b.BuildReservation()

	t.Run("pix", func(t *testing.T) {
		got, err := pb.Build(checkout.MethodPix, b.BuildForm(), res, checkout.NewMoney(5700), now)
		require.NoError(t, err)

		want := checkout.PaymentRequest{
			Amount:        5700,
			Currency:      "BRL",
			Description:   "Reserva de Estacionamento - ABC1D23",
			PaymentMethod: "pix",
			Customer: checkout.Customer{
				Name:     "João Silva",
				Email:    "joao@example.com",
				Phone:    "13998765432",
				Document: "12345678909",
			},
			Metadata: checkout.PaymentMetadata{
				ReservationID: "GP00000001",
				VehiclePlate:  "ABC1D23",
				VehicleType:   "sedan",
				EntryDate:     "2026-01-15",
				ExitDate:      "2026-01-18",
				ParkingType:   "covered",
				Insurance:     false,
			},
			PixKey: "chave@guarupark.com",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("pix key omitted when not configured", func(t *testing.T) {
		noKey := checkout.NewPayloadBuilder("", 3, fixedIDs("GP00000001"))
		got, err := noKey.Build(checkout.MethodPix, b.BuildForm(), res, checkout.NewMoney(5700), now)
		require.NoError(t, err)

		raw, err := json.Marshal(got)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "pixKey")
		assert.NotContains(t, string(raw), "card")
	})

	t.Run("credit", func(t *testing.T) {
		form := builder.NewCheckoutBuilder().AsCredit().WithField(checkout.FieldInstallments, "3").BuildForm()
		got, err := pb.Build(checkout.MethodCredit, form, res, checkout.NewMoney(5985), now)
		require.NoError(t, err)

		assert.Equal(t, "credit_card", got.PaymentMethod)
		assert.Equal(t, checkout.MethodCredit, got.Method())
		assert.Equal(t, 3, got.Installments)
		assert.Empty(t, got.PixKey)
		require.NotNil(t, got.Card)
		assert.Equal(t, checkout.Card{
			Number:      "4111111111111111",
			HolderName:  "JOAO SILVA",
			ExpiryMonth: "12",
			ExpiryYear:  "2029",
			CVV:         "123",
		}, *got.Card)
	})

	t.Run("credit installments default to one", func(t *testing.T) {
		form := builder.NewCheckoutBuilder().AsCredit().WithField(checkout.FieldInstallments, "").BuildForm()
		got, err := pb.Build(checkout.MethodCredit, form, res, checkout.NewMoney(5985), now)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Installments)
	})

	t.Run("boleto due in three days", func(t *testing.T) {
		got, err := pb.Build(checkout.MethodBoleto, b.BuildForm(), res, checkout.NewMoney(5700), now)
		require.NoError(t, err)
		assert.Equal(t, "2026-01-13", got.DueDate)
		assert.Nil(t, got.Card)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := pb.Build("cash", b.BuildForm(), res, checkout.NewMoney(5700), now)
		require.ErrorIs(t, err, checkout.ErrUnknownMethod)
	})
}

func TestReservationIDGenerator(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		g := checkout.NewReservationIDGenerator()
		id := g.Next(time.UnixMilli(1_768_480_012_345))
		assert.Equal(t, "GP80012345", id)
		assert.True(t, checkout.IsReservationCode(id))
		assert.False(t, checkout.IsReservationCode("GP1234"))
		assert.False(t, checkout.IsReservationCode("XX12345678"))
	})

	t.Run("same millisecond never repeats", func(t *testing.T) {
		g := checkout.NewReservationIDGenerator()
		ts := time.UnixMilli(1_768_480_012_345)

		var mu sync.Mutex
		seen := map[string]bool{}
		var wg sync.WaitGroup
		for i := 0; i < 200; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id := g.Next(ts)
				mu.Lock()
				defer mu.Unlock()
				seen[id] = true
			}()
		}
		wg.Wait()
		assert.Len(t, seen, 200)
	})
}

func TestReservationData(t *testing.T) {
	t.Run("intake defaults", func(t *testing.T) {
		res := checkout.NewReservationData(checkout.ReservationParams{}, builder.SaoPaulo)
		assert.Equal(t, checkout.ParkingUncovered, res.ParkingType())
		assert.False(t, res.Insurance())
		assert.False(t, res.IsOrdered())
		assert.Zero(t, res.QuotedDays())
		assert.True(t, res.QuotedPrice().IsZero())
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Coberta", checkout.ParkingCovered.Label())
		assert.Equal(t, "Descoberta", checkout.ParkingUncovered.Label())
		assert.Equal(t, "Incluído", checkout.InsuranceLabel(true))
		assert.Equal(t, "Não incluído", checkout.InsuranceLabel(false))
	})

	t.Run("quoted values kept", func(t *testing.T) {
		res := builder.NewCheckoutBuilder().WithInsurance(true).BuildReservation()
		assert.True(t, res.Insurance())
		assert.Equal(t, 3, res.QuotedDays())
		assert.Equal(t, int64(5700), res.QuotedPrice().Cents())
	})
}
