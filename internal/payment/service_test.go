package payment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	calls    int
	amount   int64
	currency string
	err      error
}

func (f *fakeProvider) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	f.calls++
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return nil, f.err
	}
	return &Intent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: amount, Currency: currency}, nil
}

func ptr(v float64) *float64 { return &v }

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		price   *float64
		want    int64
		wantErr bool
	}{
		{"whole", ptr(10), 1000, false},
		{"cents", ptr(19.99), 1999, false},
		{"rounds to nearest cent", ptr(0.999), 100, false},
		{"missing", nil, 0, true},
		{"zero", ptr(0), 0, true},
		{"negative", ptr(-5), 0, true},
		{"below one cent", ptr(0.001), 0, true},
		{"largest accepted", ptr(1e15), 1e17, false},
		{"beyond int64 range", ptr(1e17), 0, true},
		{"max float", ptr(math.MaxFloat64), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinorUnits(tt.price)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateIntent(t *testing.T) {
	p := &fakeProvider{}
	svc := NewService(p, "usd")

	intent, err := svc.CreateIntent(context.Background(), ptr(10))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), p.amount)
	assert.Equal(t, "usd", p.currency)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)
}

func TestCreateIntentShortCircuits(t *testing.T) {
	p := &fakeProvider{}
	svc := NewService(p, "usd")

	_, err := svc.CreateIntent(context.Background(), ptr(0))
	assert.ErrorIs(t, err, ErrInvalidPrice)
	_, err = svc.CreateIntent(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	assert.Zero(t, p.calls)
}

func TestCreateIntentProviderFailure(t *testing.T) {
	p := &fakeProvider{err: errors.New("card network down")}
	svc := NewService(p, "usd")

	_, err := svc.CreateIntent(context.Background(), ptr(5))
	assert.Error(t, err)
	assert.Equal(t, 1, p.calls)
}

func TestCreateIntentNotConfigured(t *testing.T) {
	svc := NewService(nil, "usd")

	_, err := svc.CreateIntent(context.Background(), ptr(5))
	assert.ErrorIs(t, err, ErrNotConfigured)
}
