package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro-boss-server/app/models"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/stripe"
)

type fakeIntents struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (f *fakeIntents) CreatePaymentIntent(_ context.Context, amountCents int64, currency string) (*stripe.PaymentIntent, error) {
	f.lastAmount = amountCents
	f.lastCurrency = currency
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ID: "pi_test", ClientSecret: "pi_test_secret", Amount: amountCents, Currency: currency}, nil
}

type fakePayments struct {
	created   []models.Payment
	createErr error
	id        primitive.ObjectID
}

func (f *fakePayments) Create(_ context.Context, p models.Payment) (primitive.ObjectID, error) {
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	f.created = append(f.created, p)
	if f.id.IsZero() {
		f.id = primitive.NewObjectID()
	}
	return f.id, nil
}

func (f *fakePayments) ByEmail(_ context.Context, email string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.created {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCarts struct {
	deleted   [][]primitive.ObjectID
	deleteErr error
}

func (f *fakeCarts) DeleteMany(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.deleted = append(f.deleted, ids)
	return int64(len(ids)), nil
}

func TestCreateIntentScalesToCents(t *testing.T) {
	intents := &fakeIntents{}
	svc := NewPaymentService(intents, &fakePayments{}, &fakeCarts{})

	secret, err := svc.CreateIntent(context.Background(), 12.5)
	require.NoError(t, err)

	assert.Equal(t, "pi_test_secret", secret)
	assert.Equal(t, int64(1250), intents.lastAmount)
	assert.Equal(t, "usd", intents.lastCurrency)
}

func TestCreateIntentTruncatesFractionalCents(t *testing.T) {
	intents := &fakeIntents{}
	svc := NewPaymentService(intents, &fakePayments{}, &fakeCarts{})

	_, err := svc.CreateIntent(context.Background(), 10.999)
	require.NoError(t, err)

	// 10.999 * 100 = 1099.9; the conversion truncates, never rounds up.
	assert.Equal(t, int64(1099), intents.lastAmount)
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := NewPaymentService(&fakeIntents{}, &fakePayments{}, &fakeCarts{})

	for _, price := range []float64{0, -1, -0.01} {
		_, err := svc.CreateIntent(context.Background(), price)
		assert.ErrorIsf(t, err, ErrInvalidAmount, "price %v", price)
	}
}

func TestCreateIntentWrapsProviderError(t *testing.T) {
	intents := &fakeIntents{err: errors.New("card_declined")}
	svc := NewPaymentService(intents, &fakePayments{}, &fakeCarts{})

	_, err := svc.CreateIntent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrPaymentProvider)
}

func TestSettleInsertsThenClearsCarts(t *testing.T) {
	payments := &fakePayments{}
	carts := &fakeCarts{}
	svc := NewPaymentService(&fakeIntents{}, payments, carts)

	cartID := primitive.NewObjectID()
	in := PaymentInput{
		Email:   "guest@bistro.test",
		Price:   21.5,
		CartIDs: []string{cartID.Hex()},
		MenuIDs: []string{primitive.NewObjectID().Hex()},
	}

	result, err := svc.Settle(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, payments.id.Hex(), result.InsertedID)
	assert.Equal(t, int64(1), result.DeletedCount)
	assert.Empty(t, result.SkippedCartIDs)

	require.Len(t, payments.created, 1)
	assert.Equal(t, in.Email, payments.created[0].Email)
	assert.Equal(t, in.Price, payments.created[0].Price)
	assert.False(t, payments.created[0].Date.IsZero())

	require.Len(t, carts.deleted, 1)
	assert.Equal(t, []primitive.ObjectID{cartID}, carts.deleted[0])
}

func TestSettleSkipsUnparseableCartIDs(t *testing.T) {
	payments := &fakePayments{}
	carts := &fakeCarts{}
	svc := NewPaymentService(&fakeIntents{}, payments, carts)

	good := primitive.NewObjectID()
	in := PaymentInput{
		Email:   "guest@bistro.test",
		Price:   9.99,
		CartIDs: []string{"not-hex", good.Hex(), "zzz"},
	}

	result, err := svc.Settle(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"not-hex", "zzz"}, result.SkippedCartIDs)
	assert.Equal(t, int64(1), result.DeletedCount)
	require.Len(t, carts.deleted, 1)
	assert.Equal(t, []primitive.ObjectID{good}, carts.deleted[0])

	// The stored record keeps the raw id list, skipped entries included.
	require.Len(t, payments.created, 1)
	assert.Equal(t, in.CartIDs, payments.created[0].CartIDs)
}

func TestSettleInsertFailureSkipsCleanup(t *testing.T) {
	payments := &fakePayments{createErr: errors.New("mongo down")}
	carts := &fakeCarts{}
	svc := NewPaymentService(&fakeIntents{}, payments, carts)

	_, err := svc.Settle(context.Background(), PaymentInput{
		Email:   "guest@bistro.test",
		Price:   5,
		CartIDs: []string{primitive.NewObjectID().Hex()},
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCartCleanup)
	assert.Empty(t, carts.deleted, "cleanup must not run when the insert fails")
}

func TestSettleCleanupFailureKeepsPayment(t *testing.T) {
	payments := &fakePayments{}
	carts := &fakeCarts{deleteErr: errors.New("mongo down")}
	svc := NewPaymentService(&fakeIntents{}, payments, carts)

	result, err := svc.Settle(context.Background(), PaymentInput{
		Email:   "guest@bistro.test",
		Price:   5,
		CartIDs: []string{primitive.NewObjectID().Hex()},
	})

	require.ErrorIs(t, err, ErrCartCleanup)
	assert.Equal(t, payments.id.Hex(), result.InsertedID, "partial result still names the payment")
	assert.Len(t, payments.created, 1, "the payment record stands")
}

func TestParseObjectIDs(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	ids, skipped := parseObjectIDs([]string{a.Hex(), "bogus", b.Hex()})

	assert.Equal(t, []primitive.ObjectID{a, b}, ids)
	assert.Equal(t, []string{"bogus"}, skipped)

	ids, skipped = parseObjectIDs(nil)
	assert.Empty(t, ids)
	assert.Empty(t, skipped)
}
