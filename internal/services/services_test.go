package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/calc-backend/internal/db"
	"github.com/baharkarakas/calc-backend/internal/metrics"
	"github.com/baharkarakas/calc-backend/internal/models"
	"github.com/baharkarakas/calc-backend/internal/services"
)

type fixture struct {
	users *services.UserService
	calcs *services.CalculationService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store, err := db.Open(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "svc.db"), db.Options{Migrate: true})
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return fixture{
		users: services.NewUserService(store.Repos.Users),
		calcs: services.NewCalculationService(store.Repos.Calculations, store.Repos.Users),
	}
}

func ptr[T any](v T) *T { return &v }

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	got, err := f.users.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.LoginsFailed)

	_, wrongPassword := f.users.Login(ctx, "alice", "nope")
	_, unknownUser := f.users.Login(ctx, "nobody", "secret1")

	assert.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.LoginsFailed))
}

func TestRegisterDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = f.users.Register(ctx, "alice", "fresh@x.com", "secret1")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	_, err = f.users.Register(ctx, "fresh", "alice@x.com", "secret1")
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	_, err = f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
}

func TestRegisterStoresUsernameAsGiven(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.Register(ctx, "  ab  ", "ab@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "  ab  ", u.Username)

	_, err = f.users.Login(ctx, "  ab  ", "secret1")
	assert.NoError(t, err)
	_, err = f.users.Login(ctx, "ab", "secret1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestGetUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	got, err := f.users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = f.users.Get(ctx, u.ID+1)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestCreateCalculation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	c, err := f.calcs.Create(ctx, u.ID, "add", 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 8.0, c.Result)
	assert.Equal(t, u.ID, c.UserID)
}

func TestCreateCalculation_UnknownUserWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.calcs.Create(ctx, 404, "add", 1, 2)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	all, err := f.calcs.List(ctx, models.CalculationFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateCalculation_DivisionByZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.CalculationsRejected.WithLabelValues("division_by_zero"))
	_, err = f.calcs.Create(ctx, u.ID, "divide", 10, 0)
	assert.ErrorIs(t, err, services.ErrDivisionByZero)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CalculationsRejected.WithLabelValues("division_by_zero")))
}

func TestCalculation_OutOfRangeWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = f.calcs.Create(ctx, u.ID, "multiply", 1e308, 10)
	assert.ErrorIs(t, err, services.ErrResultOutOfRange)

	all, err := f.calcs.List(ctx, models.CalculationFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)

	c, err := f.calcs.Create(ctx, u.ID, "multiply", 1e308, 1)
	require.NoError(t, err)
	_, err = f.calcs.Update(ctx, c.ID, models.CalculationPatch{Operand2: ptr(10.0)})
	assert.ErrorIs(t, err, services.ErrResultOutOfRange)

	got, err := f.calcs.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Operand2)
}

func TestUpdateRecomputesResult(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	c, err := f.calcs.Create(ctx, u.ID, "add", 5, 3)
	require.NoError(t, err)

	c, err = f.calcs.Update(ctx, c.ID, models.CalculationPatch{Operation: ptr("multiply")})
	require.NoError(t, err)
	assert.Equal(t, 15.0, c.Result)
	assert.Equal(t, 5.0, c.Operand1)
	assert.Equal(t, 3.0, c.Operand2)

	c, err = f.calcs.Update(ctx, c.ID, models.CalculationPatch{Operand1: ptr(10.0)})
	require.NoError(t, err)
	assert.Equal(t, 30.0, c.Result)

	c, err = f.calcs.Update(ctx, c.ID, models.CalculationPatch{})
	require.NoError(t, err)
	assert.Equal(t, 30.0, c.Result)

	stored, err := f.calcs.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "multiply", stored.Operation)
	assert.Equal(t, 30.0, stored.Result)
}

func TestUpdateDivisionByZeroAfterMerge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	c, err := f.calcs.Create(ctx, u.ID, "divide", 10, 2)
	require.NoError(t, err)

	_, err = f.calcs.Update(ctx, c.ID, models.CalculationPatch{Operand2: ptr(0.0)})
	assert.ErrorIs(t, err, services.ErrDivisionByZero)

	stored, err := f.calcs.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, stored.Operand2)
	assert.Equal(t, 5.0, stored.Result)
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.calcs.Update(ctx, 99, models.CalculationPatch{Operand1: ptr(1.0)})
	assert.ErrorIs(t, err, services.ErrCalculationNotFound)

	assert.ErrorIs(t, f.calcs.Delete(ctx, 99), services.ErrCalculationNotFound)
	_, err = f.calcs.Get(ctx, 99)
	assert.ErrorIs(t, err, services.ErrCalculationNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	c, err := f.calcs.Create(ctx, u.ID, "subtract", 10, 4)
	require.NoError(t, err)

	require.NoError(t, f.calcs.Delete(ctx, c.ID))
	_, err = f.calcs.Get(ctx, c.ID)
	assert.ErrorIs(t, err, services.ErrCalculationNotFound)
}

func TestListClampsFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, err := f.users.Register(ctx, "alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := f.calcs.Create(ctx, u.ID, "add", float64(i), 1)
		require.NoError(t, err)
	}

	all, err := f.calcs.List(ctx, models.CalculationFilter{Skip: -5, Limit: 0})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	other := u.ID + 1
	none, err := f.calcs.List(ctx, models.CalculationFilter{UserID: &other})
	require.NoError(t, err)
	assert.Empty(t, none)
}
