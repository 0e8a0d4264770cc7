package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fitmanager-backend/models"
	"fitmanager-backend/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixedClock returns a clock that advances by one second on every call.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%02d", n)
	}
}

func newTestServices(t *testing.T) (*Services, *repositories.Store) {
	t.Helper()
	store := repositories.NewMemoryStore()
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	return New(store, zap.NewNop(), WithClock(fixedClock(start)), WithIDGenerator(sequentialIDs())), store
}

func customerInput(name string) models.CustomerCreate {
	return models.CustomerCreate{
		Name: name, CPF: "000.000.000-00", Email: name + "@example.com", Phone: "555-0100",
		Address: "Rua das Flores 1", BirthDate: "1990-05-01",
	}
}

func float(v float64) *float64 { return &v }

func TestCreateAssignsIdentityAndCreationTime(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	a, err := svc.Customers.Create(ctx, customerInput("ana"))
	require.NoError(t, err)
	b, err := svc.Customers.Create(ctx, customerInput("bia"))
	require.NoError(t, err)

	assert.Equal(t, "id-01", a.ID)
	assert.Equal(t, "id-02", b.ID)
	assert.Equal(t, time.UTC, a.CreatedAt.Location())
	assert.True(t, a.CreatedAt.Before(b.CreatedAt))

	got, err := svc.Customers.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestListReturnsCreationOrder(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	for _, name := range []string{"carla", "ana", "bia"} {
		_, err := svc.Customers.Create(ctx, customerInput(name))
		require.NoError(t, err)
	}

	customers, err := svc.Customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "carla", customers[0].Name)
	assert.Equal(t, "bia", customers[2].Name)
}

func TestUpdateReplacesFieldsAndKeepsIdentity(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	notes := "asthma"
	in := customerInput("ana")
	in.MedicalNotes = &notes
	created, err := svc.Customers.Create(ctx, in)
	require.NoError(t, err)

	replacement := customerInput("ana maria")
	updated, err := svc.Customers.Update(ctx, created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "ana maria", updated.Name)
	assert.Nil(t, updated.MedicalNotes, "omitted optional fields are cleared")

	got, err := svc.Customers.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateUnknownIDCreatesNothing(t *testing.T) {
	svc, store := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Customers.Update(ctx, "ghost", customerInput("ana"))
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	n, err := store.Customers.Count(ctx, repositories.Query{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteRemovesOnlyTheEntity(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	customer, err := svc.Customers.Create(ctx, customerInput("ana"))
	require.NoError(t, err)
	pkg, err := svc.Packages.Create(ctx, models.PackageCreate{Name: "Monthly", Type: models.PackageTypeMonthly, Price: float(199.9), Description: "gym"})
	require.NoError(t, err)
	cp, err := svc.CustomerPackages.Create(ctx, models.CustomerPackageCreate{
		CustomerID: customer.ID, PackageID: pkg.ID, PurchaseDate: "2024-03-01", AmountPaid: float(199.9), PaymentMethod: "card",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Customers.Delete(ctx, customer.ID))
	_, err = svc.Customers.GetByID(ctx, customer.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, svc.Customers.Delete(ctx, customer.ID), repositories.ErrNotFound)

	// dependents keep their dangling reference
	got, err := svc.CustomerPackages.GetByID(ctx, cp.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, got.CustomerID)
}

func TestCreateDoesNotCheckReferences(t *testing.T) {
	svc, _ := newTestServices(t)

	p, err := svc.Payments.Create(context.Background(), models.PaymentCreate{
		CustomerPackageID: "does-not-exist", Amount: float(0), PaymentDate: "2024-03-01", PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Amount)
}

func TestListByCustomer(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	ana, err := svc.Customers.Create(ctx, customerInput("ana"))
	require.NoError(t, err)
	bia, err := svc.Customers.Create(ctx, customerInput("bia"))
	require.NoError(t, err)

	for _, customerID := range []string{ana.ID, bia.ID, ana.ID} {
		_, err := svc.CustomerPackages.Create(ctx, models.CustomerPackageCreate{
			CustomerID: customerID, PackageID: "p", PurchaseDate: "2024-03-01", AmountPaid: float(10), PaymentMethod: "cash",
		})
		require.NoError(t, err)
	}

	packages, err := svc.CustomerPackages.ListByCustomer(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, packages, 2)
	for _, cp := range packages {
		assert.Equal(t, ana.ID, cp.CustomerID)
		assert.Equal(t, models.CustomerPackageActive, cp.Status)
	}
	assert.True(t, packages[0].CreatedAt.Before(packages[1].CreatedAt))

	_, err = svc.CustomerPackages.ListByCustomer(ctx, "ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestListByDate(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	for _, date := range []models.Date{"2024-01-15", "2024-01-16", "2024-01-15"} {
		_, err := svc.Appointments.Create(ctx, models.AppointmentCreate{
			CustomerID: "c", PackageID: "p", Date: date, Time: "09:00", ServiceType: "pilates",
		})
		require.NoError(t, err)
	}

	appointments, err := svc.Appointments.ListByDate(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Len(t, appointments, 2)

	appointments, err = svc.Appointments.ListByDate(ctx, "2024-02-01")
	require.NoError(t, err)
	assert.NotNil(t, appointments)
	assert.Empty(t, appointments)
}

func TestListByCustomerPackage(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	cp, err := svc.CustomerPackages.Create(ctx, models.CustomerPackageCreate{
		CustomerID: "c", PackageID: "p", PurchaseDate: "2024-03-01", AmountPaid: float(10), PaymentMethod: "cash",
	})
	require.NoError(t, err)
	_, err = svc.Payments.Create(ctx, models.PaymentCreate{CustomerPackageID: cp.ID, Amount: float(10), PaymentDate: "2024-03-01", PaymentMethod: "cash"})
	require.NoError(t, err)
	_, err = svc.Payments.Create(ctx, models.PaymentCreate{CustomerPackageID: "other", Amount: float(5), PaymentDate: "2024-03-01", PaymentMethod: "cash"})
	require.NoError(t, err)

	payments, err := svc.Payments.ListByCustomerPackage(ctx, cp.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, cp.ID, payments[0].CustomerPackageID)

	_, err = svc.Payments.ListByCustomerPackage(ctx, "ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

type failingRepo[T repositories.Entity] struct {
	repositories.Repository[T]
	err error
}

func (r failingRepo[T]) Get(context.Context, string) (T, error) {
	var zero T
	return zero, r.err
}

func TestStorageFailuresAreWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	repo := failingRepo[models.Package]{Repository: repositories.NewMemoryRepository[models.Package](), err: boom}
	svc := NewCRUDService[models.Package, models.PackageCreate](repo, "package", zap.NewNop())

	_, err := svc.GetByID(context.Background(), "x")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, repositories.ErrNotFound)
}

func TestCreatedAtNeverPrecedesRequestStart(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := New(store, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		start := time.Now()
		c, err := svc.Customers.Create(ctx, customerInput("ana"))
		require.NoError(t, err)
		require.False(t, c.CreatedAt.Before(start), "created_at %s before start %s", c.CreatedAt, start)
		require.Equal(t, c.CreatedAt, c.CreatedAt.Truncate(time.Microsecond))
	}
}

func TestCreatedAtRoundsUpToMicrosecond(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 1500, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 2000, time.UTC), createdAt(now))

	exact := time.Date(2024, 3, 10, 12, 0, 0, 3000, time.UTC)
	assert.Equal(t, exact, createdAt(exact))
}
