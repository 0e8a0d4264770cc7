package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, Date("2024-02-29"), d)

	for _, bad := range []string{"", "2024-13-01", "2023-02-29", "01/02/2024", "2024-1-5"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Date("2024-01-05"), d)

	require.NoError(t, d.Scan([]byte("2024-01-06T00:00:00Z")))
	assert.Equal(t, Date("2024-01-06"), d)

	require.NoError(t, d.Scan(nil))
	assert.Equal(t, Date(""), d)

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := Date("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = Date("2024-01-05").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", v)
}

func TestCreateShapesApplyStatusDefaults(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	amount := 100.0

	cp := CustomerPackageCreate{CustomerID: "c1", PackageID: "p1", PurchaseDate: "2024-01-01", AmountPaid: &amount, PaymentMethod: "pix"}.Build("cp1", created)
	assert.Equal(t, CustomerPackageActive, cp.Status)
	assert.Equal(t, 100.0, cp.AmountPaid)
	assert.Equal(t, created, cp.CreatedAt)

	cp = CustomerPackageCreate{Status: "expired"}.Build("cp2", created)
	assert.Equal(t, CustomerPackageExpired, cp.Status)

	a := AppointmentCreate{CustomerID: "c1", PackageID: "p1", Date: "2024-01-02", Time: "10:00", ServiceType: "pilates"}.Build("a1", created)
	assert.Equal(t, AppointmentScheduled, a.Status)
	assert.Nil(t, a.Instructor)
}
