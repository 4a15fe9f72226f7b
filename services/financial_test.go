package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

func seedBill(t *testing.T, db *gorm.DB, studentID uint, amount float64, status string, due time.Time) *models.Bill {
	t.Helper()
	bill := models.Bill{
		StudentID:   studentID,
		Description: "Tuition - Fall",
		Amount:      amount,
		DueDate:     due,
		Status:      status,
		BillType:    "tuition",
	}
	require.NoError(t, db.Create(&bill).Error)
	return &bill
}

func payDay() time.Time {
	return time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
}

func TestCreatePayment(t *testing.T) {
	t.Run("partial then settling payment flips the bill to paid", func(t *testing.T) {
		db := testDB(t)
		student := seedStudent(t, db, 0, 169)
		bill := seedBill(t, db, student.ID, 1000, models.BillPending, payDay().AddDate(0, 1, 0))

		first, err := CreatePayment(db, student, PaymentInput{
			BillID: bill.ID, Amount: 600, PaymentDate: payDay(), Method: "card",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, first.TransactionReference) // generated when absent

		var after models.Bill
		require.NoError(t, db.First(&after, bill.ID).Error)
		assert.Equal(t, models.BillPending, after.Status)

		_, err = CreatePayment(db, student, PaymentInput{
			BillID: bill.ID, Amount: 400, PaymentDate: payDay(), Method: "transfer",
			TransactionReference: "TX-1234",
		})
		require.NoError(t, err)

		require.NoError(t, db.First(&after, bill.ID).Error)
		assert.Equal(t, models.BillPaid, after.Status)

		_, paid, remaining, err := BillDetails(db, student, bill.ID)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, paid)
		assert.Equal(t, 0.0, remaining)
	})

	t.Run("caller-supplied reference is kept", func(t *testing.T) {
		db := testDB(t)
		student := seedStudent(t, db, 0, 169)
		bill := seedBill(t, db, student.ID, 500, models.BillPending, payDay())

		p, err := CreatePayment(db, student, PaymentInput{
			BillID: bill.ID, Amount: 100, PaymentDate: payDay(), Method: "cash",
			TransactionReference: "RECEIPT-7",
		})
		require.NoError(t, err)
		assert.Equal(t, "RECEIPT-7", p.TransactionReference)
	})

	t.Run("another student's bill leaves no payment row", func(t *testing.T) {
		db := testDB(t)
		student := seedStudent(t, db, 0, 169)
		other := seedStudentWith(t, db, "SE-0009", 0, 169)
		foreign := seedBill(t, db, other.ID, 300, models.BillPending, payDay())

		_, err := CreatePayment(db, student, PaymentInput{
			BillID: foreign.ID, Amount: 300, PaymentDate: payDay(), Method: "card",
		})
		assert.ErrorIs(t, err, ErrBillNotFound)

		var count int64
		require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("cancelled bill never flips to paid", func(t *testing.T) {
		db := testDB(t)
		student := seedStudent(t, db, 0, 169)
		bill := seedBill(t, db, student.ID, 200, models.BillCancelled, payDay())

		_, err := CreatePayment(db, student, PaymentInput{
			BillID: bill.ID, Amount: 200, PaymentDate: payDay(), Method: "card",
		})
		require.NoError(t, err)

		var after models.Bill
		require.NoError(t, db.First(&after, bill.ID).Error)
		assert.Equal(t, models.BillCancelled, after.Status)
	})
}

func TestBillDetails(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	bill := seedBill(t, db, student.ID, 750, models.BillPending, payDay())

	_, err := CreatePayment(db, student, PaymentInput{
		BillID: bill.ID, Amount: 250, PaymentDate: payDay(), Method: "card",
	})
	require.NoError(t, err)

	got, paid, remaining, err := BillDetails(db, student, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, bill.ID, got.ID)
	assert.Equal(t, 250.0, paid)
	assert.Equal(t, 500.0, remaining)

	_, _, _, err = BillDetails(db, student, bill.ID+100)
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestSummarizeFinances(t *testing.T) {
	db := testDB(t)
	student := seedStudent(t, db, 0, 169)
	now := payDay()

	seedBill(t, db, student.ID, 1000, models.BillPaid, now.AddDate(0, -2, 0))
	seedBill(t, db, student.ID, 400, models.BillPending, now.AddDate(0, 1, 0))
	seedBill(t, db, student.ID, 300, models.BillPending, now.AddDate(0, -1, 0)) // past due
	seedBill(t, db, student.ID, 900, models.BillCancelled, now.AddDate(0, -1, 0))

	sum, err := SummarizeFinances(db, student, now)
	require.NoError(t, err)

	assert.Equal(t, 2600.0, sum.TotalBills)
	assert.Equal(t, 1000.0, sum.TotalPaid)
	assert.Equal(t, 1, sum.PaidBills)
	assert.Equal(t, 1, sum.PendingBills)
	assert.Equal(t, 1, sum.OverdueBills)
	assert.Equal(t, 700.0, sum.OutstandingBalance)
}

func TestBillIsOverdue(t *testing.T) {
	now := payDay()
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	assert.True(t, (&models.Bill{DueDate: past, Status: models.BillPending}).IsOverdue(now))
	assert.False(t, (&models.Bill{DueDate: future, Status: models.BillPending}).IsOverdue(now))
	assert.False(t, (&models.Bill{DueDate: past, Status: models.BillPaid}).IsOverdue(now))
	assert.False(t, (&models.Bill{DueDate: past, Status: models.BillCancelled}).IsOverdue(now))
}
