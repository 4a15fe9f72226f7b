package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

// ErrBillNotFound covers both a missing bill and a bill owned by another
// student; callers cannot tell the two apart.
var ErrBillNotFound = errors.New("bill not found")

// PaymentInput is the validated payload for recording a payment.
type PaymentInput struct {
	BillID               uint
	Amount               float64
	PaymentDate          time.Time
	Method               string
	TransactionReference string
	Notes                string
}

// CreatePayment records a payment and settles the bill inside one
// transaction: lock the bill row, insert, then flip the bill to paid when the
// payment sum reaches its amount. The row lock serializes concurrent payments
// against the same bill, so the settling payment always sees the full sum.
func CreatePayment(db *gorm.DB, student *models.Student, in PaymentInput) (*models.Payment, error) {
	ref := in.TransactionReference
	if ref == "" {
		ref = uuid.NewString()
	}

	payment := models.Payment{
		StudentID:            student.ID,
		BillID:               in.BillID,
		Amount:               in.Amount,
		PaymentDate:          in.PaymentDate,
		Method:               in.Method,
		TransactionReference: ref,
		Notes:                in.Notes,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var bill models.Bill
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND student_id = ?", in.BillID, student.ID).First(&bill).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBillNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		paid, err := billPaidSum(tx, bill.ID)
		if err != nil {
			return err
		}
		if paid >= bill.Amount && bill.Status != models.BillCancelled {
			if err := tx.Model(&bill).Update("status", models.BillPaid).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// BillDetails loads one bill of the student with its payments and derived totals.
func BillDetails(db *gorm.DB, student *models.Student, billID uint) (*models.Bill, float64, float64, error) {
	var bill models.Bill
	err := db.Preload("Payments").
		Where("id = ? AND student_id = ?", billID, student.ID).
		First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, 0, ErrBillNotFound
	}
	if err != nil {
		return nil, 0, 0, err
	}

	var paid float64
	for _, p := range bill.Payments {
		paid += p.Amount
	}
	remaining := bill.Amount - paid
	if remaining < 0 {
		remaining = 0
	}
	return &bill, paid, remaining, nil
}

// FinancialSummary aggregates a student's bills for the summary endpoint.
type FinancialSummary struct {
	TuitionFees        float64 `json:"tuition_fees"`
	TotalBills         float64 `json:"total_bills"`
	TotalPaid          float64 `json:"total_paid"`
	PendingBills       int     `json:"pending_bills"`
	OverdueBills       int     `json:"overdue_bills"`
	PaidBills          int     `json:"paid_bills"`
	OutstandingBalance float64 `json:"outstanding_balance"`
}

func SummarizeFinances(db *gorm.DB, student *models.Student, now time.Time) (*FinancialSummary, error) {
	var bills []models.Bill
	if err := db.Where("student_id = ?", student.ID).Find(&bills).Error; err != nil {
		return nil, err
	}

	sum := FinancialSummary{TuitionFees: student.TuitionFees}
	for _, b := range bills {
		sum.TotalBills += b.Amount
		switch {
		case b.Status == models.BillPaid:
			sum.TotalPaid += b.Amount
			sum.PaidBills++
		case b.Status == models.BillCancelled:
			// cancelled bills count toward nothing
		case b.IsOverdue(now):
			sum.OverdueBills++
			sum.OutstandingBalance += b.Amount
		default:
			sum.PendingBills++
			sum.OutstandingBalance += b.Amount
		}
	}
	return &sum, nil
}

func billPaidSum(tx *gorm.DB, billID uint) (float64, error) {
	var paid *float64
	err := tx.Model(&models.Payment{}).
		Where("bill_id = ?", billID).
		Select("SUM(amount)").
		Scan(&paid).Error
	if err != nil {
		return 0, err
	}
	if paid == nil {
		return 0, nil
	}
	return *paid, nil
}
