package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/services"
)

type FinancialHandler struct{}

func NewFinancialHandler() *FinancialHandler { return &FinancialHandler{} }

// GET /api/financial/summary
func (h *FinancialHandler) Summary(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}
	summary, err := services.SummarizeFinances(database.DB, student, time.Now())
	if err != nil {
		return err
	}
	return respondOK(c, summary)
}

// GET /api/financial/bills?status=
func (h *FinancialHandler) Bills(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}

	tx := database.DB.Where("student_id = ?", student.ID)
	if status := c.QueryParam("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	var bills []models.Bill
	if err := tx.Order("due_date DESC").Find(&bills).Error; err != nil {
		return err
	}

	now := time.Now()
	var totalPending, totalPaid, totalOverdue float64
	for _, b := range bills {
		switch {
		case b.Status == models.BillPaid:
			totalPaid += b.Amount
		case b.Status == models.BillCancelled:
		case b.IsOverdue(now):
			totalOverdue += b.Amount
		default:
			totalPending += b.Amount
		}
	}

	return respondOK(c, map[string]any{
		"bills":         bills,
		"total_pending": totalPending,
		"total_paid":    totalPaid,
		"total_overdue": totalOverdue,
	})
}

// GET /api/financial/bills/:id
func (h *FinancialHandler) ShowBill(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}
	billID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	bill, paid, remaining, err := services.BillDetails(database.DB, student, billID)
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			return respondError(c, http.StatusNotFound, "Bill not found")
		}
		return err
	}
	return respondOK(c, map[string]any{
		"bill":             bill,
		"total_paid":       paid,
		"remaining_amount": remaining,
		"is_overdue":       bill.IsOverdue(time.Now()),
	})
}

// GET /api/financial/payments
func (h *FinancialHandler) Payments(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}

	page := atoiOr(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}
	size := 20

	var payments []models.Payment
	err = database.DB.Preload("Bill").
		Where("student_id = ?", student.ID).
		Order("payment_date DESC").
		Limit(size).Offset((page - 1) * size).
		Find(&payments).Error
	if err != nil {
		return err
	}
	return respondOK(c, map[string]any{
		"payments": payments,
		"page":     page,
	})
}

type createPaymentReq struct {
	BillID               uint    `json:"bill_id" validate:"required"`
	Amount               float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate          string  `json:"payment_date" validate:"required"`
	Method               string  `json:"method" validate:"required,oneof=card transfer cash check online"`
	TransactionReference string  `json:"transaction_reference"`
	Notes                string  `json:"notes"`
}

// POST /api/financial/payments
func (h *FinancialHandler) CreatePayment(c echo.Context) error {
	student, err := currentStudent(c)
	if err != nil {
		return err
	}

	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid payload")
	}
	if fields := validateStruct(&req); fields != nil {
		return respondValidation(c, fields)
	}
	paymentDate, perr := time.Parse("2006-01-02", req.PaymentDate)
	if perr != nil {
		return respondValidation(c, map[string]string{"payment_date": "must be a valid date (YYYY-MM-DD)"})
	}

	payment, err := services.CreatePayment(database.DB, student, services.PaymentInput{
		BillID:               req.BillID,
		Amount:               req.Amount,
		PaymentDate:          paymentDate,
		Method:               req.Method,
		TransactionReference: req.TransactionReference,
		Notes:                req.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			return respondError(c, http.StatusNotFound, "Bill not found")
		}
		return err
	}

	if err := database.DB.Preload("Bill").First(payment, payment.ID).Error; err != nil {
		return err
	}
	return respondCreated(c, "Payment created successfully", payment)
}
