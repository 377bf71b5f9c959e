package dto

import (
	"grandromeo/internal/domains/payment/model"
	"grandromeo/shared"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	gModel "grandromeo/shared/model"
	"grandromeo/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	ReservationID string  `json:"reservation_id" validate:"required"`
	PaymentDate   string  `json:"payment_date"   validate:"omitempty,datetime=2006-01-02"`
	AmountPaid    float64 `json:"amount_paid"    validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=Cash 'Credit Card' 'Debit Card' 'Bank Transfer' E-Wallet"`
	TransactionID *string `json:"transaction_id" validate:"omitempty,max=100"`
	PaymentStatus string  `json:"payment_status" validate:"omitempty,oneof=Pending Completed Failed Refunded"`
	Notes         *string `json:"notes"          validate:"omitempty,max=500"`
	ReceiptNumber *string `json:"receipt_number" validate:"omitempty,max=100"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	status := model.StatusCompleted
	if c.PaymentStatus != "" {
		status = c.PaymentStatus
	}

	paymentDate := c.PaymentDate
	if paymentDate == "" {
		paymentDate = timezone.Format(timezone.Now(), constant.CalendarFormat)
	}

	return model.Payment{
		PaymentID:     uuid.NewString(),
		ReservationID: c.ReservationID,
		PaymentDate:   paymentDate,
		AmountPaid:    c.AmountPaid,
		PaymentMethod: c.PaymentMethod,
		TransactionID: c.TransactionID,
		PaymentStatus: status,
		Notes:         c.Notes,
		ReceiptNumber: c.ReceiptNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	PaymentDate   string   `db:"payment_date"   json:"payment_date"   validate:"omitempty,datetime=2006-01-02"`
	AmountPaid    *float64 `db:"amount_paid"    json:"amount_paid"    validate:"omitempty,gt=0"`
	PaymentMethod string   `db:"payment_method" json:"payment_method" validate:"omitempty,oneof=Cash 'Credit Card' 'Debit Card' 'Bank Transfer' E-Wallet"`
	TransactionID *string  `db:"transaction_id" json:"transaction_id" validate:"omitempty,max=100"`
	PaymentStatus string   `db:"payment_status" json:"payment_status" validate:"omitempty,oneof=Pending Completed Failed Refunded"`
	RefundAmount  *float64 `db:"refund_amount"  json:"refund_amount"  validate:"omitempty,gte=0"`
	Notes         *string  `db:"notes"          json:"notes"          validate:"omitempty,max=500"`
	ReceiptNumber *string  `db:"receipt_number" json:"receipt_number" validate:"omitempty,max=100"`
}

type PaymentResponse struct {
	PaymentID     string  `json:"payment_id"`
	ReservationID string  `json:"reservation_id"`
	PaymentDate   string  `json:"payment_date"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID *string `json:"transaction_id"`
	PaymentStatus string  `json:"payment_status"`
	RefundAmount  float64 `json:"refund_amount"`
	Notes         *string `json:"notes"`
	ReceiptNumber *string `json:"receipt_number"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.PaymentID = model.PaymentID
	r.ReservationID = model.ReservationID
	r.PaymentDate = model.PaymentDate
	r.AmountPaid = model.AmountPaid
	r.PaymentMethod = model.PaymentMethod
	r.TransactionID = model.TransactionID
	r.PaymentStatus = model.PaymentStatus
	r.RefundAmount = model.RefundAmount
	r.Notes = model.Notes
	r.ReceiptNumber = model.ReceiptNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
