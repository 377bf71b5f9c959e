package model

import "grandromeo/shared/model"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldPaymentID     = "payment_id"
	FieldReservationID = "reservation_id"
	FieldPaymentDate   = "payment_date"
	FieldAmountPaid    = "amount_paid"
	FieldPaymentMethod = "payment_method"
	FieldTransactionID = "transaction_id"
	FieldPaymentStatus = "payment_status"
	FieldRefundAmount  = "refund_amount"
	FieldNotes         = "notes"
	FieldReceiptNumber = "receipt_number"
)

const (
	MethodCash         = "Cash"
	MethodCreditCard   = "Credit Card"
	MethodDebitCard    = "Debit Card"
	MethodBankTransfer = "Bank Transfer"
	MethodEWallet      = "E-Wallet"
)

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusFailed    = "Failed"
	StatusRefunded  = "Refunded"
)

// Payment is an append-only money record. Recording a payment never moves
// the owning reservation's status; the two are reconciled by hand.
type Payment struct {
	PaymentID     string  `db:"payment_id"`
	ReservationID string  `db:"reservation_id"`
	PaymentDate   string  `db:"payment_date"`
	AmountPaid    float64 `db:"amount_paid"`
	PaymentMethod string  `db:"payment_method"`
	TransactionID *string `db:"transaction_id"`
	PaymentStatus string  `db:"payment_status"`
	RefundAmount  float64 `db:"refund_amount"`
	Notes         *string `db:"notes"`
	ReceiptNumber *string `db:"receipt_number"`
	model.Metadata
}
