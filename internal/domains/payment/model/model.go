package model

import "bagpackers/shared/model"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID                = "id"
	FieldBookingID         = "booking_id"
	FieldRazorpayOrderID   = "razorpay_order_id"
	FieldRazorpayPaymentID = "razorpay_payment_id"
	FieldRazorpaySignature = "razorpay_signature"
	FieldAmount            = "amount"
	FieldCurrency          = "currency"
	FieldStatus            = "status"

	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"

	CurrencyINR = "INR"
)

type Payment struct {
	ID                string `db:"id"`
	BookingID         string `db:"booking_id"`
	RazorpayOrderID   string `db:"razorpay_order_id"`
	RazorpayPaymentID string `db:"razorpay_payment_id"`
	RazorpaySignature string `db:"razorpay_signature"`
	Amount            string `db:"amount"`
	Currency          string `db:"currency"`
	Status            string `db:"status"`
	model.Metadata
}
