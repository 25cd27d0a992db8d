package dto

import (
	"bagpackers/internal/domains/payment/model"
	gDto "bagpackers/shared/dto"
)

type CreateOrderRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}

type VerifyPaymentRequest struct {
	BookingID         string `json:"booking_id"          validate:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id"   validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature"  validate:"required"`
}

type PaymentResponse struct {
	ID                string `json:"id"`
	BookingID         string `json:"booking_id"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	Status            string `json:"status"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.RazorpayOrderID = model.RazorpayOrderID
	r.RazorpayPaymentID = model.RazorpayPaymentID
	r.Amount = model.Amount
	r.Currency = model.Currency
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type CreateOrderResponse struct {
	OrderID  string          `json:"order_id"`
	Amount   int64           `json:"amount"`
	Currency string          `json:"currency"`
	Payment  PaymentResponse `json:"payment"`
}

type VerifyPaymentResponse struct {
	Success bool            `json:"success"`
	Payment PaymentResponse `json:"payment"`
}
