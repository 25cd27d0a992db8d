package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bagpackers/config"
	"bagpackers/infras/kafka"
	"bagpackers/infras/otel"
	"bagpackers/infras/razorpay"
	bookingModel "bagpackers/internal/domains/booking/model"
	bookingRepo "bagpackers/internal/domains/booking/repository"
	bookingService "bagpackers/internal/domains/booking/service"
	"bagpackers/internal/domains/payment/model"
	"bagpackers/internal/domains/payment/model/dto"
	"bagpackers/internal/domains/payment/repository"
	"bagpackers/shared"
	"bagpackers/shared/cache"
	"bagpackers/shared/constant"
	gDto "bagpackers/shared/dto"
	"bagpackers/shared/failure"
	gModel "bagpackers/shared/model"
	"bagpackers/shared/money"
	"bagpackers/shared/timezone"
)

const (
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentFailed    = "payment.failed"
)

var (
	ErrBookingNotFound  = failure.NotFound("booking")
	ErrPaymentNotFound  = failure.NotFound("payment record")
	ErrForbiddenBooking = failure.Forbidden("booking does not belong to the authenticated user")
	ErrInvalidSignature = failure.BadRequestFromString("invalid payment signature")
)

type paymentEvent struct {
	EventType  string    `json:"event_type"`
	BookingID  string    `json:"booking_id"`
	PaymentID  string    `json:"payment_id"`
	OrderID    string    `json:"order_id"`
	Amount     string    `json:"amount"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Payment interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	Verify(ctx context.Context, req dto.VerifyPaymentRequest) (dto.VerifyPaymentResponse, error)
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepo.Booking
	gateway     razorpay.Razorpay
	events      kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Payment,
	bookingRepo bookingRepo.Booking,
	gateway razorpay.Razorpay,
	events kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		events:      events,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return res, failure.Unauthorized("missing authenticated user") // nolint:wrapcheck
	}

	booking, err := s.loadOwnedBooking(ctx, req.BookingID, user)
	if err != nil {
		return res, err
	}

	amount, err := money.ToMinorUnits(booking.TotalCost)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to convert booking total to minor units")

		return res, fmt.Errorf("failed to convert booking total to minor units: %w", err)
	}

	order, err := s.gateway.CreateOrder(ctx, razorpay.CreateOrderRequest{
		Amount:   amount,
		Currency: model.CurrencyINR,
		Receipt:  fmt.Sprintf("booking_%s_%d", booking.ID, timezone.Now().UnixMilli()),
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to create payment order")

		return res, fmt.Errorf("failed to create payment order: %w", err)
	}

	payment := model.Payment{
		ID:              uuid.NewString(),
		BookingID:       booking.ID,
		RazorpayOrderID: order.ID,
		Amount:          booking.TotalCost,
		Currency:        model.CurrencyINR,
		Status:          model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to record payment order")

		return res, fmt.Errorf("failed to record payment order: %w", err)
	}

	scope.AddEvent("payment order created for booking " + booking.ID)

	res.OrderID = order.ID
	res.Amount = order.Amount
	res.Currency = order.Currency
	res.Payment.FromModel(payment)

	return res, nil
}

// Verify settles a checkout callback. The payment row is always written before
// the booking row: a failed signature persists the failed payment and nothing
// else, and a valid one persists the successful payment before the booking is
// confirmed. A crash between the two writes leaves a successful payment on a
// pending booking; the emitted event carries enough to reconcile that window.
// Repeat verifications are not deduplicated and rewrite the same terminal state.
func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyPaymentRequest) (res dto.VerifyPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		return res, failure.Unauthorized("missing authenticated user") // nolint:wrapcheck
	}

	booking, err := s.loadOwnedBooking(ctx, req.BookingID, user)
	if err != nil {
		return res, err
	}

	payment, err := s.repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.ID,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to load payment record")

		return res, fmt.Errorf("failed to load payment record: %w", err)
	}

	if payment.ID == "" {
		return res, ErrPaymentNotFound // nolint:wrapcheck
	}

	payment.RazorpayPaymentID = req.RazorpayPaymentID
	payment.RazorpaySignature = req.RazorpaySignature

	if !s.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		payment.Status = model.StatusFailed

		if err = s.persistPayment(ctx, payment, user); err != nil {
			return res, err
		}

		scope.AddEvent("payment signature rejected for booking " + booking.ID)
		s.publishOutcome(ctx, EventPaymentFailed, payment)

		return res, ErrInvalidSignature // nolint:wrapcheck
	}

	payment.Status = model.StatusSuccess

	if err = s.persistPayment(ctx, payment, user); err != nil {
		return res, err
	}

	confirm := map[string]any{
		bookingModel.FieldStatus: bookingModel.StatusConfirmed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.bookingRepo.Update(ctx, confirm, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName)); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to confirm booking")

		return res, fmt.Errorf("failed to confirm booking: %w", err)
	}

	scope.AddEvent("payment verified for booking " + booking.ID)
	s.publishOutcome(ctx, EventPaymentSucceeded, payment)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, bookingService.CacheMyBookings)
	}()

	res.Success = true
	res.Payment.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) loadOwnedBooking(ctx context.Context, bookingID, user string) (bookingModel.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to load booking")

		return booking, fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.ID == "" {
		return booking, ErrBookingNotFound // nolint:wrapcheck
	}

	if booking.UserID != user {
		return booking, ErrForbiddenBooking // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) persistPayment(ctx context.Context, payment model.Payment, user string) error {
	fields := map[string]any{
		model.FieldRazorpayPaymentID: payment.RazorpayPaymentID,
		model.FieldRazorpaySignature: payment.RazorpaySignature,
		model.FieldStatus:            payment.Status,
		constant.FieldModifiedAt:     timezone.Now(),
		constant.FieldModifiedBy:     user,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(payment.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("paymentID", payment.ID).Msg("failed to persist payment outcome")

		return fmt.Errorf("failed to persist payment outcome: %w", err)
	}

	return nil
}

// publishOutcome never fails the verification verdict; the kafka writer is
// async and delivery problems only get logged.
func (s *serviceImpl) publishOutcome(ctx context.Context, eventType string, payment model.Payment) {
	event := paymentEvent{
		EventType:  eventType,
		BookingID:  payment.BookingID,
		PaymentID:  payment.RazorpayPaymentID,
		OrderID:    payment.RazorpayOrderID,
		Amount:     payment.Amount,
		Status:     payment.Status,
		OccurredAt: timezone.Now(),
	}

	err := s.events.SendMessages(context.WithoutCancel(ctx), s.cfg.Kafka.Topics.PaymentEvents, kafka.Message{
		Key:   payment.BookingID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", payment.BookingID).Str("eventType", eventType).Msg("failed to publish payment event")
	}
}
