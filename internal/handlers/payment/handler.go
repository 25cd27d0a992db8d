package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bagpackers/infras/otel"
	"bagpackers/internal/domains/payment/model/dto"
	"bagpackers/internal/domains/payment/service"
	"bagpackers/shared/constant"
	"bagpackers/shared/validator"
	"bagpackers/transport/http/middleware"
	"bagpackers/transport/http/response"
)

type Handler struct {
	service        service.Payment
	authMiddleware middleware.Auth
	otel           otel.Otel
}

func New(service service.Payment, authMiddleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		authMiddleware: authMiddleware,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authMiddleware.Auth)
		routerGroup.Post("/create-order", handler.CreateOrder)
		routerGroup.Post("/verify", handler.VerifyPayment)
	})
}

// CreateOrder creates a payment order for a booking.
// @Summary Create a payment order
// @Description Create a gateway payment order for the given booking.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} dto.CreateOrderResponse "Order created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/create-order [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment order created successfully for booking " + req.BookingID)

	response.WithJSON(w, http.StatusCreated, res)
}

// VerifyPayment verifies a gateway payment signature for a booking.
// @Summary Verify a payment
// @Description Verify the gateway signature and confirm the booking on success.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} dto.VerifyPaymentResponse "Payment verified successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPayment")
	defer scope.End()

	req := dto.VerifyPaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Verify(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment verified successfully for booking " + req.BookingID)

	response.WithJSON(w, http.StatusOK, res)
}
