package partner

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bagpackers/infras/otel"
	"bagpackers/internal/domains/partner/model/dto"
	"bagpackers/internal/domains/partner/service"
	"bagpackers/shared/constant"
	"bagpackers/shared/validator"
	"bagpackers/transport/http/response"
)

type Handler struct {
	service service.Partner
	otel    otel.Otel
}

func New(service service.Partner, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/partners", func(routerGroup chi.Router) {
		routerGroup.Post("/register", handler.Register)
	})
}

// Register handles partner applications.
// @Summary Register a partner
// @Description Submit a partner application for review.
// @Tags Partner
// @Accept json
// @Produce json
// @Param request body dto.RegisterPartnerRequest true "Register Partner Request"
// @Success 201 {object} dto.PartnerResponse "Partner registered successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/partners/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterPartnerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register partner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Partner registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
