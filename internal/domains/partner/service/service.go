package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"bagpackers/config"
	"bagpackers/infras/otel"
	"bagpackers/internal/domains/partner/model/dto"
	"bagpackers/internal/domains/partner/repository"
	"bagpackers/shared/constant"
)

type Partner interface {
	Register(ctx context.Context, req dto.RegisterPartnerRequest) (dto.PartnerResponse, error)
}

type serviceImpl struct {
	repo repository.Partner
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Partner, cfg *config.Config, otel otel.Otel) Partner {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterPartnerRequest) (res dto.PartnerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	partner, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("partner registration rejected")

		return res, err
	}

	if err = s.repo.Insert(ctx, partner); err != nil {
		log.Error().Err(err).Msg("failed to register partner")

		return res, fmt.Errorf("failed to register partner: %w", err)
	}

	scope.AddEvent("partner registered: " + partner.ID)

	res.FromModel(partner)

	return res, nil
}
