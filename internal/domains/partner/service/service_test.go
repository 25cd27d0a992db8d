package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bagpackers/config"
	"bagpackers/infras/otel/mocks"
	partnerMocks "bagpackers/internal/domains/partner/mocks"
	"bagpackers/internal/domains/partner/model"
	"bagpackers/internal/domains/partner/model/dto"
	"bagpackers/internal/domains/partner/service"
	"bagpackers/shared/failure"
)

func TestPartnerService_Register(t *testing.T) {
	validReq := dto.RegisterPartnerRequest{
		FullName:     "Asha Rao",
		Region:       "Karnataka",
		MobileNumber: "+91 98765-43210",
		Address:      "12 MG Road, Bengaluru",
	}

	tests := []struct {
		name      string
		req       dto.RegisterPartnerRequest
		setupMock func(repo *partnerMocks.MockPartner)
		wantErr   error
		wantAny   bool
	}{
		{
			name: "successful registration normalizes the mobile number",
			req:  validReq,
			setupMock: func(repo *partnerMocks.MockPartner) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, partner model.Partner) error {
						assert.Equal(t, "+919876543210", partner.MobileNumber)
						assert.Equal(t, model.StatusPending, partner.Status)
						assert.NotEmpty(t, partner.ID)

						return nil
					})
			},
		},
		{
			name: "bare ten digit mobile number",
			req: dto.RegisterPartnerRequest{
				FullName:     "Asha Rao",
				Region:       "Karnataka",
				MobileNumber: "9876543210",
				Address:      "12 MG Road",
			},
			setupMock: func(repo *partnerMocks.MockPartner) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "mobile number starting below six",
			req: dto.RegisterPartnerRequest{
				FullName:     "Asha Rao",
				Region:       "Karnataka",
				MobileNumber: "5876543210",
				Address:      "12 MG Road",
			},
			wantErr: dto.ErrInvalidMobileNumber,
		},
		{
			name: "mobile number too short",
			req: dto.RegisterPartnerRequest{
				FullName:     "Asha Rao",
				Region:       "Karnataka",
				MobileNumber: "98765",
				Address:      "12 MG Road",
			},
			wantErr: dto.ErrInvalidMobileNumber,
		},
		{
			name: "whitespace-only full name",
			req: dto.RegisterPartnerRequest{
				FullName:     "   ",
				Region:       "Karnataka",
				MobileNumber: "9876543210",
				Address:      "12 MG Road",
			},
			wantErr: dto.ErrBlankField,
		},
		{
			name: "whitespace-only address",
			req: dto.RegisterPartnerRequest{
				FullName:     "Asha Rao",
				Region:       "Karnataka",
				MobileNumber: "9876543210",
				Address:      "  ",
			},
			wantErr: dto.ErrBlankField,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func(repo *partnerMocks.MockPartner) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := partnerMocks.NewMockPartner(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(mockRepo)
			}

			svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

			res, err := svc.Register(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 400, failure.GetCode(err))
			case tt.wantAny:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, model.StatusPending, res.Status)
			}
		})
	}
}
