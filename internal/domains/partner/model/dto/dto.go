package dto

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"bagpackers/internal/domains/partner/model"
	gDto "bagpackers/shared/dto"
	"bagpackers/shared/failure"
	gModel "bagpackers/shared/model"
	"bagpackers/shared/timezone"
)

// Accepts +91XXXXXXXXXX, 91XXXXXXXXXX or a bare 10-digit number starting 6-9,
// after spaces and dashes are stripped.
var mobileNumberPattern = regexp.MustCompile(`^(\+91|91)?[6-9]\d{9}$`)

var (
	ErrBlankField          = failure.BadRequestFromString("full name, region and address cannot be blank")
	ErrInvalidMobileNumber = failure.BadRequestFromString("mobile number must be a valid Indian mobile number")
)

type RegisterPartnerRequest struct {
	FullName     string `json:"full_name"     validate:"required,max=255"`
	Region       string `json:"region"        validate:"required,max=255"`
	MobileNumber string `json:"mobile_number" validate:"required,max=20"`
	Address      string `json:"address"       validate:"required"`
}

func (r *RegisterPartnerRequest) ToModel() (model.Partner, error) {
	fullName := strings.TrimSpace(r.FullName)
	region := strings.TrimSpace(r.Region)
	address := strings.TrimSpace(r.Address)

	if fullName == "" || region == "" || address == "" {
		return model.Partner{}, ErrBlankField
	}

	mobile := strings.NewReplacer(" ", "", "-", "").Replace(r.MobileNumber)
	if !mobileNumberPattern.MatchString(mobile) {
		return model.Partner{}, ErrInvalidMobileNumber
	}

	return model.Partner{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Region:       region,
		MobileNumber: mobile,
		Address:      address,
		Status:       model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type PartnerResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Region       string `json:"region"`
	MobileNumber string `json:"mobile_number"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *PartnerResponse) FromModel(model model.Partner) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Region = model.Region
	r.MobileNumber = model.MobileNumber
	r.Address = model.Address
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}
