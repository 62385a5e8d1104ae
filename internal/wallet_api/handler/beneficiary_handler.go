package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/chari-wallet-mock/internal/domain/beneficiary"
	"github.com/chari-wallet-mock/internal/pagination"
	"github.com/chari-wallet-mock/internal/wallet_api/service"
)

// BeneficiaryHandler handles HTTP requests for saved transfer destinations
type BeneficiaryHandler struct {
	beneficiaryService service.BeneficiaryService
	logger             *slog.Logger
}

// NewBeneficiaryHandler creates a new beneficiary handler
func NewBeneficiaryHandler(logger *slog.Logger, beneficiaryService service.BeneficiaryService) *BeneficiaryHandler {
	return &BeneficiaryHandler{
		beneficiaryService: beneficiaryService,
		logger:             logger,
	}
}

// List returns one page of saved beneficiaries
func (h *BeneficiaryHandler) List(c *gin.Context) {
	q := pagination.Query{
		Limit:  c.Query("pageSize"),
		Offset: c.Query("offset"),
		Page:   c.Query("pageNumber"),
	}

	items, meta, err := h.beneficiaryService.List(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidLimit) {
			RespondBadRequest(c, "pageSize must be greater than zero")
			return
		}
		h.logger.Error("Failed to list beneficiaries", "error", err)
		RespondInternalError(c)
		return
	}

	responses := make([]BeneficiaryResponse, len(items))
	for i, b := range items {
		responses[i] = newBeneficiaryResponse(b)
	}
	RespondOK(c, BeneficiaryListResponse{
		Beneficiaries: responses,
		Pagination:    meta,
	})
}

// Create validates and stores a new beneficiary. A phone number or a RIB is
// required; with neither there is nothing to transfer to.
func (h *BeneficiaryHandler) Create(c *gin.Context) {
	var req CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.PhoneNumber != "" && !validPhone(req.PhoneNumber) {
		RespondBadRequest(c, "phoneNumber must match +<8..15 digits>")
		return
	}

	created, err := h.beneficiaryService.Create(c.Request.Context(), req.Name, req.PhoneNumber, req.RIB, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, beneficiary.ErrNameRequired):
			RespondBadRequest(c, "name is required")
		case errors.Is(err, beneficiary.ErrContactRequired):
			RespondBadRequest(c, "a phoneNumber or a rib is required")
		default:
			h.logger.Error("Failed to create beneficiary", "error", err)
			RespondInternalError(c)
		}
		return
	}

	RespondCreated(c, newBeneficiaryResponse(created))
}
