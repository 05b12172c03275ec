package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	cryptotaxv1 "github.com/simaogato/cryptotax-backend/internal/adapter/grpc/cryptotax/v1"
	"github.com/simaogato/cryptotax-backend/internal/domain"
	"github.com/simaogato/cryptotax-backend/internal/usecase/ledger"
	"github.com/simaogato/cryptotax-backend/internal/usecase/matcher"
	"github.com/simaogato/cryptotax-backend/internal/usecase/normalizer"
	"github.com/simaogato/cryptotax-backend/internal/usecase/reporting"
	"github.com/simaogato/cryptotax-backend/internal/usecase/washsale"
)

// Server implements the CryptoTaxService gRPC server
type Server struct {
	cryptotaxv1.UnimplementedCryptoTaxServiceServer

	LedgerService     *ledger.LedgerService
	MatcherService    *matcher.MatcherService
	DetectorService   *washsale.DetectorService
	NormalizerService *normalizer.NormalizerService
	ReportingService  *reporting.ReportingService
}

// NewServer creates a new gRPC server instance
func NewServer(
	ledgerService *ledger.LedgerService,
	matcherService *matcher.MatcherService,
	detectorService *washsale.DetectorService,
	normalizerService *normalizer.NormalizerService,
	reportingService *reporting.ReportingService,
) *Server {
	return &Server{
		LedgerService:     ledgerService,
		MatcherService:    matcherService,
		DetectorService:   detectorService,
		NormalizerService: normalizerService,
		ReportingService:  reportingService,
	}
}

// RecordAcquisition handles the RecordAcquisition RPC
func (s *Server) RecordAcquisition(ctx context.Context, req *cryptotaxv1.RecordAcquisitionRequest) (*cryptotaxv1.RecordAcquisitionResponse, error) {
	ownerID, err := uuid.Parse(req.OwnerId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid owner_id format: %v", err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid unit_price format: %v", err)
	}

	event := domain.AcquisitionEvent{
		OwnerID:   ownerID,
		Token:     protoTokenToDomain(req.Token),
		Amount:    amount,
		UnitPrice: unitPrice,
		Timestamp: req.Timestamp.AsTime(),
		Method:    protoMethodToDomain(req.Method),
		SourceRef: req.SourceRef,
	}

	// Replay check up front so the response can say whether the lot
	// already existed; AddLot itself is an idempotent no-op either way.
	duplicate := true
	if _, err := s.LedgerService.LotRepo.GetBySourceRef(ctx, ownerID, req.SourceRef); err != nil {
		if !errors.Is(err, domain.ErrLotNotFound) {
			return nil, mapError(err)
		}
		duplicate = false
	}

	lot, err := s.LedgerService.AddLot(ctx, event)
	if err != nil {
		return nil, mapError(err)
	}

	return &cryptotaxv1.RecordAcquisitionResponse{
		LotId:      lot.ID.String(),
		AcquiredAt: timestamppb.New(lot.AcquiredAt),
		Duplicate:  duplicate,
	}, nil
}

// RecordDisposal handles the RecordDisposal RPC
func (s *Server) RecordDisposal(ctx context.Context, req *cryptotaxv1.RecordDisposalRequest) (*cryptotaxv1.RecordDisposalResponse, error) {
	ownerID, err := uuid.Parse(req.OwnerId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid owner_id format: %v", err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	event := domain.DisposalEvent{
		OwnerID:        ownerID,
		Token:          protoTokenToDomain(req.Token),
		Amount:         amount,
		Timestamp:      req.Timestamp.AsTime(),
		SourceRef:      req.SourceRef,
		CryptoToCrypto: req.CryptoToCrypto,
	}

	if req.TotalProceeds != "" {
		proceeds, err := decimal.NewFromString(req.TotalProceeds)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid total_proceeds format: %v", err)
		}
		event.TotalProceeds = &proceeds
	}
	if req.UnitPrice != "" {
		unitPrice, err := decimal.NewFromString(req.UnitPrice)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid unit_price format: %v", err)
		}
		event.UnitPrice = &unitPrice
	}

	result, err := s.MatcherService.ProcessDisposal(ctx, event)
	if err != nil {
		return nil, mapError(err)
	}

	slices := make([]*cryptotaxv1.DisposalSlice, 0, len(result.Slices))
	for _, slice := range result.Slices {
		slices = append(slices, domainSliceToProto(slice))
	}

	return &cryptotaxv1.RecordDisposalResponse{
		Slices:         slices,
		TotalCostBasis: result.TotalCostBasis.String(),
		TotalProceeds:  result.TotalProceeds.String(),
		TotalGainLoss:  result.TotalGainLoss.String(),
		Duplicate:      result.Duplicate,
		LowConfidence:  result.LowConfidence,
	}, nil
}

// QueryOpenLots handles the QueryOpenLots RPC
func (s *Server) QueryOpenLots(ctx context.Context, req *cryptotaxv1.QueryOpenLotsRequest) (*cryptotaxv1.QueryOpenLotsResponse, error) {
	ownerID, err := uuid.Parse(req.OwnerId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid owner_id format: %v", err)
	}

	// An absent or empty token means all tokens.
	var token *domain.Token
	if req.Token != nil && req.Token.Symbol != "" {
		t := protoTokenToDomain(req.Token)
		token = &t
	}

	lots, err := s.LedgerService.QueryOpenLots(ctx, ownerID, token)
	if err != nil {
		return nil, mapError(err)
	}

	protoLots := make([]*cryptotaxv1.Lot, 0, len(lots))
	for _, lot := range lots {
		protoLots = append(protoLots, domainLotToProto(lot))
	}

	return &cryptotaxv1.QueryOpenLotsResponse{Lots: protoLots}, nil
}

// GetRealizedSummary handles the GetRealizedSummary RPC
func (s *Server) GetRealizedSummary(ctx context.Context, req *cryptotaxv1.GetRealizedSummaryRequest) (*cryptotaxv1.GetRealizedSummaryResponse, error) {
	ownerID, from, to, err := parsePeriod(req.OwnerId, req.From, req.To)
	if err != nil {
		return nil, err
	}

	summary, err := s.ReportingService.ComputeRealizedSummary(ctx, ownerID, from, to)
	if err != nil {
		return nil, mapError(err)
	}

	return &cryptotaxv1.GetRealizedSummaryResponse{
		ShortTermGains:     summary.ShortTermGains.String(),
		LongTermGains:      summary.LongTermGains.String(),
		OrdinaryIncome:     summary.OrdinaryIncome.String(),
		DisallowedLoss:     summary.DisallowedLoss.String(),
		DisposalCount:      int32(summary.DisposalCount),
		LowConfidenceCount: int32(summary.LowConfidence),
		NormalizedCount:    int32(summary.NormalizedCount),
	}, nil
}

// DetectWashSales handles the DetectWashSales RPC
func (s *Server) DetectWashSales(ctx context.Context, req *cryptotaxv1.DetectWashSalesRequest) (*cryptotaxv1.DetectWashSalesResponse, error) {
	ownerID, from, to, err := parsePeriod(req.OwnerId, req.From, req.To)
	if err != nil {
		return nil, err
	}

	violations, err := s.DetectorService.Detect(ctx, ownerID, from, to)
	if err != nil {
		return nil, mapError(err)
	}

	return &cryptotaxv1.DetectWashSalesResponse{
		Violations: domainViolationsToProto(violations),
	}, nil
}

// ListWashSaleViolations handles the ListWashSaleViolations RPC
func (s *Server) ListWashSaleViolations(ctx context.Context, req *cryptotaxv1.ListWashSaleViolationsRequest) (*cryptotaxv1.ListWashSaleViolationsResponse, error) {
	ownerID, from, to, err := parsePeriod(req.OwnerId, req.From, req.To)
	if err != nil {
		return nil, err
	}

	violations, err := s.ReportingService.ListWashSaleViolations(ctx, ownerID, from, to)
	if err != nil {
		return nil, mapError(err)
	}

	return &cryptotaxv1.ListWashSaleViolationsResponse{
		Violations: domainViolationsToProto(violations),
	}, nil
}

// RunNormalizationSweep handles the RunNormalizationSweep RPC
func (s *Server) RunNormalizationSweep(ctx context.Context, req *cryptotaxv1.RunNormalizationSweepRequest) (*cryptotaxv1.RunNormalizationSweepResponse, error) {
	ownerID, err := uuid.Parse(req.OwnerId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid owner_id format: %v", err)
	}
	if req.ReportingCurrency == "" {
		return nil, status.Errorf(codes.InvalidArgument, "reporting_currency is required")
	}

	result, err := s.NormalizerService.Sweep(ctx, ownerID, req.ReportingCurrency)
	if err != nil {
		return nil, mapError(err)
	}

	return &cryptotaxv1.RunNormalizationSweepResponse{
		LotsNormalized:      int32(result.LotsNormalized),
		DisposalsNormalized: int32(result.DisposalsNormalized),
		StillPending:        int32(result.StillPending),
	}, nil
}

// parsePeriod validates the shared (owner, from, to) request shape.
func parsePeriod(ownerStr string, from, to *timestamppb.Timestamp) (uuid.UUID, time.Time, time.Time, error) {
	ownerID, err := uuid.Parse(ownerStr)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, status.Errorf(codes.InvalidArgument, "invalid owner_id format: %v", err)
	}
	if from == nil || to == nil {
		return uuid.Nil, time.Time{}, time.Time{}, status.Errorf(codes.InvalidArgument, "from and to are required")
	}
	fromT := from.AsTime()
	toT := to.AsTime()
	if toT.Before(fromT) {
		return uuid.Nil, time.Time{}, time.Time{}, status.Errorf(codes.InvalidArgument, "to must not precede from")
	}
	return ownerID, fromT, toT, nil
}

// protoTokenToDomain converts a proto Token to a domain Token
func protoTokenToDomain(token *cryptotaxv1.Token) domain.Token {
	if token == nil {
		return domain.Token{}
	}
	return domain.Token{
		Symbol:   token.Symbol,
		Chain:    token.Chain,
		Contract: token.Contract,
	}
}

// domainTokenToProto converts a domain Token to a proto Token
func domainTokenToProto(token domain.Token) *cryptotaxv1.Token {
	return &cryptotaxv1.Token{
		Symbol:   token.Symbol,
		Chain:    token.Chain,
		Contract: token.Contract,
	}
}

// protoMethodToDomain converts a proto AcquisitionMethod enum to the
// domain method
func protoMethodToDomain(method cryptotaxv1.AcquisitionMethod) domain.AcquisitionMethod {
	switch method {
	case cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_PURCHASE:
		return domain.MethodPurchase
	case cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_REWARD:
		return domain.MethodReward
	case cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_AIRDROP:
		return domain.MethodAirdrop
	case cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_MINED:
		return domain.MethodMined
	case cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_TRANSFER_IN:
		return domain.MethodTransferIn
	default:
		return ""
	}
}

// domainMethodToProto converts a domain AcquisitionMethod to the proto
// enum
func domainMethodToProto(method domain.AcquisitionMethod) cryptotaxv1.AcquisitionMethod {
	switch method {
	case domain.MethodPurchase:
		return cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_PURCHASE
	case domain.MethodReward:
		return cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_REWARD
	case domain.MethodAirdrop:
		return cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_AIRDROP
	case domain.MethodMined:
		return cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_MINED
	case domain.MethodTransferIn:
		return cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_TRANSFER_IN
	default:
		return cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_UNSPECIFIED
	}
}

// domainCategoryToProto converts a domain TaxCategory to the proto enum
func domainCategoryToProto(category domain.TaxCategory) cryptotaxv1.TaxCategory {
	switch category {
	case domain.CategoryShortTerm:
		return cryptotaxv1.TaxCategory_TAX_CATEGORY_SHORT_TERM
	case domain.CategoryLongTerm:
		return cryptotaxv1.TaxCategory_TAX_CATEGORY_LONG_TERM
	case domain.CategoryNonTaxable:
		return cryptotaxv1.TaxCategory_TAX_CATEGORY_NON_TAXABLE
	default:
		return cryptotaxv1.TaxCategory_TAX_CATEGORY_UNSPECIFIED
	}
}

// domainLotToProto converts a domain Lot to a proto Lot message
func domainLotToProto(lot *domain.Lot) *cryptotaxv1.Lot {
	return &cryptotaxv1.Lot{
		Id:              lot.ID.String(),
		Token:           domainTokenToProto(lot.Token),
		AcquiredAt:      timestamppb.New(lot.AcquiredAt),
		Method:          domainMethodToProto(lot.Method),
		UnitPrice:       lot.UnitPrice.String(),
		OriginalAmount:  lot.OriginalAmount.String(),
		RemainingAmount: lot.RemainingAmount.String(),
		DisposedAmount:  lot.DisposedAmount.String(),
		BasisAdjustment: lot.BasisAdjustment.String(),
		SourceRef:       lot.SourceRef,
	}
}

// domainSliceToProto converts a domain Disposal to a proto DisposalSlice
func domainSliceToProto(slice *domain.Disposal) *cryptotaxv1.DisposalSlice {
	protoSlice := &cryptotaxv1.DisposalSlice{
		Id:                slice.ID.String(),
		Amount:            slice.Amount.String(),
		CostBasisPerUnit:  slice.CostBasisPerUnit.String(),
		TotalCostBasis:    slice.TotalCostBasis.String(),
		TotalProceeds:     slice.TotalProceeds.String(),
		GainLoss:          slice.GainLoss.String(),
		HoldingPeriodDays: int32(slice.HoldingPeriodDays),
		Category:          domainCategoryToProto(slice.Category),
		LowConfidence:     slice.LowConfidence,
	}

	// Lot ID stays empty for the zero-basis fallback slice.
	if slice.LotID != nil {
		protoSlice.LotId = slice.LotID.String()
	}

	return protoSlice
}

// domainViolationsToProto converts domain violations to proto messages
func domainViolationsToProto(violations []*domain.WashSaleViolation) []*cryptotaxv1.WashSaleViolation {
	protoViolations := make([]*cryptotaxv1.WashSaleViolation, 0, len(violations))
	for _, v := range violations {
		protoViolations = append(protoViolations, &cryptotaxv1.WashSaleViolation{
			Id:                v.ID.String(),
			DisposalId:        v.DisposalID.String(),
			LotId:             v.LotID.String(),
			DaysBetween:       int32(v.DaysBetween),
			DisallowedLoss:    v.DisallowedLoss.String(),
			AdjustedCostBasis: v.AdjustedCostBasis.String(),
			DetectedAt:        timestamppb.New(v.DetectedAt),
		})
	}
	return protoViolations
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrDuplicateEvent):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrLotNotFound),
		errors.Is(err, domain.ErrNoOpenLots):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, domain.ErrInsufficientLotBalance):
		// Ledger invariant violation: the stream needs manual audit.
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	case errors.Is(err, domain.ErrLookupUnavailable):
		return status.Errorf(codes.Unavailable, "%s", err.Error())
	}

	if strings.Contains(err.Error(), "not found") {
		return status.Errorf(codes.NotFound, "%s", err.Error())
	}

	return status.Errorf(codes.Internal, "%s", err.Error())
}
