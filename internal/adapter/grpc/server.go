package grpc

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	soroyieldv1 "github.com/soroyield/soroyield-backend/internal/adapter/grpc/soroyield/v1"
	"github.com/soroyield/soroyield-backend/internal/domain"
	"github.com/soroyield/soroyield-backend/internal/usecase/rates"
)

// Server implements the SoroYieldService gRPC server
type Server struct {
	soroyieldv1.UnimplementedSoroYieldServiceServer

	RatesService *rates.Service
}

// NewServer creates a new gRPC server instance
func NewServer(ratesService *rates.Service) *Server {
	return &Server{RatesService: ratesService}
}

// SubmitSnapshot handles the SubmitSnapshot RPC
func (s *Server) SubmitSnapshot(ctx context.Context, req *soroyieldv1.SubmitSnapshotRequest) (*soroyieldv1.SubmitSnapshotResponse, error) {
	if len(req.EntryJson) == 0 {
		return nil, status.Errorf(codes.InvalidArgument, "entry_json must not be empty")
	}

	tree, err := domain.ParseValueJSON(req.EntryJson)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid entry_json: %v", err)
	}

	takeRate, err := parseTakeRate(req.BackstopTakeRate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid backstop_take_rate format: %v", err)
	}

	snapshot, err := s.RatesService.IngestSnapshot(ctx, tree, takeRate)
	if err != nil {
		return nil, mapError(err)
	}

	return &soroyieldv1.SubmitSnapshotResponse{
		AssetId:    snapshot.AssetID,
		RecordedAt: timestamppb.New(snapshot.CreatedAt),
	}, nil
}

// GetReserve handles the GetReserve RPC
func (s *Server) GetReserve(ctx context.Context, req *soroyieldv1.GetReserveRequest) (*soroyieldv1.GetReserveResponse, error) {
	if req.AssetId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "asset_id must not be empty")
	}

	reserve, err := s.RatesService.GetReserve(ctx, req.AssetId)
	if err != nil {
		return nil, mapError(err)
	}

	return &soroyieldv1.GetReserveResponse{
		Reserve: domainReserveToProto(reserve),
	}, nil
}

// GetYield handles the GetYield RPC
func (s *Server) GetYield(ctx context.Context, req *soroyieldv1.GetYieldRequest) (*soroyieldv1.GetYieldResponse, error) {
	if req.AssetId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "asset_id must not be empty")
	}

	takeRate, err := parseTakeRate(req.BackstopTakeRate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid backstop_take_rate format: %v", err)
	}

	result, err := s.RatesService.GetYield(ctx, req.AssetId, takeRate)
	if err != nil {
		return nil, mapError(err)
	}

	return &soroyieldv1.GetYieldResponse{
		AssetId:     result.AssetID,
		Utilization: result.Utilization.String(),
		SupplyApr:   result.SupplyAPR.String(),
		SupplyApy:   result.SupplyAPY.String(),
		BorrowApr:   result.BorrowAPR.String(),
		BorrowApy:   result.BorrowAPY.String(),
	}, nil
}

// ListRates handles the ListRates RPC
func (s *Server) ListRates(ctx context.Context, req *soroyieldv1.ListRatesRequest) (*soroyieldv1.ListRatesResponse, error) {
	snapshots, err := s.RatesService.ListRates(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	protoRates := make([]*soroyieldv1.RateSnapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		protoRates = append(protoRates, &soroyieldv1.RateSnapshot{
			AssetId:     snapshot.AssetID,
			Utilization: snapshot.Utilization.String(),
			SupplyApr:   snapshot.SupplyAPR.String(),
			SupplyApy:   snapshot.SupplyAPY.String(),
			BorrowApr:   snapshot.BorrowAPR.String(),
			BorrowApy:   snapshot.BorrowAPY.String(),
			CreatedAt:   timestamppb.New(snapshot.CreatedAt),
		})
	}

	return &soroyieldv1.ListRatesResponse{Rates: protoRates}, nil
}

// parseTakeRate parses the backstop take-rate field. An empty field means a
// zero take-rate so callers that only care about borrow rates can omit it.
func parseTakeRate(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// domainReserveToProto converts a domain Reserve to a proto Reserve message
func domainReserveToProto(reserve *domain.Reserve) *soroyieldv1.Reserve {
	return &soroyieldv1.Reserve{
		AssetId:           reserve.AssetID,
		Scalar:            reserve.Scalar.String(),
		Enabled:           reserve.Config.Enabled,
		Index:             reserve.Config.Index,
		CollateralFactor:  reserve.Config.CollateralFactor.String(),
		LiabilityFactor:   reserve.Config.LiabilityFactor.String(),
		MaxUtilization:    reserve.Config.MaxUtilization.String(),
		RBase:             reserve.Config.RBase.String(),
		ROne:              reserve.Config.ROne.String(),
		RTwo:              reserve.Config.RTwo.String(),
		RThree:            reserve.Config.RThree.String(),
		Reactivity:        reserve.Config.Reactivity.String(),
		SupplyCap:         reserve.Config.SupplyCap.String(),
		TargetUtilization: reserve.Config.TargetUtilization.String(),
		TotalSupplied:     reserve.Data.TotalSupplied.String(),
		TotalBorrowed:     reserve.Data.TotalBorrowed.String(),
		SupplyRate:        reserve.Data.SupplyRate.String(),
		DRate:             reserve.Data.DRate.String(),
		IrModifier:        reserve.Data.IRModifier.String(),
		BackstopCredit:    reserve.Data.BackstopCredit.String(),
		LastUpdate:        timestamppb.New(reserve.Data.LastUpdate),
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrReserveNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, domain.ErrMalformed),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrOutOfBounds):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrOverflow):
		return status.Errorf(codes.OutOfRange, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
