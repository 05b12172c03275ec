//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	cryptotaxv1 "github.com/simaogato/cryptotax-backend/internal/adapter/grpc/cryptotax/v1"
	"github.com/simaogato/cryptotax-backend/internal/adapter/repository/postgres"
)

var (
	db         *postgres.DB
	grpcClient cryptotaxv1.CryptoTaxServiceClient
	grpcConn   *grpc.ClientConn
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	// 1. Connect to Database
	dbConnStr := getDBConnectionString()
	var err error
	db, err = postgres.NewDB(dbConnStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	defer db.Close()

	// 2. Connect to gRPC Server
	grpcAddr := getGRPCAddress()
	grpcConn, err = grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}
	defer grpcConn.Close()

	grpcClient = cryptotaxv1.NewCryptoTaxServiceClient(grpcConn)

	// Run tests
	code := m.Run()

	os.Exit(code)
}

// newTestOwner creates a fresh owner with US tax settings. Each test
// gets its own owner so runs never interfere with each other or with
// leftover data from previous runs.
func newTestOwner(t *testing.T, washSaleEnabled bool) uuid.UUID {
	t.Helper()
	ownerID := uuid.New()

	query := `
		INSERT INTO user_tax_settings (
			owner_id, jurisdiction_code, base_currency,
			wash_sale_enabled, wash_sale_window_days, long_term_threshold_days
		)
		VALUES ($1, 'US', 'USD', $2, 0, 0)
	`
	_, err := db.ExecContext(context.Background(), query, ownerID, washSaleEnabled)
	require.NoError(t, err, "failed to insert test owner settings")

	return ownerID
}

func btcToken() *cryptotaxv1.Token {
	return &cryptotaxv1.Token{Symbol: "BTC", Chain: "bitcoin"}
}

func recordBuy(t *testing.T, ctx context.Context, ownerID uuid.UUID, amount, price string, at time.Time, ref string) string {
	t.Helper()
	resp, err := grpcClient.RecordAcquisition(ctx, &cryptotaxv1.RecordAcquisitionRequest{
		OwnerId:   ownerID.String(),
		Token:     btcToken(),
		Amount:    amount,
		UnitPrice: price,
		Timestamp: timestamppb.New(at),
		Method:    cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_PURCHASE,
		SourceRef: ref,
	})
	require.NoError(t, err)
	return resp.LotId
}

func recordSell(t *testing.T, ctx context.Context, ownerID uuid.UUID, amount, proceeds string, at time.Time, ref string) *cryptotaxv1.RecordDisposalResponse {
	t.Helper()
	resp, err := grpcClient.RecordDisposal(ctx, &cryptotaxv1.RecordDisposalRequest{
		OwnerId:       ownerID.String(),
		Token:         btcToken(),
		Amount:        amount,
		TotalProceeds: proceeds,
		Timestamp:     timestamppb.New(at),
		SourceRef:     ref,
	})
	require.NoError(t, err)
	return resp
}

func TestEndToEndFlow(t *testing.T) {
	ctx := getAuthContext()
	ownerID := newTestOwner(t, false)

	day0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// 1. Ingest two lots: 1 BTC at $10,000 and 2 BTC at $12,000.
	lot1 := recordBuy(t, ctx, ownerID, "1", "10000", day0, "e2e-buy-1")
	recordBuy(t, ctx, ownerID, "2", "12000", day0.AddDate(0, 0, 30), "e2e-buy-2")

	// Replaying the first buy must be a no-op returning the same lot.
	replay, err := grpcClient.RecordAcquisition(ctx, &cryptotaxv1.RecordAcquisitionRequest{
		OwnerId:   ownerID.String(),
		Token:     btcToken(),
		Amount:    "1",
		UnitPrice: "10000",
		Timestamp: timestamppb.New(day0),
		Method:    cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_PURCHASE,
		SourceRef: "e2e-buy-1",
	})
	require.NoError(t, err)
	assert.True(t, replay.Duplicate)
	assert.Equal(t, lot1, replay.LotId)

	// 2. Dispose 1.5 BTC for $22,500 after more than a year: FIFO
	// consumes all of lot 1 and 0.5 of lot 2.
	sell := recordSell(t, ctx, ownerID, "1.5", "22500", day0.AddDate(0, 0, 400), "e2e-sell-1")

	require.Len(t, sell.Slices, 2)
	assert.Equal(t, lot1, sell.Slices[0].LotId)
	assert.Equal(t, "1", sell.Slices[0].Amount)
	assert.Equal(t, "0.5", sell.Slices[1].Amount)
	assert.False(t, sell.LowConfidence)

	// Slice proceeds must reconcile exactly to the event total.
	total := decimal.Zero
	for _, slice := range sell.Slices {
		p, err := decimal.NewFromString(slice.TotalProceeds)
		require.NoError(t, err)
		total = total.Add(p)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(22500)))

	// Replaying the disposal is an idempotent no-op.
	dup := recordSell(t, ctx, ownerID, "1.5", "22500", day0.AddDate(0, 0, 400), "e2e-sell-1")
	assert.True(t, dup.Duplicate)
	assert.Empty(t, dup.Slices)

	// 3. Open lots: only lot 2 with 1.5 BTC remaining.
	open, err := grpcClient.QueryOpenLots(ctx, &cryptotaxv1.QueryOpenLotsRequest{
		OwnerId: ownerID.String(),
		Token:   btcToken(),
	})
	require.NoError(t, err)
	require.Len(t, open.Lots, 1)
	assert.Equal(t, "1.5", open.Lots[0].RemainingAmount)

	// 4. Summary over the whole period. Lot 1 was held 400 days
	// (long-term, gain 15000-10000=5000); the 0.5 BTC of lot 2 was held
	// 370 days (long-term, gain 7500-6000=1500).
	summary, err := grpcClient.GetRealizedSummary(ctx, &cryptotaxv1.GetRealizedSummaryRequest{
		OwnerId: ownerID.String(),
		From:    timestamppb.New(day0),
		To:      timestamppb.New(day0.AddDate(0, 0, 500)),
	})
	require.NoError(t, err)
	longTerm, err := decimal.NewFromString(summary.LongTermGains)
	require.NoError(t, err)
	assert.True(t, longTerm.Equal(decimal.NewFromInt(6500)), "got %s", summary.LongTermGains)
	assert.Equal(t, int32(2), summary.DisposalCount)
	assert.Equal(t, int32(0), summary.LowConfidenceCount)
}

func TestWashSaleFlow(t *testing.T) {
	ctx := getAuthContext()
	ownerID := newTestOwner(t, true)

	day0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// Loss sale with a repurchase 10 days later.
	recordBuy(t, ctx, ownerID, "1", "2000", day0, "ws-buy-1")
	recordSell(t, ctx, ownerID, "1", "1500", day0.AddDate(0, 0, 50), "ws-sell-1")
	repurchase := recordBuy(t, ctx, ownerID, "1", "1800", day0.AddDate(0, 0, 60), "ws-buy-2")

	detected, err := grpcClient.DetectWashSales(ctx, &cryptotaxv1.DetectWashSalesRequest{
		OwnerId: ownerID.String(),
		From:    timestamppb.New(day0),
		To:      timestamppb.New(day0.AddDate(0, 0, 100)),
	})
	require.NoError(t, err)
	require.Len(t, detected.Violations, 1)

	v := detected.Violations[0]
	assert.Equal(t, repurchase, v.LotId)
	assert.Equal(t, int32(10), v.DaysBetween)
	assert.Equal(t, "500", v.DisallowedLoss)

	// A second detection pass records nothing new.
	again, err := grpcClient.DetectWashSales(ctx, &cryptotaxv1.DetectWashSalesRequest{
		OwnerId: ownerID.String(),
		From:    timestamppb.New(day0),
		To:      timestamppb.New(day0.AddDate(0, 0, 100)),
	})
	require.NoError(t, err)
	assert.Empty(t, again.Violations)

	// But the listing still shows the stored violation.
	listed, err := grpcClient.ListWashSaleViolations(ctx, &cryptotaxv1.ListWashSaleViolationsRequest{
		OwnerId: ownerID.String(),
		From:    timestamppb.New(day0),
		To:      timestamppb.New(day0.AddDate(0, 0, 100)),
	})
	require.NoError(t, err)
	assert.Len(t, listed.Violations, 1)
}

func TestNegativeScenarios(t *testing.T) {
	ctx := getAuthContext()
	ownerID := newTestOwner(t, false)

	t.Run("Unauthenticated", func(t *testing.T) {
		_, err := grpcClient.QueryOpenLots(context.Background(), &cryptotaxv1.QueryOpenLotsRequest{
			OwnerId: ownerID.String(),
		})
		require.Error(t, err)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Unauthenticated, st.Code())
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		_, err := grpcClient.RecordAcquisition(ctx, &cryptotaxv1.RecordAcquisitionRequest{
			OwnerId:   ownerID.String(),
			Token:     btcToken(),
			Amount:    "-1",
			UnitPrice: "10000",
			Timestamp: timestamppb.Now(),
			Method:    cryptotaxv1.AcquisitionMethod_ACQUISITION_METHOD_PURCHASE,
			SourceRef: "neg-buy-1",
		})
		require.Error(t, err)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})

	t.Run("ProceedsAndUnitPriceBothSet", func(t *testing.T) {
		_, err := grpcClient.RecordDisposal(ctx, &cryptotaxv1.RecordDisposalRequest{
			OwnerId:       ownerID.String(),
			Token:         btcToken(),
			Amount:        "1",
			TotalProceeds: "1000",
			UnitPrice:     "1000",
			Timestamp:     timestamppb.Now(),
			SourceRef:     "neg-sell-1",
		})
		require.Error(t, err)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})

	t.Run("OverDisposalIsLowConfidence", func(t *testing.T) {
		freshOwner := newTestOwner(t, false)
		day0 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		recordBuy(t, ctx, freshOwner, "1", "10000", day0, "over-buy-1")

		sell := recordSell(t, ctx, freshOwner, "2", "30000", day0.AddDate(0, 0, 10), "over-sell-1")
		assert.True(t, sell.LowConfidence)
		require.Len(t, sell.Slices, 2)
		fallback := sell.Slices[1]
		assert.Empty(t, fallback.LotId)
		assert.Equal(t, "0", fallback.TotalCostBasis)
		assert.True(t, fallback.LowConfidence)
	})
}

// getAuthContext returns a context with authorization metadata
func getAuthContext() context.Context {
	md := metadata.New(map[string]string{
		"authorization": "dev-token",
	})
	return metadata.NewOutgoingContext(context.Background(), md)
}

// getDBConnectionString returns the database connection string from environment or defaults
func getDBConnectionString() string {
	connStr := os.Getenv("DB_CONN_STR")
	if connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}

	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "postgres"
	}

	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "cryptotax"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// getGRPCAddress returns the gRPC server address from environment or defaults
func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}
	return addr
}
