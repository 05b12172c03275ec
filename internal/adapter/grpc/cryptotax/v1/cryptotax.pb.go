// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: cryptotax/v1/cryptotax.proto

package cryptotaxv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AcquisitionMethod int32

const (
	AcquisitionMethod_ACQUISITION_METHOD_UNSPECIFIED AcquisitionMethod = 0
	AcquisitionMethod_ACQUISITION_METHOD_PURCHASE    AcquisitionMethod = 1
	AcquisitionMethod_ACQUISITION_METHOD_REWARD      AcquisitionMethod = 2
	AcquisitionMethod_ACQUISITION_METHOD_AIRDROP     AcquisitionMethod = 3
	AcquisitionMethod_ACQUISITION_METHOD_MINED       AcquisitionMethod = 4
	AcquisitionMethod_ACQUISITION_METHOD_TRANSFER_IN AcquisitionMethod = 5
)

// Enum value maps for AcquisitionMethod.
var (
	AcquisitionMethod_name = map[int32]string{
		0: "ACQUISITION_METHOD_UNSPECIFIED",
		1: "ACQUISITION_METHOD_PURCHASE",
		2: "ACQUISITION_METHOD_REWARD",
		3: "ACQUISITION_METHOD_AIRDROP",
		4: "ACQUISITION_METHOD_MINED",
		5: "ACQUISITION_METHOD_TRANSFER_IN",
	}
	AcquisitionMethod_value = map[string]int32{
		"ACQUISITION_METHOD_UNSPECIFIED": 0,
		"ACQUISITION_METHOD_PURCHASE":    1,
		"ACQUISITION_METHOD_REWARD":      2,
		"ACQUISITION_METHOD_AIRDROP":     3,
		"ACQUISITION_METHOD_MINED":       4,
		"ACQUISITION_METHOD_TRANSFER_IN": 5,
	}
)

func (x AcquisitionMethod) Enum() *AcquisitionMethod {
	p := new(AcquisitionMethod)
	*p = x
	return p
}

func (x AcquisitionMethod) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (AcquisitionMethod) Descriptor() protoreflect.EnumDescriptor {
	return file_cryptotax_v1_cryptotax_proto_enumTypes[0].Descriptor()
}

func (AcquisitionMethod) Type() protoreflect.EnumType {
	return &file_cryptotax_v1_cryptotax_proto_enumTypes[0]
}

func (x AcquisitionMethod) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use AcquisitionMethod.Descriptor instead.
func (AcquisitionMethod) EnumDescriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{0}
}

type TaxCategory int32

const (
	TaxCategory_TAX_CATEGORY_UNSPECIFIED TaxCategory = 0
	TaxCategory_TAX_CATEGORY_SHORT_TERM  TaxCategory = 1
	TaxCategory_TAX_CATEGORY_LONG_TERM   TaxCategory = 2
	TaxCategory_TAX_CATEGORY_NON_TAXABLE TaxCategory = 3
)

// Enum value maps for TaxCategory.
var (
	TaxCategory_name = map[int32]string{
		0: "TAX_CATEGORY_UNSPECIFIED",
		1: "TAX_CATEGORY_SHORT_TERM",
		2: "TAX_CATEGORY_LONG_TERM",
		3: "TAX_CATEGORY_NON_TAXABLE",
	}
	TaxCategory_value = map[string]int32{
		"TAX_CATEGORY_UNSPECIFIED": 0,
		"TAX_CATEGORY_SHORT_TERM":  1,
		"TAX_CATEGORY_LONG_TERM":   2,
		"TAX_CATEGORY_NON_TAXABLE": 3,
	}
)

func (x TaxCategory) Enum() *TaxCategory {
	p := new(TaxCategory)
	*p = x
	return p
}

func (x TaxCategory) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (TaxCategory) Descriptor() protoreflect.EnumDescriptor {
	return file_cryptotax_v1_cryptotax_proto_enumTypes[1].Descriptor()
}

func (TaxCategory) Type() protoreflect.EnumType {
	return &file_cryptotax_v1_cryptotax_proto_enumTypes[1]
}

func (x TaxCategory) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use TaxCategory.Descriptor instead.
func (TaxCategory) EnumDescriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{1}
}

type Token struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Symbol   string `protobuf:"bytes,1,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Chain    string `protobuf:"bytes,2,opt,name=chain,proto3" json:"chain,omitempty"`
	Contract string `protobuf:"bytes,3,opt,name=contract,proto3" json:"contract,omitempty"`
}

func (x *Token) Reset() {
	*x = Token{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Token) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Token) ProtoMessage() {}

func (x *Token) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Token.ProtoReflect.Descriptor instead.
func (*Token) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{0}
}

func (x *Token) GetSymbol() string {
	if x != nil {
		return x.Symbol
	}
	return ""
}

func (x *Token) GetChain() string {
	if x != nil {
		return x.Chain
	}
	return ""
}

func (x *Token) GetContract() string {
	if x != nil {
		return x.Contract
	}
	return ""
}

type RecordAcquisitionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	OwnerId   string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Token     *Token                 `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	Amount    string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	UnitPrice string                 `protobuf:"bytes,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Timestamp *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Method    AcquisitionMethod      `protobuf:"varint,6,opt,name=method,proto3,enum=cryptotax.v1.AcquisitionMethod" json:"method,omitempty"`
	SourceRef string                 `protobuf:"bytes,7,opt,name=source_ref,json=sourceRef,proto3" json:"source_ref,omitempty"`
}

func (x *RecordAcquisitionRequest) Reset() {
	*x = RecordAcquisitionRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RecordAcquisitionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordAcquisitionRequest) ProtoMessage() {}

func (x *RecordAcquisitionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordAcquisitionRequest.ProtoReflect.Descriptor instead.
func (*RecordAcquisitionRequest) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{1}
}

func (x *RecordAcquisitionRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *RecordAcquisitionRequest) GetToken() *Token {
	if x != nil {
		return x.Token
	}
	return nil
}

func (x *RecordAcquisitionRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *RecordAcquisitionRequest) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *RecordAcquisitionRequest) GetTimestamp() *timestamppb.Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

func (x *RecordAcquisitionRequest) GetMethod() AcquisitionMethod {
	if x != nil {
		return x.Method
	}
	return AcquisitionMethod_ACQUISITION_METHOD_UNSPECIFIED
}

func (x *RecordAcquisitionRequest) GetSourceRef() string {
	if x != nil {
		return x.SourceRef
	}
	return ""
}

type RecordAcquisitionResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	LotId      string                 `protobuf:"bytes,1,opt,name=lot_id,json=lotId,proto3" json:"lot_id,omitempty"`
	AcquiredAt *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=acquired_at,json=acquiredAt,proto3" json:"acquired_at,omitempty"`
	// True when the source ref was already ingested and the existing lot
	// was returned unchanged.
	Duplicate bool `protobuf:"varint,3,opt,name=duplicate,proto3" json:"duplicate,omitempty"`
}

func (x *RecordAcquisitionResponse) Reset() {
	*x = RecordAcquisitionResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RecordAcquisitionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordAcquisitionResponse) ProtoMessage() {}

func (x *RecordAcquisitionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordAcquisitionResponse.ProtoReflect.Descriptor instead.
func (*RecordAcquisitionResponse) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{2}
}

func (x *RecordAcquisitionResponse) GetLotId() string {
	if x != nil {
		return x.LotId
	}
	return ""
}

func (x *RecordAcquisitionResponse) GetAcquiredAt() *timestamppb.Timestamp {
	if x != nil {
		return x.AcquiredAt
	}
	return nil
}

func (x *RecordAcquisitionResponse) GetDuplicate() bool {
	if x != nil {
		return x.Duplicate
	}
	return false
}

type RecordDisposalRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	OwnerId string `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Token   *Token `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	Amount  string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	// Exactly one of total_proceeds and unit_price must be set.
	TotalProceeds  string                 `protobuf:"bytes,4,opt,name=total_proceeds,json=totalProceeds,proto3" json:"total_proceeds,omitempty"`
	UnitPrice      string                 `protobuf:"bytes,5,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	Timestamp      *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	SourceRef      string                 `protobuf:"bytes,7,opt,name=source_ref,json=sourceRef,proto3" json:"source_ref,omitempty"`
	CryptoToCrypto bool                   `protobuf:"varint,8,opt,name=crypto_to_crypto,json=cryptoToCrypto,proto3" json:"crypto_to_crypto,omitempty"`
}

func (x *RecordDisposalRequest) Reset() {
	*x = RecordDisposalRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RecordDisposalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordDisposalRequest) ProtoMessage() {}

func (x *RecordDisposalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordDisposalRequest.ProtoReflect.Descriptor instead.
func (*RecordDisposalRequest) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{3}
}

func (x *RecordDisposalRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *RecordDisposalRequest) GetToken() *Token {
	if x != nil {
		return x.Token
	}
	return nil
}

func (x *RecordDisposalRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *RecordDisposalRequest) GetTotalProceeds() string {
	if x != nil {
		return x.TotalProceeds
	}
	return ""
}

func (x *RecordDisposalRequest) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *RecordDisposalRequest) GetTimestamp() *timestamppb.Timestamp {
	if x != nil {
		return x.Timestamp
	}
	return nil
}

func (x *RecordDisposalRequest) GetSourceRef() string {
	if x != nil {
		return x.SourceRef
	}
	return ""
}

func (x *RecordDisposalRequest) GetCryptoToCrypto() bool {
	if x != nil {
		return x.CryptoToCrypto
	}
	return false
}

type DisposalSlice struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// Empty for the zero-basis fallback slice.
	LotId             string      `protobuf:"bytes,2,opt,name=lot_id,json=lotId,proto3" json:"lot_id,omitempty"`
	Amount            string      `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	CostBasisPerUnit  string      `protobuf:"bytes,4,opt,name=cost_basis_per_unit,json=costBasisPerUnit,proto3" json:"cost_basis_per_unit,omitempty"`
	TotalCostBasis    string      `protobuf:"bytes,5,opt,name=total_cost_basis,json=totalCostBasis,proto3" json:"total_cost_basis,omitempty"`
	TotalProceeds     string      `protobuf:"bytes,6,opt,name=total_proceeds,json=totalProceeds,proto3" json:"total_proceeds,omitempty"`
	GainLoss          string      `protobuf:"bytes,7,opt,name=gain_loss,json=gainLoss,proto3" json:"gain_loss,omitempty"`
	HoldingPeriodDays int32       `protobuf:"varint,8,opt,name=holding_period_days,json=holdingPeriodDays,proto3" json:"holding_period_days,omitempty"`
	Category          TaxCategory `protobuf:"varint,9,opt,name=category,proto3,enum=cryptotax.v1.TaxCategory" json:"category,omitempty"`
	LowConfidence     bool        `protobuf:"varint,10,opt,name=low_confidence,json=lowConfidence,proto3" json:"low_confidence,omitempty"`
}

func (x *DisposalSlice) Reset() {
	*x = DisposalSlice{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DisposalSlice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DisposalSlice) ProtoMessage() {}

func (x *DisposalSlice) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DisposalSlice.ProtoReflect.Descriptor instead.
func (*DisposalSlice) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{4}
}

func (x *DisposalSlice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DisposalSlice) GetLotId() string {
	if x != nil {
		return x.LotId
	}
	return ""
}

func (x *DisposalSlice) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *DisposalSlice) GetCostBasisPerUnit() string {
	if x != nil {
		return x.CostBasisPerUnit
	}
	return ""
}

func (x *DisposalSlice) GetTotalCostBasis() string {
	if x != nil {
		return x.TotalCostBasis
	}
	return ""
}

func (x *DisposalSlice) GetTotalProceeds() string {
	if x != nil {
		return x.TotalProceeds
	}
	return ""
}

func (x *DisposalSlice) GetGainLoss() string {
	if x != nil {
		return x.GainLoss
	}
	return ""
}

func (x *DisposalSlice) GetHoldingPeriodDays() int32 {
	if x != nil {
		return x.HoldingPeriodDays
	}
	return 0
}

func (x *DisposalSlice) GetCategory() TaxCategory {
	if x != nil {
		return x.Category
	}
	return TaxCategory_TAX_CATEGORY_UNSPECIFIED
}

func (x *DisposalSlice) GetLowConfidence() bool {
	if x != nil {
		return x.LowConfidence
	}
	return false
}

type RecordDisposalResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Slices         []*DisposalSlice `protobuf:"bytes,1,rep,name=slices,proto3" json:"slices,omitempty"`
	TotalCostBasis string           `protobuf:"bytes,2,opt,name=total_cost_basis,json=totalCostBasis,proto3" json:"total_cost_basis,omitempty"`
	TotalProceeds  string           `protobuf:"bytes,3,opt,name=total_proceeds,json=totalProceeds,proto3" json:"total_proceeds,omitempty"`
	TotalGainLoss  string           `protobuf:"bytes,4,opt,name=total_gain_loss,json=totalGainLoss,proto3" json:"total_gain_loss,omitempty"`
	Duplicate      bool             `protobuf:"varint,5,opt,name=duplicate,proto3" json:"duplicate,omitempty"`
	LowConfidence  bool             `protobuf:"varint,6,opt,name=low_confidence,json=lowConfidence,proto3" json:"low_confidence,omitempty"`
}

func (x *RecordDisposalResponse) Reset() {
	*x = RecordDisposalResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RecordDisposalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordDisposalResponse) ProtoMessage() {}

func (x *RecordDisposalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordDisposalResponse.ProtoReflect.Descriptor instead.
func (*RecordDisposalResponse) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{5}
}

func (x *RecordDisposalResponse) GetSlices() []*DisposalSlice {
	if x != nil {
		return x.Slices
	}
	return nil
}

func (x *RecordDisposalResponse) GetTotalCostBasis() string {
	if x != nil {
		return x.TotalCostBasis
	}
	return ""
}

func (x *RecordDisposalResponse) GetTotalProceeds() string {
	if x != nil {
		return x.TotalProceeds
	}
	return ""
}

func (x *RecordDisposalResponse) GetTotalGainLoss() string {
	if x != nil {
		return x.TotalGainLoss
	}
	return ""
}

func (x *RecordDisposalResponse) GetDuplicate() bool {
	if x != nil {
		return x.Duplicate
	}
	return false
}

func (x *RecordDisposalResponse) GetLowConfidence() bool {
	if x != nil {
		return x.LowConfidence
	}
	return false
}

type QueryOpenLotsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	OwnerId string `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	// Optional; empty symbol means all tokens.
	Token *Token `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
}

func (x *QueryOpenLotsRequest) Reset() {
	*x = QueryOpenLotsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *QueryOpenLotsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueryOpenLotsRequest) ProtoMessage() {}

func (x *QueryOpenLotsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueryOpenLotsRequest.ProtoReflect.Descriptor instead.
func (*QueryOpenLotsRequest) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{6}
}

func (x *QueryOpenLotsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *QueryOpenLotsRequest) GetToken() *Token {
	if x != nil {
		return x.Token
	}
	return nil
}

type Lot struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Token           *Token                 `protobuf:"bytes,2,opt,name=token,proto3" json:"token,omitempty"`
	AcquiredAt      *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=acquired_at,json=acquiredAt,proto3" json:"acquired_at,omitempty"`
	Method          AcquisitionMethod      `protobuf:"varint,4,opt,name=method,proto3,enum=cryptotax.v1.AcquisitionMethod" json:"method,omitempty"`
	UnitPrice       string                 `protobuf:"bytes,5,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	OriginalAmount  string                 `protobuf:"bytes,6,opt,name=original_amount,json=originalAmount,proto3" json:"original_amount,omitempty"`
	RemainingAmount string                 `protobuf:"bytes,7,opt,name=remaining_amount,json=remainingAmount,proto3" json:"remaining_amount,omitempty"`
	DisposedAmount  string                 `protobuf:"bytes,8,opt,name=disposed_amount,json=disposedAmount,proto3" json:"disposed_amount,omitempty"`
	BasisAdjustment string                 `protobuf:"bytes,9,opt,name=basis_adjustment,json=basisAdjustment,proto3" json:"basis_adjustment,omitempty"`
	SourceRef       string                 `protobuf:"bytes,10,opt,name=source_ref,json=sourceRef,proto3" json:"source_ref,omitempty"`
}

func (x *Lot) Reset() {
	*x = Lot{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Lot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Lot) ProtoMessage() {}

func (x *Lot) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Lot.ProtoReflect.Descriptor instead.
func (*Lot) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{7}
}

func (x *Lot) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Lot) GetToken() *Token {
	if x != nil {
		return x.Token
	}
	return nil
}

func (x *Lot) GetAcquiredAt() *timestamppb.Timestamp {
	if x != nil {
		return x.AcquiredAt
	}
	return nil
}

func (x *Lot) GetMethod() AcquisitionMethod {
	if x != nil {
		return x.Method
	}
	return AcquisitionMethod_ACQUISITION_METHOD_UNSPECIFIED
}

func (x *Lot) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *Lot) GetOriginalAmount() string {
	if x != nil {
		return x.OriginalAmount
	}
	return ""
}

func (x *Lot) GetRemainingAmount() string {
	if x != nil {
		return x.RemainingAmount
	}
	return ""
}

func (x *Lot) GetDisposedAmount() string {
	if x != nil {
		return x.DisposedAmount
	}
	return ""
}

func (x *Lot) GetBasisAdjustment() string {
	if x != nil {
		return x.BasisAdjustment
	}
	return ""
}

func (x *Lot) GetSourceRef() string {
	if x != nil {
		return x.SourceRef
	}
	return ""
}

type QueryOpenLotsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Lots []*Lot `protobuf:"bytes,1,rep,name=lots,proto3" json:"lots,omitempty"`
}

func (x *QueryOpenLotsResponse) Reset() {
	*x = QueryOpenLotsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *QueryOpenLotsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueryOpenLotsResponse) ProtoMessage() {}

func (x *QueryOpenLotsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueryOpenLotsResponse.ProtoReflect.Descriptor instead.
func (*QueryOpenLotsResponse) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{8}
}

func (x *QueryOpenLotsResponse) GetLots() []*Lot {
	if x != nil {
		return x.Lots
	}
	return nil
}

type GetRealizedSummaryRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	OwnerId string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	From    *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To      *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
}

func (x *GetRealizedSummaryRequest) Reset() {
	*x = GetRealizedSummaryRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetRealizedSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRealizedSummaryRequest) ProtoMessage() {}

func (x *GetRealizedSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRealizedSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetRealizedSummaryRequest) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{9}
}

func (x *GetRealizedSummaryRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *GetRealizedSummaryRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *GetRealizedSummaryRequest) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

type GetRealizedSummaryResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ShortTermGains     string `protobuf:"bytes,1,opt,name=short_term_gains,json=shortTermGains,proto3" json:"short_term_gains,omitempty"`
	LongTermGains      string `protobuf:"bytes,2,opt,name=long_term_gains,json=longTermGains,proto3" json:"long_term_gains,omitempty"`
	OrdinaryIncome     string `protobuf:"bytes,3,opt,name=ordinary_income,json=ordinaryIncome,proto3" json:"ordinary_income,omitempty"`
	DisallowedLoss     string `protobuf:"bytes,4,opt,name=disallowed_loss,json=disallowedLoss,proto3" json:"disallowed_loss,omitempty"`
	DisposalCount      int32  `protobuf:"varint,5,opt,name=disposal_count,json=disposalCount,proto3" json:"disposal_count,omitempty"`
	LowConfidenceCount int32  `protobuf:"varint,6,opt,name=low_confidence_count,json=lowConfidenceCount,proto3" json:"low_confidence_count,omitempty"`
	NormalizedCount    int32  `protobuf:"varint,7,opt,name=normalized_count,json=normalizedCount,proto3" json:"normalized_count,omitempty"`
}

func (x *GetRealizedSummaryResponse) Reset() {
	*x = GetRealizedSummaryResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetRealizedSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRealizedSummaryResponse) ProtoMessage() {}

func (x *GetRealizedSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRealizedSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetRealizedSummaryResponse) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{10}
}

func (x *GetRealizedSummaryResponse) GetShortTermGains() string {
	if x != nil {
		return x.ShortTermGains
	}
	return ""
}

func (x *GetRealizedSummaryResponse) GetLongTermGains() string {
	if x != nil {
		return x.LongTermGains
	}
	return ""
}

func (x *GetRealizedSummaryResponse) GetOrdinaryIncome() string {
	if x != nil {
		return x.OrdinaryIncome
	}
	return ""
}

func (x *GetRealizedSummaryResponse) GetDisallowedLoss() string {
	if x != nil {
		return x.DisallowedLoss
	}
	return ""
}

func (x *GetRealizedSummaryResponse) GetDisposalCount() int32 {
	if x != nil {
		return x.DisposalCount
	}
	return 0
}

func (x *GetRealizedSummaryResponse) GetLowConfidenceCount() int32 {
	if x != nil {
		return x.LowConfidenceCount
	}
	return 0
}

func (x *GetRealizedSummaryResponse) GetNormalizedCount() int32 {
	if x != nil {
		return x.NormalizedCount
	}
	return 0
}

type DetectWashSalesRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	OwnerId string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	From    *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To      *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
}

func (x *DetectWashSalesRequest) Reset() {
	*x = DetectWashSalesRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DetectWashSalesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectWashSalesRequest) ProtoMessage() {}

func (x *DetectWashSalesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectWashSalesRequest.ProtoReflect.Descriptor instead.
func (*DetectWashSalesRequest) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{11}
}

func (x *DetectWashSalesRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *DetectWashSalesRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *DetectWashSalesRequest) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

type WashSaleViolation struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DisposalId        string                 `protobuf:"bytes,2,opt,name=disposal_id,json=disposalId,proto3" json:"disposal_id,omitempty"`
	LotId             string                 `protobuf:"bytes,3,opt,name=lot_id,json=lotId,proto3" json:"lot_id,omitempty"`
	DaysBetween       int32                  `protobuf:"varint,4,opt,name=days_between,json=daysBetween,proto3" json:"days_between,omitempty"`
	DisallowedLoss    string                 `protobuf:"bytes,5,opt,name=disallowed_loss,json=disallowedLoss,proto3" json:"disallowed_loss,omitempty"`
	AdjustedCostBasis string                 `protobuf:"bytes,6,opt,name=adjusted_cost_basis,json=adjustedCostBasis,proto3" json:"adjusted_cost_basis,omitempty"`
	DetectedAt        *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=detected_at,json=detectedAt,proto3" json:"detected_at,omitempty"`
}

func (x *WashSaleViolation) Reset() {
	*x = WashSaleViolation{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *WashSaleViolation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WashSaleViolation) ProtoMessage() {}

func (x *WashSaleViolation) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WashSaleViolation.ProtoReflect.Descriptor instead.
func (*WashSaleViolation) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{12}
}

func (x *WashSaleViolation) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *WashSaleViolation) GetDisposalId() string {
	if x != nil {
		return x.DisposalId
	}
	return ""
}

func (x *WashSaleViolation) GetLotId() string {
	if x != nil {
		return x.LotId
	}
	return ""
}

func (x *WashSaleViolation) GetDaysBetween() int32 {
	if x != nil {
		return x.DaysBetween
	}
	return 0
}

func (x *WashSaleViolation) GetDisallowedLoss() string {
	if x != nil {
		return x.DisallowedLoss
	}
	return ""
}

func (x *WashSaleViolation) GetAdjustedCostBasis() string {
	if x != nil {
		return x.AdjustedCostBasis
	}
	return ""
}

func (x *WashSaleViolation) GetDetectedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.DetectedAt
	}
	return nil
}

type DetectWashSalesResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Violations []*WashSaleViolation `protobuf:"bytes,1,rep,name=violations,proto3" json:"violations,omitempty"`
}

func (x *DetectWashSalesResponse) Reset() {
	*x = DetectWashSalesResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DetectWashSalesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectWashSalesResponse) ProtoMessage() {}

func (x *DetectWashSalesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectWashSalesResponse.ProtoReflect.Descriptor instead.
func (*DetectWashSalesResponse) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{13}
}

func (x *DetectWashSalesResponse) GetViolations() []*WashSaleViolation {
	if x != nil {
		return x.Violations
	}
	return nil
}

type ListWashSaleViolationsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	OwnerId string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	From    *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To      *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
}

func (x *ListWashSaleViolationsRequest) Reset() {
	*x = ListWashSaleViolationsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListWashSaleViolationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWashSaleViolationsRequest) ProtoMessage() {}

func (x *ListWashSaleViolationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWashSaleViolationsRequest.ProtoReflect.Descriptor instead.
func (*ListWashSaleViolationsRequest) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{14}
}

func (x *ListWashSaleViolationsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListWashSaleViolationsRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *ListWashSaleViolationsRequest) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

type ListWashSaleViolationsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Violations []*WashSaleViolation `protobuf:"bytes,1,rep,name=violations,proto3" json:"violations,omitempty"`
}

func (x *ListWashSaleViolationsResponse) Reset() {
	*x = ListWashSaleViolationsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListWashSaleViolationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWashSaleViolationsResponse) ProtoMessage() {}

func (x *ListWashSaleViolationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWashSaleViolationsResponse.ProtoReflect.Descriptor instead.
func (*ListWashSaleViolationsResponse) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{15}
}

func (x *ListWashSaleViolationsResponse) GetViolations() []*WashSaleViolation {
	if x != nil {
		return x.Violations
	}
	return nil
}

type RunNormalizationSweepRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	OwnerId           string `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ReportingCurrency string `protobuf:"bytes,2,opt,name=reporting_currency,json=reportingCurrency,proto3" json:"reporting_currency,omitempty"`
}

func (x *RunNormalizationSweepRequest) Reset() {
	*x = RunNormalizationSweepRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[16]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RunNormalizationSweepRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunNormalizationSweepRequest) ProtoMessage() {}

func (x *RunNormalizationSweepRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[16]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunNormalizationSweepRequest.ProtoReflect.Descriptor instead.
func (*RunNormalizationSweepRequest) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{16}
}

func (x *RunNormalizationSweepRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *RunNormalizationSweepRequest) GetReportingCurrency() string {
	if x != nil {
		return x.ReportingCurrency
	}
	return ""
}

type RunNormalizationSweepResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	LotsNormalized      int32 `protobuf:"varint,1,opt,name=lots_normalized,json=lotsNormalized,proto3" json:"lots_normalized,omitempty"`
	DisposalsNormalized int32 `protobuf:"varint,2,opt,name=disposals_normalized,json=disposalsNormalized,proto3" json:"disposals_normalized,omitempty"`
	StillPending        int32 `protobuf:"varint,3,opt,name=still_pending,json=stillPending,proto3" json:"still_pending,omitempty"`
}

func (x *RunNormalizationSweepResponse) Reset() {
	*x = RunNormalizationSweepResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[17]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RunNormalizationSweepResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunNormalizationSweepResponse) ProtoMessage() {}

func (x *RunNormalizationSweepResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cryptotax_v1_cryptotax_proto_msgTypes[17]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunNormalizationSweepResponse.ProtoReflect.Descriptor instead.
func (*RunNormalizationSweepResponse) Descriptor() ([]byte, []int) {
	return file_cryptotax_v1_cryptotax_proto_rawDescGZIP(), []int{17}
}

func (x *RunNormalizationSweepResponse) GetLotsNormalized() int32 {
	if x != nil {
		return x.LotsNormalized
	}
	return 0
}

func (x *RunNormalizationSweepResponse) GetDisposalsNormalized() int32 {
	if x != nil {
		return x.DisposalsNormalized
	}
	return 0
}

func (x *RunNormalizationSweepResponse) GetStillPending() int32 {
	if x != nil {
		return x.StillPending
	}
	return 0
}

var File_cryptotax_v1_cryptotax_proto protoreflect.FileDescriptor

var file_cryptotax_v1_cryptotax_proto_rawDesc = []byte{
	0x0a, 0x1c, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2f, 0x76, 0x31, 0x2f, 0x63,
	0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x0c,
	0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x1a, 0x1f, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0x51, 0x0a,
	0x05, 0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x79, 0x6d, 0x62, 0x6f, 0x6c,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x79, 0x6d, 0x62, 0x6f, 0x6c, 0x12, 0x14,
	0x0a, 0x05, 0x63, 0x68, 0x61, 0x69, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x63,
	0x68, 0x61, 0x69, 0x6e, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6f, 0x6e, 0x74, 0x72, 0x61, 0x63, 0x74,
	0x22, 0xa9, 0x02, 0x0a, 0x18, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x41, 0x63, 0x71, 0x75, 0x69,
	0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a,
	0x08, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x07, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x49, 0x64, 0x12, 0x29, 0x0a, 0x05, 0x74, 0x6f, 0x6b, 0x65,
	0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x13, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f,
	0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x52, 0x05, 0x74, 0x6f,
	0x6b, 0x65, 0x6e, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x75,
	0x6e, 0x69, 0x74, 0x5f, 0x70, 0x72, 0x69, 0x63, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x75, 0x6e, 0x69, 0x74, 0x50, 0x72, 0x69, 0x63, 0x65, 0x12, 0x38, 0x0a, 0x09, 0x74, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e,
	0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e,
	0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x74, 0x69, 0x6d, 0x65, 0x73,
	0x74, 0x61, 0x6d, 0x70, 0x12, 0x37, 0x0a, 0x06, 0x6d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x18, 0x06,
	0x20, 0x01, 0x28, 0x0e, 0x32, 0x1f, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78,
	0x2e, 0x76, 0x31, 0x2e, 0x41, 0x63, 0x71, 0x75, 0x69, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x4d,
	0x65, 0x74, 0x68, 0x6f, 0x64, 0x52, 0x06, 0x6d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x12, 0x1d, 0x0a,
	0x0a, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f, 0x72, 0x65, 0x66, 0x18, 0x07, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x09, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x52, 0x65, 0x66, 0x22, 0x8d, 0x01, 0x0a,
	0x19, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x41, 0x63, 0x71, 0x75, 0x69, 0x73, 0x69, 0x74, 0x69,
	0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x15, 0x0a, 0x06, 0x6c, 0x6f,
	0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6c, 0x6f, 0x74, 0x49,
	0x64, 0x12, 0x3b, 0x0a, 0x0b, 0x61, 0x63, 0x71, 0x75, 0x69, 0x72, 0x65, 0x64, 0x5f, 0x61, 0x74,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61,
	0x6d, 0x70, 0x52, 0x0a, 0x61, 0x63, 0x71, 0x75, 0x69, 0x72, 0x65, 0x64, 0x41, 0x74, 0x12, 0x1c,
	0x0a, 0x09, 0x64, 0x75, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x08, 0x52, 0x09, 0x64, 0x75, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74, 0x65, 0x22, 0xbe, 0x02, 0x0a,
	0x15, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x44, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x49,
	0x64, 0x12, 0x29, 0x0a, 0x05, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x13, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e,
	0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x52, 0x05, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x12, 0x16, 0x0a, 0x06,
	0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x61, 0x6d,
	0x6f, 0x75, 0x6e, 0x74, 0x12, 0x25, 0x0a, 0x0e, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x70, 0x72,
	0x6f, 0x63, 0x65, 0x65, 0x64, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x74, 0x6f,
	0x74, 0x61, 0x6c, 0x50, 0x72, 0x6f, 0x63, 0x65, 0x65, 0x64, 0x73, 0x12, 0x1d, 0x0a, 0x0a, 0x75,
	0x6e, 0x69, 0x74, 0x5f, 0x70, 0x72, 0x69, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x75, 0x6e, 0x69, 0x74, 0x50, 0x72, 0x69, 0x63, 0x65, 0x12, 0x38, 0x0a, 0x09, 0x74, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e,
	0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e,
	0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x74, 0x69, 0x6d, 0x65, 0x73,
	0x74, 0x61, 0x6d, 0x70, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f, 0x72,
	0x65, 0x66, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65,
	0x52, 0x65, 0x66, 0x12, 0x28, 0x0a, 0x10, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x5f, 0x74, 0x6f,
	0x5f, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x18, 0x08, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0e, 0x63,
	0x72, 0x79, 0x70, 0x74, 0x6f, 0x54, 0x6f, 0x43, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x22, 0xf9, 0x02,
	0x0a, 0x0d, 0x44, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x53, 0x6c, 0x69, 0x63, 0x65, 0x12,
	0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12,
	0x15, 0x0a, 0x06, 0x6c, 0x6f, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x05, 0x6c, 0x6f, 0x74, 0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x2d,
	0x0a, 0x13, 0x63, 0x6f, 0x73, 0x74, 0x5f, 0x62, 0x61, 0x73, 0x69, 0x73, 0x5f, 0x70, 0x65, 0x72,
	0x5f, 0x75, 0x6e, 0x69, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x63, 0x6f, 0x73,
	0x74, 0x42, 0x61, 0x73, 0x69, 0x73, 0x50, 0x65, 0x72, 0x55, 0x6e, 0x69, 0x74, 0x12, 0x28, 0x0a,
	0x10, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x63, 0x6f, 0x73, 0x74, 0x5f, 0x62, 0x61, 0x73, 0x69,
	0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x43, 0x6f,
	0x73, 0x74, 0x42, 0x61, 0x73, 0x69, 0x73, 0x12, 0x25, 0x0a, 0x0e, 0x74, 0x6f, 0x74, 0x61, 0x6c,
	0x5f, 0x70, 0x72, 0x6f, 0x63, 0x65, 0x65, 0x64, 0x73, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0d, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x50, 0x72, 0x6f, 0x63, 0x65, 0x65, 0x64, 0x73, 0x12, 0x1b,
	0x0a, 0x09, 0x67, 0x61, 0x69, 0x6e, 0x5f, 0x6c, 0x6f, 0x73, 0x73, 0x18, 0x07, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x67, 0x61, 0x69, 0x6e, 0x4c, 0x6f, 0x73, 0x73, 0x12, 0x2e, 0x0a, 0x13, 0x68,
	0x6f, 0x6c, 0x64, 0x69, 0x6e, 0x67, 0x5f, 0x70, 0x65, 0x72, 0x69, 0x6f, 0x64, 0x5f, 0x64, 0x61,
	0x79, 0x73, 0x18, 0x08, 0x20, 0x01, 0x28, 0x05, 0x52, 0x11, 0x68, 0x6f, 0x6c, 0x64, 0x69, 0x6e,
	0x67, 0x50, 0x65, 0x72, 0x69, 0x6f, 0x64, 0x44, 0x61, 0x79, 0x73, 0x12, 0x35, 0x0a, 0x08, 0x63,
	0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x18, 0x09, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x19, 0x2e,
	0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x54, 0x61, 0x78,
	0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x52, 0x08, 0x63, 0x61, 0x74, 0x65, 0x67, 0x6f,
	0x72, 0x79, 0x12, 0x25, 0x0a, 0x0e, 0x6c, 0x6f, 0x77, 0x5f, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64,
	0x65, 0x6e, 0x63, 0x65, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0d, 0x6c, 0x6f, 0x77, 0x43,
	0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x8b, 0x02, 0x0a, 0x16, 0x52, 0x65,
	0x63, 0x6f, 0x72, 0x64, 0x44, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x33, 0x0a, 0x06, 0x73, 0x6c, 0x69, 0x63, 0x65, 0x73, 0x18, 0x01,
	0x20, 0x03, 0x28, 0x0b, 0x32, 0x1b, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78,
	0x2e, 0x76, 0x31, 0x2e, 0x44, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x53, 0x6c, 0x69, 0x63,
	0x65, 0x52, 0x06, 0x73, 0x6c, 0x69, 0x63, 0x65, 0x73, 0x12, 0x28, 0x0a, 0x10, 0x74, 0x6f, 0x74,
	0x61, 0x6c, 0x5f, 0x63, 0x6f, 0x73, 0x74, 0x5f, 0x62, 0x61, 0x73, 0x69, 0x73, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0e, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x43, 0x6f, 0x73, 0x74, 0x42, 0x61,
	0x73, 0x69, 0x73, 0x12, 0x25, 0x0a, 0x0e, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x70, 0x72, 0x6f,
	0x63, 0x65, 0x65, 0x64, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x74, 0x6f, 0x74,
	0x61, 0x6c, 0x50, 0x72, 0x6f, 0x63, 0x65, 0x65, 0x64, 0x73, 0x12, 0x26, 0x0a, 0x0f, 0x74, 0x6f,
	0x74, 0x61, 0x6c, 0x5f, 0x67, 0x61, 0x69, 0x6e, 0x5f, 0x6c, 0x6f, 0x73, 0x73, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0d, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x47, 0x61, 0x69, 0x6e, 0x4c, 0x6f,
	0x73, 0x73, 0x12, 0x1c, 0x0a, 0x09, 0x64, 0x75, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74, 0x65, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x08, 0x52, 0x09, 0x64, 0x75, 0x70, 0x6c, 0x69, 0x63, 0x61, 0x74, 0x65,
	0x12, 0x25, 0x0a, 0x0e, 0x6c, 0x6f, 0x77, 0x5f, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e,
	0x63, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0d, 0x6c, 0x6f, 0x77, 0x43, 0x6f, 0x6e,
	0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x5c, 0x0a, 0x14, 0x51, 0x75, 0x65, 0x72, 0x79,
	0x4f, 0x70, 0x65, 0x6e, 0x4c, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x19, 0x0a, 0x08, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x07, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x49, 0x64, 0x12, 0x29, 0x0a, 0x05, 0x74, 0x6f,
	0x6b, 0x65, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x13, 0x2e, 0x63, 0x72, 0x79, 0x70,
	0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x52, 0x05,
	0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x22, 0x9c, 0x03, 0x0a, 0x03, 0x4c, 0x6f, 0x74, 0x12, 0x0e, 0x0a,
	0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x29, 0x0a,
	0x05, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x13, 0x2e, 0x63,
	0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x54, 0x6f, 0x6b, 0x65,
	0x6e, 0x52, 0x05, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x12, 0x3b, 0x0a, 0x0b, 0x61, 0x63, 0x71, 0x75,
	0x69, 0x72, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e,
	0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e,
	0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x0a, 0x61, 0x63, 0x71, 0x75, 0x69,
	0x72, 0x65, 0x64, 0x41, 0x74, 0x12, 0x37, 0x0a, 0x06, 0x6d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x18,
	0x04, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1f, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61,
	0x78, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x63, 0x71, 0x75, 0x69, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e,
	0x4d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x52, 0x06, 0x6d, 0x65, 0x74, 0x68, 0x6f, 0x64, 0x12, 0x1d,
	0x0a, 0x0a, 0x75, 0x6e, 0x69, 0x74, 0x5f, 0x70, 0x72, 0x69, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x09, 0x75, 0x6e, 0x69, 0x74, 0x50, 0x72, 0x69, 0x63, 0x65, 0x12, 0x27, 0x0a,
	0x0f, 0x6f, 0x72, 0x69, 0x67, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74,
	0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x6f, 0x72, 0x69, 0x67, 0x69, 0x6e, 0x61, 0x6c,
	0x41, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x29, 0x0a, 0x10, 0x72, 0x65, 0x6d, 0x61, 0x69, 0x6e,
	0x69, 0x6e, 0x67, 0x5f, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0f, 0x72, 0x65, 0x6d, 0x61, 0x69, 0x6e, 0x69, 0x6e, 0x67, 0x41, 0x6d, 0x6f, 0x75, 0x6e,
	0x74, 0x12, 0x27, 0x0a, 0x0f, 0x64, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x65, 0x64, 0x5f, 0x61, 0x6d,
	0x6f, 0x75, 0x6e, 0x74, 0x18, 0x08, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x64, 0x69, 0x73, 0x70,
	0x6f, 0x73, 0x65, 0x64, 0x41, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x29, 0x0a, 0x10, 0x62, 0x61,
	0x73, 0x69, 0x73, 0x5f, 0x61, 0x64, 0x6a, 0x75, 0x73, 0x74, 0x6d, 0x65, 0x6e, 0x74, 0x18, 0x09,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0f, 0x62, 0x61, 0x73, 0x69, 0x73, 0x41, 0x64, 0x6a, 0x75, 0x73,
	0x74, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f,
	0x72, 0x65, 0x66, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x6f, 0x75, 0x72, 0x63,
	0x65, 0x52, 0x65, 0x66, 0x22, 0x3e, 0x0a, 0x15, 0x51, 0x75, 0x65, 0x72, 0x79, 0x4f, 0x70, 0x65,
	0x6e, 0x4c, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x25, 0x0a,
	0x04, 0x6c, 0x6f, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x11, 0x2e, 0x63, 0x72,
	0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x6f, 0x74, 0x52, 0x04,
	0x6c, 0x6f, 0x74, 0x73, 0x22, 0x92, 0x01, 0x0a, 0x19, 0x47, 0x65, 0x74, 0x52, 0x65, 0x61, 0x6c,
	0x69, 0x7a, 0x65, 0x64, 0x53, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x49, 0x64, 0x12, 0x2e, 0x0a,
	0x04, 0x66, 0x72, 0x6f, 0x6d, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x04, 0x66, 0x72, 0x6f, 0x6d, 0x12, 0x2a, 0x0a,
	0x02, 0x74, 0x6f, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67,
	0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65,
	0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x02, 0x74, 0x6f, 0x22, 0xc4, 0x02, 0x0a, 0x1a, 0x47, 0x65,
	0x74, 0x52, 0x65, 0x61, 0x6c, 0x69, 0x7a, 0x65, 0x64, 0x53, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x28, 0x0a, 0x10, 0x73, 0x68, 0x6f, 0x72,
	0x74, 0x5f, 0x74, 0x65, 0x72, 0x6d, 0x5f, 0x67, 0x61, 0x69, 0x6e, 0x73, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0e, 0x73, 0x68, 0x6f, 0x72, 0x74, 0x54, 0x65, 0x72, 0x6d, 0x47, 0x61, 0x69,
	0x6e, 0x73, 0x12, 0x26, 0x0a, 0x0f, 0x6c, 0x6f, 0x6e, 0x67, 0x5f, 0x74, 0x65, 0x72, 0x6d, 0x5f,
	0x67, 0x61, 0x69, 0x6e, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x6c, 0x6f, 0x6e,
	0x67, 0x54, 0x65, 0x72, 0x6d, 0x47, 0x61, 0x69, 0x6e, 0x73, 0x12, 0x27, 0x0a, 0x0f, 0x6f, 0x72,
	0x64, 0x69, 0x6e, 0x61, 0x72, 0x79, 0x5f, 0x69, 0x6e, 0x63, 0x6f, 0x6d, 0x65, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0e, 0x6f, 0x72, 0x64, 0x69, 0x6e, 0x61, 0x72, 0x79, 0x49, 0x6e, 0x63,
	0x6f, 0x6d, 0x65, 0x12, 0x27, 0x0a, 0x0f, 0x64, 0x69, 0x73, 0x61, 0x6c, 0x6c, 0x6f, 0x77, 0x65,
	0x64, 0x5f, 0x6c, 0x6f, 0x73, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x64, 0x69,
	0x73, 0x61, 0x6c, 0x6c, 0x6f, 0x77, 0x65, 0x64, 0x4c, 0x6f, 0x73, 0x73, 0x12, 0x25, 0x0a, 0x0e,
	0x64, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x5f, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x0d, 0x64, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x43, 0x6f,
	0x75, 0x6e, 0x74, 0x12, 0x30, 0x0a, 0x14, 0x6c, 0x6f, 0x77, 0x5f, 0x63, 0x6f, 0x6e, 0x66, 0x69,
	0x64, 0x65, 0x6e, 0x63, 0x65, 0x5f, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x05, 0x52, 0x12, 0x6c, 0x6f, 0x77, 0x43, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65,
	0x43, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x29, 0x0a, 0x10, 0x6e, 0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69,
	0x7a, 0x65, 0x64, 0x5f, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x07, 0x20, 0x01, 0x28, 0x05, 0x52,
	0x0f, 0x6e, 0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69, 0x7a, 0x65, 0x64, 0x43, 0x6f, 0x75, 0x6e, 0x74,
	0x22, 0x8f, 0x01, 0x0a, 0x16, 0x44, 0x65, 0x74, 0x65, 0x63, 0x74, 0x57, 0x61, 0x73, 0x68, 0x53,
	0x61, 0x6c, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x6f,
	0x77, 0x6e, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6f,
	0x77, 0x6e, 0x65, 0x72, 0x49, 0x64, 0x12, 0x2e, 0x0a, 0x04, 0x66, 0x72, 0x6f, 0x6d, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70,
	0x52, 0x04, 0x66, 0x72, 0x6f, 0x6d, 0x12, 0x2a, 0x0a, 0x02, 0x74, 0x6f, 0x18, 0x03, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x02,
	0x74, 0x6f, 0x22, 0x94, 0x02, 0x0a, 0x11, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c, 0x65, 0x56,
	0x69, 0x6f, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x1f, 0x0a, 0x0b, 0x64, 0x69, 0x73, 0x70,
	0x6f, 0x73, 0x61, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x64,
	0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x49, 0x64, 0x12, 0x15, 0x0a, 0x06, 0x6c, 0x6f, 0x74,
	0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6c, 0x6f, 0x74, 0x49, 0x64,
	0x12, 0x21, 0x0a, 0x0c, 0x64, 0x61, 0x79, 0x73, 0x5f, 0x62, 0x65, 0x74, 0x77, 0x65, 0x65, 0x6e,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0b, 0x64, 0x61, 0x79, 0x73, 0x42, 0x65, 0x74, 0x77,
	0x65, 0x65, 0x6e, 0x12, 0x27, 0x0a, 0x0f, 0x64, 0x69, 0x73, 0x61, 0x6c, 0x6c, 0x6f, 0x77, 0x65,
	0x64, 0x5f, 0x6c, 0x6f, 0x73, 0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x64, 0x69,
	0x73, 0x61, 0x6c, 0x6c, 0x6f, 0x77, 0x65, 0x64, 0x4c, 0x6f, 0x73, 0x73, 0x12, 0x2e, 0x0a, 0x13,
	0x61, 0x64, 0x6a, 0x75, 0x73, 0x74, 0x65, 0x64, 0x5f, 0x63, 0x6f, 0x73, 0x74, 0x5f, 0x62, 0x61,
	0x73, 0x69, 0x73, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x11, 0x61, 0x64, 0x6a, 0x75, 0x73,
	0x74, 0x65, 0x64, 0x43, 0x6f, 0x73, 0x74, 0x42, 0x61, 0x73, 0x69, 0x73, 0x12, 0x3b, 0x0a, 0x0b,
	0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x07, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x0a, 0x64,
	0x65, 0x74, 0x65, 0x63, 0x74, 0x65, 0x64, 0x41, 0x74, 0x22, 0x5a, 0x0a, 0x17, 0x44, 0x65, 0x74,
	0x65, 0x63, 0x74, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3f, 0x0a, 0x0a, 0x76, 0x69, 0x6f, 0x6c, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1f, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74,
	0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c, 0x65,
	0x56, 0x69, 0x6f, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x0a, 0x76, 0x69, 0x6f, 0x6c, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x73, 0x22, 0x96, 0x01, 0x0a, 0x1d, 0x4c, 0x69, 0x73, 0x74, 0x57, 0x61,
	0x73, 0x68, 0x53, 0x61, 0x6c, 0x65, 0x56, 0x69, 0x6f, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x19, 0x0a, 0x08, 0x6f, 0x77, 0x6e, 0x65, 0x72,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6f, 0x77, 0x6e, 0x65, 0x72,
	0x49, 0x64, 0x12, 0x2e, 0x0a, 0x04, 0x66, 0x72, 0x6f, 0x6d, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62,
	0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x04, 0x66, 0x72,
	0x6f, 0x6d, 0x12, 0x2a, 0x0a, 0x02, 0x74, 0x6f, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a,
	0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66,
	0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x02, 0x74, 0x6f, 0x22, 0x61,
	0x0a, 0x1e, 0x4c, 0x69, 0x73, 0x74, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c, 0x65, 0x56, 0x69,
	0x6f, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x3f, 0x0a, 0x0a, 0x76, 0x69, 0x6f, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x18, 0x01,
	0x20, 0x03, 0x28, 0x0b, 0x32, 0x1f, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78,
	0x2e, 0x76, 0x31, 0x2e, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c, 0x65, 0x56, 0x69, 0x6f, 0x6c,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x0a, 0x76, 0x69, 0x6f, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e,
	0x73, 0x22, 0x68, 0x0a, 0x1c, 0x52, 0x75, 0x6e, 0x4e, 0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69, 0x7a,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x77, 0x65, 0x65, 0x70, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x19, 0x0a, 0x08, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x07, 0x6f, 0x77, 0x6e, 0x65, 0x72, 0x49, 0x64, 0x12, 0x2d, 0x0a, 0x12,
	0x72, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x69, 0x6e, 0x67, 0x5f, 0x63, 0x75, 0x72, 0x72, 0x65, 0x6e,
	0x63, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x11, 0x72, 0x65, 0x70, 0x6f, 0x72, 0x74,
	0x69, 0x6e, 0x67, 0x43, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x63, 0x79, 0x22, 0xa0, 0x01, 0x0a, 0x1d,
	0x52, 0x75, 0x6e, 0x4e, 0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69, 0x7a, 0x61, 0x74, 0x69, 0x6f, 0x6e,
	0x53, 0x77, 0x65, 0x65, 0x70, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x27, 0x0a,
	0x0f, 0x6c, 0x6f, 0x74, 0x73, 0x5f, 0x6e, 0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69, 0x7a, 0x65, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0e, 0x6c, 0x6f, 0x74, 0x73, 0x4e, 0x6f, 0x72, 0x6d,
	0x61, 0x6c, 0x69, 0x7a, 0x65, 0x64, 0x12, 0x31, 0x0a, 0x14, 0x64, 0x69, 0x73, 0x70, 0x6f, 0x73,
	0x61, 0x6c, 0x73, 0x5f, 0x6e, 0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69, 0x7a, 0x65, 0x64, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x13, 0x64, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x73, 0x4e,
	0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69, 0x7a, 0x65, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x73, 0x74, 0x69,
	0x6c, 0x6c, 0x5f, 0x70, 0x65, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x0c, 0x73, 0x74, 0x69, 0x6c, 0x6c, 0x50, 0x65, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x2a, 0xd9,
	0x01, 0x0a, 0x11, 0x41, 0x63, 0x71, 0x75, 0x69, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x4d, 0x65,
	0x74, 0x68, 0x6f, 0x64, 0x12, 0x22, 0x0a, 0x1e, 0x41, 0x43, 0x51, 0x55, 0x49, 0x53, 0x49, 0x54,
	0x49, 0x4f, 0x4e, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f, 0x44, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45,
	0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x1f, 0x0a, 0x1b, 0x41, 0x43, 0x51, 0x55,
	0x49, 0x53, 0x49, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f, 0x44, 0x5f, 0x50,
	0x55, 0x52, 0x43, 0x48, 0x41, 0x53, 0x45, 0x10, 0x01, 0x12, 0x1d, 0x0a, 0x19, 0x41, 0x43, 0x51,
	0x55, 0x49, 0x53, 0x49, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f, 0x44, 0x5f,
	0x52, 0x45, 0x57, 0x41, 0x52, 0x44, 0x10, 0x02, 0x12, 0x1e, 0x0a, 0x1a, 0x41, 0x43, 0x51, 0x55,
	0x49, 0x53, 0x49, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f, 0x44, 0x5f, 0x41,
	0x49, 0x52, 0x44, 0x52, 0x4f, 0x50, 0x10, 0x03, 0x12, 0x1c, 0x0a, 0x18, 0x41, 0x43, 0x51, 0x55,
	0x49, 0x53, 0x49, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f, 0x44, 0x5f, 0x4d,
	0x49, 0x4e, 0x45, 0x44, 0x10, 0x04, 0x12, 0x22, 0x0a, 0x1e, 0x41, 0x43, 0x51, 0x55, 0x49, 0x53,
	0x49, 0x54, 0x49, 0x4f, 0x4e, 0x5f, 0x4d, 0x45, 0x54, 0x48, 0x4f, 0x44, 0x5f, 0x54, 0x52, 0x41,
	0x4e, 0x53, 0x46, 0x45, 0x52, 0x5f, 0x49, 0x4e, 0x10, 0x05, 0x2a, 0x82, 0x01, 0x0a, 0x0b, 0x54,
	0x61, 0x78, 0x43, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x12, 0x1c, 0x0a, 0x18, 0x54, 0x41,
	0x58, 0x5f, 0x43, 0x41, 0x54, 0x45, 0x47, 0x4f, 0x52, 0x59, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45,
	0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x1b, 0x0a, 0x17, 0x54, 0x41, 0x58, 0x5f,
	0x43, 0x41, 0x54, 0x45, 0x47, 0x4f, 0x52, 0x59, 0x5f, 0x53, 0x48, 0x4f, 0x52, 0x54, 0x5f, 0x54,
	0x45, 0x52, 0x4d, 0x10, 0x01, 0x12, 0x1a, 0x0a, 0x16, 0x54, 0x41, 0x58, 0x5f, 0x43, 0x41, 0x54,
	0x45, 0x47, 0x4f, 0x52, 0x59, 0x5f, 0x4c, 0x4f, 0x4e, 0x47, 0x5f, 0x54, 0x45, 0x52, 0x4d, 0x10,
	0x02, 0x12, 0x1c, 0x0a, 0x18, 0x54, 0x41, 0x58, 0x5f, 0x43, 0x41, 0x54, 0x45, 0x47, 0x4f, 0x52,
	0x59, 0x5f, 0x4e, 0x4f, 0x4e, 0x5f, 0x54, 0x41, 0x58, 0x41, 0x42, 0x4c, 0x45, 0x10, 0x03, 0x32,
	0xdf, 0x05, 0x0a, 0x10, 0x43, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x54, 0x61, 0x78, 0x53, 0x65, 0x72,
	0x76, 0x69, 0x63, 0x65, 0x12, 0x64, 0x0a, 0x11, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x41, 0x63,
	0x71, 0x75, 0x69, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x26, 0x2e, 0x63, 0x72, 0x79, 0x70,
	0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x41,
	0x63, 0x71, 0x75, 0x69, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x27, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31,
	0x2e, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x41, 0x63, 0x71, 0x75, 0x69, 0x73, 0x69, 0x74, 0x69,
	0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5b, 0x0a, 0x0e, 0x52, 0x65,
	0x63, 0x6f, 0x72, 0x64, 0x44, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x12, 0x23, 0x2e, 0x63,
	0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x63, 0x6f,
	0x72, 0x64, 0x44, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x24, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31,
	0x2e, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x44, 0x69, 0x73, 0x70, 0x6f, 0x73, 0x61, 0x6c, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x58, 0x0a, 0x0d, 0x51, 0x75, 0x65, 0x72, 0x79,
	0x4f, 0x70, 0x65, 0x6e, 0x4c, 0x6f, 0x74, 0x73, 0x12, 0x22, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74,
	0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x51, 0x75, 0x65, 0x72, 0x79, 0x4f, 0x70, 0x65,
	0x6e, 0x4c, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e, 0x63,
	0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x51, 0x75, 0x65, 0x72,
	0x79, 0x4f, 0x70, 0x65, 0x6e, 0x4c, 0x6f, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x67, 0x0a, 0x12, 0x47, 0x65, 0x74, 0x52, 0x65, 0x61, 0x6c, 0x69, 0x7a, 0x65, 0x64,
	0x53, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x12, 0x27, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f,
	0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x52, 0x65, 0x61, 0x6c, 0x69, 0x7a,
	0x65, 0x64, 0x53, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x28, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e,
	0x47, 0x65, 0x74, 0x52, 0x65, 0x61, 0x6c, 0x69, 0x7a, 0x65, 0x64, 0x53, 0x75, 0x6d, 0x6d, 0x61,
	0x72, 0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5e, 0x0a, 0x0f, 0x44, 0x65,
	0x74, 0x65, 0x63, 0x74, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c, 0x65, 0x73, 0x12, 0x24, 0x2e,
	0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x65, 0x74,
	0x65, 0x63, 0x74, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e,
	0x76, 0x31, 0x2e, 0x44, 0x65, 0x74, 0x65, 0x63, 0x74, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c,
	0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x73, 0x0a, 0x16, 0x4c, 0x69,
	0x73, 0x74, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c, 0x65, 0x56, 0x69, 0x6f, 0x6c, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x73, 0x12, 0x2b, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78,
	0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c, 0x65,
	0x56, 0x69, 0x6f, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x2c, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31,
	0x2e, 0x4c, 0x69, 0x73, 0x74, 0x57, 0x61, 0x73, 0x68, 0x53, 0x61, 0x6c, 0x65, 0x56, 0x69, 0x6f,
	0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x70, 0x0a, 0x15, 0x52, 0x75, 0x6e, 0x4e, 0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69, 0x7a, 0x61, 0x74,
	0x69, 0x6f, 0x6e, 0x53, 0x77, 0x65, 0x65, 0x70, 0x12, 0x2a, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74,
	0x6f, 0x74, 0x61, 0x78, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x75, 0x6e, 0x4e, 0x6f, 0x72, 0x6d, 0x61,
	0x6c, 0x69, 0x7a, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x53, 0x77, 0x65, 0x65, 0x70, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x2b, 0x2e, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78,
	0x2e, 0x76, 0x31, 0x2e, 0x52, 0x75, 0x6e, 0x4e, 0x6f, 0x72, 0x6d, 0x61, 0x6c, 0x69, 0x7a, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x53, 0x77, 0x65, 0x65, 0x70, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x42, 0x57, 0x5a, 0x55, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f,
	0x73, 0x69, 0x6d, 0x61, 0x6f, 0x67, 0x61, 0x74, 0x6f, 0x2f, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f,
	0x74, 0x61, 0x78, 0x2d, 0x62, 0x61, 0x63, 0x6b, 0x65, 0x6e, 0x64, 0x2f, 0x69, 0x6e, 0x74, 0x65,
	0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x61, 0x64, 0x61, 0x70, 0x74, 0x65, 0x72, 0x2f, 0x67, 0x72, 0x70,
	0x63, 0x2f, 0x63, 0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x2f, 0x76, 0x31, 0x3b, 0x63,
	0x72, 0x79, 0x70, 0x74, 0x6f, 0x74, 0x61, 0x78, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x33,
}

var (
	file_cryptotax_v1_cryptotax_proto_rawDescOnce sync.Once
	file_cryptotax_v1_cryptotax_proto_rawDescData = file_cryptotax_v1_cryptotax_proto_rawDesc
)

func file_cryptotax_v1_cryptotax_proto_rawDescGZIP() []byte {
	file_cryptotax_v1_cryptotax_proto_rawDescOnce.Do(func() {
		file_cryptotax_v1_cryptotax_proto_rawDescData = protoimpl.X.CompressGZIP(file_cryptotax_v1_cryptotax_proto_rawDescData)
	})
	return file_cryptotax_v1_cryptotax_proto_rawDescData
}

var file_cryptotax_v1_cryptotax_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_cryptotax_v1_cryptotax_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_cryptotax_v1_cryptotax_proto_goTypes = []any{
	(AcquisitionMethod)(0),                 // 0: cryptotax.v1.AcquisitionMethod
	(TaxCategory)(0),                       // 1: cryptotax.v1.TaxCategory
	(*Token)(nil),                          // 2: cryptotax.v1.Token
	(*RecordAcquisitionRequest)(nil),       // 3: cryptotax.v1.RecordAcquisitionRequest
	(*RecordAcquisitionResponse)(nil),      // 4: cryptotax.v1.RecordAcquisitionResponse
	(*RecordDisposalRequest)(nil),          // 5: cryptotax.v1.RecordDisposalRequest
	(*DisposalSlice)(nil),                  // 6: cryptotax.v1.DisposalSlice
	(*RecordDisposalResponse)(nil),         // 7: cryptotax.v1.RecordDisposalResponse
	(*QueryOpenLotsRequest)(nil),           // 8: cryptotax.v1.QueryOpenLotsRequest
	(*Lot)(nil),                            // 9: cryptotax.v1.Lot
	(*QueryOpenLotsResponse)(nil),          // 10: cryptotax.v1.QueryOpenLotsResponse
	(*GetRealizedSummaryRequest)(nil),      // 11: cryptotax.v1.GetRealizedSummaryRequest
	(*GetRealizedSummaryResponse)(nil),     // 12: cryptotax.v1.GetRealizedSummaryResponse
	(*DetectWashSalesRequest)(nil),         // 13: cryptotax.v1.DetectWashSalesRequest
	(*WashSaleViolation)(nil),              // 14: cryptotax.v1.WashSaleViolation
	(*DetectWashSalesResponse)(nil),        // 15: cryptotax.v1.DetectWashSalesResponse
	(*ListWashSaleViolationsRequest)(nil),  // 16: cryptotax.v1.ListWashSaleViolationsRequest
	(*ListWashSaleViolationsResponse)(nil), // 17: cryptotax.v1.ListWashSaleViolationsResponse
	(*RunNormalizationSweepRequest)(nil),   // 18: cryptotax.v1.RunNormalizationSweepRequest
	(*RunNormalizationSweepResponse)(nil),  // 19: cryptotax.v1.RunNormalizationSweepResponse
	(*timestamppb.Timestamp)(nil),          // 20: google.protobuf.Timestamp
}
var file_cryptotax_v1_cryptotax_proto_depIdxs = []int32{
	2,  // 0: cryptotax.v1.RecordAcquisitionRequest.token:type_name -> cryptotax.v1.Token
	20, // 1: cryptotax.v1.RecordAcquisitionRequest.timestamp:type_name -> google.protobuf.Timestamp
	0,  // 2: cryptotax.v1.RecordAcquisitionRequest.method:type_name -> cryptotax.v1.AcquisitionMethod
	20, // 3: cryptotax.v1.RecordAcquisitionResponse.acquired_at:type_name -> google.protobuf.Timestamp
	2,  // 4: cryptotax.v1.RecordDisposalRequest.token:type_name -> cryptotax.v1.Token
	20, // 5: cryptotax.v1.RecordDisposalRequest.timestamp:type_name -> google.protobuf.Timestamp
	1,  // 6: cryptotax.v1.DisposalSlice.category:type_name -> cryptotax.v1.TaxCategory
	6,  // 7: cryptotax.v1.RecordDisposalResponse.slices:type_name -> cryptotax.v1.DisposalSlice
	2,  // 8: cryptotax.v1.QueryOpenLotsRequest.token:type_name -> cryptotax.v1.Token
	2,  // 9: cryptotax.v1.Lot.token:type_name -> cryptotax.v1.Token
	20, // 10: cryptotax.v1.Lot.acquired_at:type_name -> google.protobuf.Timestamp
	0,  // 11: cryptotax.v1.Lot.method:type_name -> cryptotax.v1.AcquisitionMethod
	9,  // 12: cryptotax.v1.QueryOpenLotsResponse.lots:type_name -> cryptotax.v1.Lot
	20, // 13: cryptotax.v1.GetRealizedSummaryRequest.from:type_name -> google.protobuf.Timestamp
	20, // 14: cryptotax.v1.GetRealizedSummaryRequest.to:type_name -> google.protobuf.Timestamp
	20, // 15: cryptotax.v1.DetectWashSalesRequest.from:type_name -> google.protobuf.Timestamp
	20, // 16: cryptotax.v1.DetectWashSalesRequest.to:type_name -> google.protobuf.Timestamp
	20, // 17: cryptotax.v1.WashSaleViolation.detected_at:type_name -> google.protobuf.Timestamp
	14, // 18: cryptotax.v1.DetectWashSalesResponse.violations:type_name -> cryptotax.v1.WashSaleViolation
	20, // 19: cryptotax.v1.ListWashSaleViolationsRequest.from:type_name -> google.protobuf.Timestamp
	20, // 20: cryptotax.v1.ListWashSaleViolationsRequest.to:type_name -> google.protobuf.Timestamp
	14, // 21: cryptotax.v1.ListWashSaleViolationsResponse.violations:type_name -> cryptotax.v1.WashSaleViolation
	3,  // 22: cryptotax.v1.CryptoTaxService.RecordAcquisition:input_type -> cryptotax.v1.RecordAcquisitionRequest
	5,  // 23: cryptotax.v1.CryptoTaxService.RecordDisposal:input_type -> cryptotax.v1.RecordDisposalRequest
	8,  // 24: cryptotax.v1.CryptoTaxService.QueryOpenLots:input_type -> cryptotax.v1.QueryOpenLotsRequest
	11, // 25: cryptotax.v1.CryptoTaxService.GetRealizedSummary:input_type -> cryptotax.v1.GetRealizedSummaryRequest
	13, // 26: cryptotax.v1.CryptoTaxService.DetectWashSales:input_type -> cryptotax.v1.DetectWashSalesRequest
	16, // 27: cryptotax.v1.CryptoTaxService.ListWashSaleViolations:input_type -> cryptotax.v1.ListWashSaleViolationsRequest
	18, // 28: cryptotax.v1.CryptoTaxService.RunNormalizationSweep:input_type -> cryptotax.v1.RunNormalizationSweepRequest
	4,  // 29: cryptotax.v1.CryptoTaxService.RecordAcquisition:output_type -> cryptotax.v1.RecordAcquisitionResponse
	7,  // 30: cryptotax.v1.CryptoTaxService.RecordDisposal:output_type -> cryptotax.v1.RecordDisposalResponse
	10, // 31: cryptotax.v1.CryptoTaxService.QueryOpenLots:output_type -> cryptotax.v1.QueryOpenLotsResponse
	12, // 32: cryptotax.v1.CryptoTaxService.GetRealizedSummary:output_type -> cryptotax.v1.GetRealizedSummaryResponse
	15, // 33: cryptotax.v1.CryptoTaxService.DetectWashSales:output_type -> cryptotax.v1.DetectWashSalesResponse
	17, // 34: cryptotax.v1.CryptoTaxService.ListWashSaleViolations:output_type -> cryptotax.v1.ListWashSaleViolationsResponse
	19, // 35: cryptotax.v1.CryptoTaxService.RunNormalizationSweep:output_type -> cryptotax.v1.RunNormalizationSweepResponse
	29, // [29:36] is the sub-list for method output_type
	22, // [22:29] is the sub-list for method input_type
	22, // [22:22] is the sub-list for extension type_name
	22, // [22:22] is the sub-list for extension extendee
	0,  // [0:22] is the sub-list for field type_name
}

func init() { file_cryptotax_v1_cryptotax_proto_init() }
func file_cryptotax_v1_cryptotax_proto_init() {
	if File_cryptotax_v1_cryptotax_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_cryptotax_v1_cryptotax_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*Token); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*RecordAcquisitionRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*RecordAcquisitionResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*RecordDisposalRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*DisposalSlice); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*RecordDisposalResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*QueryOpenLotsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*Lot); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*QueryOpenLotsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*GetRealizedSummaryRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*GetRealizedSummaryResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*DetectWashSalesRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*WashSaleViolation); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[13].Exporter = func(v any, i int) any {
			switch v := v.(*DetectWashSalesResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[14].Exporter = func(v any, i int) any {
			switch v := v.(*ListWashSaleViolationsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[15].Exporter = func(v any, i int) any {
			switch v := v.(*ListWashSaleViolationsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[16].Exporter = func(v any, i int) any {
			switch v := v.(*RunNormalizationSweepRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_cryptotax_v1_cryptotax_proto_msgTypes[17].Exporter = func(v any, i int) any {
			switch v := v.(*RunNormalizationSweepResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_cryptotax_v1_cryptotax_proto_rawDesc,
			NumEnums:      2,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_cryptotax_v1_cryptotax_proto_goTypes,
		DependencyIndexes: file_cryptotax_v1_cryptotax_proto_depIdxs,
		EnumInfos:         file_cryptotax_v1_cryptotax_proto_enumTypes,
		MessageInfos:      file_cryptotax_v1_cryptotax_proto_msgTypes,
	}.Build()
	File_cryptotax_v1_cryptotax_proto = out.File
	file_cryptotax_v1_cryptotax_proto_rawDesc = nil
	file_cryptotax_v1_cryptotax_proto_goTypes = nil
	file_cryptotax_v1_cryptotax_proto_depIdxs = nil
}
