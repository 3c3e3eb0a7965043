package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest records a product sale. UnitPrice zero means the
// product's listed price applies.
type RecordSaleRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"dgte0"`
	OnCredit  bool            `json:"onCredit"`
	PartyID   string          `json:"partyID"` // client, required when OnCredit
	Date      time.Time       `json:"date" binding:"required"`
}

// RestockRequest records a stock purchase, cash or on supplier credit.
type RestockRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unitCost" binding:"dgt0"`
	OnCredit  bool            `json:"onCredit"`
	PartyID   string          `json:"partyID"` // supplier, required when OnCredit
	Date      time.Time       `json:"date" binding:"required"`
}

// SettlementRequest settles part of a third party's open balance: a client
// collection or a supplier payment depending on the party's role.
type SettlementRequest struct {
	PartyID string          `json:"partyID" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"dgt0"`
	Date    time.Time       `json:"date" binding:"required"`
}

// CreateProductRequest adds a stocked good.
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"gte=0"`
	UnitCost  decimal.Decimal `json:"unitCost" binding:"dgte0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"dgte0"`
	Taxable   bool            `json:"taxable"`
}

// CreatePartyRequest adds a client or supplier.
type CreatePartyRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required,oneof=CLIENT SUPPLIER"`
	Phone string `json:"phone"`
}

// CreateFixedAssetRequest adds an asset to the amortization register.
type CreateFixedAssetRequest struct {
	Name             string          `json:"name" binding:"required"`
	Cost             decimal.Decimal `json:"cost" binding:"dgt0"`
	UsefulLifeMonths int64           `json:"usefulLifeMonths" binding:"required,gt=0"`
	AcquiredAt       time.Time       `json:"acquiredAt" binding:"required"`
}
