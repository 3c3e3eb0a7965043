package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a stocked good. UnitCost is the cost basis used for COGS lines
// when a sale is recorded.
type Product struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Taxable   bool            `json:"taxable"`
	AuditFields
}

// Sale is a recorded product sale. It triggers journal-line generation but is
// otherwise a plain source record.
type Sale struct {
	SaleID        string          `json:"saleID"`
	ProductID     string          `json:"productID"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"` // pre-tax
	Tax           decimal.Decimal `json:"tax"`
	CostBasis     decimal.Decimal `json:"costBasis"`
	OnCredit      bool            `json:"onCredit"`
	PartyID       string          `json:"partyID,omitempty"` // client, required for credit sales
	Date          time.Time       `json:"date"`
	TransactionID string          `json:"transactionID"`
	AuditFields
}

// Transfer is a money-transfer job executed for a client through a payment
// service. ExchangeRate is the single fixed rate applied to this transfer.
type Transfer struct {
	TransferID    string          `json:"transferID"`
	Date          time.Time       `json:"date"`
	ServiceID     string          `json:"serviceID"`
	Amount        decimal.Decimal `json:"amount"`
	Fees          decimal.Decimal `json:"fees"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	SenderName    string          `json:"senderName"`
	ReceiverName  string          `json:"receiverName"`
	ReceiverPhone string          `json:"receiverPhone"`
	Notes         string          `json:"notes"`
	OperationID   string          `json:"operationID"`
	AuditFields
}

// FixedAsset feeds the report-time straight-line amortization adjustment.
// Depreciation is never posted to the journal.
type FixedAsset struct {
	AssetID         string          `json:"assetID"`
	Name            string          `json:"name"`
	Cost            decimal.Decimal `json:"cost"`
	UsefulLifeMonth int64           `json:"usefulLifeMonths"`
	AcquiredAt      time.Time       `json:"acquiredAt"`
	AuditFields
}
