package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"code.vegaprotocol.io/rgbwallet/rgb"
)

const (
	DefaultFeeRate   float32 = 1.0
	DefaultAmount    uint64  = 1
	DefaultPrecision uint8   = 0
	DefaultTicker            = ""
)

var ErrEmptyBody = errors.New("the request body is empty")

// DecodeError is returned when a request can't be turned into a call to the
// backend. It is always answered with a 400.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(format string, args ...interface{}) *DecodeError {
	return &DecodeError{Err: fmt.Errorf(format, args...)}
}

// SendBTCRequest describes the request for SendBtc.
type SendBTCRequest struct {
	Address *string  `json:"address"`
	Amount  *uint64  `json:"amount"`
	FeeRate *float32 `json:"fee_rate"`
}

func (r SendBTCRequest) validate() error {
	if r.Address == nil {
		return newDecodeError("missing address field")
	}
	if r.Amount == nil {
		return newDecodeError("missing amount field")
	}
	if r.FeeRate == nil {
		return newDecodeError("missing fee_rate field")
	}
	return nil
}

// PrepareIssuanceRequest describes the request for CreateUtxos.
type PrepareIssuanceRequest struct {
	FeeRate *float32 `json:"fee_rate"`
}

func (r PrepareIssuanceRequest) FeeRateOrDefault() float32 {
	return feeRateOrDefault(r.FeeRate)
}

// IssueAssetRequest describes the request for the issuance of any kind of
// asset, optionally followed by a transfer to Recipient.
type IssueAssetRequest struct {
	AssetType *rgb.AssetType `json:"asset_type"`
	Ticker    *string        `json:"ticker"`
	Name      *string        `json:"name"`
	Details   *string        `json:"details"`
	Precision *uint8         `json:"precision"`
	Amount    *uint64        `json:"amount"`
	Filename  *string        `json:"filename"`
	Recipient *string        `json:"recipient"`
	FeeRate   *float32       `json:"fee_rate"`
}

func (r IssueAssetRequest) validate() error {
	if r.AssetType == nil {
		return newDecodeError("missing asset_type field")
	}
	if r.Name == nil {
		return newDecodeError("missing name field")
	}
	return nil
}

func (r IssueAssetRequest) AmountOrDefault() uint64 {
	if r.Amount == nil {
		return DefaultAmount
	}
	return *r.Amount
}

func (r IssueAssetRequest) FeeRateOrDefault() float32 {
	return feeRateOrDefault(r.FeeRate)
}

// Asset returns the descriptor handed to the backend, with the defaults
// applied. The whole amount is issued to a single allocation.
func (r IssueAssetRequest) Asset() rgb.Asset {
	ticker := DefaultTicker
	if r.Ticker != nil {
		ticker = *r.Ticker
	}
	precision := DefaultPrecision
	if r.Precision != nil {
		precision = *r.Precision
	}

	return rgb.Asset{
		AssetType: *r.AssetType,
		Ticker:    ticker,
		Name:      *r.Name,
		Details:   r.Details,
		Precision: precision,
		Amounts:   []uint64{r.AmountOrDefault()},
		Filename:  r.Filename,
	}
}

// SendAssetsRequest describes the request for Send.
type SendAssetsRequest struct {
	Recipient *string  `json:"recipient"`
	Amount    *uint64  `json:"amount"`
	FeeRate   *float32 `json:"fee_rate"`
}

func (r SendAssetsRequest) validate() error {
	if r.Recipient == nil {
		return newDecodeError("missing recipient field")
	}
	return nil
}

func (r SendAssetsRequest) AmountOrDefault() uint64 {
	if r.Amount == nil {
		return DefaultAmount
	}
	return *r.Amount
}

func (r SendAssetsRequest) FeeRateOrDefault() float32 {
	return feeRateOrDefault(r.FeeRate)
}

// InvoiceAssetRequest describes the request for BlindReceive and
// WitnessReceive.
type InvoiceAssetRequest struct {
	InvoiceType     *rgb.InvoiceType `json:"invoice_type"`
	AssetID         *string          `json:"asset_id"`
	Amount          *uint64          `json:"amount"`
	DurationSeconds *uint32          `json:"duration_seconds"`
}

func (r InvoiceAssetRequest) validate() error {
	if r.InvoiceType == nil {
		return newDecodeError("missing invoice_type field")
	}
	return nil
}

func feeRateOrDefault(feeRate *float32) float32 {
	if feeRate == nil {
		return DefaultFeeRate
	}
	return *feeRate
}

type validator interface {
	validate() error
}

// unmarshalBody decodes the JSON body into the request. A blank body, a
// malformed document, a value of the wrong type, or a missing required field
// are all reported as a *DecodeError.
func unmarshalBody(r *http.Request, into interface{}) error {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return newDecodeError("couldn't read the request body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return &DecodeError{Err: ErrEmptyBody}
	}
	if err := json.Unmarshal(body, into); err != nil {
		return newDecodeError("invalid request body: %w", err)
	}
	if v, ok := into.(validator); ok {
		return v.validate()
	}
	return nil
}
