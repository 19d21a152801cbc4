package rgb

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedAssetType   = errors.New("unsupported asset type")
	ErrUnsupportedInvoiceType = errors.New("unsupported invoice type")
)

// AssetType is the RGB schema an asset is issued with.
type AssetType uint8

const (
	// AssetTypeNIA is a Non-Inflatable Asset (fungible).
	AssetTypeNIA AssetType = iota
	// AssetTypeCFA is a Collectible Fungible Asset.
	AssetTypeCFA
	// AssetTypeUDA is a Unique Digital Asset.
	AssetTypeUDA
)

func (t AssetType) String() string {
	switch t {
	case AssetTypeNIA:
		return "NIA"
	case AssetTypeCFA:
		return "CFA"
	case AssetTypeUDA:
		return "UDA"
	default:
		return fmt.Sprintf("AssetType(%d)", uint8(t))
	}
}

func ParseAssetType(s string) (AssetType, error) {
	switch s {
	case "NIA":
		return AssetTypeNIA, nil
	case "CFA":
		return AssetTypeCFA, nil
	case "UDA":
		return AssetTypeUDA, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAssetType, s)
	}
}

func (t AssetType) MarshalText() ([]byte, error) {
	switch t {
	case AssetTypeNIA, AssetTypeCFA, AssetTypeUDA:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAssetType, uint8(t))
	}
}

func (t *AssetType) UnmarshalText(text []byte) error {
	parsed, err := ParseAssetType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// InvoiceType selects how the recipient's commitment is disclosed.
type InvoiceType uint8

const (
	InvoiceTypeBlind InvoiceType = iota
	InvoiceTypeWitness
)

func (t InvoiceType) String() string {
	switch t {
	case InvoiceTypeBlind:
		return "BLIND"
	case InvoiceTypeWitness:
		return "WITNESS"
	default:
		return fmt.Sprintf("InvoiceType(%d)", uint8(t))
	}
}

func ParseInvoiceType(s string) (InvoiceType, error) {
	switch s {
	case "BLIND":
		return InvoiceTypeBlind, nil
	case "WITNESS":
		return InvoiceTypeWitness, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedInvoiceType, s)
	}
}

func (t InvoiceType) MarshalText() ([]byte, error) {
	switch t {
	case InvoiceTypeBlind, InvoiceTypeWitness:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedInvoiceType, uint8(t))
	}
}

func (t *InvoiceType) UnmarshalText(text []byte) error {
	parsed, err := ParseInvoiceType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Asset describes an asset to issue.
type Asset struct {
	AssetType AssetType `json:"asset_type"`
	Ticker    string    `json:"ticker"`
	Name      string    `json:"name"`
	Details   *string   `json:"details,omitempty"`
	Precision uint8     `json:"precision"`
	Amounts   []uint64  `json:"amounts"`
	Filename  *string   `json:"filename,omitempty"`
}

type Outpoint struct {
	Txid string `json:"txid"`
	Vout uint32 `json:"vout"`
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.Txid, o.Vout)
}

type Utxo struct {
	Outpoint  Outpoint `json:"outpoint"`
	BtcAmount uint64   `json:"btc_amount"`
	Colorable bool     `json:"colorable"`
	Exists    bool     `json:"exists"`
}

type RgbAllocation struct {
	AssetID *string `json:"asset_id,omitempty"`
	Amount  uint64  `json:"amount"`
	Settled bool    `json:"settled"`
}

// Unspent is a wallet UTXO with the RGB allocations it carries.
type Unspent struct {
	Utxo           Utxo            `json:"utxo"`
	RgbAllocations []RgbAllocation `json:"rgb_allocations"`
}

type Balance struct {
	Settled   uint64 `json:"settled"`
	Future    uint64 `json:"future"`
	Spendable uint64 `json:"spendable"`
}

type Media struct {
	FilePath string `json:"file_path"`
	Mime     string `json:"mime"`
}

type AssetNIA struct {
	AssetID      string  `json:"asset_id"`
	AssetIface   string  `json:"asset_iface"`
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	Details      *string `json:"details,omitempty"`
	Precision    uint8   `json:"precision"`
	IssuedSupply uint64  `json:"issued_supply"`
	Timestamp    int64   `json:"timestamp"`
	AddedAt      int64   `json:"added_at"`
	Balance      Balance `json:"balance"`
	Media        *Media  `json:"media,omitempty"`
}

type AssetCFA struct {
	AssetID      string  `json:"asset_id"`
	AssetIface   string  `json:"asset_iface"`
	Name         string  `json:"name"`
	Details      *string `json:"details,omitempty"`
	Precision    uint8   `json:"precision"`
	IssuedSupply uint64  `json:"issued_supply"`
	Timestamp    int64   `json:"timestamp"`
	AddedAt      int64   `json:"added_at"`
	Balance      Balance `json:"balance"`
	Media        *Media  `json:"media,omitempty"`
}

type TokenLight struct {
	Index    uint32  `json:"index"`
	Ticker   *string `json:"ticker,omitempty"`
	Name     *string `json:"name,omitempty"`
	Details  *string `json:"details,omitempty"`
	Embedded bool    `json:"embedded_media"`
	Media    *Media  `json:"media,omitempty"`
	Reserves bool    `json:"reserves"`
}

type AssetUDA struct {
	AssetID      string      `json:"asset_id"`
	AssetIface   string      `json:"asset_iface"`
	Ticker       string      `json:"ticker"`
	Name         string      `json:"name"`
	Details      *string     `json:"details,omitempty"`
	Precision    uint8       `json:"precision"`
	IssuedSupply uint64      `json:"issued_supply"`
	Timestamp    int64       `json:"timestamp"`
	AddedAt      int64       `json:"added_at"`
	Balance      Balance     `json:"balance"`
	Token        *TokenLight `json:"token,omitempty"`
}

// Assets groups the wallet assets by schema. A nil slice means the schema
// was not requested.
type Assets struct {
	NIA []AssetNIA `json:"nia"`
	UDA []AssetUDA `json:"uda"`
	CFA []AssetCFA `json:"cfa"`
}

// Metadata about a single asset.
type Metadata struct {
	AssetIface   string  `json:"asset_iface"`
	AssetSchema  string  `json:"asset_schema"`
	IssuedSupply uint64  `json:"issued_supply"`
	Timestamp    int64   `json:"timestamp"`
	Name         string  `json:"name"`
	Precision    uint8   `json:"precision"`
	Ticker       *string `json:"ticker,omitempty"`
	Details      *string `json:"details,omitempty"`
}

type TransportEndpoint struct {
	Endpoint      string `json:"endpoint"`
	TransportType string `json:"transport_type"`
	Used          bool   `json:"used"`
}

type Transfer struct {
	Idx                int32               `json:"idx"`
	BatchTransferIdx   int32               `json:"batch_transfer_idx"`
	CreatedAt          int64               `json:"created_at"`
	UpdatedAt          int64               `json:"updated_at"`
	Status             string              `json:"status"`
	Amount             uint64              `json:"amount"`
	Kind               string              `json:"kind"`
	Txid               *string             `json:"txid,omitempty"`
	RecipientID        *string             `json:"recipient_id,omitempty"`
	ReceiveUtxo        *Outpoint           `json:"receive_utxo,omitempty"`
	ChangeUtxo         *Outpoint           `json:"change_utxo,omitempty"`
	Expiration         *int64              `json:"expiration,omitempty"`
	TransportEndpoints []TransportEndpoint `json:"transport_endpoints"`
}

// ReceiveData is the result of an invoice generation.
type ReceiveData struct {
	Invoice             string `json:"invoice"`
	RecipientID         string `json:"recipient_id"`
	ExpirationTimestamp *int64 `json:"expiration_timestamp,omitempty"`
	BatchTransferIdx    int32  `json:"batch_transfer_idx"`
}
