package rgb

import "context"

// Client is the set of wallet operations a backend must provide. Every
// method either succeeds with a complete result or fails with an error, the
// *Error kinds being the ones callers are expected to classify.
//
// A single Client is shared by all concurrent requests, implementations must
// be safe for concurrent use.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/client_mock.go -package mocks code.vegaprotocol.io/rgbwallet/rgb Client
//nolint:interfacebloat
type Client interface {
	GetAddress(ctx context.Context) (string, error)
	GetBtcBalance(ctx context.Context) (uint64, error)
	ListUnspents(ctx context.Context) ([]Unspent, error)
	CreateUtxos(ctx context.Context, feeRate float32) (uint8, error)
	IssueAssetNIA(ctx context.Context, asset Asset) (string, error)
	IssueAssetCFA(ctx context.Context, asset Asset) (string, error)
	IssueAssetUDA(ctx context.Context, asset Asset) (string, error)
	Send(ctx context.Context, assetID, recipient string, transportEndpoints bool, feeRate float32, amount uint64) (string, error)
	SendBtc(ctx context.Context, address string, amount uint64, feeRate float32) (string, error)
	ListAssets(ctx context.Context) (*Assets, error)
	GetAsset(ctx context.Context, id string) (*Metadata, error)
	ListTransfers(ctx context.Context, assetID *string) ([]Transfer, error)
	BlindReceive(ctx context.Context, assetID *string, amount *uint64, durationSeconds *uint32) (*ReceiveData, error)
	WitnessReceive(ctx context.Context, assetID *string, amount *uint64, durationSeconds *uint32) (*ReceiveData, error)
	Refresh(ctx context.Context, assetID *string) error
}
