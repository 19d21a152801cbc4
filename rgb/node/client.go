package node

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"code.vegaprotocol.io/rgbwallet/logging"
	"code.vegaprotocol.io/rgbwallet/rgb"

	"github.com/cenkalti/backoff/v4"
)

const namedLogger = "node"

var ErrUnexpectedResponse = errors.New("unexpected response from the node")

// Client implements rgb.Client against the JSON API of an RGB node.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	log     *logging.Logger
	cfg     Config
	baseURL string
	http    *http.Client
}

func New(log *logging.Logger, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		log:     log.Named(namedLogger),
		cfg:     cfg,
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout.Get(),
		},
	}, nil
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

type assetFilter struct {
	AssetID *string `json:"asset_id,omitempty"`
}

type receiveRequest struct {
	AssetID         *string `json:"asset_id,omitempty"`
	Amount          *uint64 `json:"amount,omitempty"`
	DurationSeconds *uint32 `json:"duration_seconds,omitempty"`
}

type btcBalanceResponse struct {
	Vanilla rgb.Balance `json:"vanilla"`
	Colored rgb.Balance `json:"colored"`
}

func (c *Client) GetAddress(ctx context.Context) (string, error) {
	resp := struct {
		Address string `json:"address"`
	}{}
	if err := c.call(ctx, "/address", struct{}{}, &resp); err != nil {
		return "", err
	}
	return resp.Address, nil
}

// GetBtcBalance returns the spendable amount, in satoshis, of the vanilla
// wallet.
func (c *Client) GetBtcBalance(ctx context.Context) (uint64, error) {
	resp := btcBalanceResponse{}
	if err := c.query(ctx, "/btcbalance", struct{}{}, &resp); err != nil {
		return 0, err
	}
	return resp.Vanilla.Spendable, nil
}

func (c *Client) ListUnspents(ctx context.Context) ([]rgb.Unspent, error) {
	resp := struct {
		Unspents []rgb.Unspent `json:"unspents"`
	}{}
	if err := c.query(ctx, "/listunspents", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Unspents, nil
}

func (c *Client) CreateUtxos(ctx context.Context, feeRate float32) (uint8, error) {
	req := struct {
		UpTo    bool    `json:"up_to"`
		FeeRate float32 `json:"fee_rate"`
	}{
		UpTo:    true,
		FeeRate: feeRate,
	}
	resp := struct {
		Created uint8 `json:"created"`
	}{}
	if err := c.call(ctx, "/createutxos", req, &resp); err != nil {
		return 0, err
	}
	return resp.Created, nil
}

func (c *Client) IssueAssetNIA(ctx context.Context, asset rgb.Asset) (string, error) {
	req := struct {
		Ticker    string   `json:"ticker"`
		Name      string   `json:"name"`
		Precision uint8    `json:"precision"`
		Amounts   []uint64 `json:"amounts"`
	}{
		Ticker:    asset.Ticker,
		Name:      asset.Name,
		Precision: asset.Precision,
		Amounts:   asset.Amounts,
	}
	return c.issue(ctx, "/issueassetnia", req)
}

func (c *Client) IssueAssetCFA(ctx context.Context, asset rgb.Asset) (string, error) {
	req := struct {
		Name      string   `json:"name"`
		Details   *string  `json:"details,omitempty"`
		Precision uint8    `json:"precision"`
		Amounts   []uint64 `json:"amounts"`
		FilePath  *string  `json:"file_path,omitempty"`
	}{
		Name:      asset.Name,
		Details:   asset.Details,
		Precision: asset.Precision,
		Amounts:   asset.Amounts,
		FilePath:  asset.Filename,
	}
	return c.issue(ctx, "/issueassetcfa", req)
}

func (c *Client) IssueAssetUDA(ctx context.Context, asset rgb.Asset) (string, error) {
	req := struct {
		Ticker        string  `json:"ticker"`
		Name          string  `json:"name"`
		Details       *string `json:"details,omitempty"`
		Precision     uint8   `json:"precision"`
		MediaFilePath *string `json:"media_file_path,omitempty"`
	}{
		Ticker:        asset.Ticker,
		Name:          asset.Name,
		Details:       asset.Details,
		Precision:     asset.Precision,
		MediaFilePath: asset.Filename,
	}
	return c.issue(ctx, "/issueassetuda", req)
}

func (c *Client) issue(ctx context.Context, path string, req interface{}) (string, error) {
	resp := struct {
		AssetID string `json:"asset_id"`
	}{}
	if err := c.call(ctx, path, req, &resp); err != nil {
		return "", err
	}
	if resp.AssetID == "" {
		return "", rgb.NewOnlineError(fmt.Errorf("%w: missing asset_id", ErrUnexpectedResponse))
	}
	return resp.AssetID, nil
}

func (c *Client) Send(ctx context.Context, assetID, recipient string, transportEndpoints bool, feeRate float32, amount uint64) (string, error) {
	req := struct {
		AssetID               string  `json:"asset_id"`
		RecipientID           string  `json:"recipient_id"`
		UseTransportEndpoints bool    `json:"use_transport_endpoints"`
		FeeRate               float32 `json:"fee_rate"`
		Amount                uint64  `json:"amount"`
	}{
		AssetID:               assetID,
		RecipientID:           recipient,
		UseTransportEndpoints: transportEndpoints,
		FeeRate:               feeRate,
		Amount:                amount,
	}
	return c.sendTx(ctx, "/sendasset", req)
}

func (c *Client) SendBtc(ctx context.Context, address string, amount uint64, feeRate float32) (string, error) {
	req := struct {
		Address string  `json:"address"`
		Amount  uint64  `json:"amount"`
		FeeRate float32 `json:"fee_rate"`
	}{
		Address: address,
		Amount:  amount,
		FeeRate: feeRate,
	}
	return c.sendTx(ctx, "/sendbtc", req)
}

func (c *Client) sendTx(ctx context.Context, path string, req interface{}) (string, error) {
	resp := struct {
		Txid string `json:"txid"`
	}{}
	if err := c.call(ctx, path, req, &resp); err != nil {
		return "", err
	}
	return resp.Txid, nil
}

func (c *Client) ListAssets(ctx context.Context) (*rgb.Assets, error) {
	resp := &rgb.Assets{}
	if err := c.query(ctx, "/listassets", struct{}{}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetAsset(ctx context.Context, id string) (*rgb.Metadata, error) {
	resp := &rgb.Metadata{}
	if err := c.query(ctx, "/assetmetadata", assetFilter{AssetID: &id}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) ListTransfers(ctx context.Context, assetID *string) ([]rgb.Transfer, error) {
	resp := struct {
		Transfers []rgb.Transfer `json:"transfers"`
	}{}
	if err := c.query(ctx, "/listtransfers", assetFilter{AssetID: assetID}, &resp); err != nil {
		return nil, err
	}
	return resp.Transfers, nil
}

func (c *Client) BlindReceive(ctx context.Context, assetID *string, amount *uint64, durationSeconds *uint32) (*rgb.ReceiveData, error) {
	return c.receive(ctx, "/blindreceive", receiveRequest{
		AssetID:         assetID,
		Amount:          amount,
		DurationSeconds: durationSeconds,
	})
}

func (c *Client) WitnessReceive(ctx context.Context, assetID *string, amount *uint64, durationSeconds *uint32) (*rgb.ReceiveData, error) {
	return c.receive(ctx, "/witnessreceive", receiveRequest{
		AssetID:         assetID,
		Amount:          amount,
		DurationSeconds: durationSeconds,
	})
}

// receive turns every rejection of the node into an invoice error, only the
// connectivity failures are kept as online errors.
func (c *Client) receive(ctx context.Context, path string, req receiveRequest) (*rgb.ReceiveData, error) {
	resp := &rgb.ReceiveData{}
	if err := c.call(ctx, path, req, resp); err != nil {
		var rgbErr *rgb.Error
		if errors.As(err, &rgbErr) && rgbErr.Kind == rgb.KindGeneric {
			return nil, rgb.NewInvoiceError(rgbErr.Err)
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) Refresh(ctx context.Context, assetID *string) error {
	return c.call(ctx, "/refreshtransfers", assetFilter{AssetID: assetID}, nil)
}

// query is call, retried while the node is unreachable. Only read-only
// endpoints go through here.
func (c *Client) query(ctx context.Context, path string, req, resp interface{}) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.RetryInterval.Get()

	attempt := 0
	return backoff.Retry(
		func() error {
			attempt++
			err := c.call(ctx, path, req, resp)
			if err == nil {
				return nil
			}
			if kind, _ := rgb.KindOf(err); kind != rgb.KindOnline {
				return backoff.Permanent(err)
			}
			c.log.Debug("node unreachable, retrying",
				logging.String("path", path),
				logging.Int("attempt", attempt),
				logging.Error(err),
			)
			return err
		},
		backoff.WithContext(backoff.WithMaxRetries(b, c.cfg.MaxRetries), ctx),
	)
}

func (c *Client) call(ctx context.Context, path string, req, resp interface{}) error {
	body, err := json.Marshal(req)
	if err != nil {
		return rgb.NewError(fmt.Errorf("couldn't marshal the request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return rgb.NewOnlineError(fmt.Errorf("couldn't build the request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return rgb.NewOnlineError(fmt.Errorf("couldn't reach the node: %w", err))
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return rgb.NewOnlineError(fmt.Errorf("couldn't read the node response: %w", err))
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return c.toError(path, httpResp.StatusCode, respBody)
	}

	if resp == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, resp); err != nil {
		return rgb.NewOnlineError(fmt.Errorf("%w: %s", ErrUnexpectedResponse, err.Error()))
	}
	return nil
}

func (c *Client) toError(path string, statusCode int, body []byte) error {
	errResp := errorResponse{}
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	c.log.Debug("node rejected the request",
		logging.String("path", path),
		logging.Int("http-status", statusCode),
		logging.String("error", message),
	)

	if statusCode >= http.StatusInternalServerError {
		return rgb.NewOnlineError(errors.New(message))
	}
	return rgb.NewError(errors.New(message))
}
