package service

import (
	"errors"
	"net/http"

	"code.vegaprotocol.io/rgbwallet/logging"
	"code.vegaprotocol.io/rgbwallet/rgb"

	"github.com/gorilla/mux"
)

// ErrNoInvoice is returned when the backend answers an invoice request with
// nothing. It is masked as an internal error.
var ErrNoInvoice = errors.New("the backend returned no invoice")

func (s *Service) ListAssets(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	assets, err := s.client.ListAssets(backendContext(r))
	if err != nil {
		writeError(log, w, err)
		return
	}
	if assets == nil {
		assets = &rgb.Assets{}
	}

	log.Debug("Assets fetched")
	writeSuccess(w, assets, http.StatusOK)
}

func (s *Service) ListTransfers(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	transfers, err := s.client.ListTransfers(backendContext(r), nil)
	if err != nil {
		writeError(log, w, err)
		return
	}
	if transfers == nil {
		transfers = []rgb.Transfer{}
	}

	log.Debug("Asset transfers fetched", logging.Int("count", len(transfers)))
	writeSuccess(w, transfers, http.StatusOK)
}

func (s *Service) GetAsset(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	id := mux.Vars(r)["id"]

	metadata, err := s.client.GetAsset(backendContext(r), id)
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Debug("Asset fetched", logging.String("asset-id", id))
	writeSuccess(w, metadata, http.StatusOK)
}

// IssueAsset issues the asset, then sends the whole issued amount to the
// recipient, if any. A failed transfer leaves the asset issued.
func (s *Service) IssueAsset(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	req := IssueAssetRequest{}
	if err := unmarshalBody(r, &req); err != nil {
		writeError(log, w, err)
		return
	}

	asset := req.Asset()
	log.Info("Issuing asset", logging.String("asset-type", asset.AssetType.String()))

	ctx := backendContext(r)

	var (
		assetID string
		err     error
	)
	switch asset.AssetType {
	case rgb.AssetTypeNIA:
		assetID, err = s.client.IssueAssetNIA(ctx, asset)
	case rgb.AssetTypeCFA:
		assetID, err = s.client.IssueAssetCFA(ctx, asset)
	case rgb.AssetTypeUDA:
		assetID, err = s.client.IssueAssetUDA(ctx, asset)
	default:
		err = newDecodeError("%w: %s", rgb.ErrUnsupportedAssetType, asset.AssetType)
	}
	if err != nil {
		writeError(log, w, err)
		return
	}

	if req.Recipient == nil {
		log.Info("Asset issued successfully", logging.String("asset-id", assetID))
		writeText(w, assetID)
		return
	}

	txID, err := s.client.Send(ctx, assetID, *req.Recipient, true, req.FeeRateOrDefault(), req.AmountOrDefault())
	if err != nil {
		log.Warn("Asset issued but not sent", logging.String("asset-id", assetID))
		writeError(log, w, err)
		return
	}

	log.Info("Asset issued and sent successfully",
		logging.String("asset-id", assetID),
		logging.String("tx-id", txID),
	)
	writeText(w, assetID)
}

func (s *Service) SendAssets(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	id := mux.Vars(r)["id"]

	req := SendAssetsRequest{}
	if err := unmarshalBody(r, &req); err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("Sending assets",
		logging.String("asset-id", id),
		logging.String("recipient", *req.Recipient),
	)

	txID, err := s.client.Send(backendContext(r), id, *req.Recipient, true, req.FeeRateOrDefault(), req.AmountOrDefault())
	if err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("Assets sent successfully", logging.String("tx-id", txID))
	writeText(w, txID)
}

func (s *Service) Invoice(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	req := InvoiceAssetRequest{}
	if err := unmarshalBody(r, &req); err != nil {
		writeError(log, w, err)
		return
	}

	log.Info("Generating invoice", logging.String("invoice-type", req.InvoiceType.String()))

	ctx := backendContext(r)

	var (
		invoice *rgb.ReceiveData
		err     error
	)
	switch *req.InvoiceType {
	case rgb.InvoiceTypeBlind:
		invoice, err = s.client.BlindReceive(ctx, req.AssetID, req.Amount, req.DurationSeconds)
	case rgb.InvoiceTypeWitness:
		invoice, err = s.client.WitnessReceive(ctx, req.AssetID, req.Amount, req.DurationSeconds)
	default:
		err = newDecodeError("%w: %s", rgb.ErrUnsupportedInvoiceType, req.InvoiceType)
	}
	if err != nil {
		writeError(log, w, err)
		return
	}
	if invoice == nil {
		writeError(log, w, ErrNoInvoice)
		return
	}

	log.Info("Invoice generated successfully", logging.String("invoice", invoice.Invoice))
	writeSuccess(w, invoice, http.StatusOK)
}

func (s *Service) Refresh(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)

	log.Info("Refreshing asset transfers")

	if err := s.client.Refresh(backendContext(r), nil); err != nil {
		writeError(log, w, err)
		return
	}

	writeNoContent(w)
}
